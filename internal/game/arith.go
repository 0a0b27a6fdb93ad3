package game

import "github.com/roach88/conway/internal/trampoline"

// negFrame: the Left options of -x are the negated Right options of x, and
// the other way round.
func (a *Arena) negFrame(x *Game) trampoline.Frame[*Game, *Game] {
	if v, ok := memoGet(&a.mu, a.neg, x.key); ok {
		return trampoline.Return[*Game](v)
	}

	args := make([]*Game, 0, len(x.left)+len(x.right))
	args = append(args, x.right...)
	args = append(args, x.left...)
	return trampoline.Gather(args, func(rs []*Game) (*Game, error) {
		g := a.canonical(rs[:len(x.right)], rs[len(x.right):])
		memoPut(&a.mu, a.neg, x.key, g)
		return g, nil
	})
}

// addFrame: x + y has Left options xL + y and x + yL, Right options xR + y
// and x + yR.
func (a *Arena) addFrame(x, y *Game) trampoline.Frame[gamePair, *Game] {
	k := commutativeKey(x, y)
	if v, ok := memoGet(&a.mu, a.add, k); ok {
		return trampoline.Return[gamePair](v)
	}

	args := make([]gamePair, 0, len(x.left)+len(y.left)+len(x.right)+len(y.right))
	for _, xl := range x.left {
		args = append(args, gamePair{First: xl, Second: y})
	}
	for _, yl := range y.left {
		args = append(args, gamePair{First: x, Second: yl})
	}
	nl := len(args)
	for _, xr := range x.right {
		args = append(args, gamePair{First: xr, Second: y})
	}
	for _, yr := range y.right {
		args = append(args, gamePair{First: x, Second: yr})
	}

	return trampoline.Gather(args, func(rs []*Game) (*Game, error) {
		g := a.canonical(rs[:nl], rs[nl:])
		memoPut(&a.mu, a.add, k, g)
		return g, nil
	})
}

// mulFrame: for option pairs (xo, yo) the new option is
// xo·y + x·yo - xo·yo. Pairs from L×L and R×R give Left options, pairs
// from L×R and R×L give Right options. Each pair needs three products,
// requested in that order.
func (a *Arena) mulFrame(x, y *Game) trampoline.Frame[gamePair, *Game] {
	k := commutativeKey(x, y)
	if v, ok := memoGet(&a.mu, a.mul, k); ok {
		return trampoline.Return[gamePair](v)
	}

	var args []gamePair
	cross := func(xs, ys []*Game) {
		for _, xo := range xs {
			for _, yo := range ys {
				args = append(args,
					gamePair{First: xo, Second: y},
					gamePair{First: yo, Second: x},
					gamePair{First: xo, Second: yo},
				)
			}
		}
	}
	cross(x.left, y.left)
	cross(x.right, y.right)
	nl := len(args) / 3
	cross(x.left, y.right)
	cross(x.right, y.left)

	return trampoline.Gather(args, func(rs []*Game) (*Game, error) {
		opts := make([]*Game, len(rs)/3)
		for i := range opts {
			sum := must(a.addFn(rs[3*i], rs[3*i+1]))
			diff := must(a.negFn(rs[3*i+2]))
			opts[i] = must(a.addFn(sum, diff))
		}
		g := a.canonical(opts[:nl], opts[nl:])
		memoPut(&a.mu, a.mul, k, g)
		return g, nil
	})
}

// Neg returns -x. A named operand gives the result the name "-name".
func (a *Arena) Neg(x *Game) *Game {
	g := must(a.negFn(x))
	if x.name != "" {
		return g.Named("-" + x.name)
	}
	return g
}

// Add returns the disjunctive sum x + y, named "(x+y)".
func (a *Arena) Add(x, y *Game) *Game {
	g := must(a.addFn(x, y))
	return g.Named("(" + x.String() + "+" + y.String() + ")")
}

// Sub returns x + (-y), named "(x-y)".
func (a *Arena) Sub(x, y *Game) *Game {
	g := must(a.addFn(x, must(a.negFn(y))))
	return g.Named("(" + x.String() + "-" + y.String() + ")")
}

// Mul returns x · y, named after one-level previews of the operands.
func (a *Arena) Mul(x, y *Game) *Game {
	g := must(a.mulFn(x, y))
	return g.Named(x.Peek() + "·" + y.Peek())
}
