package game

import "github.com/roach88/conway/internal/trampoline"

// leqFrame evaluates x <= y: false as soon as some Left option xL of x has
// y <= xL, or some Right option yR of y has yR <= x; true otherwise.
func (a *Arena) leqFrame(x, y *Game) trampoline.Frame[gamePair, bool] {
	k := pairKey{x: x.key, y: y.key}
	if v, ok := memoGet(&a.mu, a.leq, k); ok {
		return trampoline.Return[gamePair](v)
	}
	if a.observe != nil {
		a.observe(x, y)
	}

	nl := len(x.left)
	disqualifiers := func(i int) (gamePair, bool) {
		switch {
		case i < nl:
			return gamePair{First: y, Second: x.left[i]}, true
		case i < nl+len(y.right):
			return gamePair{First: y.right[i-nl], Second: x}, true
		}
		return gamePair{}, false
	}
	isTrue := func(le bool) bool { return le }
	return trampoline.OnDone(
		trampoline.Until(disqualifiers, isTrue, false, true),
		func(le bool) { memoPut(&a.mu, a.leq, k, le) },
	)
}

func (a *Arena) lessEq(x, y *Game) bool {
	return must(a.leqFn(x, y))
}

// Leq reports x <= y.
func (a *Arena) Leq(x, y *Game) bool {
	return a.lessEq(x, y)
}

// Geq reports x >= y.
func (a *Arena) Geq(x, y *Game) bool {
	return a.Leq(y, x)
}

// Eq reports x == y: each is <= the other.
func (a *Arena) Eq(x, y *Game) bool {
	return a.Leq(x, y) && a.Leq(y, x)
}

// Lt reports x < y.
func (a *Arena) Lt(x, y *Game) bool {
	return a.Leq(x, y) && !a.Leq(y, x)
}

// Gt reports x > y.
func (a *Arena) Gt(x, y *Game) bool {
	return a.Lt(y, x)
}

// Fuzzy reports x || y: neither x <= y nor y <= x.
func (a *Arena) Fuzzy(x, y *Game) bool {
	return !a.Leq(x, y) && !a.Leq(y, x)
}
