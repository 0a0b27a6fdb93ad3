package game

import "log/slog"

// canonical reduces the position with the given options to canonical form.
//
// Each pass removes dominated options and then bypasses reversible ones.
// Either step can expose work for the other, so passes repeat until one
// changes nothing.
func (a *Arena) canonical(left, right []*Game) *Game {
	g := newRaw(left, right)
	for pass := 1; ; pass++ {
		var dominated, reversed bool
		g, dominated = a.removeDominated(g)
		g, reversed = a.bypassReversible(g)
		if !dominated && !reversed {
			if pass > 2 {
				slog.Debug("canonical form reached",
					"key", g.key.Short(),
					"passes", pass,
					"left", len(g.left),
					"right", len(g.right))
			}
			return g
		}
	}
}

// removeDominated drops a Left option a when a <= b for another Left option
// b, and a Right option a when a >= b for another Right option b.
func (a *Arena) removeDominated(g *Game) (*Game, bool) {
	left := dropDominated(g.left, a.lessEq)
	right := dropDominated(g.right, func(p, q *Game) bool { return a.lessEq(q, p) })
	if len(left) == len(g.left) && len(right) == len(g.right) {
		return g, false
	}
	return newRaw(left, right), true
}

// dropDominated compares every unordered pair once. worse(p, q) means p is
// never preferable to q. Of two equal options only the later one survives.
func dropDominated(opts []*Game, worse func(p, q *Game) bool) []*Game {
	if len(opts) < 2 {
		return opts
	}
	dropped := make([]bool, len(opts))
	for i := 0; i < len(opts); i++ {
		for j := i + 1; j < len(opts); j++ {
			switch {
			case worse(opts[i], opts[j]):
				dropped[i] = true
			case worse(opts[j], opts[i]):
				dropped[j] = true
			}
		}
	}
	kept := make([]*Game, 0, len(opts))
	for i, o := range opts {
		if !dropped[i] {
			kept = append(kept, o)
		}
	}
	return kept
}

// bypassReversible replaces a Right option xR that has a Left option xRL
// with g <= xRL by the Right options of xRL, and a Left option xL that has a
// Right option xLR with xLR <= g by the Left options of xLR. Replacements
// are checked again.
func (a *Arena) bypassReversible(g *Game) (*Game, bool) {
	right, rc := bypass(g.right, func(xr *Game) ([]*Game, bool) {
		for _, xrl := range xr.left {
			if a.lessEq(g, xrl) {
				return xrl.right, true
			}
		}
		return nil, false
	})
	left, lc := bypass(g.left, func(xl *Game) ([]*Game, bool) {
		for _, xlr := range xl.right {
			if a.lessEq(xlr, g) {
				return xlr.left, true
			}
		}
		return nil, false
	})
	if !rc && !lc {
		return g, false
	}
	return newRaw(left, right), true
}

// bypass works through opts with a queue, swapping every option that
// reverse reports as reversible for its replacement options.
func bypass(opts []*Game, reverse func(o *Game) ([]*Game, bool)) ([]*Game, bool) {
	queue := append([]*Game(nil), opts...)
	seen := make(map[Key]struct{}, len(opts))
	var kept []*Game
	changed := false
	for len(queue) > 0 {
		o := queue[0]
		queue = queue[1:]
		if _, dup := seen[o.key]; dup {
			continue
		}
		seen[o.key] = struct{}{}

		if repl, ok := reverse(o); ok {
			queue = append(queue, repl...)
			changed = true
			continue
		}
		kept = append(kept, o)
	}
	return kept, changed
}
