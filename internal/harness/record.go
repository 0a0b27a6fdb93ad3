package harness

import (
	"github.com/roach88/conway/internal/game"
	"github.com/roach88/conway/internal/store"
)

// MaxStoredRendering is the longest fully expanded rendering Record keeps.
// Larger positions are stored with an empty rendering; their structure is
// still recoverable from the option keys.
const MaxStoredRendering = 4096

// Record converts a result into the rows the store keeps: the run, every
// position reachable from the compared games, and the checks.
func Record(r *Result) store.RunRecord {
	rec := store.RunRecord{
		Run: store.Run{
			ID:          r.RunID,
			Scenario:    r.Scenario,
			Passed:      r.Passed,
			Failed:      r.Failed,
			KnownIssues: r.KnownIssues,
			Resolved:    r.Resolved,
		},
		Checks: make([]store.Check, 0, len(r.Checks)),
	}

	sizes := make(map[game.Key]int)
	for i := range r.Checks {
		c := &r.Checks[i]
		rec.Games = appendPositions(rec.Games, sizes, c.lhs)
		rec.Games = appendPositions(rec.Games, sizes, c.rhs)
		rec.Checks = append(rec.Checks, store.Check{
			RunID:    r.RunID,
			Index:    i,
			Name:     c.Name,
			Kind:     c.Kind,
			Relation: c.Relation,
			LHS:      c.LHS,
			RHS:      c.RHS,
			LHSKey:   c.LHSKey.String(),
			RHSKey:   c.RHSKey.String(),
			Want:     c.Want,
			Got:      c.Got,
			Status:   string(c.Status),
			Detail:   c.Detail,
		})
	}
	return rec
}

// appendPositions adds g and its unseen descendants, children before
// parents. sizes holds the expanded rendering length of every position
// already added, capped at MaxStoredRendering+1.
func appendPositions(out []store.Game, sizes map[game.Key]int, g *game.Game) []store.Game {
	if g == nil {
		return out
	}
	if _, ok := sizes[g.Key()]; ok {
		return out
	}

	type item struct {
		g        *game.Game
		expanded bool
	}
	stack := []item{{g: g}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := sizes[top.g.Key()]; ok {
			continue
		}
		if !top.expanded {
			stack = append(stack, item{g: top.g, expanded: true})
			for _, o := range append(top.g.Left(), top.g.Right()...) {
				if _, ok := sizes[o.Key()]; !ok {
					stack = append(stack, item{g: o})
				}
			}
			continue
		}
		size := expandedSize(top.g, sizes)
		sizes[top.g.Key()] = size
		var rendering string
		if size <= MaxStoredRendering {
			rendering = top.g.Render(game.Unbounded)
		}
		out = append(out, store.Game{
			Key:       top.g.Key().String(),
			Name:      top.g.Name(),
			Rendering: rendering,
			Left:      keysOf(top.g.Left()),
			Right:     keysOf(top.g.Right()),
		})
	}
	return out
}

// expandedSize is the length of g.Render(game.Unbounded) given the sizes of
// its options: braces, the bar, separators and the options themselves.
func expandedSize(g *game.Game, sizes map[game.Key]int) int {
	left, right := g.Left(), g.Right()
	size := 3
	if len(left) > 1 {
		size += len(left) - 1
	}
	if len(right) > 1 {
		size += len(right) - 1
	}
	for _, o := range append(left, right...) {
		size += sizes[o.Key()]
		if size > MaxStoredRendering {
			return MaxStoredRendering + 1
		}
	}
	return min(size, MaxStoredRendering+1)
}

func keysOf(opts []*game.Game) []string {
	keys := make([]string, len(opts))
	for i, o := range opts {
		keys[i] = o.Key().String()
	}
	return keys
}
