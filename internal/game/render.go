package game

import (
	"slices"
	"strings"

	"github.com/roach88/conway/internal/trampoline"
)

// Unbounded is the Render depth that expands the whole tree.
const Unbounded = -1

type renderArg = trampoline.Pair[*Game, int]

var (
	stringFn = trampoline.Recursive(trampoline.Program[*Game, string](stringFrame))
	renderFn = trampoline.Recursive2(renderFrame)
)

func stringFrame(g *Game) trampoline.Frame[*Game, string] {
	if g.name != "" {
		return trampoline.Return[*Game](g.name)
	}
	return trampoline.Gather(optionsOf(g), func(rs []string) (string, error) {
		return braces(rs[:len(g.left)], rs[len(g.left):]), nil
	})
}

func renderFrame(g *Game, depth int) trampoline.Frame[renderArg, string] {
	if depth == 0 {
		return trampoline.Return[renderArg](g.String())
	}
	args := make([]renderArg, 0, len(g.left)+len(g.right))
	for _, o := range optionsOf(g) {
		args = append(args, renderArg{First: o, Second: depth - 1})
	}
	return trampoline.Gather(args, func(rs []string) (string, error) {
		return braces(rs[:len(g.left)], rs[len(g.left):]), nil
	})
}

func optionsOf(g *Game) []*Game {
	opts := make([]*Game, 0, len(g.left)+len(g.right))
	opts = append(opts, g.left...)
	return append(opts, g.right...)
}

// braces formats {L1,L2|R1,R2} with each side sorted.
func braces(left, right []string) string {
	l := slices.Clone(left)
	r := slices.Clone(right)
	slices.Sort(l)
	slices.Sort(r)
	return "{" + strings.Join(l, ",") + "|" + strings.Join(r, ",") + "}"
}

// String returns the display name, or {L|R} built from the options' own
// String forms.
func (g *Game) String() string {
	return must(stringFn(g))
}

// Render expands g to the given depth. Depth 0 is String. A positive depth
// opens that many levels of braces and shows deeper positions by String.
// Unbounded opens every level and ignores display names.
func (g *Game) Render(depth int) string {
	return must(renderFn(g, depth))
}

// Peek is Render(1): g's own options, each shown by String.
func (g *Game) Peek() string {
	return g.Render(1)
}
