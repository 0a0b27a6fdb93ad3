package game

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Game is a frozen position in canonical form.
//
// The zero value is not a valid position; obtain Games from New, the
// arithmetic methods or the named constructors.
type Game struct {
	left  []*Game // sorted by key, no duplicates
	right []*Game
	name  string
	key   Key
}

// New builds the canonical position with the given options, using the
// default Arena.
//
// New panics if an option is nil or was not built by this package.
func New(left, right []*Game) *Game {
	return defaultArena.New(left, right)
}

// newRaw freezes a position without simplifying it. Callers either pass
// options known to be in canonical arrangement or feed the result to
// Arena.canonical.
func newRaw(left, right []*Game) *Game {
	l := normalizeOptions(left)
	r := normalizeOptions(right)
	return &Game{left: l, right: r, key: structuralKey(l, r)}
}

// newNamed is newRaw for positions that are canonical by construction.
func newNamed(left, right []*Game, name string) *Game {
	g := newRaw(left, right)
	g.name = norm.NFC.String(name)
	return g
}

// normalizeOptions copies opts, drops duplicate keys and sorts by key.
func normalizeOptions(opts []*Game) []*Game {
	out := make([]*Game, 0, len(opts))
	seen := make(map[Key]struct{}, len(opts))
	for _, o := range opts {
		if o == nil {
			panic("game: nil option")
		}
		if o.key == "" {
			panic("game: option was not built by this package")
		}
		if _, dup := seen[o.key]; dup {
			continue
		}
		seen[o.key] = struct{}{}
		out = append(out, o)
	}
	slices.SortFunc(out, func(a, b *Game) int {
		return strings.Compare(string(a.key), string(b.key))
	})
	return out
}

// Named returns the same position carrying a display name. The name is
// NFC-normalized and only affects rendering.
func (g *Game) Named(name string) *Game {
	return &Game{
		left:  g.left,
		right: g.right,
		name:  norm.NFC.String(name),
		key:   g.key,
	}
}

// Left returns a copy of the Left options.
func (g *Game) Left() []*Game {
	return slices.Clone(g.left)
}

// Right returns a copy of the Right options.
func (g *Game) Right() []*Game {
	return slices.Clone(g.right)
}

// Name returns the display name, or "".
func (g *Game) Name() string {
	return g.name
}

// Key returns the content identity.
func (g *Game) Key() Key {
	return g.key
}

// SameForm reports whether g and h have identical canonical forms. For
// positions built by this package this agrees with Eq.
func (g *Game) SameForm(h *Game) bool {
	return g.key == h.key
}

// Leq reports g <= h.
func (g *Game) Leq(h *Game) bool { return defaultArena.Leq(g, h) }

// Geq reports g >= h.
func (g *Game) Geq(h *Game) bool { return defaultArena.Geq(g, h) }

// Eq reports g == h as game values.
func (g *Game) Eq(h *Game) bool { return defaultArena.Eq(g, h) }

// Lt reports g < h.
func (g *Game) Lt(h *Game) bool { return defaultArena.Lt(g, h) }

// Gt reports g > h.
func (g *Game) Gt(h *Game) bool { return defaultArena.Gt(g, h) }

// Neg returns -g.
func (g *Game) Neg() *Game { return defaultArena.Neg(g) }

// Add returns the disjunctive sum g + h.
func (g *Game) Add(h *Game) *Game { return defaultArena.Add(g, h) }

// Sub returns g - h.
func (g *Game) Sub(h *Game) *Game { return defaultArena.Sub(g, h) }

// Mul returns the product g · h.
func (g *Game) Mul(h *Game) *Game { return defaultArena.Mul(g, h) }
