package game

import (
	"sync"

	"github.com/roach88/conway/internal/trampoline"
)

type gamePair = trampoline.Pair[*Game, *Game]

type pairKey struct {
	x, y Key
}

// commutativeKey orders the pair so that x+y and y+x share a memo entry.
func commutativeKey(x, y *Game) pairKey {
	if y.key < x.key {
		return pairKey{x: y.key, y: x.key}
	}
	return pairKey{x: x.key, y: y.key}
}

// Arena memoizes comparisons and arithmetic results by content key.
//
// Entries live as long as the Arena. An Arena is safe for concurrent use:
// the lock guards the tables only, evaluation runs outside it.
type Arena struct {
	mu  sync.Mutex
	leq map[pairKey]bool
	neg map[Key]*Game
	add map[pairKey]*Game
	mul map[pairKey]*Game

	leqFn func(x, y *Game) (bool, error)
	negFn func(x *Game) (*Game, error)
	addFn func(x, y *Game) (*Game, error)
	mulFn func(x, y *Game) (*Game, error)

	// observe, when set, sees every comparison that is actually evaluated.
	observe func(x, y *Game)
}

var defaultArena = NewArena()

// Default returns the Arena used by the methods on *Game.
func Default() *Arena {
	return defaultArena
}

// NewArena creates an empty Arena.
func NewArena() *Arena {
	a := &Arena{
		leq: make(map[pairKey]bool),
		neg: make(map[Key]*Game),
		add: make(map[pairKey]*Game),
		mul: make(map[pairKey]*Game),
	}
	a.leqFn = trampoline.Recursive2(a.leqFrame)
	a.negFn = trampoline.Recursive(trampoline.Program[*Game, *Game](a.negFrame))
	a.addFn = trampoline.Recursive2(a.addFrame)
	a.mulFn = trampoline.Recursive2(a.mulFrame)
	return a
}

// ArenaStats counts memo entries.
type ArenaStats struct {
	Comparisons int
	Negations   int
	Sums        int
	Products    int
}

// Stats reports the size of each memo table.
func (a *Arena) Stats() ArenaStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return ArenaStats{
		Comparisons: len(a.leq),
		Negations:   len(a.neg),
		Sums:        len(a.add),
		Products:    len(a.mul),
	}
}

func memoGet[K comparable, V any](mu *sync.Mutex, m map[K]V, k K) (V, bool) {
	mu.Lock()
	defer mu.Unlock()
	v, ok := m[k]
	return v, ok
}

func memoPut[K comparable, V any](mu *sync.Mutex, m map[K]V, k K, v V) {
	mu.Lock()
	defer mu.Unlock()
	m[k] = v
}

// New builds the canonical position with the given options.
//
// New panics if an option is nil or was not built by this package.
func (a *Arena) New(left, right []*Game) *Game {
	return a.canonical(left, right)
}

// Canonicalize re-runs the reduction on g's options. For any *Game the
// result has the same Key as g; the display name is kept.
func (a *Arena) Canonicalize(g *Game) *Game {
	c := a.canonical(g.left, g.right)
	if g.name != "" {
		return c.Named(g.name)
	}
	return c
}
