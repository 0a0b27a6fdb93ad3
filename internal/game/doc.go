// Package game implements combinatorial game values: partizan positions
// given by a set of Left options and a set of Right options, compared by the
// recursive order relation and combined by negation, disjunctive sum and
// multiplication.
//
// Every *Game is in canonical form. Construction strips dominated options
// and bypasses reversible ones until neither rule applies, then freezes the
// result; nothing mutates a Game afterwards, so positions are freely shared
// between parents and goroutines.
//
// Identity of a position is its Key: a SHA-256 digest of the canonical
// structural rendering, built from the keys of its options. Canonical forms
// are unique, so two value-equal positions have the same Key. Display names
// are decoration and never enter the Key.
//
// Equality is not structural comparison. Leq is the one order rule; Geq,
// Eq, Lt and Gt are all derived from it.
//
// All recursive operations run on package trampoline, so recursion depth is
// bounded by memory rather than by the goroutine stack. Results are
// memoized per Arena, keyed by content. Methods on *Game use a process-wide
// default Arena; NewArena gives an isolated one.
//
// Example:
//
//	half := game.New([]*game.Game{game.Integer(0)}, []*game.Game{game.Integer(1)})
//	half.Peek()                  // "{0|1}"
//	quarter := half.Mul(half)
//	quarter.Eq(game.New([]*game.Game{game.Integer(0)}, []*game.Game{half})) // true
package game
