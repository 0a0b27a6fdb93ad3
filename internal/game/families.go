package game

import (
	"fmt"
	"strconv"
)

var (
	zero = newNamed(nil, nil, "0")
	star = newNamed([]*Game{zero}, []*Game{zero}, "*")
	up   = newNamed([]*Game{zero}, []*Game{star}, "↑")
)

// Zero returns the position with no options, named "0".
func Zero() *Game { return zero }

// Star returns * = {0|0}.
func Star() *Game { return star }

// Up returns ↑ = {0|*}.
func Up() *Game { return up }

// Integer returns the canonical integer n: {n-1|} for positive n, {|n+1}
// for negative n. Every position in the chain is named by its value.
func Integer(n int) *Game {
	g := zero
	for i := 1; i <= n; i++ {
		g = newNamed([]*Game{g}, nil, strconv.Itoa(i))
	}
	for i := -1; i >= n; i-- {
		g = newNamed(nil, []*Game{g}, strconv.Itoa(i))
	}
	return g
}

// Nimber returns *n = {*0,...,*(n-1)|*0,...,*(n-1)}, named "*n".
func Nimber(n int) (*Game, error) {
	if n < 0 {
		return nil, &PreconditionError{
			Op:      "nimber",
			Message: fmt.Sprintf("index %d is negative", n),
		}
	}
	opts := make([]*Game, 0, n)
	var g *Game
	for i := 0; i <= n; i++ {
		g = newNamed(opts, opts, "*"+strconv.Itoa(i))
		opts = append(opts, g)
	}
	return g, nil
}

// MustNimber is like Nimber but panics on error.
// Use only in tests or when n is known to be non-negative.
func MustNimber(n int) *Game {
	g, err := Nimber(n)
	if err != nil {
		panic(err)
	}
	return g
}
