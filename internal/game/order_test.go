package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_Table(t *testing.T) {
	h := half()

	tests := []struct {
		name string
		x, y *Game
		leq  bool
		geq  bool
	}{
		{"0 vs 0", Zero(), Zero(), true, true},
		{"0 vs 1", Zero(), Integer(1), true, false},
		{"-1 vs 0", Integer(-1), Zero(), true, false},
		{"3 vs 2", Integer(3), Integer(2), false, true},
		{"half vs 1", h, Integer(1), true, false},
		{"half vs 0", h, Zero(), false, true},
		{"star vs 0", Star(), Zero(), false, false},
		{"up vs 0", Up(), Zero(), false, true},
		{"up vs half", Up(), h, true, false},
		{"up vs star", Up(), Star(), false, false},
		{"*2 vs star", MustNimber(2), Star(), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.leq, tt.x.Leq(tt.y), "x <= y")
			assert.Equal(t, tt.geq, tt.x.Geq(tt.y), "x >= y")
			assert.Equal(t, tt.leq && tt.geq, tt.x.Eq(tt.y), "x == y")
			assert.Equal(t, tt.leq && !tt.geq, tt.x.Lt(tt.y), "x < y")
			assert.Equal(t, tt.geq && !tt.leq, tt.x.Gt(tt.y), "x > y")
		})
	}
}

func TestOrder_Fuzzy(t *testing.T) {
	a := NewArena()
	assert.True(t, a.Fuzzy(Star(), Zero()))
	assert.True(t, a.Fuzzy(Up(), Star()))
	assert.False(t, a.Fuzzy(Up(), Zero()))
}

func TestOrder_Reflexive(t *testing.T) {
	for _, g := range bornByDayTwo(NewArena()) {
		assert.True(t, g.Eq(g), g.String())
	}
}

func TestOrder_TransitiveOnDayTwo(t *testing.T) {
	a := NewArena()
	games := distinct(bornByDayTwo(a))

	for _, x := range games {
		for _, y := range games {
			if !a.Leq(x, y) {
				continue
			}
			for _, z := range games {
				if a.Leq(y, z) {
					assert.True(t, a.Leq(x, z), "%s <= %s <= %s", x, y, z)
				}
			}
		}
	}
}

func TestLeq_ShortCircuitsOnFirstLeftOption(t *testing.T) {
	a := NewArena()
	poison := Integer(-1)
	y := a.New(nil, opts(poison)) // {|-1} = -2
	require.Equal(t, Integer(-2).Key(), y.Key())
	x := Integer(1)

	var visited [][2]*Game
	a.observe = func(p, q *Game) {
		visited = append(visited, [2]*Game{p, q})
		if p.Key() == poison.Key() || q.Key() == poison.Key() {
			t.Errorf("compared %s with %s: Right options of y must not be examined", p, q)
		}
	}

	assert.False(t, a.Leq(x, y))
	assert.Len(t, visited, 2, "only x <= y and y <= 0 need evaluating")
}

func TestLeq_Memoized(t *testing.T) {
	a := NewArena()
	calls := 0
	a.observe = func(_, _ *Game) { calls++ }

	assert.True(t, a.Leq(Integer(2), Integer(3)))
	first := calls
	assert.True(t, a.Leq(Integer(2), Integer(3)))
	assert.Equal(t, first, calls)
	assert.Positive(t, a.Stats().Comparisons)
}

func TestLeq_DeepIntegers(t *testing.T) {
	const n = 100_000
	a := NewArena()
	big := Integer(n)

	assert.True(t, a.Eq(big, Integer(n)))
	assert.True(t, a.Gt(big, Integer(n-1)))
	assert.True(t, a.Lt(Integer(-n), Zero()))
}
