package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opts(gs ...*Game) []*Game { return gs }

func half() *Game {
	return New(opts(Integer(0)), opts(Integer(1)))
}

func TestInteger_Forms(t *testing.T) {
	tests := []struct {
		n        int
		name     string
		peek     string
		expanded string
	}{
		{0, "0", "{|}", "{|}"},
		{1, "1", "{0|}", "{{|}|}"},
		{3, "3", "{2|}", "{{{{|}|}|}|}"},
		{-1, "-1", "{|0}", "{|{|}}"},
		{-2, "-2", "{|-1}", "{|{|{|}}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Integer(tt.n)
			assert.Equal(t, tt.name, g.String())
			assert.Equal(t, tt.peek, g.Peek())
			assert.Equal(t, tt.expanded, g.Render(Unbounded))
		})
	}
}

func TestNimber(t *testing.T) {
	g, err := Nimber(2)
	require.NoError(t, err)
	assert.Equal(t, "*2", g.String())
	assert.Equal(t, "{*0,*1|*0,*1}", g.Peek())
	assert.True(t, MustNimber(1).Eq(Star()))
	assert.True(t, MustNimber(0).Eq(Zero()))
}

func TestNimber_NegativeIndex(t *testing.T) {
	g, err := Nimber(-1)
	assert.Nil(t, g)
	require.Error(t, err)
	assert.True(t, IsPrecondition(err))
	assert.Contains(t, err.Error(), "nimber")

	assert.Panics(t, func() { MustNimber(-3) })
}

func TestNamedFamilies(t *testing.T) {
	assert.Equal(t, "*", Star().String())
	assert.Equal(t, "{0|0}", Star().Peek())
	assert.Equal(t, "↑", Up().String())
	assert.Equal(t, "{0|*}", Up().Peek())
	assert.Equal(t, "{{|}|{{|}|{|}}}", Up().Render(Unbounded))
}

func TestHalf_Peek(t *testing.T) {
	h := half()
	assert.Equal(t, "{0|1}", h.Peek())
	assert.Equal(t, "{0|1}", h.String())
	assert.Equal(t, "{{|}|{{|}|}}", h.Render(Unbounded))
	assert.Equal(t, "{0|1}", h.Render(0))
}

func TestRender_DepthTwo(t *testing.T) {
	quarter := New(opts(Zero()), opts(half()))
	assert.Equal(t, "{0|{0|1}}", quarter.String())
	assert.Equal(t, "{{|}|{0|1}}", quarter.Render(2))
}

func TestNamed(t *testing.T) {
	h := half()
	named := h.Named("½")

	assert.Equal(t, "½", named.String())
	assert.Equal(t, "{0|1}", named.Peek())
	assert.Equal(t, h.Key(), named.Key())
	assert.True(t, named.Eq(h))
	assert.Empty(t, h.Name(), "Named must not touch the receiver")
}

func TestNamed_NFC(t *testing.T) {
	decomposed := "e\u0301"
	g := Zero().Named(decomposed)
	assert.Equal(t, "\u00e9", g.Name())
}

func TestNew_PanicsOnForeignOption(t *testing.T) {
	assert.Panics(t, func() { New(opts(nil), nil) })
	assert.Panics(t, func() { New(opts(&Game{}), nil) })
}

func TestOptions_AreCopies(t *testing.T) {
	g := Integer(2)
	left := g.Left()
	left[0] = Zero()
	assert.Equal(t, "{1|}", g.Peek())
	assert.Empty(t, g.Right())
}

func TestKey(t *testing.T) {
	k := Integer(4).Key()
	assert.Len(t, k.String(), 64)
	assert.Equal(t, k.String()[:12], k.Short())
	assert.Equal(t, k, New(opts(Integer(3)), nil).Key())
	assert.NotEqual(t, k, Integer(-4).Key())
}
