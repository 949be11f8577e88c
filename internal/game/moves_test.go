package game

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovesRoundTrip(t *testing.T) {
	for _, exact := range []bool{false, true} {
		ms := NewMoves(exact).Insert(Move{Word: "grind", Points: 2})
		assert.True(t, ms.Contains("grind"), "exact=%v", exact)
		assert.False(t, ms.Contains("grand"), "exact=%v", exact)
	}
}

func TestMovesPrefixSemantics(t *testing.T) {
	loose := NewMoves(false).Insert(Move{Word: "grind", Points: 2})
	strict := NewMoves(true).Insert(Move{Word: "grind", Points: 2})

	assert.True(t, loose.Contains("grin"))
	assert.False(t, strict.Contains("grin"))
}

func TestMovesOrderAndSharing(t *testing.T) {
	a := Move{Word: "grand", Points: 2}
	b := Move{Word: "giant", Points: 2}
	c := Move{Word: "drag", Points: 1}

	base := NewMoves(false).Insert(a)
	left := base.Insert(b)
	right := base.Insert(c)

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, []Move{a, b}, left.Slice())
	assert.Equal(t, []Move{a, c}, right.Slice())
	assert.Equal(t, []Move{a, c}, slices.Collect(right.All()))
	assert.False(t, base.Contains("giant"))
}

func TestZeroMoves(t *testing.T) {
	var ms Moves
	assert.Equal(t, 0, ms.Len())
	assert.False(t, ms.Contains("grand"))
}
