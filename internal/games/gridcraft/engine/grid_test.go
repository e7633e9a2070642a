package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gridcraft/internal/games/gridcraft/engine"
)

func TestParseShape(t *testing.T) {
	s := engine.ParseShape("T", 70, "###", ".#.")

	assert.Equal(t, 2, s.Rows())
	assert.Equal(t, 3, s.Cols())
	assert.Equal(t, 4, s.Area())
	assert.True(t, s.Occupied(1, 1))
	assert.False(t, s.Occupied(1, 0))
	assert.False(t, s.Occupied(5, 5))
	assert.Equal(t, "###\n.#.", s.String())
}

func TestCanPlace(t *testing.T) {
	g := gridFromRows(
		"....",
		".1..",
		"....",
		"....",
	)

	testCases := []struct {
		name     string
		shape    engine.Shape
		x, y     int
		expected bool
	}{
		{"empty corner", sq2, 2, 2, true},
		{"overlaps filled cell", sq2, 0, 0, false},
		{"right edge overflow", bar3, 2, 0, false},
		{"bottom edge overflow", vbar4, 0, 1, false},
		{"negative origin", mono, -1, 0, false},
		{"empty pattern cell over filled cell", ell, 0, 0, true},
		{"plus center over filled cell", plus, 0, 0, false},
		{"fits exactly", vbar4, 3, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, g.CanPlace(tc.shape, tc.x, tc.y))
		})
	}
}

func TestPlaceIsAllOrNothing(t *testing.T) {
	g := gridFromRows(
		"...2",
		"....",
		"..3.",
		"....",
	)

	attempts := []struct {
		shape engine.Shape
		x, y  int
	}{
		{bar3, 1, 0},  // last cell hits (3,0)
		{bar3, 2, 1},  // runs off the right edge
		{sq2, 1, 1},   // hits (2,2)
		{vbar4, 0, 1}, // runs off the bottom
		{plus, -1, 0}, // negative origin
	}

	for _, a := range attempts {
		before := g.Clone()
		ok := g.Place(a.shape, a.x, a.y, 4)
		assert.False(t, ok, "Place(%s, %d, %d)", a.shape.Name, a.x, a.y)
		assert.True(t, g.Equal(before), "grid changed after rejected Place(%s, %d, %d)", a.shape.Name, a.x, a.y)
	}
}

func TestPlaceWritesColor(t *testing.T) {
	// Horizontal 1×3 at the origin of an empty 8×8 grid.
	g := engine.NewGrid(8)

	require.True(t, g.Place(bar3, 0, 0, 1))
	for x := range 3 {
		assert.Equal(t, 1, g.Get(x, 0), "cell (%d,0)", x)
	}
	assert.Equal(t, 0, g.Get(3, 0))
	assert.Equal(t, 3, g.FilledCount())
	assert.Empty(t, g.AllCompletedLines().Rows)
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := engine.NewGrid(3)
	c := g.Clone()
	c.Set(1, 1, 2)

	assert.Equal(t, 0, g.Get(1, 1))
	assert.False(t, g.Equal(c))
	assert.False(t, g.Equal(nil))
}
