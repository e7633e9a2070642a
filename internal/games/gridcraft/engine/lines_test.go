package engine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gridcraft/internal/games/gridcraft/engine"
)

func TestCompletedLinesSingleRow(t *testing.T) {
	g := gridFromRows(
		"1111111.",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)

	require.True(t, g.Place(mono, 7, 0, 2))
	lines := g.CompletedLines(mono, 7, 0)

	assert.Equal(t, []int{0}, lines.Rows)
	assert.Empty(t, lines.Cols)
	assert.Equal(t, 8, g.ClearLines(lines))
	for x := range 8 {
		assert.Equal(t, 0, g.Get(x, 0))
	}
}

func TestCompletedLinesMatchesFullScan(t *testing.T) {
	// Placements always clear every full line, so none is full beforehand.
	g := gridFromRows(
		"1111.",
		"2222.",
		"3333.",
		"4444.",
		".....",
	)
	require.Zero(t, g.AllCompletedLines().Count())

	require.True(t, g.Place(vbar4, 4, 0, 5))
	touched := g.CompletedLines(vbar4, 4, 0)
	full := g.AllCompletedLines()

	assert.Equal(t, []int{0, 1, 2, 3}, touched.Rows)
	assert.Empty(t, touched.Cols)
	assert.Equal(t, full, touched)
	assert.Equal(t, 4, touched.Count())
	assert.Equal(t, 20, g.ClearLines(touched))
	assert.Zero(t, g.FilledCount())
}

func TestCompletedLinesRowAndColumn(t *testing.T) {
	g := gridFromRows(
		"1111.",
		"....2",
		"....3",
		"....4",
		"....5",
	)
	require.Zero(t, g.AllCompletedLines().Count())

	require.True(t, g.Place(mono, 4, 0, 1))
	touched := g.CompletedLines(mono, 4, 0)

	assert.Equal(t, []int{0}, touched.Rows)
	assert.Equal(t, []int{4}, touched.Cols)
	assert.Equal(t, g.AllCompletedLines(), touched)
	assert.Equal(t, 9, g.ClearLines(touched))
}

func TestClearLinesCountsIntersectionOnce(t *testing.T) {
	g := gridFromRows(
		"1.",
		"11",
	)

	lines := engine.Lines{Rows: []int{1}, Cols: []int{0}}
	assert.Equal(t, 2, lines.Count())
	assert.Equal(t, 3, g.ClearLines(lines))
	assert.Equal(t, 0, g.FilledCount())
}

func TestScoringGain(t *testing.T) {
	s := defaultScoring()

	testCases := []struct {
		name       string
		k, combo   int
		multiplier float64
		expected   int
	}{
		{"no lines", 0, 3, 2.0, 0},
		{"single line fresh chain", 1, 0, 1.0, 100},
		{"double line", 2, 0, 1.0, 300},
		{"triple line phase 2", 3, 0, 1.5, 900},
		{"quad line phase 3", 4, 0, 2.0, 2000},
		{"beyond table falls back to linear", 5, 0, 1.0, 500},
		{"combo exponent 1", 1, 1, 1.0, 150},
		{"combo exponent 3 floors", 1, 3, 1.0, 337},
		{"combo and phase compound", 2, 2, 1.5, 1012},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, s.Gain(tc.k, tc.combo, tc.multiplier))
		})
	}
}

func TestScoringGainSaturates(t *testing.T) {
	s := defaultScoring()

	assert.Positive(t, s.Gain(1, 80, 2.0))
	assert.Equal(t, math.MaxInt, s.Gain(1, 95, 2.0))
	assert.Equal(t, math.MaxInt, s.Gain(4, 5000, 2.0))
}

func TestScoringTableSizes(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4}, defaultScoring().TableSizes())
}
