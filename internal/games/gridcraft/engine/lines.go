package engine

import (
	"maps"
	"math"
	"slices"
)

// Lines lists the completed rows and columns found after a placement.
type Lines struct {
	Rows []int
	Cols []int
}

// Count returns the number of completed lines (rows + columns).
func (l Lines) Count() int {
	return len(l.Rows) + len(l.Cols)
}

// CompletedLines checks only the rows and columns covered by a shape placed
// at (x, y). When no line was full before the placement, which holds after
// every clear, this matches a scan of the whole grid: a line can only
// become full through a cell that was just filled.
func (g *Grid) CompletedLines(s Shape, x, y int) Lines {
	var lines Lines

	for r := range s.Rows() {
		if rowTouched(s, r) && g.RowFull(y+r) {
			lines.Rows = append(lines.Rows, y+r)
		}
	}
	for c := range s.Cols() {
		if colTouched(s, c) && g.ColFull(x+c) {
			lines.Cols = append(lines.Cols, x+c)
		}
	}

	return lines
}

// AllCompletedLines scans every row and column.
func (g *Grid) AllCompletedLines() Lines {
	var lines Lines
	for i := range g.N {
		if g.RowFull(i) {
			lines.Rows = append(lines.Rows, i)
		}
		if g.ColFull(i) {
			lines.Cols = append(lines.Cols, i)
		}
	}
	return lines
}

// ClearLines empties every cell of the given rows and columns.
// Returns the number of distinct cells emptied; intersections count once.
func (g *Grid) ClearLines(lines Lines) int {
	cleared := 0
	for _, y := range lines.Rows {
		for x := range g.N {
			i := g.index(x, y)
			if g.Cells[i] != 0 {
				g.Cells[i] = 0
				cleared++
			}
		}
	}
	for _, x := range lines.Cols {
		for y := range g.N {
			i := g.index(x, y)
			if g.Cells[i] != 0 {
				g.Cells[i] = 0
				cleared++
			}
		}
	}
	return cleared
}

func rowTouched(s Shape, r int) bool {
	for _, filled := range s.Cells[r] {
		if filled {
			return true
		}
	}
	return false
}

func colTouched(s Shape, c int) bool {
	for _, row := range s.Cells {
		if c < len(row) && row[c] {
			return true
		}
	}
	return false
}

// Scoring holds the line-clear scoring constants.
type Scoring struct {
	LineTable       map[int]int // Points for exactly k lines
	BasePoints      int         // Per-line points when k has no table entry
	ComboMultiplier float64     // Base of the geometric combo multiplier
}

// BasePointsFor returns the points for clearing k lines before multipliers.
func (s Scoring) BasePointsFor(k int) int {
	if k <= 0 {
		return 0
	}
	if pts, ok := s.LineTable[k]; ok {
		return pts
	}
	return s.BasePoints * k
}

// ComboFactor returns ComboMultiplier^combo, where combo is the chain
// length before the current clear.
func (s Scoring) ComboFactor(combo int) float64 {
	return math.Pow(s.ComboMultiplier, float64(combo))
}

// Gain returns floor(base(k) * combo factor * phase multiplier), saturated
// at math.MaxInt for very long chains.
func (s Scoring) Gain(k, combo int, phaseMultiplier float64) int {
	if k <= 0 {
		return 0
	}
	raw := float64(s.BasePointsFor(k)) * s.ComboFactor(combo) * phaseMultiplier
	if raw >= math.MaxInt {
		return math.MaxInt
	}
	return int(math.Floor(raw))
}

// addScore adds a non-negative gain to score, saturating at math.MaxInt.
func addScore(score, gain int) int {
	if gain > math.MaxInt-score {
		return math.MaxInt
	}
	return score + gain
}

// TableSizes returns the line counts that have table entries, ascending.
func (s Scoring) TableSizes() []int {
	return slices.Sorted(maps.Keys(s.LineTable))
}
