// Package engine implements the GridCraft round engine: block catalog and
// generator, grid placement, line clearing and scoring, phase tracking and
// the game-over check.
//
// The engine is pure. It performs no timing and no I/O of its own; the
// caller supplies elapsed time, a random source and a high-score store.
package engine

import "strings"

// Shape is an immutable rectangular occupancy pattern for a placeable block.
// Cells[r][c] is true when row r, column c of the pattern is occupied.
type Shape struct {
	Name   string
	Cells  [][]bool
	Weight int // Relative spawn weight, must be positive
}

// ParseShape builds a shape from text rows where '#' marks an occupied cell
// and any other rune marks an empty one.
func ParseShape(name string, weight int, rows ...string) Shape {
	cells := make([][]bool, len(rows))
	for r, row := range rows {
		runes := []rune(row)
		cells[r] = make([]bool, len(runes))
		for c, ch := range runes {
			cells[r][c] = ch == '#'
		}
	}
	return Shape{Name: name, Cells: cells, Weight: weight}
}

// Rows returns the pattern height.
func (s Shape) Rows() int {
	return len(s.Cells)
}

// Cols returns the pattern width (width of the first row).
func (s Shape) Cols() int {
	if len(s.Cells) == 0 {
		return 0
	}
	return len(s.Cells[0])
}

// Occupied reports whether the pattern cell at (row, col) is filled.
// Out-of-range coordinates are empty.
func (s Shape) Occupied(row, col int) bool {
	if row < 0 || row >= len(s.Cells) {
		return false
	}
	if col < 0 || col >= len(s.Cells[row]) {
		return false
	}
	return s.Cells[row][col]
}

// Area returns the number of occupied cells.
func (s Shape) Area() int {
	n := 0
	for _, row := range s.Cells {
		for _, filled := range row {
			if filled {
				n++
			}
		}
	}
	return n
}

// String renders the pattern as '#'/'.' rows separated by newlines.
func (s Shape) String() string {
	var sb strings.Builder
	for r, row := range s.Cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Catalog is the fixed list of shapes blocks are drawn from.
type Catalog []Shape

// TotalWeight returns the sum of all shape weights.
func (c Catalog) TotalWeight() int {
	total := 0
	for _, s := range c {
		total += s.Weight
	}
	return total
}

// Block is a placeable piece: a catalog shape with an assigned color index.
type Block struct {
	Shape Shape
	Color int // 1..K
}
