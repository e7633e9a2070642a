package engine

// Grid is the square playing field. Cells are stored in row-major order
// (index = y*N + x); 0 means empty, 1..K is an occupying color.
type Grid struct {
	N     int
	Cells []int
}

// NewGrid creates an empty N×N grid.
func NewGrid(n int) *Grid {
	return &Grid{
		N:     n,
		Cells: make([]int, n*n),
	}
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(x, y int) int {
	return y*g.N + x
}

// InBounds returns true if (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.N && y >= 0 && y < g.N
}

// Get returns the cell at column x, row y. Out-of-bounds reads return 0.
func (g *Grid) Get(x, y int) int {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.Cells[g.index(x, y)]
}

// Set writes a cell value. Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y, v int) {
	if g.InBounds(x, y) {
		g.Cells[g.index(x, y)] = v
	}
}

// Reset empties every cell.
func (g *Grid) Reset() {
	clear(g.Cells)
}

// CanPlace reports whether every occupied cell of the shape, with its
// top-left corner at (x, y), lands in bounds on an empty cell.
func (g *Grid) CanPlace(s Shape, x, y int) bool {
	for r, row := range s.Cells {
		for c, filled := range row {
			if !filled {
				continue
			}
			gx, gy := x+c, y+r
			if !g.InBounds(gx, gy) {
				return false
			}
			if g.Cells[g.index(gx, gy)] != 0 {
				return false
			}
		}
	}
	return true
}

// Place writes color into every occupied cell of the shape at (x, y).
// Returns false and leaves the grid untouched when CanPlace fails.
func (g *Grid) Place(s Shape, x, y, color int) bool {
	if !g.CanPlace(s, x, y) {
		return false
	}
	for r, row := range s.Cells {
		for c, filled := range row {
			if filled {
				g.Cells[g.index(x+c, y+r)] = color
			}
		}
	}
	return true
}

// RowFull returns true if every cell of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= g.N {
		return false
	}
	for x := range g.N {
		if g.Cells[g.index(x, y)] == 0 {
			return false
		}
	}
	return true
}

// ColFull returns true if every cell of column x is occupied.
func (g *Grid) ColFull(x int) bool {
	if x < 0 || x >= g.N {
		return false
	}
	for y := range g.N {
		if g.Cells[g.index(x, y)] == 0 {
			return false
		}
	}
	return true
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	n := 0
	for _, v := range g.Cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]int, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{N: g.N, Cells: cells}
}

// Equal returns true if both grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.N != other.N {
		return false
	}
	for i, v := range g.Cells {
		if v != other.Cells[i] {
			return false
		}
	}
	return true
}
