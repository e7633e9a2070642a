package engine

// HasAnyLegalMove reports whether at least one block fits somewhere on the
// grid. Every origin is tried for every block; the scan stops at the first
// fit. An empty block list has no legal move.
func HasAnyLegalMove(g *Grid, blocks []Block) bool {
	for _, b := range blocks {
		if _, _, ok := FirstFit(g, b.Shape); ok {
			return true
		}
	}
	return false
}

// FirstFit returns the first origin (row-major) where the shape can be
// placed.
func FirstFit(g *Grid, s Shape) (x, y int, ok bool) {
	for oy := range g.N {
		for ox := range g.N {
			if g.CanPlace(s, ox, oy) {
				return ox, oy, true
			}
		}
	}
	return 0, 0, false
}
