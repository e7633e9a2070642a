package engine

// RandomSource yields uniform values in [0, 1).
// *math/rand.Rand satisfies it; tests substitute scripted sequences.
type RandomSource interface {
	Float64() float64
}

// Generator draws blocks from a catalog using weighted random selection.
type Generator struct {
	catalog Catalog
	colors  int
	rng     RandomSource
	total   int
}

// NewGenerator creates a generator over the catalog with colors in [1, colors].
// The catalog is assumed valid (see Rules.Validate).
func NewGenerator(catalog Catalog, colors int, rng RandomSource) *Generator {
	return &Generator{
		catalog: catalog,
		colors:  colors,
		rng:     rng,
		total:   catalog.TotalWeight(),
	}
}

// Next draws one block. The shape is picked first, then the color.
func (g *Generator) Next() Block {
	shape := g.pickShape()
	return Block{Shape: shape, Color: g.pickColor()}
}

// Batch draws count independent blocks.
func (g *Generator) Batch(count int) []Block {
	blocks := make([]Block, 0, count)
	for range count {
		blocks = append(blocks, g.Next())
	}
	return blocks
}

// pickShape walks the catalog subtracting weights until the remainder
// drops to zero or below. Falls back to the first entry if rounding leaves
// nothing selected.
func (g *Generator) pickShape() Shape {
	remaining := g.rng.Float64() * float64(g.total)
	for _, s := range g.catalog {
		remaining -= float64(s.Weight)
		if remaining <= 0 {
			return s
		}
	}
	return g.catalog[0]
}

// pickColor returns a uniform color index in [1, colors].
func (g *Generator) pickColor() int {
	c := int(g.rng.Float64()*float64(g.colors)) + 1
	if c > g.colors {
		c = g.colors
	}
	if c < 1 {
		c = 1
	}
	return c
}
