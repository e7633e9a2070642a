package engine_test

import (
	"errors"

	"github.com/vovakirdan/gridcraft/internal/games/gridcraft/engine"
)

// scriptedSource replays a fixed sequence of values, cycling when exhausted.
type scriptedSource struct {
	values []float64
	i      int
}

func (s *scriptedSource) Float64() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

func constSource(v float64) *scriptedSource {
	return &scriptedSource{values: []float64{v}}
}

// failingStore fails every load and save.
type failingStore struct {
	saves int
}

var errStoreDown = errors.New("store unavailable")

func (f *failingStore) LoadHighScore() (int, error) { return 0, errStoreDown }

func (f *failingStore) SaveHighScore(int) error {
	f.saves++
	return errStoreDown
}

func defaultPhases() engine.PhaseTable {
	return engine.PhaseTable{
		{Number: 1, Start: 90, End: 61, Speed: 1, Multiplier: 1.0},
		{Number: 2, Start: 60, End: 31, Speed: 1.5, Multiplier: 1.5},
		{Number: 3, Start: 30, End: 0, Speed: 2, Multiplier: 2.0},
	}
}

func defaultScoring() engine.Scoring {
	return engine.Scoring{
		LineTable:       map[int]int{1: 100, 2: 300, 3: 600, 4: 1000},
		BasePoints:      100,
		ComboMultiplier: 1.5,
	}
}

// rulesWith builds valid rules for an n×n grid over the given catalog.
func rulesWith(n int, catalog ...engine.Shape) engine.Rules {
	return engine.Rules{
		GridSize:  n,
		RoundTime: 90,
		BatchSize: 3,
		Colors:    5,
		Catalog:   catalog,
		Phases:    defaultPhases(),
		Scoring:   defaultScoring(),
	}
}

// gridFromRows builds a grid from text rows; digits are colors, '.' is empty.
func gridFromRows(rows ...string) *engine.Grid {
	g := engine.NewGrid(len(rows))
	for y, row := range rows {
		for x, ch := range row {
			if ch >= '1' && ch <= '9' {
				g.Set(x, y, int(ch-'0'))
			}
		}
	}
	return g
}

var (
	mono  = engine.ParseShape("mono", 1, "#")
	bar3  = engine.ParseShape("bar3", 1, "###")
	sq2   = engine.ParseShape("square2x2", 1, "##", "##")
	ell   = engine.ParseShape("smallL", 1, "#.", "#.", "##")
	plus  = engine.ParseShape("plus", 1, ".#.", "###", ".#.")
	vbar4 = engine.ParseShape("line4", 1, "#", "#", "#", "#")
)
