package config

import (
	_ "embed"
)

//go:embed defaults/gridcraft.yaml
var defaultGridcraftYAML []byte

//go:embed defaults/gridcraft_mini.yaml
var defaultGridcraftMiniYAML []byte

// DefaultGridcraftConfig returns the standard 10×10 configuration.
func DefaultGridcraftConfig() GridcraftConfig {
	return GridcraftConfig{
		GridSize:   10,
		RoundTime:  90,
		BatchSize:  3,
		Colors:     5,
		UrgentTime: 10,
		Phases: []PhaseConfig{
			{Number: 1, Start: 90, End: 61, Speed: 1, Multiplier: 1.0},
			{Number: 2, Start: 60, End: 31, Speed: 1.5, Multiplier: 1.5},
			{Number: 3, Start: 30, End: 0, Speed: 2, Multiplier: 2.0},
		},
		Scoring: ScoringConfig{
			BasePoints:      100,
			ComboMultiplier: 1.5,
			Lines:           map[int]int{1: 100, 2: 300, 3: 600, 4: 1000},
		},
		Blocks: []BlockConfig{
			{Name: "square", Weight: 100, Pattern: []string{"##", "##"}},
			{Name: "line4", Weight: 80, Pattern: []string{"####"}},
			{Name: "line5", Weight: 60, Pattern: []string{"#####"}},
			{Name: "small_l", Weight: 70, Pattern: []string{"#.", "#.", "##"}},
			{Name: "large_l", Weight: 50, Pattern: []string{"#..", "#..", "###"}},
			{Name: "tee", Weight: 70, Pattern: []string{"###", ".#."}},
			{Name: "zig", Weight: 60, Pattern: []string{"##.", ".##"}},
			{Name: "small_corner", Weight: 90, Pattern: []string{"##", "#."}},
			{Name: "large_corner", Weight: 50, Pattern: []string{"###", "#..", "#.."}},
			{Name: "plus", Weight: 40, Pattern: []string{".#.", "###", ".#."}},
			{Name: "cup", Weight: 50, Pattern: []string{"#.#", "###"}},
		},
	}
}

// DefaultGridcraftMiniConfig returns the 8×8 variant. It shares the catalog
// and scoring of the standard game.
func DefaultGridcraftMiniConfig() GridcraftConfig {
	cfg := DefaultGridcraftConfig()
	cfg.GridSize = 8
	return cfg
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "gridcraft":
		return defaultGridcraftYAML
	case "gridcraft_mini":
		return defaultGridcraftMiniYAML
	default:
		return nil
	}
}

// DefaultFor returns the hard-coded default for a game.
func DefaultFor(gameID string) GridcraftConfig {
	if gameID == "gridcraft_mini" {
		return DefaultGridcraftMiniConfig()
	}
	return DefaultGridcraftConfig()
}
