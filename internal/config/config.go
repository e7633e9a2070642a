// Package config provides YAML-based configuration loading and difficulty
// presets for GridCraft.
package config

import "gopkg.in/yaml.v3"

// GridcraftConfig is the full rule set of a GridCraft variant.
type GridcraftConfig struct {
	GridSize   int           `yaml:"grid_size"`
	RoundTime  float64       `yaml:"round_time"`  // Seconds
	BatchSize  int           `yaml:"batch_size"`  // Blocks offered at once
	Colors     int           `yaml:"colors"`      // Block palette size
	UrgentTime float64       `yaml:"urgent_time"` // HUD highlights the timer at or below this
	Phases     []PhaseConfig `yaml:"phases"`
	Scoring    ScoringConfig `yaml:"scoring"`
	Blocks     []BlockConfig `yaml:"blocks"`
}

// PhaseConfig is one difficulty phase keyed by remaining round time.
type PhaseConfig struct {
	Number     int     `yaml:"number"`
	Start      float64 `yaml:"start"` // Upper bound, remaining seconds
	End        float64 `yaml:"end"`   // Lower bound, remaining seconds
	Speed      float64 `yaml:"speed"`
	Multiplier float64 `yaml:"multiplier"`
}

// ScoringConfig holds the line-clear scoring constants.
type ScoringConfig struct {
	BasePoints      int         `yaml:"base_points"`
	ComboMultiplier float64     `yaml:"combo_multiplier"`
	Lines           map[int]int `yaml:"lines"` // Points for exactly k lines
}

// BlockConfig is one catalog entry. Pattern rows use '#' for occupied
// cells and '.' for empty ones.
type BlockConfig struct {
	Name    string   `yaml:"name"`
	Weight  int      `yaml:"weight"`
	Pattern []string `yaml:"pattern"`
}

// Marshal renders the configuration as YAML.
func (c GridcraftConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
