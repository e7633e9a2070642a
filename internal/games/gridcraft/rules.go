package gridcraft

import (
	"fmt"

	"github.com/vovakirdan/gridcraft/internal/config"
	"github.com/vovakirdan/gridcraft/internal/games/gridcraft/engine"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// RulesFromConfig converts a configuration to engine rules. The result is
// not validated.
func RulesFromConfig(cfg config.GridcraftConfig) engine.Rules {
	catalog := make(engine.Catalog, 0, len(cfg.Blocks))
	for _, b := range cfg.Blocks {
		catalog = append(catalog, engine.ParseShape(b.Name, b.Weight, b.Pattern...))
	}

	phases := make(engine.PhaseTable, 0, len(cfg.Phases))
	for _, p := range cfg.Phases {
		phases = append(phases, engine.Phase{
			Number:     p.Number,
			Start:      p.Start,
			End:        p.End,
			Speed:      p.Speed,
			Multiplier: p.Multiplier,
		})
	}

	lines := make(map[int]int, len(cfg.Scoring.Lines))
	for k, v := range cfg.Scoring.Lines {
		lines[k] = v
	}

	return engine.Rules{
		GridSize:  cfg.GridSize,
		RoundTime: cfg.RoundTime,
		BatchSize: cfg.BatchSize,
		Colors:    cfg.Colors,
		Catalog:   catalog,
		Phases:    phases,
		Scoring: engine.Scoring{
			LineTable:       lines,
			BasePoints:      cfg.Scoring.BasePoints,
			ComboMultiplier: cfg.Scoring.ComboMultiplier,
		},
	}
}

// LoadRules loads the configuration of a variant, applies the selected
// preset and validates the resulting rules.
func LoadRules(gameID string) (engine.Rules, config.GridcraftConfig, error) {
	return loadRules(gameID, difficultyPreset)
}

func loadRules(gameID string, preset config.DifficultyPreset) (engine.Rules, config.GridcraftConfig, error) {
	cfg, source, err := config.Load(gameID, configPath)
	if err != nil {
		return engine.Rules{}, cfg, err
	}
	config.ApplyGridcraftPreset(&cfg, preset)

	rules := RulesFromConfig(cfg)
	if err := rules.Validate(); err != nil {
		return rules, cfg, fmt.Errorf("%s config (%s): %w", gameID, source, err)
	}
	return rules, cfg, nil
}

// CheckConfig reports whether a variant's configuration can run.
func CheckConfig(gameID string) error {
	_, _, err := LoadRules(gameID)
	return err
}
