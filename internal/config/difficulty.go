package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a flag value to a preset. The empty string means
// "leave the configuration as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// Description returns a one-line summary for menus.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "120 second rounds"
	case DifficultyNormal:
		return "90 second rounds"
	case DifficultyHard:
		return "60 second rounds, starts in phase 2"
	case DifficultyFixed:
		return "No phases, x1.0 throughout"
	default:
		return ""
	}
}

// roundTimeForPreset returns the round length of a timed preset.
func roundTimeForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 120
	case DifficultyHard:
		return 60
	default:
		return 90
	}
}

// ApplyGridcraftPreset modifies the config based on a difficulty preset.
// Phase windows are absolute remaining times, so a longer round spends the
// extra time in the first phase and a shorter one skips it.
func ApplyGridcraftPreset(cfg *GridcraftConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}

	cfg.RoundTime = roundTimeForPreset(preset)

	if preset == DifficultyFixed {
		cfg.Phases = []PhaseConfig{
			{Number: 1, Start: cfg.RoundTime, End: 0, Speed: 1, Multiplier: 1.0},
		}
		return
	}

	if len(cfg.Phases) > 0 && cfg.Phases[0].Start < cfg.RoundTime {
		cfg.Phases[0].Start = cfg.RoundTime
	}
}
