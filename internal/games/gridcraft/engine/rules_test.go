package engine_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gridcraft/internal/games/gridcraft/engine"
)

func TestRulesValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(r *engine.Rules)
		code   string
	}{
		{"valid", func(r *engine.Rules) {}, ""},
		{"zero grid", func(r *engine.Rules) { r.GridSize = 0 }, "INVALID_GRID"},
		{"zero round time", func(r *engine.Rules) { r.RoundTime = 0 }, "INVALID_ROUND_TIME"},
		{"empty batch", func(r *engine.Rules) { r.BatchSize = 0 }, "INVALID_BATCH"},
		{"no colors", func(r *engine.Rules) { r.Colors = 0 }, "INVALID_COLORS"},
		{"empty catalog", func(r *engine.Rules) { r.Catalog = nil }, "EMPTY_CATALOG"},
		{"zero weight", func(r *engine.Rules) {
			r.Catalog = engine.Catalog{engine.ParseShape("dead", 0, "#")}
		}, "INVALID_WEIGHT"},
		{"blank pattern", func(r *engine.Rules) {
			r.Catalog = engine.Catalog{engine.ParseShape("blank", 1, "..", "..")}
		}, "EMPTY_SHAPE"},
		{"no rows", func(r *engine.Rules) {
			r.Catalog = engine.Catalog{engine.ParseShape("none", 1)}
		}, "EMPTY_SHAPE"},
		{"ragged pattern", func(r *engine.Rules) {
			r.Catalog = engine.Catalog{engine.ParseShape("ragged", 1, "##", "#")}
		}, "RAGGED_SHAPE"},
		{"shape wider than grid", func(r *engine.Rules) {
			r.GridSize = 3
			r.Catalog = engine.Catalog{vbar4}
		}, "SHAPE_TOO_LARGE"},
		{"no phases", func(r *engine.Rules) { r.Phases = nil }, "EMPTY_PHASES"},
		{"zero multiplier", func(r *engine.Rules) { r.Phases[1].Multiplier = 0 }, "INVALID_PHASE"},
		{"inverted window", func(r *engine.Rules) { r.Phases[0].End = 100 }, "INVALID_PHASE"},
		{"phases hardest first", func(r *engine.Rules) {
			slices.Reverse(r.Phases)
		}, "INVALID_PHASE"},
		{"repeated phase number", func(r *engine.Rules) { r.Phases[2].Number = 2 }, "INVALID_PHASE"},
		{"overlapping windows", func(r *engine.Rules) { r.Phases[0].End = 50 }, "INVALID_PHASE"},
		{"shared boundary", func(r *engine.Rules) { r.Phases[1].End = 30 }, "INVALID_PHASE"},
		{"equal starts", func(r *engine.Rules) {
			r.Phases[1].Start = 90
			r.Phases[1].End = 61
		}, "INVALID_PHASE"},
		{"single phase", func(r *engine.Rules) {
			r.Phases = engine.PhaseTable{{Number: 1, Start: 90, End: 0, Multiplier: 1}}
		}, ""},
		{"zero combo base", func(r *engine.Rules) { r.Scoring.ComboMultiplier = 0 }, "INVALID_SCORING"},
		{"negative base points", func(r *engine.Rules) { r.Scoring.BasePoints = -1 }, "INVALID_SCORING"},
		{"negative table entry", func(r *engine.Rules) { r.Scoring.LineTable[2] = -5 }, "INVALID_SCORING"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := rulesWith(8, mono, bar3, sq2)
			tc.mutate(&r)

			err := r.Validate()
			if tc.code == "" {
				assert.NoError(t, err)
				return
			}

			var verr engine.ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tc.code, verr.Code)
			assert.Contains(t, err.Error(), "["+tc.code+"]")
		})
	}
}

func TestNewRoundRejectsInvalidRules(t *testing.T) {
	r := rulesWith(8)

	round, err := engine.NewRound(r, constSource(0), nil)
	assert.Nil(t, round)
	assert.Error(t, err)
}

func TestNewRoundRejectsMisorderedPhases(t *testing.T) {
	r := rulesWith(8, mono)
	slices.Reverse(r.Phases)

	round, err := engine.NewRound(r, constSource(0), nil)
	assert.Nil(t, round)

	var verr engine.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "INVALID_PHASE", verr.Code)
}
