package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/vovakirdan/gridcraft/internal/core"
	"github.com/vovakirdan/gridcraft/internal/games/gridcraft"
	"github.com/vovakirdan/gridcraft/internal/storage"
)

// run executes the root command in a scratch home and working directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runDB(t, filepath.Join(t.TempDir(), "scores.db"), args...)
}

// runDB is run against the given score database.
func runDB(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	reset := func() {
		flagConfig = ""
		flagDifficulty = ""
		flagScoresLimit = 10
		flagScoresRecent = false
		flagScoresClear = false
		flagScoresRound = ""
		gridcraft.SetConfigPath("")
		gridcraft.SetDifficultyPreset("")
	}
	// Cobra keeps flag values between executions
	reset()
	t.Cleanup(reset)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--db", db))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestApplyEnvDefaults(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	db := flags.String("db", "default.db", "")
	level := flags.String("log-level", "info", "")
	if err := flags.Parse([]string{"--log-level", "warn"}); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GRIDCRAFT_DB", "/tmp/env.db")
	t.Setenv("GRIDCRAFT_LOG_LEVEL", "debug")

	if err := applyEnvDefaults(flags); err != nil {
		t.Fatalf("applyEnvDefaults() failed: %v", err)
	}
	if *db != "/tmp/env.db" {
		t.Errorf("db = %q, expected the environment value", *db)
	}
	if *level != "warn" {
		t.Errorf("log-level = %q, explicit flag should win", *level)
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.WriteFile(".env", []byte("GRIDCRAFT_CONFIG=/from/dotenv.yaml\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("GRIDCRAFT_CONFIG") })

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := flags.String("config", "", "")

	if err := godotenvLoadAndApply(flags); err != nil {
		t.Fatalf("loading .env failed: %v", err)
	}
	if *cfg != "/from/dotenv.yaml" {
		t.Errorf("config = %q, expected the .env value", *cfg)
	}
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, want := range []string{"gridcraft", "gridcraft_mini", "GridCraft Mini"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := run(t, "config", "gridcraft_mini", "--difficulty", "hard")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	for _, want := range []string{"grid_size: 8", "round_time: 60", "blocks:"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigCommandRejectsBadInput(t *testing.T) {
	if _, err := run(t, "config", "tetris"); err == nil {
		t.Error("config with an unknown variant should fail")
	}
	if _, err := run(t, "config", "--difficulty", "extreme"); err == nil {
		t.Error("config with an unknown difficulty should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid_size: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := run(t, "config", "--config", path)
	if err == nil || !strings.Contains(err.Error(), "INVALID_GRID") {
		t.Errorf("config with grid_size 0: err = %v, expected INVALID_GRID", err)
	}
}

func TestScoresCommandEmpty(t *testing.T) {
	out, err := run(t, "scores", "gridcraft")
	if err != nil {
		t.Fatalf("scores failed: %v", err)
	}
	if !strings.Contains(out, "No rounds recorded yet.") {
		t.Errorf("scores output:\n%s", out)
	}
}

func TestScoresCommandRound(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(db)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveRound("gridcraft", core.RoundSummary{
		Score: 1500, Lines: 7, BestCombo: 3, Placements: 12, Seconds: 90,
	})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	store.Close()

	out, err := runDB(t, db, "scores", "gridcraft", "--round", id)
	if err != nil {
		t.Fatalf("scores --round failed: %v", err)
	}
	for _, want := range []string{id, "1,500", "x3", "Placements  12"} {
		if !strings.Contains(out, want) {
			t.Errorf("scores --round output missing %q:\n%s", want, out)
		}
	}

	if _, err := runDB(t, db, "scores", "gridcraft_mini", "--round", id); err == nil {
		t.Error("a round of another variant should not be shown")
	}
	if _, err := runDB(t, db, "scores", "gridcraft", "--round", "no-such-round"); err == nil {
		t.Error("an unknown round should fail")
	}
}

func TestPrintRoundHint(t *testing.T) {
	var out bytes.Buffer
	printRoundHint(&out, "gridcraft", "")
	if out.Len() != 0 {
		t.Errorf("no round recorded, expected no output, got %q", out.String())
	}

	printRoundHint(&out, "gridcraft_mini", "abc")
	if !strings.Contains(out.String(), "gridcraft scores gridcraft_mini --round abc") {
		t.Errorf("hint = %q", out.String())
	}
}
