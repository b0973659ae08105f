package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardCoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultSquaresConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultSquaresConfig())
	}
	if cfg.Reveal.Delay.Std() != 1750*time.Millisecond {
		t.Errorf("Reveal.Delay = %s, expected 1.75s", cfg.Reveal.Delay)
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
reveal:
  delay: 2s
rules:
  time_limit: 5m
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Reveal.Delay.Std() != 2*time.Second {
		t.Errorf("Reveal.Delay = %s, expected 2s", cfg.Reveal.Delay)
	}
	if cfg.Rules.TimeLimit.Std() != 5*time.Minute {
		t.Errorf("Rules.TimeLimit = %s, expected 5m", cfg.Rules.TimeLimit)
	}
	if cfg.Reveal.Stagger != DefaultSquaresConfig().Reveal.Stagger {
		t.Errorf("Reveal.Stagger = %s, expected the default", cfg.Reveal.Stagger)
	}
	if cfg.Scoring != DefaultSquaresConfig().Scoring {
		t.Errorf("Scoring = %+v, expected defaults", cfg.Scoring)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad duration", "reveal:\n  delay: soon\n"},
		{"negative stagger", "reveal:\n  stagger: -5ms\n"},
		{"zero strikes", "rules:\n  max_strikes: 0\n"},
		{"tick rate too high", "display:\n  tick_rate: 1000\n"},
		{"unknown key", "reveal:\n  speed: 3\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Errorf("Parse(%q) succeeded, expected an error", tc.data)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  max_strikes: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Rules.MaxStrikes != 7 {
		t.Errorf("Rules.MaxStrikes = %d, expected 7", cfg.Rules.MaxStrikes)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing file) should fail")
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg != DefaultSquaresConfig() {
		t.Errorf("Load(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadPrefersLocalConfigs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "squares.yaml"), []byte("scoring:\n  solve_bonus: 999\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Scoring.SolveBonus != 999 {
		t.Errorf("Scoring.SolveBonus = %d, expected 999", cfg.Scoring.SolveBonus)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name       string
		preset     Preset
		maxStrikes int
		delay      time.Duration
	}{
		{"easy", PresetEasy, 5, 2500 * time.Millisecond},
		{"normal", PresetNormal, 3, 1750 * time.Millisecond},
		{"hard", PresetHard, 1, time.Second},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSquaresConfig()
			if err := ApplyPreset(&cfg, tc.preset); err != nil {
				t.Fatalf("ApplyPreset(%s) failed: %v", tc.preset, err)
			}
			if cfg.Rules.MaxStrikes != tc.maxStrikes {
				t.Errorf("MaxStrikes = %d, expected %d", cfg.Rules.MaxStrikes, tc.maxStrikes)
			}
			if cfg.Reveal.Delay.Std() != tc.delay {
				t.Errorf("Reveal.Delay = %s, expected %s", cfg.Reveal.Delay, tc.delay)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s produced an invalid config: %v", tc.preset, err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(" Hard "); err != nil || p != PresetHard {
		t.Errorf("ParsePreset(\" Hard \") = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ParsePreset(nightmare) error = %v, expected ErrUnknownPreset", err)
	}
	cfg := DefaultSquaresConfig()
	if err := ApplyPreset(&cfg, Preset("nightmare")); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ApplyPreset(nightmare) error = %v, expected ErrUnknownPreset", err)
	}
}
