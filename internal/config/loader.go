package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const fileName = "squares.yaml"

// ErrUnknownPreset is returned for a difficulty name that is not a preset.
var ErrUnknownPreset = errors.New("config: unknown preset")

// Load reads the configuration.
// Search order: customPath -> ~/.squares/configs/squares.yaml ->
// ./configs/squares.yaml -> embedded default -> hard-coded default.
// Only a bad customPath is an error; broken files further down the list are
// skipped.
func Load(customPath string) (SquaresConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SquaresConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SquaresConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(fileName), filepath.Join("configs", fileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := Parse(defaultSquaresYAML); err == nil {
		return cfg, nil
	}
	return DefaultSquaresConfig(), nil
}

// Parse decodes YAML on top of the defaults, so a file only needs the keys
// it changes. Unknown keys are rejected.
func Parse(data []byte) (SquaresConfig, error) {
	cfg := DefaultSquaresConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return SquaresConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SquaresConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".squares", "configs", filename)
}

// Preset is a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// Presets lists the known presets from easiest to hardest.
func Presets() []Preset {
	return []Preset{PresetEasy, PresetNormal, PresetHard}
}

// ParsePreset converts a case-insensitive name to a Preset.
func ParsePreset(name string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case PresetEasy, PresetNormal, PresetHard:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// ApplyPreset adjusts the reveal timing and strike allowance. Scoring and
// display settings are left alone. Normal keeps whatever was loaded.
func ApplyPreset(cfg *SquaresConfig, preset Preset) error {
	switch preset {
	case PresetEasy:
		cfg.Reveal.Delay = Duration(2500 * time.Millisecond)
		cfg.Reveal.Stagger = Duration(60 * time.Millisecond)
		cfg.Rules.MaxStrikes = 5
	case PresetNormal:
	case PresetHard:
		cfg.Reveal.Delay = Duration(1000 * time.Millisecond)
		cfg.Reveal.Stagger = Duration(15 * time.Millisecond)
		cfg.Rules.MaxStrikes = 1
		if cfg.Rules.TimeLimit == 0 {
			cfg.Rules.TimeLimit = Duration(3 * time.Minute)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
	return nil
}
