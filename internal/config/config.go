// Package config loads the YAML configuration of the squares module and its
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// SquaresConfig contains all tunables of the game.
type SquaresConfig struct {
	Reveal  RevealConfig  `yaml:"reveal"`
	Rules   RulesConfig   `yaml:"rules"`
	Scoring ScoringConfig `yaml:"scoring"`
	Display DisplayConfig `yaml:"display"`
}

// RevealConfig times the color reveal at the start of every stage.
type RevealConfig struct {
	Delay   Duration `yaml:"delay"`   // Dark period before the first cell lights up
	Stagger Duration `yaml:"stagger"` // Pause between two revealed cells
}

// RulesConfig decides when a game ends.
type RulesConfig struct {
	MaxStrikes int      `yaml:"max_strikes"` // Strikes allowed before game over
	TimeLimit  Duration `yaml:"time_limit"`  // 0 disables the timer
}

// ScoringConfig defines the points awarded by the game adapter.
type ScoringConfig struct {
	CellPoints    int `yaml:"cell_points"`    // Per correct press
	StagePoints   int `yaml:"stage_points"`   // Per completed stage
	SolveBonus    int `yaml:"solve_bonus"`    // Per solved module
	StrikePenalty int `yaml:"strike_penalty"` // Subtracted per strike, score never drops below 0
}

// DisplayConfig controls the front end.
type DisplayConfig struct {
	TickRate int `yaml:"tick_rate"` // Frames per second
}

// Validate reports every setting that cannot be played with.
func (c SquaresConfig) Validate() error {
	var errs []error
	if c.Reveal.Delay < 0 {
		errs = append(errs, fmt.Errorf("reveal.delay must not be negative, got %s", c.Reveal.Delay))
	}
	if c.Reveal.Stagger < 0 {
		errs = append(errs, fmt.Errorf("reveal.stagger must not be negative, got %s", c.Reveal.Stagger))
	}
	if c.Rules.MaxStrikes < 1 {
		errs = append(errs, fmt.Errorf("rules.max_strikes must be at least 1, got %d", c.Rules.MaxStrikes))
	}
	if c.Rules.TimeLimit < 0 {
		errs = append(errs, fmt.Errorf("rules.time_limit must not be negative, got %s", c.Rules.TimeLimit))
	}
	if c.Display.TickRate < 1 || c.Display.TickRate > 240 {
		errs = append(errs, fmt.Errorf("display.tick_rate must be within 1..240, got %d", c.Display.TickRate))
	}
	return errors.Join(errs...)
}

// Duration is a time.Duration written in YAML as "1750ms" or "2s".
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// UnmarshalYAML accepts Go duration strings such as "1750ms". A bare 0 is
// also allowed.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("line %d: duration must be a string: %w", value.Line, err)
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration back in its string form.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}
