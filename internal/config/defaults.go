package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/squares.yaml
var defaultSquaresYAML []byte

// DefaultSquaresConfig returns the hard-coded configuration, matching the
// embedded defaults/squares.yaml.
func DefaultSquaresConfig() SquaresConfig {
	return SquaresConfig{
		Reveal: RevealConfig{
			Delay:   Duration(1750 * time.Millisecond),
			Stagger: Duration(30 * time.Millisecond),
		},
		Rules: RulesConfig{
			MaxStrikes: 3,
			TimeLimit:  0,
		},
		Scoring: ScoringConfig{
			CellPoints:    10,
			StagePoints:   50,
			SolveBonus:    200,
			StrikePenalty: 100,
		},
		Display: DisplayConfig{
			TickRate: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSquaresYAML
}
