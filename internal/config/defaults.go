package config

import (
	_ "embed"

	"github.com/vovakirdan/wirelight/internal/core"
)

//go:embed defaults/wirelight.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	rc := core.DefaultConfig()
	return Config{
		Puzzle: PuzzleConfig{
			Shape:   "square",
			Width:   rc.Width,
			Height:  rc.Height,
			Station: StationConfig{Col: rc.Station.X, Row: rc.Station.Y},
			Seed:    rc.Seed,
		},
		Bias: BiasConfig{
			Preset: "none",
		},
		Difficulty: DifficultyConfig{
			MinSize: 4,
			MaxSize: 16,
		},
		Storage: StorageConfig{
			Path: "~/.wirelight/runs.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}
