package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wirelight/internal/config"
	"github.com/vovakirdan/wirelight/internal/engine"
	"github.com/vovakirdan/wirelight/internal/registry"
)

// Grid flags shared by generate and bias.
var (
	flagShape      string
	flagWidth      int
	flagHeight     int
	flagBias       string
	flagDifficulty string
)

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagShape, "shape", "", "Grid shape (see 'wirelight list')")
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width in cells")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height in cells")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// puzzleConfig applies command flags on top of the loaded configuration
// and validates the result.
func puzzleConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := appCfg
	flags := cmd.Flags()
	if flags.Changed("shape") {
		cfg.Puzzle.Shape = flagShape
	}
	if flags.Changed("width") {
		cfg.Puzzle.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Puzzle.Height = flagHeight
	}
	if flags.Changed("bias") {
		cfg.Bias.Preset = flagBias
	}

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyDifficultyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildPuzzle creates a puzzle from a validated configuration, resolving a
// zero seed to the current time.
func buildPuzzle(cfg config.Config) (*engine.Puzzle, error) {
	topo, err := registry.Create(cfg.Puzzle.Shape)
	if err != nil {
		return nil, err
	}
	bias, err := cfg.EngineBias()
	if err != nil {
		return nil, err
	}
	rc := cfg.Runtime()
	rc.Seed = resolveSeed(rc.Seed)

	return engine.New(rc,
		engine.WithTopology(topo),
		engine.WithBias(bias),
		engine.WithLogger(logger))
}
