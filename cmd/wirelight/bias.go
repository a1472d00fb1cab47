package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wirelight/internal/engine"
)

var flagTrials int

var biasCmd = &cobra.Command{
	Use:   "bias",
	Short: "Compare edge directions across bias presets",
	Long: `Generate a batch of puzzles for every bias preset and report what share
of the spanning tree edges run horizontally and vertically.

Examples:
  wirelight bias
  wirelight bias --shape hex --trials 200 --seed 1`,
	Args: cobra.NoArgs,
	RunE: runBias,
}

func init() {
	addGridFlags(biasCmd)
	biasCmd.Flags().IntVar(&flagTrials, "trials", 50, "Puzzles generated per preset")
}

func runBias(cmd *cobra.Command, _ []string) error {
	if flagTrials <= 0 {
		return fmt.Errorf("--trials must be positive, got %d", flagTrials)
	}
	cfg, err := puzzleConfig(cmd)
	if err != nil {
		return err
	}
	base := resolveSeed(cfg.Puzzle.Seed)

	fmt.Printf("Bias - %s %dx%d, %d trials per preset (seeds from %d)\n",
		cfg.Puzzle.Shape, cfg.Puzzle.Width, cfg.Puzzle.Height, flagTrials, base)
	fmt.Println()
	fmt.Printf("  %-10s  %-10s  %-10s  %s\n", "Preset", "Horizontal", "Vertical", "Share H")
	fmt.Printf("  %-10s  %-10s  %-10s  %s\n", "------", "----------", "--------", "-------")

	for _, preset := range engine.Presets() {
		run := cfg
		run.Bias.Preset = string(preset)
		run.Bias.Horizontal, run.Bias.Vertical = 0, 0

		var horizontal, vertical int
		for i := 0; i < flagTrials; i++ {
			run.Puzzle.Seed = base + int64(i)
			p, err := buildPuzzle(run)
			if err != nil {
				return err
			}
			h, v := p.Forest().AxisCounts()
			horizontal += h
			vertical += v
		}

		share := 0.0
		if total := horizontal + vertical; total > 0 {
			share = float64(horizontal) / float64(total)
		}
		fmt.Printf("  %-10s  %-10d  %-10d  %.2f\n", preset, horizontal, vertical, share)
	}
	return nil
}
