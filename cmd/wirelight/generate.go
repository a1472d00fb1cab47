package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wirelight/internal/engine"
	"github.com/vovakirdan/wirelight/internal/storage"
)

var (
	flagShowTree bool
	flagSolve    bool
	flagSave     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build a puzzle and print its statistics",
	Long: `Generate a scrambled puzzle and report how it was built: the number of
spanning tree edges split by axis, the tree diameter, the light radius,
and how much of the board the station lights before any move.

Difficulty options:
  easy   - smallest board from the configured size range
  normal - 30% into the size range
  hard   - 70% into the size range
  fixed  - keep the configured width and height

Examples:
  wirelight generate
  wirelight generate --shape hex --width 10 --height 6
  wirelight generate --bias horizontal --tree
  wirelight generate --difficulty hard --seed 42 --solve --save`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addGridFlags(generateCmd)
	generateCmd.Flags().StringVar(&flagBias, "bias", "", "Bias preset: none, horizontal, vertical")
	generateCmd.Flags().BoolVar(&flagShowTree, "tree", false, "List every spanning tree link")
	generateCmd.Flags().BoolVar(&flagSolve, "solve", false, "Wire the solution before reporting")
	generateCmd.Flags().BoolVar(&flagSave, "save", false, "Record the puzzle in the runs database")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := puzzleConfig(cmd)
	if err != nil {
		return err
	}
	p, err := buildPuzzle(cfg)
	if err != nil {
		return err
	}
	if flagSolve {
		p.ForceSolve()
	}

	snap := p.Snapshot()
	horizontal, vertical := p.Forest().AxisCounts()

	fmt.Printf("Puzzle - %s %dx%d (seed %d)\n", p.Topology().Title(), snap.Width, snap.Height, snap.Seed)
	fmt.Println()
	fmt.Printf("  %-12s %d (%d horizontal, %d vertical)\n", "Tree edges", horizontal+vertical, horizontal, vertical)
	fmt.Printf("  %-12s %d\n", "Components", snap.Components)
	fmt.Printf("  %-12s %d\n", "Diameter", snap.Diameter)
	fmt.Printf("  %-12s %d\n", "Radius", snap.Radius)
	fmt.Printf("  %-12s %v\n", "Station", snap.Station)
	fmt.Printf("  %-12s %d / %d\n", "Lit", snap.Lit, snap.Cells)
	fmt.Printf("  %-12s %s\n", "State", snap.State)

	if flagShowTree {
		fmt.Println()
		fmt.Println("Spanning tree:")
		for _, l := range p.Tree() {
			fmt.Printf("  %v - %v  weight %-4d %s\n", l.A, l.B, l.Weight, l.Axis)
		}
	}

	if snap.State == engine.StateBroken {
		logger.Warn("grid is not connected, the puzzle has no solution", "components", snap.Components)
	}

	if flagSave {
		return saveRun(snap, cfg.Bias.Preset, "generate")
	}
	return nil
}

// saveRun records a snapshot in the runs database.
func saveRun(snap engine.Snapshot, bias, source string) error {
	if bias == "" {
		bias = string(engine.BiasNone)
	}
	store, err := storage.Open(appCfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveRun(storage.NewRun(snap, bias, source))
	if err != nil {
		return err
	}
	logger.Info("run recorded", "id", id, "db", appCfg.Storage.Path)
	return nil
}
