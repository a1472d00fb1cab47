package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wirelight/internal/registry"
	"github.com/vovakirdan/wirelight/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [shape]",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs for a grid shape: solved runs first, then
fewest moves, then fewest ticks. Without a shape, every run is ranked and a
per-shape summary is printed.

Examples:
  wirelight scores
  wirelight scores hex --limit 5
  wirelight scores --recent
  wirelight scores square --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs for the shape (all shapes when omitted)")
}

func runScores(cmd *cobra.Command, args []string) error {
	shape := ""
	if len(args) == 1 {
		shape = args[0]
		if !registry.Exists(shape) {
			return fmt.Errorf("unknown shape %q, run 'wirelight list' to see available shapes", shape)
		}
	}

	store, err := storage.Open(appCfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(shape); err != nil {
			return err
		}
		logger.Info("runs cleared", "shape", shape)
		return nil
	}

	var runs []storage.Run
	if flagRecent {
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(shape, flagLimit)
	}
	if err != nil {
		return err
	}

	title := "all shapes"
	if shape != "" {
		title = shape
	}
	fmt.Printf("Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Try 'wirelight generate --solve --save' or 'wirelight run <script>'.")
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-6s  %-5s  %-6s  %-12s  %s\n", "Rank", "Shape", "Size", "Moves", "Ticks", "Solved", "Source", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-6s  %-5s  %-6s  %-12s  %s\n", "----", "-----", "----", "-----", "-----", "------", "------", "----")
	for i, r := range runs {
		size := fmt.Sprintf("%dx%d", r.Width, r.Height)
		solved := "no"
		if r.Solved {
			solved = "yes"
		}
		fmt.Printf("  %-4d  %-7s  %-6s  %-6d  %-5d  %-6s  %-12s  %s\n",
			i+1, r.Topology, size, r.Moves, r.Ticks, solved, r.Source, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if shape != "" {
		if best, err := store.BestRun(shape); err == nil && best != nil {
			fmt.Println()
			fmt.Printf("Best: %d moves, %d ticks (seed %d)\n", best.Moves, best.Ticks, best.Seed)
		}
		return nil
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println()
	fmt.Println("Summary:")
	for _, id := range ids {
		st := stats[id]
		fmt.Printf("  %-7s  %d runs, %d solved, best %d moves, avg %.1f moves, last %s\n",
			id, st.Runs, st.Solved, st.BestMoves, st.AvgMoves, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
