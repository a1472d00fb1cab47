package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wirelight/internal/script"
)

var (
	flagScriptsDir string
	flagNoSave     bool
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Play a scripted sequence of actions",
	Long: `Load an action script, build the puzzle it describes and apply its steps
in order. The argument is either a path to a YAML file or the name of a
script in the scripts directory. The outcome is recorded in the runs
database unless --no-save is given.

A script looks like:

  shape: square
  width: 2
  height: 1
  seed: 7
  steps:
    - action: solve
    - action: move
      dir: right

Examples:
  wirelight run ./scripts/line.yaml
  wirelight run line --scripts ./scripts
  wirelight run hex-walk --seed 3 --no-save`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	runCmd.Flags().StringVar(&flagScriptsDir, "scripts", "scripts", "Directory searched for named scripts")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
}

func runScript(cmd *cobra.Command, args []string) error {
	s, err := loadScript(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		s.Config.Seed = flagSeed
	}
	s.Config.Seed = resolveSeed(s.Config.Seed)

	p, err := s.Build(logger)
	if err != nil {
		return err
	}
	logger.Debug("script loaded", "name", s.Name, "steps", len(s.Steps), "seed", s.Config.Seed)

	res := s.Run(p, logger)
	snap := res.Snapshot

	fmt.Printf("Run - %s (%s %dx%d, seed %d)\n", s.Name, snap.Topology, snap.Width, snap.Height, snap.Seed)
	fmt.Println()
	fmt.Printf("  %-10s %d\n", "Applied", res.Applied)
	fmt.Printf("  %-10s %d\n", "Rejected", res.Rejected)
	fmt.Printf("  %-10s %d\n", "Moves", snap.Moves)
	fmt.Printf("  %-10s %d\n", "Ticks", snap.Ticks)
	fmt.Printf("  %-10s %v\n", "Station", snap.Station)
	fmt.Printf("  %-10s %d / %d\n", "Lit", snap.Lit, snap.Cells)
	fmt.Printf("  %-10s %s\n", "State", snap.State)

	if flagNoSave {
		return nil
	}
	return saveRun(snap, string(s.Bias), s.Name)
}

// loadScript accepts a file path or a script name.
func loadScript(arg string) (script.Script, error) {
	if _, err := os.Stat(arg); err == nil {
		return script.LoadFile(arg)
	}
	s, err := script.NewLoader(flagScriptsDir).LoadByName(arg)
	if err != nil {
		return s, fmt.Errorf("no script file or named script %q: %w", arg, err)
	}
	return s, nil
}
