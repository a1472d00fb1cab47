// wirelight generates and plays connectivity puzzles in the terminal.
//
// Usage:
//
//	wirelight list                 - List available grid shapes
//	wirelight generate             - Build a puzzle and print its statistics
//	wirelight bias                 - Compare edge directions across bias presets
//	wirelight run <script.yaml>    - Drive a puzzle with a scripted action list
//	wirelight scores [shape]       - Show recorded runs
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.wirelight/configs, ./configs)
//	--seed <value>      - Set RNG seed for reproducible puzzles
//	--db <path>         - Set database path (default: ~/.wirelight/runs.db)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wirelight/internal/config"

	// Import topologies to register them
	_ "github.com/vovakirdan/wirelight/internal/topology"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

var (
	appCfg config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wirelight",
	Short: "wirelight - connect every cell to the power station",
	Long: `wirelight builds "light 'em all" puzzles on square and hexagonal grids.
Every cell holds a wire piece; rotate pieces until the power station's
light reaches the whole board.

Available commands:
  list      - Show all grid shapes
  generate  - Build a puzzle and print its statistics
  bias      - Compare horizontal/vertical edge ratios per bias preset
  run       - Play a scripted sequence of actions
  scores    - View recorded runs

Examples:
  wirelight list
  wirelight generate --shape hex --difficulty hard
  wirelight bias --trials 50
  wirelight run ./scripts/line.yaml
  wirelight scores square`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to runs database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(biasCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup loads the configuration, applies global flag overrides and builds
// the logger shared by every command.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Puzzle.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	cfg.Storage.Path = config.ExpandHome(cfg.Storage.Path)

	l, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	appCfg, logger = cfg, l
	return nil
}

// resolveSeed turns the "0 = random" convention into a concrete seed.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
