// term2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	term2048 list                - List board variants
//	term2048 play [variant]      - Play a board
//	term2048 menu                - Pick a board interactively
//	term2048 history [variant]   - Show recorded sessions
//	term2048 serve               - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set journal path (default: ~/.term2048/term2048.db)
//	--config <path>      - Load a specific config file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	// Import variants to register them
	_ "github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// Set by the root pre-run hook
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "term2048",
	Short: "term2048 - slide and merge tiles in your terminal",
	Long: `term2048 is the 2048 puzzle for the terminal: slide the tiles with
the arrow keys or hjkl and merge equal neighbours into larger powers of two.

Available commands:
  list     - Show all board variants
  play     - Play a board directly
  menu     - Interactive board picker
  history  - View recorded sessions
  serve    - Start SSH server for remote play

Examples:
  term2048 play
  term2048 play large
  term2048 play --size 7 --seed 42
  term2048 serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to session journal (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the config and builds the logger before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "term2048",
	})
	if cfg.Log.Level != "" {
		level, err := log.ParseLevel(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
		}
		logger.SetLevel(level)
	}

	appConfig = cfg
	return nil
}

// runtimeConfig builds the per-game settings for a terminal of the given size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		Seed:       flagSeed,
		Spawn4Prob: appConfig.Board.Spawn4Prob,
	}
}

// openStore opens the journal, or returns nil with a warning so play can
// continue without it.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		logger.Warn("could not open session journal", "error", err)
		return nil
	}
	return store
}
