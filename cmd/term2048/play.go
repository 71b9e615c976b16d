package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/registry"
)

var flagSize int

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Start playing the given board variant, or the configured default.

Controls:
  Arrows/hjkl/WASD  - Slide tiles
  P                 - Pause
  R                 - Restart with a new board
  Ctrl+S            - Save a screenshot to ~/.term2048/screenshots
  ?                 - Show all keys
  Q/Ctrl+C          - Quit

Examples:
  term2048 play
  term2048 play mini
  term2048 play --size 7
  term2048 play classic --seed 1234`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size, overrides the variant (2-8)")
}

func runPlay(_ *cobra.Command, args []string) {
	variant := ""
	if len(args) > 0 {
		variant = args[0]
	}

	game, err := resolveGame(variant, flagSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'term2048 list' to see available boards.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore()

	logger.Debug("starting game", "variant", game.ID(), "seed", flagSeed)
	runErr := tui.Run(game, store, runtimeConfig(width, height), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveGame picks the board from, in order: the size flag, the variant
// argument, the configured size and the configured variant.
// A size without a registered variant becomes a custom board.
func resolveGame(variant string, size int) (registry.Game, error) {
	if size == 0 && variant == "" {
		size = appConfig.Board.Size
		variant = appConfig.Board.Variant
	}

	if size != 0 {
		if info, ok := registry.BySize(size); ok {
			return registry.Create(info.ID)
		}
		v, err := t2048.CustomVariant(size)
		if err != nil {
			return nil, err
		}
		return t2048.New(v), nil
	}

	if variant == "" {
		variant = "classic"
	}
	if !registry.Exists(variant) {
		return nil, fmt.Errorf("unknown variant %q", variant)
	}
	return registry.Create(variant)
}
