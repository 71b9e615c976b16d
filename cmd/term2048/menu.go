package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board from an interactive menu",
	Long: `Start term2048 in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a board.
Esc during a game records the session and returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play board
  Tab          - Session history
  Q            - Quit

Examples:
  term2048 menu
  term2048 menu --db ./journal.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	err := tui.RunSession(store, runtimeConfig(width, height), logger)

	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
		os.Exit(1)
	}
}
