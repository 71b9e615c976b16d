package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board variants",
	Long:  `Shows every registered board variant and its size.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "----", "-----")

	for _, v := range variants {
		size := fmt.Sprintf("%dx%d", v.Size, v.Size)
		fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, v.ID, size, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'term2048 play <id>' to play a board.")
	fmt.Printf("Use --size N for any other size up to %dx%d.\n", t2048.MaxSize, t2048.MaxSize)
}
