package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/registry"
	"github.com/vovakirdan/term2048/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [variant]",
	Short: "Show recorded sessions",
	Long: `Display the most recent sessions from the journal, optionally for a
single board variant. Without a variant a per-board summary is printed first.

Examples:
  term2048 history
  term2048 history classic --limit 20
  term2048 history mini --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the sessions instead of showing them")
}

func runHistory(_ *cobra.Command, args []string) {
	variant := ""
	if len(args) > 0 {
		variant = args[0]
		if !registry.Exists(variant) {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
			fmt.Fprintln(os.Stderr, "Run 'term2048 list' to see available boards.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSessions(variant); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
			return
		}
		fmt.Println("Sessions cleared.")
		return
	}

	if variant == "" {
		printSummary(store)
	}

	sessions, err := store.RecentSessions(variant, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		return
	}

	title := "all boards"
	if info, ok := registry.Lookup(variant); ok {
		title = info.Title
	}
	fmt.Printf("Recent sessions - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'term2048 play' to start the journal!")
		return
	}

	fmt.Printf("  %-8s  %-6s  %-6s  %-6s  %-8s  %s\n", "Board", "Max", "Moves", "Spawns", "Time", "Date")
	fmt.Printf("  %-8s  %-6s  %-6s  %-6s  %-8s  %s\n", "-----", "---", "-----", "------", "----", "----")

	for _, s := range sessions {
		fmt.Printf("  %-8s  %-6d  %-6d  %-6d  %-8s  %s\n",
			s.Variant, s.MaxTile, s.Moves, s.Spawns,
			fmt.Sprintf("%d:%02d", s.Duration/60, s.Duration%60),
			s.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}

// printSummary prints one line of aggregated stats per played variant.
func printSummary(store *storage.Store) {
	stats, err := store.AllVariantStats()
	if err != nil || len(stats) == 0 {
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Summary")
	fmt.Println()
	fmt.Printf("  %-8s  %-8s  %-6s  %-9s  %s\n", "Board", "Sessions", "Best", "Avg moves", "Last played")
	fmt.Printf("  %-8s  %-8s  %-6s  %-9s  %s\n", "-----", "--------", "----", "---------", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-8s  %-8d  %-6d  %-9.1f  %s\n",
			id, s.Sessions, s.BestTile, s.AvgMoves, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	fmt.Println()
}
