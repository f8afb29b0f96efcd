package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/daynight/internal/registry"
	"github.com/vovakirdan/daynight/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [game]",
	Short: "Show recorded sessions for a game",
	Long: `Display the most recent sessions for the specified game, newest
first, along with all-time statistics. Defaults to daynight.

Examples:
  daynight history
  daynight history --limit 25
  daynight history --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded sessions for the game")
}

func runHistory(cmd *cobra.Command, args []string) {
	gameID := "daynight"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'daynight list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearSessions(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Session history cleared for %s.\n", title)
		return
	}

	// Get recent sessions
	sessions, err := store.RecentSessions(gameID, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	// Display sessions
	fmt.Printf("Session History - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'daynight play %s' to record the first one!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-8s  %-4s  %-5s  %s\n", "When", "Length", "Day", "Night", "Flips")
	fmt.Printf("  %-16s  %-8s  %-4s  %-5s  %s\n", "----", "------", "---", "-----", "-----")

	// Print sessions
	for _, sess := range sessions {
		dateStr := sess.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-8s  %-4d  %-5d  %d\n",
			dateStr, formatDuration(sess.DurationMs), sess.DayCells, sess.NightCells, sess.Flips)
	}

	// Show all-time stats
	stats, err := store.Stats(gameID)
	if err == nil && stats.SessionsCount > 0 {
		fmt.Println()
		fmt.Printf("All time: %d sessions, %d flips total, best %d, %s played\n",
			stats.SessionsCount, stats.TotalFlips, stats.MaxFlips, formatDuration(stats.TotalPlayMs))
	}
}

// formatDuration renders a millisecond duration in a compact form.
func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	d := time.Duration(ms) * time.Millisecond
	return d.Truncate(time.Second).String()
}
