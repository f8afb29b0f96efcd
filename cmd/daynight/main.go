// daynight is a terminal simulation of the day/night territory duel:
// two balls carve cells out of each other's half of the board.
//
// Usage:
//
//	daynight list              - List available games
//	daynight play [game]       - Play a game
//	daynight menu              - Start menu to pick games interactively
//	daynight serve             - Start SSH server for remote play
//	daynight history [game]    - Show recorded sessions for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.daynight/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/daynight/internal/games/daynight"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "daynight",
	Short: "Day & Night - a territory duel in your terminal",
	Long: `Day & Night runs a pong-style territory duel in the terminal: a day
ball and a night ball bounce across a split board, each flipping cells
of its own color as it hits them.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  history  - View recorded sessions

Examples:
  daynight play
  daynight play daynight --preset fast
  daynight menu
  daynight serve --ssh :2222
  daynight history`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.daynight/sessions.db", "Path to sessions database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}
