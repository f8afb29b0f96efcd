package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/daynight/internal/core"
	"github.com/vovakirdan/daynight/internal/games/daynight"
	"github.com/vovakirdan/daynight/internal/platform/tui"
	"github.com/vovakirdan/daynight/internal/registry"
	"github.com/vovakirdan/daynight/internal/storage"
)

var (
	flagConfig string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game. Defaults to daynight.

Controls:
  Space/P    - Pause/unpause
  R          - Restart
  Q/Ctrl+C   - Quit (the session is recorded)

Speed presets:
  classic - The standard ball speed
  slow    - Half speed, easy watching
  fast    - Double speed chaos

Examples:
  daynight play
  daynight play daynight --preset fast
  daynight play daynight --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Ball speed preset: classic, slow, fast")
}

func runPlay(cmd *cobra.Command, args []string) {
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

	// Get terminal size early for the preset selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Set config path and speed preset before creation
	if gameID == "daynight" {
		daynight.SetConfigPath(flagConfig)

		if flagPreset != "" {
			daynight.SetSpeedPreset(flagPreset)
		} else {
			// Show the speed preset selector
			selection, updatedCfg, selErr := tui.RunPresetSelector(cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				os.Exit(1)
			}
			cfg = updatedCfg

			// User pressed back or quit
			if selection == nil {
				return
			}

			daynight.SetSpeedPreset(selection.Preset)
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
