package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-galaga/internal/platform/tui"
	"github.com/vovakirdan/tui-galaga/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing straight away, skipping the menu.

Modes:
  galaga           - Limited ships, extra ships at 20000 and every 50000
  galaga_practice  - Lost ships are always replaced

Controls:
  Left/Right, A/D  - Move
  Space, Z, Up     - Fire
  P, Esc           - Pause (Esc again leaves the game)
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot to ~/.galaga/screenshots
  Q, Ctrl+C        - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  galaga play
  galaga play galaga_practice
  galaga play --difficulty hard --stage 4
  galaga play --config ./my-galaga.yaml --sound`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "galaga"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'galaga list' to see available modes.")
		os.Exit(1)
	}

	g, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	sound := openSound()

	_, runErr := tui.Run(g, store, sound, runtimeConfig())

	if sound != nil {
		sound.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
