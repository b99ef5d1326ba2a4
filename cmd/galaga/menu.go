package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-galaga/internal/game"
	"github.com/vovakirdan/tui-galaga/internal/platform/tui"
	"github.com/vovakirdan/tui-galaga/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the title menu",
	Long: `Start the title menu: pick a mode, a starting stage and a difficulty.
After a game you return to the menu to play again.

Controls:
  Up/Down/j/k   - Navigate
  Left/Right    - Change stage or difficulty
  Enter/Space   - Play
  Tab           - Scores
  Q             - Quit`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}
	sound := openSound()
	if sound != nil {
		defer sound.Cleanup()
	}

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config

		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if !back {
				return
			}
			continue
		}

		g, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			return
		}
		if gg, ok := g.(*game.Game); ok {
			stage := result.Stage
			if flagStage > 0 && stage == 1 {
				stage = flagStage
			}
			difficulty := result.Difficulty
			if difficulty == "" {
				difficulty = flagDifficulty
			}
			gg.Configure(stage, difficulty)
		}

		back, err := tui.Run(g, store, sound, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !back {
			return
		}
	}
}
