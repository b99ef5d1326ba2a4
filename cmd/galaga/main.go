// galaga is a fixed-point Galaga clone for the terminal.
//
// Usage:
//
//	galaga                  - Start the title menu
//	galaga play [mode]      - Play a mode directly (galaga, galaga_practice)
//	galaga sim              - Run a headless autopilot game and print its hash
//	galaga serve            - Start SSH server for remote play
//	galaga scores [mode]    - Show the score history
//	galaga list             - List the game modes
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--db <path>             - Set database path (default: ~/.galaga/scores.db)
//	--config <path>         - Load a custom game config YAML
//	--difficulty <preset>   - easy, normal, hard or fixed
//	--stage <n>             - Start from stage n
//	--sound                 - Play sound effects
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-galaga/internal/audio"
	"github.com/vovakirdan/tui-galaga/internal/config"
	"github.com/vovakirdan/tui-galaga/internal/core"
	"github.com/vovakirdan/tui-galaga/internal/game"
	"github.com/vovakirdan/tui-galaga/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagStage      int
	flagSound      bool
	flagVolume     float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "galaga",
	Short: "Galaga - the arcade shooter in your terminal",
	Long: `A fixed-point, frame-exact Galaga clone for the terminal.

Enemies fly in along scripted paths, settle into formation and dive.
A boss Galaga can capture your fighter with its tractor beam; shoot the
boss while it carries the fighter to win it back and fly a dual ship.

Examples:
  galaga
  galaga play --difficulty hard
  galaga play galaga_practice --stage 3
  galaga sim --seed 42
  galaga serve --ssh :2222
  galaga scores`,
	PersistentPreRunE: applyGameFlags,
	Run:               runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.galaga/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagStage, "stage", 0, "Starting stage (1 based, 0 = from config)")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// applyGameFlags hands the game settings to the game package before any
// game is created.
func applyGameFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}
	if flagStage < 0 {
		return fmt.Errorf("--stage must not be negative, got %d", flagStage)
	}

	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)
	game.SetStartStage(flagStage)
	return nil
}

// runtimeConfig builds the runtime config from the flags and the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. The game still runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

// openSound starts the speaker when --sound is set. Audio is optional, so
// failures only warn.
func openSound() *audio.Player {
	if !flagSound {
		return nil
	}
	p := audio.NewPlayer()
	p.SetVolume(flagVolume)
	if err := p.Initialize(); err != nil {
		log.Warn("audio disabled", "error", err)
		return nil
	}
	return p
}
