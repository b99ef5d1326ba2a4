package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-galaga/internal/core"
	"github.com/vovakirdan/tui-galaga/internal/event"
	"github.com/vovakirdan/tui-galaga/internal/game"
)

var (
	flagSimFrames   int
	flagSimPractice bool
	flagSimVerbose  bool
	flagSimSave     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot game",
	Long: `Run the simulation without a terminal UI. A simple autopilot flies the
ship. The run ends at game over or after --frames frames and prints the
state hash, which is identical for identical seeds and settings.

Examples:
  galaga sim --seed 42
  galaga sim --seed 42 --frames 20000 --verbose
  galaga sim --practice --stage 5`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 60*60*10, "Maximum frames to simulate")
	simCmd.Flags().BoolVar(&flagSimPractice, "practice", false, "Simulate practice mode")
	simCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log capture sequence transitions")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the result in the score database")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "sim"})
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	g := game.New()
	if flagSimPractice {
		g = game.NewPractice()
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	frame := 0
	g.Observe(func(e event.Event) {
		switch e := e.(type) {
		case event.CaptureStateChanged:
			logger.Debug("capture", "frame", frame, "from", e.From, "to", e.To)
		case event.RecaptureEnded:
			logger.Debug("recapture ended", "frame", frame, "success", e.Success)
		case event.DeadPlayer:
			logger.Debug("ship lost", "frame", frame)
		}
	})

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed})
	logger.Info("start", "mode", g.ID(), "seed", seed, "stage", g.Stage()+1)

	start := time.Now()
	stage := g.Stage()
	for frame = 1; frame <= flagSimFrames; frame++ {
		result := g.Step(game.Autopilot(g))
		if g.Stage() != stage {
			stage = g.Stage()
			logger.Info("stage", "frame", frame, "stage", stage+1, "score", result.State.Score, "lives", g.Lives())
		}
		if result.State.GameOver {
			break
		}
	}

	snap := g.Snapshot()
	state := g.State()
	logger.Info("done",
		"frames", snap.Frame,
		"stage", snap.Stage+1,
		"score", state.Score,
		"game_over", state.GameOver,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	if flagSimSave {
		if store := openStore(); store != nil {
			if _, err := store.SaveScore(g.ID(), state.Score, snap.Stage+1); err != nil {
				logger.Error("could not save score", "error", err)
			}
			if err := store.SaveHighScore(g.HighScore()); err != nil {
				logger.Error("could not save high score", "error", err)
			}
			store.Close()
		}
	}

	fmt.Printf("%016x\n", snap.Hash())
}
