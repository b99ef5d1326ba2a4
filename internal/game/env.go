package game

import (
	"github.com/vovakirdan/tui-galaga/internal/event"
	"github.com/vovakirdan/tui-galaga/internal/fixed"
	"github.com/vovakirdan/tui-galaga/internal/formation"
)

// env is the narrow view of the game handed to the components. It serves
// the enemy, player and capture accessor interfaces.
type env struct {
	g *Game
}

func (e *env) PlayerPos() fixed.Vec2 {
	return e.g.player.Pos()
}

func (e *env) DualPlayerPos() (fixed.Vec2, bool) {
	return e.g.player.DualPos()
}

func (e *env) CanPlayerCapture() bool {
	return e.g.state == StatePlaying && e.g.player.Active()
}

func (e *env) IsPlayerCaptureCompleted() bool {
	return e.g.player.IsCaptured()
}

// IsRush reports whether the last few enemies keep diving without rest.
func (e *env) IsRush() bool {
	g := e.g
	return g.state == StatePlaying && g.appearanceDone &&
		g.enemies.AliveCount() <= g.cfg.Gameplay.RushThreshold
}

func (e *env) Stage() int {
	return e.g.stage
}

func (e *env) Intn(n int) int {
	return e.g.rng.Intn(n)
}

func (e *env) Push(ev event.Event) {
	e.g.queue.Push(ev)
}

func (e *env) NoAttacker() bool {
	return e.g.attack.NoAttacker()
}

func (e *env) IsLiveAt(idx formation.Index) bool {
	return e.g.enemies.IsLiveAt(idx)
}

// Spawning covers the stage transition too: the arena is empty until the
// new fleet, captured fighter included, has flown in.
func (e *env) Spawning() bool {
	g := e.g
	return g.state == StateStageClear || g.state == StateStartStage || !g.appearance.Done()
}
