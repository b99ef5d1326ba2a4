package game

import (
	"github.com/vovakirdan/tui-galaga/internal/event"
	"github.com/vovakirdan/tui-galaga/internal/fixed"
	"github.com/vovakirdan/tui-galaga/internal/player"
)

// handleEvent applies one event. It runs inside queue.Drain, so anything it
// pushes is delivered later in the same drain.
func (g *Game) handleEvent(ev event.Event) {
	if g.observer != nil {
		g.observer(ev)
	}

	switch e := ev.(type) {
	case event.MyShot:
		// The ship stores its own shots; the event is for observers.
	case event.EneShot:
		targets := make([]fixed.Vec2, 0, 2)
		targets = append(targets, g.player.Pos())
		if p, ok := g.player.DualPos(); ok {
			targets = append(targets, p)
		}
		g.enemies.SpawnShot(e.Pos, targets, g.shotSpeed(), g.rng.Intn)
	case event.AddScore:
		if g.score.Add(e.Points) {
			g.player.AddLife()
			g.playSe(event.ChJingle, event.SeExtendShip)
		}
	case event.EarnPointEffect:
		g.effects.spawn(effectPoint, e.Pos, 0, e.Points)
	case event.EnemyExplosion:
		g.effects.spawn(effectEnemyExplosion, e.Pos, e.Angle, uint32(e.Kind))
	case event.PlayerExplosion:
		g.effects.spawn(effectPlayerExplosion, e.Pos, 0, 0)
		g.playSe(event.ChBomb, event.SeBombPlayer)
	case event.DeadPlayer:
		g.onDeadPlayer()
	case event.StartCaptureAttack:
		if g.capture.CanCaptureAttack() {
			g.capture.StartCaptureAttack(e.Index)
		}
	case event.EndCaptureAttack:
		// Once Captured the fighter lives on in the fleet whatever happens
		// to the owl.
		if s := g.capture.State(); s == event.CaptureAttacking || s == event.Capturing {
			g.capture.Abort()
		}
	case event.CapturePlayer:
		if g.capture.State() == event.CaptureAttacking {
			g.capture.BeginCapture()
		}
		g.pauseAttack(true)
		g.player.StartCapture(e.Pos)
		g.state = StateCapturing
	case event.SpawnCapturedFighter:
		if g.enemies.SpawnCapturedFighter(e.Pos, e.Index) {
			g.fighterIndex = e.Index
		}
	case event.CapturePlayerCompleted:
		g.player.CompleteCapture()
		if g.capture.State() == event.Capturing {
			g.capture.CompleteCapture(g.fighterIndex)
		}
		g.state = StateCaptured
		g.count = 0
	case event.CaptureSequenceEnded:
		g.nextPlayer()
	case event.RecapturePlayer:
		g.onRecapturePlayer(e)
	case event.MovePlayerHomePos:
		g.player.StartMoveHomePos()
	case event.RecaptureEnded:
		if g.state == StateRecapturing {
			g.pauseAttack(false)
			g.state = StatePlaying
		}
	case event.EscapeCapturing:
		g.capture.Abort()
		if s := g.player.State(); s == player.Capturing || s == player.Captured {
			g.player.EscapeCapturing()
		}
	case event.EscapeEnded:
		g.pauseAttack(false)
		g.state = StatePlaying
	case event.CapturedFighterDestroyed:
		if g.capture.State() == event.Captured {
			if idx, ok := g.capture.Owner(); !ok || !g.enemies.IsLiveAt(idx) {
				g.capture.Abort()
			}
		}
	case event.PlaySe:
		g.sounds = append(g.sounds, e)
	case event.CaptureStateChanged:
		// Observers only.
	}
}

func (g *Game) onDeadPlayer() {
	if g.state == StateRecapturing {
		// The rescued fighter goes back to the fleet.
		if pos, angle, ok := g.player.DropEscort(); ok {
			g.enemies.ReturnCapturedFighter(pos, angle, g.recaptureIndex)
		}
		g.capture.Abort()
	}
	g.pauseAttack(true)
	g.state = StatePlayerDead
	g.count = 0
}

func (g *Game) onRecapturePlayer(e event.RecapturePlayer) {
	fighter, ok := g.enemies.At(e.Index)
	if !ok {
		return
	}
	pos, angle := fighter.Pos(), fighter.Angle()

	rescuer := g.player.Active() || g.player.State() == player.CaptureCompleted
	if g.capture.State() != event.Captured || !rescuer {
		// Nobody to rescue it: the fighter stays with the fleet and flies
		// back to its slot.
		g.enemies.Remove(e.Index)
		g.enemies.ReturnCapturedFighter(pos, angle, e.Index)
		return
	}

	g.enemies.Remove(e.Index)
	g.capture.StartRecapture()
	g.recaptureIndex = e.Index
	g.player.StartRecaptureEffect(pos, angle)
	g.pauseAttack(true)
	g.state = StateRecapturing
	g.playSe(event.ChJingle, event.SeRecapture)
}
