// Package event carries everything the simulation wants the outside world
// (score, audio, effects, the game state machine) to react to. Events are
// appended to a Queue during a frame and delivered in insertion order.
package event

import (
	"github.com/vovakirdan/tui-galaga/internal/fixed"
	"github.com/vovakirdan/tui-galaga/internal/formation"
)

// Event is implemented by every event type in this package.
type Event interface {
	event()
}

// MyShot asks for a player shot at Pos.
type MyShot struct {
	Pos   fixed.Vec2
	Dual  bool
	Angle int32
}

func (MyShot) event() {}

// AddScore adds points to the score holder.
type AddScore struct {
	Points uint32
}

func (AddScore) event() {}

// EneShot asks for an enemy shot fired from Pos.
type EneShot struct {
	Pos fixed.Vec2
}

func (EneShot) event() {}

// EarnPointEffect shows a bonus point popup.
type EarnPointEffect struct {
	Points uint32
	Pos    fixed.Vec2
}

func (EarnPointEffect) event() {}

// EnemyExplosion starts an enemy explosion effect.
type EnemyExplosion struct {
	Pos   fixed.Vec2
	Angle int32
	Kind  EnemyKind
}

func (EnemyExplosion) event() {}

// PlayerExplosion starts a player explosion effect.
type PlayerExplosion struct {
	Pos fixed.Vec2
}

func (PlayerExplosion) event() {}

// DeadPlayer reports that the last player ship was lost.
type DeadPlayer struct{}

func (DeadPlayer) event() {}

// StartCaptureAttack reports that the owl at Index began a capture dive.
type StartCaptureAttack struct {
	Index formation.Index
}

func (StartCaptureAttack) event() {}

// EndCaptureAttack reports that a capture dive ended without a capture.
type EndCaptureAttack struct{}

func (EndCaptureAttack) event() {}

// CapturePlayer starts pulling the player toward Pos.
type CapturePlayer struct {
	Pos fixed.Vec2
}

func (CapturePlayer) event() {}

// CapturePlayerCompleted reports that the beam closed with the player inside.
type CapturePlayerCompleted struct{}

func (CapturePlayerCompleted) event() {}

// CaptureSequenceEnded reports that the capturing owl is back in formation.
type CaptureSequenceEnded struct{}

func (CaptureSequenceEnded) event() {}

// SpawnCapturedFighter places the captured ship as an enemy.
type SpawnCapturedFighter struct {
	Pos   fixed.Vec2
	Index formation.Index
}

func (SpawnCapturedFighter) event() {}

// RecapturePlayer reports that the owl holding the fighter at Index died.
type RecapturePlayer struct {
	Index formation.Index
}

func (RecapturePlayer) event() {}

// MovePlayerHomePos asks the player to make room for the returning fighter.
type MovePlayerHomePos struct{}

func (MovePlayerHomePos) event() {}

// RecaptureEnded resolves a recapture. Success means the player is dual.
type RecaptureEnded struct {
	Success bool
}

func (RecaptureEnded) event() {}

// EscapeCapturing reports that the beam owl died while pulling the player.
type EscapeCapturing struct{}

func (EscapeCapturing) event() {}

// EscapeEnded reports that the player fell back to the ground.
type EscapeEnded struct{}

func (EscapeEnded) event() {}

// CapturedFighterDestroyed reports that the player shot its own captured ship.
type CapturedFighterDestroyed struct{}

func (CapturedFighterDestroyed) event() {}

// PlaySe triggers a sound effect.
type PlaySe struct {
	Channel Channel
	Sound   Sound
}

func (PlaySe) event() {}

// CaptureStateChanged reports a capture sequence transition.
type CaptureStateChanged struct {
	From, To CaptureState
}

func (CaptureStateChanged) event() {}
