package player

import (
	"github.com/vovakirdan/tui-galaga/internal/event"
	"github.com/vovakirdan/tui-galaga/internal/fixed"
)

// AngleDiv is the number of sprite rotations for ships.
const AngleDiv = 16

const (
	escortSpin  = fixed.FullTurn / AngleDiv
	escortTurns = 4 * fixed.FullTurn
	escortSpeed = 2 * fixed.One
)

type escortState uint8

const (
	escortRotate escortState = iota
	escortSlideHorz
	escortSlideDown
	escortDone
)

// Escort is a recaptured fighter flying down to dock beside the player.
type Escort struct {
	pos   fixed.Vec2
	angle int32
	spun  int32
	state escortState
	solo  bool // Replaces a taken ship instead of docking beside one
}

func newEscort(pos fixed.Vec2, angle int32, solo bool) *Escort {
	return &Escort{pos: pos, angle: angle, solo: solo}
}

// Pos returns the fighter position.
func (e *Escort) Pos() fixed.Vec2 { return e.pos }

// Angle returns the heading while it spins.
func (e *Escort) Angle() int32 { return e.angle }

// Spinning reports whether it is still rotating in place.
func (e *Escort) Spinning() bool { return e.state == escortRotate }

// Done reports whether it reached the docking position.
func (e *Escort) Done() bool { return e.state == escortDone }

// update spins the fighter until the sky is clear of attackers, then slides
// it to the dual docking slot, or to the start position when it comes back
// as the only ship.
func (e *Escort) update(env Env) {
	switch e.state {
	case escortRotate:
		e.angle += escortSpin
		e.spun += escortSpin
		if e.spun >= escortTurns && env.NoAttacker() {
			e.state = escortSlideHorz
			e.angle = fixed.Up
			env.Push(event.MovePlayerHomePos{})
		}
	case escortSlideHorz:
		var x int32 = homeX + DualOffset
		if e.solo {
			x = startX
		}
		e.pos.X += fixed.Clamp(x-e.pos.X, -escortSpeed, escortSpeed)
		if e.pos.X == x {
			e.state = escortSlideDown
		}
	case escortSlideDown:
		e.pos.Y += fixed.Clamp(Y-e.pos.Y, -escortSpeed, escortSpeed)
		if e.pos.Y == Y {
			e.state = escortDone
		}
	}
}
