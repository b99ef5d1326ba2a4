// Package player implements the player's ship: movement and fire, the
// capture and escape motions, the recaptured fighter that docks to form a
// dual ship, and the player shots.
package player

import (
	"github.com/vovakirdan/tui-galaga/internal/collision"
	"github.com/vovakirdan/tui-galaga/internal/core"
	"github.com/vovakirdan/tui-galaga/internal/event"
	"github.com/vovakirdan/tui-galaga/internal/fixed"
	"github.com/vovakirdan/tui-galaga/internal/traj"
)

const (
	// Y is the fixed height of the ship.
	Y = (traj.Height - 16 - 8) * fixed.One
	// DualOffset is how far right the second ship of a dual flies.
	DualOffset = 16 * fixed.One

	startX      = traj.Width / 2 * fixed.One
	homeX       = (traj.Width/2 - 8) * fixed.One
	moveSpeed   = 2 * fixed.One
	leftLimit   = 8 * fixed.One
	rightLimit  = (traj.Width - 8) * fixed.One
	captureStep = 1 * fixed.One
	captureSpin = fixed.FullTurn / 32
	homeSpeed   = 1 * fixed.One
)

// Input is the pad capability the ship reads.
type Input interface {
	IsPressed(a core.Action) bool
	IsTrigger(a core.Action) bool
}

// Env is what the ship needs from the game.
type Env interface {
	Push(e event.Event)
	NoAttacker() bool
}

// State is the ship's current mode.
type State uint8

const (
	Normal State = iota
	Dead
	Capturing
	Captured
	CaptureCompleted
	EscapeCapturing
	MoveHomePos
)

func (s State) String() string {
	switch s {
	case Normal:
		return "Normal"
	case Dead:
		return "Dead"
	case Capturing:
		return "Capturing"
	case Captured:
		return "Captured"
	case CaptureCompleted:
		return "CaptureCompleted"
	case EscapeCapturing:
		return "EscapeCapturing"
	case MoveHomePos:
		return "MoveHomePos"
	default:
		return "Unknown"
	}
}

// Player is the ship, its shots and its remaining lives.
type Player struct {
	trig *fixed.Trig

	pos        fixed.Vec2
	state      State
	dual       bool
	angle      int32
	capturePos fixed.Vec2
	escort     *Escort
	lives      int
	shotOff    bool

	shots    [MaxShots]Shot
	shotLive [MaxShots]bool
}

// New creates a ship with the given number of lives, the one in play
// included.
func New(trig *fixed.Trig, lives int) *Player {
	p := &Player{trig: trig, lives: lives}
	p.Restart()
	return p
}

// Restart puts a fresh ship at the start position. Dual and lives carry over.
func (p *Player) Restart() {
	p.state = Normal
	p.pos = fixed.Vec2{X: startX, Y: Y}
	p.angle = 0
}

// Update runs one frame of the ship and its escort.
func (p *Player) Update(pad Input, env Env) {
	switch p.state {
	case Normal:
		p.updateNormal(pad, env)
	case Capturing:
		p.updateCapture(pad, env)
	case EscapeCapturing:
		p.pos.Y += captureStep
		if p.pos.Y >= Y {
			p.pos.Y = Y
			p.state = Normal
			env.Push(event.EscapeEnded{})
		}
	case MoveHomePos:
		p.pos.X += fixed.Clamp(homeX-p.pos.X, -homeSpeed, homeSpeed)
		if p.pos.X == homeX && p.escort != nil && p.escort.Done() {
			p.dual = true
			p.state = Normal
			p.escort = nil
		}
	case CaptureCompleted:
		if p.escort != nil && p.escort.Done() {
			p.pos = p.escort.pos
			p.angle = 0
			p.state = Normal
			p.escort = nil
		}
	}

	if p.escort != nil {
		p.escort.update(env)
	}
}

func (p *Player) updateNormal(pad Input, env Env) {
	if pad.IsPressed(core.ActionLeft) {
		p.pos.X = max(p.pos.X-moveSpeed, leftLimit)
	}
	if pad.IsPressed(core.ActionRight) {
		right := int32(rightLimit)
		if p.dual {
			right -= DualOffset
		}
		p.pos.X = min(p.pos.X+moveSpeed, right)
	}
	p.fire(pad, env)
}

// updateCapture drifts the ship into the beam while it spins.
func (p *Player) updateCapture(pad Input, env Env) {
	d := p.capturePos.Sub(p.pos)
	p.pos.X += fixed.Clamp(d.X, -captureStep, captureStep)
	p.pos.Y += fixed.Clamp(d.Y, -captureStep, captureStep)
	p.angle += captureSpin

	p.fire(pad, env)

	if d.X == 0 && d.Y == 0 {
		p.state = Captured
		p.angle = 0
	}
}

func (p *Player) fire(pad Input, env Env) {
	if p.shotOff || !pad.IsTrigger(core.ActionFire) {
		return
	}
	for i := range p.shots {
		if p.shotLive[i] {
			continue
		}
		s := Shot{Pos: p.pos.Add(fixed.Vec2{Y: 2 * fixed.One}), Dual: p.dual, Spin: fixed.NormalizeAngle(p.angle)}
		p.shots[i] = s
		p.shotLive[i] = true
		env.Push(event.MyShot{Pos: s.Pos, Dual: s.Dual, Angle: s.Spin})
		env.Push(event.PlaySe{Channel: event.ChShot, Sound: event.SeMyShot})
		return
	}
}

// SetShotEnabled allows or blocks firing, as during the ready pause.
func (p *Player) SetShotEnabled(enabled bool) {
	p.shotOff = !enabled
}

// UpdateShots moves the player shots, dropping those that left the screen.
func (p *Player) UpdateShots() {
	for i := range p.shots {
		if p.shotLive[i] && !p.shots[i].update(p.trig) {
			p.shotLive[i] = false
		}
	}
}

// Shots calls fn for every live shot with its slot number.
func (p *Player) Shots(fn func(i int, s Shot)) {
	for i := range p.shots {
		if p.shotLive[i] {
			fn(i, p.shots[i])
		}
	}
}

// RemoveShot drops shot i.
func (p *Player) RemoveShot(i int) {
	p.shotLive[i] = false
}

// ClearShots drops every shot in flight.
func (p *Player) ClearShots() {
	p.shotLive = [MaxShots]bool{}
}

// Pos returns the ship position.
func (p *Player) Pos() fixed.Vec2 { return p.pos }

// DualPos returns the position of the second ship when flying dual.
func (p *Player) DualPos() (fixed.Vec2, bool) {
	if !p.dual {
		return fixed.Vec2{}, false
	}
	return p.pos.Add(fixed.Vec2{X: DualOffset}), true
}

// State returns the ship mode.
func (p *Player) State() State { return p.state }

// Angle returns the spin while caught in the beam.
func (p *Player) Angle() int32 { return p.angle }

// Active reports whether the ship is under player control.
func (p *Player) Active() bool { return p.state == Normal }

// IsDual reports whether a second ship is docked.
func (p *Player) IsDual() bool { return p.dual }

// IsCaptured reports whether the ship reached the owl's beam.
func (p *Player) IsCaptured() bool { return p.state == Captured }

// Escort returns the recaptured fighter while it is docking.
func (p *Player) Escort() (*Escort, bool) {
	return p.escort, p.escort != nil
}

// Lives returns the remaining ships, the one in play included.
func (p *Player) Lives() int { return p.lives }

// AddLife grants an extra ship.
func (p *Player) AddLife() { p.lives++ }

// Box returns the hit box of the main ship. Only a ship under control can
// be hit.
func (p *Player) Box() (collision.Box, bool) {
	if p.state != Normal {
		return collision.Box{}, false
	}
	return collision.At(p.pos, -8, -8, 16, 16), true
}

// DualBox returns the hit box of the second ship.
func (p *Player) DualBox() (collision.Box, bool) {
	if !p.dual || p.state != Normal {
		return collision.Box{}, false
	}
	return collision.At(p.pos, 8, -8, 16, 16), true
}

// Crash handles a hit at pos. A dual ship loses the ship that was hit and
// keeps flying; otherwise the ship dies. It reports whether it died.
func (p *Player) Crash(pos fixed.Vec2) bool {
	if p.dual {
		if pos.X < p.pos.X+DualOffset/2 {
			p.pos.X += DualOffset
		}
		p.dual = false
		return false
	}
	p.state = Dead
	return true
}

// DecrementAndRestart spends a life. It reports false when none are left.
func (p *Player) DecrementAndRestart() bool {
	p.lives--
	if p.lives <= 0 {
		p.lives = 0
		return false
	}
	p.Restart()
	return true
}

// StartCapture pulls the ship toward pos, the bottom of the beam.
func (p *Player) StartCapture(pos fixed.Vec2) {
	p.state = Capturing
	p.capturePos = pos
	p.angle = 0
}

// CompleteCapture hides the ship; it now rides with the owl as a fighter.
func (p *Player) CompleteCapture() {
	p.state = CaptureCompleted
}

// EscapeCapturing drops the ship back to its line after the owl died.
func (p *Player) EscapeCapturing() {
	p.state = EscapeCapturing
	p.angle = 0
}

// StartRecaptureEffect launches the rescued fighter from pos. While the
// ship itself is held by the fleet, the fighter comes back as the ship.
func (p *Player) StartRecaptureEffect(pos fixed.Vec2, angle int32) {
	p.escort = newEscort(pos, angle, p.state == CaptureCompleted)
}

// StartMoveHomePos slides the ship to the dual docking position.
func (p *Player) StartMoveHomePos() {
	if p.state == Normal {
		p.state = MoveHomePos
	}
}

// DropEscort abandons a docking fighter, returning where it was.
func (p *Player) DropEscort() (fixed.Vec2, int32, bool) {
	if p.escort == nil {
		return fixed.Vec2{}, 0, false
	}
	e := p.escort
	p.escort = nil
	if p.state == MoveHomePos {
		p.state = Normal
	}
	return e.pos, e.angle, true
}

// LoseDual drops the docked second ship.
func (p *Player) LoseDual() {
	p.dual = false
}
