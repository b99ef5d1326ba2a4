// Package capture owns the capture sequence: the shared state between the
// player and the owl that tries to take its ship, through to the recapture
// that gives the player a dual ship.
package capture

import (
	"fmt"

	"github.com/vovakirdan/tui-galaga/internal/event"
	"github.com/vovakirdan/tui-galaga/internal/formation"
)

// State aliases the event package phase so consumers need not import both.
type State = event.CaptureState

// Pusher receives the events the controller emits.
type Pusher interface {
	Push(e event.Event)
}

// View is the read-only part of the game the controller checks each frame.
type View interface {
	IsLiveAt(idx formation.Index) bool
	// Spawning reports whether stage enemies are still entering, during
	// which a held fighter may legitimately be missing from the arena.
	Spawning() bool
}

var legal = map[State][]State{
	event.NoCapture:        {event.CaptureAttacking},
	event.CaptureAttacking: {event.Capturing, event.NoCapture},
	event.Capturing:        {event.Captured, event.NoCapture},
	event.Captured:         {event.Recapturing, event.NoCapture},
	event.Recapturing:      {event.Dual, event.NoCapture},
	event.Dual:             {event.NoCapture},
}

// Controller is the capture state machine. Only one sequence is active at
// a time; the owner is the slot of the enemy driving the current phase.
type Controller struct {
	q Pusher

	state    State
	owner    formation.Index
	hasOwner bool
}

// New creates a controller in NoCapture.
func New(q Pusher) *Controller {
	return &Controller{q: q}
}

// State returns the current phase.
func (c *Controller) State() State {
	return c.state
}

// Owner returns the slot of the owl while it attacks or holds the beam, and
// the slot of the captured fighter once the ship is taken.
func (c *Controller) Owner() (formation.Index, bool) {
	return c.owner, c.hasOwner
}

// CanCaptureAttack reports whether a new capture attack may start.
func (c *Controller) CanCaptureAttack() bool {
	return c.state == event.NoCapture
}

// IsDual reports whether the player flies two ships.
func (c *Controller) IsDual() bool {
	return c.state == event.Dual
}

// StartCaptureAttack records owl as the enemy diving to capture.
func (c *Controller) StartCaptureAttack(owl formation.Index) {
	c.transition(event.CaptureAttacking)
	c.owner, c.hasOwner = owl, true
}

// BeginCapture moves to Capturing once the beam caught the player.
func (c *Controller) BeginCapture() {
	c.transition(event.Capturing)
}

// CompleteCapture moves to Captured. fighter is the slot of the spawned
// captured fighter, which becomes the owner.
func (c *Controller) CompleteCapture(fighter formation.Index) {
	c.transition(event.Captured)
	c.owner, c.hasOwner = fighter, true
}

// StartRecapture moves to Recapturing after the holder of the fighter died.
func (c *Controller) StartRecapture() {
	c.transition(event.Recapturing)
	c.hasOwner = false
}

// EndRecapture resolves a recapture and emits RecaptureEnded. It is a no-op
// outside Recapturing so the result is reported exactly once.
func (c *Controller) EndRecapture(success bool) {
	if c.state != event.Recapturing {
		return
	}
	if success {
		c.transition(event.Dual)
	} else {
		c.transition(event.NoCapture)
	}
	c.q.Push(event.RecaptureEnded{Success: success})
}

// Abort cancels the sequence from any phase. A pending recapture resolves
// as failed. It is a no-op in NoCapture.
func (c *Controller) Abort() {
	switch c.state {
	case event.NoCapture:
		return
	case event.Recapturing:
		c.EndRecapture(false)
	default:
		c.transition(event.NoCapture)
	}
	c.hasOwner = false
}

// Update runs after collisions. It aborts when the owner no longer resolves
// in the arena, and reports whether it did.
func (c *Controller) Update(v View) bool {
	if !c.hasOwner {
		return false
	}
	switch c.state {
	case event.CaptureAttacking, event.Capturing:
	case event.Captured:
		if v.Spawning() {
			return false
		}
	default:
		return false
	}
	if v.IsLiveAt(c.owner) {
		return false
	}
	c.Abort()
	return true
}

// Reset drops any sequence without emitting events, for a new game.
func (c *Controller) Reset() {
	c.state = event.NoCapture
	c.hasOwner = false
}

func (c *Controller) transition(to State) {
	from := c.state
	ok := false
	for _, s := range legal[from] {
		if s == to {
			ok = true
			break
		}
	}
	if !ok {
		panic(fmt.Sprintf("capture: unreachable transition %v -> %v", from, to))
	}
	c.state = to
	c.q.Push(event.CaptureStateChanged{From: from, To: to})
}
