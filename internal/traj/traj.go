package traj

import "github.com/vovakirdan/tui-galaga/internal/fixed"

// Playfield size in whole units. SetPos mirrors x around Width.
const (
	Width  = 224
	Height = 288
)

// Traj steps an actor through a command list one frame at a time.
// The zero value is not usable; create one with New.
type Traj struct {
	trig *fixed.Trig

	cmds   []Command
	delay  int32
	pos    fixed.Vec2
	offset fixed.Vec2
	flipX  bool

	Angle  int32
	Speed  int32
	VAngle int32

	// ShotEnabled lets Shot commands arm a shot.
	ShotEnabled bool
	shotWait    int32
}

// New creates a trajectory over cmds. When flipX is set every command is
// mirrored around the vertical center line as it is evaluated.
func New(trig *fixed.Trig, cmds []Command, offset fixed.Vec2, flipX bool) *Traj {
	if flipX {
		offset.X = -offset.X
	}
	return &Traj{
		trig:     trig,
		cmds:     cmds,
		offset:   offset,
		flipX:    flipX,
		shotWait: -1,
	}
}

// SetPos overrides the base position, for attacks that start from the
// actor's current location.
func (t *Traj) SetPos(p fixed.Vec2) {
	t.pos = p
}

// SetAngle overrides the heading.
func (t *Traj) SetAngle(a int32) {
	t.Angle = a
}

// Pos returns the actor position: the base position plus the offset
// rotated to the current heading.
func (t *Traj) Pos() fixed.Vec2 {
	a := t.Angle + fixed.HalfTurn
	cs, sn := t.trig.Cos(a), t.trig.Sin(a)
	return fixed.Vec2{
		X: t.pos.X + (cs*t.offset.X+sn*t.offset.Y)/fixed.One,
		Y: t.pos.Y + (sn*t.offset.X-cs*t.offset.Y)/fixed.One,
	}
}

// Done reports whether every command has run and no delay is pending.
func (t *Traj) Done() bool {
	return len(t.cmds) == 0 && t.delay == 0
}

// TakeShot returns the pending shot wait armed by a Shot command, once.
func (t *Traj) TakeShot() (int32, bool) {
	if t.shotWait < 0 {
		return 0, false
	}
	w := t.shotWait
	t.shotWait = -1
	return w, true
}

// Update advances one frame and reports whether the trajectory is still
// running. homeX is the owner's formation x, used by CopyHomeX.
func (t *Traj) Update(homeX int32) bool {
	t.handleCommands(homeX)

	t.pos = t.pos.Add(t.trig.Velocity(t.Angle+t.VAngle/2, t.Speed))
	t.Angle += t.VAngle

	return !t.Done()
}

func (t *Traj) handleCommands(homeX int32) {
	if t.delay > 0 {
		t.delay--
		return
	}

	for len(t.cmds) > 0 {
		consumed, yield := t.exec(t.cmds[0], homeX)
		if consumed {
			t.cmds = t.cmds[1:]
		}
		if yield {
			return
		}
	}
}

// exec runs one command. consumed means the cursor moves past it; yield
// means no further commands run this frame.
func (t *Traj) exec(c Command, homeX int32) (consumed, yield bool) {
	switch c.Op {
	case OpSetPos:
		x := c.A
		if t.flipX {
			x = Width*fixed.One - x
		}
		t.pos = fixed.Vec2{X: x, Y: c.B}
	case OpSetSpeed:
		t.Speed = c.A
	case OpSetAngle:
		t.Angle = t.mirror(c.A)
	case OpSetAngularVelocity:
		t.VAngle = t.mirror(c.A)
	case OpDelay:
		t.delay = c.A
		return true, true
	case OpSteerToAngle:
		target := t.mirror(c.A)
		rate := fixed.Abs(c.B)
		if rate == 0 {
			return true, false
		}
		diff := target - t.Angle
		steps := (fixed.Abs(diff) + rate/2) / rate
		if steps == 0 {
			t.VAngle = 0
			return true, false
		}
		if diff >= 0 {
			t.VAngle = rate
		} else {
			t.VAngle = -rate
		}
		// This frame already turns once.
		t.delay = steps - 1
		return true, true
	case OpWaitY:
		if t.pos.Y < c.A {
			return false, true
		}
	case OpAddPos:
		t.pos = t.pos.Add(fixed.Vec2{X: t.mirror(c.A), Y: c.B})
	case OpCopyHomeX:
		t.pos.X = homeX
	case OpShot:
		if t.ShotEnabled {
			t.shotWait = c.A
		}
	}
	return true, false
}

func (t *Traj) mirror(v int32) int32 {
	if t.flipX {
		return -v
	}
	return v
}
