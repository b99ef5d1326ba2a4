// Package traj interprets scripted movement for enemies: a flat list of
// commands that set position, speed and heading, or hold for some frames.
package traj

import "fmt"

// Op identifies a trajectory command.
type Op uint8

const (
	OpSetPos Op = iota
	OpSetSpeed
	OpSetAngle
	OpSetAngularVelocity
	OpDelay
	OpSteerToAngle
	OpWaitY
	OpAddPos
	OpCopyHomeX
	OpShot
)

// String returns the command mnemonic.
func (o Op) String() string {
	switch o {
	case OpSetPos:
		return "SetPos"
	case OpSetSpeed:
		return "SetSpeed"
	case OpSetAngle:
		return "SetAngle"
	case OpSetAngularVelocity:
		return "SetAngularVelocity"
	case OpDelay:
		return "Delay"
	case OpSteerToAngle:
		return "SteerToAngle"
	case OpWaitY:
		return "WaitY"
	case OpAddPos:
		return "AddPos"
	case OpCopyHomeX:
		return "CopyHomeX"
	case OpShot:
		return "Shot"
	default:
		return "Unknown"
	}
}

// Command is one step of a trajectory. A and B hold the operands; their
// meaning depends on Op.
type Command struct {
	Op   Op
	A, B int32
}

func (c Command) String() string {
	switch c.Op {
	case OpSetPos, OpAddPos, OpSteerToAngle:
		return fmt.Sprintf("%s(%d, %d)", c.Op, c.A, c.B)
	case OpCopyHomeX:
		return c.Op.String()
	default:
		return fmt.Sprintf("%s(%d)", c.Op, c.A)
	}
}

// SetPos places the actor at (x, y).
func SetPos(x, y int32) Command { return Command{Op: OpSetPos, A: x, B: y} }

// SetSpeed sets the distance travelled per frame.
func SetSpeed(v int32) Command { return Command{Op: OpSetSpeed, A: v} }

// SetAngle sets the heading.
func SetAngle(a int32) Command { return Command{Op: OpSetAngle, A: a} }

// SetAngularVelocity sets the heading change per frame.
func SetAngularVelocity(v int32) Command { return Command{Op: OpSetAngularVelocity, A: v} }

// Delay keeps the current motion for n more frames.
func Delay(n int32) Command { return Command{Op: OpDelay, A: n} }

// SteerToAngle turns toward target by rate per frame, holding until the
// heading gets there.
func SteerToAngle(target, rate int32) Command {
	return Command{Op: OpSteerToAngle, A: target, B: rate}
}

// WaitY holds until the actor reaches y or below.
func WaitY(y int32) Command { return Command{Op: OpWaitY, A: y} }

// AddPos moves the actor by (dx, dy) without consuming a frame.
func AddPos(dx, dy int32) Command { return Command{Op: OpAddPos, A: dx, B: dy} }

// CopyHomeX snaps x to the actor's formation slot.
func CopyHomeX() Command { return Command{Op: OpCopyHomeX} }

// Shot arms an enemy shot after wait frames.
func Shot(wait int32) Command { return Command{Op: OpShot, A: wait} }
