// Package fixed implements the integer math kernel shared by the simulation.
// Positions, speeds and angles are int32 values scaled by One. Floating point
// only appears while building the lookup tables in NewTrig.
package fixed

// Fixed-point scale: 1.0 == One.
const (
	OneBit = 8
	One    = 1 << OneBit
)

// Angle is the number of table steps in a full turn. An angle value of
// Angle*One is one full turn.
const Angle = 256

// Common headings. Angle 0 points down the screen (+y).
const (
	FullTurn    = Angle * One
	HalfTurn    = FullTurn / 2
	QuarterTurn = FullTurn / 4
	Down        = 0
	Up          = HalfTurn
)

// Vec2 is a fixed-point 2D vector.
type Vec2 struct {
	X, Y int32
}

// V returns a vector built from whole units.
func V(x, y int32) Vec2 {
	return Vec2{X: x * One, Y: y * One}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Round converts both components to whole units.
func (v Vec2) Round() Vec2 {
	return Vec2{X: Round(v.X), Y: Round(v.Y)}
}

// Round converts a fixed-point value to whole units, rounding half away from zero.
func Round(v int32) int32 {
	if v >= 0 {
		return (v + One/2) >> OneBit
	}
	return -((-v + One/2) >> OneBit)
}

// NormalizeAngle wraps an angle into [-HalfTurn, HalfTurn).
func NormalizeAngle(angle int32) int32 {
	return ((angle + HalfTurn) & (FullTurn - 1)) - HalfTurn
}

// DiffAngle returns the shortest signed rotation from base to target.
func DiffAngle(target, base int32) int32 {
	return NormalizeAngle(target - base)
}

// QuantizeAngle maps an angle to one of div sprite rotation steps in [0, div).
func QuantizeAngle(angle int32, div int) int {
	d := int32(div) //#nosec G115 -- div is a small rotation count
	round := (FullTurn + d) / (2 * d)
	return int(((angle + round) & (FullTurn - 1)) * d / FullTurn)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs returns |v|.
func Abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// Lerp interpolates between a and b by t/n, clamping t to [0, n].
func Lerp(a, b, t, n int32) int32 {
	t = Clamp(t, 0, n)
	return a + (b-a)*t/n
}
