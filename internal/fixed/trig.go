package fixed

import "math"

const atanSteps = 256

// Trig holds the sine, cosine and arctangent lookup tables. Build one with
// NewTrig at startup and share it by pointer; it is never mutated afterwards.
type Trig struct {
	sin  [Angle]int32
	cos  [Angle]int32
	atan [atanSteps + 1]int32
}

// NewTrig computes the lookup tables.
func NewTrig() *Trig {
	t := &Trig{}
	for i := 0; i < Angle; i++ {
		a := float64(i) * 2 * math.Pi / Angle
		t.sin[i] = int32(math.Round(One * math.Sin(a)))
		t.cos[i] = int32(math.Round(One * math.Cos(a)))
	}
	for i := 0; i <= atanSteps; i++ {
		rad := math.Atan(float64(i) / atanSteps)
		t.atan[i] = int32(math.Round(rad * FullTurn / (2 * math.Pi)))
	}
	return t
}

func tableIndex(angle int32) int {
	return int(((angle + One/2) & ((Angle - 1) * One)) >> OneBit)
}

// Sin returns One*sin(angle).
func (t *Trig) Sin(angle int32) int32 {
	return t.sin[tableIndex(angle)]
}

// Cos returns One*cos(angle).
func (t *Trig) Cos(angle int32) int32 {
	return t.cos[tableIndex(angle)]
}

// Velocity returns the per-frame displacement for moving at speed along angle.
func (t *Trig) Velocity(angle, speed int32) Vec2 {
	i := tableIndex(angle)
	return Vec2{
		X: -t.sin[i] * speed / One,
		Y: t.cos[i] * speed / One,
	}
}

// Atan2 returns the angle of (x, y) measured from the +x axis toward +y.
func (t *Trig) Atan2(y, x int32) int32 {
	if x == 0 && y == 0 {
		return 0
	}
	ax, ay := int64(Abs(x)), int64(Abs(y))
	var a int32
	if ax >= ay {
		a = t.atan[ay*atanSteps/ax]
	} else {
		a = QuarterTurn - t.atan[ax*atanSteps/ay]
	}
	if x < 0 {
		a = HalfTurn - a
	}
	if y < 0 {
		a = -a
	}
	return a
}

// Heading returns the angle whose Velocity points along d.
func (t *Trig) Heading(d Vec2) int32 {
	return t.Atan2(-d.X, d.Y)
}
