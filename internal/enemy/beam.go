package enemy

import "github.com/vovakirdan/tui-galaga/internal/fixed"

// Tractor beam tuning.
const (
	BeamRows     = 29
	beamGrow     = fixed.One / 3
	beamFullTime = 3 * 60
	beamRange    = 24 * fixed.One
)

// BeamState is the lifecycle of a tractor beam.
type BeamState uint8

const (
	BeamOpening BeamState = iota
	BeamFull
	BeamClosing
	BeamClosed
	BeamCapturing
)

func (s BeamState) String() string {
	switch s {
	case BeamOpening:
		return "Opening"
	case BeamFull:
		return "Full"
	case BeamClosing:
		return "Closing"
	case BeamClosed:
		return "Closed"
	case BeamCapturing:
		return "Capturing"
	default:
		return "Unknown"
	}
}

// Beam is the tractor beam an owl lowers during a capture attack.
type Beam struct {
	pos    fixed.Vec2
	state  BeamState
	count  int
	frames uint32
	size   int32
}

func newBeam(pos fixed.Vec2) *Beam {
	return &Beam{pos: pos}
}

// Update advances the beam by one frame.
func (b *Beam) Update() {
	b.frames++

	switch b.state {
	case BeamOpening:
		b.size += beamGrow
		if b.size >= BeamRows*fixed.One {
			b.size = BeamRows * fixed.One
			b.state = BeamFull
			b.count = 0
		}
	case BeamFull:
		b.count++
		if b.count >= beamFullTime {
			b.state = BeamClosing
		}
	case BeamClosing:
		if b.size > beamGrow {
			b.size -= beamGrow
		} else {
			b.size = 0
			b.state = BeamClosed
		}
	}
}

// State returns the beam lifecycle state.
func (b *Beam) State() BeamState {
	return b.state
}

// Closed reports whether the beam has fully retracted.
func (b *Beam) Closed() bool {
	return b.state == BeamClosed
}

// CanCapture reports whether a player at pos is inside a fully open beam.
func (b *Beam) CanCapture(pos fixed.Vec2) bool {
	if b.state != BeamFull {
		return false
	}
	dx := pos.X - b.pos.X
	return dx >= -beamRange && dx <= beamRange
}

// Pos returns the top center of the beam.
func (b *Beam) Pos() fixed.Vec2 {
	return b.pos
}

// Rows returns how many beam rows are currently visible.
func (b *Beam) Rows() int {
	return int(b.size / fixed.One)
}

// Frames returns the beam age, used for color cycling.
func (b *Beam) Frames() uint32 {
	return b.frames
}

func (b *Beam) startCapture() {
	b.state = BeamCapturing
}

func (b *Beam) closeCapture() {
	b.state = BeamClosing
}
