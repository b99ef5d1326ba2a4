// Package formation holds the resting grid the enemies return to: the
// anchor table, the shared sway/breathe motion and slot occupancy.
package formation

import (
	"fmt"

	"github.com/vovakirdan/tui-galaga/internal/fixed"
)

// Grid dimensions. Row AssaultRow sits past the grid and is used by
// assault enemies that dive without ever taking a slot.
const (
	Cols       = 10
	Rows       = 6
	AssaultRow = Rows
	Slots      = Cols * (Rows + 1)
)

const (
	screenWidth = 224
	centerX     = screenWidth / 2
	baseY       = 24
	cellSize    = 16

	swayAmplitude = 32
	swayPeriod    = 512
)

// Index is a (column, row) slot.
type Index struct {
	X, Y uint8
}

// Slot returns the arena index for i.
func (i Index) Slot() int {
	return int(i.X) + int(i.Y)*Cols
}

// Valid reports whether i addresses a slot, assault row included.
func (i Index) Valid() bool {
	return i.X < Cols && i.Y <= AssaultRow
}

// InGrid reports whether i is a formation slot (not the assault row).
func (i Index) InGrid() bool {
	return i.X < Cols && i.Y < Rows
}

func (i Index) String() string {
	return fmt.Sprintf("(%d,%d)", i.X, i.Y)
}

// FromSlot is the inverse of Index.Slot.
func FromSlot(slot int) Index {
	return Index{X: uint8(slot % Cols), Y: uint8(slot / Cols)} //#nosec G115 -- slot < Slots
}

// BaseX returns the anchor x of a column in whole units.
func BaseX(col int) int32 {
	return int32(centerX - (Cols-1)*cellSize/2 + col*cellSize) //#nosec G115 -- small table value
}

// BaseY returns the anchor y of a row in whole units.
func BaseY(row int) int32 {
	return int32(baseY + row*cellSize) //#nosec G115 -- small table value
}

// Mode is the formation-wide motion pattern.
type Mode uint8

const (
	// Sway slides the whole grid left and right while enemies enter.
	Sway Mode = iota
	// Breathe scales the grid out from its top center.
	Breathe
)

// Formation computes home positions and tracks slot occupancy.
type Formation struct {
	trig *fixed.Trig

	frame          uint32
	mode           Mode
	breatheStart   uint32
	doneAppearance bool

	occupied [Slots]bool
	count    int
}

// New creates an empty formation in sway mode.
func New(trig *fixed.Trig) *Formation {
	return &Formation{trig: trig}
}

// Restart resets motion for a new stage. Occupancy is left alone; the
// enemy arena clears it when it empties.
func (f *Formation) Restart() {
	f.frame = 0
	f.mode = Sway
	f.breatheStart = 0
	f.doneAppearance = false
}

// DoneAppearance asks the grid to start breathing the next time the sway
// passes through center.
func (f *Formation) DoneAppearance() {
	f.doneAppearance = true
}

// Update advances the formation clock by one frame.
func (f *Formation) Update() {
	f.frame++
	if f.mode == Sway && f.doneAppearance && f.frame%swayPeriod == 0 {
		f.mode = Breathe
		f.breatheStart = f.frame
	}
}

// Frame returns the formation clock.
func (f *Formation) Frame() uint32 {
	return f.frame
}

// Mode returns the current motion pattern.
func (f *Formation) Mode() Mode {
	return f.mode
}

// Position returns the home position of idx at the current frame.
func (f *Formation) Position(idx Index) fixed.Vec2 {
	col, row := int(idx.X), int(idx.Y)
	if col >= Cols {
		col = Cols - 1
	}
	if row >= Rows {
		row = Rows - 1
	}
	bx, by := BaseX(col), BaseY(row)
	x, y := bx*fixed.One, by*fixed.One

	switch f.mode {
	case Sway:
		phase := int32((f.frame >> 1) & (fixed.Angle - 1)) //#nosec G115 -- masked to 8 bits
		x += f.trig.Sin(phase*fixed.One) * swayAmplitude
	case Breathe:
		phase := int32((f.frame - f.breatheStart) & (fixed.Angle - 1)) //#nosec G115 -- masked to 8 bits
		k := (fixed.One - f.trig.Cos(phase*fixed.One)) / 2
		x += (bx - centerX) * k * 4 / 9
		y += (by - baseY) * k / 3
	}
	return fixed.Vec2{X: x, Y: y}
}

// Occupy claims a slot. It reports false, leaving the slot untouched, if
// the slot is already held or out of range.
func (f *Formation) Occupy(idx Index) bool {
	if !idx.Valid() || f.occupied[idx.Slot()] {
		return false
	}
	f.occupied[idx.Slot()] = true
	f.count++
	return true
}

// Release frees a slot. Releasing a free slot is a no-op.
func (f *Formation) Release(idx Index) {
	if !idx.Valid() || !f.occupied[idx.Slot()] {
		return
	}
	f.occupied[idx.Slot()] = false
	f.count--
}

// Occupied reports whether a slot is held.
func (f *Formation) Occupied(idx Index) bool {
	return idx.Valid() && f.occupied[idx.Slot()]
}

// Count returns the number of held slots.
func (f *Formation) Count() int {
	return f.count
}

// Clear releases every slot.
func (f *Formation) Clear() {
	f.occupied = [Slots]bool{}
	f.count = 0
}
