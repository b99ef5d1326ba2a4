// Package collision tests axis-aligned boxes in whole pixels. Boxes that
// only share an edge do not collide.
package collision

import (
	"github.com/vovakirdan/tui-galaga/internal/core"
	"github.com/vovakirdan/tui-galaga/internal/fixed"
)

// Box is an axis-aligned box in whole pixels.
type Box struct {
	X, Y, W, H int32
}

// At builds a box whose top-left corner is pos (fixed-point) rounded to
// pixels and shifted by (dx, dy).
func At(pos fixed.Vec2, dx, dy, w, h int32) Box {
	p := pos.Round()
	return Box{X: p.X + dx, Y: p.Y + dy, W: w, H: h}
}

// Centered builds a w*h box centered on pos.
func Centered(pos fixed.Vec2, w, h int32) Box {
	return At(pos, -w/2, -h/2, w, h)
}

// Rect converts the box to the shared core rectangle.
func (b Box) Rect() core.Rect {
	return core.NewRect(int(b.X), int(b.Y), int(b.W), int(b.H))
}

// Collide reports whether a and b overlap by at least one pixel on both axes.
func Collide(a, b Box) bool {
	return a.Rect().Intersects(b.Rect())
}
