package player

import (
	"github.com/vovakirdan/tui-galaga/internal/collision"
	"github.com/vovakirdan/tui-galaga/internal/fixed"
	"github.com/vovakirdan/tui-galaga/internal/traj"
)

const (
	// MaxShots is how many shots may be in flight. A dual ship fires two
	// bullets per shot.
	MaxShots = 2

	shotSpeed  = 6 * fixed.One
	shotMargin = 4 * fixed.One
)

// Shot is a player bullet. Spin is its heading relative to straight up;
// only a ship spinning in the tractor beam fires off-axis.
type Shot struct {
	Pos  fixed.Vec2
	Dual bool
	Spin int32
}

func (s *Shot) update(trig *fixed.Trig) bool {
	if s.Spin == 0 {
		s.Pos.Y -= shotSpeed
	} else {
		s.Pos = s.Pos.Add(trig.Velocity(fixed.Up+s.Spin, shotSpeed))
	}
	return s.Pos.X >= -shotMargin && s.Pos.X <= traj.Width*fixed.One+shotMargin &&
		s.Pos.Y >= -shotMargin && s.Pos.Y <= traj.Height*fixed.One+shotMargin
}

// Box returns the hit box of the main bullet.
func (s Shot) Box() collision.Box {
	return collision.At(s.Pos, -1, -4, 1, 8)
}

// DualBox returns the hit box of the second bullet of a dual shot.
func (s Shot) DualBox() (collision.Box, bool) {
	if !s.Dual {
		return collision.Box{}, false
	}
	return collision.At(s.Pos, -1+16, -4, 1, 8), true
}
