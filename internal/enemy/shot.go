package enemy

import (
	"github.com/vovakirdan/tui-galaga/internal/collision"
	"github.com/vovakirdan/tui-galaga/internal/fixed"
	"github.com/vovakirdan/tui-galaga/internal/traj"
)

// MaxShots is the number of enemy shots alive at once.
const MaxShots = 12

const shotMargin = 16 * fixed.One

// Shot is an enemy bullet flying in a straight line.
type Shot struct {
	Pos fixed.Vec2
	Vel fixed.Vec2
}

// update moves the shot and reports whether it is still on screen.
func (s *Shot) update() bool {
	s.Pos = s.Pos.Add(s.Vel)
	return s.Pos.X >= -shotMargin && s.Pos.X <= traj.Width*fixed.One+shotMargin &&
		s.Pos.Y >= -shotMargin && s.Pos.Y <= traj.Height*fixed.One+shotMargin
}

// Box returns the hit box of the shot.
func (s *Shot) Box() collision.Box {
	return collision.At(s.Pos, -1, -4, 1, 8)
}
