package game

import (
	"math"

	"github.com/vovakirdan/tui-galaga/internal/core"
	"github.com/vovakirdan/tui-galaga/internal/enemy"
	"github.com/vovakirdan/tui-galaga/internal/fixed"
)

const (
	dangerHeight = 48 * fixed.One
	dangerWidth  = 12 * fixed.One
	aimSlack     = 2 * fixed.One
	firePeriod   = 8
)

// Autopilot picks the input for one frame of a headless run. It depends
// only on game state, so a replay with the same seed is identical: the ship
// sidesteps shots about to land, otherwise lines up under the nearest
// enemy, and fires in short bursts.
func Autopilot(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	pos := g.player.Pos()

	dodge := 0
	g.enemies.Shots(func(s enemy.Shot) {
		dy := pos.Y - s.Pos.Y
		dx := s.Pos.X - pos.X
		if dy > 0 && dy < dangerHeight && fixed.Abs(dx) < dangerWidth {
			if dx >= 0 {
				dodge = -1
			} else {
				dodge = 1
			}
		}
	})

	target, found := pos.X, false
	best := int32(math.MaxInt32)
	g.enemies.Each(func(e *enemy.Enemy) {
		if e.Ghost() {
			return
		}
		if d := fixed.Abs(e.Pos().X - pos.X); d < best {
			best, target, found = d, e.Pos().X, true
		}
	})

	switch {
	case dodge < 0:
		in.Set(core.ActionLeft)
	case dodge > 0:
		in.Set(core.ActionRight)
	case found && target < pos.X-aimSlack:
		in.Set(core.ActionLeft)
	case found && target > pos.X+aimSlack:
		in.Set(core.ActionRight)
	}

	if g.frame%firePeriod < firePeriod/2 {
		in.Set(core.ActionFire)
	}
	return in
}
