package game

import (
	"github.com/vovakirdan/tui-galaga/internal/collision"
	"github.com/vovakirdan/tui-galaga/internal/event"
	"github.com/vovakirdan/tui-galaga/internal/fixed"
	"github.com/vovakirdan/tui-galaga/internal/player"
)

const (
	shotPower  = 1
	crashPower = 100
)

func (g *Game) checkCollision() {
	g.checkShotsVsEnemies()
	g.checkPlayerVsEnemies()
}

func (g *Game) checkShotsVsEnemies() {
	var hits [player.MaxShots]bool
	g.player.Shots(func(i int, s player.Shot) {
		if g.enemies.CheckCollision(s.Box(), shotPower, g.env) {
			hits[i] = true
		}
		if box, ok := s.DualBox(); ok && g.enemies.CheckCollision(box, shotPower, g.env) {
			hits[i] = true
		}
	})
	for i, hit := range hits {
		if hit {
			g.player.RemoveShot(i)
		}
	}
}

// checkPlayerVsEnemies tests the second ship first: losing it shifts the
// main ship, so the main box is taken afterwards.
func (g *Game) checkPlayerVsEnemies() {
	if box, ok := g.player.DualBox(); ok && g.hitShip(box) {
		pos, _ := g.player.DualPos()
		g.crash(pos)
	}
	if box, ok := g.player.Box(); ok && g.hitShip(box) {
		g.crash(g.player.Pos())
	}
}

func (g *Game) hitShip(box collision.Box) bool {
	if g.enemies.CheckCollision(box, crashPower, g.env) {
		return true
	}
	return g.enemies.CheckShotCollision(box)
}

func (g *Game) crash(pos fixed.Vec2) {
	g.queue.Push(event.PlayerExplosion{Pos: pos})
	wasDual := g.player.IsDual()
	if g.player.Crash(pos) {
		g.queue.Push(event.DeadPlayer{})
		return
	}
	if wasDual && g.capture.IsDual() {
		g.capture.Abort()
	}
}
