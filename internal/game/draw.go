package game

import (
	"fmt"

	"github.com/vovakirdan/tui-galaga/internal/core"
	"github.com/vovakirdan/tui-galaga/internal/enemy"
	"github.com/vovakirdan/tui-galaga/internal/event"
	"github.com/vovakirdan/tui-galaga/internal/fixed"
	"github.com/vovakirdan/tui-galaga/internal/player"
	"github.com/vovakirdan/tui-galaga/internal/traj"
)

// Renderer is the drawing capability the game needs. Positions are in
// playfield pixels (traj.Width x traj.Height). Angles are fixed-point turns
// away from the sprite's upright pose.
type Renderer interface {
	DrawSprite(name string, pos fixed.Vec2)
	DrawSpriteRotated(name string, pos fixed.Vec2, angle int32)
	DrawText(x, y int, color core.Color, text string)
}

const (
	minScreenW = 28
	minScreenH = 18

	beamRowHeight = 3
	maxLifeIcons  = 8
)

// Draw renders the whole frame through r.
func (g *Game) Draw(r Renderer) {
	g.drawPlayer(r)
	g.drawEnemies(r)
	g.drawShots(r)
	g.drawEffects(r)
	g.drawHUD(r)
	g.drawBanner(r)
}

func (g *Game) drawPlayer(r Renderer) {
	switch g.player.State() {
	case player.Dead, player.CaptureCompleted:
	default:
		r.DrawSpriteRotated("fighter", pixel(g.player.Pos()), g.player.Angle())
		if pos, ok := g.player.DualPos(); ok {
			r.DrawSprite("fighter", pixel(pos))
		}
	}
	if e, ok := g.player.Escort(); ok {
		r.DrawSpriteRotated("fighter", pixel(e.Pos()), e.Angle()-fixed.Up)
	}
}

func (g *Game) drawEnemies(r Renderer) {
	anim := (g.enemies.Frame() >> 5) & 1
	g.enemies.Each(func(e *enemy.Enemy) {
		if b, ok := e.Beam(); ok {
			top := pixel(b.Pos())
			for i := 0; i < b.Rows(); i++ {
				r.DrawSprite(beamSprite(b, i), fixed.Vec2{X: top.X, Y: top.Y + int32(i*beamRowHeight)}) //#nosec G115 -- few rows
			}
		}
		if e.Ghost() {
			return
		}
		r.DrawSpriteRotated(fmt.Sprintf("%s%d", enemySprite(e), anim+1), pixel(e.Pos()), e.Angle()-fixed.Up)
	})
}

// beamSprite picks the stripe of one beam row. Stripes scroll down the
// beam every few frames.
func beamSprite(b *enemy.Beam, row int) string {
	if (int(b.Frames()>>2)-row)&1 == 0 {
		return "beam1"
	}
	return "beam2"
}

func enemySprite(e *enemy.Enemy) string {
	switch e.Kind() {
	case event.Bee:
		return "bee"
	case event.Butterfly:
		return "butterfly"
	case event.Owl:
		if e.Life() < 2 {
			return "owl_hurt"
		}
		return "owl"
	default:
		return "captured"
	}
}

func (g *Game) drawShots(r Renderer) {
	g.player.Shots(func(_ int, s player.Shot) {
		r.DrawSpriteRotated("myshot", pixel(s.Pos), s.Spin)
		if s.Dual {
			r.DrawSpriteRotated("myshot", pixel(s.Pos.Add(fixed.Vec2{X: player.DualOffset})), s.Spin)
		}
	})
	g.enemies.Shots(func(s enemy.Shot) {
		r.DrawSprite("eneshot", pixel(s.Pos))
	})
}

func (g *Game) drawEffects(r Renderer) {
	g.effects.each(func(fx effect) {
		pos := pixel(fx.pos)
		switch fx.kind {
		case effectEnemyExplosion:
			r.DrawSprite("explosion", pos)
		case effectPlayerExplosion:
			r.DrawSprite("player_explosion", pos)
		case effectPoint:
			text := fmt.Sprintf("%d", fx.value)
			r.DrawText(int(pos.X)-len(text)*4, int(pos.Y)-4, core.ColorBrightCyan, text)
		}
	})
}

func (g *Game) drawHUD(r Renderer) {
	r.DrawText(2*8, 0, core.ColorRed, "1UP")
	r.DrawText(0, 8, core.ColorBrightWhite, fmt.Sprintf("%6d", g.score.Score()))
	r.DrawText(9*8, 0, core.ColorRed, "HIGH SCORE")
	r.DrawText(10*8, 8, core.ColorBrightWhite, fmt.Sprintf("%6d", g.score.HighScore()))

	stage := fmt.Sprintf("%d", g.stage+1)
	r.DrawText(traj.Width-len(stage)*8, traj.Height-8, core.ColorBrightYellow, stage)

	lives := g.player.Lives()
	if g.mode == ModePractice {
		lives = 1
	}
	for i := 0; i < min(lives-1, maxLifeIcons); i++ {
		r.DrawSprite("fighter", fixed.Vec2{X: int32(i*16 + 8), Y: traj.Height - 8}) //#nosec G115 -- few icons
	}
}

func (g *Game) drawBanner(r Renderer) {
	switch g.state {
	case StateStartStage:
		r.DrawText(10*8, 18*8, core.ColorCyan, fmt.Sprintf("STAGE %d", g.stage+1))
	case StateWaitReady, StateWaitReady2:
		if g.player.Lives() > 1 || g.state == StateWaitReady2 || g.mode == ModePractice {
			r.DrawText((28-6)/2*8, 18*8, core.ColorCyan, "READY")
		}
	case StateCaptured:
		if g.count < capturedBanner {
			r.DrawText((28-16)/2*8, 19*8, core.ColorRed, "FIGHTER CAPTURED")
		}
	case StateGameOver, StateFinished:
		r.DrawText((28-8)/2*8, 18*8, core.ColorCyan, "GAME OVER")
	}
	if g.paused {
		r.DrawText((28-6)/2*8, 20*8, core.ColorBrightWhite, "PAUSED")
	}
}

// pixel converts a fixed-point position to whole playfield pixels.
func pixel(v fixed.Vec2) fixed.Vec2 {
	return v.Round()
}

// Render draws the game scaled onto a character screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.Draw(&screenRenderer{dst: dst})
}

// sprite is how a sprite looks in a terminal cell.
type sprite struct {
	glyph rune
	color core.Color
}

var sprites = map[string]sprite{
	"bee1":             {'x', core.ColorBrightYellow},
	"bee2":             {'X', core.ColorBrightYellow},
	"butterfly1":       {'}', core.ColorBrightRed},
	"butterfly2":       {'{', core.ColorBrightRed},
	"owl1":             {'Ψ', core.ColorBrightGreen},
	"owl2":             {'ψ', core.ColorBrightGreen},
	"owl_hurt1":        {'Ψ', core.ColorMagenta},
	"owl_hurt2":        {'ψ', core.ColorMagenta},
	"captured1":        {'▲', core.ColorRed},
	"captured2":        {'▲', core.ColorRed},
	"myshot":           {'|', core.ColorBrightWhite},
	"eneshot":          {'•', core.ColorBrightRed},
	"beam1":            {'░', core.ColorCyan},
	"beam2":            {'▒', core.ColorBrightCyan},
	"explosion":        {'*', core.ColorOrange},
	"player_explosion": {'#', core.ColorBrightRed},
}

// fighterGlyphs shows the ship heading while it spins.
var fighterGlyphs = [4]rune{'▲', '►', '▼', '◄'}

// screenRenderer scales playfield pixels onto screen cells.
type screenRenderer struct {
	dst *core.Screen
}

func (s *screenRenderer) cell(x, y int) (int, int) {
	return x * s.dst.Width() / traj.Width, y * s.dst.Height() / traj.Height
}

func (s *screenRenderer) DrawSprite(name string, pos fixed.Vec2) {
	s.DrawSpriteRotated(name, pos, 0)
}

func (s *screenRenderer) DrawSpriteRotated(name string, pos fixed.Vec2, angle int32) {
	x, y := s.cell(int(pos.X), int(pos.Y))
	if name == "fighter" {
		s.dst.SetColored(x, y, fighterGlyphs[fixed.QuantizeAngle(angle, len(fighterGlyphs))], core.ColorBrightWhite)
		return
	}
	sp, ok := sprites[name]
	if !ok {
		return
	}
	s.dst.SetColored(x, y, sp.glyph, sp.color)
}

func (s *screenRenderer) DrawText(x, y int, color core.Color, text string) {
	cx, cy := s.cell(x, y)
	s.dst.DrawTextColored(cx, cy, text, color)
}
