package game

import "github.com/vovakirdan/tui-galaga/internal/fixed"

const maxEffects = 16

type effectKind uint8

const (
	effectEnemyExplosion effectKind = iota
	effectPlayerExplosion
	effectPoint
)

// lifetime is how many frames each effect stays on screen.
func (k effectKind) lifetime() int {
	if k == effectEnemyExplosion {
		return 20
	}
	return 64
}

// effect is a short-lived visual: an explosion or a bonus popup. value is
// the points of a popup or the enemy kind of an explosion.
type effect struct {
	kind  effectKind
	pos   fixed.Vec2
	angle int32
	value uint32
	frame int
}

type effects struct {
	list [maxEffects]effect
	live [maxEffects]bool
}

// spawn adds an effect, dropping it when every slot is busy.
func (e *effects) spawn(kind effectKind, pos fixed.Vec2, angle int32, value uint32) {
	for i := range e.list {
		if !e.live[i] {
			e.list[i] = effect{kind: kind, pos: pos, angle: angle, value: value}
			e.live[i] = true
			return
		}
	}
}

func (e *effects) update() {
	for i := range e.list {
		if !e.live[i] {
			continue
		}
		e.list[i].frame++
		if e.list[i].frame >= e.list[i].kind.lifetime() {
			e.live[i] = false
		}
	}
}

func (e *effects) each(fn func(fx effect)) {
	for i := range e.list {
		if e.live[i] {
			fn(e.list[i])
		}
	}
}

func (e *effects) count() int {
	n := 0
	for _, live := range e.live {
		if live {
			n++
		}
	}
	return n
}
