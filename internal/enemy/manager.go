package enemy

import (
	"github.com/vovakirdan/tui-galaga/internal/collision"
	"github.com/vovakirdan/tui-galaga/internal/event"
	"github.com/vovakirdan/tui-galaga/internal/fixed"
	"github.com/vovakirdan/tui-galaga/internal/formation"
	"github.com/vovakirdan/tui-galaga/internal/traj"
)

// Env is what enemies may read from and send to the rest of the game.
// Implementations must not retain enemies across calls.
type Env interface {
	PlayerPos() fixed.Vec2
	DualPlayerPos() (fixed.Vec2, bool)
	CanPlayerCapture() bool
	IsPlayerCaptureCompleted() bool
	IsRush() bool
	Stage() int
	Intn(n int) int
	Push(e event.Event)
}

// Manager owns the enemy arena, addressed by formation slot, and the enemy
// shots. Slot occupancy lives in the formation.
type Manager struct {
	trig      *fixed.Trig
	formation *formation.Formation

	enemies [formation.Slots]Enemy

	shots      [MaxShots]Shot
	shotLive   [MaxShots]bool
	shotPaused int
	frame      uint32
}

// NewManager creates an empty arena bound to a formation.
func NewManager(trig *fixed.Trig, f *formation.Formation) *Manager {
	return &Manager{trig: trig, formation: f}
}

// Restart clears enemies and shots for a new stage.
func (m *Manager) Restart() {
	m.formation.Clear()
	m.enemies = [formation.Slots]Enemy{}
	m.shotLive = [MaxShots]bool{}
	m.shotPaused = 0
	m.frame = 0
}

// Frame returns the manager clock, used for sprite animation.
func (m *Manager) Frame() uint32 {
	return m.frame
}

// Update advances every live enemy and shot by one frame.
func (m *Manager) Update(env Env) {
	m.frame++
	if m.shotPaused > 0 {
		m.shotPaused--
	}

	for slot := range m.enemies {
		idx := formation.FromSlot(slot)
		if !m.formation.Occupied(idx) {
			continue
		}
		if !m.enemies[slot].Update(env) {
			m.remove(idx)
		}
	}

	for i := range m.shots {
		if m.shotLive[i] && !m.shots[i].update() {
			m.shotLive[i] = false
		}
	}
}

// At resolves a slot to its live enemy. The pointer is only valid for the
// current call chain.
func (m *Manager) At(idx formation.Index) (*Enemy, bool) {
	if !m.formation.Occupied(idx) {
		return nil, false
	}
	return &m.enemies[idx.Slot()], true
}

// Spawn places an entering enemy on its trajectory. It reports false, and
// leaves the arena untouched, when the slot is already taken.
func (m *Manager) Spawn(kind Kind, idx formation.Index, t *traj.Traj) bool {
	if !m.formation.Occupy(idx) {
		return false
	}
	e := &m.enemies[idx.Slot()]
	e.reset(m, kind, idx)
	e.traj = t
	e.state = StateAppearance
	return true
}

// SpawnInFormation places an enemy directly in its slot.
func (m *Manager) SpawnInFormation(kind Kind, idx formation.Index) bool {
	if !m.formation.Occupy(idx) {
		return false
	}
	e := &m.enemies[idx.Slot()]
	e.reset(m, kind, idx)
	e.pos = m.formation.Position(idx)
	e.setToFormation()
	return true
}

// SpawnCapturedFighter places a freshly captured fighter as a troop of the
// owl that took it.
func (m *Manager) SpawnCapturedFighter(pos fixed.Vec2, idx formation.Index) bool {
	if !m.formation.Occupy(idx) {
		return false
	}
	e := &m.enemies[idx.Slot()]
	e.reset(m, CapturedFighter, idx)
	e.pos = pos
	e.angle = fixed.Up
	e.setToTroop()
	return true
}

// ReturnCapturedFighter hands a fighter that was being rescued back to the
// fleet; it flies home to its slot.
func (m *Manager) ReturnCapturedFighter(pos fixed.Vec2, angle int32, idx formation.Index) bool {
	if !m.formation.Occupy(idx) {
		return false
	}
	e := &m.enemies[idx.Slot()]
	e.reset(m, CapturedFighter, idx)
	e.pos = pos
	e.angle = angle
	e.speed = captureBackSpeed
	e.state = StateMoveToFormation
	return true
}

// Remove frees a slot. It reports false when the slot was already empty.
func (m *Manager) Remove(idx formation.Index) bool {
	if !m.formation.Occupied(idx) {
		return false
	}
	m.remove(idx)
	return true
}

func (m *Manager) remove(idx formation.Index) {
	m.formation.Release(idx)
	m.enemies[idx.Slot()] = Enemy{}
}

// AliveCount returns the number of occupied slots, ghosts included.
func (m *Manager) AliveCount() int {
	return m.formation.Count()
}

// IsStationary reports whether every live enemy is resting in formation.
func (m *Manager) IsStationary() bool {
	stationary := true
	m.Each(func(e *Enemy) {
		if !e.IsFormation() {
			stationary = false
		}
	})
	return stationary
}

// IsFormationAt reports whether the slot holds an enemy resting in formation.
func (m *Manager) IsFormationAt(idx formation.Index) bool {
	e, ok := m.At(idx)
	return ok && e.IsFormation()
}

// KindAt returns the kind of the enemy in the slot.
func (m *Manager) KindAt(idx formation.Index) (Kind, bool) {
	e, ok := m.At(idx)
	if !ok {
		return 0, false
	}
	return e.kind, true
}

// IsLiveAt reports whether the slot is occupied.
func (m *Manager) IsLiveAt(idx formation.Index) bool {
	return m.formation.Occupied(idx)
}

// StartAttack sends the enemy at idx on a dive. It reports false when the
// slot is empty.
func (m *Manager) StartAttack(idx formation.Index, capture bool, env Env) bool {
	e, ok := m.At(idx)
	if !ok {
		return false
	}
	e.StartAttack(capture, env)
	return true
}

// Each calls fn for every live enemy in slot order.
func (m *Manager) Each(fn func(e *Enemy)) {
	for slot := range m.enemies {
		if m.formation.Occupied(formation.FromSlot(slot)) {
			fn(&m.enemies[slot])
		}
	}
}

// CheckCollision damages the first enemy overlapping target. It reports
// whether anything was hit; scoring and removal are handled here.
func (m *Manager) CheckCollision(target collision.Box, power int32, env Env) bool {
	for slot := range m.enemies {
		idx := formation.FromSlot(slot)
		if !m.formation.Occupied(idx) {
			continue
		}
		e := &m.enemies[slot]
		box, ok := e.Box()
		if !ok || !collision.Collide(box, target) {
			continue
		}

		pos := e.pos
		result := e.SetDamage(power, env)
		if result.Point > 0 {
			env.Push(event.AddScore{Points: result.Point})
			if showsPoint(result.Point) {
				env.Push(event.EarnPointEffect{Points: result.Point, Pos: pos})
			}
			if !result.Ghost {
				m.remove(idx)
			}
		}
		return true
	}
	return false
}

// showsPoint reports whether a bonus popup exists for the award.
func showsPoint(point uint32) bool {
	switch point {
	case 400, 800, 1000, 1600:
		return true
	}
	return false
}

// CheckShotCollision removes the first enemy shot overlapping target.
func (m *Manager) CheckShotCollision(target collision.Box) bool {
	for i := range m.shots {
		if m.shotLive[i] && collision.Collide(m.shots[i].Box(), target) {
			m.shotLive[i] = false
			return true
		}
	}
	return false
}

// SpawnShot fires at one of targets, picked with rng. The heading is kept
// within 30 degrees of straight down. Nothing is fired while shots are
// paused or every shot slot is in use.
func (m *Manager) SpawnShot(pos fixed.Vec2, targets []fixed.Vec2, speed int32, intn func(int) int) bool {
	if m.shotPaused > 0 || len(targets) == 0 {
		return false
	}
	for i := range m.shots {
		if m.shotLive[i] {
			continue
		}
		target := targets[intn(len(targets))]
		const limit = fixed.FullTurn * 30 / 360
		angle := fixed.Clamp(fixed.NormalizeAngle(m.trig.Heading(target.Sub(pos))), -limit, limit)
		m.shots[i] = Shot{Pos: pos, Vel: m.trig.Velocity(angle, speed)}
		m.shotLive[i] = true
		return true
	}
	return false
}

// PauseShots stops new enemy shots for the given number of frames.
func (m *Manager) PauseShots(frames int) {
	m.shotPaused = frames
}

// ShotsPaused reports whether new enemy shots are currently blocked.
func (m *Manager) ShotsPaused() bool {
	return m.shotPaused > 0
}

// Shots calls fn for every live enemy shot.
func (m *Manager) Shots(fn func(s Shot)) {
	for i := range m.shots {
		if m.shotLive[i] {
			fn(m.shots[i])
		}
	}
}

// NoShots reports whether every enemy shot has left the screen.
func (m *Manager) NoShots() bool {
	for _, live := range m.shotLive {
		if live {
			return false
		}
	}
	return true
}
