package enemy

import (
	"testing"

	"github.com/vovakirdan/tui-galaga/internal/event"
	"github.com/vovakirdan/tui-galaga/internal/fixed"
	"github.com/vovakirdan/tui-galaga/internal/formation"
	"github.com/vovakirdan/tui-galaga/internal/traj"
)

type fakeEnv struct {
	player      fixed.Vec2
	dual        bool
	canCapture  bool
	captureDone bool
	rush        bool
	stage       int
	rng         *fixed.RNG
	events      []event.Event
}

func newFakeEnv() *fakeEnv {
	return &fakeEnv{
		player: fixed.V(112, 264),
		rng:    fixed.NewRNG(1),
	}
}

func (f *fakeEnv) PlayerPos() fixed.Vec2 { return f.player }
func (f *fakeEnv) DualPlayerPos() (fixed.Vec2, bool) {
	return f.player.Add(fixed.V(16, 0)), f.dual
}
func (f *fakeEnv) CanPlayerCapture() bool { return f.canCapture }
func (f *fakeEnv) IsPlayerCaptureCompleted() bool { return f.captureDone }
func (f *fakeEnv) IsRush() bool { return f.rush }
func (f *fakeEnv) Stage() int { return f.stage }
func (f *fakeEnv) Intn(n int) int { return f.rng.Intn(n) }
func (f *fakeEnv) Push(e event.Event) { f.events = append(f.events, e) }

func (f *fakeEnv) count(match func(event.Event) bool) int {
	n := 0
	for _, e := range f.events {
		if match(e) {
			n++
		}
	}
	return n
}

func newTestManager() *Manager {
	trig := fixed.NewTrig()
	return NewManager(trig, formation.New(trig))
}

func TestSetDamageScoresOnce(t *testing.T) {
	m := newTestManager()
	env := newFakeEnv()
	idx := formation.Index{X: 4, Y: 4}
	if !m.SpawnInFormation(Bee, idx) {
		t.Fatal("SpawnInFormation() = false, expected true")
	}
	e, _ := m.At(idx)

	first := e.SetDamage(1, env)
	if !first.Destroyed || first.Point != 50 {
		t.Errorf("first SetDamage() = %+v, expected destroyed with 50 points", first)
	}

	second := e.SetDamage(1, env)
	if second.Destroyed || second.Point != 0 {
		t.Errorf("second SetDamage() = %+v, expected no effect", second)
	}
	if _, ok := e.Box(); ok {
		t.Error("Box() on destroyed enemy reported a hit box")
	}
}

func TestPoints(t *testing.T) {
	tests := []struct {
		kind      Kind
		formation bool
		expected  uint32
	}{
		{Bee, true, 50},
		{Bee, false, 100},
		{Butterfly, true, 80},
		{Butterfly, false, 160},
		{CapturedFighter, true, 500},
		{CapturedFighter, false, 1000},
		{Owl, true, 150},
		{Owl, false, 400},
	}

	for _, tt := range tests {
		m := newTestManager()
		idx := formation.Index{X: 2, Y: 1}
		m.SpawnInFormation(tt.kind, idx)
		e, _ := m.At(idx)
		if !tt.formation {
			e.state = StateAttacking
		}
		if got := e.point(); got != tt.expected {
			t.Errorf("point(%v, formation=%v) = %d, expected %d", tt.kind, tt.formation, got, tt.expected)
		}
	}
}

func TestOwlTakesTwoHits(t *testing.T) {
	m := newTestManager()
	env := newFakeEnv()
	idx := formation.Index{X: 4, Y: 1}
	m.SpawnInFormation(Owl, idx)
	e, _ := m.At(idx)

	r := e.SetDamage(1, env)
	if r.Destroyed || r.Point != 0 {
		t.Errorf("first hit = %+v, expected damage only", r)
	}
	if e.Life() != 1 {
		t.Errorf("Life() = %d, expected 1", e.Life())
	}
	r = e.SetDamage(1, env)
	if !r.Destroyed || r.Point != 150 || r.Ghost {
		t.Errorf("second hit = %+v, expected destroyed for 150", r)
	}
	if !m.ShotsPaused() {
		t.Error("owl kill did not pause enemy shots")
	}
}

func TestOwlWithTroopsBecomesGhost(t *testing.T) {
	m := newTestManager()
	env := newFakeEnv()
	owl := formation.Index{X: 4, Y: 1}
	left := formation.Index{X: 3, Y: 2}
	right := formation.Index{X: 5, Y: 2}
	m.SpawnInFormation(Owl, owl)
	m.SpawnInFormation(Butterfly, left)
	m.SpawnInFormation(Butterfly, right)

	if !m.StartAttack(owl, false, env) {
		t.Fatal("StartAttack() = false")
	}
	for _, idx := range []formation.Index{left, right} {
		if e, _ := m.At(idx); e.State() != StateTroop {
			t.Errorf("escort %v state = %v, expected Troop", idx, e.State())
		}
	}

	e, _ := m.At(owl)
	e.life = 1
	r := e.SetDamage(1, env)
	if !r.Ghost || r.Point != 1600 {
		t.Errorf("SetDamage() = %+v, expected ghost worth 1600", r)
	}
	if again := e.SetDamage(1, env); again.Point != 0 || again.Destroyed {
		t.Errorf("SetDamage() on ghost = %+v, expected no effect", again)
	}

	// The ghost lingers until its escorts are gone.
	m.Update(env)
	if !m.IsLiveAt(owl) {
		t.Fatal("ghost removed while escorts alive")
	}
	m.Remove(left)
	m.Remove(right)
	m.Update(env)
	if m.IsLiveAt(owl) {
		t.Error("ghost still present after escorts removed")
	}
}

func TestCheckCollisionRemovesAndScores(t *testing.T) {
	m := newTestManager()
	env := newFakeEnv()
	idx := formation.Index{X: 0, Y: 4}
	m.SpawnInFormation(Bee, idx)
	e, _ := m.At(idx)
	box, _ := e.Box()

	if !m.CheckCollision(box, 1, env) {
		t.Fatal("CheckCollision() = false, expected hit")
	}
	if m.IsLiveAt(idx) {
		t.Error("destroyed bee still occupies its slot")
	}
	if m.AliveCount() != 0 {
		t.Errorf("AliveCount() = %d, expected 0", m.AliveCount())
	}
	scores := env.count(func(e event.Event) bool {
		s, ok := e.(event.AddScore)
		return ok && s.Points == 50
	})
	if scores != 1 {
		t.Errorf("AddScore events = %d, expected 1", scores)
	}
	if m.CheckCollision(box, 1, env) {
		t.Error("CheckCollision() hit an empty slot")
	}
}

func TestSpawnRejectsOccupiedSlot(t *testing.T) {
	m := newTestManager()
	idx := formation.Index{X: 1, Y: 2}
	tr := traj.New(m.trig, traj.Entry1, fixed.Vec2{}, false)
	if !m.Spawn(Bee, idx, tr) {
		t.Fatal("first Spawn() = false")
	}
	if m.Spawn(Butterfly, idx, tr) {
		t.Error("second Spawn() into the same slot succeeded")
	}
	if e, _ := m.At(idx); e.Kind() != Bee {
		t.Errorf("occupant kind = %v, expected bee", e.Kind())
	}
}

func TestAppearanceEndsInFormation(t *testing.T) {
	m := newTestManager()
	env := newFakeEnv()
	idx := formation.Index{X: 4, Y: 2}
	m.Spawn(Bee, idx, traj.New(m.trig, traj.Entry1, fixed.V(8, 0), false))

	for i := 0; i < 1000 && !m.IsStationary(); i++ {
		m.Update(env)
	}
	e, ok := m.At(idx)
	if !ok {
		t.Fatal("enemy vanished during appearance")
	}
	if !e.IsFormation() {
		t.Fatalf("state = %v, expected Formation", e.State())
	}
	if e.Pos() != m.formation.Position(idx) {
		t.Errorf("Pos() = %v, expected home %v", e.Pos(), m.formation.Position(idx))
	}
}

func TestBeeAttackShots(t *testing.T) {
	m := newTestManager()
	env := newFakeEnv()
	idx := formation.Index{X: 2, Y: 4}
	m.SpawnInFormation(Bee, idx)
	m.StartAttack(idx, false, env)

	for i := 0; i < 40; i++ {
		m.Update(env)
	}
	shots := env.count(func(e event.Event) bool {
		_, ok := e.(event.EneShot)
		return ok
	})
	if shots != 2 {
		t.Errorf("EneShot events = %d, expected 2 on stage 0", shots)
	}
}

func TestAssaultLeavesScreen(t *testing.T) {
	m := newTestManager()
	env := newFakeEnv()
	idx := formation.Index{X: 0, Y: formation.AssaultRow}
	m.Spawn(Bee, idx, traj.New(m.trig, traj.Entry1, fixed.Vec2{}, false))

	for i := 0; i < 2000 && m.IsLiveAt(idx); i++ {
		m.Update(env)
	}
	if m.IsLiveAt(idx) {
		t.Error("assault enemy never left the screen")
	}
}

func TestSpawnShotLimits(t *testing.T) {
	m := newTestManager()
	env := newFakeEnv()
	targets := []fixed.Vec2{env.player}

	for i := 0; i < MaxShots; i++ {
		if !m.SpawnShot(fixed.V(112, 40), targets, 3*fixed.One, env.Intn) {
			t.Fatalf("SpawnShot() #%d = false", i)
		}
	}
	if m.SpawnShot(fixed.V(112, 40), targets, 3*fixed.One, env.Intn) {
		t.Error("SpawnShot() exceeded the shot limit")
	}

	m.Restart()
	m.PauseShots(2)
	if m.SpawnShot(fixed.V(112, 40), targets, 3*fixed.One, env.Intn) {
		t.Error("SpawnShot() fired while paused")
	}
}

func TestShotHeadingClamped(t *testing.T) {
	m := newTestManager()
	env := newFakeEnv()
	// Target far to the side: the shot must still head mostly down.
	m.SpawnShot(fixed.V(0, 0), []fixed.Vec2{fixed.V(224, 10)}, 4*fixed.One, env.Intn)
	m.Shots(func(s Shot) {
		if s.Vel.Y <= 0 {
			t.Errorf("shot Vel = %v, expected downward", s.Vel)
		}
		if s.Vel.X <= 0 || s.Vel.X > s.Vel.Y {
			t.Errorf("shot Vel = %v, expected right and within 30 degrees", s.Vel)
		}
	})
}
