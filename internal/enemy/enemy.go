// Package enemy implements the enemy fleet: one Enemy record per arena slot,
// dispatched on its kind, plus the Manager that owns the arena and the enemy
// shots.
package enemy

import (
	"github.com/vovakirdan/tui-galaga/internal/collision"
	"github.com/vovakirdan/tui-galaga/internal/event"
	"github.com/vovakirdan/tui-galaga/internal/fixed"
	"github.com/vovakirdan/tui-galaga/internal/formation"
	"github.com/vovakirdan/tui-galaga/internal/traj"
)

// Kind selects enemy behavior.
type Kind = event.EnemyKind

const (
	Bee             = event.Bee
	Butterfly       = event.Butterfly
	Owl             = event.Owl
	CapturedFighter = event.CapturedFighter
)

const (
	owlLife   = 2
	maxTroops = 3

	// ShotPauseOnOwlKill is how long enemy shots stop after an owl dies.
	ShotPauseOnOwlKill = 180

	playerY       = (traj.Height - 16 - 8) * fixed.One
	offScreenY    = (traj.Height + 8) * fixed.One
	formationTurn = fixed.FullTurn / 128
)

// State is the behavior an enemy is currently running.
type State uint8

const (
	StateNone State = iota
	StateAppearance
	StateMoveToFormation
	StateFormation
	StateAttacking
	StateAssault
	StateCaptureAttacking
	StateCapturing
	StateCaptured
	StateTroop
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "None"
	case StateAppearance:
		return "Appearance"
	case StateMoveToFormation:
		return "MoveToFormation"
	case StateFormation:
		return "Formation"
	case StateAttacking:
		return "Attacking"
	case StateAssault:
		return "Assault"
	case StateCaptureAttacking:
		return "CaptureAttacking"
	case StateCapturing:
		return "Capturing"
	case StateCaptured:
		return "Captured"
	case StateTroop:
		return "Troop"
	default:
		return "Unknown"
	}
}

// phase refines the owl capture states.
type phase uint8

const (
	phaseNone phase = iota
	phaseDive
	phaseGoOut
	phaseBeam
	phaseTracting
	phaseCloseBeam
	phaseDoneWait
	phaseDoneBack
	phasePushUp
)

// capturing tracks how far an owl got with its capture attempt.
type capturing uint8

const (
	capNone capturing = iota
	capAttacking
	capBeamTracting
	capCaptured // Beam closing over the taken ship
	capFailed
)

type troop struct {
	index formation.Index
	ok    bool
}

// DamageResult reports the outcome of SetDamage. Ghost means the enemy was
// destroyed but stays in its slot, non-colliding, to keep escorts moving.
type DamageResult struct {
	Destroyed bool
	Point     uint32
	Ghost     bool
}

// Enemy is a single arena entry. It is only reachable through its Manager.
type Enemy struct {
	m *Manager

	kind  Kind
	index formation.Index

	pos    fixed.Vec2
	angle  int32
	speed  int32
	vangle int32

	state        State
	phase        phase
	beeAttack    bool
	assaultPhase int

	traj        *traj.Traj
	shotWait    int32
	count       int
	attackFrame int
	target      fixed.Vec2

	life        int32
	destroyed   bool
	disappeared bool

	beam      *Beam
	capturing capturing
	troops    [maxTroops]troop
	copyAngle bool
}

func (e *Enemy) reset(m *Manager, kind Kind, idx formation.Index) {
	*e = Enemy{
		m:         m,
		kind:      kind,
		index:     idx,
		shotWait:  -1,
		life:      1,
		copyAngle: true,
	}
	if kind == Owl {
		e.life = owlLife
	}
}

// Kind returns the enemy kind.
func (e *Enemy) Kind() Kind { return e.kind }

// Index returns the formation slot the enemy belongs to.
func (e *Enemy) Index() formation.Index { return e.index }

// Pos returns the enemy position.
func (e *Enemy) Pos() fixed.Vec2 { return e.pos }

// Angle returns the enemy heading.
func (e *Enemy) Angle() int32 { return e.angle }

// State returns the current behavior.
func (e *Enemy) State() State { return e.state }

// Life returns the remaining hit points.
func (e *Enemy) Life() int32 { return e.life }

// IsFormation reports whether the enemy is resting in formation.
func (e *Enemy) IsFormation() bool { return e.state == StateFormation }

// Ghost reports whether the enemy is destroyed but still leading troops.
func (e *Enemy) Ghost() bool { return e.destroyed && !e.disappeared }

// HasCaptureLight reports whether an owl is mid capture, for sprite choice.
func (e *Enemy) HasCaptureLight() bool { return e.capturing != capNone }

// Beam returns the tractor beam, if one is out.
func (e *Enemy) Beam() (*Beam, bool) {
	return e.beam, e.beam != nil
}

// Box returns the hit box. Destroyed enemies have none.
func (e *Enemy) Box() (collision.Box, bool) {
	if e.destroyed {
		return collision.Box{}, false
	}
	return collision.At(e.pos, -6, -6, 12, 12), true
}

// Update runs one frame and reports whether the enemy is still alive.
func (e *Enemy) Update(env Env) bool {
	prev := e.pos

	switch e.state {
	case StateAppearance:
		if !e.updateTrajectory(env) {
			if e.index.Y >= formation.AssaultRow {
				e.setAssault(env)
			} else {
				e.state = StateMoveToFormation
			}
		}
	case StateMoveToFormation:
		if !e.moveToFormation() {
			if e.kind == Owl {
				e.capturing = capNone
				e.releaseTroops()
			}
			e.setToFormation()
		}
	case StateAssault:
		e.updateAssault()
	case StateFormation:
		e.updateFormation()
	case StateAttacking:
		e.updateAttack(env)
	case StateCaptureAttacking, StateCapturing, StateCaptured:
		e.updateCapture(env)
	}

	e.forward()

	if e.kind == Owl {
		e.moveTroops(e.pos.Sub(prev))
		if e.beam != nil {
			e.beam.Update()
		}
		if e.destroyed && !e.disappeared && !e.liveTroopsExist() {
			e.disappeared = true
		}
	}
	return !e.disappeared
}

// SetDamage applies a hit. An enemy that is already destroyed, ghosts
// included, takes no further damage and scores nothing.
func (e *Enemy) SetDamage(power int32, env Env) DamageResult {
	if e.destroyed {
		return DamageResult{}
	}
	if e.kind == Owl {
		return e.owlDamage(power, env)
	}

	point := e.point()
	e.destroyed = true
	e.disappeared = true
	e.explode(env)
	if e.kind == CapturedFighter {
		env.Push(event.PlaySe{Channel: event.ChJingle, Sound: event.SeBombCaptured})
		env.Push(event.CapturedFighterDestroyed{})
	} else {
		env.Push(event.PlaySe{Channel: event.ChBomb, Sound: event.SeBombZako})
	}
	return DamageResult{Destroyed: true, Point: point}
}

func (e *Enemy) point() uint32 {
	switch e.kind {
	case Bee:
		if e.IsFormation() {
			return 50
		}
		return 100
	case Butterfly:
		if e.IsFormation() {
			return 80
		}
		return 160
	case CapturedFighter:
		if e.IsFormation() {
			return 500
		}
		return 1000
	case Owl:
		if e.IsFormation() {
			return 150
		}
		held, holds := e.capturedIndex()
		n := 0
		for _, t := range e.troops {
			if t.ok && (!holds || t.index != held) {
				n++
			}
		}
		return (1 << n) * 400
	}
	return 0
}

func (e *Enemy) explode(env Env) {
	env.Push(event.EnemyExplosion{Pos: e.pos, Angle: e.angle, Kind: e.kind})
}

// StartAttack launches a dive from formation. capture selects the owl
// tractor beam attack.
func (e *Enemy) StartAttack(capture bool, env Env) {
	switch e.kind {
	case Bee:
		e.startTraj(traj.BeeAttack)
		e.beeAttack = true
		e.state = StateAttacking
	case Butterfly:
		e.startTraj(traj.ButterflyAttack)
		e.state = StateAttacking
	case CapturedFighter:
		e.startTraj(traj.OwlAttack)
		e.state = StateAttacking
	case Owl:
		e.startOwlAttack(capture, env)
	}
	env.Push(event.PlaySe{Channel: event.ChAttack, Sound: event.SeAttackStart})
}

func (e *Enemy) flipX() bool {
	return int(e.index.X) >= formation.Cols/2
}

func (e *Enemy) startTraj(cmds []traj.Command) {
	t := traj.New(e.m.trig, cmds, fixed.Vec2{}, e.flipX())
	t.SetPos(e.pos)
	e.traj = t
	e.beeAttack = false
	e.count = 0
	e.attackFrame = 0
}

func (e *Enemy) setToTroop() {
	e.state = StateTroop
}

func (e *Enemy) setToFormation() {
	e.speed = 0
	e.angle = fixed.Up + fixed.NormalizeAngle(e.angle-fixed.Up)
	e.vangle = 0
	e.state = StateFormation
	e.phase = phaseNone
	if e.kind == Owl && e.destroyed {
		e.disappeared = true
	}
}

// followLeader moves a troop along with its owl.
func (e *Enemy) followLeader(delta fixed.Vec2, angle int32, copyAngle bool) {
	e.pos = e.pos.Add(delta)
	if copyAngle {
		e.angle = angle
	}
}

func rushTable(kind Kind) []traj.Command {
	switch kind {
	case Bee:
		return traj.BeeRushAttack
	case Butterfly:
		return traj.ButterflyRushAttack
	default:
		return traj.OwlRushAttack
	}
}
