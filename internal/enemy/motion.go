package enemy

import (
	"github.com/vovakirdan/tui-galaga/internal/event"
	"github.com/vovakirdan/tui-galaga/internal/fixed"
	"github.com/vovakirdan/tui-galaga/internal/traj"
)

const assaultTurn = 5 * fixed.One

func (e *Enemy) forward() {
	e.pos = e.pos.Add(e.m.trig.Velocity(e.angle+e.vangle/2, e.speed))
	e.angle += e.vangle
}

func (e *Enemy) homePos() fixed.Vec2 {
	return e.m.formation.Position(e.index)
}

// updateTrajectory steps the loaded trajectory and copies its motion.
// It reports false once the trajectory has finished, dropping it.
func (e *Enemy) updateTrajectory(env Env) bool {
	if e.traj == nil {
		return false
	}

	cont := e.traj.Update(e.homePos().X)
	e.pos = e.traj.Pos()
	e.angle = e.traj.Angle
	e.speed = e.traj.Speed
	e.vangle = e.traj.VAngle

	if wait, ok := e.traj.TakeShot(); ok {
		e.shotWait = wait
	}
	if e.shotWait > 0 {
		e.shotWait--
	} else if e.shotWait == 0 {
		env.Push(event.EneShot{Pos: e.pos})
		e.shotWait = -1
	}

	if cont {
		return true
	}
	e.traj = nil
	return false
}

// moveToFormation flies toward the home slot. It reports false once the
// enemy has arrived and snapped into place.
func (e *Enemy) moveToFormation() bool {
	target := e.homePos()
	diff := target.Sub(e.pos)
	const shift = fixed.OneBit / 2
	dx, dy, sp := int64(diff.X>>shift), int64(diff.Y>>shift), int64(e.speed>>shift)
	if dx*dx+dy*dy > sp*sp {
		limit := e.speed * 5 / 3
		d := fixed.DiffAngle(e.m.trig.Heading(diff), e.angle)
		e.angle += fixed.Clamp(d, -limit, limit)
		e.vangle = 0
		return true
	}

	e.pos = target
	e.speed = 0
	return false
}

// updateFormation tracks the home slot and eases the heading back up.
func (e *Enemy) updateFormation() {
	e.pos = e.homePos()
	e.angle -= fixed.Clamp(e.angle-fixed.Up, -formationTurn, formationTurn)
}

func (e *Enemy) setAssault(env Env) {
	targets := []fixed.Vec2{env.PlayerPos()}
	if dual, ok := env.DualPlayerPos(); ok {
		targets = append(targets, dual)
	}
	e.target = targets[env.Intn(len(targets))]
	e.vangle = 0
	e.assaultPhase = 0
	e.state = StateAssault
}

// updateAssault turns toward the target once and then flies straight off
// the bottom of the screen.
func (e *Enemy) updateAssault() {
	switch e.assaultPhase {
	case 0:
		d := fixed.DiffAngle(e.m.trig.Heading(e.target.Sub(e.pos)), e.angle)
		switch {
		case d < -assaultTurn:
			e.angle -= assaultTurn
		case d > assaultTurn:
			e.angle += assaultTurn
		default:
			e.angle += d
			e.assaultPhase = 1
		}
	default:
		if e.pos.Y >= offScreenY {
			e.disappeared = true
			e.assaultPhase = 2
		}
	}
}

// attackShot reports whether this frame of a dive is a firing frame, and
// fires when enabled.
func (e *Enemy) attackShot(enabled bool, env Env) bool {
	e.attackFrame++

	count := min(2+env.Stage()/8, 5)
	interval := 20 - count*2
	if e.attackFrame > interval*count || e.attackFrame%interval != 0 {
		return false
	}
	if enabled {
		env.Push(event.EneShot{Pos: e.pos})
	}
	return true
}

func (e *Enemy) updateAttack(env Env) {
	if e.kind == Owl {
		e.updateOwlAttack(env)
		return
	}

	e.attackShot(true, env)
	if e.updateTrajectory(env) {
		return
	}

	switch {
	case e.beeAttack && env.IsRush():
		e.startTraj(traj.BeeAttackRushCont)
	case e.beeAttack:
		e.state = StateMoveToFormation
	case e.kind == CapturedFighter:
		e.disappeared = true
	case env.IsRush():
		e.startTraj(rushTable(e.kind))
		env.Push(event.PlaySe{Channel: event.ChAttack, Sound: event.SeAttackStart})
	default:
		e.state = StateMoveToFormation
	}
}
