package enemy

import (
	"github.com/vovakirdan/tui-galaga/internal/event"
	"github.com/vovakirdan/tui-galaga/internal/fixed"
	"github.com/vovakirdan/tui-galaga/internal/formation"
	"github.com/vovakirdan/tui-galaga/internal/traj"
)

// Capture attack tuning.
const (
	captureTurn      = 4 * fixed.One
	captureCone      = fixed.FullTurn * 30 / 360
	captureDiveSpeed = 3 * fixed.One / 2
	captureBackSpeed = 5 * fixed.One / 2
	captureHeight    = 88 * fixed.One
	captureDoneWait  = 120
	pushUpSpeed      = 1 * fixed.One
)

// capturedIndex is the slot above the owl where a captured fighter rides.
func (e *Enemy) capturedIndex() (formation.Index, bool) {
	if e.index.Y == 0 {
		return formation.Index{}, false
	}
	return formation.Index{X: e.index.X, Y: e.index.Y - 1}, true
}

func (e *Enemy) neighbor(dx, dy int) (formation.Index, bool) {
	x, y := int(e.index.X)+dx, int(e.index.Y)+dy
	if x < 0 || x >= formation.Cols || y < 0 || y >= formation.Rows {
		return formation.Index{}, false
	}
	return formation.Index{X: uint8(x), Y: uint8(y)}, true //#nosec G115 -- bounded above
}

func (e *Enemy) setPhase(p phase) {
	e.phase = p
	e.count = 0
	switch p {
	case phaseDive, phaseGoOut:
		e.state = StateCaptureAttacking
	case phaseBeam, phaseTracting, phaseCloseBeam:
		e.state = StateCapturing
	case phaseDoneWait, phaseDoneBack, phasePushUp:
		e.state = StateCaptured
	}
}

func (e *Enemy) addTroop(idx formation.Index) bool {
	for i := range e.troops {
		if !e.troops[i].ok {
			e.troops[i] = troop{index: idx, ok: true}
			return true
		}
	}
	return false
}

func (e *Enemy) chooseTroops() {
	candidates := [...][2]int{{-1, 1}, {1, 1}, {0, -1}}
	for _, c := range candidates {
		idx, ok := e.neighbor(c[0], c[1])
		if !ok {
			continue
		}
		if t, ok := e.m.At(idx); ok && t.IsFormation() {
			e.addTroop(idx)
		}
	}
	for _, t := range e.troops {
		if !t.ok {
			continue
		}
		if te, ok := e.m.At(t.index); ok {
			te.setToTroop()
		}
	}
}

func (e *Enemy) moveTroops(delta fixed.Vec2) {
	for _, t := range e.troops {
		if !t.ok {
			continue
		}
		if te, ok := e.m.At(t.index); ok {
			te.followLeader(delta, e.angle, e.copyAngle)
		}
	}
}

func (e *Enemy) releaseTroops() {
	for i, t := range e.troops {
		if !t.ok {
			continue
		}
		if te, ok := e.m.At(t.index); ok {
			te.setToFormation()
		}
		e.troops[i] = troop{}
	}
}

func (e *Enemy) removeDestroyedTroops() {
	for i, t := range e.troops {
		if t.ok {
			if _, ok := e.m.At(t.index); !ok {
				e.troops[i] = troop{}
			}
		}
	}
}

func (e *Enemy) liveTroopsExist() bool {
	for _, t := range e.troops {
		if !t.ok {
			continue
		}
		if _, ok := e.m.At(t.index); ok {
			return true
		}
	}
	return false
}

func (e *Enemy) startOwlAttack(capture bool, env Env) {
	e.count = 0
	e.attackFrame = 0
	e.copyAngle = true
	e.troops = [maxTroops]troop{}

	if !capture {
		e.capturing = capNone
		e.chooseTroops()
		e.startTraj(traj.OwlAttack)
		e.state = StateAttacking
		return
	}

	e.capturing = capAttacking
	env.Push(event.StartCaptureAttack{Index: e.index})
	e.speed = captureDiveSpeed
	e.angle = fixed.Up
	if e.flipX() {
		e.vangle = captureTurn
	} else {
		e.vangle = -captureTurn
	}
	e.target = fixed.Vec2{X: env.PlayerPos().X, Y: playerY - captureHeight}
	e.setPhase(phaseDive)
}

func (e *Enemy) updateOwlAttack(env Env) {
	if e.attackShot(!e.destroyed, env) {
		for _, t := range e.troops {
			if !t.ok {
				continue
			}
			if te, ok := e.m.At(t.index); ok {
				env.Push(event.EneShot{Pos: te.pos})
			}
		}
	}

	if e.updateTrajectory(env) {
		return
	}
	if env.IsRush() {
		e.rushAttack(env)
	} else {
		e.state = StateMoveToFormation
	}
}

func (e *Enemy) rushAttack(env Env) {
	e.removeDestroyedTroops()
	e.startTraj(traj.OwlRushAttack)
	e.state = StateAttacking
	e.phase = phaseNone
	env.Push(event.PlaySe{Channel: event.ChAttack, Sound: event.SeAttackStart})
}

func (e *Enemy) updateCapture(env Env) {
	switch e.phase {
	case phaseDive:
		e.updateCaptureDive(env)
	case phaseBeam:
		e.updateCaptureBeam(env)
	case phaseGoOut:
		e.updateCaptureGoOut(env)
	case phaseTracting:
		if env.IsPlayerCaptureCompleted() {
			e.capturing = capCaptured
			e.beam.closeCapture()
			e.setPhase(phaseCloseBeam)
		}
	case phaseCloseBeam:
		e.updateCaptureCloseBeam(env)
	case phaseDoneWait:
		e.count++
		if e.count >= captureDoneWait {
			e.speed = captureBackSpeed
			e.setPhase(phaseDoneBack)
		}
	case phaseDoneBack:
		if !e.moveToFormation() {
			e.speed = 0
			e.angle = fixed.Up + fixed.NormalizeAngle(e.angle-fixed.Up)
			e.setPhase(phasePushUp)
		}
	case phasePushUp:
		e.updateCapturePushUp(env)
	}
}

// updateCaptureDive loops down toward a point above the player, keeping
// the final heading within a cone around straight down.
func (e *Enemy) updateCaptureDive(env Env) {
	heading := fixed.NormalizeAngle(e.m.trig.Heading(e.target.Sub(e.pos)))
	target := fixed.Clamp(heading, -captureCone, captureCone)
	d := fixed.DiffAngle(target, e.angle)
	if e.vangle > 0 && d < 0 {
		d += fixed.FullTurn
	} else if e.vangle < 0 && d > 0 {
		d -= fixed.FullTurn
	}
	if d >= -captureTurn && d < captureTurn {
		e.angle = target
		e.vangle = 0
	}

	if e.pos.Y >= e.target.Y {
		e.pos.Y = e.target.Y
		e.speed = 0
		e.angle = fixed.Down
		e.vangle = 0

		e.beam = newBeam(e.pos.Add(fixed.V(0, 8)))
		env.Push(event.PlaySe{Channel: event.ChJingle, Sound: event.SeTractorBeam1})
		e.setPhase(phaseBeam)
	}
}

func (e *Enemy) updateCaptureBeam(env Env) {
	switch {
	case e.beam.Closed():
		e.beam = nil
		e.speed = captureBackSpeed
		e.setPhase(phaseGoOut)
	case env.CanPlayerCapture() && e.beam.CanCapture(env.PlayerPos()):
		env.Push(event.CapturePlayer{Pos: e.pos.Add(fixed.V(0, 16))})
		env.Push(event.PlaySe{Channel: event.ChJingle, Sound: event.SeTractorBeam2})
		e.beam.startCapture()
		e.capturing = capBeamTracting
		e.setPhase(phaseTracting)
	}
}

// updateCaptureGoOut wraps the owl from the bottom of the screen back to
// above its column once the beam closed empty.
func (e *Enemy) updateCaptureGoOut(env Env) {
	if e.pos.Y < offScreenY {
		return
	}

	home := e.homePos()
	e.pos = fixed.Vec2{X: home.X, Y: e.pos.Y + (-32-(traj.Height+8))*fixed.One}

	env.Push(event.EndCaptureAttack{})
	if env.IsRush() {
		e.rushAttack(env)
		return
	}
	e.state = StateMoveToFormation
	e.phase = phaseNone
	e.capturing = capFailed
}

func (e *Enemy) updateCaptureCloseBeam(env Env) {
	if !e.beam.Closed() {
		return
	}

	if fi, ok := e.capturedIndex(); ok {
		env.Push(event.SpawnCapturedFighter{Pos: e.pos.Add(fixed.V(0, 16)), Index: fi})
		e.addTroop(fi)
	}
	e.beam = nil
	e.capturing = capNone
	env.Push(event.CapturePlayerCompleted{})

	e.copyAngle = false
	e.setPhase(phaseDoneWait)
}

// updateCapturePushUp turns the owl back up and slides the captured
// fighter into the slot above it.
func (e *Enemy) updateCapturePushUp(env Env) {
	e.angle -= fixed.Clamp(e.angle-fixed.Up, -formationTurn, formationTurn)

	done := true
	if fi, ok := e.capturedIndex(); ok {
		if fighter, ok := e.m.At(fi); ok {
			p := fighter.pos
			p.Y -= pushUpSpeed
			top := e.pos.Y - 16*fixed.One
			if p.Y > top {
				done = false
			} else {
				p.Y = top
			}
			fighter.pos = p
		}
	}

	if done {
		env.Push(event.CaptureSequenceEnded{})
		e.releaseTroops()
		e.setToFormation()
	}
}

func (e *Enemy) owlDamage(power int32, env Env) DamageResult {
	if e.life > power {
		env.Push(event.PlaySe{Channel: event.ChBomb, Sound: event.SeDamage})
		e.life -= power
		return DamageResult{}
	}

	point := e.point()
	e.life = 0
	e.destroyed = true

	switch e.capturing {
	case capNone:
		released := false
		if fi, ok := e.capturedIndex(); ok {
			for i, t := range e.troops {
				if t.ok && t.index == fi {
					if _, live := e.m.At(fi); live {
						env.Push(event.RecapturePlayer{Index: fi})
						released = true
					}
					e.troops[i] = troop{}
				}
			}
		}
		if e.state == StateCaptured {
			// Shot on the way home with the fighter. Without a fighter to
			// rescue the next ship has to come in now.
			if !released {
				env.Push(event.CaptureSequenceEnded{})
			}
			e.speed = captureBackSpeed
			e.state = StateMoveToFormation
			e.phase = phaseNone
		}
	case capBeamTracting, capCaptured:
		env.Push(event.EndCaptureAttack{})
	}
	e.capturing = capNone

	e.m.PauseShots(ShotPauseOnOwlKill)
	e.explode(env)
	env.Push(event.PlaySe{Channel: event.ChBomb, Sound: event.SeBombZako})

	ghost := e.liveTroopsExist()
	if !ghost {
		e.disappeared = true
	}
	return DamageResult{Destroyed: true, Point: point, Ghost: ghost}
}
