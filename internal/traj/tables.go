package traj

import "github.com/vovakirdan/tui-galaga/internal/fixed"

const (
	one   = fixed.One
	angle = fixed.Angle
)

// Turn rates for the entry curves: speed 3 around radii of 30 and 20 units.
const (
	entryTurnWide  = 1043
	entryTurnTight = 1565
)

// Entry paths used by the appearance schedule.
var (
	// Entry1 drops in from the top center and curls back up toward the formation.
	Entry1 = []Command{
		SetPos((Width/2+24)*one, -8*one),
		SetSpeed(3 * one),
		SetAngle(fixed.Down),
		SetAngularVelocity(0),
		Delay(5),
		Shot(0),
		SetAngularVelocity(2 * one),
		Delay(17),
		SetAngularVelocity(0),
		Delay(30),
		SteerToAngle(-96*one, entryTurnWide),
		SetAngularVelocity(0),
	}

	// Entry2 sweeps in from the lower left edge and loops upward.
	Entry2 = []Command{
		SetPos(-8*one, 244*one),
		SetSpeed(3 * one),
		SetAngle(-angle / 4 * one),
		SetAngularVelocity(-2 * one),
		Delay(16),
		SetAngularVelocity(0),
		Delay(10),
		SetAngularVelocity(-2 * one),
		Delay(17),
		Shot(8),
		SteerToAngle(-352*one, entryTurnTight),
		SetAngularVelocity(0),
	}

	// Entry3 drops in off center and peels outward before turning back.
	Entry3 = []Command{
		SetPos((Width/2+48)*one, -8*one),
		SetSpeed(3 * one),
		SetAngle(fixed.Down),
		SetAngularVelocity(0),
		Delay(24),
		SetAngularVelocity(-3 * one),
		Delay(20),
		SetAngularVelocity(0),
		Delay(8),
		Shot(4),
		SteerToAngle(-192*one, entryTurnWide),
		SetAngularVelocity(0),
	}
)

// Attack dives launched from the formation.
var (
	BeeAttack = []Command{
		SetSpeed(2 * one),
		SetAngle(fixed.Up),
		SetAngularVelocity(-4 * one),
		Delay(41),

		SetAngularVelocity(0),
		WaitY(210 * one),

		SetAngularVelocity(2 * one),
		Delay(80),
	}

	// BeeAttackRushCont follows BeeAttack when the stage is in rush mode.
	BeeAttackRushCont = []Command{
		SetSpeed(2 * one),
		SetAngularVelocity(2 * one),
		Delay(65),

		SetAngularVelocity(0),
		WaitY(304 * one),
		AddPos(0, -320*one),
		CopyHomeX(),
		SetAngle(fixed.Down),
	}

	ButterflyAttack = []Command{
		SetSpeed(2 * one),
		SetAngle(fixed.Up),
		SetAngularVelocity(-4 * one),
		Delay(40),

		SetAngularVelocity(0),
		WaitY(160 * one),

		SetAngularVelocity(4 * one),
		Delay(18),

		SetAngularVelocity(0),
		Delay(10),

		SetAngularVelocity(-4 * one),
		Delay(18),

		SetAngularVelocity(0),
		WaitY(304 * one),
		AddPos(0, -320*one),
		CopyHomeX(),
		SetAngle(fixed.Down),
	}

	OwlAttack = []Command{
		SetSpeed(2 * one),
		SetAngle(fixed.Up),
		SetAngularVelocity(-4 * one),
		Delay(32),

		SetAngularVelocity(0),
		WaitY(110 * one),

		SetAngularVelocity(-3 * one),
		Delay(94),

		SetAngularVelocity(0),
		WaitY(200 * one),

		SetAngularVelocity(1 * one),
		Delay(40),

		SetAngularVelocity(0),
		WaitY(304 * one),
		AddPos(0, -320*one),
		CopyHomeX(),
		SetAngle(fixed.Down),
	}
)

// Rush dives: used once few enemies are left. They re-enter from the top
// and keep attacking.
var (
	BeeRushAttack = []Command{
		SetSpeed(25 * one / 10),
		SetAngle(fixed.Down),
		SetAngularVelocity(0),
		WaitY(8 * one),

		SetAngularVelocity(3 * one),
		Delay(10),

		SetAngularVelocity(0),
		Delay(20),

		SetAngularVelocity(-3 * one),
		Delay(23),

		SetAngularVelocity(0),
		Delay(20),

		SetAngularVelocity(1 * one / 2),
		Delay(20),

		SetAngularVelocity(0),
		WaitY(220 * one),

		SetAngularVelocity(25 * one / 10),
		Delay(113),

		SetAngularVelocity(0),
		WaitY(304 * one),
		AddPos(0, -320*one),
		CopyHomeX(),
		SetAngle(fixed.Down),
	}

	ButterflyRushAttack = []Command{
		SetSpeed(25 * one / 10),
		SetAngle(fixed.Down),
		SetAngularVelocity(0),
		WaitY(8 * one),

		SetAngularVelocity(3 * one),
		Delay(10),

		SetAngularVelocity(0),
		Delay(20),

		SetAngularVelocity(-3 * one),
		Delay(23),

		SetAngularVelocity(0),
		Delay(37),

		SetAngularVelocity(3 * one),
		Delay(23),

		SetAngularVelocity(0),
		WaitY(304 * one),
		AddPos(0, -320*one),
		CopyHomeX(),
		SetAngle(fixed.Down),
	}

	OwlRushAttack = []Command{
		SetSpeed(25 * one / 10),
		SetAngle(fixed.Down),
		SetAngularVelocity(0),
		WaitY(110 * one),

		SetAngularVelocity(-4 * one),
		Delay(72),

		SetAngularVelocity(0),
		WaitY(200 * one),

		SetAngularVelocity(15 * one / 10),
		Delay(25),

		SetAngularVelocity(1 * one),
		WaitY(304 * one),
		AddPos(0, -320*one),
		CopyHomeX(),
		SetAngle(fixed.Down),
	}
)
