// Package appearance schedules the enemies that fly in at the start of a
// stage. A stage has five units of eight enemies; each unit enters along
// one entry path and the next unit waits until the fleet has settled.
package appearance

import (
	"github.com/vovakirdan/tui-galaga/internal/event"
	"github.com/vovakirdan/tui-galaga/internal/fixed"
	"github.com/vovakirdan/tui-galaga/internal/formation"
	"github.com/vovakirdan/tui-galaga/internal/traj"
)

const (
	// UnitCount is the number of units per stage.
	UnitCount = 5

	unitSize = 8
	stepWait = 16 / 3
	unitWait = 10
)

// SpawnRequest describes one enemy to place on its entry path.
type SpawnRequest struct {
	Kind        event.EnemyKind
	Index       formation.Index
	Table       []traj.Command
	Offset      fixed.Vec2
	FlipX       bool
	ShotEnabled bool
}

// Assault reports whether the enemy dives at the player instead of taking
// a formation slot.
func (r SpawnRequest) Assault() bool {
	return r.Index.Y >= formation.AssaultRow
}

// Traj builds the entry trajectory for the request.
func (r SpawnRequest) Traj(trig *fixed.Trig) *traj.Traj {
	t := traj.New(trig, r.Table, r.Offset, r.FlipX)
	t.ShotEnabled = r.ShotEnabled
	return t
}

// Fleet is what the scheduler needs to know about the enemies in play.
type Fleet interface {
	IsStationary() bool
}

type spawnOrder struct {
	time uint32
	req  SpawnRequest
}

// Manager runs the spawn schedule for one stage.
type Manager struct {
	rng *fixed.RNG

	stage          int
	paused         bool
	waitStationary bool
	wait           int
	unit           int
	time           uint32
	done           bool

	orders []spawnOrder
	next   int

	fighter    formation.Index
	hasFighter bool
}

// New creates a finished scheduler; call Restart to begin a stage.
func New(rng *fixed.RNG) *Manager {
	return &Manager{rng: rng, done: true}
}

// Restart begins the schedule for stage. fighter, when set, is the slot of
// a captured fighter that re-enters with the last unit.
func (m *Manager) Restart(stage int, fighter *formation.Index) {
	*m = Manager{rng: m.rng, stage: stage, orders: m.orders[:0]}
	if fighter != nil {
		m.fighter = *fighter
		m.hasFighter = true
	}
}

// Pause holds back the next unit. Enemies of the unit already entering keep
// coming.
func (m *Manager) Pause(paused bool) {
	m.paused = paused
}

// Done reports whether every unit has been sent.
func (m *Manager) Done() bool {
	return m.done
}

// Unit returns the index of the unit being sent.
func (m *Manager) Unit() int {
	return m.unit
}

// Update advances the schedule by one frame and returns the enemies to
// spawn on it, in order.
func (m *Manager) Update(fleet Fleet) []SpawnRequest {
	if m.done {
		return nil
	}
	if m.wait > 0 {
		m.wait--
		return nil
	}

	if !m.paused {
		if m.waitStationary {
			if !fleet.IsStationary() {
				return nil
			}
			m.waitStationary = false
		}
		if m.unit >= UnitCount {
			m.done = true
			return nil
		}
		if len(m.orders) == 0 {
			m.createOrders()
			m.setShotEnables()
			m.next = 0
			m.time = 0
		}
	}
	if len(m.orders) == 0 {
		return nil
	}

	var reqs []SpawnRequest
	for m.next < len(m.orders) && m.orders[m.next].time == m.time {
		reqs = append(reqs, m.orders[m.next].req)
		m.next++
	}
	m.time++

	if m.next >= len(m.orders) {
		m.orders = m.orders[:0]
		m.next = 0
		m.unit++
		m.waitStationary = true
		m.wait = unitWait
		m.time = 0
	}
	return reqs
}

func (m *Manager) entry() unitEntry {
	return unitTable[m.stage%len(unitTable)][m.unit]
}

func (m *Manager) createOrders() {
	base := m.unit * unitSize
	entry := m.entry()
	assault := assaultTable[min(m.stage, len(assaultTable)-1)][m.unit]

	flip := 0
	if entry.flipX {
		flip = 1
	}
	div := 1
	for count := 0; count < unitSize; count++ {
		side := count & 1
		var slot int
		switch entry.pat {
		case patMirror, patSideBySide:
			slot = base + count/2 + (side^flip)*4
			div = 2
		case patChain:
			slot = base + count/2 + side*4
		default:
			slot = base + count
		}
		m.orders = append(m.orders, m.newOrder(order[slot], count))
	}

	// Assault divers are slotted at random positions within their side's
	// sequence, then the whole unit is retimed.
	if assault > 0 {
		for i := 0; i < assault*2; i++ {
			lr := i & 1
			n := len(m.orders) / 2
			at := m.rng.Intn(n + 1)
			m.orders = append(m.orders, m.orders[lr])
			for j := 0; j < n-at; j++ {
				m.orders[(n-j)*2+lr] = m.orders[(n-j-1)*2+lr]
			}
			ins := at*2 + lr
			m.orders[ins] = m.newOrder(formation.Index{X: uint8(i), Y: formation.AssaultRow}, ins) //#nosec G115 -- i < 4
		}
		for i := range m.orders {
			m.orders[i].time = uint32(stepWait * (i / div)) //#nosec G115 -- small
		}
	}

	if m.unit == UnitCount-1 && m.hasFighter {
		o := m.newOrder(m.fighter, len(m.orders))
		o.req.Kind = event.CapturedFighter
		m.orders = append(m.orders, o)
	}
}

func (m *Manager) newOrder(idx formation.Index, count int) spawnOrder {
	entry := m.entry()
	kinds := kindTable[m.unit]
	flip := 0
	if entry.flipX {
		flip = 1
	}
	side := count & 1

	req := SpawnRequest{Index: idx, Table: entry.table, FlipX: entry.flipX}
	var time int
	switch entry.pat {
	case patMirror:
		req.Kind = kinds[side^flip]
		req.Offset = fixed.V(8, 0)
		req.FlipX = side == 0
		time = (count / 2) * stepWait
	case patChain:
		req.Kind = kinds[side]
		req.Offset = fixed.V(8, 0)
		time = count * stepWait
	case patChainCentered:
		req.Kind = kinds[side]
		time = count * stepWait
	default:
		req.Kind = kinds[side^flip]
		req.Offset = fixed.V(int32(8-16*side), 0) //#nosec G115 -- side is 0 or 1
		time = (count / 2) * stepWait
	}
	return spawnOrder{time: uint32(time), req: req} //#nosec G115 -- small
}

// setShotEnables lets a random subset of the unit fire while entering.
func (m *Manager) setShotEnables() {
	count := shotEnableTable[min(m.stage, len(shotEnableTable)-1)][m.unit]
	if count == 0 {
		return
	}

	nums := make([]int, len(m.orders))
	for i := range nums {
		nums[i] = i
	}
	for i := 0; i < count && i < len(nums); i++ {
		j := i + m.rng.Intn(len(nums)-i)
		nums[i], nums[j] = nums[j], nums[i]
		m.orders[nums[i]].req.ShotEnabled = true
	}
}
