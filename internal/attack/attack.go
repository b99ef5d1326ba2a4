// Package attack picks which resting enemies peel off the formation to dive
// at the player.
package attack

import (
	"github.com/vovakirdan/tui-galaga/internal/event"
	"github.com/vovakirdan/tui-galaga/internal/fixed"
	"github.com/vovakirdan/tui-galaga/internal/formation"
)

// MaxAttackers is the capacity of the attacker set.
const MaxAttackers = 3

// Config tunes the scheduler for a stage.
type Config struct {
	// Cooldown is the number of frames between two launches.
	Cooldown int
	// InitialWait is the number of frames from SetEnabled(true) to the
	// first launch, counted like Cooldown: 0 launches on the enabling frame.
	InitialWait int
	// MaxAttackers caps concurrent attackers, up to the package MaxAttackers.
	MaxAttackers int
}

// DefaultConfig matches the arcade pacing of the first stages.
func DefaultConfig() Config {
	return Config{Cooldown: 30, InitialWait: 0, MaxAttackers: MaxAttackers}
}

// Fleet is the read-only view of the enemy arena the scheduler needs.
type Fleet interface {
	IsFormationAt(idx formation.Index) bool
	IsLiveAt(idx formation.Index) bool
	KindAt(idx formation.Index) (event.EnemyKind, bool)
}

// Launch is a decision to send the enemy at Index diving.
type Launch struct {
	Index   formation.Index
	Capture bool
}

// Manager tracks the current attackers and launches new ones on a cooldown.
type Manager struct {
	rng *fixed.RNG
	cfg Config

	enabled bool
	paused  bool
	wait    int
	cycle   uint32

	attackers [MaxAttackers]formation.Index
	live      [MaxAttackers]bool
}

// New creates a disabled scheduler.
func New(rng *fixed.RNG, cfg Config) *Manager {
	return &Manager{rng: rng, cfg: normalize(cfg)}
}

func normalize(cfg Config) Config {
	if cfg.MaxAttackers <= 0 || cfg.MaxAttackers > MaxAttackers {
		cfg.MaxAttackers = MaxAttackers
	}
	if cfg.Cooldown < 0 {
		cfg.Cooldown = 0
	}
	if cfg.InitialWait < 0 {
		cfg.InitialWait = 0
	}
	return cfg
}

// Restart clears attackers and disables the scheduler for a new stage.
func (m *Manager) Restart(cfg Config) {
	*m = Manager{rng: m.rng, cfg: normalize(cfg)}
}

// SetEnabled turns attack generation on or off. Turning it on arms the
// initial wait.
func (m *Manager) SetEnabled(enabled bool) {
	if enabled && !m.enabled {
		// Update spends one count on the enabling frame itself.
		m.wait = m.cfg.InitialWait + 1
	}
	m.enabled = enabled
}

// Enabled reports whether attack generation is on.
func (m *Manager) Enabled() bool {
	return m.enabled
}

// Pause suspends launches without forgetting current attackers.
func (m *Manager) Pause(paused bool) {
	m.paused = paused
}

// NoAttacker reports whether every attacker has returned or been destroyed.
func (m *Manager) NoAttacker() bool {
	return m.Count() == 0
}

// Count returns the number of tracked attackers.
func (m *Manager) Count() int {
	n := 0
	for _, live := range m.live {
		if live {
			n++
		}
	}
	return n
}

// IsAttacker reports whether idx is in the attacker set.
func (m *Manager) IsAttacker(idx formation.Index) bool {
	for i, live := range m.live {
		if live && m.attackers[i] == idx {
			return true
		}
	}
	return false
}

// Update runs one frame. canCapture gates the tractor beam attack: it must
// be false while a capture sequence is active or the player flies dual.
func (m *Manager) Update(fleet Fleet, canCapture bool) (Launch, bool) {
	m.checkLiveness(fleet)

	if m.wait > 0 {
		m.wait--
		if m.wait > 0 {
			return Launch{}, false
		}
	}
	if !m.enabled || m.paused {
		return Launch{}, false
	}

	slot, ok := m.freeSlot()
	if !ok {
		return Launch{}, false
	}
	m.wait = m.cfg.Cooldown
	cycle := m.cycle
	m.cycle++

	idx, ok := m.pick(fleet)
	if !ok {
		return Launch{}, false
	}
	m.attackers[slot] = idx
	m.live[slot] = true

	kind, _ := fleet.KindAt(idx)
	capture := kind == event.Owl && (cycle/3)&1 != 0 && canCapture
	return Launch{Index: idx, Capture: capture}, true
}

// checkLiveness drops attackers that are back in formation or gone.
func (m *Manager) checkLiveness(fleet Fleet) {
	for i, live := range m.live {
		if !live {
			continue
		}
		idx := m.attackers[i]
		if fleet.IsFormationAt(idx) || !fleet.IsLiveAt(idx) {
			m.live[i] = false
		}
	}
}

func (m *Manager) freeSlot() (int, bool) {
	used := 0
	free := -1
	for i, live := range m.live {
		if live {
			used++
		} else if free < 0 {
			free = i
		}
	}
	if used >= m.cfg.MaxAttackers || free < 0 {
		return 0, false
	}
	return free, true
}

// pick chooses uniformly among the enemies resting in the grid that are
// not already attacking.
func (m *Manager) pick(fleet Fleet) (formation.Index, bool) {
	var candidates [formation.Cols * formation.Rows]formation.Index
	n := 0
	for y := 0; y < formation.Rows; y++ {
		for x := 0; x < formation.Cols; x++ {
			idx := formation.Index{X: uint8(x), Y: uint8(y)} //#nosec G115 -- grid bounds
			if fleet.IsFormationAt(idx) && !m.IsAttacker(idx) {
				candidates[n] = idx
				n++
			}
		}
	}
	if n == 0 {
		return formation.Index{}, false
	}
	return candidates[m.rng.Intn(n)], true
}
