package appearance

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-galaga/internal/event"
	"github.com/vovakirdan/tui-galaga/internal/fixed"
	"github.com/vovakirdan/tui-galaga/internal/formation"
)

type stationary bool

func (s stationary) IsStationary() bool { return bool(s) }

// runStage drives a scheduler to completion against a fleet that is always
// settled and returns every request in emission order.
func runStage(t *testing.T, m *Manager) []SpawnRequest {
	t.Helper()
	var all []SpawnRequest
	for i := 0; i < 10000 && !m.Done(); i++ {
		all = append(all, m.Update(stationary(true))...)
	}
	if !m.Done() {
		t.Fatal("schedule never finished")
	}
	return all
}

func TestFirstStageFillsFormation(t *testing.T) {
	m := New(fixed.NewRNG(1))
	m.Restart(0, nil)
	reqs := runStage(t, m)

	if len(reqs) != UnitCount*unitSize {
		t.Fatalf("len(requests) = %d, expected %d", len(reqs), UnitCount*unitSize)
	}
	seen := map[formation.Index]bool{}
	for _, r := range reqs {
		if seen[r.Index] {
			t.Errorf("slot %v scheduled twice", r.Index)
		}
		seen[r.Index] = true
		if r.Assault() {
			t.Errorf("unexpected assault request %+v", r)
		}
		if r.ShotEnabled {
			t.Errorf("shot enabled on stage 0 for %v", r.Index)
		}
	}
	for _, idx := range order {
		if !seen[idx] {
			t.Errorf("slot %v never scheduled", idx)
		}
	}
}

func TestKindsFollowUnits(t *testing.T) {
	m := New(fixed.NewRNG(1))
	m.Restart(0, nil)
	reqs := runStage(t, m)

	owls := 0
	for _, r := range reqs {
		if r.Kind == event.Owl {
			owls++
			if r.Index.Y != 1 {
				t.Errorf("owl placed at %v, expected row 1", r.Index)
			}
		}
	}
	if owls != 4 {
		t.Errorf("owls = %d, expected 4", owls)
	}
}

func TestUnitTiming(t *testing.T) {
	m := New(fixed.NewRNG(1))
	m.Restart(0, nil)

	if got := len(m.Update(stationary(true))); got != 2 {
		t.Fatalf("first Update() spawned %d, expected a pair", got)
	}
	for i := 1; i < stepWait; i++ {
		if got := len(m.Update(stationary(true))); got != 0 {
			t.Errorf("Update() #%d spawned %d, expected 0", i, got)
		}
	}
	if got := len(m.Update(stationary(true))); got != 2 {
		t.Errorf("Update() after %d frames spawned %d, expected a pair", stepWait, got)
	}
}

func TestWaitsForStationaryFleet(t *testing.T) {
	m := New(fixed.NewRNG(1))
	m.Restart(0, nil)

	for m.Unit() == 0 {
		m.Update(stationary(true))
	}
	for i := 0; i < 500; i++ {
		if reqs := m.Update(stationary(false)); len(reqs) != 0 {
			t.Fatalf("Update() spawned %d while the fleet was moving", len(reqs))
		}
	}
	spawned := 0
	for i := 0; i < unitWait+1; i++ {
		spawned += len(m.Update(stationary(true)))
	}
	if spawned == 0 {
		t.Error("next unit did not start once the fleet settled")
	}
}

func TestPauseHoldsNextUnit(t *testing.T) {
	m := New(fixed.NewRNG(1))
	m.Restart(0, nil)
	for m.Unit() == 0 {
		m.Update(stationary(true))
	}

	m.Pause(true)
	for i := 0; i < 100; i++ {
		if reqs := m.Update(stationary(true)); len(reqs) != 0 {
			t.Fatalf("Update() spawned %d while paused", len(reqs))
		}
	}
	m.Pause(false)
	if reqs := m.Update(stationary(true)); len(reqs) == 0 {
		t.Error("Update() after unpause spawned nothing")
	}
}

func TestAssaultDivers(t *testing.T) {
	m := New(fixed.NewRNG(7))
	m.Restart(2, nil)
	reqs := runStage(t, m)

	assaults := 0
	for _, r := range reqs {
		if r.Assault() {
			assaults++
			if r.Index.Y != formation.AssaultRow {
				t.Errorf("assault index = %v, expected row %d", r.Index, formation.AssaultRow)
			}
		}
	}
	// Units 0, 3 and 4 of stage 2 add one diver per side.
	if assaults != 6 {
		t.Errorf("assault requests = %d, expected 6", assaults)
	}
	if len(reqs) != UnitCount*unitSize+6 {
		t.Errorf("len(requests) = %d, expected %d", len(reqs), UnitCount*unitSize+6)
	}
}

func TestShotEnables(t *testing.T) {
	m := New(fixed.NewRNG(3))
	m.Restart(1, nil)

	shooters := 0
	for m.Unit() == 0 {
		for _, r := range m.Update(stationary(true)) {
			if r.ShotEnabled {
				shooters++
			}
		}
	}
	if shooters != shotEnableTable[1][0] {
		t.Errorf("shooters = %d, expected %d", shooters, shotEnableTable[1][0])
	}
}

func TestCapturedFighterJoinsLastUnit(t *testing.T) {
	fi := formation.Index{X: 4, Y: 0}
	m := New(fixed.NewRNG(1))
	m.Restart(0, &fi)
	reqs := runStage(t, m)

	last := reqs[len(reqs)-1]
	if last.Kind != event.CapturedFighter || last.Index != fi {
		t.Errorf("last request = %v at %v, expected captured fighter at %v", last.Kind, last.Index, fi)
	}
}

func TestScheduleIsDeterministic(t *testing.T) {
	run := func() []SpawnRequest {
		m := New(fixed.NewRNG(42))
		m.Restart(7, nil)
		return runStage(t, m)
	}
	if a, b := run(), run(); !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different schedules")
	}
}
