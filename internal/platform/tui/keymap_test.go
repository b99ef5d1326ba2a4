package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire, false},
		{"z", runeKey('z'), core.ActionFire, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey() = %v, %v, expected %v, %v", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestHeldInputSteering(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionLeft)

	for i := 0; i < moveHoldFrames; i++ {
		if in := h.Frame(); !in.Has(core.ActionLeft) {
			t.Fatalf("frame %d: left released early", i)
		}
	}
	if in := h.Frame(); in.Has(core.ActionLeft) {
		t.Error("left still held after the hold window")
	}
}

func TestHeldInputOppositeCancels(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionLeft)
	h.Frame()
	h.Press(core.ActionRight)

	in := h.Frame()
	if in.Has(core.ActionLeft) {
		t.Error("left still held after pressing right")
	}
	if !in.Has(core.ActionRight) {
		t.Error("right not held")
	}
}

func TestHeldInputFireIsOneFrame(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionFire)

	if in := h.Frame(); !in.Has(core.ActionFire) {
		t.Error("fire not held on the press frame")
	}
	if in := h.Frame(); in.Has(core.ActionFire) {
		t.Error("fire held past the press frame")
	}
}

func TestHeldInputRelease(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionRight)
	h.Press(core.ActionFire)
	h.Release()

	if in := h.Frame(); in.Has(core.ActionRight) || in.Has(core.ActionFire) {
		t.Error("Release() left actions held")
	}
}

func TestMenuSettingsWrap(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m.cursor = len(m.items) + rowStage

	m.adjust(-1)
	if m.stage != MaxMenuStage {
		t.Errorf("stage after wrapping down = %d, expected %d", m.stage, MaxMenuStage)
	}
	m.adjust(1)
	if m.stage != 1 {
		t.Errorf("stage after wrapping up = %d, expected 1", m.stage)
	}

	m.cursor = len(m.items) + rowDifficulty
	m.adjust(-1)
	if got := m.Result().Difficulty; got != "fixed" {
		t.Errorf("Difficulty = %q, expected fixed", got)
	}
}

func TestMenuResult(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if !m.Result().Quit {
		t.Error("Result() without a choice should quit")
	}

	m.items = []MenuItem{{GameID: "galaga", Title: "Galaga"}}
	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(MenuModel).Result()
	if got.GameID != "galaga" || got.Stage != 1 || got.Quit {
		t.Errorf("Result() = %+v, expected galaga from stage 1", got)
	}

	next, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).Result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}
}
