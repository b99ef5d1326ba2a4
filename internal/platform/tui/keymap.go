package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

// moveHoldFrames is how long a steering key press keeps the ship moving.
// Terminals report key presses and auto-repeats but never releases.
const moveHoldFrames = 8

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "h", "left":
		return core.ActionLeft, false
	case "d", "l", "right":
		return core.ActionRight, false
	case " ", "z", "up", "w":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// HeldInput stretches key presses into held actions. Steering stays held for
// a few frames so auto-repeat reads as a continuous move; other actions
// last one frame so every press is a fresh trigger.
type HeldInput struct {
	frames map[core.Action]int
}

// NewHeldInput creates an input with nothing held.
func NewHeldInput() *HeldInput {
	return &HeldInput{frames: make(map[core.Action]int)}
}

// Press records a key press.
func (h *HeldInput) Press(a core.Action) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionLeft:
		delete(h.frames, core.ActionRight)
		h.frames[a] = moveHoldFrames
	case core.ActionRight:
		delete(h.frames, core.ActionLeft)
		h.frames[a] = moveHoldFrames
	default:
		h.frames[a] = 1
	}
}

// Frame returns the actions held this tick and ages every hold by one.
func (h *HeldInput) Frame() core.InputFrame {
	in := core.NewInputFrame()
	for a, n := range h.frames {
		in.Set(a)
		if n <= 1 {
			delete(h.frames, a)
		} else {
			h.frames[a] = n - 1
		}
	}
	return in
}

// Release drops every hold.
func (h *HeldInput) Release() {
	clear(h.frames)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
