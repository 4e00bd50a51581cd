package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyclimb/internal/core"
)

// HoldWindow is how long a steering key stays held after its last press.
// Terminals report key repeats but never key releases.
const HoldWindow = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "w", "up":
		return core.ActionJump, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "c", "enter":
		return core.ActionContinue, false
	case "m":
		return core.ActionSound, false
	case "y":
		return core.ActionShare, false
	case "b", "esc":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// isSteering reports whether an action is level-triggered.
func isSteering(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight
}

// HeldKeys turns key presses into per-tick input. Steering stays active for
// HoldWindow after each press; every other action fires on one tick only.
type HeldKeys struct {
	window  time.Duration
	held    map[core.Action]time.Time
	pending core.InputFrame
}

// NewHeldKeys creates an empty tracker.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{
		window:  window,
		held:    make(map[core.Action]time.Time, 2),
		pending: core.NewInputFrame(),
	}
}

// Press records an action at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if isSteering(a) {
		// The opposite direction is released by a new press.
		delete(h.held, core.ActionLeft)
		delete(h.held, core.ActionRight)
		h.held[a] = now
		return
	}
	h.pending.Set(a)
}

// Frame returns the input for a tick at now and consumes one-shot actions.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, at := range h.held {
		if now.Sub(at) <= h.window {
			frame.Set(a)
		} else {
			delete(h.held, a)
		}
	}
	for a, on := range h.pending.Actions {
		if on {
			frame.Set(a)
		}
	}
	h.pending.Clear()
	return frame
}

// Release drops everything, e.g. when leaving the game screen.
func (h *HeldKeys) Release() {
	clear(h.held)
	h.pending.Clear()
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
