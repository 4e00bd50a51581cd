package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyclimb/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{runeKey('a'), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{runeKey('c'), core.ActionContinue, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionContinue, false},
		{runeKey('r'), core.ActionRestart, false},
		{runeKey('y'), core.ActionShare, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('z'), core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestHeldKeysSteeringExpires(t *testing.T) {
	h := NewHeldKeys(HoldWindow)
	start := time.Unix(0, 0)
	h.Press(core.ActionLeft, start)

	if !h.Frame(start.Add(100 * time.Millisecond)).Has(core.ActionLeft) {
		t.Error("left released inside the hold window")
	}
	if !h.Frame(start.Add(HoldWindow)).Has(core.ActionLeft) {
		t.Error("left released at the edge of the hold window")
	}
	if h.Frame(start.Add(HoldWindow + time.Millisecond)).Has(core.ActionLeft) {
		t.Error("left still held after the hold window")
	}
}

func TestHeldKeysOppositeDirectionReplaces(t *testing.T) {
	h := NewHeldKeys(HoldWindow)
	now := time.Unix(0, 0)
	h.Press(core.ActionLeft, now)
	h.Press(core.ActionRight, now)

	f := h.Frame(now)
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("frame = %v, expected right only", f.Actions)
	}
}

func TestHeldKeysOneShot(t *testing.T) {
	h := NewHeldKeys(HoldWindow)
	now := time.Unix(0, 0)
	h.Press(core.ActionJump, now)
	h.Press(core.ActionNone, now)

	if !h.Frame(now).Has(core.ActionJump) {
		t.Fatal("jump missing from the first frame")
	}
	if h.Frame(now).Has(core.ActionJump) {
		t.Error("jump repeated on the second frame")
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := NewHeldKeys(HoldWindow)
	now := time.Unix(0, 0)
	h.Press(core.ActionRight, now)
	h.Press(core.ActionPause, now)
	h.Release()

	if f := h.Frame(now); len(f.Actions) != 0 {
		t.Errorf("frame after release = %v, expected empty", f.Actions)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}
