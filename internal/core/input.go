package core

// Action is a semantic intent, abstracted from physical keys.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - steer left while held
	ActionRight           // D, Right arrow - steer right while held
	ActionJump            // Space, W, Up - spend a double jump credit
	ActionPause           // P - pause/unpause
	ActionRestart         // R - start a new run after game over
	ActionContinue        // C, Enter - spend a continue after game over
	ActionSound           // M - toggle the sound flag
	ActionShare           // Y - copy the run summary
	ActionBack            // B, Esc - leave to the previous screen
	ActionQuit            // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:     "None",
	ActionLeft:     "Left",
	ActionRight:    "Right",
	ActionJump:     "Jump",
	ActionPause:    "Pause",
	ActionRestart:  "Restart",
	ActionContinue: "Continue",
	ActionSound:    "Sound",
	ActionShare:    "Share",
	ActionBack:     "Back",
	ActionQuit:     "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the set of actions active during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Steer returns -1, 0 or +1 for the horizontal intent.
// Holding both directions cancels out.
func (f InputFrame) Steer() int {
	dir := 0
	if f.Has(ActionLeft) {
		dir--
	}
	if f.Has(ActionRight) {
		dir++
	}
	return dir
}
