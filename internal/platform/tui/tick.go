// Package tui runs the climber in a Bubble Tea program: the game loop,
// key mapping, the menu, shop and scoreboard screens and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. At is the wall-clock time
// used to measure the real elapsed time between ticks. Gen identifies the
// tick loop so a loop left behind by an earlier session dies out.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

// tickCmd schedules the next tick of loop gen after interval.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
