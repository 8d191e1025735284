// Package tui provides the Bubble Tea front end: the game loop model, the
// title menu, the scoreboard and the SSH server that serves them.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// loopIDs hands out tick loop identifiers.
var loopIDs atomic.Int64

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// model that scheduled it; a session may start a new game before the last
// tick of the previous one arrives.
type TickMsg struct {
	Loop int64
	At   time.Time
}

// nextLoopID returns a fresh tick loop identifier.
func nextLoopID() int64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, At: t}
	})
}
