// Package tui provides the Bubble Tea integration for the game: the terminal
// loop, key mapping, frame rendering, the scoreboard screen and the SSH
// server. It adapts terminal input/output to the engine's collaborator
// interfaces.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one engine tick. The tick interval doubles as the input
// timeout: between ticks, key presses only update the buffered direction.
type TickMsg time.Time

// tickCmd returns a command that emits the next TickMsg after the interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
