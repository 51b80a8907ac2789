// Package tui provides the Bubble Tea integration for the tycoon game.
// It owns the terminal UI loop and converts wall-clock time into the
// engine's explicit elapsed-seconds ticks; the engine itself never
// touches a timer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per second to advance the simulation.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at 1 Hz.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
