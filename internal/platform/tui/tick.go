// Package tui provides the Bubble Tea integration for Sum Stack.
// It handles the terminal UI loop, input mapping and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that waits one period on clock and then sends a TickMsg.
// Each handled tick schedules the next one, so ticks never pile up.
func tickCmd(clock clockwork.Clock, period time.Duration) tea.Cmd {
	return func() tea.Msg {
		return TickMsg(<-clock.After(period))
	}
}
