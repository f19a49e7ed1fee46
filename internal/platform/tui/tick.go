// Package tui provides the Bubble Tea front end for the yatzy engine.
// It handles the terminal UI loop, input mapping, animations and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-yatzy/internal/games/yatzy"
)

// TickMsg is sent to advance the dice tumble animation.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// commitReadyMsg fires once the score fly-in has had time to play.
type commitReadyMsg struct {
	commit *yatzy.Commit
}

// commitCmd applies the prepared commit after delay.
func commitCmd(c *yatzy.Commit, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return commitReadyMsg{commit: c}
	})
}
