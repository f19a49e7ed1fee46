package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-yatzy/internal/core"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		want     core.Action
		wantQuit bool
	}{
		{" ", core.ActionRoll, false},
		{"r", core.ActionRoll, false},
		{"1", core.ActionHold1, false},
		{"3", core.ActionHold3, false},
		{"5", core.ActionHold5, false},
		{"6", core.ActionNone, false},
		{"up", core.ActionUp, false},
		{"k", core.ActionUp, false},
		{"down", core.ActionDown, false},
		{"j", core.ActionDown, false},
		{"enter", core.ActionConfirm, false},
		{"g", core.ActionShop, false},
		{"esc", core.ActionBack, false},
		{"b", core.ActionBack, false},
		{"n", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, quit := km.MapKey(keyMsg(tt.key))
			if got != tt.want {
				t.Errorf("MapKey(%q) action = %v, want %v", tt.key, got, tt.want)
			}
			if quit != tt.wantQuit {
				t.Errorf("MapKey(%q) quit = %v, want %v", tt.key, quit, tt.wantQuit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"w", MenuActionUp},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"esc", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"q", MenuActionQuit},
		{"x", MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
