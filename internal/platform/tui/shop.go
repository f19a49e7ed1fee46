package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-yatzy/internal/core"
)

// shopState is the gem shop overlay. The last option declines.
type shopState struct {
	open   bool
	cursor int
	reason string
}

// openShop shows the overlay. reason explains why it opened, if it
// opened on its own.
func (m *Model) openShop(reason string) {
	m.shop = shopState{open: true, reason: reason}
	if reason != "" {
		m.setStatus(reason, true)
	}
}

func (m Model) shopOptions() int {
	return len(m.setup.Rules.Shop.Packages) + 1
}

// handleShopAction navigates the overlay and buys the chosen package.
func (m Model) handleShopAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionUp:
		if m.shop.cursor > 0 {
			m.shop.cursor--
		}
	case core.ActionDown:
		if m.shop.cursor < m.shopOptions()-1 {
			m.shop.cursor++
		}
	case core.ActionBack, core.ActionShop:
		m.shop = shopState{}
		m.setStatus("", false)
	case core.ActionConfirm:
		packages := m.setup.Rules.Shop.Packages
		cursor := m.shop.cursor
		m.shop = shopState{}
		if cursor >= len(packages) {
			m.setStatus("", false)
			return m, nil
		}
		p := packages[cursor]
		if m.apply(m.game.BuyGems(p.Gems)) {
			m.setStatus(fmt.Sprintf("Bought %d 💎", p.Gems), false)
		}
	}
	return m, nil
}

// renderShop draws the package list.
func (m Model) renderShop() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("GEM SHOP"))
	b.WriteString("\n")
	if m.shop.reason != "" {
		b.WriteString(warnStyle.Render(m.shop.reason))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	selected := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Background(colorSelect)
	for i, p := range m.setup.Rules.Shop.Packages {
		line := fmt.Sprintf("  %5d 💎   %s  ", p.Gems, p.Price)
		if i == m.shop.cursor {
			line = selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	decline := "  No, thanks  "
	if m.shop.cursor == len(m.setup.Rules.Shop.Packages) {
		decline = selected.Render(decline)
	}
	b.WriteString(decline)

	return panelStyle.BorderForeground(colorGem).Render(b.String())
}
