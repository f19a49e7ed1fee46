package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-yatzy/internal/games/yatzy"
)

// Sheet layout constants
const (
	categoryColumnWidth = 14
	playerColumnWidth   = 10
	minSheetHeight      = 5
)

// sheetCategories is the row order of the score table.
var sheetCategories = func() []yatzy.Category {
	infos := yatzy.Categories()
	out := make([]yatzy.Category, len(infos))
	for i, info := range infos {
		out[i] = info.Key
	}
	return out
}()

// rowCategory returns the category shown on row i.
func rowCategory(i int) yatzy.Category {
	if i < 0 || i >= len(sheetCategories) {
		return ""
	}
	return sheetCategories[i]
}

// sheetHeight fits the table under the dice tray.
func sheetHeight(screenH int) int {
	h := screenH - 20
	if h < minSheetHeight {
		h = minSheetHeight
	}
	if h > len(sheetCategories) {
		h = len(sheetCategories)
	}
	return h
}

// newSheetTable creates the score table with one column per player.
func newSheetTable(players []string, screenH int) table.Model {
	columns := []table.Column{{Title: "Category", Width: categoryColumnWidth}}
	for _, p := range players {
		columns = append(columns, table.Column{Title: truncateName(p, playerColumnWidth), Width: playerColumnWidth})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(sheetHeight(screenH)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorAccent).
		Background(colorSelect).
		Bold(false)
	t.SetStyles(s)

	return t
}

// truncateName shortens s to width terminal cells, marking the cut with a dot.
func truncateName(s string, width int) string {
	return ansi.Truncate(s, width, ".")
}

// sheetRows renders every category for every player. Pending scores for
// the current player appear in parentheses; a category being committed
// is marked with an arrow.
func sheetRows(s yatzy.Snapshot, showPending bool) []table.Row {
	rows := make([]table.Row, len(sheetCategories))
	for i, c := range sheetCategories {
		row := make(table.Row, 0, len(s.Players)+1)
		row = append(row, c.Label())
		for pi, p := range s.Players {
			row = append(row, sheetCell(s, pi, p, c, showPending))
		}
		rows[i] = row
	}
	return rows
}

func sheetCell(s yatzy.Snapshot, pi int, p yatzy.PlayerSnapshot, c yatzy.Category, showPending bool) string {
	if c == yatzy.Bonus {
		return bonusCell(p.Bonus)
	}
	if pts, ok := p.Scores[c]; ok {
		return fmt.Sprintf("%d", pts)
	}
	if pi != s.Current || !showPending {
		return ""
	}
	pts, ok := s.Pending[c]
	if !ok {
		return ""
	}
	if s.Committing == c {
		return fmt.Sprintf("→ %d", pts)
	}
	return fmt.Sprintf("(%d)", pts)
}
