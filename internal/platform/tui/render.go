package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-yatzy/internal/games/yatzy"
)

// Palette.
var (
	colorAccent = lipgloss.Color("229")
	colorSelect = lipgloss.Color("57")
	colorMuted  = lipgloss.Color("241")
	colorBorder = lipgloss.Color("240")
	colorHeld   = lipgloss.Color("208")
	colorGem    = lipgloss.Color("14")
	colorWarn   = lipgloss.Color("9")
	colorOK     = lipgloss.Color("10")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	gemStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorGem)
	warnStyle  = lipgloss.NewStyle().Foreground(colorWarn)
	okStyle    = lipgloss.NewStyle().Foreground(colorOK)

	dieStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Width(7).
			Align(lipgloss.Center)
	heldDieStyle = dieStyle.
			BorderForeground(colorHeld).
			Foreground(colorHeld).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Background(colorSelect).
			Padding(0, 2)
	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)
)

// pips holds a three-row pip pattern per face.
var pips = [yatzy.MaxFace + 1][3]string{
	{"     ", "  ?  ", "     "},
	{"     ", "  o  ", "     "},
	{"o    ", "     ", "    o"},
	{"o    ", "  o  ", "    o"},
	{"o   o", "     ", "o   o"},
	{"o   o", "  o  ", "o   o"},
	{"o   o", "o   o", "o   o"},
}

// renderDie draws one die with its tray number and held marker.
func renderDie(index int, face int, held bool) string {
	if face < yatzy.MinFace || face > yatzy.MaxFace {
		face = 0
	}
	style := dieStyle
	label := mutedStyle.Render(fmt.Sprintf("[%d]", index+1))
	if held {
		style = heldDieStyle
		label = lipgloss.NewStyle().Foreground(colorHeld).Bold(true).Render("HELD")
	}
	body := strings.Join(pips[face][:], "\n")
	return lipgloss.JoinVertical(lipgloss.Center, style.Render(body), label)
}

// renderDice draws the tray left to right.
func renderDice(faces [yatzy.DiceCount]int, held [yatzy.DiceCount]bool) string {
	dice := make([]string, 0, yatzy.DiceCount*2)
	for i := range faces {
		if i > 0 {
			dice = append(dice, " ")
		}
		dice = append(dice, renderDie(i, faces[i], held[i]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, dice...)
}

// rollLabel returns the roll button caption for the snapshot.
func rollLabel(s yatzy.Snapshot) string {
	switch {
	case s.RollCount == 0:
		return "Roll"
	case s.NextRollCost > 0:
		return fmt.Sprintf("Re-Roll 💎 %d", s.NextRollCost)
	default:
		return fmt.Sprintf("Re-Roll ×%d", s.FreeRerollsLeft)
	}
}

// bonusCell renders the bonus row: a running sum until the upper section
// is complete, then the awarded bonus.
func bonusCell(b yatzy.BonusStatus) string {
	if !b.Final {
		return fmt.Sprintf("%d/%d", b.UpperSum, b.Threshold)
	}
	return fmt.Sprintf("%d", b.Bonus)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
