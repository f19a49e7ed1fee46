package tui

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-yatzy/internal/config"
	"github.com/vovakirdan/tui-yatzy/internal/core"
	"github.com/vovakirdan/tui-yatzy/internal/games/yatzy"
	"github.com/vovakirdan/tui-yatzy/internal/registry"
	"github.com/vovakirdan/tui-yatzy/internal/storage"
)

// Setup describes the game a Model plays.
type Setup struct {
	Variant registry.Variant
	Players []string
	Rules   config.Rules
}

// NewSetup resolves the roster for variant. Explicit names win, then the
// configured players if they fit the variant, then the variant defaults.
func NewSetup(variant registry.Variant, rules config.Rules, names []string) (Setup, error) {
	if len(names) == 0 {
		if _, err := variant.ResolvePlayers(rules.Players); err == nil {
			names = rules.Players
		}
	}
	players, err := variant.ResolvePlayers(names)
	if err != nil {
		return Setup{}, err
	}
	return Setup{Variant: variant, Players: players, Rules: rules}, nil
}

// Model is the Bubble Tea model for one yatzy game.
type Model struct {
	setup     Setup
	store     *storage.Store
	config    core.RuntimeConfig
	logger    *log.Logger
	keyMapper *KeyMapper
	help      help.Model

	game  *yatzy.Game
	inbox *inbox
	sheet table.Model

	anim     *rand.Rand
	rolling  bool
	rollDone time.Time
	tumble   [yatzy.DiceCount]int

	commit *yatzy.Commit
	shop   shopState

	status      string
	statusError bool
	standings   []yatzy.Standing
	resultsSave bool // Whether results have been saved for the current game

	embedded   bool // Running inside a SessionModel
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given setup.
// The logger may be nil.
func NewModel(setup Setup, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		setup:     setup,
		store:     store,
		config:    cfg,
		logger:    logger,
		keyMapper: NewKeyMapper(),
		help:      h,
	}
	m.newGame()
	return m
}

// newGame starts a fresh game with the current seed.
func (m *Model) newGame() {
	if len(m.setup.Players) == 0 {
		m.setup.Players = []string{yatzy.DefaultPlayerName}
	}
	src := rand.New(rand.NewSource(m.config.Seed))
	m.anim = rand.New(rand.NewSource(m.config.Seed + 1))
	m.inbox = &inbox{}

	m.game = yatzy.New(m.setup.Rules.GameOptions(m.setup.Players, src))
	m.game.Subscribe(m.inbox.listen)
	if m.logger != nil {
		m.game.Subscribe(LogEvents(m.logger))
		m.logger.Info("game started", "variant", m.setup.Variant.ID, "players", m.setup.Players)
	}

	m.sheet = newSheetTable(m.setup.Players, m.config.ScreenH)
	m.rolling = false
	m.commit = nil
	m.shop = shopState{}
	m.standings = nil
	m.resultsSave = false
	m.setStatus(fmt.Sprintf("%s: press space to roll", m.setup.Players[0]), false)
	m.refreshSheet()
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.sheet.SetHeight(sheetHeight(msg.Height))
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case commitReadyMsg:
		return m.handleCommitReady(msg.commit)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.shop.open {
		return m.handleShopAction(action)
	}

	if i, ok := action.DieIndex(); ok {
		if m.rolling {
			return m, nil
		}
		// The tray is hidden until the turn's first roll.
		if m.game.RollCount() == 0 {
			m.setStatus("Roll first", true)
			return m, nil
		}
		m.apply(m.game.ToggleHold(i))
		return m, nil
	}

	switch action {
	case core.ActionRoll:
		return m.roll()

	case core.ActionUp:
		m.sheet.MoveUp(1)

	case core.ActionDown:
		m.sheet.MoveDown(1)

	case core.ActionConfirm:
		return m.prepareCommit()

	case core.ActionBack:
		if m.commit != nil {
			m.commit.Discard()
			m.commit = nil
			m.drainEvents()
			m.setStatus("Cancelled", false)
			return m, nil
		}
		m.backToMenu = true
		if !m.embedded {
			return m, tea.Quit
		}

	case core.ActionShop:
		m.openShop("")

	case core.ActionRestart:
		if !m.game.IsOver() {
			m.setStatus("Finish the game first", true)
			return m, nil
		}
		m.config.Seed = time.Now().UnixNano()
		m.newGame()
	}

	return m, nil
}

// roll rolls the dice and starts the tumble animation.
func (m Model) roll() (tea.Model, tea.Cmd) {
	if m.rolling || m.commit != nil {
		return m, nil
	}
	if !m.apply(m.game.Roll()) {
		return m, nil
	}

	delay := m.setup.Rules.Animation.RollDelay()
	if delay <= 0 {
		return m, nil
	}
	m.rolling = true
	m.rollDone = time.Now().Add(delay)
	m.shuffleTumble()
	m.refreshSheet()
	return m, tickCmd(m.config.TickRate)
}

// handleTick advances the tumble animation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.rolling {
		return m, nil
	}
	if now.Before(m.rollDone) {
		m.shuffleTumble()
		return m, tickCmd(m.config.TickRate)
	}
	m.rolling = false
	m.refreshSheet()
	return m, nil
}

func (m *Model) shuffleTumble() {
	snap := m.game.Snapshot()
	for i, d := range snap.Dice {
		if d.Held {
			m.tumble[i] = d.Face
			continue
		}
		m.tumble[i] = yatzy.MinFace + m.anim.Intn(yatzy.MaxFace)
	}
}

// prepareCommit locks the highlighted category and schedules its apply.
func (m Model) prepareCommit() (tea.Model, tea.Cmd) {
	if m.rolling {
		return m, nil
	}
	c := rowCategory(m.sheet.Cursor())
	commit, err := m.game.PrepareCommit(c)
	m.drainEvents()
	if err != nil {
		m.setStatus(statusFor(err), true)
		return m, nil
	}
	m.commit = commit
	m.setStatus(fmt.Sprintf("Scoring %d in %s...", commit.Points(), c.Label()), false)
	return m, commitCmd(commit, m.setup.Rules.Animation.CommitDelay())
}

// handleCommitReady applies a prepared commit once its animation is done.
// Commits cancelled in the meantime are ignored.
func (m Model) handleCommitReady(c *yatzy.Commit) (tea.Model, tea.Cmd) {
	if c == nil || c != m.commit {
		return m, nil
	}
	m.commit = nil
	m.apply(c.Apply())
	return m, nil
}

// apply handles the events and error of an engine call.
// It reports whether the call succeeded.
func (m *Model) apply(err error) bool {
	m.drainEvents()
	if err != nil {
		if !m.shop.open {
			m.setStatus(statusFor(err), true)
		}
		return false
	}
	return true
}

// drainEvents reacts to the events emitted by the last engine call.
func (m *Model) drainEvents() {
	for _, ev := range m.inbox.drain() {
		switch e := ev.(type) {
		case yatzy.RerollBlockedEvent:
			m.openShop(fmt.Sprintf("Re-roll costs %d 💎, you have %d", e.Cost, e.Balance))
		case yatzy.CategoryCommittedEvent:
			m.setStatus(fmt.Sprintf("%s scored %d in %s",
				m.playerName(e.Player), e.Points, e.Category.Label()), false)
		case yatzy.TurnStartedEvent:
			if len(m.setup.Players) > 1 {
				m.setStatus(fmt.Sprintf("%s's turn", e.Name), false)
			}
		case yatzy.GameOverEvent:
			m.standings = e.Standings
			m.saveResults(e.Standings)
			m.setStatus("Game over! Press n for a new game", false)
		}
	}
	m.refreshSheet()
}

func (m *Model) playerName(i int) string {
	players := m.game.Snapshot().Players
	if i < 0 || i >= len(players) {
		return ""
	}
	return players[i].Name
}

// saveResults records the final standings once per game.
func (m *Model) saveResults(standings []yatzy.Standing) {
	if m.resultsSave || m.store == nil {
		m.resultsSave = true
		return
	}
	results := make([]storage.Result, len(standings))
	for i, s := range standings {
		results[i] = storage.Result{
			Variant: m.setup.Variant.ID,
			Player:  s.Name,
			Score:   s.Total,
			Bonus:   s.Bonus,
			Penalty: s.Penalty,
		}
	}
	if err := m.store.SaveResults(results); err != nil && m.logger != nil {
		m.logger.Error("could not save results", "error", err)
	}
	m.resultsSave = true
}

func (m *Model) setStatus(s string, isError bool) {
	m.status = s
	m.statusError = isError
}

// statusFor maps engine errors to status line text.
func statusFor(err error) string {
	switch {
	case errors.Is(err, yatzy.ErrInsufficientFunds):
		return "Not enough gems"
	case errors.Is(err, yatzy.ErrCategoryAlreadyScored):
		return "Already scored"
	case errors.Is(err, yatzy.ErrNoPendingScore):
		return "Roll the dice first"
	case errors.Is(err, yatzy.ErrInvalidCategory):
		return "Pick a scoring category"
	case errors.Is(err, yatzy.ErrOutOfRange):
		return "No such die"
	case errors.Is(err, yatzy.ErrGameOver):
		return "Game over! Press n for a new game"
	case errors.Is(err, yatzy.ErrCommitInProgress):
		return "Scoring in progress"
	case errors.Is(err, yatzy.ErrInvalidAmount):
		return "Invalid purchase"
	}
	return err.Error()
}

// refreshSheet rebuilds the score table rows from a snapshot.
func (m *Model) refreshSheet() {
	m.sheet.SetRows(sheetRows(m.game.Snapshot(), !m.rolling))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()
	var b strings.Builder

	// Header
	header := titleStyle.Render("Y A T Z Y") + "  " +
		mutedStyle.Render(m.setup.Variant.Title) + "    " +
		gemStyle.Render(fmt.Sprintf("💎 %d", snap.Gems))
	if len(snap.Players) > 1 && snap.Phase != yatzy.PhaseGameOver {
		header += "    " + titleStyle.Render(snap.CurrentName())
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	// Dice tray
	faces := [yatzy.DiceCount]int{}
	var held [yatzy.DiceCount]bool
	for i, d := range snap.Dice {
		faces[i] = d.Face
		held[i] = d.Held
	}
	if m.rolling {
		faces = m.tumble
	}
	if snap.RollCount == 0 && snap.Phase != yatzy.PhaseCommitting {
		faces = [yatzy.DiceCount]int{}
	}
	b.WriteString(renderDice(faces, held))
	b.WriteString("\n\n")

	// Roll button
	button := buttonStyle
	if m.rolling || m.commit != nil || snap.Phase == yatzy.PhaseGameOver {
		button = disabledButtonStyle
	}
	b.WriteString(button.Render(rollLabel(snap)))
	b.WriteString("\n\n")

	// Sheet, shop or standings
	switch {
	case m.shop.open:
		b.WriteString(m.renderShop())
	case snap.Phase == yatzy.PhaseGameOver:
		b.WriteString(renderStandings(m.standings))
	default:
		b.WriteString(panelStyle.Render(m.sheet.View()))
		b.WriteString("\n")
		b.WriteString(renderTotals(snap))
	}
	b.WriteString("\n")

	// Status
	status := okStyle.Render(m.status)
	if m.statusError {
		status = warnStyle.Render(m.status)
	}
	b.WriteString(status)
	b.WriteString("\n")

	b.WriteString(mutedStyle.Render(m.help.View(m.keyMapper.Keys())))
	return placeCenter(m.config.ScreenW, b.String())
}

// renderTotals draws penalty and total per player below the sheet.
func renderTotals(s yatzy.Snapshot) string {
	parts := make([]string, len(s.Players))
	for i, p := range s.Players {
		line := fmt.Sprintf("%s: %d", p.Name, p.Total)
		if p.Penalty > 0 {
			line += warnStyle.Render(fmt.Sprintf(" (-%d)", p.Penalty))
		}
		if i == s.Current {
			line = titleStyle.Render(line)
		}
		parts[i] = line
	}
	return "Total  " + strings.Join(parts, "   ")
}

// renderStandings draws the final results.
func renderStandings(standings []yatzy.Standing) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("FINAL SCORES"))
	b.WriteString("\n\n")
	for i, s := range standings {
		line := fmt.Sprintf("%d. %-12s %4d", i+1, s.Name, s.Total)
		if s.Bonus > 0 {
			line += okStyle.Render(fmt.Sprintf("  +%d bonus", s.Bonus))
		}
		if s.Penalty > 0 {
			line += warnStyle.Render(fmt.Sprintf("  -%d gems", s.Penalty))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Snapshot returns the engine state, for callers and tests.
func (m Model) Snapshot() yatzy.Snapshot {
	return m.game.Snapshot()
}

// Run starts the Bubble Tea program for one game.
// Returns true if the user asked to go back to the menu.
func Run(setup Setup, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewModel(setup, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}

// placeCenter centers a rendered block in the terminal.
func placeCenter(width int, s string) string {
	if width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
