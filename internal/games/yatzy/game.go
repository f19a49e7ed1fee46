// Package yatzy implements the dice-scoring game engine: the dice tray, the
// scoring rules, per-player score sheets, the gem economy and the turn state
// machine that ties them together. It has no terminal or storage dependencies;
// presentation layers subscribe to events and render snapshots.
package yatzy

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"
)

// Phase is the state of the current turn.
type Phase string

const (
	PhaseAwaitingRoll Phase = "awaiting_roll"
	PhaseRolled       Phase = "rolled"
	PhaseCommitting   Phase = "committing"
	PhaseGameOver     Phase = "game_over"
)

// ErrCommitClosed is returned by Apply on a commit that was discarded.
var ErrCommitClosed = errors.New("yatzy: commit already closed")

// DefaultPlayerName is used when no players are configured.
const DefaultPlayerName = "Player 1"

// Options configures a new Game.
type Options struct {
	// Players lists the player names in turn order. Empty means one player.
	Players []string
	// Policy prices re-rolls. The zero value means DefaultPolicy(); a
	// non-positive RerollCost means DefaultRerollCost.
	Policy Policy
	// StartingGems is the initial session balance.
	StartingGems int
	// Source provides dice randomness. Nil means a time-seeded math/rand source.
	Source Source
}

type player struct {
	name  string
	sheet *Sheet
}

type subscription struct {
	id int
	fn Listener
}

// Game is the turn controller for one session.
// All methods are safe for concurrent use.
type Game struct {
	mu sync.Mutex

	players []player
	current int
	dice    *DiceSet
	economy *Economy

	rollCount int
	pending   Scores
	prepared  *Commit
	over      bool

	listeners []subscription
	nextSubID int
}

// New creates a game waiting for the first player's first roll.
func New(opts Options) *Game {
	src := opts.Source
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	policy := opts.Policy
	if policy == (Policy{}) {
		policy = DefaultPolicy()
	}
	if policy.RerollCost <= 0 {
		policy.RerollCost = DefaultRerollCost
	}
	policy.FreeRerolls = max(0, policy.FreeRerolls)

	names := opts.Players
	if len(names) == 0 {
		names = []string{DefaultPlayerName}
	}
	players := make([]player, len(names))
	for i, name := range names {
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		players[i] = player{name: name, sheet: NewSheet()}
	}

	return &Game{
		players: players,
		dice:    NewDiceSet(src),
		economy: NewEconomy(policy, opts.StartingGems),
	}
}

// Subscribe registers a listener and returns a function that removes it.
func (g *Game) Subscribe(l Listener) (unsubscribe func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextSubID++
	id := g.nextSubID
	g.listeners = append(g.listeners, subscription{id: id, fn: l})

	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		for i, s := range g.listeners {
			if s.id == id {
				g.listeners = append(g.listeners[:i:i], g.listeners[i+1:]...)
				return
			}
		}
	}
}

// do runs a transition under the lock and dispatches its events afterwards.
func (g *Game) do(fn func() ([]Event, error)) error {
	g.mu.Lock()
	events, err := fn()
	listeners := make([]Listener, len(g.listeners))
	for i, s := range g.listeners {
		listeners[i] = s.fn
	}
	g.mu.Unlock()

	for _, ev := range events {
		for _, l := range listeners {
			l(ev)
		}
	}
	return err
}

// Roll rolls every unheld die. Rolls beyond the free allowance cost gems and
// add the same amount to the current player's penalty. If the balance is too
// low, Roll returns ErrInsufficientFunds, emits RerollBlockedEvent and leaves
// the dice untouched.
func (g *Game) Roll() error {
	return g.do(g.rollLocked)
}

func (g *Game) rollLocked() ([]Event, error) {
	if g.over {
		return nil, ErrGameOver
	}
	if g.prepared != nil {
		return nil, ErrCommitInProgress
	}

	var events []Event
	policy := g.economy.Policy()
	sheet := g.players[g.current].sheet

	if policy.IsPaid(g.rollCount) {
		if !g.economy.CanAffordReroll() {
			blocked := RerollBlockedEvent{
				Reason:  ErrInsufficientFunds,
				Cost:    policy.RerollCost,
				Balance: g.economy.Balance(),
			}
			return []Event{blocked}, fmt.Errorf("%w: re-roll costs %d, balance is %d",
				ErrInsufficientFunds, policy.RerollCost, g.economy.Balance())
		}
		if err := g.economy.Spend(policy.RerollCost); err != nil {
			return nil, err
		}
		sheet.AddPenalty(policy.RerollCost)
		events = append(events,
			GemBalanceChangedEvent{Balance: g.economy.Balance()},
			TotalScoreChangedEvent{Player: g.current, Total: sheet.Total()},
		)
	}

	g.pending = nil
	g.dice.RollNonHeld()
	g.rollCount++
	g.pending = g.pendingFor(sheet)

	events = append(events,
		g.diceEvent(),
		PendingScoresChangedEvent{Player: g.current, Scores: g.pending.Clone()},
	)
	return events, nil
}

// pendingFor scores the current dice for every category still open on sheet.
func (g *Game) pendingFor(sheet *Sheet) Scores {
	all := ComputeScores(g.dice.Values())
	for c := range all {
		if sheet.IsScored(c) {
			delete(all, c)
		}
	}
	return all
}

// ToggleHold flips the held flag of a die. It is allowed in any phase.
func (g *Game) ToggleHold(index int) error {
	return g.do(func() ([]Event, error) {
		if err := g.dice.ToggleHold(index); err != nil {
			return nil, err
		}
		return []Event{g.diceEvent()}, nil
	})
}

// Release clears the held flag of a die.
func (g *Game) Release(index int) error {
	return g.do(func() ([]Event, error) {
		if err := g.dice.Release(index); err != nil {
			return nil, err
		}
		return []Event{g.diceEvent()}, nil
	})
}

// BuyGems credits a purchased gem package to the session balance.
func (g *Game) BuyGems(amount int) error {
	return g.do(func() ([]Event, error) {
		if amount <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
		}
		g.economy.Credit(amount)
		return []Event{GemBalanceChangedEvent{Balance: g.economy.Balance()}}, nil
	})
}

// SelectCategory commits the pending score for c to the current player's sheet
// and ends the turn. It returns the committed points.
func (g *Game) SelectCategory(c Category) (int, error) {
	var points int
	err := g.do(func() ([]Event, error) {
		// Prepare and apply under one lock; the intermediate pending update
		// from prepare is superseded by apply and never dispatched.
		commit, _, err := g.prepareLocked(c)
		if err != nil {
			return nil, err
		}
		events, err := g.applyLocked(commit)
		if err != nil {
			g.discardLocked(commit)
			return nil, err
		}
		points = commit.points
		return events, nil
	})
	return points, err
}

// PrepareCommit locks c for the current player and returns a Commit whose
// Apply performs the state change. Until Apply or Discard runs, rolls and
// other commits are rejected. Every pending score except c is cleared.
func (g *Game) PrepareCommit(c Category) (*Commit, error) {
	var commit *Commit
	err := g.do(func() ([]Event, error) {
		var (
			events []Event
			err    error
		)
		commit, events, err = g.prepareLocked(c)
		return events, err
	})
	if err != nil {
		return nil, err
	}
	return commit, nil
}

func (g *Game) prepareLocked(c Category) (*Commit, []Event, error) {
	if !c.IsSelectable() {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidCategory, c)
	}
	sheet := g.players[g.current].sheet
	if sheet.IsScored(c) {
		return nil, nil, fmt.Errorf("%w: %s", ErrCategoryAlreadyScored, c)
	}
	if g.prepared != nil {
		if g.prepared.category == c {
			return nil, nil, fmt.Errorf("%w: %s", ErrCategoryAlreadyScored, c)
		}
		return nil, nil, ErrCommitInProgress
	}
	if g.over {
		return nil, nil, ErrGameOver
	}
	if g.rollCount == 0 {
		return nil, nil, ErrNoPendingScore
	}

	points := g.pending[c]
	commit := &Commit{
		game:      g,
		player:    g.current,
		category:  c,
		points:    points,
		saved:     g.pending.Clone(),
		savedRoll: g.rollCount,
	}
	g.prepared = commit
	g.pending = Scores{c: points}

	return commit, []Event{
		PendingScoresChangedEvent{Player: g.current, Scores: g.pending.Clone()},
	}, nil
}

func (g *Game) applyLocked(c *Commit) ([]Event, error) {
	switch c.state {
	case commitApplied:
		return nil, fmt.Errorf("%w: %s", ErrCategoryAlreadyScored, c.category)
	case commitDiscarded:
		return nil, ErrCommitClosed
	}

	p := g.players[c.player]
	if err := p.sheet.Commit(c.category, c.points); err != nil {
		return nil, err
	}
	c.state = commitApplied
	g.prepared = nil

	events := []Event{
		CategoryCommittedEvent{Player: c.player, Category: c.category, Points: c.points},
	}
	if c.category.IsUpper() {
		events = append(events, BonusChangedEvent{Player: c.player, Status: p.sheet.Bonus()})
	}
	events = append(events, TotalScoreChangedEvent{Player: c.player, Total: p.sheet.Total()})

	g.pending = nil
	g.dice.ReleaseAll()
	g.rollCount = 0
	events = append(events,
		PendingScoresChangedEvent{Player: c.player},
		g.diceEvent(),
	)

	if next, ok := g.nextPlayer(); ok {
		g.current = next
		events = append(events, TurnStartedEvent{Player: next, Name: g.players[next].name})
	} else {
		g.over = true
		events = append(events, GameOverEvent{Standings: g.standingsLocked()})
	}
	return events, nil
}

func (g *Game) discardLocked(c *Commit) []Event {
	if c.state != commitPrepared {
		return nil
	}
	c.state = commitDiscarded
	g.prepared = nil
	g.pending = c.saved
	g.rollCount = c.savedRoll
	return []Event{
		PendingScoresChangedEvent{Player: c.player, Scores: g.pending.Clone()},
	}
}

// nextPlayer finds the next player in turn order with an open sheet.
func (g *Game) nextPlayer() (int, bool) {
	n := len(g.players)
	for step := 1; step <= n; step++ {
		i := (g.current + step) % n
		if !g.players[i].sheet.Complete() {
			return i, true
		}
	}
	return 0, false
}

func (g *Game) diceEvent() DiceChangedEvent {
	return DiceChangedEvent{Values: g.dice.Values(), Held: g.dice.Held()}
}

// Phase returns the current turn phase.
func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phaseLocked()
}

func (g *Game) phaseLocked() Phase {
	switch {
	case g.over:
		return PhaseGameOver
	case g.prepared != nil:
		return PhaseCommitting
	case g.rollCount > 0:
		return PhaseRolled
	default:
		return PhaseAwaitingRoll
	}
}

// RollCount returns the number of rolls made in the current turn.
func (g *Game) RollCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rollCount
}

// Pending returns a copy of the pending scores.
func (g *Game) Pending() Scores {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending.Clone()
}

// Gems returns the session gem balance.
func (g *Game) Gems() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.economy.Balance()
}

// Values returns the current dice faces.
func (g *Game) Values() [DiceCount]int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.dice.Values()
}

// CurrentPlayer returns the index of the player whose turn it is.
func (g *Game) CurrentPlayer() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Total returns a player's total score.
func (g *Game) Total(playerIndex int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if playerIndex < 0 || playerIndex >= len(g.players) {
		return 0
	}
	return g.players[playerIndex].sheet.Total()
}

// IsOver reports whether every sheet is complete.
func (g *Game) IsOver() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.over
}

// NextRollCost returns the gem price of the next roll, 0 when it is free.
func (g *Game) NextRollCost() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.nextRollCostLocked()
}

func (g *Game) nextRollCostLocked() int {
	policy := g.economy.Policy()
	if policy.IsPaid(g.rollCount) {
		return policy.RerollCost
	}
	return 0
}

// FreeRerollsLeft returns how many free re-rolls remain this turn.
func (g *Game) FreeRerollsLeft() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.freeRerollsLeftLocked()
}

func (g *Game) freeRerollsLeftLocked() int {
	free := g.economy.Policy().FreeRerolls
	return min(free, max(0, free+1-g.rollCount))
}

// Standing is a player's final or current result.
type Standing struct {
	Player  int
	Name    string
	Total   int
	Bonus   int
	Penalty int
}

// Standings returns every player ordered by total, highest first.
func (g *Game) Standings() []Standing {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.standingsLocked()
}

func (g *Game) standingsLocked() []Standing {
	out := make([]Standing, len(g.players))
	for i, p := range g.players {
		out[i] = Standing{
			Player:  i,
			Name:    p.name,
			Total:   p.sheet.Total(),
			Bonus:   p.sheet.Bonus().Bonus,
			Penalty: p.sheet.Penalty(),
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}
