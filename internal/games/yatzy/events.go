package yatzy

// Event is emitted by Game after a state transition completes.
type Event interface {
	yatzyEvent()
}

// Listener receives events. Listeners run on the caller's goroutine after the
// engine lock is released, so they may call back into the Game.
type Listener func(Event)

// DiceChangedEvent reports new faces or held flags.
type DiceChangedEvent struct {
	Values [DiceCount]int
	Held   [DiceCount]bool
}

func (DiceChangedEvent) yatzyEvent() {}

// PendingScoresChangedEvent carries the scores uncommitted categories would
// receive. Categories absent from Scores have no pending value.
type PendingScoresChangedEvent struct {
	Player int
	Scores Scores
}

func (PendingScoresChangedEvent) yatzyEvent() {}

// CategoryCommittedEvent reports a category locked to points.
type CategoryCommittedEvent struct {
	Player   int
	Category Category
	Points   int
}

func (CategoryCommittedEvent) yatzyEvent() {}

// BonusChangedEvent reports the running upper sum or, once Final, the bonus.
type BonusChangedEvent struct {
	Player int
	Status BonusStatus
}

func (BonusChangedEvent) yatzyEvent() {}

// TotalScoreChangedEvent reports a player's new total.
type TotalScoreChangedEvent struct {
	Player int
	Total  int
}

func (TotalScoreChangedEvent) yatzyEvent() {}

// GemBalanceChangedEvent reports the session's new gem balance.
type GemBalanceChangedEvent struct {
	Balance int
}

func (GemBalanceChangedEvent) yatzyEvent() {}

// RerollBlockedEvent asks the presentation layer to open its purchase flow.
type RerollBlockedEvent struct {
	Reason  error
	Cost    int
	Balance int
}

func (RerollBlockedEvent) yatzyEvent() {}

// TurnStartedEvent reports the player whose turn begins.
type TurnStartedEvent struct {
	Player int
	Name   string
}

func (TurnStartedEvent) yatzyEvent() {}

// GameOverEvent reports final standings, highest total first.
type GameOverEvent struct {
	Standings []Standing
}

func (GameOverEvent) yatzyEvent() {}
