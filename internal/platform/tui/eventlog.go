package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-yatzy/internal/games/yatzy"
)

// NewEventLogger creates a logger for engine events written to w.
func NewEventLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "yatzy",
	})
}

// LogEvents returns a listener that records every engine event.
// Blocked re-rolls are logged at warn level.
func LogEvents(logger *log.Logger) yatzy.Listener {
	return func(ev yatzy.Event) {
		switch e := ev.(type) {
		case yatzy.DiceChangedEvent:
			logger.Info("dice changed", "values", e.Values, "held", e.Held)
		case yatzy.PendingScoresChangedEvent:
			logger.Info("pending scores changed", "player", e.Player, "categories", len(e.Scores))
		case yatzy.CategoryCommittedEvent:
			logger.Info("category committed", "player", e.Player, "category", e.Category, "points", e.Points)
		case yatzy.BonusChangedEvent:
			logger.Info("bonus changed", "player", e.Player,
				"upper_sum", e.Status.UpperSum, "bonus", e.Status.Bonus, "final", e.Status.Final)
		case yatzy.TotalScoreChangedEvent:
			logger.Info("total changed", "player", e.Player, "total", e.Total)
		case yatzy.GemBalanceChangedEvent:
			logger.Info("gem balance changed", "balance", e.Balance)
		case yatzy.RerollBlockedEvent:
			logger.Warn("re-roll blocked", "reason", e.Reason, "cost", e.Cost, "balance", e.Balance)
		case yatzy.TurnStartedEvent:
			logger.Info("turn started", "player", e.Player, "name", e.Name)
		case yatzy.GameOverEvent:
			for _, s := range e.Standings {
				logger.Info("final standing", "name", s.Name, "total", s.Total,
					"bonus", s.Bonus, "penalty", s.Penalty)
			}
		}
	}
}

// inbox buffers engine events for the model to handle after each action.
// Listeners run synchronously inside the engine call, so the model drains
// the inbox right after the call returns.
type inbox struct {
	events []yatzy.Event
}

func (b *inbox) listen(ev yatzy.Event) {
	b.events = append(b.events, ev)
}

func (b *inbox) drain() []yatzy.Event {
	out := b.events
	b.events = nil
	return out
}
