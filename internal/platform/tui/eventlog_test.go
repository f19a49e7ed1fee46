package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-yatzy/internal/games/yatzy"
)

func TestLogEvents(t *testing.T) {
	var buf bytes.Buffer
	listen := LogEvents(NewEventLogger(&buf))

	listen(yatzy.CategoryCommittedEvent{Player: 0, Category: yatzy.Chance, Points: 23})
	listen(yatzy.RerollBlockedEvent{Reason: yatzy.ErrInsufficientFunds, Cost: 10, Balance: 5})
	listen(yatzy.GameOverEvent{Standings: []yatzy.Standing{{Name: "Ann", Total: 180}}})

	out := buf.String()
	for _, want := range []string{"category committed", "chance", "re-roll blocked", "WARN", "final standing", "Ann"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestInboxDrain(t *testing.T) {
	b := &inbox{}
	b.listen(yatzy.GemBalanceChangedEvent{Balance: 10})
	b.listen(yatzy.TurnStartedEvent{Player: 1, Name: "Bo"})

	if got := len(b.drain()); got != 2 {
		t.Errorf("drain() returned %d events, want 2", got)
	}
	if got := len(b.drain()); got != 0 {
		t.Errorf("second drain() returned %d events, want 0", got)
	}
}

func TestMenuSelect(t *testing.T) {
	cfg := testModel(t, testRules(20), nil).config
	m := NewMenuModel(nil, cfg)
	if len(m.items) < 2 {
		t.Fatalf("menu has %d items, want both variants", len(m.items))
	}

	next, _ := m.Update(keyMsg("down"))
	m = next.(MenuModel)
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(MenuModel)

	if m.Selected() == nil || cmd == nil {
		t.Fatal("enter did not select a variant")
	}
	if got := m.Selected().VariantID; got != yatzy.VariantHotSeat {
		t.Errorf("selected %q, want %q", got, yatzy.VariantHotSeat)
	}

	m = NewMenuModel(nil, cfg)
	next, _ = m.Update(keyMsg("tab"))
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab did not request the scoreboard")
	}
}
