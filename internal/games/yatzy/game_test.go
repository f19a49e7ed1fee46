package yatzy

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFirstRollIsFree(t *testing.T) {
	g := newTestGame(0, nil, 4)
	if got := g.Phase(); got != PhaseAwaitingRoll {
		t.Errorf("Phase() = %s, want %s", got, PhaseAwaitingRoll)
	}
	if err := g.Roll(); err != nil {
		t.Fatalf("Roll() error = %v", err)
	}
	if got := g.RollCount(); got != 1 {
		t.Errorf("RollCount() = %d, want 1", got)
	}
	if got := g.Phase(); got != PhaseRolled {
		t.Errorf("Phase() = %s, want %s", got, PhaseRolled)
	}
	if diff := cmp.Diff(ComputeScores([DiceCount]int{4, 4, 4, 4, 4}), g.Pending()); diff != "" {
		t.Errorf("Pending() mismatch (-want +got):\n%s", diff)
	}
}

func TestRollCostSchedule(t *testing.T) {
	g := newTestGame(100, nil, 3)

	wantCost := []int{0, 0, 0, 10, 10}
	wantFree := []int{2, 2, 1, 0, 0}
	for i := range wantCost {
		if got := g.NextRollCost(); got != wantCost[i] {
			t.Errorf("roll %d: NextRollCost() = %d, want %d", i+1, got, wantCost[i])
		}
		if got := g.FreeRerollsLeft(); got != wantFree[i] {
			t.Errorf("roll %d: FreeRerollsLeft() = %d, want %d", i+1, got, wantFree[i])
		}
		if err := g.Roll(); err != nil {
			t.Fatalf("roll %d: Roll() error = %v", i+1, err)
		}
	}
	if got := g.Gems(); got != 80 {
		t.Errorf("Gems() = %d, want 80", got)
	}
}

func TestPaidRollInsufficientFunds(t *testing.T) {
	g := New(Options{StartingGems: 5, Source: newScripted(1, 2, 3, 4, 5, 6, 5, 4, 3, 2, 6, 6, 1, 1, 2, 3)})
	rec := &recorder{}
	g.Subscribe(rec.listen)

	for i := 0; i < 3; i++ {
		if err := g.Roll(); err != nil {
			t.Fatalf("free roll %d error = %v", i+1, err)
		}
	}
	before := g.Values()
	pending := g.Pending()
	rec.reset()

	err := g.Roll()
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("4th Roll() error = %v, want ErrInsufficientFunds", err)
	}
	if got := g.Values(); got != before {
		t.Errorf("Values() changed to %v, want %v", got, before)
	}
	if diff := cmp.Diff(pending, g.Pending()); diff != "" {
		t.Errorf("Pending() changed (-want +got):\n%s", diff)
	}
	if got := g.Gems(); got != 5 {
		t.Errorf("Gems() = %d, want 5", got)
	}
	if got := g.RollCount(); got != 3 {
		t.Errorf("RollCount() = %d, want 3", got)
	}

	blocked, ok := rec.last().(RerollBlockedEvent)
	if !ok {
		t.Fatalf("last event = %T, want RerollBlockedEvent", rec.last())
	}
	if !errors.Is(blocked.Reason, ErrInsufficientFunds) || blocked.Cost != 10 || blocked.Balance != 5 {
		t.Errorf("RerollBlockedEvent = %+v", blocked)
	}
}

func TestPaidRollChargesPenalty(t *testing.T) {
	g := newTestGame(10, nil, 4)
	for i := 0; i < 4; i++ {
		if err := g.Roll(); err != nil {
			t.Fatalf("Roll() %d error = %v", i+1, err)
		}
	}
	if got := g.Gems(); got != 0 {
		t.Errorf("Gems() = %d, want 0", got)
	}

	points, err := g.SelectCategory(Chance)
	if err != nil {
		t.Fatal(err)
	}
	if points != 20 {
		t.Errorf("SelectCategory() = %d, want 20", points)
	}
	if got := g.Total(0); got != 10 {
		t.Errorf("Total() = %d, want 10", got)
	}
	if got := g.Snapshot().Players[0].Penalty; got != 10 {
		t.Errorf("Penalty = %d, want 10", got)
	}
}

func TestSelectCategoryIdempotent(t *testing.T) {
	g := newTestGame(0, nil, 5)
	_ = g.Roll()

	points, err := g.SelectCategory(Chance)
	if err != nil {
		t.Fatalf("SelectCategory() error = %v", err)
	}
	total := g.Total(0)
	if total != points {
		t.Errorf("Total() = %d, want %d", total, points)
	}

	_ = g.Roll()
	if _, err := g.SelectCategory(Chance); !errors.Is(err, ErrCategoryAlreadyScored) {
		t.Errorf("second SelectCategory() error = %v, want ErrCategoryAlreadyScored", err)
	}
	if got := g.Total(0); got != total {
		t.Errorf("Total() = %d after duplicate, want %d", got, total)
	}
	if _, ok := g.Pending()[Chance]; ok {
		t.Error("Pending() still offers committed category")
	}
}

func TestSelectCategoryErrors(t *testing.T) {
	g := newTestGame(0, nil, 2)

	if _, err := g.SelectCategory(Chance); !errors.Is(err, ErrNoPendingScore) {
		t.Errorf("before roll error = %v, want ErrNoPendingScore", err)
	}
	_ = g.Roll()
	if _, err := g.SelectCategory(Bonus); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("SelectCategory(Bonus) error = %v, want ErrInvalidCategory", err)
	}
	if _, err := g.SelectCategory(Category("sevens")); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("SelectCategory(unknown) error = %v, want ErrInvalidCategory", err)
	}
}

func TestTurnReset(t *testing.T) {
	g := newTestGame(50, nil, 6)
	for i := 0; i < 4; i++ {
		_ = g.Roll()
	}
	_ = g.ToggleHold(0)
	if _, err := g.SelectCategory(Sixes); err != nil {
		t.Fatal(err)
	}

	snap := g.Snapshot()
	if snap.RollCount != 0 {
		t.Errorf("RollCount = %d, want 0", snap.RollCount)
	}
	if snap.Phase != PhaseAwaitingRoll {
		t.Errorf("Phase = %s, want %s", snap.Phase, PhaseAwaitingRoll)
	}
	if len(snap.Pending) != 0 {
		t.Errorf("Pending = %v, want empty", snap.Pending)
	}
	for i, d := range snap.Dice {
		if d.Held {
			t.Errorf("die %d still held", i)
		}
	}

	gems := g.Gems()
	if got := g.NextRollCost(); got != 0 {
		t.Errorf("NextRollCost() = %d, want 0", got)
	}
	_ = g.Roll()
	if got := g.Gems(); got != gems {
		t.Errorf("fresh turn roll charged: Gems() = %d, want %d", got, gems)
	}
}

func TestHoldKeepsFace(t *testing.T) {
	g := newTestGame(0, nil, 1, 2, 3, 4, 5, 6, 6, 6, 6)
	_ = g.Roll()
	if err := g.ToggleHold(0); err != nil {
		t.Fatal(err)
	}
	_ = g.Roll()
	if got := g.Values(); got[0] != 1 {
		t.Errorf("held die = %d, want 1", got[0])
	}
	if err := g.Release(0); err != nil {
		t.Fatal(err)
	}
	if err := g.ToggleHold(DiceCount); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ToggleHold(5) error = %v, want ErrOutOfRange", err)
	}
	if err := g.Release(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Release(-1) error = %v, want ErrOutOfRange", err)
	}
}

func TestToggleHoldBeforeFirstRoll(t *testing.T) {
	g := newTestGame(0, nil, 4)
	rec := &recorder{}
	g.Subscribe(rec.listen)

	if err := g.ToggleHold(2); err != nil {
		t.Fatalf("ToggleHold() before roll error = %v", err)
	}
	snap := g.Snapshot()
	if !snap.Dice[2].Held || snap.Phase != PhaseAwaitingRoll || snap.RollCount != 0 {
		t.Errorf("after hold: held = %v, phase = %s, rolls = %d", snap.Dice[2].Held, snap.Phase, snap.RollCount)
	}
	if ev, ok := rec.last().(DiceChangedEvent); !ok || !ev.Held[2] {
		t.Errorf("last event = %#v, want DiceChangedEvent with die 3 held", rec.last())
	}

	if err := g.Roll(); err != nil {
		t.Fatal(err)
	}
	if got := g.Values(); got[2] != MinFace {
		t.Errorf("held die = %d, want %d", got[2], MinFace)
	}
}

func TestPrepareCommitLocks(t *testing.T) {
	g := newTestGame(100, nil, 3, 3, 3, 2, 2)
	_ = g.Roll()
	before := g.Pending()

	commit, err := g.PrepareCommit(FullHouse)
	if err != nil {
		t.Fatalf("PrepareCommit() error = %v", err)
	}
	if commit.Points() != 13 || commit.Category() != FullHouse || commit.Player() != 0 {
		t.Errorf("Commit = %s/%d/%d", commit.Category(), commit.Points(), commit.Player())
	}
	if diff := cmp.Diff(Scores{FullHouse: 13}, g.Pending()); diff != "" {
		t.Errorf("Pending() while committing (-want +got):\n%s", diff)
	}
	if got := g.Phase(); got != PhaseCommitting {
		t.Errorf("Phase() = %s, want %s", got, PhaseCommitting)
	}
	if got := g.Snapshot().Committing; got != FullHouse {
		t.Errorf("Snapshot().Committing = %q, want %q", got, FullHouse)
	}

	if err := g.Roll(); !errors.Is(err, ErrCommitInProgress) {
		t.Errorf("Roll() error = %v, want ErrCommitInProgress", err)
	}
	if _, err := g.PrepareCommit(FullHouse); !errors.Is(err, ErrCategoryAlreadyScored) {
		t.Errorf("second PrepareCommit(same) error = %v, want ErrCategoryAlreadyScored", err)
	}
	if _, err := g.SelectCategory(FullHouse); !errors.Is(err, ErrCategoryAlreadyScored) {
		t.Errorf("SelectCategory(same) error = %v, want ErrCategoryAlreadyScored", err)
	}
	if _, err := g.PrepareCommit(Chance); !errors.Is(err, ErrCommitInProgress) {
		t.Errorf("PrepareCommit(other) error = %v, want ErrCommitInProgress", err)
	}

	commit.Discard()
	if diff := cmp.Diff(before, g.Pending()); diff != "" {
		t.Errorf("Pending() after Discard (-want +got):\n%s", diff)
	}
	if got := g.RollCount(); got != 1 {
		t.Errorf("RollCount() after Discard = %d, want 1", got)
	}
	if err := commit.Apply(); !errors.Is(err, ErrCommitClosed) {
		t.Errorf("Apply() after Discard error = %v, want ErrCommitClosed", err)
	}
	commit.Discard()

	commit, err = g.PrepareCommit(Chance)
	if err != nil {
		t.Fatal(err)
	}
	if err := commit.Apply(); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if err := commit.Apply(); !errors.Is(err, ErrCategoryAlreadyScored) {
		t.Errorf("second Apply() error = %v, want ErrCategoryAlreadyScored", err)
	}
	if got := g.Total(0); got != 13 {
		t.Errorf("Total() = %d, want 13", got)
	}
}

func TestCommitEvents(t *testing.T) {
	g := newTestGame(0, nil, 5)
	rec := &recorder{}
	g.Subscribe(rec.listen)
	_ = g.Roll()
	rec.reset()

	if _, err := g.SelectCategory(Fives); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"yatzy.CategoryCommittedEvent",
		"yatzy.BonusChangedEvent",
		"yatzy.TotalScoreChangedEvent",
		"yatzy.PendingScoresChangedEvent",
		"yatzy.DiceChangedEvent",
		"yatzy.TurnStartedEvent",
	}
	if diff := cmp.Diff(want, rec.types()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}

	rec.mu.Lock()
	committed := rec.events[0].(CategoryCommittedEvent)
	bonus := rec.events[1].(BonusChangedEvent)
	rec.mu.Unlock()
	if committed != (CategoryCommittedEvent{Player: 0, Category: Fives, Points: 25}) {
		t.Errorf("CategoryCommittedEvent = %+v", committed)
	}
	if bonus.Status != (BonusStatus{UpperSum: 25, Threshold: 63}) {
		t.Errorf("BonusChangedEvent.Status = %+v", bonus.Status)
	}
}

func TestRollEvents(t *testing.T) {
	g := newTestGame(10, nil, 2)
	rec := &recorder{}
	unsubscribe := g.Subscribe(rec.listen)

	for i := 0; i < 3; i++ {
		_ = g.Roll()
	}
	rec.reset()
	_ = g.Roll()

	want := []string{
		"yatzy.GemBalanceChangedEvent",
		"yatzy.TotalScoreChangedEvent",
		"yatzy.DiceChangedEvent",
		"yatzy.PendingScoresChangedEvent",
	}
	if diff := cmp.Diff(want, rec.types()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}

	unsubscribe()
	rec.reset()
	_ = g.ToggleHold(1)
	if got := rec.types(); len(got) != 0 {
		t.Errorf("events after unsubscribe = %v", got)
	}
}

func TestListenerMayCallGame(t *testing.T) {
	g := newTestGame(0, nil, 3)
	var seen []int
	g.Subscribe(func(ev Event) {
		if _, ok := ev.(DiceChangedEvent); ok {
			seen = append(seen, g.RollCount())
		}
	})
	_ = g.Roll()
	_ = g.Roll()
	if diff := cmp.Diff([]int{1, 2}, seen); diff != "" {
		t.Errorf("RollCount() from listener (-want +got):\n%s", diff)
	}
}

func TestBuyGems(t *testing.T) {
	g := newTestGame(5, nil, 1)
	if err := g.BuyGems(0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("BuyGems(0) error = %v, want ErrInvalidAmount", err)
	}
	if err := g.BuyGems(100); err != nil {
		t.Fatal(err)
	}
	if got := g.Gems(); got != 105 {
		t.Errorf("Gems() = %d, want 105", got)
	}
}

func TestGameOver(t *testing.T) {
	g := newTestGame(0, nil, 1, 2, 3, 4, 5)
	rec := &recorder{}
	g.Subscribe(rec.listen)

	for _, c := range Selectable() {
		if err := g.Roll(); err != nil {
			t.Fatalf("Roll() before %s error = %v", c, err)
		}
		if _, err := g.SelectCategory(c); err != nil {
			t.Fatalf("SelectCategory(%s) error = %v", c, err)
		}
	}

	if !g.IsOver() {
		t.Fatal("IsOver() = false after full sheet")
	}
	if got := g.Phase(); got != PhaseGameOver {
		t.Errorf("Phase() = %s, want %s", got, PhaseGameOver)
	}
	over, ok := rec.last().(GameOverEvent)
	if !ok {
		t.Fatalf("last event = %T, want GameOverEvent", rec.last())
	}
	if len(over.Standings) != 1 || over.Standings[0].Total != g.Total(0) {
		t.Errorf("GameOverEvent.Standings = %+v", over.Standings)
	}
	if err := g.Roll(); !errors.Is(err, ErrGameOver) {
		t.Errorf("Roll() after game over error = %v, want ErrGameOver", err)
	}
	// Every category is already on the sheet.
	if _, err := g.SelectCategory(Chance); !errors.Is(err, ErrCategoryAlreadyScored) {
		t.Errorf("SelectCategory() after game over error = %v, want ErrCategoryAlreadyScored", err)
	}
}

func TestHotSeatRotation(t *testing.T) {
	g := newTestGame(0, []string{"Ann", "Bo"}, 6)
	rec := &recorder{}
	g.Subscribe(rec.listen)

	_ = g.Roll()
	if _, err := g.SelectCategory(Chance); err != nil {
		t.Fatal(err)
	}
	turn, ok := rec.last().(TurnStartedEvent)
	if !ok || turn != (TurnStartedEvent{Player: 1, Name: "Bo"}) {
		t.Fatalf("last event = %#v, want TurnStartedEvent for Bo", rec.last())
	}
	if got := g.CurrentPlayer(); got != 1 {
		t.Errorf("CurrentPlayer() = %d, want 1", got)
	}

	// A repeated tap lands on the next player's fresh turn.
	if _, err := g.SelectCategory(Chance); !errors.Is(err, ErrNoPendingScore) {
		t.Errorf("repeat SelectCategory() error = %v, want ErrNoPendingScore", err)
	}

	_ = g.Roll()
	if _, err := g.SelectCategory(Sixes); err != nil {
		t.Fatal(err)
	}
	if got := g.CurrentPlayer(); got != 0 {
		t.Errorf("CurrentPlayer() = %d, want 0", got)
	}

	snap := g.Snapshot()
	if snap.CurrentName() != "Ann" {
		t.Errorf("CurrentName() = %q, want Ann", snap.CurrentName())
	}
	if snap.Players[0].Total != 30 || snap.Players[1].Total != 30 {
		t.Errorf("totals = %d, %d, want 30, 30", snap.Players[0].Total, snap.Players[1].Total)
	}
}

func TestHotSeatRepeatSelection(t *testing.T) {
	g := newTestGame(0, []string{"Ann", "Bo"}, 5)
	_ = g.Roll()
	if _, err := g.SelectCategory(FullHouse); err != nil {
		t.Fatal(err)
	}
	before := g.Snapshot()

	rec := &recorder{}
	g.Subscribe(rec.listen)

	// The turn has passed; the category is still open on Bo's sheet.
	_, err := g.SelectCategory(FullHouse)
	if !errors.Is(err, ErrNoPendingScore) {
		t.Errorf("repeat SelectCategory() error = %v, want ErrNoPendingScore", err)
	}
	if errors.Is(err, ErrCategoryAlreadyScored) {
		t.Error("repeat reported Ann's committed category against Bo")
	}
	if diff := cmp.Diff(before, g.Snapshot()); diff != "" {
		t.Errorf("repeat changed state (-want +got):\n%s", diff)
	}
	if got := rec.types(); len(got) != 0 {
		t.Errorf("repeat emitted %v", got)
	}
}

func TestStandingsOrder(t *testing.T) {
	g := newTestGame(0, []string{"Ann", "Bo", ""}, 2)
	_ = g.Roll()
	_, _ = g.SelectCategory(Ones) // Ann 0
	_ = g.Roll()
	_, _ = g.SelectCategory(Chance) // Bo 10
	_ = g.Roll()
	_, _ = g.SelectCategory(Twos) // Player 3 10

	want := []Standing{
		{Player: 1, Name: "Bo", Total: 10},
		{Player: 2, Name: "Player 3", Total: 10},
		{Player: 0, Name: "Ann", Total: 0},
	}
	if diff := cmp.Diff(want, g.Standings()); diff != "" {
		t.Errorf("Standings() mismatch (-want +got):\n%s", diff)
	}
}

func TestConcurrentAccess(t *testing.T) {
	g := New(Options{StartingGems: 1000})
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = g.Roll()
				_ = g.ToggleHold(w)
				_ = g.Snapshot()
			}
		}(w)
	}
	wg.Wait()

	if got := g.RollCount(); got < 1 {
		t.Errorf("RollCount() = %d, want >= 1", got)
	}
}
