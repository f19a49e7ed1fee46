package yatzy

import (
	"errors"
	"testing"
)

func TestNewDiceSet(t *testing.T) {
	d := NewDiceSet(newScripted(6))
	if got, want := d.Values(), [DiceCount]int{1, 1, 1, 1, 1}; got != want {
		t.Errorf("Values() = %v, want %v", got, want)
	}
	if got := d.Held(); got != [DiceCount]bool{} {
		t.Errorf("Held() = %v, want none", got)
	}
}

func TestRollNonHeld(t *testing.T) {
	d := NewDiceSet(newScripted(2, 3, 4, 5, 6, 6, 6, 6, 6, 6))
	d.RollNonHeld()
	if got, want := d.Values(), [DiceCount]int{2, 3, 4, 5, 6}; got != want {
		t.Fatalf("Values() = %v, want %v", got, want)
	}

	if err := d.ToggleHold(0); err != nil {
		t.Fatal(err)
	}
	if err := d.ToggleHold(2); err != nil {
		t.Fatal(err)
	}
	d.RollNonHeld()
	if got, want := d.Values(), [DiceCount]int{2, 6, 4, 6, 6}; got != want {
		t.Errorf("Values() after hold = %v, want %v", got, want)
	}
}

func TestRollRange(t *testing.T) {
	// Source returning the extremes of [0, n).
	d := NewDiceSet(newScripted(1, 6))
	for i := 0; i < 10; i++ {
		d.RollNonHeld()
		for _, f := range d.Values() {
			if f < MinFace || f > MaxFace {
				t.Fatalf("face %d out of range", f)
			}
		}
	}
}

func TestHoldIndexErrors(t *testing.T) {
	d := NewDiceSet(newScripted(1))
	for _, i := range []int{-1, DiceCount, 100} {
		if err := d.ToggleHold(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("ToggleHold(%d) error = %v, want ErrOutOfRange", i, err)
		}
		if err := d.Release(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Release(%d) error = %v, want ErrOutOfRange", i, err)
		}
	}
}

func TestToggleReleaseAll(t *testing.T) {
	d := NewDiceSet(newScripted(1))
	_ = d.ToggleHold(1)
	_ = d.ToggleHold(3)
	if got, want := d.Held(), [DiceCount]bool{false, true, false, true, false}; got != want {
		t.Fatalf("Held() = %v, want %v", got, want)
	}

	_ = d.ToggleHold(1)
	if d.Held()[1] {
		t.Error("second ToggleHold(1) did not release")
	}

	_ = d.Release(3)
	_ = d.Release(3)
	if d.Held()[3] {
		t.Error("Release(3) left die held")
	}

	_ = d.ToggleHold(0)
	_ = d.ToggleHold(4)
	d.ReleaseAll()
	if got := d.Held(); got != [DiceCount]bool{} {
		t.Errorf("Held() after ReleaseAll = %v, want none", got)
	}
}
