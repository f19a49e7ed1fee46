package yatzy

import (
	"errors"
	"testing"
)

func TestUpperBonusThreshold(t *testing.T) {
	tests := []struct {
		name      string
		ones      int
		wantBonus int
	}{
		{"sum 62", 2, 0},
		{"sum 63", 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSheet()
			points := []int{tt.ones, 6, 9, 12, 15, 18}
			for i, c := range UpperCategories() {
				if got := s.Bonus(); got.Final {
					t.Fatalf("Bonus().Final = true before %s", c)
				}
				if err := s.Commit(c, points[i]); err != nil {
					t.Fatal(err)
				}
			}

			b := s.Bonus()
			if !b.Final {
				t.Fatal("Bonus().Final = false after all upper categories")
			}
			if b.Bonus != tt.wantBonus {
				t.Errorf("Bonus().Bonus = %d, want %d", b.Bonus, tt.wantBonus)
			}
			if got, want := s.Total(), 60+tt.ones+tt.wantBonus; got != want {
				t.Errorf("Total() = %d, want %d", got, want)
			}
			if got, ok := s.Score(Bonus); !ok || got != tt.wantBonus {
				t.Errorf("Score(Bonus) = %d, %v, want %d, true", got, ok, tt.wantBonus)
			}
		})
	}
}

func TestBonusRunningSum(t *testing.T) {
	s := NewSheet()
	_ = s.Commit(Sixes, 24)
	_ = s.Commit(Fives, 20)

	b := s.Bonus()
	want := BonusStatus{UpperSum: 44, Threshold: 63}
	if b != want {
		t.Errorf("Bonus() = %+v, want %+v", b, want)
	}
	if _, ok := s.Score(Bonus); ok {
		t.Error("Score(Bonus) reported before upper section complete")
	}
}

func TestSheetCommit(t *testing.T) {
	s := NewSheet()
	if err := s.Commit(Chance, 20); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if err := s.Commit(Chance, 30); !errors.Is(err, ErrCategoryAlreadyScored) {
		t.Errorf("second Commit() error = %v, want ErrCategoryAlreadyScored", err)
	}
	if got, _ := s.Score(Chance); got != 20 {
		t.Errorf("Score(Chance) = %d, want 20", got)
	}
	if err := s.Commit(Bonus, 50); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("Commit(Bonus) error = %v, want ErrInvalidCategory", err)
	}
	if err := s.Commit(Category("nope"), 1); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("Commit(unknown) error = %v, want ErrInvalidCategory", err)
	}
	if err := s.Commit(Yatzy, -5); err != nil {
		t.Fatal(err)
	}
	if got, _ := s.Score(Yatzy); got != 0 {
		t.Errorf("negative points stored as %d, want 0", got)
	}
}

func TestSheetRemainingComplete(t *testing.T) {
	s := NewSheet()
	if got := len(s.Remaining()); got != 15 {
		t.Fatalf("len(Remaining()) = %d, want 15", got)
	}
	for _, c := range Selectable() {
		if s.Complete() {
			t.Fatal("Complete() = true too early")
		}
		_ = s.Commit(c, 0)
	}
	if !s.Complete() {
		t.Error("Complete() = false after every category")
	}
	if got := s.Remaining(); len(got) != 0 {
		t.Errorf("Remaining() = %v, want empty", got)
	}
}

func TestPenaltyFloorsTotal(t *testing.T) {
	s := NewSheet()
	_ = s.Commit(Chance, 12)
	s.AddPenalty(10)
	s.AddPenalty(-3)
	if got := s.Penalty(); got != 10 {
		t.Errorf("Penalty() = %d, want 10", got)
	}
	if got := s.Total(); got != 2 {
		t.Errorf("Total() = %d, want 2", got)
	}

	s.AddPenalty(20)
	if got := s.Total(); got != 0 {
		t.Errorf("Total() = %d, want 0", got)
	}
	if got := s.Subtotal(); got != 12 {
		t.Errorf("Subtotal() = %d, want 12", got)
	}
}
