package yatzy

import "fmt"

// BonusStatus is the upper-section bonus as shown on the sheet.
// While Final is false, UpperSum is a running total against Threshold.
type BonusStatus struct {
	UpperSum  int
	Threshold int
	Bonus     int
	Final     bool
}

// Sheet holds one player's committed scores and penalty.
type Sheet struct {
	scores  map[Category]int
	penalty int
}

// NewSheet creates an empty score sheet.
func NewSheet() *Sheet {
	return &Sheet{scores: make(map[Category]int)}
}

// Commit records points for c. A category can be committed only once.
func (s *Sheet) Commit(c Category, points int) error {
	if !c.IsSelectable() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, c)
	}
	if _, ok := s.scores[c]; ok {
		return fmt.Errorf("%w: %s", ErrCategoryAlreadyScored, c)
	}
	if points < 0 {
		points = 0
	}
	s.scores[c] = points
	return nil
}

// Score returns the committed points for c. Bonus is reported once final.
func (s *Sheet) Score(c Category) (int, bool) {
	if c == Bonus {
		b := s.Bonus()
		return b.Bonus, b.Final
	}
	pts, ok := s.scores[c]
	return pts, ok
}

// IsScored reports whether c has been committed.
func (s *Sheet) IsScored(c Category) bool {
	_, ok := s.scores[c]
	return ok
}

// Scores returns a copy of the committed scores, without the bonus.
func (s *Sheet) Scores() Scores {
	out := make(Scores, len(s.scores))
	for k, v := range s.scores {
		out[k] = v
	}
	return out
}

// Remaining returns the uncommitted selectable categories in display order.
func (s *Sheet) Remaining() []Category {
	var out []Category
	for _, c := range Selectable() {
		if !s.IsScored(c) {
			out = append(out, c)
		}
	}
	return out
}

// Complete reports whether every selectable category is committed.
func (s *Sheet) Complete() bool {
	return len(s.scores) == len(categoryTable)-1
}

// AddPenalty accumulates a deduction. Negative amounts are ignored.
func (s *Sheet) AddPenalty(amount int) {
	if amount > 0 {
		s.penalty += amount
	}
}

// Penalty returns the accumulated deduction.
func (s *Sheet) Penalty() int {
	return s.penalty
}

// UpperSum returns the sum of committed upper categories.
func (s *Sheet) UpperSum() int {
	sum := 0
	for _, c := range upperFaces {
		sum += s.scores[c]
	}
	return sum
}

// UpperComplete reports whether ones through sixes are all committed.
func (s *Sheet) UpperComplete() bool {
	for _, c := range upperFaces {
		if !s.IsScored(c) {
			return false
		}
	}
	return true
}

// Bonus derives the upper-section bonus.
func (s *Sheet) Bonus() BonusStatus {
	status := BonusStatus{
		UpperSum:  s.UpperSum(),
		Threshold: UpperBonusThreshold,
	}
	if !s.UpperComplete() {
		return status
	}
	status.Final = true
	if status.UpperSum >= UpperBonusThreshold {
		status.Bonus = UpperBonusPoints
	}
	return status
}

// Subtotal is the sum of committed scores plus the final bonus, before penalty.
func (s *Sheet) Subtotal() int {
	sum := 0
	for _, v := range s.scores {
		sum += v
	}
	return sum + s.Bonus().Bonus
}

// Total is the subtotal minus penalty, never below zero.
func (s *Sheet) Total() int {
	return max(0, s.Subtotal()-s.penalty)
}
