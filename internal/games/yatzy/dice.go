package yatzy

import "fmt"

// Dice geometry.
const (
	DiceCount = 5
	MinFace   = 1
	MaxFace   = 6
)

// Source provides randomness for dice rolls. *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a non-negative int in [0, n).
	Intn(n int) int
}

// Die is a single die on the tray.
type Die struct {
	Face int
	Held bool
}

// DiceSet owns the five dice of a session.
type DiceSet struct {
	dice [DiceCount]Die
	src  Source
}

// NewDiceSet creates a tray of unheld dice showing 1.
func NewDiceSet(src Source) *DiceSet {
	d := &DiceSet{src: src}
	for i := range d.dice {
		d.dice[i].Face = MinFace
	}
	return d
}

// RollNonHeld assigns a new uniform face in [1, 6] to every unheld die.
func (d *DiceSet) RollNonHeld() {
	for i := range d.dice {
		if d.dice[i].Held {
			continue
		}
		d.dice[i].Face = MinFace + d.src.Intn(MaxFace)
	}
}

// ToggleHold flips the held flag of the die at index.
func (d *DiceSet) ToggleHold(index int) error {
	if err := checkIndex(index); err != nil {
		return err
	}
	d.dice[index].Held = !d.dice[index].Held
	return nil
}

// Release clears the held flag of the die at index.
func (d *DiceSet) Release(index int) error {
	if err := checkIndex(index); err != nil {
		return err
	}
	d.dice[index].Held = false
	return nil
}

// ReleaseAll clears every held flag.
func (d *DiceSet) ReleaseAll() {
	for i := range d.dice {
		d.dice[i].Held = false
	}
}

// Values returns the current faces in tray order.
func (d *DiceSet) Values() [DiceCount]int {
	var out [DiceCount]int
	for i, die := range d.dice {
		out[i] = die.Face
	}
	return out
}

// Held returns the held flags in tray order.
func (d *DiceSet) Held() [DiceCount]bool {
	var out [DiceCount]bool
	for i, die := range d.dice {
		out[i] = die.Held
	}
	return out
}

// Dice returns a copy of all dice.
func (d *DiceSet) Dice() [DiceCount]Die {
	return d.dice
}

func checkIndex(index int) error {
	if index < 0 || index >= DiceCount {
		return fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	return nil
}
