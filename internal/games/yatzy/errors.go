package yatzy

import "errors"

// Engine errors. All of them are local validation failures; the game state is
// left untouched whenever one is returned.
var (
	// ErrOutOfRange is returned for a die index outside [0, DiceCount).
	ErrOutOfRange = errors.New("yatzy: die index out of range")

	// ErrCategoryAlreadyScored is returned when a category was committed before
	// or is locked by a prepared commit.
	ErrCategoryAlreadyScored = errors.New("yatzy: category already scored")

	// ErrNoPendingScore is returned when committing before the first roll of a turn.
	ErrNoPendingScore = errors.New("yatzy: no pending score, roll first")

	// ErrInsufficientFunds is returned when a paid re-roll or spend exceeds the gem balance.
	ErrInsufficientFunds = errors.New("yatzy: insufficient gems")

	// ErrInvalidCategory is returned for keys outside the category vocabulary.
	ErrInvalidCategory = errors.New("yatzy: invalid category")

	// ErrGameOver is returned for turn actions after every sheet is complete.
	ErrGameOver = errors.New("yatzy: game over")

	// ErrCommitInProgress is returned while a prepared commit awaits Apply or Discard.
	ErrCommitInProgress = errors.New("yatzy: commit in progress")

	// ErrInvalidAmount is returned for non-positive gem purchases and
	// negative spends.
	ErrInvalidAmount = errors.New("yatzy: invalid gem amount")
)
