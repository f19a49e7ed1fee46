package yatzy

type commitState int

const (
	commitPrepared commitState = iota
	commitApplied
	commitDiscarded
)

// Commit is a prepared category commit. The category stays locked until
// Apply or Discard is called; a presentation layer typically calls Apply
// once its score animation has settled.
type Commit struct {
	game      *Game
	player    int
	category  Category
	points    int
	saved     Scores
	savedRoll int
	state     commitState
}

// Category returns the category being committed.
func (c *Commit) Category() Category {
	return c.category
}

// Points returns the points that Apply will record.
func (c *Commit) Points() int {
	return c.points
}

// Player returns the index of the player the commit belongs to.
func (c *Commit) Player() int {
	return c.player
}

// Apply records the score and ends the turn. Calling Apply again returns
// ErrCategoryAlreadyScored without side effects; calling it after Discard
// returns ErrCommitClosed.
func (c *Commit) Apply() error {
	return c.game.do(func() ([]Event, error) {
		return c.game.applyLocked(c)
	})
}

// Discard releases the lock and restores the pending scores and roll count
// from before PrepareCommit. It is a no-op once applied or discarded.
func (c *Commit) Discard() {
	//nolint:errcheck // discardLocked never fails
	c.game.do(func() ([]Event, error) {
		return c.game.discardLocked(c), nil
	})
}
