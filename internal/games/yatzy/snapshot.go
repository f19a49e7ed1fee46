package yatzy

// PlayerSnapshot is one player's sheet as rendered.
type PlayerSnapshot struct {
	Name     string
	Scores   Scores // committed categories only
	Bonus    BonusStatus
	Penalty  int
	Total    int
	Complete bool
}

// Snapshot captures the observable game state for rendering and tests.
type Snapshot struct {
	Phase           Phase
	Current         int
	RollCount       int
	Dice            [DiceCount]Die
	Pending         Scores
	Committing      Category // category locked by a prepared commit, if any
	Gems            int
	NextRollCost    int
	FreeRerollsLeft int
	Players         []PlayerSnapshot
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := Snapshot{
		Phase:           g.phaseLocked(),
		Current:         g.current,
		RollCount:       g.rollCount,
		Dice:            g.dice.Dice(),
		Pending:         g.pending.Clone(),
		Gems:            g.economy.Balance(),
		NextRollCost:    g.nextRollCostLocked(),
		FreeRerollsLeft: g.freeRerollsLeftLocked(),
		Players:         make([]PlayerSnapshot, len(g.players)),
	}
	if g.prepared != nil {
		snap.Committing = g.prepared.category
	}
	for i, p := range g.players {
		snap.Players[i] = PlayerSnapshot{
			Name:     p.name,
			Scores:   p.sheet.Scores(),
			Bonus:    p.sheet.Bonus(),
			Penalty:  p.sheet.Penalty(),
			Total:    p.sheet.Total(),
			Complete: p.sheet.Complete(),
		}
	}
	return snap
}

// CurrentName returns the name of the player whose turn it is.
func (s Snapshot) CurrentName() string {
	if s.Current < 0 || s.Current >= len(s.Players) {
		return ""
	}
	return s.Players[s.Current].Name
}
