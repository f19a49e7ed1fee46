// Package config provides YAML-based rules loading for the yatzy engine
// and its terminal front end.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-yatzy/internal/games/yatzy"
)

// Rules contains all configurable game parameters.
type Rules struct {
	Economy   EconomyConfig   `yaml:"economy"`
	Shop      ShopConfig      `yaml:"shop"`
	Players   []string        `yaml:"players"`
	Animation AnimationConfig `yaml:"animation"`
}

// EconomyConfig defines re-roll pricing and the starting gem balance.
type EconomyConfig struct {
	FreeRerolls  int `yaml:"free_rerolls"`
	RerollCost   int `yaml:"reroll_cost"`
	StartingGems int `yaml:"starting_gems"`
}

// ShopConfig lists the gem packages offered by the purchase flow.
type ShopConfig struct {
	Packages []GemPackage `yaml:"packages"`
}

// GemPackage is one purchasable bundle of gems.
type GemPackage struct {
	Gems  int    `yaml:"gems"`
	Price string `yaml:"price"`
}

// AnimationConfig controls how long the front end waits before showing
// pending scores after a roll and before applying a commit.
type AnimationConfig struct {
	RollMs   int `yaml:"roll_ms"`
	CommitMs int `yaml:"commit_ms"`
}

// RollDelay returns the roll settle time.
func (a AnimationConfig) RollDelay() time.Duration {
	return time.Duration(a.RollMs) * time.Millisecond
}

// CommitDelay returns the commit fly-in time.
func (a AnimationConfig) CommitDelay() time.Duration {
	return time.Duration(a.CommitMs) * time.Millisecond
}

// Policy converts the economy section to an engine policy.
func (r Rules) Policy() yatzy.Policy {
	return yatzy.Policy{
		FreeRerolls: r.Economy.FreeRerolls,
		RerollCost:  r.Economy.RerollCost,
	}
}

// GameOptions builds engine options for the given roster.
// An empty roster falls back to the configured players.
func (r Rules) GameOptions(players []string, src yatzy.Source) yatzy.Options {
	if len(players) == 0 {
		players = r.Players
	}
	return yatzy.Options{
		Players:      players,
		Policy:       r.Policy(),
		StartingGems: r.Economy.StartingGems,
		Source:       src,
	}
}

// Validate checks the rules for values the engine cannot honor.
func (r Rules) Validate() error {
	var errs []error
	if r.Economy.FreeRerolls < 0 {
		errs = append(errs, fmt.Errorf("economy.free_rerolls must be >= 0, got %d", r.Economy.FreeRerolls))
	}
	if r.Economy.RerollCost < 1 {
		errs = append(errs, fmt.Errorf("economy.reroll_cost must be >= 1, got %d", r.Economy.RerollCost))
	}
	if r.Economy.StartingGems < 0 {
		errs = append(errs, fmt.Errorf("economy.starting_gems must be >= 0, got %d", r.Economy.StartingGems))
	}
	if len(r.Shop.Packages) == 0 {
		errs = append(errs, errors.New("shop.packages must not be empty"))
	}
	for i, p := range r.Shop.Packages {
		if p.Gems <= 0 {
			errs = append(errs, fmt.Errorf("shop.packages[%d].gems must be > 0, got %d", i, p.Gems))
		}
	}
	if r.Animation.RollMs < 0 || r.Animation.CommitMs < 0 {
		errs = append(errs, errors.New("animation durations must be >= 0"))
	}
	return errors.Join(errs...)
}
