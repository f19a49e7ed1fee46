package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-yatzy/internal/games/yatzy"
)

//go:embed defaults/yatzy.yaml
var defaultRulesYAML []byte

// DefaultRules returns the built-in rules.
func DefaultRules() Rules {
	return Rules{
		Economy: EconomyConfig{
			FreeRerolls:  yatzy.DefaultFreeRerolls,
			RerollCost:   yatzy.DefaultRerollCost,
			StartingGems: yatzy.DefaultStartingGems,
		},
		Shop: ShopConfig{
			Packages: []GemPackage{
				{Gems: 100, Price: "$1.99"},
				{Gems: 1000, Price: "$14.99"},
			},
		},
		Players: []string{yatzy.DefaultPlayerName},
		Animation: AnimationConfig{
			RollMs:   800,
			CommitMs: 380,
		},
	}
}

// DefaultYAML returns the embedded default rules file.
func DefaultYAML() []byte {
	return defaultRulesYAML
}
