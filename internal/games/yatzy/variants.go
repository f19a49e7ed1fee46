package yatzy

import "github.com/vovakirdan/tui-yatzy/internal/registry"

// Variant IDs.
const (
	VariantSolo    = "yatzy"
	VariantHotSeat = "yatzy_hotseat"
)

func init() {
	registry.Register(registry.Variant{
		ID:             VariantSolo,
		Title:          "Yatzy",
		MinPlayers:     1,
		MaxPlayers:     1,
		DefaultPlayers: []string{DefaultPlayerName},
	})
	registry.Register(registry.Variant{
		ID:             VariantHotSeat,
		Title:          "Yatzy (Hot Seat)",
		MinPlayers:     2,
		MaxPlayers:     6,
		DefaultPlayers: []string{"Player 1", "Player 2"},
	})
}
