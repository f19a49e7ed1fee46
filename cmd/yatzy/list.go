package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-yatzy/internal/registry"
	"github.com/vovakirdan/tui-yatzy/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows a list of all registered Yatzy variants and their seating.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	// Results summary is optional; list works without a database
	var stats map[string]*storage.VariantStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllStats()
		store.Close()
	}

	fmt.Printf("  %-*s  %-18s  %-7s  %s\n", maxIDLen, "ID", "Title", "Players", "Games")
	fmt.Printf("  %-*s  %-18s  %-7s  %s\n", maxIDLen, "--", "-----", "-------", "-----")

	for _, v := range variants {
		seats := fmt.Sprintf("%d", v.MinPlayers)
		if v.MaxPlayers != v.MinPlayers {
			seats = fmt.Sprintf("%d-%d", v.MinPlayers, v.MaxPlayers)
		}
		games := "-"
		if st, ok := stats[v.ID]; ok {
			games = fmt.Sprintf("%d (best %d)", st.GamesCount, st.HighScore)
		}
		fmt.Printf("  %-*s  %-18s  %-7s  %s\n", maxIDLen, v.ID, v.Title, seats, games)
	}

	fmt.Println()
	fmt.Println("Run 'yatzy play <id>' to play a variant.")
}
