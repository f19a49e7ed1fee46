package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-yatzy/internal/registry"
	"github.com/vovakirdan/tui-yatzy/internal/storage"
)

var (
	flagLimit       int
	flagScorePlayer string
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show best results for a variant",
	Long: `Display the best finished games for the specified variant, or the
recent games of one player across every variant.

Examples:
  yatzy scores yatzy
  yatzy scores yatzy_hotseat --limit 20
  yatzy scores --player Ann
  yatzy scores yatzy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().StringVar(&flagScorePlayer, "player", "", "Show recent games of this player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results of the variant")
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 0 && flagScorePlayer == "" {
		fmt.Fprintln(os.Stderr, "Error: a variant or --player is required")
		fmt.Fprintln(os.Stderr, "Run 'yatzy list' to see available variants.")
		os.Exit(1)
	}

	var variant registry.Variant
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'yatzy list' to see available variants.")
			os.Exit(1)
		}
		variant, _ = registry.Lookup(args[0])
	}
	if flagClear && variant.ID == "" {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a variant")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		err = clearScores(store, variant)
	case flagScorePlayer != "":
		err = showPlayerScores(store, flagScorePlayer)
	default:
		err = showVariantScores(store, variant)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func clearScores(store *storage.Store, variant registry.Variant) error {
	if err := store.ClearResults(variant.ID); err != nil {
		return err
	}
	fmt.Printf("Cleared all results for %s.\n", variant.Title)
	return nil
}

func showPlayerScores(store *storage.Store, player string) error {
	results, err := store.PlayerResults(player, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Recent Games - %s\n", player)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-6s  %-5s  %-5s  %s\n", "Variant", "Score", "Bonus", "Gems", "Date")
	fmt.Printf("  %-16s  %-6s  %-5s  %-5s  %s\n", "-------", "-----", "-----", "----", "----")

	for _, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-6d  %-5d  %-5d  %s\n", r.Variant, r.Score, r.Bonus, r.Penalty, dateStr)
	}
	return nil
}

func showVariantScores(store *storage.Store, variant registry.Variant) error {
	results, err := store.TopResults(variant.ID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Results - %s\n", variant.Title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'yatzy play %s' to set the first result!\n", variant.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-6s  %-5s  %-5s  %s\n", "Rank", "Player", "Score", "Bonus", "Gems", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %-5s  %-5s  %s\n", "----", "------", "-----", "-----", "----", "----")

	for i, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-6d  %-5d  %-5d  %s\n", i+1, r.Player, r.Score, r.Bonus, r.Penalty, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetVariantStats(variant.ID); err == nil {
		fmt.Printf("Games: %d  Best: %d  Average: %.1f  Gems spent: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalPenalty)
	}
	return nil
}
