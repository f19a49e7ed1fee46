package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-yatzy/internal/games/yatzy"
	"github.com/vovakirdan/tui-yatzy/internal/platform/tui"
	"github.com/vovakirdan/tui-yatzy/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing the specified variant (default: yatzy).

Controls:
  Space/R       - Roll or re-roll
  1-5           - Hold or release a die
  Up/Down/j/k   - Move the category cursor
  Enter         - Score the highlighted category
  Esc/B         - Cancel scoring, close shop, back
  G             - Open the gem shop
  N             - New game (after game over)
  Q/Ctrl+C      - Quit

The first two re-rolls of a turn are free. Later re-rolls cost gems and
every gem spent is subtracted from your total.

Examples:
  yatzy play
  yatzy play yatzy_hotseat --players Ann,Bo,Cy
  yatzy play --config ./my-rules.yaml
  yatzy play --seed 42 --log ./game.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	variantID := yatzy.VariantSolo
	if len(args) == 1 {
		variantID = args[0]
	}

	// Check if variant exists
	if !registry.Exists(variantID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'yatzy list' to see available variants.")
		os.Exit(1)
	}
	variant, err := registry.Lookup(variantID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rules := loadRules()
	setup, err := tui.NewSetup(variant, rules, flagPlayers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	store := openStore()
	logger, closeLog := openEventLog()

	// Run the game
	_, runErr := tui.Run(setup, store, cfg, logger)

	// Close resources before potential exit
	closeLog()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
