// yatzy is a terminal Yatzy game with a gem-priced re-roll economy.
//
// Usage:
//
//	yatzy list               - List available variants
//	yatzy play [variant]     - Play a variant (default: yatzy)
//	yatzy menu               - Start menu to pick variants interactively
//	yatzy serve              - Start SSH server for remote play
//	yatzy scores <variant>   - Show best results for a variant
//
// Global flags:
//
//	--fps <rate>      - Set animation tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible dice
//	--db <path>       - Set results database path (default: ~/.yatzy/results.db)
//	--config <path>   - Use a custom rules file
//	--players a,b     - Player names, in turn order
//	--log <path>      - Record game events to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the engine to register its variants
	_ "github.com/vovakirdan/tui-yatzy/internal/games/yatzy"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagPlayers []string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "yatzy",
	Short: "Yatzy - Roll dice in your terminal",
	Long: `Yatzy is a terminal dice game. Roll five dice up to three times for
free, hold the ones you like, and score them in one of fifteen categories.
Extra re-rolls cost gems and every gem spent comes off your total.

Available commands:
  list     - Show all available variants
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View best results

Examples:
  yatzy play
  yatzy play yatzy_hotseat --players Ann,Bo
  yatzy menu
  yatzy serve --ssh :2222
  yatzy scores yatzy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Animation tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.yatzy/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringSliceVar(&flagPlayers, "players", nil, "Player names in turn order")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write game events to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
