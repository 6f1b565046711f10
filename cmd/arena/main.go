// arena is a terminal arena shooter with a physics-driven world, escalating
// difficulty, and an observation interface suited for agent training.
//
// Usage:
//
//	arena list              - List available control styles
//	arena play <game>       - Play a game variant
//	arena menu              - Start menu to pick a variant interactively
//	arena serve             - Start SSH server for remote play
//	arena scores <game>     - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arena/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game variants to register them
	_ "github.com/polygonkind/arena/internal/games/arena"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Arena - A terminal arena shooter",
	Long: `Arena is a terminal arena shooter. Pilot a ship through waves of
enemies spawned by fabricators, survive escalating difficulty, and face
the boss when the odds line up.

Available commands:
  list     - Show available control styles
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and best runs

Examples:
  arena list
  arena play arena
  arena play arena_pad --difficulty hard
  arena menu
  arena serve --ssh :2222
  arena scores arena`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arena/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
