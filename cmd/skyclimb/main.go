// skyclimb is an endless vertical platformer for the terminal.
//
// Usage:
//
//	skyclimb play            - Open the menu and climb
//	skyclimb serve           - Start SSH server for remote play
//	skyclimb scores          - Show the best runs
//	skyclimb shop            - Spend coins outside a run
//	skyclimb ghosts          - Preview a ghost population
//	skyclimb config show     - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.skyclimb/skyclimb.db)
//	--config <path>       - Load tuning from a YAML or TOML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--player <name>       - Profile name for preferences and run history
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyclimb/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyclimb",
	Short: "Sky Climb - an endless platformer in your terminal",
	Long: `Sky Climb is an endless vertical platformer for the terminal.
Bounce from platform to platform, collect coins, catch thrust pickups and
see how high you can get before the floor catches up with you.

Available commands:
  play     - Open the menu and climb
  serve    - Start SSH server for remote play
  scores   - View the best runs
  shop     - Buy double jumps and skins
  ghosts   - Preview the ghost markers for a score
  config   - Inspect the configuration

Examples:
  skyclimb play
  skyclimb play --difficulty hard --seed 42
  skyclimb serve --ssh :2222
  skyclimb scores --all
  skyclimb ghosts --last 1200 --png ghosts.png`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.DefaultDBPath(), "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML game config")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", defaultPlayer(), "Profile name")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(ghostsCmd)
	rootCmd.AddCommand(configCmd)
}

func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
