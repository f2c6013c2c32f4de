// bouncybet is a terminal arcade game: bet coins, launch a ball into a field
// of bumpers, rewards and hazards, and collect the points it scores in ten
// seconds.
//
// Usage:
//
//	bouncybet play        - Play in this terminal
//	bouncybet serve       - Start SSH server for remote play
//	bouncybet stats       - Show coins and high score
//	bouncybet history     - Show recent rounds
//	bouncybet reset       - Restore the starting balance
//	bouncybet config      - Print the effective physics tuning
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible fields
//	--db <path>        - Set database path (default: ~/.bouncybet/bouncybet.db)
//	--player <id>      - Player whose progress is used (default: local)
//	--config <path>    - Custom tuning YAML
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagPlayer   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bouncybet",
	Short: "Bouncy Bet - bet coins on a bouncing ball",
	Long: `Bouncy Bet is a terminal arcade game. Bet 10 coins, pull back the
launcher and let the ball bounce around a field of objects for 10 seconds:

  O  bumper   +5 every hit
  $  reward   +50, then gone
  X  hazard   -50, then gone

Your score is paid back into your coin balance at the end of the round.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  stats    - Show coins and high score
  history  - Show recent rounds
  reset    - Restore the starting balance
  config   - Print the effective physics tuning

Examples:
  bouncybet play
  bouncybet play --seed 42
  bouncybet serve --ssh :2222
  bouncybet history --limit 5`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bouncybet/bouncybet.db", "Path to player database")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "local", "Player id to load and save progress for")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(configCmd)
}
