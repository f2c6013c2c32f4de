package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bouncybet/internal/progress"
	"github.com/vovakirdan/bouncybet/internal/storage"
)

var flagKeepHistory bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the starting balance",
	Long: `Forget a player's saved coins and high score so the next game starts
from the default balance. Round history is cleared too unless
--keep-history is given.

Examples:
  bouncybet reset
  bouncybet reset --player alice --keep-history`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagKeepHistory, "keep-history", false, "Keep recorded rounds")
}

func runReset(cmd *cobra.Command, _ []string) {
	logger, err := stderrLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening player database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.PlayerRepository(flagPlayer, logger).Reset(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error resetting player: %v\n", err)
		os.Exit(1)
	}
	if !flagKeepHistory {
		if err := store.ClearRounds(ctx, flagPlayer); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing rounds: %v\n", err)
			os.Exit(1)
		}
	}

	def := progress.Default()
	logger.Info("player reset", "player", flagPlayer, "coins", def.Coins, "keepHistory", flagKeepHistory)
	fmt.Printf("Player %s now has %d coins.\n", flagPlayer, def.Coins)
}
