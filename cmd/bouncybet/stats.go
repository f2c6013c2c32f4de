package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bouncybet/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show coins and high score",
	Long: `Display the saved coin balance and high score of a player, along with
totals over every recorded round.

Examples:
  bouncybet stats
  bouncybet stats --player alice`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(cmd *cobra.Command, _ []string) {
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
	state := store.PlayerRepository(flagPlayer, logger).Load(ctx)

	stats, err := store.PlayerRoundStats(ctx, flagPlayer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving round stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Player - %s\n", flagPlayer)
	fmt.Println()
	fmt.Printf("  %-12s  %d\n", "Coins", state.Coins)
	fmt.Printf("  %-12s  %d\n", "High score", state.HighScore)
	fmt.Println()

	if stats.RoundsCount == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bouncybet play' to bet your first coins!")
		return
	}

	fmt.Printf("  %-12s  %d\n", "Rounds", stats.RoundsCount)
	fmt.Printf("  %-12s  %d\n", "Best round", stats.BestScore)
	fmt.Printf("  %-12s  %.1f\n", "Avg score", stats.AvgScore)
	fmt.Printf("  %-12s  %+d\n", "Paid out", stats.TotalPayout)
}
