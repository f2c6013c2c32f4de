package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bouncybet/internal/storage"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent rounds",
	Long: `Display the most recent rounds of a player, newest first.

Examples:
  bouncybet history
  bouncybet history --limit 5 --player alice`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
}

func runHistory(cmd *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening player database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rounds, err := store.RecentRounds(context.Background(), flagPlayer, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent Rounds - %s\n", flagPlayer)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		return
	}

	// Print header
	fmt.Printf("  %-5s  %-6s  %-6s  %-7s  %-6s  %s\n", "#", "Wager", "Score", "Payout", "Coins", "Date")
	fmt.Printf("  %-5s  %-6s  %-6s  %-7s  %-6s  %s\n", "-", "-----", "-----", "------", "-----", "----")

	for _, r := range rounds {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-5d  %-6d  %-6d  %+-7d  %-6d  %s\n", r.ID, r.Wager, r.Score, r.Payout, r.CoinsAfter, dateStr)
	}
}
