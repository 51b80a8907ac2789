package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tycoon/internal/leaderboard"
	"github.com/vovakirdan/tui-tycoon/internal/platform/tui"
	"github.com/vovakirdan/tui-tycoon/internal/storage"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the auction leaderboard",
	Long: `Display the auction leaderboard for a profile: your win record
ranked against the rival collectors you bid against.

Examples:
  tycoon leaderboard
  tycoon leaderboard --profile alice`,
	Run: runLeaderboard,
}

func runLeaderboard(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	snap, err := store.LoadProfile(flagProfile)
	if errors.Is(err, storage.ErrNoProfile) {
		fmt.Printf("No saved profile %q.\n", flagProfile)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		os.Exit(1)
	}

	entries := leaderboard.Generate(snap, flagProfile, flagSeed)

	fmt.Printf("Auction Leaderboard - %s is #%d\n", flagProfile, leaderboard.Rank(entries))
	fmt.Println()
	fmt.Printf("  %-4s  %-18s  %-6s  %-6s  %s\n", "Rank", "Name", "Wins", "Rare+", "Spent")
	fmt.Printf("  %-4s  %-18s  %-6s  %-6s  %s\n", "----", "----", "----", "-----", "-----")
	for i, e := range entries {
		name := e.Name
		if e.IsPlayer {
			name = "* " + name
		}
		fmt.Printf("  %-4d  %-18s  %-6d  %-6d  %s\n", i+1, name, e.Wins, e.RareWins, tui.FormatMoney(e.TotalSpent))
	}
}
