package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tycoon/internal/platform/tui"
	"github.com/vovakirdan/tui-tycoon/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics for a profile",
	Long: `Display progression and auction statistics for a saved profile.

Examples:
  tycoon stats
  tycoon stats --profile alice`,
	Run: runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	snap, err := store.LoadProfile(flagProfile)
	if errors.Is(err, storage.ErrNoProfile) {
		fmt.Printf("No saved profile %q.\n", flagProfile)
		fmt.Println()
		fmt.Printf("Play 'tycoon play --profile %s' to start one.\n", flagProfile)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Profile %s\n", flagProfile)
	fmt.Println()
	fmt.Printf("  Level       %d (%s)\n", snap.Level, snap.LevelName)
	fmt.Printf("  Money       %s\n", tui.FormatMoney(snap.Money))
	fmt.Printf("  Lifetime    %s\n", tui.FormatMoney(snap.TotalMoneyEarned))
	fmt.Printf("  Clicks      %d\n", snap.Clicks)
	fmt.Printf("  Businesses  %d units\n", snap.TotalInvestments)
	fmt.Printf("  Prestige    x%.1f (%d resets)\n", snap.PrestigeBonus, snap.PrestigeCount)
	fmt.Println()

	fmt.Printf("Auctions: %d won, %s spent\n", snap.AuctionsWon, tui.FormatMoney(snap.TotalSpentOnAuctions))

	byRarity, err := store.WinsByRarity(flagProfile)
	if err == nil && len(byRarity) > 0 {
		for _, rarity := range []string{"common", "uncommon", "rare", "epic", "mythic"} {
			if n := byRarity[rarity]; n > 0 {
				fmt.Printf("  %-10s %d\n", rarity, n)
			}
		}
	}

	wins, err := store.RecentWins(flagProfile, 10)
	if err != nil || len(wins) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Recent wins:")
	for _, w := range wins {
		fmt.Printf("  %-24s %-9s %-10s %s\n",
			w.ItemName, w.Rarity, tui.FormatMoney(w.Amount), w.CreatedAt.Format("2006-01-02 15:04"))
	}
}
