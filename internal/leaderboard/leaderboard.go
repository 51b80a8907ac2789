// Package leaderboard generates the auction leaderboard shown in the
// auction view. Entries other than the player are locally generated
// display data seeded deterministically per profile; there is no remote
// ranking behind them.
package leaderboard

import (
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-tycoon/internal/sim"
)

// Entry is one leaderboard row.
type Entry struct {
	Name       string
	Wins       int64
	RareWins   int64
	TotalSpent float64
	IsPlayer   bool
}

var rivalNames = []string{
	"GoldenGavel", "MogulMax", "BidQueen", "RupeeBaron", "AuctionAce",
	"SilentSniper", "VelvetHammer", "CrownCollector", "LotHunter",
	"MarbleMagnate", "PennyPiranha", "TheAppraiser",
}

// Generate builds a leaderboard of rivals plus the player, sorted by
// wins descending with the earlier name winning ties. The same seed
// always yields the same rival records; rival strength scales with the
// player's own record so the board stays competitive.
func Generate(snap sim.Snapshot, playerName string, seed int64) []Entry {
	rng := rand.New(rand.NewSource(seed))

	playerWins := snap.AuctionsWon
	baseline := playerWins + 3

	entries := make([]Entry, 0, len(rivalNames)+1)
	for _, name := range rivalNames {
		wins := rng.Int63n(2*baseline + 1)
		rare := int64(0)
		if wins > 0 {
			rare = rng.Int63n(wins/2 + 1)
		}
		spent := float64(wins) * (5000 + rng.Float64()*45000)
		entries = append(entries, Entry{
			Name:       name,
			Wins:       wins,
			RareWins:   rare,
			TotalSpent: spent,
		})
	}

	entries = append(entries, Entry{
		Name:       playerName,
		Wins:       playerWins,
		RareWins:   snap.RareItemsWon + snap.EpicItemsWon + snap.MythicItemsWon,
		TotalSpent: snap.TotalSpentOnAuctions,
		IsPlayer:   true,
	})

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Wins != entries[j].Wins {
			return entries[i].Wins > entries[j].Wins
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Rank returns the player's 1-based position in the generated board.
func Rank(entries []Entry) int {
	for i, e := range entries {
		if e.IsPlayer {
			return i + 1
		}
	}
	return len(entries)
}
