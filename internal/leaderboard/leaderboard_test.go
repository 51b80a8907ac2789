package leaderboard

import (
	"reflect"
	"sort"
	"testing"

	"github.com/vovakirdan/tui-tycoon/internal/sim"
)

func TestGenerateDeterministic(t *testing.T) {
	snap := sim.Snapshot{AuctionsWon: 5, RareItemsWon: 2, TotalSpentOnAuctions: 40000}

	a := Generate(snap, "alice", 7)
	b := Generate(snap, "alice", 7)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different boards")
	}
}

func TestGenerateContainsPlayerExactlyOnce(t *testing.T) {
	snap := sim.Snapshot{AuctionsWon: 3, RareItemsWon: 1, TotalSpentOnAuctions: 12000}
	entries := Generate(snap, "alice", 1)

	if len(entries) != len(rivalNames)+1 {
		t.Fatalf("board size: got %d, want %d", len(entries), len(rivalNames)+1)
	}
	players := 0
	for _, e := range entries {
		if e.IsPlayer {
			players++
			if e.Name != "alice" || e.Wins != 3 || e.RareWins != 1 {
				t.Errorf("player row wrong: %+v", e)
			}
		}
	}
	if players != 1 {
		t.Errorf("player rows: got %d, want 1", players)
	}
}

func TestGenerateSortedByWins(t *testing.T) {
	snap := sim.Snapshot{AuctionsWon: 10}
	entries := Generate(snap, "alice", 99)

	sorted := sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Wins > entries[j].Wins
	})
	if !sorted {
		t.Error("board not sorted by wins descending")
	}
}

func TestRank(t *testing.T) {
	entries := []Entry{
		{Name: "a", Wins: 9},
		{Name: "b", Wins: 5, IsPlayer: true},
		{Name: "c", Wins: 1},
	}
	if got := Rank(entries); got != 2 {
		t.Errorf("rank: got %d, want 2", got)
	}
}
