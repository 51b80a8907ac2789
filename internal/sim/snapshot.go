package sim

import "sort"

// AuctionItem is one lot in the active auction round. It is a value
// object: the engine hands out copies, and the slice in a Snapshot is
// detached from the live round.
type AuctionItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Rarity     string  `json:"rarity"`
	RarityName string  `json:"rarityName"`
	CurrentBid float64 `json:"currentBid"`
	XPReward   float64 `json:"xpReward"`
}

// WonItem records one item the player won at round resolution.
type WonItem struct {
	ItemID string  `json:"itemId"`
	Name   string  `json:"name"`
	Rarity string  `json:"rarity"`
	Amount float64 `json:"amount"`
	XP     float64 `json:"xp"`
}

// RoundResult summarizes the most recently resolved auction round. It is
// kept until the next round starts so the presentation layer can show and
// record outcomes exactly once, keyed by Round.
type RoundResult struct {
	Round int64     `json:"round"`
	Won   []WonItem `json:"won"`
}

// EventView describes the currently active random event.
type EventView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Kind        string  `json:"kind"`
	XP          float64 `json:"xp"`
	Money       float64 `json:"money"`
	Multiplier  float64 `json:"multiplier"`
	Duration    int     `json:"duration"`
}

// Snapshot is an immutable copy of the full player state. It is reissued
// after every mutation; readers never observe a partially-updated state.
// The JSON form is also the persistence format: every monotonic counter
// round-trips verbatim, so achievements and challenges cannot re-grant
// after a reload.
type Snapshot struct {
	Clock int64 `json:"clock"`

	Money            float64 `json:"money"`
	TotalMoneyEarned float64 `json:"totalMoneyEarned"`
	Clicks           int64   `json:"clicks"`
	ClickPower       float64 `json:"clickPower"`
	EarnPerClick     float64 `json:"earnPerClick"`
	PassiveIncome    float64 `json:"passiveIncome"`

	Level           int     `json:"level"`
	LevelName       string  `json:"levelName"`
	TotalXPEarned   float64 `json:"totalXpEarned"`
	PrestigeCount   int     `json:"prestigeCount"`
	PrestigeBonus   float64 `json:"prestigeBonus"`
	MoneyMultiplier float64 `json:"moneyMultiplier"`

	Businesses       map[string]int `json:"businesses"`
	TotalInvestments int64          `json:"totalInvestments"`

	AuctionRoundActive   bool               `json:"auctionRoundActive"`
	AuctionItems         []AuctionItem      `json:"auctionItems"`
	AuctionTimer         int                `json:"auctionTimer"`
	NextAuctionTime      int64              `json:"nextAuctionTime"`
	PlayerBids           map[string]float64 `json:"playerBids"`
	AuctionRound         int64              `json:"auctionRound"`
	AuctionsWon          int64              `json:"auctionsWon"`
	RareItemsWon         int64              `json:"rareItemsWon"`
	EpicItemsWon         int64              `json:"epicItemsWon"`
	MythicItemsWon       int64              `json:"mythicItemsWon"`
	TotalSpentOnAuctions float64            `json:"totalSpentOnAuctions"`
	LastRound            *RoundResult       `json:"lastRound,omitempty"`

	UnlockedAchievements    []string        `json:"unlockedAchievements"`
	ActiveDailyChallenges   []string        `json:"activeDailyChallenges"`
	ActiveWeeklyChallenges  []string        `json:"activeWeeklyChallenges"`
	DailyChallengeProgress  map[string]bool `json:"dailyChallengeProgress"`
	WeeklyChallengeProgress map[string]bool `json:"weeklyChallengeProgress"`
	LastDailyReset          int64           `json:"lastDailyReset"`
	LastWeeklyReset         int64           `json:"lastWeeklyReset"`

	DailyClicks     int64   `json:"dailyClicks"`
	DailyMoney      float64 `json:"dailyMoney"`
	DailyAuctions   int64   `json:"dailyAuctions"`
	DailyInvestment float64 `json:"dailyInvestment"`
	DailyUpgrades   int64   `json:"dailyUpgrades"`
	DailyTrades     int64   `json:"dailyTrades"`
	WeeklyClicks    int64   `json:"weeklyClicks"`
	WeeklyMoney     float64 `json:"weeklyMoney"`
	WeeklyAuctions  int64   `json:"weeklyAuctions"`

	ActiveEvent  *EventView `json:"activeEvent,omitempty"`
	EventEndTime int64      `json:"eventEndTime,omitempty"`
}

// CommittedBids returns the sum of the player's bids in the active round.
func (s Snapshot) CommittedBids() float64 {
	var total float64
	for _, amount := range s.PlayerBids {
		total += amount
	}
	return total
}

// AvailableBalance returns money net of committed auction bids.
func (s Snapshot) AvailableBalance() float64 {
	return s.Money - s.CommittedBids()
}

// snapshotLocked builds a Snapshot from the live state. Callers must hold mu.
func (e *Engine) snapshotLocked() Snapshot {
	level := e.cfg.LevelFor(e.level)

	businesses := make(map[string]int, len(e.businesses))
	for id, n := range e.businesses {
		businesses[id] = n
	}
	bids := make(map[string]float64, len(e.playerBids))
	for id, amount := range e.playerBids {
		bids[id] = amount
	}
	items := make([]AuctionItem, len(e.auctionItems))
	copy(items, e.auctionItems)

	unlocked := make([]string, 0, len(e.unlocked))
	for id := range e.unlocked {
		unlocked = append(unlocked, id)
	}
	sort.Strings(unlocked)

	dailyDone := make(map[string]bool, len(e.dailyDone))
	for id, done := range e.dailyDone {
		dailyDone[id] = done
	}
	weeklyDone := make(map[string]bool, len(e.weeklyDone))
	for id, done := range e.weeklyDone {
		weeklyDone[id] = done
	}

	var lastRound *RoundResult
	if e.lastRound != nil {
		won := make([]WonItem, len(e.lastRound.Won))
		copy(won, e.lastRound.Won)
		lastRound = &RoundResult{Round: e.lastRound.Round, Won: won}
	}

	var eventView *EventView
	if e.activeEvent != nil {
		ev := *e.activeEvent
		eventView = &ev
	}

	return Snapshot{
		Clock: e.clock,

		Money:            e.money,
		TotalMoneyEarned: e.totalMoneyEarned,
		Clicks:           e.clicks,
		ClickPower:       e.clickPower,
		EarnPerClick:     ClickYield(e.clickPower, level.ClickBonus, e.prestigeBonus, e.moneyMultiplier),
		PassiveIncome:    e.passiveIncome,

		Level:           e.level,
		LevelName:       level.Name,
		TotalXPEarned:   e.totalXPEarned,
		PrestigeCount:   e.prestigeCount,
		PrestigeBonus:   e.prestigeBonus,
		MoneyMultiplier: e.moneyMultiplier,

		Businesses:       businesses,
		TotalInvestments: e.totalInvestments,

		AuctionRoundActive:   e.auctionActive,
		AuctionItems:         items,
		AuctionTimer:         e.auctionTimer,
		NextAuctionTime:      e.nextAuctionTime,
		PlayerBids:           bids,
		AuctionRound:         e.roundSeq,
		AuctionsWon:          e.auctionsWon,
		RareItemsWon:         e.rareItemsWon,
		EpicItemsWon:         e.epicItemsWon,
		MythicItemsWon:       e.mythicItemsWon,
		TotalSpentOnAuctions: e.totalSpentOnAuctions,
		LastRound:            lastRound,

		UnlockedAchievements:    unlocked,
		ActiveDailyChallenges:   append([]string(nil), e.activeDaily...),
		ActiveWeeklyChallenges:  append([]string(nil), e.activeWeekly...),
		DailyChallengeProgress:  dailyDone,
		WeeklyChallengeProgress: weeklyDone,
		LastDailyReset:          e.lastDailyReset,
		LastWeeklyReset:         e.lastWeeklyReset,

		DailyClicks:     e.dailyClicks,
		DailyMoney:      e.dailyMoney,
		DailyAuctions:   e.dailyAuctions,
		DailyInvestment: e.dailyInvestment,
		DailyUpgrades:   e.dailyUpgrades,
		DailyTrades:     e.dailyTrades,
		WeeklyClicks:    e.weeklyClicks,
		WeeklyMoney:     e.weeklyMoney,
		WeeklyAuctions:  e.weeklyAuctions,

		ActiveEvent:  eventView,
		EventEndTime: e.eventEnd,
	}
}
