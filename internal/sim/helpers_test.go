package sim

import "github.com/vovakirdan/tui-tycoon/internal/config"

// testClock is a fixed starting instant well away from a day boundary
// (1000000 % 86400 = 49600).
const testClock = 1_000_000

// testConfig returns a minimal deterministic catalog: no random events,
// no rival bidders, no achievements or challenges. Tests that exercise
// those systems add them explicitly.
func testConfig() *config.GameConfig {
	return &config.GameConfig{
		Economy: config.EconomyConfig{
			StartingMoney:  0,
			BaseClickPower: 1,
			XPPerClick:     1,
		},
		Prestige: config.PrestigeConfig{
			MinLevel:         2,
			MinLifetimeMoney: 100,
			BonusIncrement:   0.5,
		},
		Auction: config.AuctionConfig{
			IntervalMinutes: 5,
			ItemCount:       3,
			TimerSeconds:    60,
			RivalChance:     0,
			RivalRaise:      0.15,
		},
		Businesses: []config.Business{
			{ID: "lemonade", Name: "Lemonade Stand", BaseCost: 100, CostMultiplier: 1.15, BaseIncome: 1, PerClick: 0.1, UnlockLevel: 1},
			{ID: "cafe", Name: "Cafe", BaseCost: 1000, CostMultiplier: 1.2, BaseIncome: 10, PerClick: 0.5, UnlockLevel: 3},
		},
		Levels: []config.LifeLevel{
			{Level: 1, Name: "Student", XPRequired: 0, ClickBonus: 1, IncomeBonus: 1},
			{Level: 2, Name: "Intern", XPRequired: 10, ClickBonus: 1.5, IncomeBonus: 1.5},
			{Level: 3, Name: "Manager", XPRequired: 50, ClickBonus: 2, IncomeBonus: 2},
		},
		Rarities: []config.Rarity{
			{ID: "common", Name: "Common", Weight: 1, BidFloor: 100, XPReward: 5, ItemNames: []string{"Old Coin"}},
		},
	}
}

func newTestEngine(cfg *config.GameConfig) *Engine {
	return New(cfg, Options{Seed: 42, Clock: testClock})
}
