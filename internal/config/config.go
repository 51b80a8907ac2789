// Package config provides YAML-based loading and validation of the static
// game catalogs: businesses, life-stage levels, rarity tiers, achievements,
// challenges, random events and auction tuning. Catalogs are read-only
// data the simulation consumes; they are never mutated at runtime.
package config

// GameConfig is the root configuration object for a tycoon session.
type GameConfig struct {
	Economy          EconomyConfig   `yaml:"economy"`
	Prestige         PrestigeConfig  `yaml:"prestige"`
	Auction          AuctionConfig   `yaml:"auction"`
	Challenges       ChallengeTuning `yaml:"challenges"`
	Businesses       []Business      `yaml:"businesses"`
	Levels           []LifeLevel     `yaml:"levels"`
	Rarities         []Rarity        `yaml:"rarities"`
	Achievements     []Achievement   `yaml:"achievements"`
	DailyChallenges  []Challenge     `yaml:"daily_challenges"`
	WeeklyChallenges []Challenge     `yaml:"weekly_challenges"`
	Events           []RandomEvent   `yaml:"events"`
}

// EconomyConfig defines baseline economic parameters.
type EconomyConfig struct {
	StartingMoney  float64 `yaml:"starting_money"`
	BaseClickPower float64 `yaml:"base_click_power"`
	XPPerClick     float64 `yaml:"xp_per_click"`
}

// PrestigeConfig defines eligibility and payout for a prestige reset.
type PrestigeConfig struct {
	MinLevel         int     `yaml:"min_level"`
	MinLifetimeMoney float64 `yaml:"min_lifetime_money"`
	BonusIncrement   float64 `yaml:"bonus_increment"`
}

// AuctionConfig defines the tuning constants for auction rounds.
type AuctionConfig struct {
	IntervalMinutes int     `yaml:"interval_minutes"`
	ItemCount       int     `yaml:"item_count"`
	TimerSeconds    int     `yaml:"timer_seconds"`
	RivalChance     float64 `yaml:"rival_chance"` // per item per second
	RivalRaise      float64 `yaml:"rival_raise"`  // fractional raise over the current bid
}

// ChallengeTuning defines how many challenges are drawn per reset cycle.
type ChallengeTuning struct {
	DailyActive  int `yaml:"daily_active"`
	WeeklyActive int `yaml:"weekly_active"`
}

// Business is one purchasable passive income source.
type Business struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	Description    string  `yaml:"description"`
	BaseCost       float64 `yaml:"base_cost"`
	CostMultiplier float64 `yaml:"cost_multiplier"`
	BaseIncome     float64 `yaml:"base_income"` // per unit per second
	PerClick       float64 `yaml:"per_click"`   // added to click power per unit owned
	UnlockLevel    int     `yaml:"unlock_level"`
}

// LifeLevel is one life-stage level of the experience curve.
type LifeLevel struct {
	Level       int     `yaml:"level"`
	Name        string  `yaml:"name"`
	XPRequired  float64 `yaml:"xp_required"`
	ClickBonus  float64 `yaml:"click_bonus"`
	IncomeBonus float64 `yaml:"income_bonus"`
}

// Rarity is one ordered auction item tier.
type Rarity struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Weight    float64  `yaml:"weight"`
	BidFloor  float64  `yaml:"bid_floor"`
	XPReward  float64  `yaml:"xp_reward"`
	ItemNames []string `yaml:"item_names"`
}

// Metric identifies the progress quantity an achievement or challenge
// tracks. The sets for achievements and daily/weekly challenges are
// closed; Validate rejects anything outside them.
type Metric string

// Lifetime achievement metrics.
const (
	MetricMoney         Metric = "money"
	MetricClicks        Metric = "clicks"
	MetricAuctions      Metric = "auctions"
	MetricRareItems     Metric = "rare_items"
	MetricEpicItems     Metric = "epic_items"
	MetricMythicItems   Metric = "mythic_items"
	MetricInvestments   Metric = "investments"
	MetricBusinesses    Metric = "businesses"     // distinct business types owned
	MetricAllBusinesses Metric = "all_businesses" // every business type owned
	MetricPrestiges     Metric = "prestiges"
)

// Daily challenge metrics, reset at day boundaries.
const (
	MetricDailyClicks     Metric = "daily_clicks"
	MetricDailyMoney      Metric = "daily_money"
	MetricDailyAuctions   Metric = "daily_auctions"
	MetricDailyInvestment Metric = "daily_investment"
	MetricDailyUpgrades   Metric = "daily_upgrades"
	MetricDailyTrades     Metric = "daily_trades"
)

// Weekly challenge metrics, reset at week boundaries.
const (
	MetricWeeklyMoney    Metric = "weekly_money"
	MetricWeeklyClicks   Metric = "weekly_clicks"
	MetricWeeklyAuctions Metric = "weekly_auctions"
)

// Reward is what completing an achievement or challenge grants.
type Reward struct {
	XP    float64 `yaml:"xp"`
	Money float64 `yaml:"money"`
}

// Achievement is one row of the fixed achievement catalog.
type Achievement struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Metric      Metric  `yaml:"metric"`
	Target      float64 `yaml:"target"`
	Reward      Reward  `yaml:"reward"`
}

// Challenge is one row of the daily or weekly challenge catalog.
type Challenge struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Metric      Metric  `yaml:"metric"`
	Target      float64 `yaml:"target"`
	Reward      Reward  `yaml:"reward"`
}

// EventKind classifies a random event for presentation purposes.
type EventKind string

const (
	EventPositive EventKind = "positive"
	EventNegative EventKind = "negative"
	EventNeutral  EventKind = "neutral"
)

// EventEffect is the payload a random event applies when it fires.
// XP and Money are instant grants. Multiplier, when non-zero, replaces
// the money multiplier for DurationSeconds of simulated time.
type EventEffect struct {
	XP              float64 `yaml:"xp"`
	Money           float64 `yaml:"money"`
	Multiplier      float64 `yaml:"multiplier"`
	DurationSeconds int     `yaml:"duration_seconds"`
}

// RandomEvent is one row of the random event catalog. Chance is the
// activation probability per simulated second; events are rolled in
// catalog order and the first hit wins.
type RandomEvent struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Kind        EventKind   `yaml:"kind"`
	Chance      float64     `yaml:"chance"`
	Effect      EventEffect `yaml:"effect"`
}

// BusinessByID returns the business with the given id, if present.
func (c *GameConfig) BusinessByID(id string) (Business, bool) {
	for _, b := range c.Businesses {
		if b.ID == id {
			return b, true
		}
	}
	return Business{}, false
}

// LevelFor returns the life-stage row for the given level number.
// Levels beyond the table clamp to the last row.
func (c *GameConfig) LevelFor(level int) LifeLevel {
	for _, l := range c.Levels {
		if l.Level == level {
			return l
		}
	}
	return c.Levels[len(c.Levels)-1]
}

// NextLevel returns the life-stage row after the given level, or false
// when the level is already the last one.
func (c *GameConfig) NextLevel(level int) (LifeLevel, bool) {
	for _, l := range c.Levels {
		if l.Level == level+1 {
			return l, true
		}
	}
	return LifeLevel{}, false
}

// RarityByID returns the rarity tier with the given id, if present.
func (c *GameConfig) RarityByID(id string) (Rarity, bool) {
	for _, r := range c.Rarities {
		if r.ID == id {
			return r, true
		}
	}
	return Rarity{}, false
}
