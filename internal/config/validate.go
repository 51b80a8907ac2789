package config

import "fmt"

var achievementMetrics = map[Metric]bool{
	MetricMoney:         true,
	MetricClicks:        true,
	MetricAuctions:      true,
	MetricRareItems:     true,
	MetricEpicItems:     true,
	MetricMythicItems:   true,
	MetricInvestments:   true,
	MetricBusinesses:    true,
	MetricAllBusinesses: true,
	MetricPrestiges:     true,
}

var dailyMetrics = map[Metric]bool{
	MetricDailyClicks:     true,
	MetricDailyMoney:      true,
	MetricDailyAuctions:   true,
	MetricDailyInvestment: true,
	MetricDailyUpgrades:   true,
	MetricDailyTrades:     true,
}

var weeklyMetrics = map[Metric]bool{
	MetricWeeklyMoney:    true,
	MetricWeeklyClicks:   true,
	MetricWeeklyAuctions: true,
}

// Validate checks all catalogs for internal consistency. A failure here
// is a configuration authoring error, not a runtime condition.
func (c *GameConfig) Validate() error {
	if c.Economy.BaseClickPower <= 0 {
		return fmt.Errorf("economy: base_click_power must be positive, got %g", c.Economy.BaseClickPower)
	}
	if c.Economy.StartingMoney < 0 {
		return fmt.Errorf("economy: starting_money must be non-negative, got %g", c.Economy.StartingMoney)
	}
	if c.Economy.XPPerClick < 0 {
		return fmt.Errorf("economy: xp_per_click must be non-negative, got %g", c.Economy.XPPerClick)
	}

	if c.Prestige.MinLevel < 1 {
		return fmt.Errorf("prestige: min_level must be at least 1, got %d", c.Prestige.MinLevel)
	}
	if c.Prestige.BonusIncrement <= 0 {
		return fmt.Errorf("prestige: bonus_increment must be positive, got %g", c.Prestige.BonusIncrement)
	}

	if c.Auction.IntervalMinutes <= 0 {
		return fmt.Errorf("auction: interval_minutes must be positive, got %d", c.Auction.IntervalMinutes)
	}
	if c.Auction.ItemCount <= 0 {
		return fmt.Errorf("auction: item_count must be positive, got %d", c.Auction.ItemCount)
	}
	if c.Auction.TimerSeconds <= 0 {
		return fmt.Errorf("auction: timer_seconds must be positive, got %d", c.Auction.TimerSeconds)
	}
	if c.Auction.RivalChance < 0 || c.Auction.RivalChance > 1 {
		return fmt.Errorf("auction: rival_chance must be in [0,1], got %g", c.Auction.RivalChance)
	}
	if c.Auction.RivalRaise < 0 {
		return fmt.Errorf("auction: rival_raise must be non-negative, got %g", c.Auction.RivalRaise)
	}

	if err := c.validateLevels(); err != nil {
		return err
	}
	if err := c.validateBusinesses(); err != nil {
		return err
	}
	if err := c.validateRarities(); err != nil {
		return err
	}
	if err := c.validateAchievements(); err != nil {
		return err
	}
	if err := c.validateChallenges(); err != nil {
		return err
	}
	return c.validateEvents()
}

func (c *GameConfig) validateBusinesses() error {
	if len(c.Businesses) == 0 {
		return fmt.Errorf("businesses: catalog is empty")
	}
	maxLevel := c.Levels[len(c.Levels)-1].Level
	seen := make(map[string]bool, len(c.Businesses))
	for _, b := range c.Businesses {
		if b.ID == "" {
			return fmt.Errorf("businesses: %q has empty id", b.Name)
		}
		if seen[b.ID] {
			return fmt.Errorf("businesses: duplicate id %q", b.ID)
		}
		seen[b.ID] = true
		if b.BaseCost <= 0 {
			return fmt.Errorf("business %s: base_cost must be positive, got %g", b.ID, b.BaseCost)
		}
		if b.CostMultiplier <= 1 {
			return fmt.Errorf("business %s: cost_multiplier must exceed 1, got %g", b.ID, b.CostMultiplier)
		}
		if b.BaseIncome < 0 {
			return fmt.Errorf("business %s: base_income must be non-negative, got %g", b.ID, b.BaseIncome)
		}
		if b.UnlockLevel < 1 || b.UnlockLevel > maxLevel {
			return fmt.Errorf("business %s: unlock_level %d outside level table 1..%d", b.ID, b.UnlockLevel, maxLevel)
		}
	}
	return nil
}

func (c *GameConfig) validateLevels() error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("levels: table is empty")
	}
	for i, l := range c.Levels {
		if l.Level != i+1 {
			return fmt.Errorf("levels: entry %d has level %d, want contiguous numbering from 1", i, l.Level)
		}
		if i > 0 && l.XPRequired <= c.Levels[i-1].XPRequired {
			return fmt.Errorf("levels: level %d xp_required %g does not exceed level %d", l.Level, l.XPRequired, l.Level-1)
		}
		if l.ClickBonus <= 0 || l.IncomeBonus <= 0 {
			return fmt.Errorf("levels: level %d bonuses must be positive", l.Level)
		}
	}
	if c.Levels[0].XPRequired != 0 {
		return fmt.Errorf("levels: level 1 must require 0 xp, got %g", c.Levels[0].XPRequired)
	}
	return nil
}

func (c *GameConfig) validateRarities() error {
	if len(c.Rarities) == 0 {
		return fmt.Errorf("rarities: table is empty")
	}
	seen := make(map[string]bool, len(c.Rarities))
	for _, r := range c.Rarities {
		if r.ID == "" {
			return fmt.Errorf("rarities: %q has empty id", r.Name)
		}
		if seen[r.ID] {
			return fmt.Errorf("rarities: duplicate id %q", r.ID)
		}
		seen[r.ID] = true
		if r.Weight <= 0 {
			return fmt.Errorf("rarity %s: weight must be positive, got %g", r.ID, r.Weight)
		}
		if r.BidFloor <= 0 {
			return fmt.Errorf("rarity %s: bid_floor must be positive, got %g", r.ID, r.BidFloor)
		}
		if len(r.ItemNames) == 0 {
			return fmt.Errorf("rarity %s: item_names is empty", r.ID)
		}
	}
	return nil
}

func (c *GameConfig) validateAchievements() error {
	seen := make(map[string]bool, len(c.Achievements))
	for _, a := range c.Achievements {
		if a.ID == "" {
			return fmt.Errorf("achievements: %q has empty id", a.Name)
		}
		if seen[a.ID] {
			return fmt.Errorf("achievements: duplicate id %q", a.ID)
		}
		seen[a.ID] = true
		if !achievementMetrics[a.Metric] {
			return fmt.Errorf("achievement %s: unknown metric %q", a.ID, a.Metric)
		}
		if a.Target <= 0 {
			return fmt.Errorf("achievement %s: target must be positive, got %g", a.ID, a.Target)
		}
	}
	return nil
}

func (c *GameConfig) validateChallenges() error {
	seen := make(map[string]bool, len(c.DailyChallenges)+len(c.WeeklyChallenges))
	for _, ch := range c.DailyChallenges {
		if ch.ID == "" || seen[ch.ID] {
			return fmt.Errorf("daily_challenges: empty or duplicate id %q", ch.ID)
		}
		seen[ch.ID] = true
		if !dailyMetrics[ch.Metric] {
			return fmt.Errorf("daily challenge %s: unknown metric %q", ch.ID, ch.Metric)
		}
		if ch.Target <= 0 {
			return fmt.Errorf("daily challenge %s: target must be positive, got %g", ch.ID, ch.Target)
		}
	}
	for _, ch := range c.WeeklyChallenges {
		if ch.ID == "" || seen[ch.ID] {
			return fmt.Errorf("weekly_challenges: empty or duplicate id %q", ch.ID)
		}
		seen[ch.ID] = true
		if !weeklyMetrics[ch.Metric] {
			return fmt.Errorf("weekly challenge %s: unknown metric %q", ch.ID, ch.Metric)
		}
		if ch.Target <= 0 {
			return fmt.Errorf("weekly challenge %s: target must be positive, got %g", ch.ID, ch.Target)
		}
	}
	if c.Challenges.DailyActive < 0 || c.Challenges.DailyActive > len(c.DailyChallenges) {
		return fmt.Errorf("challenges: daily_active %d outside catalog of %d", c.Challenges.DailyActive, len(c.DailyChallenges))
	}
	if c.Challenges.WeeklyActive < 0 || c.Challenges.WeeklyActive > len(c.WeeklyChallenges) {
		return fmt.Errorf("challenges: weekly_active %d outside catalog of %d", c.Challenges.WeeklyActive, len(c.WeeklyChallenges))
	}
	return nil
}

func (c *GameConfig) validateEvents() error {
	seen := make(map[string]bool, len(c.Events))
	for _, e := range c.Events {
		if e.ID == "" || seen[e.ID] {
			return fmt.Errorf("events: empty or duplicate id %q", e.ID)
		}
		seen[e.ID] = true
		if e.Chance < 0 || e.Chance > 1 {
			return fmt.Errorf("event %s: chance must be in [0,1], got %g", e.ID, e.Chance)
		}
		if e.Effect.Multiplier != 0 && e.Effect.DurationSeconds <= 0 {
			return fmt.Errorf("event %s: timed multiplier requires positive duration_seconds", e.ID)
		}
		if e.Effect.Multiplier < 0 {
			return fmt.Errorf("event %s: multiplier must be non-negative, got %g", e.ID, e.Effect.Multiplier)
		}
		switch e.Kind {
		case EventPositive, EventNegative, EventNeutral:
		default:
			return fmt.Errorf("event %s: unknown kind %q", e.ID, e.Kind)
		}
	}
	return nil
}
