package sim

import "github.com/vovakirdan/tui-tycoon/internal/config"

// Achievement and challenge evaluation. Both follow the grant-once
// contract: a reward is issued exactly when the id first enters the
// unlocked set or completion map, so re-running the evaluator against
// unchanged state is a no-op. Rewards can themselves move metrics
// (money, xp), so evaluation loops until a pass unlocks nothing.

// evaluateLocked re-derives unlock and completion status against the
// static catalogs.
func (e *Engine) evaluateLocked() {
	for {
		changed := e.evaluateAchievementsLocked()
		if e.evaluateChallengesLocked() {
			changed = true
		}
		if !changed {
			return
		}
	}
}

func (e *Engine) evaluateAchievementsLocked() bool {
	changed := false
	for _, a := range e.cfg.Achievements {
		if e.unlocked[a.ID] {
			continue
		}
		if e.metricLocked(a.Metric) < a.Target {
			continue
		}
		e.unlocked[a.ID] = true
		e.grantLocked(a.Reward)
		changed = true
	}
	return changed
}

func (e *Engine) evaluateChallengesLocked() bool {
	changed := false
	for _, id := range e.activeDaily {
		if e.dailyDone[id] {
			continue
		}
		ch, ok := e.dailyChallengeByID(id)
		if !ok {
			continue
		}
		if e.metricLocked(ch.Metric) >= ch.Target {
			e.dailyDone[id] = true
			e.grantLocked(ch.Reward)
			changed = true
		}
	}
	for _, id := range e.activeWeekly {
		if e.weeklyDone[id] {
			continue
		}
		ch, ok := e.weeklyChallengeByID(id)
		if !ok {
			continue
		}
		if e.metricLocked(ch.Metric) >= ch.Target {
			e.weeklyDone[id] = true
			e.grantLocked(ch.Reward)
			changed = true
		}
	}
	return changed
}

func (e *Engine) grantLocked(r config.Reward) {
	e.earnLocked(r.Money)
	e.gainXPLocked(r.XP)
}

// metricLocked computes the current value of a progress metric. The
// metric set is closed and validated at config load, so an unknown
// metric here cannot happen at runtime.
func (e *Engine) metricLocked(m config.Metric) float64 {
	switch m {
	case config.MetricMoney:
		return e.totalMoneyEarned
	case config.MetricClicks:
		return float64(e.clicks)
	case config.MetricAuctions:
		return float64(e.auctionsWon)
	case config.MetricRareItems:
		return float64(e.rareItemsWon)
	case config.MetricEpicItems:
		return float64(e.epicItemsWon)
	case config.MetricMythicItems:
		return float64(e.mythicItemsWon)
	case config.MetricInvestments:
		return float64(e.totalInvestments)
	case config.MetricBusinesses, config.MetricAllBusinesses:
		owned := 0
		for _, n := range e.businesses {
			if n > 0 {
				owned++
			}
		}
		return float64(owned)
	case config.MetricPrestiges:
		return float64(e.prestigeCount)
	case config.MetricDailyClicks:
		return float64(e.dailyClicks)
	case config.MetricDailyMoney:
		return e.dailyMoney
	case config.MetricDailyAuctions:
		return float64(e.dailyAuctions)
	case config.MetricDailyInvestment:
		return e.dailyInvestment
	case config.MetricDailyUpgrades:
		return float64(e.dailyUpgrades)
	case config.MetricDailyTrades:
		return float64(e.dailyTrades)
	case config.MetricWeeklyMoney:
		return e.weeklyMoney
	case config.MetricWeeklyClicks:
		return float64(e.weeklyClicks)
	case config.MetricWeeklyAuctions:
		return float64(e.weeklyAuctions)
	}
	return 0
}

func (e *Engine) dailyChallengeByID(id string) (config.Challenge, bool) {
	for _, ch := range e.cfg.DailyChallenges {
		if ch.ID == id {
			return ch, true
		}
	}
	return config.Challenge{}, false
}

func (e *Engine) weeklyChallengeByID(id string) (config.Challenge, bool) {
	for _, ch := range e.cfg.WeeklyChallenges {
		if ch.ID == id {
			return ch, true
		}
	}
	return config.Challenge{}, false
}

// checkResetsLocked rolls the daily and weekly cycles when the clock
// crosses a boundary. Comparing stored indices rather than subtracting
// timestamps makes a multi-day coalesced tick reset exactly once.
func (e *Engine) checkResetsLocked() {
	if day := e.clock / secondsPerDay; day != e.lastDailyReset {
		e.lastDailyReset = day
		e.dailyClicks = 0
		e.dailyMoney = 0
		e.dailyAuctions = 0
		e.dailyInvestment = 0
		e.dailyUpgrades = 0
		e.dailyTrades = 0
		e.drawDailyChallenges()
	}
	if week := e.clock / secondsPerWeek; week != e.lastWeeklyReset {
		e.lastWeeklyReset = week
		e.weeklyClicks = 0
		e.weeklyMoney = 0
		e.weeklyAuctions = 0
		e.drawWeeklyChallenges()
	}
}

// drawDailyChallenges selects a fresh random subset of the daily catalog
// and clears completion state.
func (e *Engine) drawDailyChallenges() {
	e.activeDaily = drawChallenges(e.rng.Perm(len(e.cfg.DailyChallenges)), e.cfg.DailyChallenges, e.cfg.Challenges.DailyActive)
	e.dailyDone = make(map[string]bool, len(e.activeDaily))
	for _, id := range e.activeDaily {
		e.dailyDone[id] = false
	}
}

func (e *Engine) drawWeeklyChallenges() {
	e.activeWeekly = drawChallenges(e.rng.Perm(len(e.cfg.WeeklyChallenges)), e.cfg.WeeklyChallenges, e.cfg.Challenges.WeeklyActive)
	e.weeklyDone = make(map[string]bool, len(e.activeWeekly))
	for _, id := range e.activeWeekly {
		e.weeklyDone[id] = false
	}
}

func drawChallenges(perm []int, catalog []config.Challenge, count int) []string {
	if count > len(catalog) {
		count = len(catalog)
	}
	ids := make([]string, 0, count)
	for _, idx := range perm[:count] {
		ids = append(ids, catalog[idx].ID)
	}
	return ids
}
