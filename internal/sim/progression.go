package sim

// gainXPLocked adds experience and applies every level-up the new total
// crosses, in ascending order. Several thresholds crossed in one grant
// are all applied; none are skipped.
func (e *Engine) gainXPLocked(xp float64) {
	if xp <= 0 {
		return
	}
	e.totalXPEarned += xp
	leveled := false
	for {
		next, ok := e.cfg.NextLevel(e.level)
		if !ok || e.totalXPEarned < next.XPRequired {
			break
		}
		e.level = next.Level
		leveled = true
	}
	if leveled {
		e.refreshDerivedLocked()
	}
}

// Prestige performs a deliberate progress reset: level, experience,
// money and holdings return to their initial values in exchange for a
// permanent, count-scaled bonus. Lifetime counters, unlocked
// achievements and auction win totals survive. Any active auction round
// is cancelled with no resolution, and a running event ends.
func (e *Engine) Prestige() (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.cfg.Prestige
	if e.level < p.MinLevel || e.totalMoneyEarned < p.MinLifetimeMoney {
		return e.snapshotLocked(), ErrPrestigeNotEligible
	}

	e.prestigeCount++
	e.prestigeBonus += p.BonusIncrement

	e.level = 1
	e.totalXPEarned = 0
	e.money = e.cfg.Economy.StartingMoney
	e.businesses = make(map[string]int)
	e.moneyMultiplier = 1
	e.activeEvent = nil
	e.eventEnd = 0

	e.auctionActive = false
	e.auctionItems = nil
	e.auctionTimer = 0
	e.playerBids = make(map[string]float64)
	e.nextAuctionTime = e.clock

	e.refreshDerivedLocked()
	e.evaluateLocked()
	return e.snapshotLocked(), nil
}
