package sim

// Random event engine. At most one event is active at a time. Activation
// is rolled per tick against each event's per-second chance, in catalog
// order, and the first hit wins. Instant effects (money, xp) apply on
// activation; a timed multiplier replaces the money multiplier until the
// event's end time on the simulation clock.

// rollEventLocked attempts to activate an event for a step of the given
// length. Called only when no event is active.
func (e *Engine) rollEventLocked(step int64) {
	for _, ev := range e.cfg.Events {
		chance := ev.Chance * float64(step)
		if chance > 1 {
			chance = 1
		}
		if chance <= 0 || e.rng.Float64() >= chance {
			continue
		}

		e.earnLocked(ev.Effect.Money)
		e.gainXPLocked(ev.Effect.XP)

		view := &EventView{
			ID:          ev.ID,
			Name:        ev.Name,
			Description: ev.Description,
			Kind:        string(ev.Kind),
			XP:          ev.Effect.XP,
			Money:       ev.Effect.Money,
			Multiplier:  ev.Effect.Multiplier,
			Duration:    ev.Effect.DurationSeconds,
		}
		e.activeEvent = view
		if ev.Effect.Multiplier != 0 && ev.Effect.DurationSeconds > 0 {
			e.moneyMultiplier = ev.Effect.Multiplier
			e.eventEnd = e.clock + int64(ev.Effect.DurationSeconds)
			e.refreshDerivedLocked()
		} else {
			// Instant-only event: visible until the next tick clears it.
			e.eventEnd = 0
		}
		return
	}
}

// expireEventLocked clears the active event once its end time has
// passed. Instant events (no end time) are cleared on the next tick.
func (e *Engine) expireEventLocked() {
	if e.activeEvent == nil {
		return
	}
	if e.eventEnd == 0 || e.clock >= e.eventEnd {
		timed := e.eventEnd != 0
		e.activeEvent = nil
		e.eventEnd = 0
		if timed {
			e.moneyMultiplier = 1
			e.refreshDerivedLocked()
		}
	}
}
