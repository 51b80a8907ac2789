package sim

import (
	"math"

	"github.com/vovakirdan/tui-tycoon/internal/config"
)

// Pure economic formulas. These are the only place cost and rate curves
// are defined; the engine calls them after every mutation that can change
// an input rather than adjusting cached values piecemeal.

// PurchaseCost returns the cost of the next unit of a business when
// owned units are already held. Exponential growth keeps late units from
// snowballing: cost strictly increases with each unit for any
// CostMultiplier above 1.
func PurchaseCost(b config.Business, owned int) float64 {
	return math.Floor(b.BaseCost * math.Pow(b.CostMultiplier, float64(owned)))
}

// ClickYield returns the money earned by one manual click.
func ClickYield(clickPower, clickBonus, prestigeBonus, moneyMultiplier float64) float64 {
	return clickPower * clickBonus * prestigeBonus * moneyMultiplier
}

// PassiveRate returns the total passive income per second across all
// held businesses, with level, prestige and event multipliers applied.
func PassiveRate(cfg *config.GameConfig, holdings map[string]int, incomeBonus, prestigeBonus, moneyMultiplier float64) float64 {
	var base float64
	for _, b := range cfg.Businesses {
		if n := holdings[b.ID]; n > 0 {
			base += float64(n) * b.BaseIncome
		}
	}
	return base * incomeBonus * prestigeBonus * moneyMultiplier
}

// TotalClickPower returns the base click power plus the per-click bonus
// contributed by every held business unit.
func TotalClickPower(cfg *config.GameConfig, holdings map[string]int) float64 {
	power := cfg.Economy.BaseClickPower
	for _, b := range cfg.Businesses {
		if n := holdings[b.ID]; n > 0 {
			power += float64(n) * b.PerClick
		}
	}
	return power
}
