package sim

import (
	"testing"

	"github.com/vovakirdan/tui-tycoon/internal/config"
)

func TestTimedEventMultiplierAppliesAndExpires(t *testing.T) {
	cfg := testConfig()
	cfg.Events = []config.RandomEvent{
		{ID: "boom", Name: "Market Boom", Kind: config.EventPositive, Chance: 1,
			Effect: config.EventEffect{Multiplier: 2, DurationSeconds: 30}},
	}
	e := newTestEngine(cfg)

	snap := e.Tick(1)
	if snap.ActiveEvent == nil || snap.ActiveEvent.ID != "boom" {
		t.Fatalf("event did not fire: %+v", snap.ActiveEvent)
	}
	if snap.MoneyMultiplier != 2 {
		t.Errorf("multiplier: got %g, want 2", snap.MoneyMultiplier)
	}

	// Click income is doubled while the event runs.
	snap = e.Click()
	if snap.Money != 2 {
		t.Errorf("click under x2 event: got %g, want 2", snap.Money)
	}

	// The event expires on its end instant, then a new one fires
	// immediately at chance 1.
	snap = e.Tick(30)
	if snap.EventEndTime <= int64(testClock)+31 {
		t.Errorf("expected a fresh event after expiry, end time %d", snap.EventEndTime)
	}
}

func TestInstantEventGrantsOnceAndClears(t *testing.T) {
	cfg := testConfig()
	cfg.Events = []config.RandomEvent{
		{ID: "refund", Name: "Tax Refund", Kind: config.EventPositive, Chance: 1,
			Effect: config.EventEffect{Money: 200}},
	}
	e := newTestEngine(cfg)

	snap := e.Tick(1)
	if snap.Money != 200 {
		t.Errorf("instant grant: got %g, want 200", snap.Money)
	}
	if snap.ActiveEvent == nil {
		t.Fatal("instant event not visible on the tick it fired")
	}
	if snap.MoneyMultiplier != 1 {
		t.Errorf("instant event changed the multiplier: %g", snap.MoneyMultiplier)
	}
}

func TestNegativeEventHalvesIncome(t *testing.T) {
	cfg := testConfig()
	cfg.Economy.StartingMoney = 100
	cfg.Events = []config.RandomEvent{
		{ID: "crash", Name: "Market Crash", Kind: config.EventNegative, Chance: 1,
			Effect: config.EventEffect{Multiplier: 0.5, DurationSeconds: 60}},
	}
	e := newTestEngine(cfg)
	if _, err := e.PurchaseBusiness("lemonade"); err != nil {
		t.Fatalf("purchase failed: %v", err)
	}

	// First second accrues at the pre-crash rate, the next ten at half.
	snap := e.Tick(1)
	if snap.MoneyMultiplier != 0.5 {
		t.Fatalf("crash did not fire: multiplier %g", snap.MoneyMultiplier)
	}
	before := snap.Money
	snap = e.Tick(10)
	if got := snap.Money - before; got != 5 {
		t.Errorf("accrual under x0.5 event: got %g, want 5", got)
	}
}
