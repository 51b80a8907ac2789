package sim

import (
	"math"
	"reflect"
	"testing"
)

func TestClickEarnsMoneyAndXP(t *testing.T) {
	e := newTestEngine(testConfig())

	snap := e.Click()
	if snap.Money != 1 {
		t.Errorf("money after one click: got %g, want 1", snap.Money)
	}
	if snap.Clicks != 1 {
		t.Errorf("clicks: got %d, want 1", snap.Clicks)
	}
	if snap.TotalXPEarned != 1 {
		t.Errorf("xp: got %g, want 1", snap.TotalXPEarned)
	}
	if snap.TotalMoneyEarned != 1 {
		t.Errorf("lifetime money: got %g, want 1", snap.TotalMoneyEarned)
	}
}

func TestPurchaseCostCurve(t *testing.T) {
	cfg := testConfig()
	cfg.Economy.StartingMoney = 500
	e := newTestEngine(cfg)

	snap, err := e.PurchaseBusiness("lemonade")
	if err != nil {
		t.Fatalf("first purchase failed: %v", err)
	}
	if snap.Money != 400 {
		t.Errorf("money after first purchase: got %g, want 400", snap.Money)
	}
	if snap.Businesses["lemonade"] != 1 {
		t.Errorf("holdings: got %d, want 1", snap.Businesses["lemonade"])
	}

	// Second unit follows the exponential curve: floor(100 * 1.15) = 115.
	snap, err = e.PurchaseBusiness("lemonade")
	if err != nil {
		t.Fatalf("second purchase failed: %v", err)
	}
	if snap.Money != 400-115 {
		t.Errorf("money after second purchase: got %g, want %g", snap.Money, 400.0-115)
	}
	if snap.TotalInvestments != 2 {
		t.Errorf("investments: got %d, want 2", snap.TotalInvestments)
	}
}

func TestPurchaseErrors(t *testing.T) {
	cfg := testConfig()
	cfg.Economy.StartingMoney = 50
	e := newTestEngine(cfg)
	before := e.Snapshot()

	if _, err := e.PurchaseBusiness("casino"); err != ErrUnknownBusiness {
		t.Errorf("unknown business: got %v, want ErrUnknownBusiness", err)
	}
	if _, err := e.PurchaseBusiness("cafe"); err != ErrInsufficientLevel {
		t.Errorf("locked business: got %v, want ErrInsufficientLevel", err)
	}
	if _, err := e.PurchaseBusiness("lemonade"); err != ErrInsufficientFunds {
		t.Errorf("unaffordable business: got %v, want ErrInsufficientFunds", err)
	}

	after := e.Snapshot()
	if after.Money != before.Money || after.TotalInvestments != before.TotalInvestments {
		t.Errorf("failed purchases mutated state: %+v vs %+v", before, after)
	}
}

func TestPassiveIncomeAccrual(t *testing.T) {
	cfg := testConfig()
	cfg.Economy.StartingMoney = 100
	e := newTestEngine(cfg)

	if _, err := e.PurchaseBusiness("lemonade"); err != nil {
		t.Fatalf("purchase failed: %v", err)
	}

	snap := e.Tick(10)
	if snap.Money != 10 {
		t.Errorf("money after 10s at 1/s: got %g, want 10", snap.Money)
	}
	if snap.Clock != testClock+10 {
		t.Errorf("clock: got %d, want %d", snap.Clock, testClock+10)
	}
}

func TestCoalescedTickEquivalence(t *testing.T) {
	// One 30-second tick must accrue exactly what thirty 1-second ticks do.
	build := func() *Engine {
		cfg := testConfig()
		cfg.Economy.StartingMoney = 100
		e := newTestEngine(cfg)
		if _, err := e.PurchaseBusiness("lemonade"); err != nil {
			t.Fatalf("purchase failed: %v", err)
		}
		return e
	}

	coarse := build()
	fine := build()

	coarseSnap := coarse.Tick(30)
	var fineSnap Snapshot
	for i := 0; i < 30; i++ {
		fineSnap = fine.Tick(1)
	}

	if math.Abs(coarseSnap.Money-fineSnap.Money) > 1e-9 {
		t.Errorf("coalesced accrual diverged: %g vs %g", coarseSnap.Money, fineSnap.Money)
	}
	if coarseSnap.Clock != fineSnap.Clock {
		t.Errorf("clock diverged: %d vs %d", coarseSnap.Clock, fineSnap.Clock)
	}
}

func TestDailyResetClearsCounters(t *testing.T) {
	cfg := testConfig()
	// Start ten seconds before a day boundary.
	day := int64(20) * 86400
	e := New(cfg, Options{Seed: 42, Clock: day - 10})

	e.Click()
	e.Click()
	if snap := e.Snapshot(); snap.DailyClicks != 2 {
		t.Fatalf("daily clicks before reset: got %d, want 2", snap.DailyClicks)
	}

	snap := e.Tick(20)
	if snap.DailyClicks != 0 {
		t.Errorf("daily clicks after boundary: got %d, want 0", snap.DailyClicks)
	}
	if snap.Clicks != 2 {
		t.Errorf("lifetime clicks must survive the reset: got %d, want 2", snap.Clicks)
	}
	if snap.LastDailyReset != day/86400 {
		t.Errorf("reset index: got %d, want %d", snap.LastDailyReset, day/86400)
	}
}

func TestMultiDayTickResetsToCurrentDay(t *testing.T) {
	cfg := testConfig()
	e := newTestEngine(cfg)
	e.Click()

	// Three days pass in one coalesced tick.
	snap := e.Tick(3 * 86400)
	if snap.DailyClicks != 0 {
		t.Errorf("daily clicks: got %d, want 0", snap.DailyClicks)
	}
	if want := snap.Clock / 86400; snap.LastDailyReset != want {
		t.Errorf("reset index: got %d, want %d", snap.LastDailyReset, want)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	cfg := testConfig()
	cfg.Economy.StartingMoney = 500
	e := newTestEngine(cfg)

	e.Click()
	if _, err := e.PurchaseBusiness("lemonade"); err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	e.Tick(5)

	snap := e.Snapshot()
	restored, err := Restore(cfg, snap, Options{Seed: 42})
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	if got := restored.Snapshot(); !reflect.DeepEqual(got, snap) {
		t.Errorf("snapshot did not survive a restore round trip:\n got %+v\nwant %+v", got, snap)
	}
}

func TestRestoreRejectsUnknownBusiness(t *testing.T) {
	cfg := testConfig()
	snap := newTestEngine(cfg).Snapshot()
	snap.Businesses = map[string]int{"casino": 3}

	if _, err := Restore(cfg, snap, Options{Seed: 42}); err == nil {
		t.Error("expected restore to reject a snapshot with an unknown business")
	}
}
