package sim

import (
	"testing"

	"github.com/vovakirdan/tui-tycoon/internal/config"
)

func TestAchievementRewardsChain(t *testing.T) {
	cfg := testConfig()
	cfg.Achievements = []config.Achievement{
		{ID: "first_click", Name: "First Click", Metric: config.MetricClicks, Target: 1, Reward: config.Reward{Money: 499}},
		{ID: "first_500", Name: "First 500", Metric: config.MetricMoney, Target: 500, Reward: config.Reward{XP: 9}},
	}
	e := newTestEngine(cfg)

	// One click earns 1, the first unlock pays 499, and the lifetime total
	// of 500 unlocks the second achievement in the same evaluation.
	snap := e.Click()
	if len(snap.UnlockedAchievements) != 2 {
		t.Fatalf("unlocked: got %v, want both achievements", snap.UnlockedAchievements)
	}
	if snap.Money != 500 {
		t.Errorf("money: got %g, want 500", snap.Money)
	}
	if snap.TotalXPEarned != 1+9 {
		t.Errorf("xp: got %g, want 10", snap.TotalXPEarned)
	}
}

func TestAchievementsGrantOnce(t *testing.T) {
	cfg := testConfig()
	cfg.Achievements = []config.Achievement{
		{ID: "first_click", Name: "First Click", Metric: config.MetricClicks, Target: 1, Reward: config.Reward{Money: 50}},
	}
	e := newTestEngine(cfg)

	snap := e.Click()
	if snap.Money != 51 {
		t.Fatalf("money after unlock: got %g, want 51", snap.Money)
	}

	// Further evaluation passes must not re-grant the reward.
	snap = e.Click()
	if snap.Money != 52 {
		t.Errorf("money after second click: got %g, want 52", snap.Money)
	}
	snap = e.Tick(1)
	if snap.Money != 52 {
		t.Errorf("money after idle tick: got %g, want 52", snap.Money)
	}
}

func TestGrantOnceSurvivesRestore(t *testing.T) {
	cfg := testConfig()
	cfg.Achievements = []config.Achievement{
		{ID: "first_click", Name: "First Click", Metric: config.MetricClicks, Target: 1, Reward: config.Reward{Money: 50}},
	}
	e := newTestEngine(cfg)
	e.Click()

	restored, err := Restore(cfg, e.Snapshot(), Options{Seed: 42})
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	snap := restored.Tick(1)
	if snap.Money != 51 {
		t.Errorf("restored engine re-granted the reward: money %g, want 51", snap.Money)
	}
}

func TestDailyChallengeCompletionAndRedraw(t *testing.T) {
	cfg := testConfig()
	cfg.Challenges = config.ChallengeTuning{DailyActive: 1}
	cfg.DailyChallenges = []config.Challenge{
		{ID: "clicker_daily", Name: "Daily Clicker", Metric: config.MetricDailyClicks, Target: 3, Reward: config.Reward{Money: 25}},
	}
	day := int64(20) * 86400
	e := New(cfg, Options{Seed: 42, Clock: day - 10})

	snap := e.Snapshot()
	if len(snap.ActiveDailyChallenges) != 1 {
		t.Fatalf("active daily challenges: got %v, want one", snap.ActiveDailyChallenges)
	}

	e.Click()
	e.Click()
	snap = e.Click()
	if !snap.DailyChallengeProgress["clicker_daily"] {
		t.Fatal("challenge not completed after 3 clicks")
	}
	if snap.Money != 3+25 {
		t.Errorf("money with challenge reward: got %g, want 28", snap.Money)
	}

	// Crossing the day boundary redraws the set and clears completion.
	snap = e.Tick(20)
	if snap.DailyChallengeProgress["clicker_daily"] {
		t.Error("completion state survived the daily reset")
	}

	// The redrawn challenge completes again against the fresh counter.
	e.Click()
	e.Click()
	snap = e.Click()
	if !snap.DailyChallengeProgress["clicker_daily"] {
		t.Error("challenge not completable after the reset")
	}
}

func TestWeeklyChallengeCompletion(t *testing.T) {
	cfg := testConfig()
	cfg.Challenges = config.ChallengeTuning{WeeklyActive: 1}
	cfg.WeeklyChallenges = []config.Challenge{
		{ID: "clicker_weekly", Name: "Weekly Clicker", Metric: config.MetricWeeklyClicks, Target: 2, Reward: config.Reward{XP: 5}},
	}
	e := newTestEngine(cfg)

	e.Click()
	snap := e.Click()
	if !snap.WeeklyChallengeProgress["clicker_weekly"] {
		t.Error("weekly challenge not completed after 2 clicks")
	}
	if snap.TotalXPEarned != 2+5 {
		t.Errorf("xp with challenge reward: got %g, want 7", snap.TotalXPEarned)
	}
}

func TestBusinessMetricCountsDistinctTypes(t *testing.T) {
	cfg := testConfig()
	cfg.Economy.StartingMoney = 1000
	cfg.Achievements = []config.Achievement{
		{ID: "diversified", Name: "Diversified", Metric: config.MetricBusinesses, Target: 2, Reward: config.Reward{XP: 5}},
	}
	e := newTestEngine(cfg)

	// Two units of the same type are still one type.
	e.PurchaseBusiness("lemonade")
	snap, err := e.PurchaseBusiness("lemonade")
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	if len(snap.UnlockedAchievements) != 0 {
		t.Fatalf("one business type unlocked a two-type achievement: %v", snap.UnlockedAchievements)
	}
}
