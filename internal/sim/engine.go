// Package sim implements the tycoon simulation engine: a single-threaded
// state machine owning the authoritative player state. The host drives it
// with player commands and a periodic Tick carrying explicit elapsed
// seconds; every command returns an immutable Snapshot for rendering.
package sim

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-tycoon/internal/config"
)

const (
	secondsPerDay  = 86400
	secondsPerWeek = 7 * secondsPerDay
)

// Options configures engine creation.
type Options struct {
	Seed  int64 // RNG seed; 0 derives one from the current time
	Clock int64 // starting simulation clock in unix seconds; 0 uses wall time
}

// Engine owns the full player state. All mutation happens inside
// discrete, serialized calls; the mutex guards against a host whose timer
// can fire re-entrantly. No method blocks or performs I/O.
type Engine struct {
	mu  sync.Mutex
	cfg *config.GameConfig
	rng *rand.Rand

	// clock is simulated unix time, advanced only by Tick. All absolute
	// timestamps (next auction, event expiry, day/week boundaries) live
	// on this clock, so coalesced ticks expire everything correctly.
	clock int64

	money            float64
	totalMoneyEarned float64
	clicks           int64
	clickPower       float64
	level            int
	totalXPEarned    float64
	prestigeCount    int
	prestigeBonus    float64
	moneyMultiplier  float64
	businesses       map[string]int
	passiveIncome    float64 // derived cache, see refreshDerivedLocked
	totalInvestments int64

	auctionActive        bool
	auctionItems         []AuctionItem
	auctionTimer         int
	nextAuctionTime      int64
	playerBids           map[string]float64
	roundSeq             int64
	itemSeq              int64
	auctionsWon          int64
	rareItemsWon         int64
	epicItemsWon         int64
	mythicItemsWon       int64
	totalSpentOnAuctions float64
	lastRound            *RoundResult

	unlocked        map[string]bool
	activeDaily     []string
	activeWeekly    []string
	dailyDone       map[string]bool
	weeklyDone      map[string]bool
	lastDailyReset  int64 // day index of the last daily reset
	lastWeeklyReset int64 // week index of the last weekly reset

	dailyClicks     int64
	dailyMoney      float64
	dailyAuctions   int64
	dailyInvestment float64
	dailyUpgrades   int64
	dailyTrades     int64
	weeklyClicks    int64
	weeklyMoney     float64
	weeklyAuctions  int64

	activeEvent *EventView
	eventEnd    int64 // 0 when the active event has no duration
}

// New creates an engine with a fresh player state.
func New(cfg *config.GameConfig, opts Options) *Engine {
	e := newEngine(cfg, opts)
	e.money = cfg.Economy.StartingMoney
	e.level = 1
	e.prestigeBonus = 1
	e.moneyMultiplier = 1
	e.nextAuctionTime = e.clock
	e.lastDailyReset = e.clock / secondsPerDay
	e.lastWeeklyReset = e.clock / secondsPerWeek
	e.drawDailyChallenges()
	e.drawWeeklyChallenges()
	e.refreshDerivedLocked()
	return e
}

// Restore creates an engine from a persisted snapshot. The caller is
// expected to follow up with Tick(now-snap.Clock) to account for time
// that passed while the engine was offline.
func Restore(cfg *config.GameConfig, snap Snapshot, opts Options) (*Engine, error) {
	for id := range snap.Businesses {
		if _, ok := cfg.BusinessByID(id); !ok {
			return nil, fmt.Errorf("sim: saved state holds unknown business %q", id)
		}
	}
	if opts.Clock == 0 {
		opts.Clock = snap.Clock
	}
	e := newEngine(cfg, opts)

	e.money = snap.Money
	e.totalMoneyEarned = snap.TotalMoneyEarned
	e.clicks = snap.Clicks
	e.level = snap.Level
	if e.level < 1 {
		e.level = 1
	}
	e.totalXPEarned = snap.TotalXPEarned
	e.prestigeCount = snap.PrestigeCount
	e.prestigeBonus = snap.PrestigeBonus
	if e.prestigeBonus < 1 {
		e.prestigeBonus = 1
	}
	e.moneyMultiplier = snap.MoneyMultiplier
	if e.moneyMultiplier <= 0 {
		e.moneyMultiplier = 1
	}
	for id, n := range snap.Businesses {
		if n > 0 {
			e.businesses[id] = n
		}
	}
	e.totalInvestments = snap.TotalInvestments

	e.auctionActive = snap.AuctionRoundActive
	e.auctionItems = append([]AuctionItem(nil), snap.AuctionItems...)
	e.auctionTimer = snap.AuctionTimer
	e.nextAuctionTime = snap.NextAuctionTime
	for id, amount := range snap.PlayerBids {
		e.playerBids[id] = amount
	}
	e.roundSeq = snap.AuctionRound
	e.auctionsWon = snap.AuctionsWon
	e.rareItemsWon = snap.RareItemsWon
	e.epicItemsWon = snap.EpicItemsWon
	e.mythicItemsWon = snap.MythicItemsWon
	e.totalSpentOnAuctions = snap.TotalSpentOnAuctions
	if snap.LastRound != nil {
		won := append([]WonItem(nil), snap.LastRound.Won...)
		e.lastRound = &RoundResult{Round: snap.LastRound.Round, Won: won}
	}

	for _, id := range snap.UnlockedAchievements {
		e.unlocked[id] = true
	}
	e.activeDaily = append([]string(nil), snap.ActiveDailyChallenges...)
	e.activeWeekly = append([]string(nil), snap.ActiveWeeklyChallenges...)
	for id, done := range snap.DailyChallengeProgress {
		e.dailyDone[id] = done
	}
	for id, done := range snap.WeeklyChallengeProgress {
		e.weeklyDone[id] = done
	}
	e.lastDailyReset = snap.LastDailyReset
	e.lastWeeklyReset = snap.LastWeeklyReset

	e.dailyClicks = snap.DailyClicks
	e.dailyMoney = snap.DailyMoney
	e.dailyAuctions = snap.DailyAuctions
	e.dailyInvestment = snap.DailyInvestment
	e.dailyUpgrades = snap.DailyUpgrades
	e.dailyTrades = snap.DailyTrades
	e.weeklyClicks = snap.WeeklyClicks
	e.weeklyMoney = snap.WeeklyMoney
	e.weeklyAuctions = snap.WeeklyAuctions

	if snap.ActiveEvent != nil {
		ev := *snap.ActiveEvent
		e.activeEvent = &ev
		e.eventEnd = snap.EventEndTime
	}

	if len(e.activeDaily) == 0 {
		e.drawDailyChallenges()
	}
	if len(e.activeWeekly) == 0 {
		e.drawWeeklyChallenges()
	}
	e.refreshDerivedLocked()
	return e, nil
}

func newEngine(cfg *config.GameConfig, opts Options) *Engine {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	clock := opts.Clock
	if clock == 0 {
		clock = time.Now().Unix()
	}
	return &Engine{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(seed)),
		clock:      clock,
		businesses: make(map[string]int),
		playerBids: make(map[string]float64),
		unlocked:   make(map[string]bool),
		dailyDone:  make(map[string]bool),
		weeklyDone: make(map[string]bool),
	}
}

// Snapshot returns an immutable copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Click applies one manual action. It never fails: the click counter,
// money, daily/weekly counters and experience all advance, then
// progression and achievements are re-evaluated.
func (e *Engine) Click() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.clicks++
	e.dailyClicks++
	e.weeklyClicks++

	level := e.cfg.LevelFor(e.level)
	e.earnLocked(ClickYield(e.clickPower, level.ClickBonus, e.prestigeBonus, e.moneyMultiplier))
	e.gainXPLocked(e.cfg.Economy.XPPerClick)
	e.evaluateLocked()
	return e.snapshotLocked()
}

// PurchaseBusiness buys one unit of a business. The cost follows the
// exponential curve over units already owned. Committed auction bids are
// treated as escrowed: the purchase must fit in money net of bids, so a
// later auction win can always be paid. On failure no state changes.
func (e *Engine) PurchaseBusiness(businessID string) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.cfg.BusinessByID(businessID)
	if !ok {
		return e.snapshotLocked(), ErrUnknownBusiness
	}
	if e.level < b.UnlockLevel {
		return e.snapshotLocked(), ErrInsufficientLevel
	}
	cost := PurchaseCost(b, e.businesses[businessID])
	if e.money-e.committedLocked() < cost {
		return e.snapshotLocked(), ErrInsufficientFunds
	}

	e.money -= cost
	e.businesses[businessID]++
	e.totalInvestments++
	e.dailyUpgrades++
	e.dailyInvestment += cost
	e.refreshDerivedLocked()
	e.evaluateLocked()
	return e.snapshotLocked(), nil
}

// Tick advances the simulation by the given number of elapsed seconds.
// Irregular and coalesced intervals are handled by splitting the span at
// every point where a rate or timer changes: auction expiry, event
// expiry, and day boundaries. Within each chunk all rates are constant.
func (e *Engine) Tick(elapsedSeconds int64) Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	remaining := elapsedSeconds
	for remaining > 0 {
		step := remaining
		if e.auctionActive && int64(e.auctionTimer) < step {
			step = int64(e.auctionTimer)
		}
		if e.activeEvent != nil && e.eventEnd > e.clock {
			if d := e.eventEnd - e.clock; d < step {
				step = d
			}
		}
		if d := secondsPerDay - e.clock%secondsPerDay; d < step {
			step = d
		}
		if step <= 0 {
			step = 1
		}
		e.advanceLocked(step)
		remaining -= step
	}
	e.evaluateLocked()
	return e.snapshotLocked()
}

// advanceLocked moves the clock forward by step seconds, accruing
// passive income at the rate in force for the whole step, then applies
// whatever expired at the new instant.
func (e *Engine) advanceLocked(step int64) {
	if e.passiveIncome > 0 {
		e.earnLocked(e.passiveIncome * float64(step))
	}
	e.clock += step

	if e.auctionActive {
		e.rivalBidsLocked(step)
		e.auctionTimer -= int(step)
		if e.auctionTimer <= 0 {
			e.auctionTimer = 0
			e.resolveRoundLocked()
		}
	}

	e.expireEventLocked()
	if e.activeEvent == nil {
		e.rollEventLocked(step)
	}

	e.checkResetsLocked()
}

// earnLocked credits income to the balance and every earnings counter.
func (e *Engine) earnLocked(amount float64) {
	if amount <= 0 {
		return
	}
	e.money += amount
	e.totalMoneyEarned += amount
	e.dailyMoney += amount
	e.weeklyMoney += amount
}

// committedLocked sums the player's bids in the active round.
func (e *Engine) committedLocked() float64 {
	var total float64
	for _, amount := range e.playerBids {
		total += amount
	}
	return total
}

// refreshDerivedLocked recomputes every cached derived quantity from the
// source counts. It is the single recomputation point: call it after any
// mutation that can change holdings, level, prestige or the multiplier.
func (e *Engine) refreshDerivedLocked() {
	level := e.cfg.LevelFor(e.level)
	e.clickPower = TotalClickPower(e.cfg, e.businesses)
	e.passiveIncome = PassiveRate(e.cfg, e.businesses, level.IncomeBonus, e.prestigeBonus, e.moneyMultiplier)
}
