package sim

import (
	"fmt"
	"math"
)

// Auction lifecycle: Idle(nextAuctionTime) -> Active(items, timer) ->
// resolution -> Idle. Exactly one round runs at a time; playerBids holds
// entries only for items of the active round and is cleared at round
// start. Bids are commitments, not debits: PlaceBid validates against
// money net of already-committed bids, and only the winning bid is
// debited at resolution, so a losing commitment costs nothing.

// StartAuctionRound opens a new round once the interval since the last
// one has elapsed. Items are drawn from the rarity table by weight, each
// opening at its rarity's bid floor.
func (e *Engine) StartAuctionRound() (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.auctionActive || e.clock < e.nextAuctionTime {
		return e.snapshotLocked(), ErrAuctionNotReady
	}

	e.roundSeq++
	e.lastRound = nil
	e.playerBids = make(map[string]float64)
	e.auctionItems = make([]AuctionItem, 0, e.cfg.Auction.ItemCount)
	for i := 0; i < e.cfg.Auction.ItemCount; i++ {
		e.auctionItems = append(e.auctionItems, e.generateItemLocked())
	}
	e.auctionActive = true
	e.auctionTimer = e.cfg.Auction.TimerSeconds
	return e.snapshotLocked(), nil
}

// PlaceBid adds amount to the player's cumulative bid on an item of the
// active round. When the new cumulative bid exceeds the current highest,
// it becomes the current bid: the player pays up to what is needed to
// lead rather than a fixed increment over it.
func (e *Engine) PlaceBid(itemID string, amount float64) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.auctionActive {
		return e.snapshotLocked(), ErrNoActiveAuction
	}
	if amount <= 0 {
		return e.snapshotLocked(), ErrInvalidBid
	}
	idx := -1
	for i := range e.auctionItems {
		if e.auctionItems[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return e.snapshotLocked(), ErrUnknownItem
	}
	if e.money-e.committedLocked() < amount {
		return e.snapshotLocked(), ErrInsufficientFunds
	}

	e.playerBids[itemID] += amount
	e.dailyTrades++
	if cumulative := e.playerBids[itemID]; cumulative > e.auctionItems[idx].CurrentBid {
		e.auctionItems[idx].CurrentBid = cumulative
	}
	e.evaluateLocked()
	return e.snapshotLocked(), nil
}

// generateItemLocked draws one item: rarity by weight, name uniformly
// from the rarity's name pool.
func (e *Engine) generateItemLocked() AuctionItem {
	var totalWeight float64
	for _, r := range e.cfg.Rarities {
		totalWeight += r.Weight
	}
	roll := e.rng.Float64() * totalWeight
	rarity := e.cfg.Rarities[len(e.cfg.Rarities)-1]
	for _, r := range e.cfg.Rarities {
		if roll < r.Weight {
			rarity = r
			break
		}
		roll -= r.Weight
	}

	e.itemSeq++
	return AuctionItem{
		ID:         fmt.Sprintf("item-%d", e.itemSeq),
		Name:       rarity.ItemNames[e.rng.Intn(len(rarity.ItemNames))],
		Rarity:     rarity.ID,
		RarityName: rarity.Name,
		CurrentBid: rarity.BidFloor,
		XPReward:   rarity.XPReward,
	}
}

// rivalBidsLocked simulates competing bidders. Each item has an
// independent per-second chance of a rival raise; a raise strictly
// exceeds the current bid, so the current bid never decreases and a tied
// player keeps the lead (the leader is whoever raised last; a rival
// raise always overtakes, a player raise only matches its own total).
func (e *Engine) rivalBidsLocked(step int64) {
	chance := e.cfg.Auction.RivalChance * float64(step)
	if chance <= 0 {
		return
	}
	if chance > 1 {
		chance = 1
	}
	for i := range e.auctionItems {
		if e.rng.Float64() >= chance {
			continue
		}
		it := &e.auctionItems[i]
		raise := math.Ceil(it.CurrentBid * e.cfg.Auction.RivalRaise)
		if raise < 1 {
			raise = 1
		}
		it.CurrentBid += raise
	}
}

// resolveRoundLocked settles the round when the timer reaches zero. The
// player wins an item iff their cumulative bid still equals the current
// highest; the winning amount is debited into the auction spend counter
// and the item's experience reward is granted. Losing bids are simply
// released. The round result is retained until the next round starts.
func (e *Engine) resolveRoundLocked() {
	result := &RoundResult{Round: e.roundSeq}
	for _, it := range e.auctionItems {
		bid := e.playerBids[it.ID]
		if bid <= 0 || bid < it.CurrentBid {
			continue
		}

		e.money -= bid
		e.totalSpentOnAuctions += bid
		e.auctionsWon++
		e.dailyAuctions++
		e.weeklyAuctions++
		switch it.Rarity {
		case "rare":
			e.rareItemsWon++
		case "epic":
			e.epicItemsWon++
		case "mythic":
			e.mythicItemsWon++
		}
		e.gainXPLocked(it.XPReward)
		result.Won = append(result.Won, WonItem{
			ItemID: it.ID,
			Name:   it.Name,
			Rarity: it.Rarity,
			Amount: bid,
			XP:     it.XPReward,
		})
	}

	e.lastRound = result
	e.auctionActive = false
	e.auctionItems = nil
	e.auctionTimer = 0
	e.playerBids = make(map[string]float64)
	e.nextAuctionTime = e.clock + int64(e.cfg.Auction.IntervalMinutes)*60
}
