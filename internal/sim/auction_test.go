package sim

import "testing"

func TestStartAuctionRound(t *testing.T) {
	e := newTestEngine(testConfig())

	snap, err := e.StartAuctionRound()
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if !snap.AuctionRoundActive {
		t.Error("round not active after start")
	}
	if len(snap.AuctionItems) != 3 {
		t.Errorf("items: got %d, want 3", len(snap.AuctionItems))
	}
	if snap.AuctionTimer != 60 {
		t.Errorf("timer: got %d, want 60", snap.AuctionTimer)
	}
	for _, it := range snap.AuctionItems {
		if it.CurrentBid != 100 {
			t.Errorf("item %s opens at %g, want bid floor 100", it.ID, it.CurrentBid)
		}
	}

	if _, err := e.StartAuctionRound(); err != ErrAuctionNotReady {
		t.Errorf("second start while active: got %v, want ErrAuctionNotReady", err)
	}
}

func TestCumulativeBidding(t *testing.T) {
	cfg := testConfig()
	cfg.Economy.StartingMoney = 500
	e := newTestEngine(cfg)

	snap, err := e.StartAuctionRound()
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	itemID := snap.AuctionItems[0].ID

	// Below the floor: committed but not leading.
	snap, err = e.PlaceBid(itemID, 50)
	if err != nil {
		t.Fatalf("bid failed: %v", err)
	}
	if snap.AuctionItems[0].CurrentBid != 100 {
		t.Errorf("current bid after low bid: got %g, want 100", snap.AuctionItems[0].CurrentBid)
	}

	// Bids accumulate: 50 + 80 = 130 takes the lead.
	snap, err = e.PlaceBid(itemID, 80)
	if err != nil {
		t.Fatalf("bid failed: %v", err)
	}
	if snap.PlayerBids[itemID] != 130 {
		t.Errorf("cumulative bid: got %g, want 130", snap.PlayerBids[itemID])
	}
	if snap.AuctionItems[0].CurrentBid != 130 {
		t.Errorf("current bid: got %g, want 130", snap.AuctionItems[0].CurrentBid)
	}
	if snap.DailyTrades != 2 {
		t.Errorf("daily trades: got %d, want 2", snap.DailyTrades)
	}
	if snap.AvailableBalance() != 370 {
		t.Errorf("available balance: got %g, want 370", snap.AvailableBalance())
	}
}

func TestBidValidation(t *testing.T) {
	cfg := testConfig()
	cfg.Economy.StartingMoney = 200
	e := newTestEngine(cfg)

	if _, err := e.PlaceBid("item-1", 50); err != ErrNoActiveAuction {
		t.Errorf("bid without round: got %v, want ErrNoActiveAuction", err)
	}

	snap, err := e.StartAuctionRound()
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	itemID := snap.AuctionItems[0].ID

	if _, err := e.PlaceBid(itemID, 0); err != ErrInvalidBid {
		t.Errorf("zero bid: got %v, want ErrInvalidBid", err)
	}
	if _, err := e.PlaceBid("nope", 50); err != ErrUnknownItem {
		t.Errorf("unknown item: got %v, want ErrUnknownItem", err)
	}
	if _, err := e.PlaceBid(itemID, 500); err != ErrInsufficientFunds {
		t.Errorf("overcommitted bid: got %v, want ErrInsufficientFunds", err)
	}
}

func TestRoundResolution(t *testing.T) {
	cfg := testConfig()
	cfg.Economy.StartingMoney = 500
	e := newTestEngine(cfg)

	snap, err := e.StartAuctionRound()
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	itemID := snap.AuctionItems[0].ID

	// Matching the floor keeps the lead: no rival has raised past it.
	if _, err := e.PlaceBid(itemID, 100); err != nil {
		t.Fatalf("bid failed: %v", err)
	}

	snap = e.Tick(60)
	if snap.AuctionRoundActive {
		t.Error("round still active after the timer expired")
	}
	if snap.Money != 400 {
		t.Errorf("money after winning at 100: got %g, want 400", snap.Money)
	}
	if snap.AuctionsWon != 1 {
		t.Errorf("auctions won: got %d, want 1", snap.AuctionsWon)
	}
	if snap.TotalSpentOnAuctions != 100 {
		t.Errorf("auction spend: got %g, want 100", snap.TotalSpentOnAuctions)
	}
	if snap.TotalXPEarned != 5 {
		t.Errorf("xp from won item: got %g, want 5", snap.TotalXPEarned)
	}
	if snap.LastRound == nil || len(snap.LastRound.Won) != 1 {
		t.Fatalf("last round: got %+v, want exactly one won item", snap.LastRound)
	}
	if snap.NextAuctionTime != snap.Clock+5*60 {
		t.Errorf("next auction time: got %d, want %d", snap.NextAuctionTime, snap.Clock+5*60)
	}
}

func TestTickSpanningTimerResolvesRound(t *testing.T) {
	e := newTestEngine(testConfig())

	if _, err := e.StartAuctionRound(); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	// A single coalesced tick far past the timer must still resolve the
	// round exactly at its expiry instant.
	snap := e.Tick(500)
	if snap.AuctionRoundActive {
		t.Error("round still active")
	}
	if want := int64(testClock) + 60 + 5*60; snap.NextAuctionTime != want {
		t.Errorf("next auction time: got %d, want %d", snap.NextAuctionTime, want)
	}
}

func TestAuctionNotReadyBeforeInterval(t *testing.T) {
	e := newTestEngine(testConfig())

	if _, err := e.StartAuctionRound(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	e.Tick(60)

	if _, err := e.StartAuctionRound(); err != ErrAuctionNotReady {
		t.Errorf("start before interval: got %v, want ErrAuctionNotReady", err)
	}

	e.Tick(5 * 60)
	if _, err := e.StartAuctionRound(); err != nil {
		t.Errorf("start after interval failed: %v", err)
	}
}

func TestLosingBidCostsNothing(t *testing.T) {
	cfg := testConfig()
	cfg.Economy.StartingMoney = 500
	cfg.Auction.RivalChance = 1 // a rival raises every item every second
	e := newTestEngine(cfg)

	snap, err := e.StartAuctionRound()
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if _, err := e.PlaceBid(snap.AuctionItems[0].ID, 100); err != nil {
		t.Fatalf("bid failed: %v", err)
	}

	snap = e.Tick(60)
	if snap.AuctionsWon != 0 {
		t.Fatalf("expected the rivals to outbid a never-raised commitment")
	}
	if snap.Money != 500 {
		t.Errorf("losing bid changed money: got %g, want 500", snap.Money)
	}
}

func TestRivalRaisesAreMonotonic(t *testing.T) {
	cfg := testConfig()
	cfg.Auction.RivalChance = 1
	e := newTestEngine(cfg)

	snap, err := e.StartAuctionRound()
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	prev := make(map[string]float64, len(snap.AuctionItems))
	for _, it := range snap.AuctionItems {
		prev[it.ID] = it.CurrentBid
	}

	for i := 0; i < 5; i++ {
		snap = e.Tick(1)
		for _, it := range snap.AuctionItems {
			if it.CurrentBid <= prev[it.ID] {
				t.Errorf("tick %d: item %s bid %g did not increase past %g", i, it.ID, it.CurrentBid, prev[it.ID])
			}
			prev[it.ID] = it.CurrentBid
		}
	}
}

func TestEscrowedBidsBlockOverspending(t *testing.T) {
	cfg := testConfig()
	cfg.Economy.StartingMoney = 500
	e := newTestEngine(cfg)

	snap, err := e.StartAuctionRound()
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if _, err := e.PlaceBid(snap.AuctionItems[0].ID, 400); err != nil {
		t.Fatalf("bid failed: %v", err)
	}

	// 100 of free balance remains: one lemonade stand fits, nothing more.
	if _, err := e.PurchaseBusiness("lemonade"); err != nil {
		t.Fatalf("purchase within free balance failed: %v", err)
	}
	if _, err := e.PurchaseBusiness("lemonade"); err != ErrInsufficientFunds {
		t.Errorf("purchase into escrow: got %v, want ErrInsufficientFunds", err)
	}
	if _, err := e.PlaceBid(snap.AuctionItems[1].ID, 50); err != ErrInsufficientFunds {
		t.Errorf("bid into escrow: got %v, want ErrInsufficientFunds", err)
	}

	// The winning bid is always payable at resolution.
	snap = e.Tick(60)
	if snap.Money < 0 {
		t.Errorf("money went negative: %g", snap.Money)
	}
}
