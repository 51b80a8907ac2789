package sim

import "errors"

// Command errors. All are recoverable: the engine state is untouched when
// a command returns one of these, and the caller decides whether to retry.
var (
	// ErrInsufficientFunds is returned when a purchase or bid exceeds the
	// available balance (money net of committed auction bids).
	ErrInsufficientFunds = errors.New("sim: insufficient funds")

	// ErrInsufficientLevel is returned when a business is still locked at
	// the current life-stage level.
	ErrInsufficientLevel = errors.New("sim: business locked at current level")

	// ErrUnknownBusiness is returned for a business id absent from the catalog.
	ErrUnknownBusiness = errors.New("sim: unknown business")

	// ErrNoActiveAuction is returned when a bid is placed outside a round.
	ErrNoActiveAuction = errors.New("sim: no active auction round")

	// ErrUnknownItem is returned for an item id absent from the active round.
	ErrUnknownItem = errors.New("sim: unknown auction item")

	// ErrAuctionNotReady is returned when a round is started early or one
	// is already running.
	ErrAuctionNotReady = errors.New("sim: auction not ready")

	// ErrInvalidBid is returned for a non-positive bid amount.
	ErrInvalidBid = errors.New("sim: bid amount must be positive")

	// ErrPrestigeNotEligible is returned when the prestige thresholds are unmet.
	ErrPrestigeNotEligible = errors.New("sim: prestige requirements not met")
)
