package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tycoon/internal/config"
	"github.com/vovakirdan/tui-tycoon/internal/leaderboard"
	"github.com/vovakirdan/tui-tycoon/internal/sim"
	"github.com/vovakirdan/tui-tycoon/internal/storage"
)

// Tab identifies one of the main screens.
type Tab int

const (
	TabClicker Tab = iota
	TabEmpire
	TabAuction
	TabTrophies
	TabLeaderboard
	tabCount
)

var tabTitles = [tabCount]string{"Clicker", "Empire", "Auction", "Trophies", "Leaderboard"}

const autosaveInterval = 30 * time.Second

// Model is the Bubble Tea model for a tycoon session. It is a thin
// consumer of the engine: all it does is map keys to commands, feed
// elapsed seconds on every tick message, and render snapshots.
type Model struct {
	engine  *sim.Engine
	cfg     *config.GameConfig
	store   *storage.Store // nil disables persistence
	profile string
	seed    int64

	snap   sim.Snapshot
	tab    Tab
	cursor int

	keys  KeyMap
	help  help.Model
	board table.Model

	width  int
	height int

	lastTick        time.Time
	lastSave        time.Time
	lastLoggedRound int64
	notice          string
	quitting        bool
}

// NewModel creates the session model around an initialized engine.
func NewModel(engine *sim.Engine, cfg *config.GameConfig, store *storage.Store, profile string, seed int64) Model {
	snap := engine.Snapshot()
	m := Model{
		engine:          engine,
		cfg:             cfg,
		store:           store,
		profile:         profile,
		seed:            seed,
		snap:            snap,
		keys:            DefaultKeyMap(),
		help:            help.New(),
		width:           80,
		height:          24,
		lastTick:        time.Now(),
		lastSave:        time.Now(),
		lastLoggedRound: roundOf(snap),
	}
	m.board = newBoardTable(m.leaderboardEntries())
	return m
}

func roundOf(snap sim.Snapshot) int64 {
	if snap.LastRound != nil {
		return snap.LastRound.Round
	}
	return 0
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleTick feeds whole elapsed seconds into the engine. Jitter below
// one second carries over; a suspended terminal produces one coalesced
// tick with the full gap, which the engine is built to absorb.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := int64(now.Sub(m.lastTick) / time.Second)
	if elapsed > 0 {
		m.lastTick = m.lastTick.Add(time.Duration(elapsed) * time.Second)
		m.snap = m.engine.Tick(elapsed)
		m.logRoundWins()
	}

	if m.store != nil && now.Sub(m.lastSave) >= autosaveInterval {
		//nolint:errcheck // Best-effort autosave, play continues regardless
		m.store.SaveProfile(m.profile, m.snap)
		m.lastSave = now
	}

	if m.tab == TabLeaderboard {
		m.board.SetRows(boardRows(m.leaderboardEntries()))
	}
	return m, tickCmd()
}

// logRoundWins records newly resolved auction wins exactly once per round.
func (m *Model) logRoundWins() {
	if m.store == nil || m.snap.LastRound == nil {
		return
	}
	if m.snap.LastRound.Round == m.lastLoggedRound {
		return
	}
	for _, won := range m.snap.LastRound.Won {
		//nolint:errcheck // Display history only, not authoritative state
		m.store.LogAuctionWin(m.profile, won)
	}
	m.lastLoggedRound = m.snap.LastRound.Round
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch {
	case keyMatches(msg, m.keys.Quit):
		if m.store != nil {
			//nolint:errcheck // Final best-effort save on the way out
			m.store.SaveProfile(m.profile, m.engine.Snapshot())
		}
		m.quitting = true
		return m, tea.Quit

	case keyMatches(msg, m.keys.Save):
		if m.store != nil {
			if err := m.store.SaveProfile(m.profile, m.snap); err != nil {
				m.notice = "save failed: " + err.Error()
			} else {
				m.notice = "saved"
				m.lastSave = time.Now()
			}
		}
		return m, nil

	case keyMatches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % tabCount
		m.cursor = 0
		return m, nil

	case keyMatches(msg, m.keys.PrevTab):
		m.tab = (m.tab + tabCount - 1) % tabCount
		m.cursor = 0
		return m, nil

	case keyMatches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case keyMatches(msg, m.keys.Down):
		if m.cursor < m.cursorMax() {
			m.cursor++
		}
		return m, nil

	case keyMatches(msg, m.keys.Prestige):
		snap, err := m.engine.Prestige()
		m.snap = snap
		if err != nil {
			m.notice = "prestige locked: reach level " + levelReq(m.cfg) + " first"
		} else {
			m.notice = "prestige! permanent bonus increased"
		}
		return m, nil
	}

	switch m.tab {
	case TabClicker:
		if keyMatches(msg, m.keys.Click) {
			m.snap = m.engine.Click()
		}
	case TabEmpire:
		if keyMatches(msg, m.keys.Buy) || keyMatches(msg, m.keys.Click) {
			m.buySelected()
		}
	case TabAuction:
		m.handleAuctionKey(msg)
	}
	return m, nil
}

func (m *Model) buySelected() {
	if m.cursor >= len(m.cfg.Businesses) {
		return
	}
	b := m.cfg.Businesses[m.cursor]
	snap, err := m.engine.PurchaseBusiness(b.ID)
	m.snap = snap
	switch err {
	case nil:
		m.notice = "bought " + b.Name
	case sim.ErrInsufficientFunds:
		m.notice = "not enough money for " + b.Name
	case sim.ErrInsufficientLevel:
		m.notice = b.Name + " unlocks at level " + itoa(b.UnlockLevel)
	}
}

func (m *Model) handleAuctionKey(msg tea.KeyMsg) {
	switch {
	case keyMatches(msg, m.keys.StartRnd):
		snap, err := m.engine.StartAuctionRound()
		m.snap = snap
		if err != nil {
			m.notice = "auction not ready yet"
		}

	case keyMatches(msg, m.keys.SmallBid):
		m.bidSelected(1000)

	case keyMatches(msg, m.keys.WinBid):
		if item, ok := m.selectedItem(); ok {
			needed := item.CurrentBid - m.snap.PlayerBids[item.ID] + 100
			if needed < 100 {
				needed = 100
			}
			m.bidSelected(needed)
		}
	}
}

func (m *Model) bidSelected(amount float64) {
	item, ok := m.selectedItem()
	if !ok {
		return
	}
	snap, err := m.engine.PlaceBid(item.ID, amount)
	m.snap = snap
	switch err {
	case nil:
		m.notice = "bid " + FormatMoney(amount) + " on " + item.Name
	case sim.ErrInsufficientFunds:
		m.notice = "balance too low (bids are committed until the round ends)"
	case sim.ErrNoActiveAuction:
		m.notice = "the round just ended"
	}
}

func (m Model) selectedItem() (sim.AuctionItem, bool) {
	if !m.snap.AuctionRoundActive || m.cursor >= len(m.snap.AuctionItems) {
		return sim.AuctionItem{}, false
	}
	return m.snap.AuctionItems[m.cursor], true
}

func (m Model) cursorMax() int {
	switch m.tab {
	case TabEmpire:
		return len(m.cfg.Businesses) - 1
	case TabAuction:
		if n := len(m.snap.AuctionItems); n > 0 {
			return n - 1
		}
	}
	return 0
}

func (m Model) leaderboardEntries() []leaderboard.Entry {
	return leaderboard.Generate(m.snap, m.profile, m.seed)
}

// Quitting reports whether the user has exited the session.
func (m Model) Quitting() bool {
	return m.quitting
}
