package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tycoon/internal/leaderboard"
	"github.com/vovakirdan/tui-tycoon/internal/sim"
)

var (
	goldStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	purpleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dangerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	tabActiveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true).Underline(true)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	bannerPositive = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	bannerNegative = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	bannerNeutral  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)

	rarityStyles = map[string]lipgloss.Style{
		"common":   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		"uncommon": lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		"rare":     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		"epic":     lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		"mythic":   lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	}
)

// View renders the current tab.
func (m Model) View() string {
	if m.quitting {
		return "Empire saved. Come back soon.\n"
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	switch m.tab {
	case TabClicker:
		b.WriteString(m.clickerView())
	case TabEmpire:
		b.WriteString(m.empireView())
	case TabAuction:
		b.WriteString(m.auctionView())
	case TabTrophies:
		b.WriteString(m.trophiesView())
	case TabLeaderboard:
		b.WriteString(m.leaderboardView())
	}

	if m.notice != "" {
		b.WriteString("\n" + dimStyle.Render(m.notice) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

// headerView renders the tab bar, the money line and the event banner.
func (m Model) headerView() string {
	tabs := make([]string, tabCount)
	for i := Tab(0); i < tabCount; i++ {
		if i == m.tab {
			tabs[i] = tabActiveStyle.Render(tabTitles[i])
		} else {
			tabs[i] = tabInactiveStyle.Render(tabTitles[i])
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(tabs, "  ") + "\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		goldStyle.Render(FormatMoney(m.snap.Money)),
		dimStyle.Render(fmt.Sprintf("%s/s", FormatMoney(m.snap.PassiveIncome))),
		purpleStyle.Render(fmt.Sprintf("Lv.%d %s", m.snap.Level, m.snap.LevelName)),
	))

	if ev := m.snap.ActiveEvent; ev != nil {
		style := bannerNeutral
		switch ev.Kind {
		case "positive":
			style = bannerPositive
		case "negative":
			style = bannerNegative
		}
		line := ev.Name + " — " + ev.Description
		if ev.Multiplier != 0 && m.snap.EventEndTime > m.snap.Clock {
			line += fmt.Sprintf(" (%ds left)", m.snap.EventEndTime-m.snap.Clock)
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}

func (m Model) clickerView() string {
	var b strings.Builder

	if next, ok := m.cfg.NextLevel(m.snap.Level); ok {
		cur := m.cfg.LevelFor(m.snap.Level)
		span := next.XPRequired - cur.XPRequired
		done := m.snap.TotalXPEarned - cur.XPRequired
		b.WriteString(fmt.Sprintf("XP to %s: %.0f / %.0f\n", next.Name, done, span))
		b.WriteString(progressBar(done/span, 40) + "\n\n")
	} else {
		b.WriteString(dimStyle.Render("Max life stage reached") + "\n\n")
	}

	b.WriteString(goldStyle.Render("  [ PRESS SPACE TO EARN ]") + "\n\n")
	b.WriteString(fmt.Sprintf("  %s per click\n\n", goldStyle.Render(FormatMoney(m.snap.EarnPerClick))))

	b.WriteString(fmt.Sprintf("  Clicks     %d\n", m.snap.Clicks))
	b.WriteString(fmt.Sprintf("  Lifetime   %s\n", FormatMoney(m.snap.TotalMoneyEarned)))
	b.WriteString(fmt.Sprintf("  Prestige   x%.1f (%d resets)\n", m.snap.PrestigeBonus, m.snap.PrestigeCount))
	if m.snap.MoneyMultiplier != 1 {
		b.WriteString(fmt.Sprintf("  Event mult x%.1f\n", m.snap.MoneyMultiplier))
	}
	return b.String()
}

func (m Model) empireView() string {
	var b strings.Builder
	b.WriteString(dimStyle.Render("b/enter buys the selected business") + "\n\n")

	for i, biz := range m.cfg.Businesses {
		count := m.snap.Businesses[biz.ID]
		cost := sim.PurchaseCost(biz, count)
		unlocked := m.snap.Level >= biz.UnlockLevel

		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}

		switch {
		case !unlocked:
			b.WriteString(fmt.Sprintf("%s%s %s\n", marker,
				dimStyle.Render(biz.Name),
				dimStyle.Render(fmt.Sprintf("(locked, level %d)", biz.UnlockLevel))))
		default:
			line := fmt.Sprintf("%s%-20s x%-4d %s  +%s/s each",
				marker, biz.Name, count, FormatMoney(cost), FormatMoney(biz.BaseIncome))
			if m.snap.AvailableBalance() < cost {
				line = dimStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString(fmt.Sprintf("\nPassive income: %s/s   Click power: %.1f\n",
		goldStyle.Render(FormatMoney(m.snap.PassiveIncome)), m.snap.ClickPower))
	return b.String()
}

func (m Model) auctionView() string {
	var b strings.Builder

	if !m.snap.AuctionRoundActive {
		if m.snap.Clock >= m.snap.NextAuctionTime {
			b.WriteString(goldStyle.Render("Auction ready!") + "  press s to start a round\n")
			b.WriteString(dimStyle.Render(fmt.Sprintf("%d items, %ds per round",
				m.cfg.Auction.ItemCount, m.cfg.Auction.TimerSeconds)) + "\n")
		} else {
			b.WriteString(fmt.Sprintf("Next auction in %s\n",
				goldStyle.Render(formatDuration(m.snap.NextAuctionTime-m.snap.Clock))))
		}
		if m.snap.LastRound != nil && len(m.snap.LastRound.Won) > 0 {
			b.WriteString("\nLast round wins:\n")
			for _, won := range m.snap.LastRound.Won {
				style := rarityStyles[won.Rarity]
				b.WriteString(fmt.Sprintf("  %s for %s (+%.0f XP)\n",
					style.Render(won.Name), FormatMoney(won.Amount), won.XP))
			}
		}
		return b.String()
	}

	timer := fmt.Sprintf("%ds left", m.snap.AuctionTimer)
	if m.snap.AuctionTimer <= 15 {
		timer = dangerStyle.Render(timer)
	} else {
		timer = goldStyle.Render(timer)
	}
	b.WriteString(timer + "  " + dimStyle.Render("1: bid +1K   w: bid to lead") + "\n\n")

	for i, item := range m.snap.AuctionItems {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		style := rarityStyles[item.Rarity]
		playerBid := m.snap.PlayerBids[item.ID]

		status := dimStyle.Render("—")
		if playerBid > 0 {
			if playerBid >= item.CurrentBid {
				status = successStyle.Render("leading")
			} else {
				status = dangerStyle.Render("outbid")
			}
		}
		b.WriteString(fmt.Sprintf("%s%-24s %-9s bid %-10s yours %-10s %s\n",
			marker, style.Render(item.Name), style.Render(item.RarityName),
			FormatMoney(item.CurrentBid), FormatMoney(playerBid), status))
	}

	b.WriteString(fmt.Sprintf("\nAvailable balance: %s  (committed %s)\n",
		goldStyle.Render(FormatMoney(m.snap.AvailableBalance())),
		dimStyle.Render(FormatMoney(m.snap.CommittedBids()))))
	return b.String()
}

func (m Model) trophiesView() string {
	var b strings.Builder

	unlocked := make(map[string]bool, len(m.snap.UnlockedAchievements))
	for _, id := range m.snap.UnlockedAchievements {
		unlocked[id] = true
	}

	b.WriteString(fmt.Sprintf("Achievements %d/%d\n\n", len(unlocked), len(m.cfg.Achievements)))
	for _, a := range m.cfg.Achievements {
		if unlocked[a.ID] {
			b.WriteString(fmt.Sprintf("  %s %s\n", successStyle.Render("✓"), a.Name))
		} else {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", dimStyle.Render("·"),
				dimStyle.Render(a.Name), dimStyle.Render("— "+a.Description)))
		}
	}

	b.WriteString("\nDaily challenges\n")
	b.WriteString(m.challengeLines(m.snap.ActiveDailyChallenges, m.snap.DailyChallengeProgress, true))
	b.WriteString("\nWeekly challenges\n")
	b.WriteString(m.challengeLines(m.snap.ActiveWeeklyChallenges, m.snap.WeeklyChallengeProgress, false))
	return b.String()
}

func (m Model) challengeLines(ids []string, done map[string]bool, daily bool) string {
	var b strings.Builder
	for _, id := range ids {
		name, desc := m.challengeInfo(id, daily)
		if done[id] {
			b.WriteString(fmt.Sprintf("  %s %s\n", successStyle.Render("✓"), name))
		} else {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", dimStyle.Render("·"), name, dimStyle.Render("— "+desc)))
		}
	}
	return b.String()
}

func (m Model) challengeInfo(id string, daily bool) (string, string) {
	catalog := m.cfg.WeeklyChallenges
	if daily {
		catalog = m.cfg.DailyChallenges
	}
	for _, ch := range catalog {
		if ch.ID == id {
			return ch.Name, ch.Description
		}
	}
	return id, ""
}

func (m Model) leaderboardView() string {
	entries := m.leaderboardEntries()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Auction leaderboard — you are #%d\n\n", leaderboard.Rank(entries)))
	b.WriteString(m.board.View() + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d wins · %d rare+ · %s spent",
		m.snap.AuctionsWon,
		m.snap.RareItemsWon+m.snap.EpicItemsWon+m.snap.MythicItemsWon,
		FormatMoney(m.snap.TotalSpentOnAuctions))))
	return b.String()
}

// newBoardTable builds the leaderboard table widget.
func newBoardTable(entries []leaderboard.Entry) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: 18},
		{Title: "Wins", Width: 6},
		{Title: "Rare+", Width: 6},
		{Title: "Spent", Width: 12},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(boardRows(entries)),
		table.WithHeight(14),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("220"))
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)
	return t
}

func boardRows(entries []leaderboard.Entry) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		name := e.Name
		if e.IsPlayer {
			name = "★ " + name
		}
		rows = append(rows, table.Row{
			itoa(i + 1),
			name,
			fmt.Sprintf("%d", e.Wins),
			fmt.Sprintf("%d", e.RareWins),
			FormatMoney(e.TotalSpent),
		})
	}
	return rows
}

// progressBar renders a fixed-width unicode bar for a 0..1 fraction.
func progressBar(frac float64, width int) string {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	return purpleStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", width-filled))
}
