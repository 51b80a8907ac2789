package tui

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-tycoon/internal/config"
)

// FormatMoney renders an amount with a currency sign and K/M/B suffix.
func FormatMoney(v float64) string {
	switch {
	case v >= 1e12:
		return fmt.Sprintf("₹%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("₹%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("₹%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("₹%.1fK", v/1e3)
	default:
		return fmt.Sprintf("₹%.0f", v)
	}
}

// formatDuration renders whole seconds as m:ss.
func formatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func levelReq(cfg *config.GameConfig) string {
	return strconv.Itoa(cfg.Prestige.MinLevel)
}
