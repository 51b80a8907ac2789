package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tycoon/internal/config"
	"github.com/vovakirdan/tui-tycoon/internal/platform/tui"
	"github.com/vovakirdan/tui-tycoon/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play your empire",
	Long: `Start playing. A saved profile picks up where it left off and
collects the passive income it earned while you were away.

Controls:
  Space/Enter   - Click for money / buy selection
  Tab / l / h   - Switch tabs
  Up/Down       - Move selection
  b             - Buy selected business
  s             - Start an auction round
  1             - Bid 1K on the selected item
  w             - Bid enough to take the lead
  P             - Prestige (when eligible)
  Ctrl+S        - Save now
  Q/Ctrl+C      - Save and quit

Examples:
  tycoon play
  tycoon play --profile alice
  tycoon play --config ./my-tycoon.yaml --seed 42`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - session still works, nothing persists
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	model, err := tui.NewSession(cfg, store, flagProfile, flagSeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Warning: stdout is not a terminal")
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
		os.Exit(1)
	}
}
