// tycoon is a terminal business-empire simulator.
//
// Usage:
//
//	tycoon play              - Play your empire in the terminal
//	tycoon serve             - Start SSH server for remote play
//	tycoon stats             - Show auction statistics for a profile
//	tycoon leaderboard       - Show the auction leaderboard
//	tycoon reset             - Wipe a profile and start over
//
// Global flags:
//
//	--profile <name>  - Profile to play (default: default)
//	--seed <value>    - RNG seed for reproducible sessions
//	--db <path>       - Database path (default: ~/.tycoon/tycoon.db)
//	--config <path>   - Custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagProfile string
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tycoon",
	Short: "Tycoon - Build a business empire in your terminal",
	Long: `Tycoon is a terminal-based incremental business simulator. Click for
money, buy businesses for passive income, outbid rivals at timed
auctions, and prestige for permanent multipliers.

Available commands:
  play         - Play your empire
  serve        - Start SSH server for remote play
  stats        - View auction statistics
  leaderboard  - View the auction leaderboard
  reset        - Wipe a profile

Examples:
  tycoon play
  tycoon play --profile alice
  tycoon serve --ssh :2222
  tycoon stats --profile alice
  tycoon reset --profile alice`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "default", "Profile name")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tycoon/tycoon.db", "Path to profiles database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(resetCmd)
}
