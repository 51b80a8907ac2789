package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tycoon/internal/storage"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe a profile and start over",
	Long: `Delete a saved profile and its auction win history. Unlike prestige,
this erases everything, including the prestige bonus.

Examples:
  tycoon reset --profile alice
  tycoon reset --profile alice --yes`,
	Run: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "Skip the confirmation prompt")
}

func runReset(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if _, err := store.LoadProfile(flagProfile); errors.Is(err, storage.ErrNoProfile) {
		fmt.Printf("No saved profile %q.\n", flagProfile)
		return
	}

	if !flagResetYes {
		fmt.Printf("Delete profile %q and all its history? [y/N] ", flagProfile)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return
		}
	}

	if err := store.DeleteProfile(flagProfile); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting profile: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Profile %q wiped.\n", flagProfile)
}
