package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zukko-arcade/internal/nav"
	"github.com/vovakirdan/zukko-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available activities",
	Long:  `Shows every game registered in the arcade, plus the buddy.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	fmt.Println("Available activities:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := len(nav.BuddyReward.String())
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.Activity.String()))
	}

	fmt.Printf("  %-*s  %-14s %s\n", maxIDLen, "ID", "Title", "About")
	fmt.Printf("  %-*s  %-14s %s\n", maxIDLen, "--", "-----", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %-14s %s\n", maxIDLen, g.Activity, g.Title, g.Blurb)
	}
	fmt.Printf("  %-*s  %-14s %s\n", maxIDLen, nav.BuddyReward, "Wise Owl", "Riddles, praise and fun facts.")

	fmt.Println()
	fmt.Println("Run 'zukko play <id>' to start one.")
}
