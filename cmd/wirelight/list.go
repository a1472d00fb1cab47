package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wirelight/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available grid shapes",
	Long:  `Shows a list of all grid shapes registered with wirelight.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	shapes := registry.List()

	if len(shapes) == 0 {
		fmt.Println("No grid shapes available.")
		return
	}

	fmt.Println("Available shapes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range shapes {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "ID", "Directions", "Title")
	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "--", "----------", "-----")

	for _, s := range shapes {
		fmt.Printf("  %-*s  %-10d  %s\n", maxIDLen, s.ID, s.Directions, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'wirelight generate --shape <id>' to build a puzzle.")
}
