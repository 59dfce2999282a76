package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigames/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	slugLen, nameLen := len("Slug"), len("Name")
	for _, g := range games {
		slugLen = max(slugLen, len(g.Slug))
		nameLen = max(nameLen, len(g.Name))
	}

	fmt.Printf("  %-*s  %-*s  %-10s  %s\n", slugLen, "Slug", nameLen, "Name", "Difficulty", "Route")
	fmt.Printf("  %-*s  %-*s  %-10s  %s\n", slugLen, "----", nameLen, "----", "----------", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %-10s  %s\n", slugLen, g.Slug, nameLen, g.Name, g.Difficulty, g.Path())
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <slug>' to play a game.")
}
