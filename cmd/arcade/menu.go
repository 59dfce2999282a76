package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/platform/tui"
	"github.com/vovakirdan/minigames/internal/storage"
)

var (
	flagMenuConfig     string
	flagMenuDifficulty string
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive game menu",
	Long: `Launch an interactive menu to browse and select games.

Menu controls:
  Up/Down, j/k     - Navigate games
  Left/Right       - Change difficulty
  Enter/Space      - Play selected game
  Tab              - High scores of this session
  Q/Ctrl+C         - Quit

In game, Esc returns to the menu.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuConfig, "config", "", "Path to custom game config YAML, applied to every game")
	menuCmd.Flags().StringVar(&flagMenuDifficulty, "difficulty", "", "Initial difficulty preset: easy, normal, hard, fixed")
}

func runMenu(cmd *cobra.Command, args []string) error {
	if _, err := config.ParsePreset(flagMenuDifficulty); err != nil {
		return err
	}

	logger, err := newLogger("arcade", log.WarnLevel)
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		return fmt.Errorf("opening score ledger: %w", err)
	}
	defer store.Close()

	opts := tui.Options{
		Runtime: runtimeConfig(flagMenuDifficulty, flagMenuConfig),
		Store:   store,
		Logger:  logger,
	}
	return tui.Run(nil, opts)
}
