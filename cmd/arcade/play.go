package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/platform/tui"
	"github.com/vovakirdan/minigames/internal/registry"
	"github.com/vovakirdan/minigames/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move (game dependent)
  Space        - Fire/Jump/Drop (game dependent)
  1-9, mouse   - Pick a cell (Whack-a-Mole)
  P            - Pause
  R            - Restart
  Esc/Ctrl+C   - Quit

Difficulty options:
  easy   - Fewer hazards, slower ticks, extra lives
  normal - The game's own tuning
  hard   - More hazards, faster ticks, fewer lives
  fixed  - No speed-ups as levels rise

Examples:
  arcade play racing
  arcade play tetris --difficulty easy
  arcade play space-invaders --difficulty fixed
  arcade play bee-shooter --config ./my-bees.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	entry, err := registry.Lookup(args[0])
	if errors.Is(err, registry.ErrUnknownGame) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", args[0])
	}
	if err != nil {
		return err
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	logger, err := newLogger("arcade", log.WarnLevel)
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open score ledger", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Runtime: runtimeConfig(flagDifficulty, flagConfig),
		Store:   store,
		Logger:  logger,
	}
	if err := tui.Run(&entry, opts); err != nil {
		return fmt.Errorf("running %s: %w", entry.Slug, err)
	}
	return nil
}
