// arcade is a terminal arcade of small real-time games driven by one
// data-configured simulation engine.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade sim <game>        - Run seeded headless sessions with random input
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/minigames/internal/core"
	_ "github.com/vovakirdan/minigames/internal/games/all" // register the catalog
)

var (
	// Global flags
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Mini Games - play arcade classics in your terminal",
	Long: `Mini Games is a collection of small real-time arcade games that run
in the terminal, locally or over SSH.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  sim      - Run headless sessions with random input

Examples:
  arcade list
  arcade play snake-game
  arcade menu --difficulty hard
  arcade serve --ssh :2222
  arcade sim tetris --ticks 2000 --seed 7`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = fresh seed per session)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default warn for interactive commands, info otherwise)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger creates the stderr logger at --log-level, or fallback when the
// flag is not set.
func newLogger(prefix string, fallback log.Level) (*log.Logger, error) {
	level := fallback
	if flagLogLevel != "" {
		var err error
		if level, err = log.ParseLevel(strings.ToLower(flagLogLevel)); err != nil {
			return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// runtimeConfig sizes the session to the local terminal.
func runtimeConfig(difficulty, configPath string) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	cfg.Difficulty = difficulty
	cfg.ConfigPath = configPath
	return cfg
}
