package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/engine"
	"github.com/vovakirdan/minigames/internal/registry"
	"github.com/vovakirdan/minigames/internal/storage"
)

var (
	flagTicks         int
	flagRuns          int
	flagSimConfig     string
	flagSimDifficulty string
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run headless sessions with random input",
	Long: `Run one or more sessions of a game without a terminal, pressing random
bound keys and clicking random cells. Each run uses the seed of the previous
run plus one, so results are reproducible with --seed.

Examples:
  arcade sim racing
  arcade sim tetris --ticks 5000 --seed 42
  arcade sim whack-mole --runs 20 --difficulty hard`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Maximum ticks per run")
	simCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(cmd *cobra.Command, args []string) error {
	entry, err := registry.Lookup(args[0])
	if errors.Is(err, registry.ErrUnknownGame) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", args[0])
	}
	if err != nil {
		return err
	}
	if flagTicks <= 0 || flagRuns <= 0 {
		return fmt.Errorf("--ticks and --runs must be positive")
	}

	logger, err := newLogger("arcade-sim", log.InfoLevel)
	if err != nil {
		return err
	}

	cfg, err := config.LoadWithPreset(entry.Slug, flagSimConfig, flagSimDifficulty, entry.Config())
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		return fmt.Errorf("opening score ledger: %w", err)
	}
	defer store.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	out := cmd.OutOrStdout()
	for i := range flagRuns {
		runSeed := seed + int64(i)
		e, err := entry.New(cfg, runSeed)
		if err != nil {
			return err
		}
		high, err := store.HighScore(entry.Slug)
		if err != nil {
			return err
		}
		e.SetHighScore(high)

		res := simulate(entry.Slug, e, runSeed, flagTicks)
		if _, err := store.SaveResult(res); err != nil {
			return err
		}
		logger.Debug("run finished", "game", entry.Slug, "seed", runSeed, "outcome", res.Outcome, "score", res.Score)
		printRun(out, runSeed, res, e.Snapshot().Stats)
	}

	return printLedger(out, store, entry)
}

// simulate plays e with random input drawn from inputSeed until the session
// ends or ticks run out. Control keys are never pressed.
func simulate(game string, e *engine.Engine, inputSeed int64, ticks int) engine.Result {
	rng := rand.New(rand.NewSource(inputSeed))
	var keys []string
	for k, intent := range e.Config().Keymap {
		if !intent.IsControl() {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	f := e.Config().Field

	start := time.Now()
	held := ""
	for range ticks {
		if len(keys) > 0 && rng.Intn(3) == 0 {
			if held != "" {
				e.KeyUp(held)
			}
			held = keys[rng.Intn(len(keys))]
			e.KeyDown(held)
		}
		if f.Grid() && rng.Intn(4) == 0 {
			e.Click(rng.Intn(f.Cells()))
		}
		if !e.Step() {
			break
		}
	}

	s := e.Session()
	return engine.Result{
		SessionID: uuid.New(),
		Game:      game,
		Score:     s.Score,
		Level:     s.Level,
		HighScore: s.HighScore,
		Outcome:   s.Outcome(),
		Ticks:     s.Tick,
		Duration:  time.Since(start),
	}
}

func printRun(w io.Writer, seed int64, res engine.Result, stats []string) {
	fmt.Fprintf(w, "seed %-20d  %-8s  score %6d  level %2d  ticks %6d", seed, res.Outcome, res.Score, res.Level, res.Ticks)
	for _, s := range stats {
		fmt.Fprintf(w, "  | %s", s)
	}
	fmt.Fprintln(w)
}

func printLedger(w io.Writer, store *storage.Store, entry registry.Entry) error {
	stats, err := store.GetGameStats(entry.Slug)
	if err != nil {
		return err
	}
	top, err := store.TopScores(entry.Slug, 5)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %d runs, %d won, best %d, average %.1f\n",
		entry.Name, stats.GamesCount, stats.Wins, stats.HighScore, stats.AvgScore)
	for i, s := range top {
		fmt.Fprintf(w, "  #%d  %6d  level %2d  %s\n", i+1, s.Score, s.Level, s.Outcome)
	}
	return nil
}
