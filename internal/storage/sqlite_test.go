package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/minigames/internal/engine"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, game string, score int, outcome string) {
	t.Helper()
	_, err := store.SaveResult(engine.Result{
		SessionID: uuid.New(),
		Game:      game,
		Score:     score,
		Level:     1 + score/100,
		Outcome:   outcome,
	})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openStore(t)
	b := openStore(t)

	save(t, a, "tetris", 100, "lost")

	high, err := b.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected an empty second ledger, got high score %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openStore(t)

	save(t, store, "snake-game", 100, "lost")
	save(t, store, "snake-game", 50, "lost")
	save(t, store, "snake-game", 200, "won")
	save(t, store, "racing", 500, "lost")

	scores, err := store.TopScores("snake-game", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	expected := []int{200, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d].Score = %d, expected %d", i, scores[i].Score, want)
		}
	}
	if scores[0].Outcome != "won" || scores[0].Level != 3 {
		t.Errorf("top entry = %+v, expected won at level 3", scores[0])
	}
	if _, err := uuid.Parse(scores[0].SessionID); err != nil {
		t.Errorf("SessionID %q is not a UUID: %v", scores[0].SessionID, err)
	}

	racing, err := store.TopScores("racing", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(racing) != 1 {
		t.Errorf("Expected 1 racing score, got %d", len(racing))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "test", (i+1)*100, "lost")
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "tetris", 100, "lost")
	save(t, store, "tetris", 300, "lost")
	save(t, store, "tetris", 200, "lost")

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openStore(t)

	save(t, store, "tetris", 100, "lost")
	save(t, store, "tetris", 200, "lost")
	save(t, store, "racing", 300, "lost")

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	tetris, _ := store.TopScores("tetris", 10)
	if len(tetris) != 0 {
		t.Errorf("Expected 0 tetris scores after clear, got %d", len(tetris))
	}

	racing, _ := store.TopScores("racing", 10)
	if len(racing) != 1 {
		t.Errorf("Racing scores should not be affected by clearing tetris")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openStore(t)

	save(t, store, "laser-maze", 0, "won")
	save(t, store, "laser-maze", 0, "lost")
	save(t, store, "whack-mole", 40, "lost")
	save(t, store, "whack-mole", 80, "lost")

	stats, err := store.GetGameStats("whack-mole")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 80 || stats.TotalScore != 120 || stats.AvgScore != 60 {
		t.Errorf("GetGameStats() = %+v", stats)
	}
	if stats.LastPlayed.IsZero() || time.Since(stats.LastPlayed) > 24*time.Hour {
		t.Errorf("LastPlayed = %v, expected about now", stats.LastPlayed)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["laser-maze"].Wins != 1 {
		t.Errorf("laser-maze wins = %d, expected 1", all["laser-maze"].Wins)
	}

	empty, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("GetGameStats(unplayed) = %+v", empty)
	}
}

func TestParseTime(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		name     string
		in       any
		expected time.Time
	}{
		{"time value", now, now},
		{"sqlite string", "2024-05-01 12:30:00", now},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}
	for _, tt := range tests {
		if got := parseTime(tt.in); !got.Equal(tt.expected) {
			t.Errorf("parseTime(%s) = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}
