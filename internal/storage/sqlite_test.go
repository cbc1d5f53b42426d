package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200, 400, 300} {
		if _, err := store.SaveScore("asteroids", "ann", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", "ann", 999); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("asteroids", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 400 || scores[1].Score != 300 || scores[2].Score != 200 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreRecentScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{10, 30, 20} {
		store.SaveScore("asteroids", "ann", s)
	}

	scores, err := store.RecentScores("asteroids", 2)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 20 || scores[1].Score != 30 {
		t.Errorf("RecentScores() = %v, expected newest first [20 30]", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("asteroids")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty history, got %d", high)
	}

	store.SaveScore("asteroids", "ann", 100)
	store.SaveScore("asteroids", "ann", 300)
	store.SaveScore("asteroids", "ann", 200)

	high, err = store.HighScore("asteroids")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("asteroids", "ann", 100)
	store.SaveScore("asteroids", "ann", 200)
	store.SaveScore("other", "ann", 300)

	if err := store.ClearScores("asteroids"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("asteroids", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	others, _ := store.TopScores("other", 10)
	if len(others) != 1 {
		t.Errorf("Other games should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("asteroids")
	if err != nil {
		t.Fatalf("GetGameStats() on empty history failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("asteroids", "ann", 100)
	store.SaveScore("asteroids", "ann", 300)

	stats, err = store.GetGameStats("asteroids")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Players != 1 || stats.LastPlayed.IsZero() {
		t.Errorf("players = %d, last played = %v", stats.Players, stats.LastPlayed)
	}
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		player string
		score  int
	}{
		{"ann", 120},
		{"bob", 900},
		{"ann", 450},
		{"", 50},
		{"ann", 80},
	}
	for _, tc := range tests {
		if _, err := store.SaveScore("asteroids", tc.player, tc.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.PlayerScores("asteroids", "ann", 2)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 450 || scores[1].Score != 120 {
		t.Errorf("PlayerScores() = %v, expected [450 120]", scores)
	}
	for _, e := range scores {
		if e.Player != "ann" {
			t.Errorf("entry %d belongs to %q", e.ID, e.Player)
		}
	}

	stats, err := store.GetGameStats("asteroids")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Players != 2 {
		t.Errorf("Players = %d, anonymous games should not count", stats.Players)
	}
}
