package storage

import (
	"errors"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreHighScoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.LoadHighScore(); !errors.Is(err, ErrNoHighScore) {
		t.Fatalf("LoadHighScore() on an empty store error = %v, expected ErrNoHighScore", err)
	}

	tests := []struct {
		save     uint32
		expected uint32
	}{
		{12340, 12340},
		{5000, 12340}, // lower scores never replace the record
		{4294967295, 4294967295},
	}
	for _, tt := range tests {
		if err := store.SaveHighScore(tt.save); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", tt.save, err)
		}
		got, err := store.LoadHighScore()
		if err != nil {
			t.Fatalf("LoadHighScore() failed: %v", err)
		}
		if got != tt.expected {
			t.Errorf("LoadHighScore() after saving %d = %d, expected %d", tt.save, got, tt.expected)
		}
	}
}

func TestStoreHighScorePersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveHighScore(30000); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	if got, err := store.LoadHighScore(); err != nil || got != 30000 {
		t.Errorf("LoadHighScore() = %d, %v, expected 30000, nil", got, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct{ score, stage int }{{100, 2}, {50, 1}, {200, 4}} {
		if _, err := store.SaveScore("galaga", s.score, s.stage); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different mode
	if _, err := store.SaveScore("galaga_practice", 500, 9); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("galaga", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	expected := []struct{ score, stage int }{{200, 4}, {100, 2}, {50, 1}}
	for i, e := range expected {
		if scores[i].Score != e.score || scores[i].Stage != e.stage {
			t.Errorf("scores[%d] = %d (stage %d), expected %d (stage %d)",
				i, scores[i].Score, scores[i].Stage, e.score, e.stage)
		}
	}

	practice, err := store.TopScores("galaga_practice", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(practice) != 1 {
		t.Errorf("Expected 1 practice score, got %d", len(practice))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100, i)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("galaga", 100, 0)
	store.SaveScore("galaga", 200, 1)
	store.SaveScore("galaga_practice", 300, 2)
	store.SaveHighScore(200)

	if err := store.ClearScores("galaga"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("galaga", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("galaga_practice", 10); len(scores) != 1 {
		t.Error("Practice scores should not be affected by clearing galaga")
	}
	if high, err := store.LoadHighScore(); err != nil || high != 200 {
		t.Errorf("LoadHighScore() after clear = %d, %v, expected the record to stay", high, err)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("galaga", 100, 3)
	store.SaveScore("galaga", 300, 1)

	stats, err := store.GetGameStats("galaga")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.BestStage != 3 || stats.AvgScore != 200 {
		t.Errorf("GetGameStats() = %+v, expected 2 games, high 300, stage 3, avg 200", stats)
	}

	empty, err := store.GetGameStats("galaga_practice")
	if err != nil {
		t.Fatalf("GetGameStats() on an empty mode failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("GetGameStats() on an empty mode = %+v, expected zero stats", empty)
	}
}

func TestStoreNestedPath(t *testing.T) {
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
