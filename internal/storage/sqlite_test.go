package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arkanoid/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arkanoid", "scores.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		game  string
		score int
		level int
	}{
		{"arkanoid", 100, 1},
		{"arkanoid", 50, 1},
		{"arkanoid", 210, 3},
		{"other", 500, 2},
	}
	for _, r := range runs {
		runID, err := store.SaveScore(r.game, r.score, r.level)
		if err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
		if _, err := uuid.Parse(runID); err != nil {
			t.Errorf("SaveScore() run ID %q is not a UUID: %v", runID, err)
		}
	}

	scores, err := store.TopScores("arkanoid", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d entries, expected 3", len(scores))
	}

	expected := []int{210, 100, 50}
	for i, e := range expected {
		if scores[i].Score != e {
			t.Errorf("scores[%d].Score = %d, expected %d", i, scores[i].Score, e)
		}
		if scores[i].GameID != "arkanoid" {
			t.Errorf("scores[%d].GameID = %s, expected arkanoid", i, scores[i].GameID)
		}
	}
	if scores[0].Level != 3 {
		t.Errorf("scores[0].Level = %d, expected 3", scores[0].Level)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 15 {
		if _, err := store.SaveScore("arkanoid", i*10, 1); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	tests := []struct {
		limit    int
		expected int
	}{
		{5, 5},
		{0, 10}, // default
		{100, 15},
	}
	for _, tt := range tests {
		scores, err := store.TopScores("arkanoid", tt.limit)
		if err != nil {
			t.Fatalf("TopScores() failed: %v", err)
		}
		if len(scores) != tt.expected {
			t.Errorf("TopScores(%d) returned %d entries, expected %d", tt.limit, len(scores), tt.expected)
		}
	}
}

func TestStoreScoreByRun(t *testing.T) {
	store := openTestStore(t)

	runID, err := store.SaveScore("arkanoid", 105, 2)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	e, err := store.ScoreByRun(runID)
	if err != nil {
		t.Fatalf("ScoreByRun() failed: %v", err)
	}
	if e == nil || e.Score != 105 || e.Level != 2 || e.RunID != runID {
		t.Errorf("ScoreByRun() = %+v", e)
	}

	missing, err := store.ScoreByRun(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("ScoreByRun(unknown) = %v, %v, expected nil, nil", missing, err)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("arkanoid")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty table = %d, expected 0", high)
	}

	store.SaveScore("arkanoid", 100, 1)
	store.SaveScore("arkanoid", 300, 2)
	store.SaveScore("arkanoid", 200, 2)

	if high, _ = store.HighScore("arkanoid"); high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("arkanoid", 100, 1)
	store.SaveScore("other", 50, 1)

	if err := store.ClearScores("arkanoid"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("arkanoid", 10); len(scores) != 0 {
		t.Errorf("expected no scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("ClearScores should not touch other games")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("arkanoid")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("GetGameStats() on empty table = %+v", stats)
	}

	store.SaveScore("arkanoid", 100, 1)
	store.SaveScore("arkanoid", 200, 3)

	stats, err = store.GetGameStats("arkanoid")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 200 || stats.BestLevel != 3 || stats.TotalScore != 300 {
		t.Errorf("GetGameStats() = %+v", stats)
	}
	if stats.AvgScore != 150 {
		t.Errorf("AvgScore = %v, expected 150", stats.AvgScore)
	}
}
