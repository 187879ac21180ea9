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

func saveScore(t *testing.T, store *Store, gameID string, level, score int) string {
	t.Helper()
	runID := uuid.NewString()
	if _, err := store.SaveScore(ScoreRecord{
		RunID:  runID,
		GameID: gameID,
		Mode:   "classic",
		Level:  level,
		Score:  score,
	}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	return runID
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saveScore(t, store, "sumstack", 1, 100)
	saveScore(t, store, "sumstack", 2, 50)
	top := saveScore(t, store, "sumstack", 3, 200)
	saveScore(t, store, "sumstack_time", 1, 500)

	scores, err := store.TopScores("sumstack", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].RunID != top || scores[0].Level != 3 || scores[0].Mode != "classic" {
		t.Errorf("top entry = %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be parsed")
	}

	timeScores, err := store.TopScores("sumstack_time", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(timeScores) != 1 {
		t.Errorf("Expected 1 time-mode score, got %d", len(timeScores))
	}
}

func TestStoreSaveScoreRejectsDuplicateRun(t *testing.T) {
	store := openTestStore(t)

	runID := saveScore(t, store, "sumstack", 1, 10)
	_, err := store.SaveScore(ScoreRecord{RunID: runID, GameID: "sumstack", Mode: "classic", Level: 1, Score: 20})
	if err == nil {
		t.Error("saving the same run twice should fail")
	}

	if _, err := store.SaveScore(ScoreRecord{GameID: "sumstack", Score: 1}); err == nil {
		t.Error("empty run id should be rejected")
	}
}

func TestStoreScoreByRun(t *testing.T) {
	store := openTestStore(t)

	runID := saveScore(t, store, "sumstack_time", 4, 320)

	entry, err := store.ScoreByRun(runID)
	if err != nil {
		t.Fatalf("ScoreByRun() failed: %v", err)
	}
	if entry == nil || entry.Score != 320 || entry.Level != 4 || entry.GameID != "sumstack_time" {
		t.Errorf("ScoreByRun() = %+v", entry)
	}

	missing, err := store.ScoreByRun(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("ScoreByRun(unknown) = %+v, %v", missing, err)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		saveScore(t, store, "test", 1, (i+1)*100)
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

func TestStoreHighScoreOnlyRises(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("sumstack")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	steps := []struct {
		set  int
		want int
	}{
		{100, 100},
		{300, 300},
		{200, 300},
		{300, 300},
		{301, 301},
	}
	for _, st := range steps {
		if err := store.SetHighScore("sumstack", st.set); err != nil {
			t.Fatalf("SetHighScore(%d) failed: %v", st.set, err)
		}
		got, err := store.HighScore("sumstack")
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if got != st.want {
			t.Errorf("after SetHighScore(%d): HighScore() = %d, expected %d", st.set, got, st.want)
		}
	}

	// Other games are independent
	if other, _ := store.HighScore("sumstack_time"); other != 0 {
		t.Errorf("time-mode high score = %d, expected 0", other)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	saveScore(t, store, "sumstack", 1, 100)
	saveScore(t, store, "sumstack", 1, 200)
	saveScore(t, store, "sumstack_time", 1, 300)
	store.SetHighScore("sumstack", 200)
	store.SetHighScore("sumstack_time", 300)

	if err := store.ClearScores("sumstack"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("sumstack", 10); len(scores) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(scores))
	}
	if high, _ := store.HighScore("sumstack"); high != 0 {
		t.Errorf("high score should be cleared, got %d", high)
	}

	if scores, _ := store.TopScores("sumstack_time", 10); len(scores) != 1 {
		t.Error("time-mode scores should not be affected by clearing classic")
	}
	if high, _ := store.HighScore("sumstack_time"); high != 300 {
		t.Errorf("time-mode high score = %d, expected 300", high)
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		saveScore(t, store, "test", 1, i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("sumstack")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	saveScore(t, store, "sumstack", 2, 100)
	saveScore(t, store, "sumstack", 5, 300)
	store.SetHighScore("sumstack", 450) // best reached mid-game in a run that was abandoned

	stats, err := store.GetGameStats("sumstack")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 450 {
		t.Errorf("HighScore = %d, expected 450", stats.HighScore)
	}
	if stats.BestLevel != 5 {
		t.Errorf("BestLevel = %d, expected 5", stats.BestLevel)
	}
	if stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("AvgScore = %v TotalScore = %d", stats.AvgScore, stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
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
