package sumstack

import "fmt"

// HighScoreStore persists the best score per game id.
type HighScoreStore interface {
	HighScore(gameID string) (int, error)
	SetHighScore(gameID string, score int) error
}

// HighScoreTracker keeps the best score for one game id in sync with a store.
// It reads once and writes whenever an observed score beats the best.
type HighScoreTracker struct {
	store  HighScoreStore
	gameID string
	best   int
}

// NewHighScoreTracker creates a tracker. A nil store keeps the best in memory only.
func NewHighScoreTracker(store HighScoreStore, gameID string) *HighScoreTracker {
	return &HighScoreTracker{store: store, gameID: gameID}
}

// Load reads the stored best score.
func (t *HighScoreTracker) Load() (int, error) {
	if t.store == nil {
		return t.best, nil
	}
	best, err := t.store.HighScore(t.gameID)
	if err != nil {
		return t.best, fmt.Errorf("highscore: load %s: %w", t.gameID, err)
	}
	t.best = best
	return best, nil
}

// Observe records a score. It reports whether the score is a new best.
// The in-memory best is raised even when the write fails.
func (t *HighScoreTracker) Observe(score int) (bool, error) {
	if score <= t.best {
		return false, nil
	}
	t.best = score
	if t.store == nil {
		return true, nil
	}
	if err := t.store.SetHighScore(t.gameID, score); err != nil {
		return true, fmt.Errorf("highscore: save %s: %w", t.gameID, err)
	}
	return true, nil
}

// Best returns the best score seen so far.
func (t *HighScoreTracker) Best() int {
	return t.best
}

// GameID returns the game id the tracker writes under.
func (t *HighScoreTracker) GameID() string {
	return t.gameID
}
