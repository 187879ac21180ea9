package engine

import "time"

// Event is a one-shot notification emitted alongside a snapshot.
// Presentation code may animate events but never feeds them back.
type Event interface {
	event()
}

// ClearSuccessEvent fires when the selection matched the target and was removed.
type ClearSuccessEvent struct {
	BlockIDs []BlockID
	Sum      int
	Points   int
}

func (ClearSuccessEvent) event() {}

// LevelUpEvent fires once per BlocksPerLevel threshold crossed.
type LevelUpEvent struct {
	Level   int
	Display time.Duration
}

func (LevelUpEvent) event() {}

// RowSpawnedEvent fires when a new bottom row was pushed in.
type RowSpawnedEvent struct {
	BlockIDs []BlockID
}

func (RowSpawnedEvent) event() {}

// SelectionOverflowEvent fires when the selection exceeded the target and was dropped.
type SelectionOverflowEvent struct {
	Sum    int
	Target int
}

func (SelectionOverflowEvent) event() {}

// GameOverEvent fires when a row push was blocked by a block at the top.
type GameOverEvent struct {
	Score int
	Level int
}

func (GameOverEvent) event() {}
