package engine

import (
	"sort"
	"time"
)

// BlockID identifies a block for as long as it stays on the board.
// IDs are never reused within an engine.
type BlockID int

// Block is a single numbered tile.
type Block struct {
	ID    BlockID
	Value int
	Row   int // 0 is the top row
	Col   int
	IsNew bool // spawned by the latest row push
}

// Snapshot is an immutable copy of the game state handed to presentation code.
type Snapshot struct {
	Tick                 uint64
	Started              bool
	Paused               bool
	GameOver             bool
	Mode                 Mode
	StartLevel           int
	Level                int
	Score                int
	TargetSum            int
	CurrentSum           int
	Blocks               []Block   // sorted by row, then column
	SelectedIDs          []BlockID // selection order
	ScrollProgress       float64
	BlocksClearedInLevel int
	TimeLeft             time.Duration
	SecondsToNextRow     int
}

// Result is returned by every engine operation.
type Result struct {
	State  Snapshot
	Events []Event
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	blocks := make([]Block, 0, len(e.blocks))
	for _, b := range e.blocks {
		b.IsNew = e.freshIDs[b.ID]
		blocks = append(blocks, b)
	}
	sortBlocks(blocks)

	selected := make([]BlockID, len(e.selected))
	copy(selected, e.selected)

	return Snapshot{
		Tick:                 e.tick,
		Started:              e.started,
		Paused:               e.paused,
		GameOver:             e.gameOver,
		Mode:                 e.mode,
		StartLevel:           e.startLevel,
		Level:                e.level,
		Score:                e.score,
		TargetSum:            e.targetSum,
		CurrentSum:           e.selectionSum(),
		Blocks:               blocks,
		SelectedIDs:          selected,
		ScrollProgress:       e.scrollProgress,
		BlocksClearedInLevel: e.blocksClearedInLevel,
		TimeLeft:             e.timeLeft,
		SecondsToNextRow:     e.SecondsToNextRow(),
	}
}

// BlockAt returns the block occupying (row, col), if any.
func (s Snapshot) BlockAt(row, col int) (Block, bool) {
	for _, b := range s.Blocks {
		if b.Row == row && b.Col == col {
			return b, true
		}
	}
	return Block{}, false
}

// IsSelected reports whether id is part of the current selection.
func (s Snapshot) IsSelected(id BlockID) bool {
	for _, sel := range s.SelectedIDs {
		if sel == id {
			return true
		}
	}
	return false
}

// sortBlocks orders blocks top-to-bottom, left-to-right.
func sortBlocks(blocks []Block) {
	sort.Slice(blocks, func(i, j int) bool {
		if blocks[i].Row != blocks[j].Row {
			return blocks[i].Row < blocks[j].Row
		}
		return blocks[i].Col < blocks[j].Col
	})
}
