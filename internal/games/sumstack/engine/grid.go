package engine

import "sort"

// initialize fills the bottom InitialRows rows and resets all counters.
func (e *Engine) initialize(startLevel int) {
	e.blocks = make(map[BlockID]Block)
	e.freshIDs = make(map[BlockID]bool)
	e.selected = nil
	e.pending = nil
	e.tick = 0

	for row := GridRows - InitialRows; row < GridRows; row++ {
		for col := range GridCols {
			e.addBlock(row, col)
		}
	}

	e.level = startLevel
	e.score = 0
	e.blocksClearedInLevel = 0
	e.scrollProgress = 0
	e.gameOver = false
	e.timeLeft = 0
	if e.mode == ModeTime {
		e.timeLeft = e.timeLimit
	}
	e.targetSum = GenerateTarget(e.rng, startLevel)
}

// addBlock creates a block with a random value at (row, col).
func (e *Engine) addBlock(row, col int) Block {
	b := Block{
		ID:    e.nextID,
		Value: RandomValue(e.rng),
		Row:   row,
		Col:   col,
	}
	e.nextID++
	e.blocks[b.ID] = b
	return b
}

// topReached reports whether any block sits in the top row (or above it).
func (e *Engine) topReached() bool {
	for _, b := range e.blocks {
		if b.Row <= 0 {
			return true
		}
	}
	return false
}

// spawnRow pushes a new row in at the bottom. If the stack already touches
// the top it ends the game instead, leaving blocks and scroll progress as they are.
func (e *Engine) spawnRow() {
	// Checked against pre-shift rows: a block at row 0 would otherwise move to -1 unseen.
	if e.topReached() {
		e.gameOver = true
		e.emit(GameOverEvent{Score: e.score, Level: e.level})
		return
	}

	for id, b := range e.blocks {
		b.Row--
		e.blocks[id] = b
	}

	e.freshIDs = make(map[BlockID]bool, GridCols)
	ids := make([]BlockID, 0, GridCols)
	for col := range GridCols {
		b := e.addBlock(GridRows-1, col)
		e.freshIDs[b.ID] = true
		ids = append(ids, b.ID)
	}

	e.scrollProgress = 0
	e.emit(RowSpawnedEvent{BlockIDs: ids})
}

// ApplyGravity re-stacks every column so its blocks rest on the bottom row
// with no gaps, keeping their relative vertical order. The input slice is not modified.
func ApplyGravity(blocks []Block) []Block {
	columns := make(map[int][]Block)
	for _, b := range blocks {
		columns[b.Col] = append(columns[b.Col], b)
	}

	out := make([]Block, 0, len(blocks))
	for col := range GridCols {
		stack := columns[col]
		// Lowest block first
		sort.SliceStable(stack, func(i, j int) bool {
			return stack[i].Row > stack[j].Row
		})
		for i, b := range stack {
			b.Row = GridRows - 1 - i
			out = append(out, b)
		}
	}
	sortBlocks(out)
	return out
}

// applyGravity runs ApplyGravity over the engine's board.
func (e *Engine) applyGravity() {
	blocks := make([]Block, 0, len(e.blocks))
	for _, b := range e.blocks {
		blocks = append(blocks, b)
	}
	for _, b := range ApplyGravity(blocks) {
		e.blocks[b.ID] = b
	}
}
