package engine

import "math"

// Speed returns the scroll progress added per tick at the given level.
func Speed(level int) float64 {
	return 0.5 + float64(level)*0.15
}

// Tick advances scroll progress by one period and pushes a row in when the
// threshold is reached. Ticks are ignored while idle, paused or after game over.
func (e *Engine) Tick() Result {
	if !e.active() {
		return e.result()
	}

	e.tick++
	if len(e.freshIDs) > 0 {
		e.freshIDs = make(map[BlockID]bool)
	}

	if e.mode == ModeTime && e.timeLeft > 0 {
		e.timeLeft -= TickPeriod
		if e.timeLeft < 0 {
			e.timeLeft = 0
		}
	}

	e.scrollProgress += Speed(e.level)
	if e.scrollProgress >= ScrollThreshold {
		e.spawnRow()
	}

	return e.result()
}

// SecondsToNextRow estimates the wall-clock seconds until the next row push.
// It is informational only.
func (e *Engine) SecondsToNextRow() int {
	speed := Speed(e.level)
	ticks := (ScrollThreshold - e.scrollProgress) / speed
	return int(math.Ceil(ticks * TickPeriod.Seconds()))
}

// ForceBlockRow moves an existing block to another row. It bypasses all
// invariants and exists for scenario setup in tests and debugging tools.
func (e *Engine) ForceBlockRow(id BlockID, row int) bool {
	b, ok := e.blocks[id]
	if !ok {
		return false
	}
	b.Row = row
	e.blocks[id] = b
	return true
}

// SpawnRow pushes a row in immediately, as if the scroll threshold had been reached.
// It is a no-op unless a game is active.
func (e *Engine) SpawnRow() Result {
	if e.active() {
		e.spawnRow()
	}
	return e.result()
}
