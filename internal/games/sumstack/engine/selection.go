package engine

// pointsPerBlock is multiplied by the level and the number of blocks cleared.
const pointsPerBlock = 10

// ToggleSelection adds id to the selection or removes it if already selected.
// Unknown ids, and any call while paused, idle or after game over, are ignored.
//
// Reaching the target exactly clears the selected blocks; going over it drops
// the selection without penalty.
func (e *Engine) ToggleSelection(id BlockID) Result {
	if !e.active() {
		return e.result()
	}
	if _, ok := e.blocks[id]; !ok {
		return e.result()
	}

	if idx := e.selectedIndex(id); idx >= 0 {
		e.selected = append(e.selected[:idx], e.selected[idx+1:]...)
	} else {
		e.selected = append(e.selected, id)
	}

	sum := e.selectionSum()
	switch {
	case len(e.selected) > 0 && sum == e.targetSum:
		e.clearSelection(sum)
	case sum > e.targetSum:
		e.emit(SelectionOverflowEvent{Sum: sum, Target: e.targetSum})
		e.selected = nil
	}

	return e.result()
}

// ClearSelection drops the current selection without scoring.
func (e *Engine) ClearSelection() Result {
	if e.active() {
		e.selected = nil
	}
	return e.result()
}

func (e *Engine) selectedIndex(id BlockID) int {
	for i, sel := range e.selected {
		if sel == id {
			return i
		}
	}
	return -1
}

// selectionSum adds up the values of the selected blocks that still exist.
func (e *Engine) selectionSum() int {
	sum := 0
	for _, id := range e.selected {
		if b, ok := e.blocks[id]; ok {
			sum += b.Value
		}
	}
	return sum
}

// clearSelection resolves a successful match.
func (e *Engine) clearSelection(sum int) {
	cleared := make([]BlockID, len(e.selected))
	copy(cleared, e.selected)
	count := len(cleared)

	points := count * pointsPerBlock * e.level
	e.score += points

	for _, id := range cleared {
		delete(e.blocks, id)
		delete(e.freshIDs, id)
	}
	e.applyGravity()
	e.selected = nil

	// Target uses the level the clear happened at.
	e.targetSum = GenerateTarget(e.rng, e.level)

	e.blocksClearedInLevel += count
	for e.blocksClearedInLevel >= BlocksPerLevel {
		e.blocksClearedInLevel -= BlocksPerLevel
		e.level++
		e.emit(LevelUpEvent{Level: e.level, Display: LevelUpDuration})
	}

	e.emit(ClearSuccessEvent{BlockIDs: cleared, Sum: sum, Points: points})
}
