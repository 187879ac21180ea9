// Package engine implements the Sum Stack simulation: a grid of numbered blocks
// that scrolls upward while the player clears blocks whose values add up to a target.
//
// The engine is pure and synchronous. It has no timers, no goroutines and no
// terminal dependencies; callers deliver ticks and selection events and read
// immutable snapshots back. An Engine is not safe for concurrent use.
package engine

import "time"

// Grid dimensions and progression constants.
const (
	GridRows       = 10
	GridCols       = 6
	InitialRows    = 4
	RowsPerLevel   = 5
	BlocksPerLevel = GridCols * RowsPerLevel

	MinStartLevel = 1
	MaxStartLevel = 10

	// ScrollThreshold is the scroll progress at which a new row is pushed in.
	ScrollThreshold = 100.0
)

// Timing constants.
const (
	TickPeriod       = 100 * time.Millisecond
	LevelUpDuration  = 2000 * time.Millisecond
	DefaultTimeLimit = 120 * time.Second
)

// Mode selects the ruleset. Clearing and scrolling are identical in both modes;
// time mode additionally counts TimeLeft down.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeTime    Mode = "time"
)

// ParseMode converts a string to a Mode. Unknown values fall back to classic.
func ParseMode(s string) Mode {
	if Mode(s) == ModeTime {
		return ModeTime
	}
	return ModeClassic
}

// Engine owns the game state. All mutation goes through its methods.
type Engine struct {
	rng       Source
	timeLimit time.Duration

	// Lifecycle
	started bool
	paused  bool

	mode       Mode
	startLevel int
	tick       uint64

	// Board
	blocks   map[BlockID]Block
	nextID   BlockID
	freshIDs map[BlockID]bool // spawned by the latest row push, cleared on next tick

	// Selection
	selected []BlockID

	// Scoring and progression
	targetSum            int
	score                int
	level                int
	blocksClearedInLevel int
	scrollProgress       float64
	timeLeft             time.Duration
	gameOver             bool

	pending []Event
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeLimit sets the initial TimeLeft for time mode.
func WithTimeLimit(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeLimit = d
		}
	}
}

// New creates an idle engine that draws all randomness from src.
func New(src Source, opts ...Option) *Engine {
	e := &Engine{
		rng:        src,
		timeLimit:  DefaultTimeLimit,
		mode:       ModeClassic,
		startLevel: MinStartLevel,
		level:      MinStartLevel,
		blocks:     make(map[BlockID]Block),
		freshIDs:   make(map[BlockID]bool),
		nextID:     1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ClampStartLevel restricts a start level to [MinStartLevel, MaxStartLevel].
func ClampStartLevel(level int) int {
	if level < MinStartLevel {
		return MinStartLevel
	}
	if level > MaxStartLevel {
		return MaxStartLevel
	}
	return level
}

// Start begins a fresh game in the given mode. Out-of-range start levels are clamped.
func (e *Engine) Start(mode Mode, startLevel int) Result {
	if mode != ModeTime {
		mode = ModeClassic
	}
	e.mode = mode
	e.startLevel = ClampStartLevel(startLevel)
	e.initialize(e.startLevel)
	e.started = true
	e.paused = false
	return e.result()
}

// Retry restarts with the mode and start level of the last Start.
func (e *Engine) Retry() Result {
	return e.Start(e.mode, e.startLevel)
}

// Pause suspends ticks and selection. It has no effect before Start.
func (e *Engine) Pause() Result {
	if e.started {
		e.paused = true
	}
	return e.result()
}

// Resume lifts a Pause. Selection made before pausing is preserved.
func (e *Engine) Resume() Result {
	e.paused = false
	return e.result()
}

// AbandonToMenu discards the current game and returns the engine to idle.
// Mode and start level are remembered for a later Retry.
func (e *Engine) AbandonToMenu() Result {
	e.started = false
	e.paused = false
	e.gameOver = false
	e.tick = 0
	e.blocks = make(map[BlockID]Block)
	e.freshIDs = make(map[BlockID]bool)
	e.selected = nil
	e.score = 0
	e.targetSum = 0
	e.scrollProgress = 0
	e.blocksClearedInLevel = 0
	e.level = e.startLevel
	e.timeLeft = 0
	return e.result()
}

// active reports whether timer and input transitions are currently accepted.
func (e *Engine) active() bool {
	return e.started && !e.paused && !e.gameOver
}

// Started reports whether a game is in progress (including a finished one).
func (e *Engine) Started() bool { return e.started }

// Paused reports whether the game is paused.
func (e *Engine) Paused() bool { return e.paused }

// GameOver reports whether the terminal state has been reached.
func (e *Engine) GameOver() bool { return e.gameOver }

// emit queues an event for the current operation's Result.
func (e *Engine) emit(ev Event) {
	e.pending = append(e.pending, ev)
}

// result drains queued events into a Result with a fresh snapshot.
func (e *Engine) result() Result {
	r := Result{State: e.Snapshot(), Events: e.pending}
	e.pending = nil
	return r
}
