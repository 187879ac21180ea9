// Package sumstack adapts the Sum Stack engine to the game shell: it owns
// the grid cursor, maps actions onto engine operations and renders the board.
package sumstack

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/sumstack/internal/core"
	"github.com/vovakirdan/sumstack/internal/games/sumstack/engine"
	"github.com/vovakirdan/sumstack/internal/registry"
)

// Registered game ids, one per mode.
const (
	IDClassic = "sumstack"
	IDTime    = "sumstack_time"
)

// Presentation timings in ticks.
const (
	clearFlashTicks = int(500 * time.Millisecond / engine.TickPeriod)
	overflowTicks   = int(300 * time.Millisecond / engine.TickPeriod)
)

// Package-level settings applied on the next Reset.
var (
	selectedStartLevel = engine.MinStartLevel
	selectedTimeLimit  = engine.DefaultTimeLimit
)

// SetStartLevel sets the starting level for subsequent games. Values are clamped to 1-10.
func SetStartLevel(level int) {
	selectedStartLevel = engine.ClampStartLevel(level)
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// SetTimeLimit sets the initial time-mode clock for subsequent games.
// Non-positive durations restore the default.
func SetTimeLimit(d time.Duration) {
	if d <= 0 {
		d = engine.DefaultTimeLimit
	}
	selectedTimeLimit = d
}

// Game implements registry.Game on top of engine.Engine.
type Game struct {
	mode engine.Mode
	eng  *engine.Engine
	snap engine.Snapshot

	// Cursor position on the grid
	cursorRow int
	cursorCol int

	// Best score known to the platform, shown in the HUD
	best int

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	// Toast and flash timers, counted down once per Step
	levelUpTicks  int
	levelUpLevel  int
	flashTicks    int
	flashPoints   int
	overflowTicks int

	idle bool
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: engine.ModeClassic}
}

// NewTimed creates a time mode game.
func NewTimed() *Game {
	return &Game{mode: engine.ModeTime}
}

// NewForMode creates a game for the given mode.
func NewForMode(m engine.Mode) *Game {
	if m == engine.ModeTime {
		return NewTimed()
	}
	return New()
}

// IDForMode returns the registry id of a mode.
func IDForMode(m engine.Mode) string {
	if m == engine.ModeTime {
		return IDTime
	}
	return IDClassic
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDTime, func() registry.Game {
		return NewTimed()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return IDForMode(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == engine.ModeTime {
		return "Sum Stack (Time)"
	}
	return "Sum Stack"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == engine.ModeTime {
		return "Clear blocks that add up to the target against the clock"
	}
	return "Clear blocks that add up to the target before they reach the top"
}

// Mode returns the game mode.
func (g *Game) Mode() engine.Mode {
	return g.mode
}

// ModeName returns the mode as stored with saved scores.
func (g *Game) ModeName() string {
	return string(g.mode)
}

// Reset starts a fresh game with the package-level start level and time limit.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	g.eng = engine.New(rng, engine.WithTimeLimit(selectedTimeLimit))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.idle = false
	g.resetPresentation()

	g.absorb(g.eng.Start(g.mode, selectedStartLevel), nil)
	g.checkScreenSize()
}

// resetPresentation clears cursor and timers.
func (g *Game) resetPresentation() {
	g.cursorRow = engine.GridRows - 1
	g.cursorCol = 0
	g.levelUpTicks = 0
	g.levelUpLevel = 0
	g.flashTicks = 0
	g.flashPoints = 0
	g.overflowTicks = 0
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Resize updates the screen dimensions.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// SetBest sets the best score shown in the HUD.
func (g *Game) SetBest(score int) {
	g.best = score
}

// Step applies the buffered actions in arrival order, then advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var notices []string

	g.decayTimers()

	for _, a := range in.Actions {
		g.apply(a, &notices)
		if g.idle {
			return core.StepResult{State: g.State(), Notices: notices}
		}
	}

	if !g.tooSmall {
		g.absorb(g.eng.Tick(), &notices)
	}

	return core.StepResult{State: g.State(), Notices: notices}
}

// apply maps one action onto the engine or the cursor.
func (g *Game) apply(a core.Action, notices *[]string) {
	switch a {
	case core.ActionPause:
		if g.snap.Paused {
			g.absorb(g.eng.Resume(), notices)
		} else {
			g.absorb(g.eng.Pause(), notices)
		}
	case core.ActionRestart:
		g.resetPresentation()
		g.absorb(g.eng.Retry(), notices)
		*notices = append(*notices, fmt.Sprintf("retry at level %d", g.snap.StartLevel))
	case core.ActionBack:
		g.absorb(g.eng.AbandonToMenu(), notices)
		g.idle = true
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		if g.inputEnabled() {
			g.moveCursor(a)
		}
	case core.ActionSelect:
		if !g.inputEnabled() {
			return
		}
		if b, ok := g.snap.BlockAt(g.cursorRow, g.cursorCol); ok {
			g.absorb(g.eng.ToggleSelection(b.ID), notices)
		}
	case core.ActionClear:
		if g.inputEnabled() {
			g.absorb(g.eng.ClearSelection(), notices)
		}
	}
}

// inputEnabled reports whether cursor and selection input is accepted.
func (g *Game) inputEnabled() bool {
	return g.snap.Started && !g.snap.Paused && !g.snap.GameOver && !g.tooSmall
}

// moveCursor moves the cursor one cell, clamped to the grid.
func (g *Game) moveCursor(a core.Action) {
	switch a {
	case core.ActionUp:
		g.cursorRow--
	case core.ActionDown:
		g.cursorRow++
	case core.ActionLeft:
		g.cursorCol--
	case core.ActionRight:
		g.cursorCol++
	}
	g.cursorRow = core.Clamp(g.cursorRow, 0, engine.GridRows-1)
	g.cursorCol = core.Clamp(g.cursorCol, 0, engine.GridCols-1)
}

// absorb stores the snapshot of r and turns its events into timers and notices.
func (g *Game) absorb(r engine.Result, notices *[]string) {
	g.snap = r.State
	for _, ev := range r.Events {
		var msg string
		switch e := ev.(type) {
		case engine.ClearSuccessEvent:
			g.flashTicks = clearFlashTicks
			g.flashPoints = e.Points
			msg = fmt.Sprintf("cleared %d blocks summing to %d (+%d)", len(e.BlockIDs), e.Sum, e.Points)
		case engine.LevelUpEvent:
			g.levelUpTicks = int(e.Display / engine.TickPeriod)
			g.levelUpLevel = e.Level
			msg = fmt.Sprintf("level up to %d", e.Level)
		case engine.RowSpawnedEvent:
			msg = fmt.Sprintf("row pushed (%d blocks)", len(e.BlockIDs))
		case engine.SelectionOverflowEvent:
			g.overflowTicks = overflowTicks
			msg = fmt.Sprintf("selection overflow %d > %d", e.Sum, e.Target)
		case engine.GameOverEvent:
			msg = fmt.Sprintf("game over at level %d with %d points", e.Level, e.Score)
		}
		if notices != nil && msg != "" {
			*notices = append(*notices, msg)
		}
	}
}

// decayTimers counts presentation timers down by one tick.
func (g *Game) decayTimers() {
	if g.levelUpTicks > 0 {
		g.levelUpTicks--
	}
	if g.flashTicks > 0 {
		g.flashTicks--
	}
	if g.overflowTicks > 0 {
		g.overflowTicks--
	}
}

// Cursor returns the cursor position as (row, col).
func (g *Game) Cursor() (int, int) {
	return g.cursorRow, g.cursorCol
}

// Snapshot returns the latest engine snapshot for determinism checks.
func (g *Game) Snapshot() engine.Snapshot {
	return g.snap
}

// ScrollProgress returns the scroll progress as a fraction in [0,1).
func (g *Game) ScrollProgress() float64 {
	return g.snap.ScrollProgress / engine.ScrollThreshold
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		Level:    g.snap.Level,
		GameOver: g.snap.GameOver,
		Paused:   g.snap.Paused || g.tooSmall,
		Idle:     g.idle,
	}
}
