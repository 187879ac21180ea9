package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/vovakirdan/sumstack/internal/core"
	"github.com/vovakirdan/sumstack/internal/games/sumstack"
	"github.com/vovakirdan/sumstack/internal/registry"
	"github.com/vovakirdan/sumstack/internal/storage"
)

// ScoreStore is the persistence the game model needs.
// *storage.Store implements it.
type ScoreStore interface {
	SaveScore(rec storage.ScoreRecord) (int64, error)
	HighScore(gameID string) (int, error)
	SetHighScore(gameID string, score int) error
}

// Optional game capabilities.
type (
	bestScoreSetter interface{ SetBest(score int) }
	scrollReporter  interface{ ScrollProgress() float64 }
	resizer         interface{ Resize(w, h int) }
	modeNamer       interface{ ModeName() string }
)

// Option configures a Model.
type Option func(*Model)

// WithClock sets the clock that schedules ticks.
func WithClock(c clockwork.Clock) Option {
	return func(m *Model) { m.clock = c }
}

// WithLogger sets the lifecycle logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithHelp shows or hides the help bar.
func WithHelp(show bool) Option {
	return func(m *Model) { m.showHelp = show }
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      ScoreStore
	tracker    *sumstack.HighScoreTracker
	config     core.RuntimeConfig
	clock      clockwork.Clock
	logger     *log.Logger
	keyMapper  *KeyMapper
	help       help.Model
	progress   progress.Model
	showHelp   bool
	width      int
	height     int
	inputFrame core.InputFrame
	gameState  core.GameState
	runID      string
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a model for the given game and starts it.
// A nil store disables persistence.
func NewModel(game registry.Game, store ScoreStore, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = core.DefaultConfig().TickPeriod
	}

	m := Model{
		game:       game,
		store:      store,
		config:     cfg,
		clock:      clockwork.NewRealClock(),
		logger:     log.New(io.Discard),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		showHelp:   true,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.config.ScreenH = m.boardHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	m.progress.Width = min(progressWidth, max(m.width-4, 1))
	m.help.Width = m.width

	m.tracker = sumstack.NewHighScoreTracker(store, game.ID())
	if _, err := m.tracker.Load(); err != nil {
		m.logger.Warn("could not load high score", "game", game.ID(), "err", err)
	}

	m.game.Reset(m.config)
	m.startRun()

	return m
}

// progressWidth matches the board width.
const progressWidth = 26

// footerHeight returns the rows reserved under the board.
func (m Model) footerHeight() int {
	if m.showHelp {
		return 2
	}
	return 1
}

// boardHeight returns the rows available to the game screen.
func (m Model) boardHeight() int {
	return max(m.height-m.footerHeight(), 1)
}

// startRun begins a new run: fresh run id and high score shown in the HUD.
func (m *Model) startRun() {
	m.runID = uuid.NewString()
	m.scoreSaved = false
	m.gameState = m.game.State()
	if bs, ok := m.game.(bestScoreSetter); ok {
		bs.SetBest(m.tracker.Best())
	}
	m.logger.Info("game started", "game", m.game.ID(), "run", m.runID, "level", m.gameState.Level)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.clock, m.config.TickPeriod)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers the mapped action until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "game", m.game.ID(), "run", m.runID, "score", m.gameState.Score)
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = m.boardHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.progress.Width = min(progressWidth, max(msg.Width-4, 1))
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	}

	return m, nil
}

// handleTick steps the game with the buffered input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	restarted := m.inputFrame.Has(core.ActionRestart)

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	for _, n := range result.Notices {
		m.logger.Debug(n, "game", m.game.ID(), "run", m.runID)
	}

	if m.gameState.Idle {
		m.backToMenu = true
		m.logger.Info("abandoned to menu", "game", m.game.ID(), "run", m.runID, "score", m.gameState.Score)
		return m, tea.Quit
	}

	if restarted {
		m.startRun()
	}

	m.observeScore()

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.clock, m.config.TickPeriod)
}

// observeScore raises the persisted high score as soon as it is beaten.
func (m *Model) observeScore() {
	newBest, err := m.tracker.Observe(m.gameState.Score)
	if err != nil {
		m.logger.Error("could not write high score", "game", m.game.ID(), "err", err)
	}
	if newBest {
		m.logger.Debug("high score raised", "game", m.game.ID(), "run", m.runID, "score", m.gameState.Score)
		if bs, ok := m.game.(bestScoreSetter); ok {
			bs.SetBest(m.tracker.Best())
		}
	}
}

// saveScore appends the finished run to the score history.
// Failures are logged and never stop the game.
func (m *Model) saveScore() {
	m.logger.Info("game over", "game", m.game.ID(), "run", m.runID,
		"score", m.gameState.Score, "level", m.gameState.Level)

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	mode := ""
	if mn, ok := m.game.(modeNamer); ok {
		mode = mn.ModeName()
	}

	rec := storage.ScoreRecord{
		RunID:  m.runID,
		GameID: m.game.ID(),
		Mode:   mode,
		Level:  m.gameState.Level,
		Score:  m.gameState.Score,
	}
	if _, err := m.store.SaveScore(rec); err != nil {
		m.logger.Error("could not save score", "game", m.game.ID(), "run", m.runID, "err", err)
		return
	}
	m.logger.Debug("score saved", "game", m.game.ID(), "run", m.runID)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)

	out := RenderScreen(m.screen) + "\n" + m.renderProgress()
	if m.showHelp {
		out += "\n" + centerText(m.help.View(m.keyMapper.Keys()), m.width)
	}
	return out
}

// renderProgress draws the scroll progress toward the next row push.
func (m Model) renderProgress() string {
	sr, ok := m.game.(scrollReporter)
	if !ok {
		return ""
	}
	bar := m.progress.ViewAs(sr.ScrollProgress())
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bar)
}

// RunID returns the id of the current run.
func (m Model) RunID() string {
	return m.runID
}

// BackToMenu reports whether the player abandoned the game to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
// Returns true if the player left via the menu key rather than quitting.
func Run(game registry.Game, store ScoreStore, cfg core.RuntimeConfig, opts ...Option) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
