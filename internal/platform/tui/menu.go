package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sumstack/internal/core"
	"github.com/vovakirdan/sumstack/internal/games/sumstack"
	"github.com/vovakirdan/sumstack/internal/games/sumstack/engine"
)

// HighScoreReader reads persisted best scores for the menu.
type HighScoreReader interface {
	HighScore(gameID string) (int, error)
}

// menuEntry is one line of the main menu.
type menuEntry int

const (
	entryClassic menuEntry = iota
	entryTime
	entryLevel
	entryScores
	entryQuit
)

var menuEntries = []menuEntry{entryClassic, entryTime, entryLevel, entryScores, entryQuit}

// MenuModel lets the player choose a mode, a start level or the scoreboard.
type MenuModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	startLevel    int
	best          map[engine.Mode]int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	selected      *engine.Mode
	scoreboard    bool
	quitting      bool
}

// NewMenuModel creates a menu. Best scores are read once from scores, which may be nil.
func NewMenuModel(scores HighScoreReader, startLevel int, cfg core.RuntimeConfig) MenuModel {
	best := make(map[engine.Mode]int)
	if scores != nil {
		for _, mode := range []engine.Mode{engine.ModeClassic, engine.ModeTime} {
			if v, err := scores.HighScore(sumstack.IDForMode(mode)); err == nil {
				best[mode] = v
			}
		}
	}

	startLevel = engine.ClampStartLevel(startLevel)
	return MenuModel{
		startLevel:  startLevel,
		levelCursor: startLevel - 1,
		best:        best,
		config:      cfg,
		keyMapper:   NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleMainKey(action)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleMainKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}
	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit
	case MenuActionSelect:
		switch menuEntries[m.cursor] {
		case entryClassic:
			mode := engine.ModeClassic
			m.selected = &mode
			return m, tea.Quit
		case entryTime:
			mode := engine.ModeTime
			m.selected = &mode
			return m, tea.Quit
		case entryLevel:
			m.inLevelSelect = true
			m.levelCursor = m.startLevel - 1
		case entryScores:
			m.scoreboard = true
			return m, tea.Quit
		case entryQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < engine.MaxStartLevel-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.startLevel = m.levelCursor + 1
		m.inLevelSelect = false
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewMain()
}

func (m MenuModel) viewMain() string {
	var b strings.Builder
	width := m.config.ScreenW

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S U M   S T A C K"), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("Pick blocks that add up to the target"), width))
	b.WriteString("\n\n")

	for i, e := range menuEntries {
		line := m.entryLabel(e)
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Enter: Select  |  Tab: Scores  |  Q: Quit"), width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) entryLabel(e menuEntry) string {
	switch e {
	case entryClassic:
		return fmt.Sprintf("Classic          best %d", m.best[engine.ModeClassic])
	case entryTime:
		return fmt.Sprintf("Time Attack      best %d", m.best[engine.ModeTime])
	case entryLevel:
		return fmt.Sprintf("Start Level...   %d", m.startLevel)
	case entryScores:
		return "High Scores"
	default:
		return "Quit"
	}
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder
	width := m.config.ScreenW

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("SELECT START LEVEL"), width))
	b.WriteString("\n\n")

	for lvl := engine.MinStartLevel; lvl <= engine.MaxStartLevel; lvl++ {
		lo, hi := engine.TargetRange(lvl)
		rowSecs := engine.ScrollThreshold / engine.Speed(lvl) * engine.TickPeriod.Seconds()
		line := fmt.Sprintf("Level %2d   row every %4.1fs   targets %d-%d", lvl, rowSecs, lo, hi)
		if lvl-1 == m.levelCursor {
			line = menuCursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), width))

	return b.String()
}

// Selected returns the chosen mode, or nil if none was chosen.
func (m MenuModel) Selected() *engine.Mode {
	return m.selected
}

// StartLevel returns the chosen start level.
func (m MenuModel) StartLevel() int {
	return m.startLevel
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Mode            engine.Mode
	GameID          string
	StartLevel      int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	res := MenuResult{StartLevel: m.startLevel, Config: m.config}
	switch {
	case m.scoreboard:
		res.WantsScoreboard = true
	case m.selected != nil:
		res.Mode = *m.selected
		res.GameID = sumstack.IDForMode(*m.selected)
	default:
		res.Quit = true
	}
	return res
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(scores HighScoreReader, startLevel int, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(scores, startLevel, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, StartLevel: startLevel}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, StartLevel: startLevel, Quit: true}, nil
	}

	return m.Result(), nil
}
