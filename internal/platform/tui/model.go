package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snaketris/internal/core"
	"github.com/vovakirdan/snaketris/internal/registry"
	"github.com/vovakirdan/snaketris/internal/storage"
)

// Options configures a game model beyond the runtime config.
type Options struct {
	Player string      // Name recorded with saved matches
	Debug  bool        // Enables the grow and shrink keys
	Logger *log.Logger // Nil discards
}

// Model is the Bubble Tea model for one running game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keys       GameKeyMap
	help       help.Model
	standings  StandingsPanel
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	quitting   bool
	backToMenu bool
	matchSaved bool // Whether the current match has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Player == "" {
		opts.Player = "player"
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultGameKeyMap()
	if opts.Debug {
		keys.EnableDebug()
	}

	m := Model{
		game:       game,
		store:      store,
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keys:       keys,
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.layout()
	return m
}

// showStandings reports whether the standings panel fits beside the board.
func (m Model) showStandings() bool {
	_, ranked := m.game.(registry.Ranked)
	return ranked && m.width >= minWidthStandings
}

// layout sizes the game screen from the terminal size, leaving a help line
// and room for the standings panel.
func (m *Model) layout() {
	w, h := m.width, max(m.height-1, 1)
	if m.showStandings() {
		w -= standingsWidth
	}
	m.config.ScreenW = w
	m.config.ScreenH = h
	if m.screen == nil {
		m.screen = core.NewScreen(w, h)
	} else {
		m.screen.Resize(w, h)
	}
	m.standings = NewStandingsPanel(h)
	m.help.Width = m.width
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("match started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.finishMatch()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionBack {
		if m.gameState.GameOver || m.gameState.Paused {
			m.finishMatch()
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize fits the game to the new terminal size. Games that can
// resize in place keep their state; others restart.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout()

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && (m.gameState.GameOver || m.gameState.Paused) {
		m.finishMatch()
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.matchSaved = false
		m.inputFrame.Clear()
		m.logger.Info("match restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	if result.State.GameOver && !m.gameState.GameOver {
		m.logger.Info("player died", "game", m.game.ID(), "score", result.State.Score)
	}
	m.gameState = result.State

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// finishMatch records the score and, when the game reports them, the match
// statistics. It runs at most once per match.
func (m *Model) finishMatch() {
	if m.matchSaved || m.store == nil {
		return
	}
	m.matchSaved = true

	score := m.game.State().Score
	if score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), score); err != nil {
			m.logger.Warn("could not save score", "error", err)
		}
	}
	if mr, ok := m.game.(registry.MatchReporter); ok {
		stats := mr.Match()
		if stats.Frames == 0 {
			return
		}
		rec := storage.NewMatchRecord(m.game.ID(), m.opts.Player, stats)
		if _, err := m.store.SaveMatch(rec); err != nil {
			m.logger.Warn("could not save match", "error", err)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".snaketris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)

	if r, ok := m.game.(registry.Ranked); ok && m.showStandings() {
		m.standings.SetStandings(r.Standings(maxStandings))
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, m.standings.View())
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return view + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
// Returns true if the user left for the menu rather than quitting.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewModel(game, store, cfg, opts),
		tea.WithAltScreen(),
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
