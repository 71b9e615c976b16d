// Package tui provides the Bubble Tea integration for term2048.
// It handles the terminal UI loop, input mapping, the session journal and
// the SSH server.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/registry"
	"github.com/vovakirdan/term2048/internal/storage"
)

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// Model is the Bubble Tea model for playing one board variant.
// Moves are applied synchronously as keys arrive; there is no tick loop.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	gameState core.GameState

	player        string
	sessionID     string
	started       time.Time
	recorded      bool // Journal entry written for the current session
	screenshotDir string
	status        string // One-line message shown above the help bar

	embedded   bool // Back key returns to the session menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:          game,
		store:         store,
		logger:        logger,
		config:        cfg,
		keys:          DefaultKeyMap(),
		help:          h,
		sessionID:     uuid.NewString(),
		started:       time.Now(),
		screenshotDir: filepath.Join(config.HomeDir(), "screenshots"),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.playHeight())
	return m
}

// WithPlayer tags journal entries with a player name.
func (m Model) WithPlayer(name string) Model {
	m.player = name
	return m
}

// embed makes the back key leave the game instead of being ignored.
func (m Model) embed() Model {
	m.embedded = true
	return m
}

// Init builds the first board.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
			m.setStatus("screenshot failed")
		} else {
			m.setStatus("saved " + path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.recordSession()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.embedded {
			m.recordSession()
			m.backToMenu = true
		}
		return m, nil

	case core.ActionRestart:
		m.recordSession()
		m.restart()
		return m, nil
	}

	frame := core.NewInputFrame()
	frame.Set(action)
	result := m.game.Step(frame)
	m.gameState = result.State
	if m.status != "" {
		m.setStatus("")
	}

	return m, nil
}

// restart re-seeds and rebuilds the board as a new journal session.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	m.sessionID = uuid.NewString()
	m.started = time.Now()
	m.recorded = false
}

// recordSession writes the current session to the journal once.
// Sessions without a single move are not recorded.
func (m *Model) recordSession() {
	if m.recorded || m.store == nil {
		return
	}

	st := m.game.State()
	if st.Moves == 0 {
		return
	}

	rec := storage.SessionRecord{
		SessionID: m.sessionID,
		Variant:   m.game.ID(),
		Player:    m.player,
		Size:      st.Size,
		Moves:     st.Moves,
		Spawns:    st.Spawns,
		MaxTile:   st.MaxTile,
		Duration:  int(time.Since(m.started).Seconds()),
	}
	if _, err := m.store.SaveSession(rec); err != nil {
		m.logger.Warn("could not save session", "variant", rec.Variant, "error", err)
		return
	}
	m.recorded = true
}

// saveScreenshot writes the current screen to a text file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: cannot create directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: cannot write file: %w", err)
	}
	return path, nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.layout()
}

// layout resizes the play area to the space left above the footer.
// The board itself is never reset by a resize.
func (m *Model) layout() {
	h := m.playHeight()
	m.screen.Resize(m.config.ScreenW, h)
	m.game.Resize(m.config.ScreenW, h)
}

func (m Model) playHeight() int {
	return core.Max(m.config.ScreenH-lipgloss.Height(m.footer()), 0)
}

func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.playHeight()
	return cfg
}

// footer renders the status line and the help bar.
func (m Model) footer() string {
	bar := helpStyle.Render(m.help.View(m.keys))
	if m.status == "" {
		return bar
	}
	return statusStyle.Render(m.status) + "\n" + bar
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// State returns the game state after the last applied input.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
