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

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game is a tick-driven game the host can run.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// RunRecorder records finished runs.
type RunRecorder interface {
	SaveScore(score int) (int64, error)
}

// Rows reserved for the short and full help footer.
const (
	shortFooterRows = 1
	fullFooterRows  = 3
)

// Model is the Bubble Tea model for running the game.
type Model struct {
	game          Game
	screen        *core.Screen
	recorder      RunRecorder
	config        core.RuntimeConfig
	inputFrame    core.InputFrame
	gameState     core.GameState
	keys          KeyMap
	help          help.Model
	logger        *log.Logger
	renderer      *ScreenRenderer
	screenshotDir string
	quitting      bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithRecorder records every finished run with a positive score.
func WithRecorder(r RunRecorder) ModelOption {
	return func(m *Model) { m.recorder = r }
}

// WithLogger sets the host logger.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// WithRenderer binds output styles to r, typically a per-session renderer.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) { m.renderer = NewScreenRenderer(r) }
}

// WithScreenshotDir sets where ctrl+s writes frames.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) { m.screenshotDir = dir }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg = cfg.Normalize()

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-shortFooterRows, 1)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     log.New(io.Discard),
	}
	if home, err := os.UserHomeDir(); err == nil {
		m.screenshotDir = filepath.Join(home, ".flappy", "screenshots")
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.renderer == nil {
		m.renderer = NewScreenRenderer(nil)
	}
	m.help.Width = cfg.ScreenW
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := MapMouse(msg); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

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
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit, core.ActionBack:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The game scales to the
// screen, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.fitScreen()
	return m, nil
}

// fitScreen sizes the game area to the terminal minus the footer.
func (m *Model) fitScreen() {
	rows := shortFooterRows
	if m.help.ShowAll {
		rows = fullFooterRows
	}
	m.screen.Resize(m.config.ScreenW, core.Max(m.config.ScreenH-rows, 1))
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.RunEnded && m.recorder != nil && m.gameState.Score > 0 {
		if _, err := m.recorder.SaveScore(m.gameState.Score); err != nil {
			m.logger.Warn("cannot record run", "score", m.gameState.Score, "err", err)
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickInterval())
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", fmt.Errorf("tui: no screenshot directory")
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen) + "\n" + m.renderer.Footer(m.help.View(m.keys))
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap
	)

	_, err := p.Run()
	return err
}
