package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/draw"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/logging"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// ID is the frontend identifier used by --frontend.
const ID = "tui"

// screenshotDir returns where ctrl+s writes frames. Tests replace it.
var screenshotDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".asteroids", "screenshots"), nil
}

func init() {
	registry.Register(ID, func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game inside a Bubble Tea program.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return ID }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Terminal (Bubble Tea, braille)" }

// Run implements registry.Frontend.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	return Run(ctx, opts)
}

// Model is the Bubble Tea model for a running game.
type Model struct {
	session  *asteroids.Session
	screen   *core.Screen
	keys     *KeyMapper
	help     help.Model
	state    core.GameState
	config   core.RuntimeConfig
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model whose world fills the terminal above the status bar.
func NewModel(opts registry.Options) (Model, error) {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	m := Model{
		keys:   NewKeyMapper(),
		help:   help.New(),
		config: cfg,
		logger: logger,
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.playfieldHeight())

	surface := draw.NewScreenSurface(m.screen, opts.UnitsPerDot)
	session, err := asteroids.NewSession(surface, asteroids.NewSource(cfg.Seed), opts.Rules)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	m.session = session
	m.state = session.State()

	w, h := surface.Size()
	logger.Info("session started", "frontend", ID, "cols", cfg.ScreenW, "rows", cfg.ScreenH, "world", fmt.Sprintf("%.0fx%.0f", w, h))
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.state.Score, "ticks", m.state.Tick)
		return m, tea.Quit
	}

	switch action {
	case core.ActionPause:
		m.state.Paused = !m.state.Paused
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.playfieldHeight())
	case core.ActionScreenshot:
		m.saveScreenshot()
	default:
		// Ship commands take effect now, not at the next tick
		if !m.state.Paused {
			m.session.Do(action)
		}
	}

	return m, nil
}

// handleResize follows the terminal size. The world picks up the new
// playfield size on the next tick.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.playfieldHeight())

	m.logger.Debug("resize", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// handleTick steps the game unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.state.Paused {
		res := m.session.Update()
		if res.Destroyed > 0 {
			m.logger.Debug("asteroids destroyed", "count", res.Destroyed, "score", res.Score)
		}
		m.state = m.session.State()
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// playfieldHeight is the terminal height minus the status bar and help.
func (m Model) playfieldHeight() int {
	return max(m.config.ScreenH-1-m.helpHeight(), 0)
}

func (m Model) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, col := range m.keys.Keys().FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

// saveScreenshot saves the current frame as plain text. Failures are logged only.
func (m *Model) saveScreenshot() {
	m.session.Render()

	dir, err := screenshotDir()
	if err == nil {
		err = os.MkdirAll(dir, 0o755)
	}
	if err != nil {
		m.logger.Debug("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("asteroids_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Debug("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render()

	var b strings.Builder
	if m.screen.Height() > 0 {
		b.WriteString(RenderScreen(m.screen))
		b.WriteString("\n")
	}
	b.WriteString(renderStatus(m.state, len(m.session.Snapshot().Asteroids), m.config.ScreenW))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys.Keys())))
	return b.String()
}

// State returns the host-facing game state.
func (m Model) State() core.GameState {
	return m.state
}

// Session returns the running session.
func (m Model) Session() *asteroids.Session {
	return m.session
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(ctx context.Context, opts registry.Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
