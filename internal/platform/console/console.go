// Package console provides a tcell frontend for asteroids. It draws the same
// braille playfield as the tui frontend but drives the terminal directly with
// an event goroutine and a ticker.
package console

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/draw"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/logging"
	"github.com/vovakirdan/tui-asteroids/internal/platform/keymap"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// ID is the frontend identifier used by --frontend.
const ID = "console"

func init() {
	registry.Register(ID, func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game on a raw tcell screen.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return ID }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Terminal (tcell, braille)" }

// Run implements registry.Frontend.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	defer screen.Fini()

	h, err := NewHost(screen, opts)
	if err != nil {
		return err
	}
	return h.Loop(ctx)
}

// Host owns one session on an initialised tcell screen.
type Host struct {
	screen   tcell.Screen
	buf      *core.Screen
	session  *asteroids.Session
	keys     keymap.KeyMap
	state    core.GameState
	tickRate int
	showHelp bool
	logger   *log.Logger
}

// NewHost sizes the playfield to the screen and starts a session on it.
func NewHost(screen tcell.Screen, opts registry.Options) (*Host, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	h := &Host{
		screen:   screen,
		keys:     keymap.Default(),
		tickRate: opts.Runtime.TickRate,
		logger:   logger,
	}
	if h.tickRate <= 0 {
		h.tickRate = core.DefaultConfig().TickRate
	}

	w, ht := screen.Size()
	h.buf = core.NewScreen(w, playfieldHeight(ht, h.showHelp))

	session, err := asteroids.NewSession(draw.NewScreenSurface(h.buf, opts.UnitsPerDot), asteroids.NewSource(opts.Runtime.Seed), opts.Rules)
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}
	h.session = session
	h.state = session.State()

	logger.Info("session started", "frontend", ID, "cols", w, "rows", ht)
	return h, nil
}

// playfieldHeight leaves one row for the status line and one or two for help.
func playfieldHeight(rows int, showHelp bool) int {
	reserved := 2
	if showHelp {
		reserved = 3
	}
	return max(rows-reserved, 0)
}

// Loop runs until the player quits or ctx is cancelled.
func (h *Host) Loop(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(h.tickRate))
	defer ticker.Stop()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("quit", "reason", ctx.Err(), "score", h.state.Score)
			return nil

		case ev := <-events:
			if !h.HandleEvent(ev) {
				h.logger.Info("quit", "score", h.state.Score, "ticks", h.state.Tick)
				return nil
			}

		case <-ticker.C:
			h.Tick()
			h.Draw()
		}
	}
}

// HandleEvent processes one tcell event. Returns false on a quit request.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.HandleKey(keyName(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		h.Resize()
	}
	return true
}

// HandleKey processes a key by its bubbletea-style name (e.g. "left", "a",
// "ctrl+c"). Returns false on a quit request.
func (h *Host) HandleKey(name string) bool {
	action := h.keys.Action(name)
	switch action {
	case core.ActionQuit:
		return false
	case core.ActionPause:
		h.state.Paused = !h.state.Paused
	case core.ActionHelp:
		h.showHelp = !h.showHelp
		h.Resize()
	default:
		if !h.state.Paused {
			h.session.Do(action)
		}
	}
	return true
}

// Resize follows the terminal size. The world picks it up on the next tick.
func (h *Host) Resize() {
	w, ht := h.screen.Size()
	h.buf.Resize(w, playfieldHeight(ht, h.showHelp))
	h.screen.Clear()
	h.logger.Debug("resize", "cols", w, "rows", ht)
}

// Tick steps the game unless paused.
func (h *Host) Tick() {
	if !h.state.Paused {
		res := h.session.Update()
		if res.Destroyed > 0 {
			h.logger.Debug("asteroids destroyed", "count", res.Destroyed, "score", res.Score)
		}
		h.state = h.session.State()
	}
}

// Draw renders the session and presents the frame.
func (h *Host) Draw() {
	h.session.Render()
	Blit(h.screen, h.buf)

	w, _ := h.screen.Size()
	row := h.buf.Height()
	status := fmt.Sprintf("Score %d  Asteroids %d  Tick %d", h.state.Score, len(h.session.Snapshot().Asteroids), h.state.Tick)
	if h.state.Paused {
		status += "  PAUSED"
	}
	drawLine(h.screen, row, w, status, statusStyle)

	if h.showHelp {
		for i, col := range h.keys.FullHelp() {
			drawLine(h.screen, row+1+i, w, helpText(col), helpStyle)
		}
	} else {
		drawLine(h.screen, row+1, w, helpText(h.keys.ShortHelp()), helpStyle)
	}

	h.screen.Show()
}

// State returns the host-facing game state.
func (h *Host) State() core.GameState {
	return h.state
}

// Session returns the running session.
func (h *Host) Session() *asteroids.Session {
	return h.session
}

var (
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	helpStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Blit copies a cell buffer onto a tcell screen, top-left aligned.
func Blit(dst tcell.Screen, src *core.Screen) {
	for y := range src.Height() {
		for x := range src.Width() {
			cell := src.GetCell(x, y)
			dst.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
}

// styleFor maps a core color to a tcell style using its RGB value.
func styleFor(c core.Color) tcell.Style {
	if c == core.ColorDefault {
		return tcell.StyleDefault
	}
	rgba := c.RGBA()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B)))
}

// drawLine writes text on a row, padding the rest of the row with blanks.
func drawLine(s tcell.Screen, row, width int, text string, style tcell.Style) {
	x := 0
	for _, r := range text {
		if x >= width {
			return
		}
		s.SetContent(x, row, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		s.SetContent(x, row, ' ', nil, style)
	}
}

// helpText formats bindings as "key desc • key desc".
func helpText(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return strings.Join(parts, " • ")
}

// keyName converts a tcell key to the names used by keymap bindings.
func keyName(k tcell.Key, r rune) string {
	switch k {
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyCtrlS:
		return "ctrl+s"
	case tcell.KeyRune:
		return string(r)
	}
	return ""
}
