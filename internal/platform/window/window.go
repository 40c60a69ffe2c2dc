// Package window provides an Ebitengine frontend for asteroids. World units
// are window pixels, and resizing the window resizes the world.
package window

import (
	"context"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/logging"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// ID is the frontend identifier used by --frontend.
const ID = "window"

// Initial window size in pixels.
const (
	windowWidth  = 800
	windowHeight = 600
)

const strokeWidth = 1.5

func init() {
	registry.Register(ID, func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game in a desktop window.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return ID }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Window (Ebitengine)" }

// Run implements registry.Frontend. It blocks until the window closes.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	g, err := newGame(ctx, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Asteroids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.tickRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	g.logger.Info("quit", "score", g.session.State().Score, "ticks", g.session.State().Tick)
	return nil
}

// surface draws onto the frame image Ebitengine passes to Draw.
// Its size is the logical screen size reported by Layout.
type surface struct {
	img           *ebiten.Image
	width, height float64
}

func (s *surface) Size() (float64, float64) {
	return s.width, s.height
}

func (s *surface) ClearRect(x, y, w, h float64) {
	if s.img == nil {
		return
	}
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), color.Black, false)
}

func (s *surface) Line(x0, y0, x1, y1 float64, c core.Color) {
	if s.img == nil {
		return
	}
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), strokeWidth, c.RGBA(), true)
}

func (s *surface) Circle(cx, cy, r float64, c core.Color, fill bool) {
	if s.img == nil {
		return
	}
	if fill {
		vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c.RGBA(), true)
		return
	}
	vector.StrokeCircle(s.img, float32(cx), float32(cy), float32(r), strokeWidth, c.RGBA(), true)
}

// Text uses the built-in debug font, which is always white.
func (s *surface) Text(x, y float64, str string, _ core.Color) {
	if s.img == nil {
		return
	}
	ebitenutil.DebugPrintAt(s.img, str, int(x), int(y))
}

// game implements ebiten.Game.
type game struct {
	ctx      context.Context
	session  *asteroids.Session
	surface  *surface
	tickRate int
	paused   bool
	logger   *log.Logger
}

func newGame(ctx context.Context, opts registry.Options) (*game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	tickRate := opts.Runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	surf := &surface{width: windowWidth, height: windowHeight}
	session, err := asteroids.NewSession(surf, asteroids.NewSource(opts.Runtime.Seed), opts.Rules)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	logger.Info("session started", "frontend", ID, "width", windowWidth, "height", windowHeight)
	return &game{
		ctx:      ctx,
		session:  session,
		surface:  surf,
		tickRate: tickRate,
		logger:   logger,
	}, nil
}

// Update polls the keyboard and steps the simulation. Turning and thrust
// repeat while held; shooting fires once per press.
func (g *game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	in := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Set(core.ActionRotateLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Set(core.ActionRotateRight)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		in.Set(core.ActionThrust)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.Set(core.ActionShoot)
	}

	g.session.Apply(in)
	if res := g.session.Update(); res.Destroyed > 0 {
		g.logger.Debug("asteroids destroyed", "count", res.Destroyed, "score", res.Score)
	}
	return nil
}

// Draw renders the current state onto the frame.
func (g *game) Draw(screen *ebiten.Image) {
	g.surface.img = screen
	g.session.Render()
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", int(g.surface.width)/2-18, int(g.surface.height)/2)
	}
	g.surface.img = nil
}

// Layout keeps one world unit per logical pixel and records the size for the
// next update.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != g.surface.width || h != g.surface.height {
		g.logger.Debug("resize", "width", outsideWidth, "height", outsideHeight)
	}
	g.surface.width, g.surface.height = w, h
	return outsideWidth, outsideHeight
}
