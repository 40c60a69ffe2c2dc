package asteroids

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/draw"
)

// Colors used for each kind of entity.
const (
	ShipColor     = core.ColorBrightWhite
	AsteroidColor = core.ColorWhite
	BulletColor   = core.ColorBrightYellow
	HUDColor      = core.ColorBrightCyan
)

// hudInset is the distance of the score line from the top-left corner, in world units.
const hudInset = 8

// Draw renders a snapshot: clear, ship, asteroids, bullets, then the score line.
// It only reads the snapshot.
func Draw(ctx *draw.Context, snap Snapshot, bulletRadius float64) {
	ctx.ClearRect(0, 0, snap.Bounds.Width, snap.Bounds.Height)

	drawShip(ctx, snap.Player)

	for _, a := range snap.Asteroids {
		ctx.BeginPath()
		ctx.Arc(a.Pos.X, a.Pos.Y, a.Size, 0, 2*math.Pi)
		ctx.Stroke(AsteroidColor)
	}

	for _, b := range snap.Bullets {
		ctx.BeginPath()
		ctx.Arc(b.Pos.X, b.Pos.Y, bulletRadius, 0, 2*math.Pi)
		ctx.Fill(BulletColor)
	}

	ctx.Text(hudInset, 0, fmt.Sprintf("Score: %d", snap.Score), HUDColor)
}

// drawShip outlines the ship as an isosceles triangle pointing along its heading.
// With the default size of 20 the vertices are (0,-20), (10,10), (-10,10).
func drawShip(ctx *draw.Context, p Player) {
	s := p.Size()

	ctx.Save()
	ctx.Translate(p.Pos.X, p.Pos.Y)
	ctx.Rotate(p.Angle)

	ctx.BeginPath()
	ctx.MoveTo(0, -s)
	ctx.LineTo(s/2, s/2)
	ctx.LineTo(-s/2, s/2)
	ctx.ClosePath()
	ctx.Stroke(ShipColor)

	ctx.Restore()
}
