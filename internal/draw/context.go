// Package draw provides an immediate-mode 2D drawing context in the style of
// an HTML canvas. Shapes are built as paths in user space, mapped through a
// translate/rotate transform stack, and flushed to a Surface.
package draw

import (
	"math"
	"sort"

	"golang.org/x/image/math/f64"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Surface is the device a Context draws onto. Coordinates are world units;
// each implementation maps them to its own pixels, cells or dots.
type Surface interface {
	core.Viewport
	ClearRect(x, y, w, h float64)
	Line(x0, y0, x1, y1 float64, c core.Color)
	Circle(cx, cy, r float64, c core.Color, fill bool)
	Text(x, y float64, s string, c core.Color)
}

// Resolver is implemented by surfaces whose device pixels span more than one
// world unit. Fill uses it to pick the scanline step.
type Resolver interface {
	Resolution() float64
}

var identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// subpath is one connected piece of the current path, in device coordinates.
type subpath struct {
	pts    []core.Vec2
	closed bool

	// circle is set for full-circle arcs, which surfaces draw natively.
	circle bool
	center core.Vec2
	radius float64
}

// Context is a canvas-like drawing state bound to one Surface.
// Only translate and rotate are supported, so circles stay circles.
type Context struct {
	surface Surface
	m       f64.Aff3
	stack   []f64.Aff3
	path    []subpath
}

// NewContext creates a context with an identity transform.
func NewContext(s Surface) *Context {
	return &Context{surface: s, m: identity}
}

// Surface returns the surface this context draws onto.
func (c *Context) Surface() Surface {
	return c.surface
}

// Save pushes the current transform.
func (c *Context) Save() {
	c.stack = append(c.stack, c.m)
}

// Restore pops the transform pushed by the matching Save.
// Restore without a Save is a no-op.
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.m = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin by (tx, ty) in the current user space.
func (c *Context) Translate(tx, ty float64) {
	c.m = mul(c.m, f64.Aff3{1, 0, tx, 0, 1, ty})
}

// Rotate turns user space clockwise on screen by angle radians.
func (c *Context) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	c.m = mul(c.m, f64.Aff3{cos, -sin, 0, sin, cos, 0})
}

// Transform maps a user-space point to device coordinates.
func (c *Context) Transform(x, y float64) core.Vec2 {
	return apply(c.m, x, y)
}

// ClearRect blanks a rectangle. Only the translation part of the transform applies.
func (c *Context) ClearRect(x, y, w, h float64) {
	c.surface.ClearRect(x+c.m[2], y+c.m[5], w, h)
}

// BeginPath discards the current path.
func (c *Context) BeginPath() {
	c.path = c.path[:0]
}

// MoveTo starts a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) {
	c.path = append(c.path, subpath{pts: []core.Vec2{c.Transform(x, y)}})
}

// LineTo adds a straight segment from the current point to (x, y).
// With no current point it behaves like MoveTo.
func (c *Context) LineTo(x, y float64) {
	sp := c.current()
	if sp == nil {
		c.MoveTo(x, y)
		return
	}
	sp.pts = append(sp.pts, c.Transform(x, y))
}

// ClosePath joins the current subpath back to its first point and starts a
// new subpath there.
func (c *Context) ClosePath() {
	sp := c.current()
	if sp == nil || len(sp.pts) == 0 {
		return
	}
	sp.closed = true
	first := sp.pts[0]
	c.path = append(c.path, subpath{pts: []core.Vec2{first}})
}

// Arc adds a circular arc around (x, y) from start to end radians, clockwise.
// A sweep of 2π or more becomes a standalone circle; shorter arcs are
// flattened into the current subpath.
func (c *Context) Arc(x, y, r, start, end float64) {
	if r <= 0 {
		return
	}
	sweep := end - start
	if math.Abs(sweep) >= 2*math.Pi {
		c.path = append(c.path, subpath{
			circle: true,
			center: c.Transform(x, y),
			radius: r,
		})
		return
	}

	steps := max(4, int(math.Ceil(math.Abs(sweep)*r/2)))
	for i := 0; i <= steps; i++ {
		a := start + sweep*float64(i)/float64(steps)
		px, py := x+r*math.Cos(a), y+r*math.Sin(a)
		if i == 0 && c.current() == nil {
			c.MoveTo(px, py)
			continue
		}
		c.LineTo(px, py)
	}
}

// Stroke outlines every subpath of the current path.
func (c *Context) Stroke(col core.Color) {
	for _, sp := range c.path {
		if sp.circle {
			c.surface.Circle(sp.center.X, sp.center.Y, sp.radius, col, false)
			continue
		}
		for i := 1; i < len(sp.pts); i++ {
			a, b := sp.pts[i-1], sp.pts[i]
			c.surface.Line(a.X, a.Y, b.X, b.Y, col)
		}
		if sp.closed && len(sp.pts) > 2 {
			a, b := sp.pts[len(sp.pts)-1], sp.pts[0]
			c.surface.Line(a.X, a.Y, b.X, b.Y, col)
		}
	}
}

// Fill paints the interior of every subpath using the even-odd rule.
// Open subpaths are implicitly closed.
func (c *Context) Fill(col core.Color) {
	step := 1.0
	if r, ok := c.surface.(Resolver); ok && r.Resolution() > 0 {
		step = r.Resolution()
	}

	for _, sp := range c.path {
		if sp.circle {
			c.surface.Circle(sp.center.X, sp.center.Y, sp.radius, col, true)
			continue
		}
		if len(sp.pts) < 3 {
			continue
		}
		c.fillPolygon(sp.pts, step, col)
	}
}

// Text draws a string with its top-left corner at (x, y).
func (c *Context) Text(x, y float64, s string, col core.Color) {
	p := c.Transform(x, y)
	c.surface.Text(p.X, p.Y, s, col)
}

// current returns the last subpath if it can be extended.
func (c *Context) current() *subpath {
	if len(c.path) == 0 {
		return nil
	}
	sp := &c.path[len(c.path)-1]
	if sp.circle {
		return nil
	}
	return sp
}

// fillPolygon scanline-fills a polygon in device space.
func (c *Context) fillPolygon(pts []core.Vec2, step float64, col core.Color) {
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	xs := make([]float64, 0, len(pts))
	for y := minY + step/2; y < maxY; y += step {
		xs = xs[:0]
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if (a.Y <= y && y < b.Y) || (b.Y <= y && y < a.Y) {
				xs = append(xs, a.X+(y-a.Y)*(b.X-a.X)/(b.Y-a.Y))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			c.surface.Line(xs[i], y, xs[i+1], y, col)
		}
	}
}

// mul returns m·n for affine matrices in row-major order.
func mul(m, n f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		m[0]*n[0] + m[1]*n[3], m[0]*n[1] + m[1]*n[4], m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3], m[3]*n[1] + m[4]*n[4], m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

func apply(m f64.Aff3, x, y float64) core.Vec2 {
	return core.Vec2{
		X: m[0]*x + m[1]*y + m[2],
		Y: m[3]*x + m[4]*y + m[5],
	}
}
