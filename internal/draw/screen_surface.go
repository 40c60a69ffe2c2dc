package draw

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// ScreenSurface rasterises onto a core.Screen using braille dots.
// One dot covers unitsPerDot world units on each axis, so the world size
// follows the screen size whenever the terminal is resized.
type ScreenSurface struct {
	screen      *core.Screen
	unitsPerDot float64
}

// NewScreenSurface wraps a screen. Non-positive unitsPerDot falls back to 1.
func NewScreenSurface(screen *core.Screen, unitsPerDot float64) *ScreenSurface {
	if unitsPerDot <= 0 {
		unitsPerDot = 1
	}
	return &ScreenSurface{screen: screen, unitsPerDot: unitsPerDot}
}

// Screen returns the underlying cell buffer.
func (s *ScreenSurface) Screen() *core.Screen {
	return s.screen
}

// Size implements core.Viewport. It is computed from the live screen dimensions.
func (s *ScreenSurface) Size() (float64, float64) {
	return float64(s.screen.DotWidth()) * s.unitsPerDot, float64(s.screen.DotHeight()) * s.unitsPerDot
}

// Resolution implements Resolver.
func (s *ScreenSurface) Resolution() float64 {
	return s.unitsPerDot
}

// ClearRect blanks every cell touched by the rectangle.
func (s *ScreenSurface) ClearRect(x, y, w, h float64) {
	cw := s.unitsPerDot * core.DotsPerCellX
	ch := s.unitsPerDot * core.DotsPerCellY
	x0 := int(math.Floor(x / cw))
	y0 := int(math.Floor(y / ch))
	x1 := int(math.Ceil((x + w) / cw))
	y1 := int(math.Ceil((y + h) / ch))
	s.screen.ClearRect(core.NewRect(x0, y0, x1-x0, y1-y0))
}

// Line plots a one-dot-wide segment using Bresenham's algorithm.
func (s *ScreenSurface) Line(x0, y0, x1, y1 float64, c core.Color) {
	ax, ay := s.dot(x0), s.dot(y0)
	bx, by := s.dot(x1), s.dot(y1)

	// Skip segments entirely off one side of the screen
	w, h := s.screen.DotWidth(), s.screen.DotHeight()
	if (ax < 0 && bx < 0) || (ay < 0 && by < 0) || (ax >= w && bx >= w) || (ay >= h && by >= h) {
		return
	}

	dx := abs(bx - ax)
	dy := -abs(by - ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	e := dx + dy
	for {
		s.screen.Plot(ax, ay, c)
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ax += sx
		}
		if e2 <= dx {
			e += dx
			ay += sy
		}
	}
}

// Circle plots a circle outline, or fills it with horizontal spans.
func (s *ScreenSurface) Circle(cx, cy, r float64, c core.Color, fill bool) {
	rd := r / s.unitsPerDot
	px, py := cx/s.unitsPerDot, cy/s.unitsPerDot

	if fill {
		rows := int(math.Floor(rd))
		for dy := -rows; dy <= rows; dy++ {
			half := math.Sqrt(math.Max(rd*rd-float64(dy*dy), 0))
			y := int(math.Floor(py)) + dy
			for x := int(math.Floor(px - half)); x <= int(math.Floor(px+half)); x++ {
				s.screen.Plot(x, y, c)
			}
		}
		return
	}

	steps := max(8, int(math.Ceil(2*math.Pi*rd)))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		s.screen.Plot(int(math.Floor(px+rd*math.Cos(a))), int(math.Floor(py+rd*math.Sin(a))), c)
	}
}

// Text writes a string into the cell containing (x, y).
func (s *ScreenSurface) Text(x, y float64, text string, c core.Color) {
	cx := int(math.Floor(x / (s.unitsPerDot * core.DotsPerCellX)))
	cy := int(math.Floor(y / (s.unitsPerDot * core.DotsPerCellY)))
	s.screen.DrawTextColored(cx, cy, text, c)
}

// dot converts a world coordinate to a dot index.
func (s *ScreenSurface) dot(v float64) int {
	return int(math.Floor(v / s.unitsPerDot))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
