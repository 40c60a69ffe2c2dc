package draw

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Op is one primitive call received by a Recorder.
type Op struct {
	Kind   string // "clear", "line", "circle", "disc" or "text"
	Points []core.Vec2
	Radius float64
	Text   string
	Color  core.Color
}

func (o Op) String() string {
	switch o.Kind {
	case "circle", "disc":
		return fmt.Sprintf("%s %v r=%g", o.Kind, o.Points[0], o.Radius)
	case "text":
		return fmt.Sprintf("text %v %q", o.Points[0], o.Text)
	default:
		return fmt.Sprintf("%s %v", o.Kind, o.Points)
	}
}

// Recorder is a Surface that records primitives instead of drawing them.
// Width and Height can be changed between frames to emulate a resize.
type Recorder struct {
	Width, Height float64
	Ops           []Op
}

// NewRecorder creates a recorder of the given world size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{Width: w, Height: h}
}

// Size implements core.Viewport.
func (r *Recorder) Size() (float64, float64) {
	return r.Width, r.Height
}

// ClearRect implements Surface.
func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: "clear", Points: []core.Vec2{{X: x, Y: y}, {X: x + w, Y: y + h}}})
}

// Line implements Surface.
func (r *Recorder) Line(x0, y0, x1, y1 float64, c core.Color) {
	r.Ops = append(r.Ops, Op{Kind: "line", Points: []core.Vec2{{X: x0, Y: y0}, {X: x1, Y: y1}}, Color: c})
}

// Circle implements Surface.
func (r *Recorder) Circle(cx, cy, radius float64, c core.Color, fill bool) {
	kind := "circle"
	if fill {
		kind = "disc"
	}
	r.Ops = append(r.Ops, Op{Kind: kind, Points: []core.Vec2{{X: cx, Y: cy}}, Radius: radius, Color: c})
}

// Text implements Surface.
func (r *Recorder) Text(x, y float64, s string, c core.Color) {
	r.Ops = append(r.Ops, Op{Kind: "text", Points: []core.Vec2{{X: x, Y: y}}, Text: s, Color: c})
}

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
