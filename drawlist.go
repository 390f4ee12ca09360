package skychart

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/skychart/skychart/scatter"
)

// Op is one retained drawing operation. The concrete types below mirror
// the Canvas contract one to one, so a recorded list replayed against any
// Canvas reproduces the scene.
type Op interface {
	apply(c Canvas)
}

// RectOp fills an axis-aligned rectangle.
type RectOp struct {
	X, Y, W, H float64
	Color      colorful.Color
	Opacity    float64
}

// GradientOp fills a rectangle with a linear gradient.
type GradientOp struct {
	X, Y, W, H float64
	Dir        GradientDir
	Stops      []ColorStop
}

// CircleOp fills a circle.
type CircleOp struct {
	CX, CY, R float64
	Color     colorful.Color
	Opacity   float64
}

// LineOp strokes a straight segment.
type LineOp struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          colorful.Color
	Opacity        float64
}

// PathOp fills a closed polygon.
type PathOp struct {
	Points  []scatter.Point
	Color   colorful.Color
	Opacity float64
}

// ClipOp pushes a rectangular clip region.
type ClipOp struct {
	X, Y, W, H float64
}

// UnclipOp pops the innermost clip region.
type UnclipOp struct{}

// TextOp places a text run.
type TextOp struct {
	X, Y, Size float64
	Text       string
	Color      colorful.Color
	Align      Align
}

// IconOp places an icon by identifier.
type IconOp struct {
	X, Y, Size float64
	Name       string
}

func (o RectOp) apply(c Canvas)     { c.FillRect(o.X, o.Y, o.W, o.H, o.Color, o.Opacity) }
func (o GradientOp) apply(c Canvas) { c.GradientRect(o.X, o.Y, o.W, o.H, o.Dir, o.Stops) }
func (o CircleOp) apply(c Canvas)   { c.FillCircle(o.CX, o.CY, o.R, o.Color, o.Opacity) }
func (o LineOp) apply(c Canvas)     { c.Line(o.X1, o.Y1, o.X2, o.Y2, o.Width, o.Color, o.Opacity) }
func (o PathOp) apply(c Canvas)     { c.FillPath(o.Points, o.Color, o.Opacity) }
func (o ClipOp) apply(c Canvas)     { c.PushClip(o.X, o.Y, o.W, o.H) }
func (o UnclipOp) apply(c Canvas)   { c.PopClip() }
func (o TextOp) apply(c Canvas)     { c.Text(o.X, o.Y, o.Size, o.Text, o.Color, o.Align) }
func (o IconOp) apply(c Canvas)     { c.Icon(o.X, o.Y, o.Size, o.Name) }

// DrawList is a retained-mode Canvas: it records operations for later
// inspection or replay against another backend. The zero value is ready
// to use.
type DrawList struct {
	ops []Op
}

// NewDrawList returns an empty draw list.
func NewDrawList() *DrawList { return &DrawList{} }

// Ops returns the recorded operations in draw order.
func (d *DrawList) Ops() []Op { return d.ops }

// Reset discards all recorded operations, keeping capacity.
func (d *DrawList) Reset() { d.ops = d.ops[:0] }

// Replay applies every recorded operation to dst in order.
func (d *DrawList) Replay(dst Canvas) {
	for _, op := range d.ops {
		op.apply(dst)
	}
}

func (d *DrawList) FillRect(x, y, w, h float64, c colorful.Color, opacity float64) {
	d.ops = append(d.ops, RectOp{X: x, Y: y, W: w, H: h, Color: c, Opacity: opacity})
}

func (d *DrawList) GradientRect(x, y, w, h float64, dir GradientDir, stops []ColorStop) {
	d.ops = append(d.ops, GradientOp{X: x, Y: y, W: w, H: h, Dir: dir, Stops: stops})
}

func (d *DrawList) FillCircle(cx, cy, r float64, c colorful.Color, opacity float64) {
	d.ops = append(d.ops, CircleOp{CX: cx, CY: cy, R: r, Color: c, Opacity: opacity})
}

func (d *DrawList) Line(x1, y1, x2, y2, width float64, c colorful.Color, opacity float64) {
	d.ops = append(d.ops, LineOp{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: c, Opacity: opacity})
}

func (d *DrawList) FillPath(pts []scatter.Point, c colorful.Color, opacity float64) {
	cp := make([]scatter.Point, len(pts))
	copy(cp, pts)
	d.ops = append(d.ops, PathOp{Points: cp, Color: c, Opacity: opacity})
}

func (d *DrawList) PushClip(x, y, w, h float64) {
	d.ops = append(d.ops, ClipOp{X: x, Y: y, W: w, H: h})
}

func (d *DrawList) PopClip() {
	d.ops = append(d.ops, UnclipOp{})
}

func (d *DrawList) Text(x, y, size float64, s string, c colorful.Color, align Align) {
	d.ops = append(d.ops, TextOp{X: x, Y: y, Size: size, Text: s, Color: c, Align: align})
}

func (d *DrawList) Icon(x, y, size float64, name string) {
	d.ops = append(d.ops, IconOp{X: x, Y: y, Size: size, Name: name})
}
