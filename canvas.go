package skychart

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/skychart/skychart/scatter"
)

// Align positions text relative to its anchor point.
type Align int

const (
	// AlignStart anchors text at its left edge.
	AlignStart Align = iota
	// AlignCenter anchors text at its horizontal center.
	AlignCenter
	// AlignEnd anchors text at its right edge.
	AlignEnd
)

// GradientDir is the axis of a linear gradient fill.
type GradientDir int

const (
	// GradientHorizontal runs left to right.
	GradientHorizontal GradientDir = iota
	// GradientVertical runs top to bottom.
	GradientVertical
)

// ColorStop is a color at a position within a gradient, offset in [0, 1].
type ColorStop struct {
	Offset float64
	Color  colorful.Color
}

// Canvas is the minimal drawing contract the chart composers target.
// Implementations may rasterize immediately (Raster) or retain the
// operations for a scene graph (DrawList). Coordinates are in the logical
// viewport of the chart; opacity is in [0, 1].
//
// Icon draws an opaque icon identifier (for example "mdi:weather-sunny")
// that the embedding layer resolves; backends without icon assets may
// substitute a placeholder.
type Canvas interface {
	FillRect(x, y, w, h float64, c colorful.Color, opacity float64)
	GradientRect(x, y, w, h float64, dir GradientDir, stops []ColorStop)
	FillCircle(cx, cy, r float64, c colorful.Color, opacity float64)
	Line(x1, y1, x2, y2, width float64, c colorful.Color, opacity float64)
	FillPath(pts []scatter.Point, c colorful.Color, opacity float64)
	PushClip(x, y, w, h float64)
	PopClip()
	Text(x, y, size float64, s string, c colorful.Color, align Align)
	Icon(x, y, size float64, name string)
}

// sortStops orders gradient stops by offset, preserving the relative
// order of equal offsets so hard color edges keep their two sides.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// colorAt evaluates a sorted stop list at t in [0, 1], clamping beyond
// the ends and interpolating linearly between bracketing stops.
func colorAt(stops []ColorStop, t float64) colorful.Color {
	if len(stops) == 0 {
		return colorful.Color{}
	}
	if len(stops) == 1 {
		return stops[0].Color
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	lo, hi := stops[idx-1], stops[idx]
	if hi.Offset == lo.Offset {
		return lo.Color
	}
	local := (t - lo.Offset) / (hi.Offset - lo.Offset)
	return lo.Color.BlendRgb(hi.Color, local)
}
