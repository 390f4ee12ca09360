package skychart

import (
	"reflect"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/skychart/skychart/scatter"
)

func TestDrawListRecordsInOrder(t *testing.T) {
	d := NewDrawList()
	red := colorful.Color{R: 1}
	d.FillRect(0, 0, 10, 10, red, 1)
	d.FillCircle(5, 5, 2, red, 0.5)
	d.Text(1, 2, 8, "hi", red, AlignCenter)

	ops := d.Ops()
	if len(ops) != 3 {
		t.Fatalf("len(ops) = %d, want 3", len(ops))
	}
	if _, ok := ops[0].(RectOp); !ok {
		t.Errorf("ops[0] = %T, want RectOp", ops[0])
	}
	if _, ok := ops[1].(CircleOp); !ok {
		t.Errorf("ops[1] = %T, want CircleOp", ops[1])
	}
	txt, ok := ops[2].(TextOp)
	if !ok {
		t.Fatalf("ops[2] = %T, want TextOp", ops[2])
	}
	if txt.Text != "hi" || txt.Align != AlignCenter {
		t.Errorf("TextOp = %+v", txt)
	}
}

func TestDrawListFillPathCopies(t *testing.T) {
	d := NewDrawList()
	pts := []scatter.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	d.FillPath(pts, colorful.Color{}, 1)

	pts[0].X = 99
	op := d.Ops()[0].(PathOp)
	if op.Points[0].X != 0 {
		t.Errorf("recorded path mutated through caller slice: %+v", op.Points[0])
	}
}

func TestDrawListReset(t *testing.T) {
	d := NewDrawList()
	d.FillRect(0, 0, 1, 1, colorful.Color{}, 1)
	d.Reset()
	if len(d.Ops()) != 0 {
		t.Errorf("len(ops) after Reset = %d, want 0", len(d.Ops()))
	}
}

func TestDrawListReplayReproduces(t *testing.T) {
	src := NewDrawList()
	c := colorful.Color{R: 0.2, G: 0.4, B: 0.6}
	src.GradientRect(0, 0, 100, 50, GradientHorizontal, []ColorStop{
		{Offset: 0, Color: c}, {Offset: 1, Color: colorful.Color{R: 1}},
	})
	src.PushClip(10, 0, 20, 50)
	src.Line(0, 0, 100, 50, 2, c, 0.9)
	src.PopClip()
	src.Icon(50, 10, 12, "mdi:weather-sunny")

	dst := NewDrawList()
	src.Replay(dst)
	if !reflect.DeepEqual(src.Ops(), dst.Ops()) {
		t.Errorf("replayed ops differ from recorded ops")
	}
}

func TestSortStopsStable(t *testing.T) {
	black := colorful.Color{}
	white := colorful.Color{R: 1, G: 1, B: 1}
	stops := []ColorStop{
		{Offset: 0.7, Color: white},
		{Offset: 0.5, Color: black},
		{Offset: 0.5, Color: white},
		{Offset: 0.1, Color: black},
	}
	sorted := sortStops(stops)
	if sorted[0].Offset != 0.1 || sorted[3].Offset != 0.7 {
		t.Fatalf("stops not sorted: %+v", sorted)
	}
	// Equal offsets keep their relative order.
	if sorted[1].Color != black || sorted[2].Color != white {
		t.Errorf("equal-offset stops reordered: %+v", sorted[1:3])
	}
}

func TestColorAt(t *testing.T) {
	red := colorful.Color{R: 1}
	blue := colorful.Color{B: 1}
	stops := []ColorStop{{Offset: 0.2, Color: red}, {Offset: 0.8, Color: blue}}

	if got := colorAt(stops, 0); got != red {
		t.Errorf("colorAt(0) = %v, want clamp to first stop", got)
	}
	if got := colorAt(stops, 1); got != blue {
		t.Errorf("colorAt(1) = %v, want clamp to last stop", got)
	}
	want := red.BlendRgb(blue, 0.5)
	if got := colorAt(stops, 0.5); got != want {
		t.Errorf("colorAt(0.5) = %v, want %v", got, want)
	}
}

func TestColorAtHardEdge(t *testing.T) {
	night := colorful.Color{R: 0.04, G: 0.06, B: 0.15}
	day := colorful.Color{R: 0.53, G: 0.81, B: 0.92}
	stops := []ColorStop{
		{Offset: 0, Color: night},
		{Offset: 0.498, Color: night},
		{Offset: 0.502, Color: day},
		{Offset: 1, Color: day},
	}
	if got := colorAt(stops, 0.4); got != night {
		t.Errorf("left of edge = %v, want night", got)
	}
	if got := colorAt(stops, 0.6); got != day {
		t.Errorf("right of edge = %v, want day", got)
	}
}
