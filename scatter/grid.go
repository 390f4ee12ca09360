package scatter

import "math"

// jitteredGrid partitions bounds into a near-square grid with roughly one
// cell per requested point, then places one randomly jittered point per
// cell until count points exist.
func jitteredGrid(count int, bounds Bounds, rnd func() float64) []Point {
	cols := int(math.Ceil(math.Sqrt(float64(count) * bounds.W / bounds.H)))
	if cols < 1 {
		cols = 1
	}
	rows := int(math.Ceil(float64(count) / float64(cols)))
	if rows < 1 {
		rows = 1
	}

	cellW := bounds.W / float64(cols)
	cellH := bounds.H / float64(rows)

	pts := make([]Point, 0, count)
	for r := 0; r < rows && len(pts) < count; r++ {
		for c := 0; c < cols && len(pts) < count; c++ {
			pts = append(pts, Point{
				X: bounds.X + (float64(c)+rnd())*cellW,
				Y: bounds.Y + (float64(r)+rnd())*cellH,
			})
		}
	}
	return pts
}
