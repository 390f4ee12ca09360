package scatter

import "math"

// poissonDisk implements Bridson's algorithm. A uniform spatial grid with
// cell size minDistance/sqrt(2) makes neighbor lookups O(1): a cell holds
// at most one accepted point, and any conflict lies within a 5x5 window.
//
// Sampling seeds one random point, then repeatedly picks a random active
// point and proposes candidates in the annulus [r, 2r] around it. A point
// retires from the active list after maxAttempts consecutive failures.
// Placement stops once the active list empties or 2*count points exist;
// the first count points are returned.
func poissonDisk(count int, bounds Bounds, rnd func() float64, minDist float64, maxAttempts int) []Point {
	if minDist <= 0 {
		// Derived spacing: below the theoretical packing limit for the
		// requested count so the region does not exhaust early.
		minDist = math.Sqrt(bounds.Area()/float64(count)) * 0.7
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	cellSize := minDist / math.Sqrt2
	gridW := int(math.Ceil(bounds.W / cellSize))
	gridH := int(math.Ceil(bounds.H / cellSize))
	if gridW < 1 {
		gridW = 1
	}
	if gridH < 1 {
		gridH = 1
	}
	grid := make([]int, gridW*gridH) // 1-based index into pts, 0 = empty

	cellOf := func(p Point) (int, int) {
		cx := int((p.X - bounds.X) / cellSize)
		cy := int((p.Y - bounds.Y) / cellSize)
		if cx >= gridW {
			cx = gridW - 1
		}
		if cy >= gridH {
			cy = gridH - 1
		}
		return cx, cy
	}

	limit := 2 * count
	pts := make([]Point, 0, limit)
	active := make([]int, 0, limit)

	insert := func(p Point) {
		pts = append(pts, p)
		active = append(active, len(pts)-1)
		cx, cy := cellOf(p)
		grid[cy*gridW+cx] = len(pts)
	}

	farEnough := func(p Point) bool {
		cx, cy := cellOf(p)
		for dy := -2; dy <= 2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				nx, ny := cx+dx, cy+dy
				if nx < 0 || ny < 0 || nx >= gridW || ny >= gridH {
					continue
				}
				idx := grid[ny*gridW+nx]
				if idx == 0 {
					continue
				}
				q := pts[idx-1]
				ddx, ddy := p.X-q.X, p.Y-q.Y
				if ddx*ddx+ddy*ddy < minDist*minDist {
					return false
				}
			}
		}
		return true
	}

	insert(Point{
		X: bounds.X + rnd()*bounds.W,
		Y: bounds.Y + rnd()*bounds.H,
	})

	for len(active) > 0 && len(pts) < limit {
		ai := int(rnd() * float64(len(active)))
		if ai >= len(active) {
			ai = len(active) - 1
		}
		base := pts[active[ai]]

		placed := false
		for attempt := 0; attempt < maxAttempts; attempt++ {
			angle := rnd() * 2 * math.Pi
			radius := minDist * (1 + rnd())
			cand := Point{
				X: base.X + radius*math.Cos(angle),
				Y: base.Y + radius*math.Sin(angle),
			}
			if cand.X < bounds.X || cand.X > bounds.X+bounds.W ||
				cand.Y < bounds.Y || cand.Y > bounds.Y+bounds.H {
				continue
			}
			if farEnough(cand) {
				insert(cand)
				placed = true
				break
			}
		}
		if !placed {
			active[ai] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}

	if len(pts) > count {
		pts = pts[:count]
	}
	return pts
}
