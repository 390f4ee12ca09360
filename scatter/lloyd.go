package scatter

import (
	"math"

	"github.com/fogleman/delaunay"
)

// lloydRelax starts from uniform random points and runs the given number
// of Lloyd iterations: triangulate, derive the Voronoi cell of each point
// from adjacent triangle circumcenters, and move the point to the cell
// centroid clamped back inside bounds. Cells that cannot be closed (convex
// hull sites) or that collapse to near-zero area fall back to the vertex
// average of their circumcenters.
func lloydRelax(count int, bounds Bounds, rnd func() float64, iterations int) []Point {
	pts := randomPoints(count, bounds, rnd)
	if count < 3 {
		// A triangulation needs at least three sites.
		return pts
	}

	sites := make([]delaunay.Point, count)
	for iter := 0; iter < iterations; iter++ {
		for i, p := range pts {
			sites[i] = delaunay.Point{X: p.X, Y: p.Y}
		}
		tri, err := delaunay.Triangulate(sites)
		if err != nil {
			// Collinear or coincident sites. The random layout is the
			// best available answer.
			return pts
		}
		centers := circumcenters(tri)
		inedge := incomingEdges(tri, count)

		for i := range pts {
			cell, closed := voronoiCell(tri, centers, inedge[i])
			if len(cell) == 0 {
				continue
			}
			var c Point
			if closed {
				c = polygonCentroid(clipToBounds(cell, bounds))
			} else {
				c = vertexAverage(cell)
			}
			pts[i] = bounds.clamp(c)
		}
	}
	return pts
}

func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// circumcenters returns the circumcenter of every triangle in order.
func circumcenters(t *delaunay.Triangulation) []Point {
	n := len(t.Triangles) / 3
	centers := make([]Point, n)
	for i := 0; i < n; i++ {
		a := t.Points[t.Triangles[3*i]]
		b := t.Points[t.Triangles[3*i+1]]
		c := t.Points[t.Triangles[3*i+2]]
		centers[i] = circumcenter(a, b, c)
	}
	return centers
}

func circumcenter(a, b, c delaunay.Point) Point {
	ax, ay := b.X-a.X, b.Y-a.Y
	bx, by := c.X-a.X, c.Y-a.Y
	d := 2 * (ax*by - ay*bx)
	if d == 0 {
		// Degenerate triangle: midpoint of the spread.
		return Point{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}
	}
	al := ax*ax + ay*ay
	bl := bx*bx + by*by
	return Point{
		X: a.X + (by*al-ay*bl)/d,
		Y: a.Y + (ax*bl-bx*al)/d,
	}
}

// incomingEdges maps each site to one incoming halfedge, preferring hull
// edges so that open cells start their walk at the boundary.
func incomingEdges(t *delaunay.Triangulation, count int) []int {
	inedge := make([]int, count)
	for i := range inedge {
		inedge[i] = -1
	}
	for e := range t.Triangles {
		p := t.Triangles[nextHalfedge(e)]
		if t.Halfedges[e] == -1 || inedge[p] == -1 {
			inedge[p] = e
		}
	}
	return inedge
}

// voronoiCell walks the halfedges around a site collecting circumcenters
// of the incident triangles. closed is false when the walk runs off the
// hull, leaving an unbounded cell.
func voronoiCell(t *delaunay.Triangulation, centers []Point, start int) (cell []Point, closed bool) {
	if start < 0 {
		return nil, false
	}
	e := start
	for {
		cell = append(cell, centers[e/3])
		out := nextHalfedge(e)
		e = t.Halfedges[out]
		if e == -1 {
			return cell, false
		}
		if e == start {
			return cell, true
		}
		if len(cell) > len(t.Triangles) {
			// Corrupt walk guard.
			return cell, false
		}
	}
}

// clipToBounds clips a polygon against the four sides of bounds using
// Sutherland-Hodgman.
func clipToBounds(poly []Point, b Bounds) []Point {
	inside := [4]func(Point) bool{
		func(p Point) bool { return p.X >= b.X },
		func(p Point) bool { return p.X <= b.X+b.W },
		func(p Point) bool { return p.Y >= b.Y },
		func(p Point) bool { return p.Y <= b.Y+b.H },
	}
	cross := [4]func(p, q Point) Point{
		func(p, q Point) Point { return intersectV(p, q, b.X) },
		func(p, q Point) Point { return intersectV(p, q, b.X+b.W) },
		func(p, q Point) Point { return intersectH(p, q, b.Y) },
		func(p, q Point) Point { return intersectH(p, q, b.Y+b.H) },
	}

	out := poly
	for side := 0; side < 4 && len(out) > 0; side++ {
		in := out
		out = nil
		prev := in[len(in)-1]
		for _, cur := range in {
			if inside[side](cur) {
				if !inside[side](prev) {
					out = append(out, cross[side](prev, cur))
				}
				out = append(out, cur)
			} else if inside[side](prev) {
				out = append(out, cross[side](prev, cur))
			}
			prev = cur
		}
	}
	return out
}

func intersectV(p, q Point, x float64) Point {
	t := (x - p.X) / (q.X - p.X)
	return Point{X: x, Y: p.Y + t*(q.Y-p.Y)}
}

func intersectH(p, q Point, y float64) Point {
	t := (y - p.Y) / (q.Y - p.Y)
	return Point{X: p.X + t*(q.X-p.X), Y: y}
}

// polygonCentroid computes the centroid via the signed-area formula.
// Near-zero area polygons fall back to the vertex average.
func polygonCentroid(poly []Point) Point {
	if len(poly) < 3 {
		return vertexAverage(poly)
	}
	var area, cx, cy float64
	for i := range poly {
		p := poly[i]
		q := poly[(i+1)%len(poly)]
		cr := p.X*q.Y - q.X*p.Y
		area += cr
		cx += (p.X + q.X) * cr
		cy += (p.Y + q.Y) * cr
	}
	if math.Abs(area) < 1e-12 {
		return vertexAverage(poly)
	}
	area *= 0.5
	return Point{X: cx / (6 * area), Y: cy / (6 * area)}
}

func vertexAverage(poly []Point) Point {
	if len(poly) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range poly {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(poly))
	return Point{X: sx / n, Y: sy / n}
}
