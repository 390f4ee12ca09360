// Package scatter generates point distributions that look naturally
// scattered while covering a rectangular region evenly.
//
// Three interchangeable strategies are provided:
//
//   - StrategyGrid: one jittered point per grid cell. O(n), cheap,
//     acceptable evenness for small counts.
//   - StrategyPoisson: Bridson Poisson-disk sampling. Guarantees a hard
//     minimum pairwise distance between points.
//   - StrategyVoronoi: Lloyd relaxation over a Delaunay triangulation.
//     Produces the most visually uniform spacing and is the default.
//
// All strategies accept an injected random stream (see NewRNG) so callers
// can reproduce a distribution exactly across renders.
package scatter

import (
	"math"
	"math/rand"
)

// Point is a generated 2D position.
type Point struct {
	X, Y float64
}

// Bounds is a rectangular region in drawing-space coordinates.
type Bounds struct {
	X, Y, W, H float64
}

// Area returns the area of the region.
func (b Bounds) Area() float64 { return b.W * b.H }

// Empty reports whether the region has no usable area.
func (b Bounds) Empty() bool { return b.W <= 0 || b.H <= 0 }

// clamp returns p moved to the nearest position inside b.
func (b Bounds) clamp(p Point) Point {
	if p.X < b.X {
		p.X = b.X
	}
	if p.X > b.X+b.W {
		p.X = b.X + b.W
	}
	if p.Y < b.Y {
		p.Y = b.Y
	}
	if p.Y > b.Y+b.H {
		p.Y = b.Y + b.H
	}
	return p
}

// Strategy selects a distribution algorithm.
type Strategy int

const (
	// StrategyVoronoi applies Lloyd relaxation to a random seed set.
	StrategyVoronoi Strategy = iota
	// StrategyPoisson uses Bridson Poisson-disk sampling.
	StrategyPoisson
	// StrategyGrid jitters one point per grid cell.
	StrategyGrid
)

// Options configures a Generate call. The zero value selects the Voronoi
// strategy with a non-deterministic random source and derived parameters.
type Options struct {
	// Strategy selects the distribution algorithm.
	Strategy Strategy

	// Rand supplies random values in [0, 1). When nil a non-deterministic
	// source is used, which is acceptable for purely decorative output.
	Rand func() float64

	// MinDistance is the Poisson-disk spacing radius. When zero it is
	// derived from the region area and requested count.
	MinDistance float64

	// MaxAttempts bounds candidate proposals per active Poisson point.
	// Zero means the Bridson default of 30.
	MaxAttempts int

	// Iterations is the number of Lloyd relaxation rounds. Zero means 4.
	Iterations int
}

const defaultMaxAttempts = 30

// Generate produces up to count points inside bounds using the configured
// strategy. It returns fewer points only when placement is geometrically
// infeasible (Poisson exhaustion). count <= 0 or empty bounds yield an
// empty result, never an error.
func Generate(count int, bounds Bounds, opts Options) []Point {
	if count <= 0 || bounds.Empty() {
		return nil
	}
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.Float64
	}
	switch opts.Strategy {
	case StrategyPoisson:
		return poissonDisk(count, bounds, rnd, opts.MinDistance, opts.MaxAttempts)
	case StrategyGrid:
		return jitteredGrid(count, bounds, rnd)
	default:
		iters := opts.Iterations
		if iters <= 0 {
			iters = 4
		}
		return lloydRelax(count, bounds, rnd, iters)
	}
}

// IterationsFor scales Lloyd iterations down as the particle count grows,
// keeping relaxation cost roughly constant per region.
func IterationsFor(count int) int {
	if count <= 0 {
		return 1
	}
	n := int(math.Ceil(float64(count) / 3))
	if n < 1 {
		n = 1
	}
	if n > 5 {
		n = 5
	}
	return n
}

// randomPoints fills bounds with count uniform random points.
func randomPoints(count int, bounds Bounds, rnd func() float64) []Point {
	pts := make([]Point, count)
	for i := range pts {
		pts[i] = Point{
			X: bounds.X + rnd()*bounds.W,
			Y: bounds.Y + rnd()*bounds.H,
		}
	}
	return pts
}
