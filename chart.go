package skychart

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/skychart/skychart/forecast"
	"github.com/skychart/skychart/palette"
	"github.com/skychart/skychart/scatter"
)

// Layer geometry shared by both chart kinds, as fractions of the chart
// height.
const (
	// decorTopFrac bounds the star/cloud zone at the top of the chart.
	decorTopFrac = 0.35
	// precipDepthFrac is how far down precipitation particles fall.
	precipDepthFrac = 0.6
)

// sunEdgeEpsilon is the offset applied on each side of a sunrise or
// sunset gradient stop. The two stops sit almost on top of each other so
// the day/night transition renders as a hard edge instead of a blend.
const sunEdgeEpsilon = 0.002

// Particle glyph sizes in logical units.
const (
	rainDropLength = 3.2
	rainDropSlant  = 0.6
	rainDropWidth  = 0.8
	snowflakeR     = 1.2
)

const noDataLabel = "no forecast data"

// noData emits the placeholder scene for an empty forecast slice.
func noData(dst Canvas, cfg *config, style Style) {
	dst.Text(cfg.width/2, cfg.height/2, style.LabelSize, noDataLabel, style.LabelColor, AlignCenter)
}

// bucketSeed derives the deterministic RNG seed of one bucket layer.
func bucketSeed(p forecast.Point, layer string) string {
	return p.Datetime.Format(time.RFC3339) + ":" + layer
}

// skyStops builds the background gradient: one stop per bucket center,
// colored by that bucket's sky, plus a hard stop pair at every sunrise
// and sunset crossing inside the window.
func skyStops(pts []forecast.Point, sun forecast.SunTimes) []ColorStop {
	n := len(pts)
	stops := make([]ColorStop, 0, n+4)
	for i, p := range pts {
		stops = append(stops, ColorStop{
			Offset: (float64(i) + 0.5) / float64(n),
			Color:  palette.SkyColor(p.Datetime, p.Clouds(), sun),
		})
	}
	if n >= 2 {
		stops = append(stops, sunEventStops(pts, sun, sun.Sunrise)...)
		stops = append(stops, sunEventStops(pts, sun, sun.Sunset)...)
	}
	return sortStops(stops)
}

// sunEventStops converts one sun event into a pair of near-coincident
// gradient stops straddling its position in the window, sampling the sky
// color a minute before and after the event so the two sides land on
// opposite phases.
func sunEventStops(pts []forecast.Point, sun forecast.SunTimes, event *time.Time) []ColorStop {
	if event == nil {
		return nil
	}
	n := len(pts)
	t0 := pts[0].Datetime
	tN := pts[n-1].Datetime
	span := tN.Sub(t0)
	if span <= 0 {
		return nil
	}

	// Place the event's time-of-day onto the window's starting date; a
	// "next" event numerically before the window start belongs to the
	// following day.
	y, m, d := t0.Date()
	ev := time.Date(y, m, d, event.Hour(), event.Minute(), event.Second(), 0, t0.Location())
	if ev.Before(t0) {
		ev = ev.Add(24 * time.Hour)
	}
	if ev.After(tN) {
		return nil
	}

	// Bucket centers span offsets 0.5/n .. (n-0.5)/n; interpolate the
	// event time into that range.
	frac := 0.5/float64(n) + ev.Sub(t0).Seconds()/span.Seconds()*float64(n-1)/float64(n)
	if frac <= sunEdgeEpsilon || frac >= 1-sunEdgeEpsilon {
		return nil
	}

	// Same cloud coverage on both sides: only the phase changes.
	cov := pts[nearestBucket(frac, n)].Clouds()
	before := palette.SkyColor(ev.Add(-time.Minute), cov, sun)
	after := palette.SkyColor(ev.Add(time.Minute), cov, sun)
	return []ColorStop{
		{Offset: frac - sunEdgeEpsilon, Color: before},
		{Offset: frac + sunEdgeEpsilon, Color: after},
	}
}

func nearestBucket(frac float64, n int) int {
	i := int(frac * float64(n))
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return i
}

// decorLayer draws per-bucket sky ornaments: stars on night buckets
// scaled by clearness, cloud glyphs on day buckets scaled by coverage.
// Both confine their distributions to the top fraction of the chart.
const (
	maxStarsPerBucket = 8
	minCloudCoverage  = 15.0
)

func decorLayer(dst Canvas, cfg *config, pts []forecast.Point, sun forecast.SunTimes) {
	n := len(pts)
	bw := cfg.width / float64(n)
	depth := cfg.height * decorTopFrac

	for i, p := range pts {
		phase := forecast.PhaseOf(p.Datetime, sun)
		region := scatter.Bounds{X: float64(i) * bw, Y: 0, W: bw, H: depth}
		switch phase {
		case forecast.PhaseNight:
			drawStars(dst, region, p, cfg.strategy)
		case forecast.PhaseDay:
			drawClouds(dst, region, p, cfg.strategy)
		}
	}
}

func drawStars(dst Canvas, region scatter.Bounds, p forecast.Point, strategy scatter.Strategy) {
	clearness := 1 - clamp01(p.Clouds()/100)
	count := int(math.Round(clearness * maxStarsPerBucket))
	if count == 0 {
		return
	}
	rng := scatter.NewRNG(bucketSeed(p, "stars"))
	points := scatter.Generate(count, region, scatter.Options{
		Strategy:   strategy,
		Rand:       rng,
		Iterations: scatter.IterationsFor(count),
	})
	star := palette.StarColor()
	for _, pt := range points {
		r := 0.3 + rng()*0.7
		opacity := clearness * (0.3 + rng()*0.6)
		dst.FillCircle(pt.X, pt.Y, r, star, opacity)
	}
}

func drawClouds(dst Canvas, region scatter.Bounds, p forecast.Point, strategy scatter.Strategy) {
	cov := p.Clouds()
	if cov < minCloudCoverage {
		return
	}
	count := 1 + int(math.Round(cov/50))
	rng := scatter.NewRNG(bucketSeed(p, "clouds"))
	points := scatter.Generate(count, region, scatter.Options{
		Strategy:   strategy,
		Rand:       rng,
		Iterations: scatter.IterationsFor(count),
	})
	c := palette.CloudColor()
	r := 3.5 + 4*cov/100
	opacity := 0.45 + 0.35*cov/100
	for _, pt := range points {
		// A cloud glyph is three overlapping puffs.
		dst.FillCircle(pt.X, pt.Y, r, c, opacity)
		dst.FillCircle(pt.X-r*0.8, pt.Y+r*0.25, r*0.7, c, opacity)
		dst.FillCircle(pt.X+r*0.8, pt.Y+r*0.25, r*0.7, c, opacity)
	}
}

// precipLayer draws an independent particle field per bucket, clipped to
// the bucket's horizontal slice. Particle type follows the condition;
// mixed precipitation types each particle from the seeded stream.
func precipLayer(dst Canvas, cfg *config, pts []forecast.Point, rainDensity, snowDensity float64) {
	n := len(pts)
	bw := cfg.width / float64(n)
	depth := cfg.height * precipDepthFrac

	for i, p := range pts {
		kind := p.Condition.Precip()
		if kind == forecast.PrecipNone || p.Precipitation == nil || *p.Precipitation <= 0 {
			continue
		}
		amount := *p.Precipitation
		density := rainDensity
		if kind == forecast.PrecipSnow {
			density = snowDensity
		}
		region := scatter.Bounds{X: float64(i) * bw, Y: 0, W: bw, H: depth}
		count := palette.ParticleCount(amount, region.Area(), density)
		if count == 0 {
			continue
		}
		rng := scatter.NewRNG(bucketSeed(p, "precip"))
		points := scatter.Generate(count, region, scatter.Options{
			Strategy:   cfg.strategy,
			Rand:       rng,
			Iterations: scatter.IterationsFor(count),
		})
		opacity := palette.PrecipitationOpacity(p.PrecipitationProbability)

		dst.PushClip(region.X, region.Y, region.W, region.H)
		for _, pt := range points {
			snow := kind == forecast.PrecipSnow
			if kind == forecast.PrecipMixed {
				snow = rng() < 0.5
			}
			if snow {
				dst.FillCircle(pt.X, pt.Y, snowflakeR, palette.SnowColor(), opacity)
			} else {
				dst.Line(pt.X, pt.Y, pt.X+rainDropSlant, pt.Y+rainDropLength,
					rainDropWidth, palette.RainColor(), opacity)
			}
		}
		dst.PopClip()
	}
}

// windLayer draws one arrow per bucket at the given baseline, pointing
// where the wind blows to. Arrows under the visibility threshold are
// suppressed by palette.WindArrow.
func windLayer(dst Canvas, cfg *config, pts []forecast.Point, baseline float64, color colorful.Color) {
	n := len(pts)
	bw := cfg.width / float64(n)
	for i, p := range pts {
		if p.WindSpeed == nil || p.WindBearing == nil {
			continue
		}
		a, ok := palette.WindArrow(*p.WindBearing, *p.WindSpeed)
		if !ok {
			continue
		}
		cx := (float64(i) + 0.5) * bw
		drawArrow(dst, cx, baseline, a, color)
	}
}

// drawArrow renders arrow geometry around a center point. The palette
// angle is a compass direction: 0 points up the chart, increasing
// clockwise.
func drawArrow(dst Canvas, cx, cy float64, a palette.Arrow, color colorful.Color) {
	dx := math.Sin(a.Angle)
	dy := -math.Cos(a.Angle)
	half := a.Length / 2
	tailX, tailY := cx-dx*half, cy-dy*half
	tipX, tipY := cx+dx*half, cy+dy*half
	dst.Line(tailX, tailY, tipX, tipY, a.Width, color, 0.9)

	// Barbs swept back from the tip.
	for _, side := range []float64{1, -1} {
		ang := a.Angle + math.Pi + side*math.Pi/6
		bx := tipX + math.Sin(ang)*a.HeadSize
		by := tipY - math.Cos(ang)*a.HeadSize
		dst.Line(tipX, tipY, bx, by, a.Width, color, 0.9)
	}
}

// tempScale maps temperatures into a vertical band. A zero temperature
// range degenerates every position to the band midpoint.
type tempScale struct {
	lo, hi      float64
	top, bottom float64
}

func (s tempScale) y(t float64) float64 {
	if s.hi == s.lo {
		return (s.top + s.bottom) / 2
	}
	f := clamp01((t - s.lo) / (s.hi - s.lo))
	return s.bottom - f*(s.bottom-s.top)
}

// rangePad widens a temperature range by a margin so curve extremes do
// not touch the band edges.
const rangePadFrac = 0.15

func paddedRange(lo, hi float64) (float64, float64) {
	if hi == lo {
		return lo, hi
	}
	pad := (hi - lo) * rangePadFrac
	return lo - pad, hi + pad
}

// conditionRuns groups consecutive buckets sharing a condition. Each run
// is [start, end) over the given slice.
type conditionRun struct {
	start, end int
	cond       forecast.Condition
}

func conditionRuns(pts []forecast.Point) []conditionRun {
	var runs []conditionRun
	for i := 0; i < len(pts); {
		j := i + 1
		for j < len(pts) && pts[j].Condition == pts[i].Condition {
			j++
		}
		runs = append(runs, conditionRun{start: i, end: j, cond: pts[i].Condition})
		i = j
	}
	return runs
}

// dominantCondition returns the most frequent condition of the slice,
// preferring the earliest on ties.
func dominantCondition(pts []forecast.Point) forecast.Condition {
	counts := map[forecast.Condition]int{}
	order := []forecast.Condition{}
	for _, p := range pts {
		if counts[p.Condition] == 0 {
			order = append(order, p.Condition)
		}
		counts[p.Condition]++
	}
	best := forecast.ConditionUnknown
	bestN := -1
	for _, c := range order {
		if counts[c] > bestN {
			best, bestN = c, counts[c]
		}
	}
	return best
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
