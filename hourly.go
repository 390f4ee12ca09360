package skychart

import (
	"math"
	"strconv"

	"github.com/skychart/skychart/forecast"
	"github.com/skychart/skychart/palette"
	"github.com/skychart/skychart/scatter"
)

// Hourly layout bands, as fractions of the chart height.
const (
	hourlyCurveTop    = 0.38
	hourlyCurveBottom = 0.75
	hourlyFillBase    = 0.82
	hourlyWindLine    = 0.87
	hourlyIconLine    = 0.09
)

// HourlyChart composes the hourly forecast view: sky gradient, stars and
// clouds, per-hour precipitation fields, a continuous temperature curve,
// wind arrows, and icon/label overlays.
//
// A chart is stateless between renders; Render may be called repeatedly
// and rapidly (for example on every resize tick) and always produces the
// same operations for the same inputs.
type HourlyChart struct {
	cfg config
}

// NewHourlyChart returns an hourly chart with the given options applied
// over the defaults (400x160 viewport, 12 buckets, Voronoi distribution,
// fixed temperature ramp).
func NewHourlyChart(opts ...Option) *HourlyChart {
	cfg := defaultConfig(DefaultHourlyWidth, DefaultHourlyHeight, DefaultHourlyMaxItems)
	for _, opt := range opts {
		opt(&cfg)
	}
	return &HourlyChart{cfg: cfg}
}

// Compose renders into a fresh draw list and returns the operations.
func (c *HourlyChart) Compose(pts []forecast.Point, sun forecast.SunTimes) []Op {
	list := NewDrawList()
	c.Render(list, pts, sun)
	return list.Ops()
}

// Render draws the chart onto dst, back to front. The slice is assumed
// pre-filtered to the renderable window (see forecast.Hourly) and is
// capped to the configured maxItems.
func (c *HourlyChart) Render(dst Canvas, pts []forecast.Point, sun forecast.SunTimes) {
	cfg := &c.cfg
	style := cfg.styles.Lookup(StyleHourly)
	if len(pts) > cfg.maxItems {
		pts = pts[:cfg.maxItems]
	}
	if len(pts) == 0 {
		Logger().Debug("hourly chart: empty forecast slice")
		noData(dst, cfg, style)
		return
	}
	n := len(pts)
	Logger().Debug("composing hourly chart", "buckets", n)

	// 1. Background sky gradient with hard sunrise/sunset edges.
	dst.GradientRect(0, 0, cfg.width, cfg.height, GradientHorizontal, skyStops(pts, sun))

	// 2. Decorative stars and clouds.
	decorLayer(dst, cfg, pts, sun)

	// 3. Precipitation particle fields.
	precipLayer(dst, cfg, pts, palette.HourlyRainDensity, palette.HourlySnowDensity)

	// 4. Temperature curve.
	scale := c.temperatureScale(pts)
	c.temperatureCurve(dst, pts, scale)

	// 5. Wind arrows.
	windLayer(dst, cfg, pts, cfg.height*hourlyWindLine, style.LabelColor)

	// 6. Text and icon overlays.
	c.overlays(dst, pts, scale, style)
}

func (c *HourlyChart) temperatureScale(pts []forecast.Point) tempScale {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		t := p.High()
		lo = math.Min(lo, t)
		hi = math.Max(hi, t)
	}
	lo, hi = paddedRange(lo, hi)
	return tempScale{
		lo:     lo,
		hi:     hi,
		top:    c.cfg.height * hourlyCurveTop,
		bottom: c.cfg.height * hourlyCurveBottom,
	}
}

func (c *HourlyChart) temperatureCurve(dst Canvas, pts []forecast.Point, scale tempScale) {
	cfg := &c.cfg
	n := len(pts)
	bw := cfg.width / float64(n)

	curve := make([]scatter.Point, n)
	for i, p := range pts {
		curve[i] = scatter.Point{
			X: (float64(i) + 0.5) * bw,
			Y: scale.y(p.High()),
		}
	}

	// Translucent fill from the curve down to the fill baseline.
	if n >= 2 {
		base := cfg.height * hourlyFillBase
		poly := make([]scatter.Point, 0, n+2)
		poly = append(poly, curve...)
		poly = append(poly,
			scatter.Point{X: curve[n-1].X, Y: base},
			scatter.Point{X: curve[0].X, Y: base},
		)
		mid := (pts[0].High() + pts[n-1].High()) / 2
		dst.FillPath(poly, cfg.tempColor(mid), 0.18)
	}

	// Segments colored by the mean temperature of their endpoints.
	for i := 1; i < n; i++ {
		mean := (pts[i-1].High() + pts[i].High()) / 2
		dst.Line(curve[i-1].X, curve[i-1].Y, curve[i].X, curve[i].Y,
			1.6, cfg.tempColor(mean), 1)
	}

	// Single-bucket slice: a dot marks the lone reading.
	if n == 1 {
		dst.FillCircle(curve[0].X, curve[0].Y, 2, cfg.tempColor(pts[0].High()), 1)
	}
}

// overlays draws icon runs, hour labels, and deduplicated temperature
// labels. The first and last buckets anchor the curve only and carry no
// text or ticks.
func (c *HourlyChart) overlays(dst Canvas, pts []forecast.Point, scale tempScale, style Style) {
	cfg := &c.cfg
	n := len(pts)
	if n <= 2 {
		return
	}
	bw := cfg.width / float64(n)
	inner := pts[1 : n-1]

	// Icons: adjacent buckets sharing a condition merge into one icon
	// centered over the run, with tick marks at run boundaries.
	iconY := cfg.height * hourlyIconLine
	runs := conditionRuns(inner)
	for ri, run := range runs {
		s, e := run.start+1, run.end+1 // global bucket indices
		cx := (float64(s) + float64(e)) / 2 * bw
		dst.Icon(cx, iconY, style.IconSize, run.cond.Icon())
		if ri > 0 {
			x := float64(s) * bw
			dst.Line(x, iconY-4, x, iconY+4, 1, style.TickColor, style.TickOpacity)
		}
	}

	lastLabel := math.MinInt32
	for i := 1; i < n-1; i++ {
		p := pts[i]
		cx := (float64(i) + 0.5) * bw

		dst.Text(cx, cfg.height-4, style.LabelSize,
			strconv.Itoa(p.Datetime.Hour()), style.LabelColor, AlignCenter)

		// Temperature labels only where the rounded value changes.
		v := int(math.Round(p.High()))
		if v != lastLabel {
			dst.Text(cx, scale.y(p.High())-5, style.SmallSize,
				strconv.Itoa(v)+"°", style.LabelColor, AlignCenter)
			lastLabel = v
		}
	}
}
