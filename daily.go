package skychart

import (
	"math"
	"strconv"

	"github.com/skychart/skychart/forecast"
	"github.com/skychart/skychart/palette"
)

// Daily layout bands, as fractions of the chart height.
const (
	dailyBarTop      = 0.30
	dailyBarBottom   = 0.72
	dailyBarWidth    = 0.30 // fraction of the bucket width
	dailyGroundTop   = 0.76
	dailyGroundDepth = 0.04
	dailyWindLine    = 0.88
	dailyIconLine    = 0.10
)

// DailyChart composes the daily forecast view: sky gradient, decorative
// layer, per-day precipitation fields, vertical temperature bars spanning
// high to low, a ground strip, wind arrows, and labels. The slice is
// forward-looking: the current day is excluded upstream by
// forecast.Daily.
type DailyChart struct {
	cfg config
}

// NewDailyChart returns a daily chart with the given options applied over
// the defaults (400x150 viewport, 7 buckets, Voronoi distribution, fixed
// temperature ramp).
func NewDailyChart(opts ...Option) *DailyChart {
	cfg := defaultConfig(DefaultDailyWidth, DefaultDailyHeight, DefaultDailyMaxItems)
	for _, opt := range opts {
		opt(&cfg)
	}
	return &DailyChart{cfg: cfg}
}

// Compose renders into a fresh draw list and returns the operations.
func (c *DailyChart) Compose(pts []forecast.Point, sun forecast.SunTimes) []Op {
	list := NewDrawList()
	c.Render(list, pts, sun)
	return list.Ops()
}

// Render draws the chart onto dst, back to front.
func (c *DailyChart) Render(dst Canvas, pts []forecast.Point, sun forecast.SunTimes) {
	cfg := &c.cfg
	style := cfg.styles.Lookup(StyleDaily)
	if len(pts) > cfg.maxItems {
		pts = pts[:cfg.maxItems]
	}
	if len(pts) == 0 {
		Logger().Debug("daily chart: empty forecast slice")
		noData(dst, cfg, style)
		return
	}
	n := len(pts)
	Logger().Debug("composing daily chart", "buckets", n)

	dst.GradientRect(0, 0, cfg.width, cfg.height, GradientHorizontal, skyStops(pts, sun))
	decorLayer(dst, cfg, pts, sun)
	precipLayer(dst, cfg, pts, palette.DailyRainDensity, palette.DailySnowDensity)

	c.temperatureBars(dst, pts, style)
	c.groundStrip(dst, pts)
	windLayer(dst, cfg, pts, cfg.height*dailyWindLine, style.LabelColor)
	c.overlays(dst, pts, style)
}

func (c *DailyChart) temperatureBars(dst Canvas, pts []forecast.Point, style Style) {
	cfg := &c.cfg
	n := len(pts)
	bw := cfg.width / float64(n)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		lo = math.Min(lo, p.Low())
		hi = math.Max(hi, p.High())
	}
	lo, hi = paddedRange(lo, hi)
	scale := tempScale{
		lo:     lo,
		hi:     hi,
		top:    cfg.height * dailyBarTop,
		bottom: cfg.height * dailyBarBottom,
	}

	barW := bw * dailyBarWidth
	for i, p := range pts {
		high, low := p.High(), p.Low()
		yHi := scale.y(high)
		yLo := scale.y(low)
		if yLo-yHi < 2 {
			// Degenerate span still renders as a visible pellet.
			yLo = yHi + 2
		}
		cx := (float64(i) + 0.5) * bw
		dst.GradientRect(cx-barW/2, yHi, barW, yLo-yHi, GradientVertical, []ColorStop{
			{Offset: 0, Color: cfg.tempColor(high)},
			{Offset: 1, Color: cfg.tempColor(low)},
		})

		// Daily labels are always emitted, one pair per bucket.
		dst.Text(cx, yHi-4, style.SmallSize,
			strconv.Itoa(int(math.Round(high)))+"°", style.LabelColor, AlignCenter)
		dst.Text(cx, yLo+10, style.SmallSize,
			strconv.Itoa(int(math.Round(low)))+"°", style.LabelColor, AlignCenter)
	}
}

// groundStrip draws a thin surface band whose color reflects the
// aggregate window conditions: ice, puddles, sand, or a seasonal tone.
func (c *DailyChart) groundStrip(dst Canvas, pts []forecast.Point) {
	cfg := &c.cfg

	var tempSum, precipSum, probSum float64
	probCount := 0
	for _, p := range pts {
		tempSum += (p.High() + p.Low()) / 2
		if p.Precipitation != nil {
			precipSum += *p.Precipitation
		}
		if p.PrecipitationProbability != nil {
			probSum += *p.PrecipitationProbability
			probCount++
		}
	}
	avgTemp := tempSum / float64(len(pts))
	avgProb := 0.0
	if probCount > 0 {
		avgProb = probSum / float64(probCount)
	}

	ground := palette.GroundTypeFor(avgTemp, precipSum, dominantCondition(pts), avgProb)
	if ground == palette.GroundNone {
		return
	}
	month := pts[0].Datetime.Month()
	dst.FillRect(0, cfg.height*dailyGroundTop, cfg.width, cfg.height*dailyGroundDepth,
		palette.GroundColor(ground, month, cfg.latitude), 0.85)
}

func (c *DailyChart) overlays(dst Canvas, pts []forecast.Point, style Style) {
	cfg := &c.cfg
	n := len(pts)
	bw := cfg.width / float64(n)
	iconY := cfg.height * dailyIconLine

	for i, p := range pts {
		cx := (float64(i) + 0.5) * bw
		dst.Icon(cx, iconY, style.IconSize, p.Condition.Icon())
		dst.Text(cx, cfg.height-4, style.LabelSize,
			p.Datetime.Format("Mon"), style.LabelColor, AlignCenter)
	}
}
