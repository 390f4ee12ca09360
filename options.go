package skychart

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/skychart/skychart/palette"
	"github.com/skychart/skychart/scatter"
)

// Default logical viewport sizes and bucket caps.
const (
	DefaultHourlyWidth  = 400.0
	DefaultHourlyHeight = 160.0
	DefaultDailyWidth   = 400.0
	DefaultDailyHeight  = 150.0

	DefaultHourlyMaxItems = 12
	DefaultDailyMaxItems  = 7
)

// config holds chart configuration shared by both composers.
type config struct {
	width, height float64
	maxItems      int
	strategy      scatter.Strategy
	tempColor     func(float64) colorful.Color
	latitude      *float64
	styles        *StyleSet
}

// Option configures a chart during creation, in the functional options
// style.
//
// Example:
//
//	chart := skychart.NewHourlyChart(
//	    skychart.WithMaxItems(8),
//	    skychart.WithStrategy(scatter.StrategyPoisson),
//	)
type Option func(*config)

func defaultConfig(w, h float64, maxItems int) config {
	return config{
		width:     w,
		height:    h,
		maxItems:  maxItems,
		strategy:  scatter.StrategyVoronoi,
		tempColor: palette.TemperatureColor,
		styles:    DefaultStyles(),
	}
}

// WithSize overrides the logical viewport size.
func WithSize(width, height float64) Option {
	return func(c *config) {
		if width > 0 {
			c.width = width
		}
		if height > 0 {
			c.height = height
		}
	}
}

// WithMaxItems caps the number of buckets rendered.
func WithMaxItems(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxItems = n
		}
	}
}

// WithStrategy selects the particle distribution algorithm. The default
// is Lloyd/Voronoi relaxation.
func WithStrategy(s scatter.Strategy) Option {
	return func(c *config) { c.strategy = s }
}

// WithTemperatureColor injects a temperature-to-color function, for
// example palette.AdaptiveTemperatureColor scaled to the visible window.
func WithTemperatureColor(fn func(float64) colorful.Color) Option {
	return func(c *config) {
		if fn != nil {
			c.tempColor = fn
		}
	}
}

// WithLatitude supplies the signed latitude used for hemisphere-aware
// season resolution in the daily ground strip.
func WithLatitude(lat float64) Option {
	return func(c *config) { c.latitude = &lat }
}

// WithStyles installs an explicit style registration set. The composition
// root owns the set; there is no ambient global registry.
func WithStyles(s *StyleSet) Option {
	return func(c *config) {
		if s != nil {
			c.styles = s
		}
	}
}
