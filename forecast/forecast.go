// Package forecast defines the weather data consumed by the chart
// composers: forecast points, sun times, the weather condition variant
// type, and the data-preparation boundary that filters a raw forecast
// down to the renderable window.
//
// Numeric fields that a data source may omit are pointers; the rendering
// core substitutes named defaults rather than propagating nil.
package forecast

import "time"

// Point is one forecast record, hourly or daily cadence. The sequence
// order is chronological and significant: a point's index selects its
// horizontal chart slot.
type Point struct {
	Datetime                 time.Time `json:"datetime"`
	Condition                Condition `json:"condition"`
	Temperature              *float64  `json:"temperature"`
	TempLow                  *float64  `json:"templow"`
	Precipitation            *float64  `json:"precipitation"`
	PrecipitationProbability *float64  `json:"precipitation_probability"`
	CloudCoverage            *float64  `json:"cloud_coverage"`
	WindSpeed                *float64  `json:"wind_speed"`
	WindBearing              *float64  `json:"wind_bearing"`
	Humidity                 *float64  `json:"humidity"`
	UVIndex                  *float64  `json:"uv_index"`
}

// Defaults substituted for absent temperature fields.
const (
	DefaultHighTemp = 50.0
	// DefaultLowDrop is subtracted from the high when templow is absent.
	DefaultLowDrop = 10.0
)

// High returns the point's temperature, or DefaultHighTemp when absent.
func (p Point) High() float64 {
	if p.Temperature != nil {
		return *p.Temperature
	}
	return DefaultHighTemp
}

// Low returns the point's low temperature, falling back to the high minus
// DefaultLowDrop.
func (p Point) Low() float64 {
	if p.TempLow != nil {
		return *p.TempLow
	}
	return p.High() - DefaultLowDrop
}

// Clouds returns cloud coverage in [0, 100], defaulting to 0.
func (p Point) Clouds() float64 {
	if p.CloudCoverage != nil {
		return *p.CloudCoverage
	}
	return 0
}

// SunTimes holds the next occurrence of each sun event. Classification of
// a forecast point as day or night compares time-of-day only, so "next"
// instants that fall on the following date are acceptable.
type SunTimes struct {
	Sunrise *time.Time
	Sunset  *time.Time
	Dawn    *time.Time
	Dusk    *time.Time
}

// Hourly returns the forecast points that are still ahead of now, capped
// to maxItems. The bucket stamped at the already-elapsed current hour is
// excluded.
func Hourly(pts []Point, now time.Time, maxItems int) []Point {
	cutoff := now.Truncate(time.Hour)
	out := make([]Point, 0, maxItems)
	for _, p := range pts {
		if !p.Datetime.After(cutoff) {
			continue
		}
		out = append(out, p)
		if maxItems > 0 && len(out) == maxItems {
			break
		}
	}
	return out
}

// Daily returns forward-looking daily points, capped to maxItems. The
// current calendar day is excluded.
func Daily(pts []Point, now time.Time, maxItems int) []Point {
	y, m, d := now.Date()
	out := make([]Point, 0, maxItems)
	for _, p := range pts {
		py, pm, pd := p.Datetime.Date()
		if py == y && pm == m && pd == d {
			continue
		}
		if p.Datetime.Before(now) {
			continue
		}
		out = append(out, p)
		if maxItems > 0 && len(out) == maxItems {
			break
		}
	}
	return out
}
