package palette

import "github.com/lucasb-eyer/go-colorful"

// tempStop anchors the temperature ramp at a Fahrenheit value.
type tempStop struct {
	deg   float64
	color colorful.Color
}

// tempStops spans deep purple at 0F through deep red at 104F. Below and
// above the range the endpoint colors apply unchanged.
var tempStops = []tempStop{
	{0, hex("#4a148c")},
	{10, hex("#3949ab")},
	{20, hex("#1e88e5")},
	{32, hex("#00acc1")},
	{40, hex("#26a69a")},
	{50, hex("#66bb6a")},
	{60, hex("#9ccc65")},
	{70, hex("#d4e157")},
	{75, hex("#ffee58")},
	{85, hex("#ffa726")},
	{95, hex("#f4511e")},
	{104, hex("#b71c1c")},
}

// TemperatureColor maps a Fahrenheit temperature to a color by piecewise
// linear RGB interpolation between the bracketing ramp stops. Out-of-range
// temperatures clamp to the nearest endpoint color.
func TemperatureColor(tempF float64) colorful.Color {
	if tempF <= tempStops[0].deg {
		return tempStops[0].color
	}
	last := tempStops[len(tempStops)-1]
	if tempF >= last.deg {
		return last.color
	}
	for i := 1; i < len(tempStops); i++ {
		if tempF <= tempStops[i].deg {
			lo, hi := tempStops[i-1], tempStops[i]
			t := (tempF - lo.deg) / (hi.deg - lo.deg)
			return lo.color.BlendRgb(hi.color, t)
		}
	}
	return last.color
}

// TemperatureRampFunc adapts the fixed ramp for injection into chart
// composers, which accept any func(float64) colorful.Color. Callers that
// want adaptive coloring can instead scale to the visible window's own
// min/max with AdaptiveTemperatureColor.
func TemperatureRampFunc() func(float64) colorful.Color {
	return TemperatureColor
}

// AdaptiveTemperatureColor returns a temperature-color function that
// stretches the fixed ramp across [lo, hi] instead of the absolute scale.
// A zero-width window collapses to the ramp midpoint color.
func AdaptiveTemperatureColor(lo, hi float64) func(float64) colorful.Color {
	first := tempStops[0].deg
	span := tempStops[len(tempStops)-1].deg - first
	return func(tempF float64) colorful.Color {
		if hi == lo {
			return TemperatureColor(first + span/2)
		}
		t := clamp01((tempF - lo) / (hi - lo))
		return TemperatureColor(first + t*span)
	}
}
