package palette

import "math"

// Particle density multipliers, particles per precipitation unit per
// 10000 square units of region. These are visual tuning knobs: snow needs
// more accumulation than rain for the same particle density, and the two
// chart types use different particle sizes, so each carries its own set.
const (
	HourlyRainDensity = 30.0
	HourlySnowDensity = 8.0
	DailyRainDensity  = 12.0
	DailySnowDensity  = 4.0
)

// ParticleCount converts a precipitation amount into a particle count for
// a region of the given pixel area, using one of the density constants
// above. Zero or negative amounts yield no particles; any positive amount
// yields at least one.
func ParticleCount(amount, areaPx, density float64) int {
	if amount <= 0 || areaPx <= 0 {
		return 0
	}
	n := int(math.Round(amount * density * areaPx / 10000))
	if n < 1 {
		n = 1
	}
	return n
}

// Opacity steps for precipitation probability bands.
const (
	opacityFaint  = 0.3
	opacityLight  = 0.5
	opacityMedium = 0.7
)

// PrecipitationOpacity maps a probability percentage to particle opacity.
// A nil probability defaults to 100.
func PrecipitationOpacity(probability *float64) float64 {
	p := 100.0
	if probability != nil {
		p = *probability
	}
	switch {
	case p <= 30:
		return opacityFaint
	case p <= 60:
		return opacityLight
	case p <= 90:
		return opacityMedium
	default:
		return 1.0
	}
}
