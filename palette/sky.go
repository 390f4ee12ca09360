package palette

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/skychart/skychart/forecast"
)

// Sky colors per phase, clear and fully overcast.
var (
	dayClear     = hex("#87ceeb")
	dayCloudy    = hex("#8b9aa6")
	nightClear   = hex("#0b1026")
	nightCloudy  = hex("#2b3036")
	dawnClear    = hex("#e8a87c")
	dawnCloudy   = hex("#a88a74")
	duskClear    = hex("#e2725b")
	duskCloudy   = hex("#9a7a72")
	starColor    = hex("#f5f3ce")
	cloudColor   = hex("#e8eaed")
	rainColor    = hex("#9ecfef")
	snowColor    = hex("#f4f9ff")
	groundIce    = hex("#b3e5fc")
	groundWet    = hex("#5d7a8c")
	groundSand   = hex("#e3c078")
	groundWinter = hex("#eceff1")
	groundSpring = hex("#81c784")
	groundSummer = hex("#558b2f")
	groundAutumn = hex("#bf8040")
	groundBare   = hex("#7d7463")
)

// twilightSoftening controls how far dawn and dusk colors are pulled
// toward the daytime overcast color under cloud, avoiding oversaturated
// transitions.
const twilightSoftening = 0.35

// StarColor is the base color of night-sky star dots.
func StarColor() colorful.Color { return starColor }

// CloudColor is the base color of daytime cloud glyphs.
func CloudColor() colorful.Color { return cloudColor }

// RainColor is the color of rain particles.
func RainColor() colorful.Color { return rainColor }

// SnowColor is the color of snow particles.
func SnowColor() colorful.Color { return snowColor }

// SkyColor returns the sky color for a timestamp: the phase's clear color
// blended toward its overcast color by cloudCoverage/100. Dawn and dusk
// additionally shift partway toward the daytime overcast color as cloud
// grows.
func SkyColor(t time.Time, cloudCoverage float64, sun forecast.SunTimes) colorful.Color {
	phase := forecast.PhaseOf(t, sun)
	frac := clamp01(cloudCoverage / 100)

	var clear, cloudy colorful.Color
	switch phase {
	case forecast.PhaseDay:
		clear, cloudy = dayClear, dayCloudy
	case forecast.PhaseDawn:
		clear, cloudy = dawnClear, dawnCloudy
	case forecast.PhaseDusk:
		clear, cloudy = duskClear, duskCloudy
	default:
		clear, cloudy = nightClear, nightCloudy
	}

	c := clear.BlendRgb(cloudy, frac)
	if phase == forecast.PhaseDawn || phase == forecast.PhaseDusk {
		c = c.BlendRgb(dayCloudy, frac*twilightSoftening)
	}
	return c
}
