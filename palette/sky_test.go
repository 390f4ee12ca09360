package palette

import (
	"testing"
	"time"

	"github.com/skychart/skychart/forecast"
)

func at(h int) time.Time {
	return time.Date(2026, 6, 10, h, 0, 0, 0, time.UTC)
}

func TestSkyColorPhases(t *testing.T) {
	// No sun times: hour fallback selects the phase.
	if got := SkyColor(at(12), 0, forecast.SunTimes{}); got != dayClear {
		t.Errorf("clear noon = %v, want %v", got, dayClear)
	}
	if got := SkyColor(at(2), 0, forecast.SunTimes{}); got != nightClear {
		t.Errorf("clear night = %v, want %v", got, nightClear)
	}
	if got := SkyColor(at(12), 100, forecast.SunTimes{}); got != dayCloudy {
		t.Errorf("overcast noon = %v, want %v", got, dayCloudy)
	}
}

func TestSkyColorCloudBlend(t *testing.T) {
	clear := SkyColor(at(12), 0, forecast.SunTimes{})
	half := SkyColor(at(12), 50, forecast.SunTimes{})
	full := SkyColor(at(12), 100, forecast.SunTimes{})

	dClearHalf := clear.DistanceRgb(half)
	dClearFull := clear.DistanceRgb(full)
	if dClearHalf <= 0 {
		t.Error("half cloud did not move color toward overcast")
	}
	if dClearFull <= dClearHalf {
		t.Errorf("full overcast not further than half: %v <= %v", dClearFull, dClearHalf)
	}
}

func TestSkyColorTwilightSoftening(t *testing.T) {
	// Under heavy cloud, dusk pulls toward the daytime overcast color
	// compared to the plain clear/cloudy blend.
	plain := duskClear.BlendRgb(duskCloudy, 1)
	got := SkyColor(at(19), 100, forecast.SunTimes{})
	if got == plain {
		t.Error("cloudy dusk did not soften toward daytime overcast")
	}
	if got.DistanceRgb(dayCloudy) >= plain.DistanceRgb(dayCloudy) {
		t.Error("softened dusk is not closer to the daytime overcast color")
	}
}

func TestSkyColorClampsCoverage(t *testing.T) {
	under := SkyColor(at(12), -20, forecast.SunTimes{})
	over := SkyColor(at(12), 140, forecast.SunTimes{})
	if under != dayClear {
		t.Errorf("negative coverage = %v, want clear", under)
	}
	if over != dayCloudy {
		t.Errorf("excess coverage = %v, want overcast", over)
	}
}
