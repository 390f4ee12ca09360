package forecast

import (
	"testing"
	"time"
)

func tt(h, m int) time.Time {
	return time.Date(2026, 1, 26, h, m, 0, 0, time.UTC)
}

func tp(h, m int) *time.Time {
	v := tt(h, m)
	return &v
}

func TestPhaseOfWithSunTimes(t *testing.T) {
	sun := SunTimes{
		Dawn:    tp(6, 30),
		Sunrise: tp(7, 5),
		Sunset:  tp(17, 40),
		Dusk:    tp(18, 15),
	}
	tests := []struct {
		name string
		at   time.Time
		want SkyPhase
	}{
		{"deep night", tt(2, 0), PhaseNight},
		{"before dawn", tt(6, 29), PhaseNight},
		{"dawn", tt(6, 45), PhaseDawn},
		{"just after sunrise", tt(7, 6), PhaseDay},
		{"midday", tt(12, 0), PhaseDay},
		{"just before sunset", tt(17, 39), PhaseDay},
		{"dusk", tt(18, 0), PhaseDusk},
		{"after dusk", tt(18, 16), PhaseNight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PhaseOf(tc.at, sun); got != tc.want {
				t.Errorf("PhaseOf = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPhaseOfTimeOfDayOnly(t *testing.T) {
	// Sun instants on a different date must classify identically: only
	// the time-of-day component is compared.
	tomorrow := func(h, m int) *time.Time {
		v := time.Date(2026, 1, 27, h, m, 0, 0, time.UTC)
		return &v
	}
	sun := SunTimes{Sunrise: tomorrow(7, 0), Sunset: tomorrow(18, 0)}
	if got := PhaseOf(tt(12, 0), sun); got != PhaseDay {
		t.Errorf("midday = %v, want PhaseDay", got)
	}
	if got := PhaseOf(tt(3, 0), sun); got != PhaseNight {
		t.Errorf("3am = %v, want PhaseNight", got)
	}
}

func TestPhaseOfWithoutDawnDusk(t *testing.T) {
	sun := SunTimes{Sunrise: tp(7, 0), Sunset: tp(18, 0)}
	if got := PhaseOf(tt(6, 45), sun); got != PhaseNight {
		t.Errorf("pre-sunrise without dawn = %v, want PhaseNight", got)
	}
	if got := PhaseOf(tt(18, 10), sun); got != PhaseNight {
		t.Errorf("post-sunset without dusk = %v, want PhaseNight", got)
	}
}

func TestPhaseOfFallbackHours(t *testing.T) {
	tests := []struct {
		hour int
		want SkyPhase
	}{
		{0, PhaseNight}, {4, PhaseNight}, {5, PhaseDawn}, {6, PhaseDawn},
		{7, PhaseDay}, {12, PhaseDay}, {17, PhaseDay}, {18, PhaseDusk},
		{19, PhaseDusk}, {20, PhaseNight}, {23, PhaseNight},
	}
	for _, tc := range tests {
		if got := PhaseOf(tt(tc.hour, 0), SunTimes{}); got != tc.want {
			t.Errorf("hour %d = %v, want %v", tc.hour, got, tc.want)
		}
	}
}
