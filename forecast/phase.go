package forecast

import "time"

// SkyPhase classifies a timestamp against the sun events.
type SkyPhase int

const (
	PhaseNight SkyPhase = iota
	PhaseDawn
	PhaseDay
	PhaseDusk
)

func (p SkyPhase) String() string {
	switch p {
	case PhaseDawn:
		return "dawn"
	case PhaseDay:
		return "day"
	case PhaseDusk:
		return "dusk"
	default:
		return "night"
	}
}

// Fallback phase boundaries (hours) used when sun times are unavailable.
const (
	fallbackDawnHour = 5
	fallbackDayHour  = 7
	fallbackDuskHour = 18
	fallbackNight    = 20
)

// PhaseOf classifies t into dawn, day, dusk, or night. Sun events are
// compared by time-of-day only, so it does not matter which date the
// "next" sunrise or sunset instant falls on. Without both sunrise and
// sunset, fixed hour thresholds apply.
func PhaseOf(t time.Time, sun SunTimes) SkyPhase {
	if sun.Sunrise == nil || sun.Sunset == nil {
		switch h := t.Hour(); {
		case h >= fallbackDawnHour && h < fallbackDayHour:
			return PhaseDawn
		case h >= fallbackDayHour && h < fallbackDuskHour:
			return PhaseDay
		case h >= fallbackDuskHour && h < fallbackNight:
			return PhaseDusk
		default:
			return PhaseNight
		}
	}

	tod := minuteOfDay(t)
	rise := minuteOfDay(*sun.Sunrise)
	set := minuteOfDay(*sun.Sunset)

	switch {
	case sun.Dawn != nil && tod >= minuteOfDay(*sun.Dawn) && tod < rise:
		return PhaseDawn
	case tod >= rise && tod < set:
		return PhaseDay
	case sun.Dusk != nil && tod >= set && tod < minuteOfDay(*sun.Dusk):
		return PhaseDusk
	default:
		return PhaseNight
	}
}

func minuteOfDay(t time.Time) float64 {
	return float64(t.Hour()*60+t.Minute()) + float64(t.Second())/60
}
