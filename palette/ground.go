package palette

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/skychart/skychart/forecast"
)

// Ground is the surface type drawn under a daily chart.
type Ground int

const (
	GroundNone Ground = iota
	GroundIce
	GroundPuddles
	GroundSand
	GroundSeasonal
)

func (g Ground) String() string {
	switch g {
	case GroundIce:
		return "ice"
	case GroundPuddles:
		return "puddles"
	case GroundSand:
		return "sand"
	case GroundSeasonal:
		return "seasonal"
	default:
		return "none"
	}
}

// Ground-type thresholds, degrees Fahrenheit and probability percent.
const (
	FreezingTempF    = 32.0
	HotTempF         = 90.0
	NiceLowTempF     = 55.0
	NiceHighTempF    = 85.0
	WetProbabilityPC = 20.0
)

// GroundTypeFor resolves the ground surface for a forecast window.
// Priority is strict: freezing always wins as ice, then wet conditions as
// puddles, then heat as sand; pleasant weather resolves to a seasonal
// surface and anything else to none.
func GroundTypeFor(avgTempF, totalPrecip float64, dominant forecast.Condition, avgProbability float64) Ground {
	switch {
	case avgTempF <= FreezingTempF:
		return GroundIce
	case dominant.RainLike() || (totalPrecip > 0 && avgProbability > WetProbabilityPC):
		return GroundPuddles
	case avgTempF >= HotTempF:
		return GroundSand
	case dominant.Nice() && avgTempF >= NiceLowTempF && avgTempF <= NiceHighTempF && avgProbability < WetProbabilityPC:
		return GroundSeasonal
	default:
		return GroundNone
	}
}

// Season is a meteorological season resolved for a hemisphere.
type Season int

const (
	Winter Season = iota
	Spring
	Summer
	Autumn
)

func (s Season) String() string {
	switch s {
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	default:
		return "winter"
	}
}

// southernFlip swaps opposing seasons for the southern hemisphere.
var southernFlip = map[Season]Season{
	Winter: Summer,
	Spring: Autumn,
	Summer: Winter,
	Autumn: Spring,
}

// SeasonFor resolves a month to a season. A negative latitude flips to
// the southern hemisphere; a nil latitude assumes northern.
func SeasonFor(month time.Month, latitude *float64) Season {
	var s Season
	switch {
	case month >= time.March && month <= time.May:
		s = Spring
	case month >= time.June && month <= time.August:
		s = Summer
	case month >= time.September && month <= time.November:
		s = Autumn
	default:
		s = Winter
	}
	if latitude != nil && *latitude < 0 {
		s = southernFlip[s]
	}
	return s
}

// GroundColor returns the fill color for a resolved ground type. Seasonal
// surfaces need the month and hemisphere.
func GroundColor(g Ground, month time.Month, latitude *float64) colorful.Color {
	switch g {
	case GroundIce:
		return groundIce
	case GroundPuddles:
		return groundWet
	case GroundSand:
		return groundSand
	case GroundSeasonal:
		switch SeasonFor(month, latitude) {
		case Spring:
			return groundSpring
		case Summer:
			return groundSummer
		case Autumn:
			return groundAutumn
		default:
			return groundWinter
		}
	default:
		return groundBare
	}
}
