// Package astro computes sun event times (sunrise, sunset, civil dawn
// and dusk) for a date and location, so charts can be rendered without an
// external data service supplying them.
//
// The math follows the NOAA solar position equations on top of a Julian
// date conversion. Accuracy is within a couple of minutes, which is far
// below the one-hour bucket resolution of the charts.
package astro

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"

	"github.com/skychart/skychart/forecast"
)

// Solar zenith angles for the supported events, in degrees.
const (
	zenithOfficial = 90.833 // sunrise/sunset, includes refraction
	zenithCivil    = 96.0   // civil dawn/dusk
)

// SunTimes returns the sun events for the calendar date of t at the given
// coordinates. Latitude is degrees north, longitude degrees east. Events
// that do not occur (polar day or night) are left nil. Returned instants
// carry t's location.
func SunTimes(t time.Time, lat, lon float64) forecast.SunTimes {
	year, month, day := t.Date()
	noon := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)

	eqTimeMin, declRad := solarPosition(noon)

	var out forecast.SunTimes
	if rise, set, ok := eventPair(noon, lat, lon, zenithOfficial, eqTimeMin, declRad, t.Location()); ok {
		out.Sunrise, out.Sunset = &rise, &set
	}
	if dawn, dusk, ok := eventPair(noon, lat, lon, zenithCivil, eqTimeMin, declRad, t.Location()); ok {
		out.Dawn, out.Dusk = &dawn, &dusk
	}
	return out
}

// solarPosition returns the equation of time in minutes and the solar
// declination in radians for the given instant.
func solarPosition(t time.Time) (eqTimeMin, declRad float64) {
	jd := julian.TimeToJD(t)
	T := (jd - 2451545.0) / 36525.0

	l0 := fixAngle(280.46646 + T*(36000.76983+T*0.0003032))
	m := fixAngle(357.52911 + T*(35999.05029-T*0.0001537))
	e := 0.016708634 - T*(0.000042037+T*0.0000001267)

	mRad := unit.AngleFromDeg(m).Rad()
	c := math.Sin(mRad)*(1.914602-T*(0.004817+T*0.000014)) +
		math.Sin(2*mRad)*(0.019993-T*0.000101) +
		math.Sin(3*mRad)*0.000289
	sunLong := l0 + c

	omega := 125.04 - 1934.136*T
	lambda := sunLong - 0.00569 - 0.00478*math.Sin(unit.AngleFromDeg(omega).Rad())
	eps0 := 23 + (26+(21.448-T*(46.815+T*(0.00059-T*0.001813)))/60)/60
	epsRad := unit.AngleFromDeg(eps0).Rad()
	declRad = math.Asin(math.Sin(epsRad) * math.Sin(unit.AngleFromDeg(lambda).Rad()))

	l0Rad := unit.AngleFromDeg(l0).Rad()
	y := math.Tan(epsRad/2) * math.Tan(epsRad/2)
	eqTimeMin = unit.Angle(y*math.Sin(2*l0Rad)-
		2*e*math.Sin(mRad)+
		4*e*y*math.Sin(mRad)*math.Cos(2*l0Rad)-
		0.5*y*y*math.Sin(4*l0Rad)-
		1.25*e*e*math.Sin(2*mRad)).Deg() * 4
	return eqTimeMin, declRad
}

// eventPair computes the morning and evening crossings of the given
// zenith angle. ok is false when the sun never crosses it on that date.
func eventPair(noon time.Time, lat, lon, zenithDeg, eqTimeMin, declRad float64, loc *time.Location) (morning, evening time.Time, ok bool) {
	latRad := unit.AngleFromDeg(lat).Rad()
	zenRad := unit.AngleFromDeg(zenithDeg).Rad()

	cosHA := (math.Cos(zenRad) - math.Sin(latRad)*math.Sin(declRad)) /
		(math.Cos(latRad) * math.Cos(declRad))
	if cosHA < -1 || cosHA > 1 {
		return time.Time{}, time.Time{}, false
	}
	haDeg := unit.Angle(math.Acos(cosHA)).Deg()

	riseMin := 720 - 4*(lon+haDeg) - eqTimeMin
	setMin := 720 - 4*(lon-haDeg) - eqTimeMin

	midnight := noon.Add(-12 * time.Hour)
	morning = midnight.Add(time.Duration(riseMin * float64(time.Minute))).In(loc)
	evening = midnight.Add(time.Duration(setMin * float64(time.Minute))).In(loc)
	return morning, evening, true
}

func fixAngle(a float64) float64 { return a - 360.0*math.Floor(a/360.0) }
