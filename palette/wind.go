package palette

import "math"

// MinArrowSpeed is the wind speed (mph) below which arrows are suppressed
// entirely.
const MinArrowSpeed = 8.0

// Arrow describes wind arrow geometry. Angle is a compass direction in
// radians (0 = up on the chart, increasing clockwise) pointing where the
// wind is blowing to.
type Arrow struct {
	Angle    float64
	Length   float64
	HeadSize float64
	Width    float64
}

// windBucket scales arrow geometry with speed. Thresholds are mph.
var windBuckets = []struct {
	speed    float64
	length   float64
	headSize float64
	width    float64
}{
	{40, 13, 3.5, 2.0},
	{25, 11, 3.0, 1.6},
	{15, 9, 2.5, 1.3},
	{MinArrowSpeed, 7, 2.0, 1.0},
}

// WindArrow returns the arrow geometry for a wind reading. bearing is the
// direction the wind comes from, in degrees; the arrow points the
// opposite way. ok is false when the speed is below MinArrowSpeed and no
// arrow should be drawn.
func WindArrow(bearing, speed float64) (a Arrow, ok bool) {
	if speed < MinArrowSpeed {
		return Arrow{}, false
	}
	a.Angle = math.Mod(bearing+180, 360) * math.Pi / 180
	for _, b := range windBuckets {
		if speed >= b.speed {
			a.Length = b.length
			a.HeadSize = b.headSize
			a.Width = b.width
			break
		}
	}
	return a, true
}
