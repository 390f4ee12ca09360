// Package palette maps weather quantities to visual properties: colors
// for temperatures and sky phases, particle counts and opacities for
// precipitation, arrow geometry for wind, and ground surface types.
//
// Everything here is a pure function over primitives with no drawing
// dependency, so the visual policy is unit-testable in isolation. Density
// and threshold values are tuning knobs, not physical law, and are
// exported as named constants.
package palette

import "github.com/lucasb-eyer/go-colorful"

// hex parses a compile-time color literal.
func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("palette: bad color literal " + s)
	}
	return c
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
