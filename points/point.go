package points

import (
	"math"
	"strconv"
	"strings"
)

// Point is a point in the unit square.
type Point struct {
	X float64
	Y float64
}

// String renders p as a points file line, without the line terminator.
func (p Point) String() string {
	return FormatFloat(p.X) + ", " + FormatFloat(p.Y)
}

// FormatFloat renders v in the shortest form that parses back to v.
//
// Positional numbers always have a fractional part: 0.2, 1.0, 0.05.
// Magnitudes below 1e-4 or from 1e16 up use the exponent form: 1e-05.
func FormatFloat(v float64) string {
	if abs := math.Abs(v); v != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}

// Round2 rounds v half away from zero to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// unitCoord rounds a sample from [0, 1) to 2 decimal places.
//
// Samples in [0.995, 1) round up to 1, which is outside the unit square,
// and are wrapped to 0. That gives each of the 100 possible values the same
// probability.
func unitCoord(v float64) float64 {
	r := Round2(v)
	if r >= 1 {
		return 0
	}
	return r
}
