package util

import "math"

// RoundTo rounds x to the given number of decimal places. Negative places
// round to powers of ten: RoundTo(-2, 1234) == 1200.
func RoundTo(places int, x float64) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(x*shift) / shift
}

// RoundToNearest rounds x to the nearest multiple of step. A zero step
// returns x unchanged.
func RoundToNearest(step, x float64) float64 {
	if step == 0 {
		return x
	}
	return math.Round(x/step) * step
}
