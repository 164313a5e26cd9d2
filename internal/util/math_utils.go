package util

import (
	"math"
)

// NiceCeiling rounds v up to a value that reads well as the top of a chart
// axis: 1, 2, 2.5, 5 or 10 times a power of ten.
func NiceCeiling(v float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	exp := math.Floor(math.Log10(v))
	base := math.Pow(10, exp)
	frac := v / base
	for _, step := range []float64{1, 2, 2.5, 5, 10} {
		if frac <= step+1e-9 {
			return step * base
		}
	}
	return 10 * base
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
