package calculator

import "math"

// round converts a non-negative figure to the nearest whole count, halves up
func round(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int(math.Floor(v + 0.5))
}

// ceilDiv returns ceil(n/d), or 0 when d is not positive
func ceilDiv(n, d int) int {
	if d <= 0 || n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}

// percentOf returns v × pct / 100
func percentOf(v, pct float64) float64 {
	return v * pct / 100
}

// ROI returns (revenue - cost) / cost as a percentage.
// A zero cost reports 0, never NaN or Inf.
func ROI(revenue, cost float64) float64 {
	if cost <= 0 {
		return 0
	}
	result := (revenue - cost) / cost * 100
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0
	}
	return result
}
