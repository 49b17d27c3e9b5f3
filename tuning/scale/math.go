//go:build !fastmath

package scale

import "math"

// log2 computes log2(x) using standard library math.
func log2(x float64) float64 {
	return math.Log2(x)
}

// exp2 computes 2^x using standard library math.
func exp2(x float64) float64 {
	return math.Exp2(x)
}
