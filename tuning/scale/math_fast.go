//go:build fastmath

package scale

import "github.com/meko-christian/algo-approx"

// ln2 is the natural logarithm of 2, used for log base conversions.
const ln2 = 0.693147180559945309417232121458

// log2 computes log2(x) using fast approximation.
// Uses the identity: log2(x) = ln(x) / ln(2)
func log2(x float64) float64 {
	return approx.FastLog(x) / ln2
}

// exp2 computes 2^x using fast approximation.
// Uses the identity: 2^x = e^(x * ln(2))
func exp2(x float64) float64 {
	return approx.FastExp(x * ln2)
}
