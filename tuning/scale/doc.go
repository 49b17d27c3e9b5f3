// Package scale builds 128-note tuning tables from musical scales.
//
// A [Scale] is an ordered list of degree ratios above a tonic, the last
// degree being the period at which the scale repeats. Scales come from
// three places: [ParseSCL] reads the Scala .scl text format,
// [EqualDivision] constructs equal divisions of an arbitrary period
// (12TET, 19TET, Bohlen-Pierce), and literal degree lists. [Scale.Frequencies]
// realizes a scale into a frequency table using the standard keyboard
// mapping, one entry per note number.
//
// The cents helpers use the standard library by default; building with the
// fastmath tag swaps in polynomial approximations.
package scale
