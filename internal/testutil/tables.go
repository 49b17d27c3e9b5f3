// Package testutil provides deterministic tuning tables shared by tests.
package testutil

import "github.com/cwbudde/algo-tuning/tuning/scale"

// NoteCount is the canonical tuning-table length.
const NoteCount = 128

// MiddleC is the frequency of MIDI note 60 in 12TET at A4 = 440 Hz, the
// anchor all non-12TET fixtures are built on.
const MiddleC = 261.62556530059874

// TwelveTET returns the 12-tone equal temperament table at A4 = 440 Hz.
// Scale size 12, period ratio 2.
func TwelveTET() []float64 {
	return scale.EqualDivision(12, 2).Frequencies(NoteCount, 69, 440)
}

// NineteenTET returns a 19-tone equal temperament table anchored at middle
// C. Scale size 19, period ratio 2.
func NineteenTET() []float64 {
	return scale.EqualDivision(19, 2).Frequencies(NoteCount, 60, MiddleC)
}

// BohlenPierce returns the equal-tempered Bohlen-Pierce table anchored at
// middle C. Scale size 13, period ratio 3 (the tritave).
func BohlenPierce() []float64 {
	return scale.EqualDivision(13, 3).Frequencies(NoteCount, 60, MiddleC)
}

// HarmonicPrimes returns a four-note scale of the first prime harmonics
// (2/1, 3/1, 5/1, 7/1) anchored at middle C. Scale size 4, period ratio 7,
// with table values spanning many orders of magnitude.
func HarmonicPrimes() []float64 {
	s := &scale.Scale{Degrees: []float64{2, 3, 5, 7}}
	return s.Frequencies(NoteCount, 60, MiddleC)
}

// Bagpipe returns a nine-note just bagpipe chanter scale with a period of
// 1190 cents, anchored at middle C. The scale is non-monotonic (its first
// degree sits below the tonic) and its period is not an integer frequency
// ratio, so no integer-ratio periodicity exists to infer.
func Bagpipe() []float64 {
	s := &scale.Scale{Degrees: []float64{
		7.0 / 8.0,
		1,
		9.0 / 8.0,
		5.0 / 4.0,
		4.0 / 3.0,
		3.0 / 2.0,
		5.0 / 3.0,
		7.0 / 4.0,
		scale.RatioFromCents(1190),
	}}

	return s.Frequencies(NoteCount, 60, MiddleC)
}
