package period

import "math"

const (
	// NoteCount is the number of canonical samples Infer reads.
	NoteCount = 128

	// MaxPeriod is the largest frequency ratio the search considers.
	MaxPeriod = 100

	// Tolerance is the absolute tolerance for frequency comparisons.
	Tolerance = 1e-6

	// MinBaseFrequency excludes very low frequencies from serving as
	// base points. Below it the absolute Tolerance is too loose relative
	// to rounding error; such entries may still be matched against.
	MinBaseFrequency = 10.0
)

// Result holds an inferred scale size and period ratio, or the not-found
// sentinel with both fields -1.
type Result struct {
	// ScaleSize is the number of table steps per repeat, in [1, 128].
	ScaleSize int

	// Period is the integer frequency ratio after one full repeat,
	// in [2, MaxPeriod].
	Period int
}

// NotFound is returned when no integer-ratio periodicity is present.
// It is a valid outcome, not an error.
var NotFound = Result{ScaleSize: -1, Period: -1}

// Found reports whether r holds an inferred periodicity.
func (r Result) Found() bool {
	return r.ScaleSize > 0
}

// Infer searches the first NoteCount entries of freqs for the smallest
// integer period ratio at which the tuning repeats.
//
// Period ratios are tried in ascending order from 2 to MaxPeriod; within a
// ratio, base/match index pairs in ascending order. A match is accepted
// only when two consecutive entries both scale by the candidate ratio,
// which rejects single-point coincidences in irregular tunings. The first
// accepted match wins.
//
// Infer is a pure function of its input. It panics when freqs holds fewer
// than NoteCount entries; that is a caller contract violation.
func Infer(freqs []float64) Result {
	if len(freqs) < NoteCount {
		panic("period: need at least 128 frequencies")
	}

	for p := 2; p <= MaxPeriod; p++ {
		ratio := float64(p)

		for i := 0; i <= NoteCount-2; i++ {
			if freqs[i] <= MinBaseFrequency {
				continue
			}

			target := ratio * freqs[i]
			for j := i; j <= NoteCount-2; j++ {
				if math.Abs(freqs[j]-target) < Tolerance &&
					math.Abs(freqs[j+1]-ratio*freqs[i+1]) < Tolerance {
					return Result{ScaleSize: j - i, Period: p}
				}
			}
		}
	}

	return NotFound
}
