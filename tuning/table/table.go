package table

import (
	"github.com/cwbudde/algo-tuning/tuning/mts"
	"github.com/cwbudde/algo-tuning/tuning/period"
	"github.com/cwbudde/algo-vecmath"
)

// NoteCount is the number of canonical entries at the head of every table.
const NoteCount = mts.NoteCount

// Extend returns a table of the requested length whose first NoteCount
// entries are copied from freqs unchanged and whose remainder continues
// the tuning.
//
// When period.Infer finds a repeat structure (scale size s, period ratio
// p), entry k beyond the canonical range is p times entry k-s. The
// recurrence reads through previously extended entries, so any length
// works, not just one period past the canonical range. When no structure
// is found, the remainder holds the last canonical frequency; an
// indeterminate tuning is a valid outcome, not an error.
//
// Extend panics when length or len(freqs) is below NoteCount; both are
// caller contract violations.
func Extend(freqs []float64, length int) []float64 {
	if length < NoteCount {
		panic("table: length must be at least 128")
	}

	if len(freqs) < NoteCount {
		panic("table: need at least 128 canonical frequencies")
	}

	out := make([]float64, length)
	copy(out, freqs[:NoteCount])

	res := period.Infer(out)
	if !res.Found() {
		for k := NoteCount; k < length; k++ {
			out[k] = out[NoteCount-1]
		}

		return out
	}

	if res.ScaleSize > NoteCount {
		// Cannot occur given the search bounds in period.Infer.
		panic("table: inferred scale size exceeds 128")
	}

	s := res.ScaleSize
	ratio := float64(res.Period)

	// Whole scale-size blocks at a time: the source block ends where the
	// destination block starts, so each block only reads entries that are
	// already final.
	for k := NoteCount; k < length; k += s {
		n := s
		if k+n > length {
			n = length - k
		}

		vecmath.ScaleBlock(out[k:k+n], out[k-s:k-s+n], ratio)
	}

	return out
}

// Frequencies samples the canonical 128 notes from src and extends them to
// the requested length. This is the single entry point external callers
// use; the precondition length >= 128 applies as in Extend.
func Frequencies(src mts.Source, length int) []float64 {
	return Extend(mts.Sample(src), length)
}
