package scale

import "math"

// Scale is an ordered list of degree ratios above the tonic. The tonic
// itself (ratio 1) is implicit; the last degree is the period ratio at
// which the scale repeats, following Scala conventions.
type Scale struct {
	Description string
	Degrees     []float64
}

// Size returns the number of steps per period.
func (s *Scale) Size() int {
	return len(s.Degrees)
}

// PeriodRatio returns the frequency ratio after one full period, or 1 for
// a degenerate scale without degrees.
func (s *Scale) PeriodRatio() float64 {
	if len(s.Degrees) == 0 {
		return 1
	}

	return s.Degrees[len(s.Degrees)-1]
}

// EqualDivision returns the scale dividing periodRatio into the given
// number of equal steps: EqualDivision(12, 2) is 12-tone equal
// temperament, EqualDivision(13, 3) is the equal-tempered Bohlen-Pierce
// scale. It returns nil when divisions < 1 or periodRatio <= 1.
func EqualDivision(divisions int, periodRatio float64) *Scale {
	if divisions < 1 || periodRatio <= 1 {
		return nil
	}

	degrees := make([]float64, divisions)
	for i := range degrees {
		degrees[i] = math.Pow(periodRatio, float64(i+1)/float64(divisions))
	}

	return &Scale{Degrees: degrees}
}

// Frequencies realizes the scale into a table of n frequencies using the
// standard keyboard mapping: note baseNote sounds baseFreq, and note
// baseNote+k maps to degree k mod Size scaled by PeriodRatio once per full
// period above or below the base. A scale without degrees realizes to a
// constant table at baseFreq.
func (s *Scale) Frequencies(n, baseNote int, baseFreq float64) []float64 {
	freqs := make([]float64, n)

	size := s.Size()
	if size == 0 {
		for i := range freqs {
			freqs[i] = baseFreq
		}

		return freqs
	}

	p := s.PeriodRatio()
	for note := range freqs {
		k := note - baseNote

		oct := k / size
		deg := k - oct*size
		if deg < 0 {
			deg += size
			oct--
		}

		ratio := 1.0
		if deg > 0 {
			ratio = s.Degrees[deg-1]
		}

		freqs[note] = baseFreq * math.Pow(p, float64(oct)) * ratio
	}

	return freqs
}

// CentsFromRatio returns the size in cents of the interval with the given
// frequency ratio. Ratios at or below zero yield NaN.
func CentsFromRatio(r float64) float64 {
	if r <= 0 {
		return math.NaN()
	}

	return 1200 * log2(r)
}

// RatioFromCents returns the frequency ratio of an interval given in cents.
func RatioFromCents(c float64) float64 {
	return exp2(c / 1200)
}

// NoteFrequency returns the 12-tone equal temperament frequency of a MIDI
// note number at the A4 = 440 Hz reference.
func NoteFrequency(note int) float64 {
	return 440 * exp2(float64(note-69)/12)
}
