package analyze

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// significance is the minimum normalized autocorrelation a lag must reach
// before ScaleSizeHint reports it.
const significance = 0.5

// Steps returns the interval between each pair of adjacent table entries
// in cents, so len(steps) = len(freqs)-1. Pairs involving a non-positive
// frequency produce NaN; sources are allowed to report such values and
// they carry no interval information.
func Steps(freqs []float64) []float64 {
	if len(freqs) < 2 {
		return nil
	}

	steps := make([]float64, len(freqs)-1)
	for i := range steps {
		lo, hi := freqs[i], freqs[i+1]
		if lo <= 0 || hi <= 0 {
			steps[i] = math.NaN()
			continue
		}

		steps[i] = 1200 * math.Log2(hi/lo)
	}

	return steps
}

// Stats summarizes a step sequence. All values are in cents.
type Stats struct {
	Count  int // steps that carried interval information
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Describe computes summary statistics over the valid (non-NaN) steps.
func Describe(steps []float64) Stats {
	valid := make([]float64, 0, len(steps))
	for _, s := range steps {
		if !math.IsNaN(s) {
			valid = append(valid, s)
		}
	}

	if len(valid) == 0 {
		return Stats{}
	}

	if len(valid) == 1 {
		return Stats{Count: 1, Mean: valid[0], Min: valid[0], Max: valid[0]}
	}

	mean, std := stat.MeanStdDev(valid, nil)

	return Stats{
		Count:  len(valid),
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(valid),
		Max:    floats.Max(valid),
	}
}

// ScaleSizeHint estimates the scale size of a tuning from the
// autocorrelation of its step pattern, considering lags from 2 up to
// maxLag. It returns the most self-similar lag, or -1 when no lag reaches
// the significance floor.
//
// The hint works where the exact search cannot: a scale repeating at a
// stretched or fractional-cents period still repeats its step pattern, so
// the lag shows up even though no integer frequency ratio exists. The
// converse limitation applies too. Equal temperaments have a flat step
// pattern with no lag information at all, and report -1; the exact search
// is the right tool for those.
func ScaleSizeHint(freqs []float64, maxLag int) int {
	steps := Steps(freqs)

	n := len(steps)
	if n < 4 || maxLag < 2 {
		return -1
	}

	if maxLag > n/2 {
		maxLag = n / 2
	}

	// Center on the mean of the valid steps; NaN steps contribute zero.
	var sum float64
	var valid int

	for _, s := range steps {
		if !math.IsNaN(s) {
			sum += s
			valid++
		}
	}

	if valid == 0 {
		return -1
	}

	mean := sum / float64(valid)

	fftSize := nextPowerOf2(2 * n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return -1
	}

	buf := make([]complex128, fftSize)
	for i, s := range steps {
		if math.IsNaN(s) {
			continue
		}

		buf[i] = complex(s-mean, 0)
	}

	spec := make([]complex128, fftSize)
	if err := plan.Forward(spec, buf); err != nil {
		return -1
	}

	// Power spectrum; its inverse transform is the autocorrelation.
	for i, c := range spec {
		re, im := real(c), imag(c)
		spec[i] = complex(re*re+im*im, 0)
	}

	if err := plan.Inverse(buf, spec); err != nil {
		return -1
	}

	r0 := real(buf[0])
	if r0 <= 1e-9 {
		// Flat step pattern (equal temperament or constant table).
		return -1
	}

	best := 0.0
	bestLag := -1

	for lag := 2; lag <= maxLag; lag++ {
		if v := real(buf[lag]) / r0; v > best {
			best = v
			bestLag = lag
		}
	}

	if best < significance {
		return -1
	}

	return bestLag
}

// nextPowerOf2 returns the smallest power of two >= n.
func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}
