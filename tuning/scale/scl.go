package scale

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Errors returned by ParseSCL.
var (
	ErrEmptyScale  = errors.New("scale: scale has no degrees")
	ErrDegreeCount = errors.New("scale: degree count mismatch")
)

// ParseSCL reads a scale in the Scala .scl text format.
//
// Lines beginning with "!" are comments. The first non-comment line is the
// description (possibly empty), the second the degree count, followed by
// one degree per line. A degree containing a "." is a value in cents; a
// degree of the form "a/b" is a frequency ratio; a bare integer n is the
// ratio n/1. Anything after the degree's first whitespace-separated token
// is ignored, as Scala does.
func ParseSCL(r io.Reader) (*Scale, error) {
	sc := bufio.NewScanner(r)

	lines := make([]string, 0, 64)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "!") {
			continue
		}

		lines = append(lines, line)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scale: reading scl: %w", err)
	}

	if len(lines) < 2 {
		return nil, ErrEmptyScale
	}

	description := strings.TrimSpace(lines[0])

	count, err := strconv.Atoi(strings.TrimSpace(lines[1]))
	if err != nil {
		return nil, fmt.Errorf("scale: invalid degree count %q: %w", strings.TrimSpace(lines[1]), err)
	}

	if count < 1 {
		return nil, ErrEmptyScale
	}

	if len(lines)-2 < count {
		return nil, fmt.Errorf("%w: header declares %d, file holds %d", ErrDegreeCount, count, len(lines)-2)
	}

	degrees := make([]float64, count)
	for i := range degrees {
		ratio, err := parseDegree(lines[2+i])
		if err != nil {
			return nil, fmt.Errorf("scale: degree %d: %w", i+1, err)
		}

		degrees[i] = ratio
	}

	return &Scale{Description: description, Degrees: degrees}, nil
}

// parseDegree converts one .scl pitch line into a frequency ratio.
func parseDegree(line string) (float64, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, errors.New("empty pitch line")
	}

	tok := fields[0]

	// A "." marks a cents value, regardless of what follows it.
	if strings.Contains(tok, ".") {
		cents, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid cents value %q: %w", tok, err)
		}

		return RatioFromCents(cents), nil
	}

	num, den := tok, "1"
	if idx := strings.IndexByte(tok, '/'); idx >= 0 {
		num, den = tok[:idx], tok[idx+1:]
	}

	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ratio %q: %w", tok, err)
	}

	d, err := strconv.ParseInt(den, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ratio %q: %w", tok, err)
	}

	if n <= 0 || d <= 0 {
		return 0, fmt.Errorf("ratio %q is not positive", tok)
	}

	return float64(n) / float64(d), nil
}
