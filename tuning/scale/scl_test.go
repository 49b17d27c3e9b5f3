package scale

import (
	"errors"
	"math"
	"strings"
	"testing"
)

const bagpipeSCL = `! bagpipe.scl
!
Highland bagpipe chanter, 1190-cent period
 9
!
 7/8
 1/1
 9/8
 5/4
 4/3
 3/2
 5/3
 7/4
 1190.0
`

func TestParseSCLBagpipe(t *testing.T) {
	s, err := ParseSCL(strings.NewReader(bagpipeSCL))
	if err != nil {
		t.Fatalf("ParseSCL: %v", err)
	}

	if s.Description != "Highland bagpipe chanter, 1190-cent period" {
		t.Fatalf("description = %q", s.Description)
	}

	if s.Size() != 9 {
		t.Fatalf("Size = %d, want 9", s.Size())
	}

	if s.Degrees[0] != 7.0/8.0 {
		t.Fatalf("degree 1 = %v, want 7/8", s.Degrees[0])
	}

	if s.Degrees[1] != 1 {
		t.Fatalf("degree 2 = %v, want 1", s.Degrees[1])
	}

	want := RatioFromCents(1190)
	if math.Abs(s.PeriodRatio()-want) > 1e-15 {
		t.Fatalf("period ratio = %v, want %v", s.PeriodRatio(), want)
	}
}

func TestParseSCLCentsAndBareIntegers(t *testing.T) {
	const text = `test scale
3
100.0 ignored trailing comment
2
3/2
`

	s, err := ParseSCL(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ParseSCL: %v", err)
	}

	if math.Abs(s.Degrees[0]-RatioFromCents(100)) > 1e-15 {
		t.Fatalf("cents degree = %v", s.Degrees[0])
	}

	if s.Degrees[1] != 2 {
		t.Fatalf("bare integer degree = %v, want 2", s.Degrees[1])
	}

	if s.Degrees[2] != 1.5 {
		t.Fatalf("ratio degree = %v, want 1.5", s.Degrees[2])
	}
}

func TestParseSCLErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"empty input", "", ErrEmptyScale},
		{"zero degrees", "desc\n0\n", ErrEmptyScale},
		{"missing degrees", "desc\n3\n2\n", ErrDegreeCount},
	}

	for _, c := range cases {
		_, err := ParseSCL(strings.NewReader(c.text))
		if !errors.Is(err, c.want) {
			t.Errorf("%s: err = %v, want %v", c.name, err, c.want)
		}
	}

	malformed := []string{
		"desc\nnope\n",        // unparsable count
		"desc\n1\nx/2\n",      // unparsable ratio
		"desc\n1\n-3/2\n",     // negative ratio
		"desc\n1\n0\n",        // zero ratio
		"desc\n1\n\t \n2/1\n", // blank pitch line
	}

	for _, text := range malformed {
		if _, err := ParseSCL(strings.NewReader(text)); err == nil {
			t.Errorf("expected error for %q", text)
		}
	}
}

func TestParseSCLRealizesFixtureAnchors(t *testing.T) {
	s, err := ParseSCL(strings.NewReader(bagpipeSCL))
	if err != nil {
		t.Fatalf("ParseSCL: %v", err)
	}

	freqs := s.Frequencies(128, 60, 261.62556530059874)

	// Degree 7/8 sits below the tonic; one period up lands at
	// tonic * 2^(1190/1200).
	if math.Abs(freqs[61]-261.62556530059874*7/8) > 1e-9 {
		t.Fatalf("note 61 = %v", freqs[61])
	}

	if math.Abs(freqs[69]-520.2374258519455) > 1e-6 {
		t.Fatalf("note 69 = %v, want 520.2374258519455", freqs[69])
	}
}
