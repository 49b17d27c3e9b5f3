// Command tuneinfo prints the inferred repeat structure of a tuning and a
// preview of its extended frequency table.
//
// Usage:
//
//	tuneinfo [flags]
//
// Without flags it analyzes the standard 12TET tuning. A Scala file or an
// equal division can be supplied instead:
//
//	tuneinfo -scl bagpipe.scl
//	tuneinfo -edo 19
//	tuneinfo -edo 13 -period 3
//	tuneinfo -edo 12 -length 512 -preview 24
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-tuning/tuning/analyze"
	"github.com/cwbudde/algo-tuning/tuning/mts"
	"github.com/cwbudde/algo-tuning/tuning/period"
	"github.com/cwbudde/algo-tuning/tuning/scale"
	"github.com/cwbudde/algo-tuning/tuning/table"
)

func main() {
	var (
		sclPath   = flag.String("scl", "", "Scala .scl file to analyze")
		edo       = flag.Int("edo", 0, "equal division of the period into this many steps")
		periodArg = flag.Float64("period", 2, "period ratio for -edo (2 = octave, 3 = tritave)")
		baseFreq  = flag.Float64("base", 261.62556530059874, "frequency of note 60 for -scl and -edo tunings")
		length    = flag.Int("length", 256, "extended table length (>= 128)")
		preview   = flag.Int("preview", 12, "extended entries to print")
	)

	flag.Parse()

	if *length < mts.NoteCount {
		fmt.Fprintf(os.Stderr, "tuneinfo: length must be at least %d\n", mts.NoteCount)
		os.Exit(1)
	}

	src, name, err := selectSource(*sclPath, *edo, *periodArg, *baseFreq)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tuneinfo: %v\n", err)
		os.Exit(1)
	}

	canonical := mts.Sample(src)
	res := period.Infer(canonical)

	fmt.Printf("tuning: %s\n", name)

	if res.Found() {
		fmt.Printf("scale size: %d, period ratio: %d\n", res.ScaleSize, res.Period)
	} else {
		fmt.Println("no integer-ratio periodicity found")

		if hint := analyze.ScaleSizeHint(canonical, 32); hint > 0 {
			fmt.Printf("step pattern suggests a scale size of %d\n", hint)
		}
	}

	stats := analyze.Describe(analyze.Steps(canonical))
	fmt.Printf("steps: %d, mean %.2f cents, stddev %.2f, range %.2f..%.2f\n",
		stats.Count, stats.Mean, stats.StdDev, stats.Min, stats.Max)

	extended := table.Extend(canonical, *length)

	n := *preview
	if n > *length-mts.NoteCount {
		n = *length - mts.NoteCount
	}

	if n <= 0 {
		return
	}

	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "note\tfrequency (Hz)\t")

	for i := mts.NoteCount; i < mts.NoteCount+n; i++ {
		fmt.Fprintf(w, "%d\t%.6f\t\n", i, extended[i])
	}

	w.Flush()
}

// selectSource builds the tuning source for the given flags. Precedence:
// -scl, then -edo, then the built-in standard tuning.
func selectSource(sclPath string, edo int, periodRatio, baseFreq float64) (mts.Source, string, error) {
	switch {
	case sclPath != "":
		f, err := os.Open(sclPath)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()

		s, err := scale.ParseSCL(f)
		if err != nil {
			return nil, "", err
		}

		name := s.Description
		if name == "" {
			name = sclPath
		}

		return mts.Fixed(s.Frequencies(mts.NoteCount, 60, baseFreq)), name, nil

	case edo > 0:
		s := scale.EqualDivision(edo, periodRatio)
		if s == nil {
			return nil, "", fmt.Errorf("invalid equal division %d of period %g", edo, periodRatio)
		}

		name := fmt.Sprintf("%d equal divisions of %g", edo, periodRatio)

		return mts.Fixed(s.Frequencies(mts.NoteCount, 60, baseFreq)), name, nil

	default:
		return mts.Standard, "standard 12TET (A4 = 440 Hz)", nil
	}
}
