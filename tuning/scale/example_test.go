package scale_test

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-tuning/tuning/scale"
)

func ExampleParseSCL() {
	const scl = `! pythagorean five
Five-note Pythagorean scale
5
9/8
81/64
3/2
27/16
2/1
`

	s, err := scale.ParseSCL(strings.NewReader(scl))
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s: %d notes per period, period ratio %.0f\n", s.Description, s.Size(), s.PeriodRatio())

	// Output:
	// Five-note Pythagorean scale: 5 notes per period, period ratio 2
}

func ExampleEqualDivision() {
	bp := scale.EqualDivision(13, 3)
	freqs := bp.Frequencies(128, 60, 261.62556530059874)

	fmt.Printf("one tritave above middle C: %.2f Hz\n", freqs[73])

	// Output:
	// one tritave above middle C: 784.88 Hz
}

func ExampleCentsFromRatio() {
	fmt.Printf("perfect fifth: %.2f cents\n", scale.CentsFromRatio(1.5))
	fmt.Printf("octave: %.0f cents\n", scale.CentsFromRatio(2))

	// Output:
	// perfect fifth: 701.96 cents
	// octave: 1200 cents
}
