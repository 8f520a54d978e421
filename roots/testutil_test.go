package roots_test

import (
	"errors"
	"math"

	"github.com/katalvlaran/rootfind/roots"
)

// errStop is returned by hooks that abort a solver on purpose.
var errStop = errors.New("stop requested")

// cubic is the textbook f(x) = x³ − 2x − 5 with a single real root near 2.0946.
func cubic(x float64) float64 { return x*x*x - 2*x - 5 }

func cubicPrime(x float64) float64 { return 3*x*x - 2 }

const cubicRoot = 2.0945514815423265

func sqrt2Func(x float64) float64 { return x*x - 2 }

// counting wraps f and reports how many times it was evaluated.
func counting(f roots.Func) (roots.Func, *int) {
	n := new(int)

	return func(x float64) float64 {
		*n++

		return f(x)
	}, n
}

// stopAt returns a hook that aborts with errStop once iteration k is reached.
func stopAt(k int) func(roots.Step) error {
	return func(s roots.Step) error {
		if s.Iteration >= k {
			return errStop
		}

		return nil
	}
}

// sameBits reports whether a and b are bit-identical.
func sameBits(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}
