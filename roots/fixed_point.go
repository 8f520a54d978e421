package roots

import (
	"fmt"
	"math"
)

// FixedPoint iterates x ← g(x) from x0 until two successive iterates differ
// by less than the tolerance, and returns the newer one.
//
// The caller chooses g so that g(x) = x exactly at the wanted root.
// There is no divergence detection: a map that is not contractive near
// its fixed point runs for exactly MaxIterations evaluations of g and
// returns ErrMaxIterations.
func FixedPoint(g Func, x0 float64, opts ...Option) (Result, error) {
	res := Result{Method: MethodFixedPoint, Root: x0}
	if g == nil {
		return res, fmt.Errorf("%s: %w", MethodFixedPoint, ErrNilFunc)
	}
	t := newTracer(MethodFixedPoint, opts)
	eps := t.opts.Tolerance

	x := x0
	for k := 1; k <= t.opts.MaxIterations; k++ {
		if err := t.begin(); err != nil {
			return res, err
		}
		xNew := g(x)
		step := xNew - x
		res.Root, res.Residual, res.Iterations = xNew, step, k
		if err := t.record(k, xNew, step); err != nil {
			return res, err
		}

		if math.Abs(step) < eps {
			return res, nil
		}
		x = xNew
	}

	return res, t.maxIterErr()
}
