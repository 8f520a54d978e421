package roots

import (
	"fmt"
	"math"
)

// Secant approximates Newton's method with the slope through the last two
// iterates, so no derivative is needed:
//
//	x2 = x1 − f1·(x1 − x0)/(f1 − f0)
//
// Convergence is tested on the residual |f(x2)| < eps, unlike NewtonRaphson
// which tests the step. When f1 − f0 is exactly zero the call returns
// ErrDivisionByZero. The window then slides (x0,f0) ← (x1,f1),
// (x1,f1) ← (x2,f(x2)); f(x2) is evaluated once per pass.
func Secant(f Func, x0, x1 float64, opts ...Option) (Result, error) {
	res := Result{Method: MethodSecant, Root: x1}
	if f == nil {
		return res, fmt.Errorf("%s: %w", MethodSecant, ErrNilFunc)
	}
	t := newTracer(MethodSecant, opts)
	eps := t.opts.Tolerance

	f0, f1 := f(x0), f(x1)
	res.Residual = f1
	for k := 1; k <= t.opts.MaxIterations; k++ {
		if err := t.begin(); err != nil {
			return res, err
		}
		if f1-f0 == 0 {
			return res, fmt.Errorf("%s: f(%g) == f(%g): %w", MethodSecant, x0, x1, ErrDivisionByZero)
		}

		x2 := x1 - f1*(x1-x0)/(f1-f0)
		f2 := f(x2)
		res.Root, res.Residual, res.Iterations = x2, f2, k
		if err := t.record(k, x2, f2); err != nil {
			return res, err
		}

		if math.Abs(f2) < eps {
			return res, nil
		}

		x0, f0 = x1, f1
		x1, f1 = x2, f2
	}

	return res, t.maxIterErr()
}
