package roots

import (
	"fmt"
	"math"
)

// Bisection finds a root of f inside the bracket [a, b] by repeated halving.
//
// Algorithm:
//  1. fa = f(a), fb = f(b). If fa·fb > 0 the bracket has no sign change:
//     return ErrSignPrecondition without iterating.
//  2. For k = 1..MaxIterations:
//     c = (a+b)/2, fc = f(c)
//     stop with c when |fc| < eps OR (b−a)/2 < eps
//     if fa·fc < 0 then b = c else a, fa = c, fc
//  3. Return ErrMaxIterations.
//
// The bracket width halves exactly on every pass. A product fa·fc that is
// exactly zero takes the else branch and replaces a. Endpoint order is not
// enforced; with a > b the half-width test is satisfied on the first pass.
//
// Errors:
//   - ErrNilFunc          if f is nil.
//   - ErrSignPrecondition if f(a) and f(b) share a strict sign.
//   - ErrMaxIterations    if no pass satisfies the stopping rule.
//   - ctx.Err() or the OnIteration error when aborted.
//
// Complexity: O(MaxIterations) evaluations of f, O(1) memory.
func Bisection(f Func, a, b float64, opts ...Option) (Result, error) {
	res := Result{Method: MethodBisection}
	if f == nil {
		return res, fmt.Errorf("%s: %w", MethodBisection, ErrNilFunc)
	}
	t := newTracer(MethodBisection, opts)
	eps := t.opts.Tolerance

	fa, fb := f(a), f(b)
	if fa*fb > 0 {
		return res, fmt.Errorf("%s: f(%g)=%g, f(%g)=%g: %w", MethodBisection, a, fa, b, fb, ErrSignPrecondition)
	}

	var c, fc float64
	for k := 1; k <= t.opts.MaxIterations; k++ {
		if err := t.begin(); err != nil {
			return res, err
		}
		c = (a + b) / 2
		fc = f(c)
		res.Root, res.Residual, res.Iterations = c, fc, k
		if err := t.record(k, c, fc); err != nil {
			return res, err
		}

		if math.Abs(fc) < eps || (b-a)/2 < eps {
			return res, nil
		}

		if fa*fc < 0 {
			b = c
		} else {
			a, fa = c, fc
		}
	}

	return res, t.maxIterErr()
}
