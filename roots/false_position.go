package roots

import (
	"fmt"
	"math"
)

// FalsePosition (regula falsi) keeps a sign-changing bracket like Bisection
// but splits it at the root of the chord through (a, f(a)) and (b, f(b)):
//
//	c = (a·fb − b·fa)/(fb − fa)
//
// Preconditions and the endpoint update follow Bisection exactly
// (fa·fc < 0 moves b, anything else moves a). Convergence is tested on the
// residual only, |f(c)| < eps; there is no bracket-width fallback, so a
// one-sided bracket on a strongly convex f may run to MaxIterations.
//
// An exactly zero chord denominator fb − fa returns ErrDivisionByZero.
// With a valid bracket this only happens when f(a) = f(b) = 0.
//
// Errors:
//   - ErrNilFunc          if f is nil.
//   - ErrSignPrecondition if f(a) and f(b) share a strict sign.
//   - ErrDivisionByZero   if fb == fa at some pass.
//   - ErrMaxIterations    if the residual never drops below eps.
//   - ctx.Err() or the OnIteration error when aborted.
func FalsePosition(f Func, a, b float64, opts ...Option) (Result, error) {
	res := Result{Method: MethodFalsePosition}
	if f == nil {
		return res, fmt.Errorf("%s: %w", MethodFalsePosition, ErrNilFunc)
	}
	t := newTracer(MethodFalsePosition, opts)
	eps := t.opts.Tolerance

	fa, fb := f(a), f(b)
	if fa*fb > 0 {
		return res, fmt.Errorf("%s: f(%g)=%g, f(%g)=%g: %w", MethodFalsePosition, a, fa, b, fb, ErrSignPrecondition)
	}

	for k := 1; k <= t.opts.MaxIterations; k++ {
		if err := t.begin(); err != nil {
			return res, err
		}
		if fb-fa == 0 {
			return res, fmt.Errorf("%s: f(%g) == f(%g): %w", MethodFalsePosition, a, b, ErrDivisionByZero)
		}

		c := (a*fb - b*fa) / (fb - fa)
		fc := f(c)
		res.Root, res.Residual, res.Iterations = c, fc, k
		if err := t.record(k, c, fc); err != nil {
			return res, err
		}

		if math.Abs(fc) < eps {
			return res, nil
		}

		if fa*fc < 0 {
			b, fb = c, fc
		} else {
			a, fa = c, fc
		}
	}

	return res, t.maxIterErr()
}
