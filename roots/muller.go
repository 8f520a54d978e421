package roots

import (
	"fmt"
	"math/cmplx"
)

// Muller fits a parabola through the last three iterates and steps to its
// nearer root. Arithmetic is complex throughout, so a negative discriminant
// simply yields a complex iterate and real starting points may converge to a
// complex root.
//
// Per pass, with y_i = f(x_i):
//
//	h0 = x1 − x0, h1 = x2 − x1
//	d0 = (y1 − y0)/h0, d1 = (y2 − y1)/h1
//	a  = (d1 − d0)/(h1 + h0), b = a·h1 + d1, c = y2
//	D  = √(b² − 4ac)                     (principal complex root)
//	den = b + D if |b + D| > |b − D| else b − D
//	x  = x2 − 2c/den
//
// Convergence is tested on |f(x)| < eps. The window slides
// (x0, x1, x2) ← (x1, x2, x) and function values are carried along with it.
//
// Errors:
//   - ErrNilFunc        if f is nil.
//   - ErrDivisionByZero if two window points coincide or den == 0 exactly.
//   - ErrMaxIterations  if the residual never drops below eps.
//   - ctx.Err() or the OnIteration error when aborted.
func Muller(f ComplexFunc, x0, x1, x2 complex128, opts ...Option) (ComplexResult, error) {
	res := ComplexResult{Root: x2}
	if f == nil {
		return res, fmt.Errorf("%s: %w", MethodMuller, ErrNilFunc)
	}
	t := newTracer(MethodMuller, opts)
	eps := t.opts.Tolerance

	y0, y1, y2 := f(x0), f(x1), f(x2)
	res.Residual = y2
	for k := 1; k <= t.opts.MaxIterations; k++ {
		if err := t.begin(); err != nil {
			return res, err
		}

		h0, h1 := x1-x0, x2-x1
		if h0 == 0 || h1 == 0 || h0+h1 == 0 {
			return res, fmt.Errorf("%s: coincident points %v, %v, %v: %w", MethodMuller, x0, x1, x2, ErrDivisionByZero)
		}
		d0 := (y1 - y0) / h0
		d1 := (y2 - y1) / h1

		a := (d1 - d0) / (h1 + h0)
		b := a*h1 + d1
		c := y2

		disc := cmplx.Sqrt(b*b - 4*a*c)
		den := b - disc
		if cmplx.Abs(b+disc) > cmplx.Abs(b-disc) {
			den = b + disc
		}
		if den == 0 {
			return res, fmt.Errorf("%s: zero denominator at x2=%v: %w", MethodMuller, x2, ErrDivisionByZero)
		}

		x := x2 - (2*c)/den
		y := f(x)
		res.Root, res.Residual, res.Iterations = x, y, k
		if err := t.recordComplex(k, x, y); err != nil {
			return res, err
		}

		if cmplx.Abs(y) < eps {
			return res, nil
		}

		x0, x1, x2 = x1, x2, x
		y0, y1, y2 = y1, y2, y
	}

	return res, t.maxIterErr()
}
