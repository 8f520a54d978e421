package roots

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/num/dual"
)

// NewtonRaphson refines x0 with the Newton update x ← x − f(x)/df(x).
//
// Each pass evaluates f(x) and df(x). If df(x) is exactly zero the call
// stops before updating and returns ErrZeroDerivative; Iterations then
// counts only the updates already completed. Convergence is tested on the
// step size |x_new − x| < eps, not on the residual, and x_new is returned.
//
// No consistency check between f and df is performed.
//
// Errors:
//   - ErrNilFunc        if f or df is nil.
//   - ErrZeroDerivative if df(x) == 0 at some iterate.
//   - ErrMaxIterations  if the step never drops below eps.
//   - ctx.Err() or the OnIteration error when aborted.
func NewtonRaphson(f, df Func, x0 float64, opts ...Option) (Result, error) {
	if f == nil || df == nil {
		return Result{Method: MethodNewtonRaphson, Root: x0}, fmt.Errorf("%s: %w", MethodNewtonRaphson, ErrNilFunc)
	}
	eval := func(x float64) (float64, float64) {
		return f(x), df(x)
	}

	return newton(eval, x0, newTracer(MethodNewtonRaphson, opts))
}

// NewtonNumeric is NewtonRaphson with df replaced by a finite-difference
// approximation from gonum's diff/fd package. The stencil defaults to
// fd.Central and may be changed with WithDerivativeFormula and
// WithDerivativeStep. The already known f(x) is passed to fd as the origin
// value, so one-sided formulas cost a single extra evaluation.
//
// The zero-derivative check stays exact: a symmetric f sampled at its
// extremum yields ErrZeroDerivative.
func NewtonNumeric(f Func, x0 float64, opts ...Option) (Result, error) {
	if f == nil {
		return Result{Method: MethodNewtonRaphson, Root: x0}, fmt.Errorf("%s: %w", MethodNewtonRaphson, ErrNilFunc)
	}
	t := newTracer(MethodNewtonRaphson, opts)

	settings := fd.Settings{Formula: t.opts.DerivativeFormula, Step: t.opts.DerivativeStep, OriginKnown: true}
	eval := func(x float64) (float64, float64) {
		fx := f(x)
		s := settings
		s.OriginValue = fx

		return fx, fd.Derivative(f, x, &s)
	}

	return newton(eval, x0, t)
}

// NewtonDual is NewtonRaphson for functions written over gonum dual numbers:
// one evaluation at {Real: x, Emag: 1} yields f(x) in Real and f'(x) in Emag.
func NewtonDual(f DualFunc, x0 float64, opts ...Option) (Result, error) {
	if f == nil {
		return Result{Method: MethodNewtonRaphson, Root: x0}, fmt.Errorf("%s: %w", MethodNewtonRaphson, ErrNilFunc)
	}
	eval := func(x float64) (float64, float64) {
		v := f(dual.Number{Real: x, Emag: 1})

		return v.Real, v.Emag
	}

	return newton(eval, x0, newTracer(MethodNewtonRaphson, opts))
}

// newton runs the Newton loop over an evaluator returning (f(x), f'(x)).
func newton(eval func(x float64) (float64, float64), x0 float64, t tracer) (Result, error) {
	res := Result{Method: MethodNewtonRaphson, Root: x0}
	eps := t.opts.Tolerance

	x := x0
	for k := 1; k <= t.opts.MaxIterations; k++ {
		if err := t.begin(); err != nil {
			return res, err
		}
		fx, dfx := eval(x)
		if dfx == 0 {
			return res, fmt.Errorf("%s: f'(%g) = 0 after %d iterations: %w", t.method, x, k-1, ErrZeroDerivative)
		}

		xNew := x - fx/dfx
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
