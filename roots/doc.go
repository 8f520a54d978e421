// Package roots implements classical root-finding iterations for functions
// of one variable: Bisection, Fixed-Point Iteration, Newton–Raphson, Secant,
// False Position (regula falsi) and Muller's method.
//
// 🚀 Picking a method
//
//	What you have                         Method
//	────────────────────────────────────  ─────────────────────────────
//	a sign-changing bracket [a, b]        Bisection, FalsePosition
//	a map g with g(x) = x at the root     FixedPoint
//	f, its derivative and one guess       NewtonRaphson
//	f and one guess                       NewtonNumeric, NewtonDual
//	f and two guesses                     Secant
//	f over complex numbers, three guesses Muller
//
// Every solver is a pure, synchronous loop bounded by MaxIterations. They
// share no state and never call one another; composing them is up to the
// caller.
//
// ✨ Stopping rules (kept deliberately different):
//   - Bisection:     |f(c)| < eps  OR  (b−a)/2 < eps
//   - FalsePosition: |f(c)| < eps
//   - FixedPoint:    |g(x) − x| < eps
//   - NewtonRaphson: |x_new − x| < eps
//   - Secant:        |f(x2)| < eps
//   - Muller:        |f(x)| < eps
//
// Zero denominators (f'(x), f1−f0, fb−fa, Muller's denominator) are
// detected with exact floating-point equality. Values that are merely tiny
// pass through and may produce large steps.
//
// ⚙️ Usage:
//
//	res, err := roots.NewtonRaphson(f, df, 1.5,
//	    roots.WithTolerance(1e-10),
//	    roots.WithMaxIterations(50),
//	)
//	switch roots.StatusOf(err) {
//	case roots.Converged:
//	    fmt.Println(res.Root, res.Iterations)
//	case roots.FailedDivision:
//	    // derivative vanished
//	}
//
// Options:
//
//   - WithTolerance(eps)        convergence threshold, default 1e-6.
//   - WithMaxIterations(n)      iteration cap, default 100.
//   - WithContext(ctx)          cooperative cancellation, checked once per pass.
//   - WithOnIteration(fn)       per-iterate hook; an error aborts the call.
//   - WithVerbose()             print one line per pass.
//   - WithDerivativeFormula(f)  NewtonNumeric stencil (fd.Central by default).
//   - WithDerivativeStep(h)     NewtonNumeric step.
//
// Errors:
//
//   - ErrNilFunc                a required handle is nil.
//   - ErrSignPrecondition       bracket without sign change.
//   - ErrZeroDerivative         f'(x) == 0 in Newton's method.
//   - ErrDivisionByZero         coincident values or points.
//   - ErrMaxIterations          cap reached without convergence.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnIteration.
//
// On failure the returned Result still carries the last iterate reached.
package roots
