package roots

import (
	"context"
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// Defaults shared by every solver.
const (
	// DefaultTolerance is the convergence threshold eps.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations bounds the number of loop passes (Nmax).
	DefaultMaxIterations = 100
)

const (
	panicToleranceInvalid = "roots: WithTolerance: eps must be finite, non-negative"
	panicMaxIterInvalid   = "roots: WithMaxIterations: n must be >= 1"
	panicStepInvalid      = "roots: WithDerivativeStep: h must be finite, non-negative"
	panicFormulaInvalid   = "roots: WithDerivativeFormula: formula must be a first-derivative stencil"
)

// Option configures one solver call.
// Use with any entry point, e.g. Bisection(f, a, b, opts...).
type Option func(*Options)

// Options holds the effective configuration of one solver call.
type Options struct {
	// Tolerance is the convergence threshold eps (>= 0).
	Tolerance float64

	// MaxIterations is the iteration cap Nmax (>= 1).
	MaxIterations int

	// Ctx allows cooperative cancellation, checked once per pass;
	// defaults to context.Background().
	Ctx context.Context

	// OnIteration, if non-nil, is invoked after each computed iterate.
	// Returning an error aborts the call with that error.
	OnIteration func(Step) error

	// Verbose prints one progress line per pass to stdout.
	Verbose bool

	// DerivativeFormula and DerivativeStep configure the finite-difference
	// derivative used by NewtonNumeric. The formula is always a first
	// derivative; a zero step means the formula's own default.
	DerivativeFormula fd.Formula
	DerivativeStep    float64
}

// DefaultOptions returns Options with:
//   - Tolerance = DefaultTolerance (1e-6)
//   - MaxIterations = DefaultMaxIterations (100)
//   - Background context
//   - no hook, quiet
//   - central finite differences for NewtonNumeric
func DefaultOptions() Options {
	return Options{
		Tolerance:         DefaultTolerance,
		MaxIterations:     DefaultMaxIterations,
		Ctx:               context.Background(),
		OnIteration:       nil,
		Verbose:           false,
		DerivativeFormula: fd.Central,
		DerivativeStep:    0,
	}
}

// WithTolerance sets the convergence threshold eps.
// Panics if eps is NaN, infinite or negative. eps = 0 is legal and only
// accepts exact convergence.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.Tolerance = eps }
}

// WithMaxIterations sets the iteration cap. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithContext sets the context checked before each pass.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnIteration installs fn as a per-iteration hook.
func WithOnIteration(fn func(Step) error) Option {
	return func(o *Options) { o.OnIteration = fn }
}

// WithVerbose enables per-iteration printing.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

// WithDerivativeFormula selects the finite-difference stencil used by
// NewtonNumeric (fd.Central, fd.Forward, fd.Backward).
// Panics unless formula.Derivative == 1 and the stencil is non-empty.
func WithDerivativeFormula(formula fd.Formula) Option {
	if formula.Derivative != 1 || len(formula.Stencil) == 0 {
		panic(panicFormulaInvalid)
	}

	return func(o *Options) { o.DerivativeFormula = formula }
}

// WithDerivativeStep overrides the finite-difference step h used by
// NewtonNumeric. Panics if h is NaN, infinite or negative; 0 keeps the
// formula default.
func WithDerivativeStep(h float64) Option {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.DerivativeStep = h }
}

// gatherOptions resolves opts over DefaultOptions.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
