package roots

import (
	"errors"

	"gonum.org/v1/gonum/num/dual"
)

var (
	// ErrNilFunc is returned when a required function handle is nil.
	ErrNilFunc = errors.New("roots: function handle is nil")

	// ErrSignPrecondition indicates that f(a) and f(b) do not straddle a sign change.
	ErrSignPrecondition = errors.New("roots: f(a) and f(b) must have opposite signs")

	// ErrZeroDerivative indicates that the derivative evaluated to exactly zero.
	ErrZeroDerivative = errors.New("roots: derivative is zero")

	// ErrDivisionByZero indicates an exactly vanishing denominator
	// (coincident function values, coincident points, or a zero Muller denominator).
	ErrDivisionByZero = errors.New("roots: division by zero")

	// ErrMaxIterations indicates that the iteration cap was reached
	// without satisfying the convergence predicate.
	ErrMaxIterations = errors.New("roots: failed to converge")
)

// Func is a real-valued function of one real variable.
type Func func(x float64) float64

// ComplexFunc is a complex-valued function of one complex variable.
type ComplexFunc func(z complex128) complex128

// DualFunc is a real function written over dual numbers, so that a single
// evaluation at {Real: x, Emag: 1} yields both f(x) and f'(x).
type DualFunc func(x dual.Number) dual.Number

// Method identifies a root-finding algorithm.
type Method int

const (
	MethodBisection Method = iota
	MethodFixedPoint
	MethodNewtonRaphson
	MethodSecant
	MethodFalsePosition
	MethodMuller
)

var methodNames = [...]string{
	MethodBisection:     "Bisection",
	MethodFixedPoint:    "FixedPoint",
	MethodNewtonRaphson: "NewtonRaphson",
	MethodSecant:        "Secant",
	MethodFalsePosition: "FalsePosition",
	MethodMuller:        "Muller",
}

// String returns the method name.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return "Method(?)"
	}

	return methodNames[m]
}

// Status is the terminal state of one solver call.
//
//	ITERATING → Converged
//	          → FailedPrecondition   (ErrSignPrecondition)
//	          → FailedDivision       (ErrZeroDerivative, ErrDivisionByZero)
//	          → FailedMaxIterations  (ErrMaxIterations)
//	          → Aborted              (context cancellation or OnIteration error)
//
// FailedDivision covers both ErrZeroDerivative and ErrDivisionByZero;
// use errors.Is on the returned error to tell them apart.
type Status int

const (
	Converged Status = iota
	FailedPrecondition
	FailedDivision
	FailedMaxIterations
	Aborted
)

// String returns a short lower-case label for s.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case FailedPrecondition:
		return "failed: precondition"
	case FailedDivision:
		return "failed: division by zero"
	case FailedMaxIterations:
		return "failed: max iterations"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// StatusOf classifies an error returned by any solver in this package.
// A nil error means Converged. ErrNilFunc counts as a precondition failure;
// context errors and errors returned by the OnIteration hook are Aborted.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return Converged
	case errors.Is(err, ErrSignPrecondition), errors.Is(err, ErrNilFunc):
		return FailedPrecondition
	case errors.Is(err, ErrZeroDerivative), errors.Is(err, ErrDivisionByZero):
		return FailedDivision
	case errors.Is(err, ErrMaxIterations):
		return FailedMaxIterations
	default:
		return Aborted
	}
}

// Result is the outcome of a real-valued solver.
//
// On success Root holds the approximation and Iterations counts the
// computed iterates (1-based). Residual is the quantity the convergence
// test compared against the tolerance: f(Root) for Bisection, Secant and
// FalsePosition, the last step Root - x for FixedPoint and NewtonRaphson.
// On failure the struct carries the last iterate reached; only the error
// is authoritative.
type Result struct {
	Root       float64
	Residual   float64
	Iterations int
	Method     Method
}

// ComplexResult is the outcome of Muller's method.
type ComplexResult struct {
	Root       complex128
	Residual   complex128
	Iterations int
}

// Step is one trace record handed to the OnIteration hook.
// Real methods fill X and FX; Muller fills Z and FZ and mirrors their
// real parts into X and FX.
type Step struct {
	Method    Method
	Iteration int
	X, FX     float64
	Z, FZ     complex128
}
