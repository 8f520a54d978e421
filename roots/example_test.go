package roots_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rootfind/roots"
	"gonum.org/v1/gonum/num/dual"
)

// ExampleBisection brackets the real root of x³ − 2x − 5 in [2, 3].
func ExampleBisection() {
	f := func(x float64) float64 { return x*x*x - 2*x - 5 }

	res, err := roots.Bisection(f, 2, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("root=%.4f\n", res.Root)
	// Output:
	// root=2.0946
}

// ExampleBisection_precondition shows the failure for a bracket without a
// sign change.
func ExampleBisection_precondition() {
	_, err := roots.Bisection(func(x float64) float64 { return x*x + 1 }, 0, 1)
	fmt.Println(roots.StatusOf(err))
	fmt.Println(err)
	// Output:
	// failed: precondition
	// Bisection: f(0)=1, f(1)=2: roots: f(a) and f(b) must have opposite signs
}

// ExampleBisection_verbose prints one line per pass.
func ExampleBisection_verbose() {
	_, _ = roots.Bisection(func(x float64) float64 { return x - 0.5 }, 0, 2, roots.WithVerbose())
	// Output:
	// Bisection: iter 1 x=1 f=0.5
	// Bisection: iter 2 x=0.5 f=0
}

// ExampleFixedPoint iterates x ← cos(x).
func ExampleFixedPoint() {
	res, _ := roots.FixedPoint(math.Cos, 0.5)
	fmt.Printf("x=%.4f\n", res.Root)
	// Output:
	// x=0.7391
}

// ExampleNewtonRaphson computes √2.
func ExampleNewtonRaphson() {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }

	res, _ := roots.NewtonRaphson(f, df, 1.5)
	fmt.Printf("root=%.8f iterations=%d\n", res.Root, res.Iterations)
	// Output:
	// root=1.41421356 iterations=4
}

// ExampleNewtonDual needs no hand-written derivative.
func ExampleNewtonDual() {
	f := func(x dual.Number) dual.Number {
		return dual.Sub(dual.Exp(x), dual.Number{Real: 2})
	}

	res, _ := roots.NewtonDual(f, 1)
	fmt.Printf("ln 2 ≈ %.6f\n", res.Root)
	// Output:
	// ln 2 ≈ 0.693147
}

// ExampleSecant approximates √2 from two guesses.
func ExampleSecant() {
	res, _ := roots.Secant(func(x float64) float64 { return x*x - 2 }, 1, 2)
	fmt.Printf("root=%.5f\n", res.Root)
	// Output:
	// root=1.41421
}

// ExampleFalsePosition splits the bracket along the chord.
func ExampleFalsePosition() {
	res, _ := roots.FalsePosition(func(x float64) float64 { return x*x*x - 2*x - 5 }, 2, 3)
	fmt.Printf("root=%.4f\n", res.Root)
	// Output:
	// root=2.0946
}

// ExampleMuller reaches a complex root of x² + 1 from real starting points.
func ExampleMuller() {
	res, _ := roots.Muller(func(z complex128) complex128 { return z*z + 1 }, 0, 0.5, 1)
	fmt.Printf("imag=%.6f iterations=%d\n", imag(res.Root), res.Iterations)
	// Output:
	// imag=-1.000000 iterations=1
}
