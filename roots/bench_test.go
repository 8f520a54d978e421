package roots_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rootfind/roots"
)

// benchmarkReal runs a real-valued solver b.N times and fails on unexpected errors.
func benchmarkReal(b *testing.B, solve func() (roots.Result, error)) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solve(); err != nil {
			b.Fatalf("solver failed: %v", err)
		}
	}
}

func BenchmarkBisection(b *testing.B) {
	benchmarkReal(b, func() (roots.Result, error) {
		return roots.Bisection(cubic, 2, 3, roots.WithTolerance(1e-12))
	})
}

func BenchmarkFixedPoint(b *testing.B) {
	benchmarkReal(b, func() (roots.Result, error) {
		return roots.FixedPoint(math.Cos, 0.5)
	})
}

func BenchmarkNewtonRaphson(b *testing.B) {
	benchmarkReal(b, func() (roots.Result, error) {
		return roots.NewtonRaphson(cubic, cubicPrime, 2, roots.WithTolerance(1e-12))
	})
}

func BenchmarkNewtonNumeric(b *testing.B) {
	benchmarkReal(b, func() (roots.Result, error) {
		return roots.NewtonNumeric(cubic, 2, roots.WithTolerance(1e-12))
	})
}

func BenchmarkSecant(b *testing.B) {
	benchmarkReal(b, func() (roots.Result, error) {
		return roots.Secant(cubic, 2, 3, roots.WithTolerance(1e-12))
	})
}

func BenchmarkFalsePosition(b *testing.B) {
	benchmarkReal(b, func() (roots.Result, error) {
		return roots.FalsePosition(cubic, 2, 3, roots.WithTolerance(1e-12))
	})
}

func BenchmarkMuller(b *testing.B) {
	f := func(z complex128) complex128 { return z*z*z - 2*z - 5 }
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := roots.Muller(f, 2, 2.5, 3, roots.WithTolerance(1e-12)); err != nil {
			b.Fatalf("Muller failed: %v", err)
		}
	}
}
