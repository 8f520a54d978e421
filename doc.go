// Package rootfind is a small numerical-methods library for locating roots
// of single-variable functions.
//
// 🚀 What is inside?
//
//	roots/    : Bisection, Fixed-Point Iteration, Newton–Raphson (analytic,
//	            finite-difference and dual-number derivatives), Secant,
//	            False Position and Muller's method (complex arithmetic)
//	examples/ : a runnable driver comparing all methods on x³ − 2x − 5
//
// ✨ Why rootfind?
//
//   - Every method is a pure, bounded loop: same inputs, bit-identical output.
//   - Failures are ordinary errors (sign precondition, zero derivative,
//     division by zero, iteration cap), classified by roots.StatusOf.
//   - Functional options for tolerance, iteration cap, cancellation and
//     per-iteration tracing.
//
//	go get github.com/katalvlaran/rootfind/roots
package rootfind
