package roots

import (
	"fmt"
	"math/cmplx"
)

// tracer carries the per-pass plumbing shared by all solvers:
// cancellation check, OnIteration hook and verbose printing.
type tracer struct {
	method Method
	opts   Options
}

func newTracer(m Method, opts []Option) tracer {
	return tracer{method: m, opts: gatherOptions(opts)}
}

// begin is called at the top of every pass; it reports a cancelled context.
func (t tracer) begin() error {
	return t.opts.Ctx.Err()
}

// record records a real iterate x with its (method-specific) companion value fx.
func (t tracer) record(iter int, x, fx float64) error {
	if t.opts.Verbose {
		fmt.Printf("%s: iter %d x=%.12g f=%.6g\n", t.method, iter, x, fx)
	}
	if t.opts.OnIteration == nil {
		return nil
	}

	return t.opts.OnIteration(Step{
		Method:    t.method,
		Iteration: iter,
		X:         x,
		FX:        fx,
		Z:         complex(x, 0),
		FZ:        complex(fx, 0),
	})
}

// recordComplex records a complex iterate z with f(z).
func (t tracer) recordComplex(iter int, z, fz complex128) error {
	if t.opts.Verbose {
		fmt.Printf("%s: iter %d z=%.12g |f|=%.6g\n", t.method, iter, z, cmplx.Abs(fz))
	}
	if t.opts.OnIteration == nil {
		return nil
	}

	return t.opts.OnIteration(Step{
		Method:    t.method,
		Iteration: iter,
		X:         real(z),
		FX:        real(fz),
		Z:         z,
		FZ:        fz,
	})
}

// maxIterErr wraps ErrMaxIterations with the method name and cap.
func (t tracer) maxIterErr() error {
	return fmt.Errorf("%s: %d iterations: %w", t.method, t.opts.MaxIterations, ErrMaxIterations)
}
