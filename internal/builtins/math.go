package builtins

import (
	"fmt"
	"math"

	"github.com/cocode/gobasic/internal/runtime"
)

// registerMath wires the trigonometric/numeric built-ins of spec.md §4.5.
// Grounded on internal/interp/builtins/math_basic.go's one-function-per-file
// registrations in the teacher codebase, collapsed into a single file since
// gobasic's math built-ins are all single-argument wrappers over the
// standard library's math package.
func registerMath(r *Registry) {
	unary := func(name string, f func(float64) float64) {
		r.register(name, Arity{1, 1}, func(_ Context, args []runtime.Value) (runtime.Value, error) {
			x, err := requireNumber(name, args, 0)
			if err != nil {
				return runtime.Value{}, err
			}
			return runtime.Number(f(x)), nil
		})
	}

	unary("ABS", math.Abs)
	unary("ATN", math.Atan)
	unary("COS", math.Cos)
	unary("EXP", math.Exp)
	unary("SIN", math.Sin)
	unary("TAN", math.Tan)

	r.register("LOG", Arity{1, 1}, func(_ Context, args []runtime.Value) (runtime.Value, error) {
		x, err := requireNumber("LOG", args, 0)
		if err != nil {
			return runtime.Value{}, err
		}
		if x <= 0 {
			return runtime.Value{}, fmt.Errorf("LOG of a non-positive number: %g", x)
		}
		return runtime.Number(math.Log(x)), nil
	})

	// INT truncates toward negative infinity (spec.md §8 boundary
	// behavior: "INT(-1.5) = -2"), i.e. floor, not truncation.
	unary("INT", math.Floor)

	unary("SGN", func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	})

	r.register("SQR", Arity{1, 1}, func(_ Context, args []runtime.Value) (runtime.Value, error) {
		x, err := requireNumber("SQR", args, 0)
		if err != nil {
			return runtime.Value{}, err
		}
		if x < 0 {
			return runtime.Value{}, fmt.Errorf("SQR of a negative number: %g", x)
		}
		return runtime.Number(math.Sqrt(x)), nil
	})

	// RND draws from the shared generator the engine owns (spec.md §4.5,
	// SPEC_FULL.md §4 open-question decision): x>0 new sample, x=0 last
	// sample, x<0 reseed.
	r.register("RND", Arity{1, 1}, func(ctx Context, args []runtime.Value) (runtime.Value, error) {
		x, err := requireNumber("RND", args, 0)
		if err != nil {
			return runtime.Value{}, err
		}
		return runtime.Number(ctx.NextRandom(x)), nil
	})
}
