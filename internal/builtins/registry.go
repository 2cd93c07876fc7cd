// Package builtins implements spec.md §4.5's built-in function registry:
// trigonometric, string, and I/O-adjacent functions. The engine consults
// this registry before the symbol table when resolving a call, so a name
// registered here always resolves to the built-in, never to an array of
// the same name. Modeled on
// internal/interp/builtins/registry.go's Registry/FunctionInfo pair in the
// teacher codebase — case-insensitive lookup keyed by dialect folding —
// and its per-function-file layout (math_basic.go, strings.go, ...).
package builtins

import (
	"fmt"
	"sort"

	"github.com/cocode/gobasic/internal/dialect"
	"github.com/cocode/gobasic/internal/runtime"
)

// Context is the interface a built-in needs from its caller: access to
// the current PRINT output column (for TAB/SPC) and the shared random
// generator state (for RND's spec.md §4.5 x>0/x=0/x<0 semantics). The
// execution engine implements this directly, the way the teacher's
// Context interface is implemented by its Evaluator
// (internal/interp/builtins/context.go).
type Context interface {
	// Column returns the current PRINT output column (0-based).
	Column() int

	// NextRandom implements RND(x) per spec.md §4.5 and SPEC_FULL.md §4:
	// x>0 draws a new uniform [0,1) sample, x=0 returns the last sample
	// drawn (or, if none has been drawn yet, the first sample of the
	// startup-seeded generator), x<0
	// reseeds the generator (using x as the seed) and returns the first
	// sample from the reseeded stream.
	NextRandom(x float64) float64
}

// Func is the signature every built-in implements.
type Func func(ctx Context, args []runtime.Value) (runtime.Value, error)

// Arity is the accepted argument-count range for a built-in.
type Arity struct{ Min, Max int }

type entry struct {
	name  string
	arity Arity
	fn    Func
}

// Registry is the case-insensitive built-in function table.
type Registry struct {
	d       *dialect.Dialect
	entries map[string]entry
}

// NewRegistry builds the registry with spec.md §4.5's required set
// already registered.
func NewRegistry(d *dialect.Dialect) *Registry {
	if d == nil {
		d = dialect.Default()
	}
	r := &Registry{d: d, entries: make(map[string]entry)}
	registerMath(r)
	registerStrings(r)
	registerIO(r)
	return r
}

func (r *Registry) register(name string, arity Arity, fn Func) {
	r.entries[r.d.Fold(name)] = entry{name: name, arity: arity, fn: fn}
}

// Lookup reports whether name is a registered built-in.
func (r *Registry) Lookup(name string) (Func, Arity, bool) {
	e, ok := r.entries[r.d.Fold(name)]
	return e.fn, e.arity, ok
}

// Call resolves and invokes a built-in by name, validating arity first
// (spec.md §4.5: "(arity range, impl)").
func (r *Registry) Call(ctx Context, name string, args []runtime.Value) (runtime.Value, error) {
	fn, arity, ok := r.Lookup(name)
	if !ok {
		return runtime.Value{}, fmt.Errorf("undefined function %s", name)
	}
	if len(args) < arity.Min || len(args) > arity.Max {
		return runtime.Value{}, fmt.Errorf("%s expects %s, got %d argument(s)", name, arityText(arity), len(args))
	}
	return fn(ctx, args)
}

func arityText(a Arity) string {
	if a.Min == a.Max {
		return fmt.Sprintf("%d argument(s)", a.Min)
	}
	return fmt.Sprintf("%d to %d arguments", a.Min, a.Max)
}

// Names returns every registered built-in name, sorted, for diagnostics.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}

func requireNumber(fnName string, args []runtime.Value, i int) (float64, error) {
	if args[i].IsString() {
		return 0, fmt.Errorf("%s expects a numeric argument %d, got a string", fnName, i+1)
	}
	return args[i].Num, nil
}

func requireString(fnName string, args []runtime.Value, i int) (string, error) {
	if !args[i].IsString() {
		return "", fmt.Errorf("%s expects a string argument %d, got a number", fnName, i+1)
	}
	return args[i].Str, nil
}
