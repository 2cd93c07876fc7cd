package runtime

import (
	"fmt"

	"github.com/cocode/gobasic/internal/dialect"
)

// SymbolTable is spec.md §3's SymbolTable: separate sub-maps for scalars,
// arrays, and user functions, so that "A" and "A(I)" address distinct
// cells of the same base name (spec.md §3 invariant). Modeled on the
// shape of internal/interp/runtime/environment.go's Environment in the
// teacher codebase, narrowed to BASIC's single flat scope — DEF FN's
// parameter binding is a shallow overlay pushed directly onto the scalar
// map and popped afterward (spec.md §9 "User functions"), rather than a
// full Environment chain, since BASIC has no nested lexical scoping.
type SymbolTable struct {
	d       *dialect.Dialect
	scalars map[string]Value
	arrays  map[string]*Array
	funcs   map[string]*UserFunction
}

// NewSymbolTable creates an empty table.
func NewSymbolTable(d *dialect.Dialect) *SymbolTable {
	if d == nil {
		d = dialect.Default()
	}
	return &SymbolTable{
		d:       d,
		scalars: make(map[string]Value),
		arrays:  make(map[string]*Array),
		funcs:   make(map[string]*UserFunction),
	}
}

func (t *SymbolTable) key(name string) string { return t.d.Fold(name) }

// GetScalar reads a scalar, returning the type-appropriate zero value if
// it has never been assigned (spec.md §4.3 "creation-on-write").
func (t *SymbolTable) GetScalar(name string) Value {
	if v, ok := t.scalars[t.key(name)]; ok {
		return v
	}
	return ZeroFor(name)
}

// SetScalar assigns a scalar. The caller (the operator/engine layer) is
// responsible for enforcing spec.md §3's type invariant ("A string value
// is never stored in a numeric cell, and vice versa") before calling this.
func (t *SymbolTable) SetScalar(name string, v Value) {
	t.scalars[t.key(name)] = v
}

// DimArray allocates a new array. Re-dimensioning an already-dimensioned
// array is a runtime error (spec.md §4.3).
func (t *SymbolTable) DimArray(name string, shape []int) error {
	k := t.key(name)
	if _, ok := t.arrays[k]; ok {
		return fmt.Errorf("array %s is already dimensioned", name)
	}
	t.arrays[k] = NewArray(shape, IsStringName(name))
	return nil
}

// array returns the array for name, auto-allocating the spec.md §3
// default shape (a single dimension of size 11) on first subscripted use
// without an explicit DIM.
func (t *SymbolTable) array(name string) *Array {
	k := t.key(name)
	a, ok := t.arrays[k]
	if !ok {
		a = DefaultArray(IsStringName(name))
		t.arrays[k] = a
	}
	return a
}

// GetArrayCell reads one array element, auto-dimensioning on first use.
func (t *SymbolTable) GetArrayCell(name string, indices []int) (Value, error) {
	return t.array(name).Get(indices)
}

// SetArrayCell writes one array element, auto-dimensioning on first use.
func (t *SymbolTable) SetArrayCell(name string, indices []int, v Value) error {
	return t.array(name).Set(indices, v)
}

// DefineFunction registers a DEF FN function.
func (t *SymbolTable) DefineFunction(name string, fn *UserFunction) {
	t.funcs[t.key(name)] = fn
}

// LookupFunction returns the DEF FN function named name, if any.
func (t *SymbolTable) LookupFunction(name string) (*UserFunction, bool) {
	fn, ok := t.funcs[t.key(name)]
	return fn, ok
}

// Reset clears every scalar, array, and function, returning the table to
// its just-constructed state.
func (t *SymbolTable) Reset() {
	t.scalars = make(map[string]Value)
	t.arrays = make(map[string]*Array)
	t.funcs = make(map[string]*UserFunction)
}

// PushScope returns a snapshot of the current scalar bindings for the
// names in overlay, and installs overlay's values in their place. Used by
// DEF FN calls to bind parameters as scalars for the duration of the call
// (spec.md §9 "push/pop a shallow overlay map around evaluation").
func (t *SymbolTable) PushScope(overlay map[string]Value) map[string]Value {
	saved := make(map[string]Value, len(overlay))
	for name, v := range overlay {
		k := t.key(name)
		if prev, ok := t.scalars[k]; ok {
			saved[k] = prev
		} else {
			saved[k] = ZeroFor(name)
		}
		t.scalars[k] = v
	}
	return saved
}

// PopScope restores scalar bindings captured by a prior PushScope.
func (t *SymbolTable) PopScope(saved map[string]Value) {
	for k, v := range saved {
		t.scalars[k] = v
	}
}

// ScalarNames returns every scalar name currently bound, for debug
// inspection (spec.md §6 inspect_symbol/inspect_stack).
func (t *SymbolTable) ScalarNames() []string {
	names := make([]string, 0, len(t.scalars))
	for k := range t.scalars {
		names = append(names, k)
	}
	return names
}
