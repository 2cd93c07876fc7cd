// Package runtime holds the interpreter's runtime data model: typed
// values, the symbol table, the control stack, and the data pool
// (spec.md §3). Modeled on internal/interp/runtime's Environment and
// CallStack shapes in the teacher codebase, narrowed to BASIC's flat,
// non-lexically-scoped variable model (spec.md §4.3/§9: one global table
// plus a shallow parameter overlay for DEF FN calls).
package runtime

import "fmt"

// Kind tags the dynamic type of a SymbolValue.
type Kind int

const (
	KindNumber Kind = iota
	KindString
)

func (k Kind) String() string {
	if k == KindString {
		return "string"
	}
	return "number"
}

// Value is spec.md §3's SymbolValue: a tagged variant over the scalar
// cell types. Arrays and user functions have their own container types
// (array.go, function.go) rather than folding into this one, since they're never themselves
// assignable as a unit under BASIC's statements (spec.md §3).
type Value struct {
	Kind Kind
	Num  float64
	Str  string
}

// Number constructs a numeric Value.
func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// String constructs a string Value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// IsString reports whether v holds a string.
func (v Value) IsString() bool { return v.Kind == KindString }

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool { return v.Kind == KindNumber }

// Truthy applies BASIC's "false iff zero" rule (spec.md §4.4) to a
// numeric value. Calling it on a string value is a caller bug.
func (v Value) Truthy() bool { return v.Num != 0 }

func (v Value) String() string {
	if v.IsString() {
		return v.Str
	}
	return fmt.Sprintf("%g", v.Num)
}

// ZeroFor returns the type-appropriate default for a name, following its
// '$' suffix convention: 0 for numeric names, "" for string names
// (spec.md §4.3: "Reading an undefined numeric scalar returns 0; reading
// an undefined string returns the empty string").
func ZeroFor(name string) Value {
	if IsStringName(name) {
		return String("")
	}
	return Number(0)
}

// IsStringName reports whether name denotes a string-typed cell under
// BASIC's '$'-suffix convention (spec.md §3).
func IsStringName(name string) bool {
	return len(name) > 0 && name[len(name)-1] == '$'
}
