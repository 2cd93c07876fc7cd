package builtins

import (
	"strings"

	"github.com/cocode/gobasic/internal/runtime"
)

// registerIO wires TAB and SPC, spec.md §4.5's two print-column built-ins.
// Both return a string of spaces that the PRINT executor emits verbatim and
// counts toward the running column — neither writes to output directly,
// keeping this package free of any I/O dependency (spec.md §9 open question:
// "TAB never moves the column backward").
func registerIO(r *Registry) {
	r.register("TAB", Arity{1, 1}, func(ctx Context, args []runtime.Value) (runtime.Value, error) {
		n, err := requireNumber("TAB", args, 0)
		if err != nil {
			return runtime.Value{}, err
		}
		target := int(n)
		cur := ctx.Column()
		if target <= cur {
			return runtime.String(""), nil
		}
		return runtime.String(strings.Repeat(" ", target-cur)), nil
	})

	r.register("SPC", Arity{1, 1}, func(_ Context, args []runtime.Value) (runtime.Value, error) {
		n, err := requireNumber("SPC", args, 0)
		if err != nil {
			return runtime.Value{}, err
		}
		count := int(n)
		if count < 0 {
			count = 0
		}
		return runtime.String(strings.Repeat(" ", count)), nil
	})
}
