package builtins

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cocode/gobasic/internal/runtime"
)

// registerStrings wires spec.md §4.5's string built-ins, grounded on
// internal/interp/builtins/strings.go in the teacher codebase. UCASE$/LCASE$
// are a supplemental addition beyond the required set — common across
// classic BASIC dialects and a natural home for golang.org/x/text/cases,
// which internal/dialect already uses for case-insensitive identifier
// folding.
func registerStrings(r *Registry) {
	r.register("LEFT$", Arity{2, 2}, func(_ Context, args []runtime.Value) (runtime.Value, error) {
		s, err := requireString("LEFT$", args, 0)
		if err != nil {
			return runtime.Value{}, err
		}
		n, err := requireNumber("LEFT$", args, 1)
		if err != nil {
			return runtime.Value{}, err
		}
		count := clampLen(int(n), len(s))
		return runtime.String(s[:count]), nil
	})

	r.register("RIGHT$", Arity{2, 2}, func(_ Context, args []runtime.Value) (runtime.Value, error) {
		s, err := requireString("RIGHT$", args, 0)
		if err != nil {
			return runtime.Value{}, err
		}
		n, err := requireNumber("RIGHT$", args, 1)
		if err != nil {
			return runtime.Value{}, err
		}
		count := clampLen(int(n), len(s))
		return runtime.String(s[len(s)-count:]), nil
	})

	r.register("MID$", Arity{2, 3}, func(_ Context, args []runtime.Value) (runtime.Value, error) {
		s, err := requireString("MID$", args, 0)
		if err != nil {
			return runtime.Value{}, err
		}
		startArg, err := requireNumber("MID$", args, 1)
		if err != nil {
			return runtime.Value{}, err
		}
		start := int(startArg) - 1 // BASIC's MID$ is 1-indexed
		if start < 0 {
			start = 0
		}
		if start >= len(s) {
			return runtime.String(""), nil
		}
		length := len(s) - start
		if len(args) == 3 {
			n, err := requireNumber("MID$", args, 2)
			if err != nil {
				return runtime.Value{}, err
			}
			length = clampLen(int(n), len(s)-start)
		}
		return runtime.String(s[start : start+length]), nil
	})

	r.register("LEN", Arity{1, 1}, func(_ Context, args []runtime.Value) (runtime.Value, error) {
		s, err := requireString("LEN", args, 0)
		if err != nil {
			return runtime.Value{}, err
		}
		return runtime.Number(float64(len(s))), nil
	})

	r.register("STR$", Arity{1, 1}, func(_ Context, args []runtime.Value) (runtime.Value, error) {
		n, err := requireNumber("STR$", args, 0)
		if err != nil {
			return runtime.Value{}, err
		}
		return runtime.String(formatNumber(n)), nil
	})

	r.register("VAL", Arity{1, 1}, func(_ Context, args []runtime.Value) (runtime.Value, error) {
		s, err := requireString("VAL", args, 0)
		if err != nil {
			return runtime.Value{}, err
		}
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			return runtime.Number(0), nil
		}
		n, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return runtime.Number(0), nil
		}
		return runtime.Number(n), nil
	})

	r.register("CHR$", Arity{1, 1}, func(_ Context, args []runtime.Value) (runtime.Value, error) {
		n, err := requireNumber("CHR$", args, 0)
		if err != nil {
			return runtime.Value{}, err
		}
		code := int(n)
		if code < 0 || code > 255 {
			return runtime.Value{}, fmt.Errorf("CHR$ argument %d out of range 0-255", code)
		}
		return runtime.String(string(rune(code))), nil
	})

	r.register("ASC", Arity{1, 1}, func(_ Context, args []runtime.Value) (runtime.Value, error) {
		s, err := requireString("ASC", args, 0)
		if err != nil {
			return runtime.Value{}, err
		}
		if s == "" {
			return runtime.Value{}, fmt.Errorf("ASC of an empty string")
		}
		return runtime.Number(float64([]rune(s)[0])), nil
	})

	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	r.register("UCASE$", Arity{1, 1}, func(_ Context, args []runtime.Value) (runtime.Value, error) {
		s, err := requireString("UCASE$", args, 0)
		if err != nil {
			return runtime.Value{}, err
		}
		return runtime.String(upper.String(s)), nil
	})

	r.register("LCASE$", Arity{1, 1}, func(_ Context, args []runtime.Value) (runtime.Value, error) {
		s, err := requireString("LCASE$", args, 0)
		if err != nil {
			return runtime.Value{}, err
		}
		return runtime.String(lower.String(s)), nil
	})
}

// clampLen bounds a requested substring length n to [0, max] (spec.md §8:
// out-of-range LEFT$/RIGHT$/MID$ lengths clamp rather than error).
func clampLen(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

// formatNumber renders a float the way PRINT does (spec.md §4.3/§6): an
// integral value prints without a trailing ".0", no scientific notation for
// ordinary magnitudes.
func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
