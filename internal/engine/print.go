package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cocode/gobasic/internal/ast"
	"github.com/cocode/gobasic/internal/runtime"
)

// execPrint implements spec.md §4.6's PRINT semantics: numbers get a
// leading space when non-negative and a trailing space, strings print
// verbatim, ',' pads to the next PrintColumnWidth tab stop, ';' emits no
// padding, and a statement with no trailing separator ends in a newline.
func (e *Engine) execPrint(stmt *ast.PrintStmt) error {
	for i, item := range stmt.Items {
		if i > 0 {
			switch item.Sep {
			case ast.SepComma:
				e.padToNextColumn()
			case ast.SepSemi:
				// no padding
			}
		}
		if item.Expr == nil {
			continue
		}
		v, err := e.evalExpr(item.Expr)
		if err != nil {
			return err
		}
		e.writeValue(v)
	}

	if stmt.HasTrailing {
		switch stmt.TrailingSep {
		case ast.SepComma:
			e.padToNextColumn()
		case ast.SepSemi:
			// no padding
		}
		return nil // trailing separator suppresses the newline
	}

	e.writeNewline()
	return nil
}

func (e *Engine) writeValue(v runtime.Value) {
	text := e.formatPrintValue(v)
	fmt.Fprint(e.out, text)
	// Column tracking feeds TAB/SPC's width math, which counts print
	// positions, not bytes, so a multi-byte string must not overcount.
	e.column += utf8.RuneCountInString(text)
}

func (e *Engine) writeNewline() {
	fmt.Fprint(e.out, "\n")
	e.column = 0
}

func (e *Engine) padToNextColumn() {
	width := e.dialect.PrintColumnWidth
	if width <= 0 {
		width = 1
	}
	pad := width - (e.column % width)
	fmt.Fprint(e.out, strings.Repeat(" ", pad))
	e.column += pad
}

func (e *Engine) formatPrintValue(v runtime.Value) string {
	if v.IsString() {
		return v.Str
	}
	var b strings.Builder
	if e.dialect.NumberLeadSpace && v.Num >= 0 {
		b.WriteByte(' ')
	}
	b.WriteString(formatPrintNumber(v.Num))
	if e.dialect.NumberTrailSpace {
		b.WriteByte(' ')
	}
	return b.String()
}

// formatPrintNumber renders a float the way PRINT does: an integral value
// prints without a trailing ".0" or exponent.
func formatPrintNumber(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
