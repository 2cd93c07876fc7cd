package runtime

import (
	"fmt"
	"strconv"

	"github.com/cocode/gobasic/internal/ast"
)

// Datum is one entry of the DataPool: a literal value plus the line
// number it was harvested from (needed by RESTORE n — spec.md §3
// DataPool "optionally to the first datum on or after a given line
// number").
type Datum struct {
	Value Value
	Line  int
}

// DataPool is spec.md §3's DataPool: the flat, ordered concatenation of
// every DATA statement's literals, harvested at parse time, plus a
// read cursor.
type DataPool struct {
	data   []Datum
	cursor int
}

// HarvestDataPool walks prog in line order and collects every DATA
// statement's literals (spec.md §3: "harvested from every DATA statement
// at parse time"). It is a function over the finished AST rather than a
// side effect of parsing, keeping internal/ast free of any
// interpreter-only bookkeeping (spec.md §9).
func HarvestDataPool(prog *ast.Program) *DataPool {
	pool := &DataPool{}
	for _, line := range prog.Lines {
		for _, stmt := range line.Statements {
			data, ok := stmt.(*ast.DataStmt)
			if !ok {
				continue
			}
			for _, lit := range data.Values {
				pool.data = append(pool.data, Datum{Value: literalValue(lit), Line: line.Number})
			}
		}
	}
	return pool
}

func literalValue(lit ast.DataLiteral) Value {
	if lit.IsString {
		return String(lit.Text)
	}
	n, err := strconv.ParseFloat(lit.Text, 64)
	if err != nil {
		return Number(0)
	}
	return Number(n)
}

// Read consumes and returns the next datum. An exhausted pool is a
// runtime error (spec.md §4.6 READ).
func (p *DataPool) Read() (Value, error) {
	if p.cursor >= len(p.data) {
		return Value{}, fmt.Errorf("out of DATA")
	}
	v := p.data[p.cursor].Value
	p.cursor++
	return v, nil
}

// Restore rewinds the cursor to the start (spec.md §4.6 RESTORE).
func (p *DataPool) Restore() { p.cursor = 0 }

// RestoreFrom rewinds the cursor to the first datum originating from a
// line >= lineNumber (spec.md §4.6 RESTORE n). If no such datum exists,
// the cursor lands at the end of the pool (a subsequent READ will fail,
// matching an exhausted pool).
func (p *DataPool) RestoreFrom(lineNumber int) {
	for i, d := range p.data {
		if d.Line >= lineNumber {
			p.cursor = i
			return
		}
	}
	p.cursor = len(p.data)
}
