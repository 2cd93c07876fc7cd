package ast

import (
	"strconv"
	"strings"

	"github.com/cocode/gobasic/internal/token"
)

// Line is one source line: a line number and its ordered, colon-separated
// statement list (spec.md §3 Program).
type Line struct {
	Number     int
	Statements []Statement
}

// Program is spec.md §3's Program: an ordered sequence of lines, sorted
// ascending by line number with unique numbers, plus an index from line
// number to its position for O(1) GOTO/GOSUB resolution. Kept free of any
// interpreter-only field (spec.md §9) so the AST stays independent of
// execution concerns.
type Program struct {
	Lines []Line
	index map[int]int // line number -> index into Lines
}

// NewProgram builds a Program from already-sorted, uniquely-numbered
// lines and builds its index. The parser is responsible for enforcing
// strictly-increasing, unique line numbers (spec.md §3 invariant) before
// calling this.
func NewProgram(lines []Line) *Program {
	p := &Program{Lines: lines, index: make(map[int]int, len(lines))}
	for i, l := range lines {
		p.index[l.Number] = i
	}
	return p
}

// IndexOf returns the Lines index of lineNumber and true, or (0, false) if
// no such line exists.
func (p *Program) IndexOf(lineNumber int) (int, bool) {
	i, ok := p.index[lineNumber]
	return i, ok
}

func (p *Program) TokenLiteral() string {
	if len(p.Lines) == 0 || len(p.Lines[0].Statements) == 0 {
		return ""
	}
	return p.Lines[0].Statements[0].TokenLiteral()
}

func (p *Program) Pos() token.Position {
	if len(p.Lines) == 0 || len(p.Lines[0].Statements) == 0 {
		return token.Position{Line: 1, Column: 1}
	}
	return p.Lines[0].Statements[0].Pos()
}

// String renders the Program back to BASIC source text. Used by the
// --dump-ast CLI flag and by the AST round-trip test (spec.md §8
// invariant 5): reparsing this output must yield an equal Program.
func (p *Program) String() string {
	var out strings.Builder
	for _, line := range p.Lines {
		out.WriteString(strconv.Itoa(line.Number))
		out.WriteString(" ")
		parts := make([]string, len(line.Statements))
		for i, s := range line.Statements {
			parts[i] = s.String()
		}
		out.WriteString(strings.Join(parts, ":"))
		out.WriteString("\n")
	}
	return out.String()
}
