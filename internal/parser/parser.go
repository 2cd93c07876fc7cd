// Package parser implements a recursive-descent parser over the lexer's
// token stream, producing a line-indexed ast.Program. Modeled on
// internal/parser/parser.go in the teacher codebase (a cursor-based
// Parser struct accumulating string errors) and internal/parser/
// operators.go's precedence-climbing binary-expression parser, adapted to
// spec.md §4.2's fixed BASIC grammar.
package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cocode/gobasic/internal/ast"
	"github.com/cocode/gobasic/internal/dialect"
	"github.com/cocode/gobasic/internal/token"
)

// Error is a parse error carrying source line and column, per spec.md §7's
// Syntax error taxonomy entry.
type Error struct {
	Pos     token.Position
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Parser consumes a token stream and produces an ast.Program.
type Parser struct {
	toks []token.Token
	pos  int
	d    *dialect.Dialect
	errs []Error
}

// New creates a Parser over an already-lexed token stream.
func New(toks []token.Token, d *dialect.Dialect) *Parser {
	if d == nil {
		d = dialect.Default()
	}
	return &Parser{toks: toks, d: d}
}

// Errors returns every error accumulated during ParseProgram.
func (p *Parser) Errors() []Error { return p.errs }

func (p *Parser) cur() token.Token  { return p.toks[p.pos] }
func (p *Parser) peekAt(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}
func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) errorf(pos token.Position, format string, args ...any) {
	p.errs = append(p.errs, Error{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// isKeyword reports whether the current token is the reserved word kw
// (case-folded per dialect).
func (p *Parser) isKeyword(kw string) bool {
	t := p.cur()
	return t.Type == token.KEYWORD && p.d.Equal(t.Literal, kw)
}

func (p *Parser) expectKeyword(kw string) bool {
	if !p.isKeyword(kw) {
		p.errorf(p.cur().Pos, "expected %s, got %s %q", kw, p.cur().Type, p.cur().Literal)
		return false
	}
	p.advance()
	return true
}

func (p *Parser) expectType(tt token.Type) (token.Token, bool) {
	if p.cur().Type != tt {
		p.errorf(p.cur().Pos, "expected %s, got %s %q", tt, p.cur().Type, p.cur().Literal)
		return token.Token{}, false
	}
	return p.advance(), true
}

// ParseProgram parses the full token stream into an ast.Program. Line
// numbers must be strictly increasing and unique (spec.md §3 invariant);
// a violation is recorded as a parse error but parsing continues with
// subsequent lines so the caller sees every problem at once.
func (p *Parser) ParseProgram() *ast.Program {
	var lines []ast.Line
	seen := make(map[int]bool)
	lastNumber := -1

	for p.cur().Type != token.EOF {
		pos := p.cur().Pos
		line, ok := p.parseLine()
		if !ok {
			p.skipToEOL()
			continue
		}
		if seen[line.Number] {
			p.errorf(pos, "duplicate line number %d", line.Number)
		} else if line.Number <= lastNumber {
			p.errorf(pos, "line numbers must strictly increase (%d after %d)", line.Number, lastNumber)
		}
		seen[line.Number] = true
		lastNumber = line.Number
		lines = append(lines, line)
	}

	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Number < lines[j].Number })
	return ast.NewProgram(lines)
}

func (p *Parser) skipToEOL() {
	for p.cur().Type != token.EOL && p.cur().Type != token.EOF {
		p.advance()
	}
	if p.cur().Type == token.EOL {
		p.advance()
	}
}

func (p *Parser) parseLine() (ast.Line, bool) {
	numTok, ok := p.expectType(token.LINENUMBER)
	if !ok {
		return ast.Line{}, false
	}
	lineNo := int(numTok.Number)

	var stmts []ast.Statement
	for {
		if p.cur().Type == token.EOL || p.cur().Type == token.EOF {
			break
		}
		stmt := p.parseStatement(lineNo)
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.cur().Type == token.COLON {
			p.advance()
			continue
		}
		break
	}

	if p.cur().Type == token.EOL {
		p.advance()
	}

	if len(stmts) == 0 {
		p.errorf(numTok.Pos, "line %d has no statements", lineNo)
		return ast.Line{}, false
	}

	return ast.Line{Number: lineNo, Statements: stmts}, true
}

// parseStatement parses one statement. Unlike parseLine's loop, it does
// NOT consume a trailing COLON — that's the caller's job, except for IF,
// which (per spec.md §4.6) consumes every remaining colon-separated
// statement on the line into its own ThenStmts.
func (p *Parser) parseStatement(lineNo int) ast.Statement {
	t := p.cur()

	if t.Type == token.KEYWORD {
		switch {
		case p.d.Equal(t.Literal, "LET"):
			p.advance()
			return p.parseLet(t, true)
		case p.d.Equal(t.Literal, "PRINT"):
			return p.parsePrint()
		case p.d.Equal(t.Literal, "IF"):
			return p.parseIf(lineNo)
		case p.d.Equal(t.Literal, "GOTO"):
			return p.parseGoto()
		case p.d.Equal(t.Literal, "GOSUB"):
			return p.parseGosub()
		case p.d.Equal(t.Literal, "RETURN"):
			p.advance()
			return &ast.ReturnStmt{Token: t}
		case p.d.Equal(t.Literal, "FOR"):
			return p.parseFor()
		case p.d.Equal(t.Literal, "NEXT"):
			return p.parseNext()
		case p.d.Equal(t.Literal, "DIM"):
			return p.parseDim()
		case p.d.Equal(t.Literal, "DEF"):
			return p.parseDef()
		case p.d.Equal(t.Literal, "READ"):
			return p.parseRead()
		case p.d.Equal(t.Literal, "DATA"):
			return p.parseData()
		case p.d.Equal(t.Literal, "RESTORE"):
			return p.parseRestore()
		case p.d.Equal(t.Literal, "INPUT"):
			return p.parseInput()
		case p.d.Equal(t.Literal, "REM"):
			p.advance()
			text := ""
			if p.cur().Type == token.REMTEXT {
				text = p.advance().Literal
			}
			return &ast.RemStmt{Token: t, Text: strings.TrimSpace(text)}
		case p.d.Equal(t.Literal, "STOP"):
			p.advance()
			return &ast.StopStmt{Token: t}
		case p.d.Equal(t.Literal, "END"):
			p.advance()
			return &ast.EndStmt{Token: t}
		case p.d.Equal(t.Literal, "ON"):
			return p.parseOn()
		}
		p.errorf(t.Pos, "unexpected keyword %s", t.Literal)
		p.advance()
		return nil
	}

	if t.Type == token.REMTEXT {
		// A bare '@...' test directive line with no REM keyword preceding it.
		p.advance()
		return &ast.RemStmt{Token: t, Text: strings.TrimSpace(t.Literal)}
	}

	if t.Type == token.IDENT {
		return p.parseLet(t, false)
	}

	p.errorf(t.Pos, "unexpected token %s %q", t.Type, t.Literal)
	p.advance()
	return nil
}
