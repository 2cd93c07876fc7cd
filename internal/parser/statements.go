package parser

import (
	"github.com/cocode/gobasic/internal/ast"
	"github.com/cocode/gobasic/internal/token"
)

// parseLet parses `[LET] target '=' expr`. explicit records whether the
// LET keyword itself was present in the source (spec.md §4.2: LET is
// optional, and the parser must still recognize a bare `target = expr`).
func (p *Parser) parseLet(first token.Token, explicit bool) ast.Statement {
	target := p.parseTarget()
	if target == nil {
		return nil
	}
	if _, ok := p.expectType(token.EQ); !ok {
		return nil
	}
	value := p.parseExpr()
	return &ast.LetStmt{Token: first, Explicit: explicit, Target: target, Value: value}
}

// parseTarget parses a scalar or array-element reference, the common
// assignable form used by LET and READ.
func (p *Parser) parseTarget() ast.Target {
	nameTok, ok := p.expectType(token.IDENT)
	if !ok {
		return nil
	}
	if p.cur().Type == token.LPAREN {
		p.advance()
		subs := p.parseExprList()
		p.expectType(token.RPAREN)
		return &ast.ArrayRef{Token: nameTok, Name: nameTok.Literal, Subscript: subs}
	}
	return &ast.ScalarRef{Token: nameTok, Name: nameTok.Literal}
}

func (p *Parser) parseExprList() []ast.Expression {
	var list []ast.Expression
	list = append(list, p.parseExpr())
	for p.cur().Type == token.COMMA {
		p.advance()
		list = append(list, p.parseExpr())
	}
	return list
}

// parsePrint parses `PRINT (item (sep item)*)? [sep]` (spec.md §3 PRINT).
func (p *Parser) parsePrint() ast.Statement {
	tok := p.advance() // PRINT
	stmt := &ast.PrintStmt{Token: tok}

	if p.atStatementEnd() {
		return stmt
	}

	sep := ast.SepNone
	for {
		if p.atStatementEnd() {
			stmt.HasTrailing = true
			stmt.TrailingSep = sep
			return stmt
		}
		if p.cur().Type == token.COMMA || p.cur().Type == token.SEMI {
			// Bare separator with nothing before it only happens at the
			// start of the list (PRINT ,X or PRINT ,,X); otherwise it's
			// handled by the loop body below after an expression. Treat as
			// an empty item, so the separator still applies to what follows.
			if len(stmt.Items) == 0 || stmt.Items[len(stmt.Items)-1].Expr == nil {
				stmt.Items = append(stmt.Items, ast.PrintItem{Sep: sep})
				sep = sepFor(p.cur().Type)
				p.advance()
				continue
			}
		}
		expr := p.parseExpr()
		stmt.Items = append(stmt.Items, ast.PrintItem{Expr: expr, Sep: sep})
		sep = ast.SepNone

		if p.cur().Type == token.COMMA || p.cur().Type == token.SEMI {
			sep = sepFor(p.cur().Type)
			p.advance()
			continue
		}
		return stmt
	}
}

func sepFor(tt token.Type) ast.PrintSep {
	if tt == token.COMMA {
		return ast.SepComma
	}
	return ast.SepSemi
}

func (p *Parser) atStatementEnd() bool {
	switch p.cur().Type {
	case token.EOL, token.EOF, token.COLON:
		return true
	}
	return false
}

// parseIf parses `IF expr THEN (stmt|LINENUMBER) (':' stmt)*`. Every
// colon-separated statement after THEN on this physical line belongs to
// the taken branch, so IF consumes the rest of the line's statement list
// itself -- including when THEN is followed by a bare line number, which
// is folded into ThenStmts as a synthesized GOTO so a false condition
// still skips any statements trailing the line number.
func (p *Parser) parseIf(lineNo int) ast.Statement {
	tok := p.advance() // IF
	cond := p.parseExpr()
	if !p.expectKeyword("THEN") {
		return nil
	}

	stmt := &ast.IfStmt{Token: tok, Cond: cond}

	if p.cur().Type == token.NUMBER {
		// `THEN <linenum>` is sugar for `THEN GOTO <linenum>`; fold it into
		// ThenStmts like any other THEN clause so that trailing
		// colon-separated statements on the same line (e.g.
		// `IF X THEN 100 : PRINT "Y"`) are still part of the taken branch
		// and are skipped along with it when the condition is false.
		n := int(p.advance().Number)
		stmt.ThenStmts = append(stmt.ThenStmts, &ast.GotoStmt{Token: tok, Line: n})
		if p.cur().Type != token.COLON {
			return stmt
		}
		p.advance() // consume the colon before folding in the rest of the line
	}

	for {
		s := p.parseStatement(lineNo)
		if s != nil {
			stmt.ThenStmts = append(stmt.ThenStmts, s)
		}
		if p.cur().Type == token.COLON {
			p.advance()
			continue
		}
		break
	}
	return stmt
}

func (p *Parser) parseLineNumberArg() (int, bool) {
	tok, ok := p.expectType(token.NUMBER)
	if !ok {
		return 0, false
	}
	return int(tok.Number), true
}

func (p *Parser) parseGoto() ast.Statement {
	tok := p.advance()
	n, ok := p.parseLineNumberArg()
	if !ok {
		return nil
	}
	return &ast.GotoStmt{Token: tok, Line: n}
}

func (p *Parser) parseGosub() ast.Statement {
	tok := p.advance()
	n, ok := p.parseLineNumberArg()
	if !ok {
		return nil
	}
	return &ast.GosubStmt{Token: tok, Line: n}
}

// parseFor parses `FOR var '=' start TO end [STEP step]`.
func (p *Parser) parseFor() ast.Statement {
	tok := p.advance()
	nameTok, ok := p.expectType(token.IDENT)
	if !ok {
		return nil
	}
	if _, ok := p.expectType(token.EQ); !ok {
		return nil
	}
	start := p.parseExpr()
	if !p.expectKeyword("TO") {
		return nil
	}
	end := p.parseExpr()

	var step ast.Expression
	if p.isKeyword("STEP") {
		p.advance()
		step = p.parseExpr()
	}

	return &ast.ForStmt{Token: tok, Var: nameTok.Literal, Start: start, End: end, Step: step}
}

// parseNext parses `NEXT [var (',' var)*]` (SPEC_FULL.md §4 decision: a
// variable list is supported).
func (p *Parser) parseNext() ast.Statement {
	tok := p.advance()
	stmt := &ast.NextStmt{Token: tok}
	if p.cur().Type != token.IDENT {
		return stmt
	}
	stmt.Vars = append(stmt.Vars, p.advance().Literal)
	for p.cur().Type == token.COMMA {
		p.advance()
		nameTok, ok := p.expectType(token.IDENT)
		if !ok {
			break
		}
		stmt.Vars = append(stmt.Vars, nameTok.Literal)
	}
	return stmt
}

// parseDim parses `DIM name '(' dims ')' (',' name '(' dims ')')*`.
func (p *Parser) parseDim() ast.Statement {
	tok := p.advance()
	stmt := &ast.DimStmt{Token: tok}
	for {
		nameTok, ok := p.expectType(token.IDENT)
		if !ok {
			break
		}
		if _, ok := p.expectType(token.LPAREN); !ok {
			break
		}
		shape := p.parseExprList()
		p.expectType(token.RPAREN)
		stmt.Decls = append(stmt.Decls, ast.ArrayDecl{Name: nameTok.Literal, Shape: shape})

		if p.cur().Type == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	return stmt
}

// parseDef parses `DEF FN name '(' params ')' '=' expr`.
func (p *Parser) parseDef() ast.Statement {
	tok := p.advance() // DEF
	if !p.expectKeyword("FN") {
		return nil
	}
	nameTok, ok := p.expectType(token.IDENT)
	if !ok {
		return nil
	}
	if _, ok := p.expectType(token.LPAREN); !ok {
		return nil
	}
	var params []string
	if p.cur().Type == token.IDENT {
		params = append(params, p.advance().Literal)
		for p.cur().Type == token.COMMA {
			p.advance()
			pt, ok := p.expectType(token.IDENT)
			if !ok {
				break
			}
			params = append(params, pt.Literal)
		}
	}
	if _, ok := p.expectType(token.RPAREN); !ok {
		return nil
	}
	if _, ok := p.expectType(token.EQ); !ok {
		return nil
	}
	body := p.parseExpr()
	return &ast.DefStmt{Token: tok, Name: nameTok.Literal, Params: params, Body: body}
}

// parseRead parses `READ target (',' target)*`.
func (p *Parser) parseRead() ast.Statement {
	tok := p.advance()
	stmt := &ast.ReadStmt{Token: tok}
	stmt.Targets = append(stmt.Targets, p.parseTarget())
	for p.cur().Type == token.COMMA {
		p.advance()
		stmt.Targets = append(stmt.Targets, p.parseTarget())
	}
	return stmt
}

// parseData parses `DATA literal (',' literal)*`. Each literal is either
// a (possibly signed) number or a string; bare, unquoted text is also
// accepted as a string datum, matching classic BASIC's permissive DATA
// syntax.
func (p *Parser) parseData() ast.Statement {
	tok := p.advance()
	stmt := &ast.DataStmt{Token: tok}
	stmt.Values = append(stmt.Values, p.parseDataLiteral())
	for p.cur().Type == token.COMMA {
		p.advance()
		stmt.Values = append(stmt.Values, p.parseDataLiteral())
	}
	return stmt
}

func (p *Parser) parseDataLiteral() ast.DataLiteral {
	if p.cur().Type == token.STRING {
		tok := p.advance()
		return ast.DataLiteral{Text: tok.Literal, IsString: true}
	}
	if p.cur().Type == token.MINUS {
		p.advance()
		tok, _ := p.expectType(token.NUMBER)
		return ast.DataLiteral{Text: "-" + tok.Literal, IsString: false}
	}
	if p.cur().Type == token.NUMBER {
		tok := p.advance()
		return ast.DataLiteral{Text: tok.Literal, IsString: false}
	}
	// Bare word datum (unquoted string), e.g. DATA ALPHA,BETA
	tok := p.advance()
	return ast.DataLiteral{Text: tok.Literal, IsString: true}
}

// parseRestore parses `RESTORE [line]`.
func (p *Parser) parseRestore() ast.Statement {
	tok := p.advance()
	stmt := &ast.RestoreStmt{Token: tok}
	if p.cur().Type == token.NUMBER {
		n := int(p.advance().Number)
		stmt.Line = &n
	}
	return stmt
}

// parseInput parses `INPUT [prompt ';'] target (',' target)*`.
func (p *Parser) parseInput() ast.Statement {
	tok := p.advance()
	stmt := &ast.InputStmt{Token: tok}
	if p.cur().Type == token.STRING {
		promptTok := p.advance()
		stmt.Prompt = promptTok.Literal
		if p.cur().Type == token.SEMI || p.cur().Type == token.COMMA {
			p.advance()
		}
	}
	stmt.Targets = append(stmt.Targets, p.parseTarget())
	for p.cur().Type == token.COMMA {
		p.advance()
		stmt.Targets = append(stmt.Targets, p.parseTarget())
	}
	return stmt
}

// parseOn parses `ON expr GOTO|GOSUB n1 (',' n2)*`.
func (p *Parser) parseOn() ast.Statement {
	tok := p.advance()
	expr := p.parseExpr()

	var kind ast.OnKind
	switch {
	case p.isKeyword("GOTO"):
		kind = ast.OnGoto
		p.advance()
	case p.isKeyword("GOSUB"):
		kind = ast.OnGosub
		p.advance()
	default:
		p.errorf(p.cur().Pos, "expected GOTO or GOSUB after ON expr")
		return nil
	}

	stmt := &ast.OnStmt{Token: tok, Expr: expr, Kind: kind}
	n, ok := p.parseLineNumberArg()
	if !ok {
		return stmt
	}
	stmt.Lines = append(stmt.Lines, n)
	for p.cur().Type == token.COMMA {
		p.advance()
		n, ok := p.parseLineNumberArg()
		if !ok {
			break
		}
		stmt.Lines = append(stmt.Lines, n)
	}
	return stmt
}
