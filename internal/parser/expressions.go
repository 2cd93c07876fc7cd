package parser

import (
	"github.com/cocode/gobasic/internal/ast"
	"github.com/cocode/gobasic/internal/token"
)

// parseExpr is the grammar's `expr` entry point (spec.md §4.2):
//
//	expr      := or_expr
//	or_expr   := and_expr (OR and_expr)*
//	and_expr  := not_expr (AND not_expr)*
//	not_expr  := NOT not_expr | rel_expr
//	rel_expr  := add_expr ((= | <> | < | <= | > | >=) add_expr)?
//	add_expr  := mul_expr ((+|-) mul_expr)*
//	mul_expr  := pow_expr ((*|/) pow_expr)*
//	pow_expr  := unary (^ pow_expr)?        -- right-associative
//	unary     := '-' unary | primary
//	primary   := NUMBER | STRING | call | var | '(' expr ')'
func (p *Parser) parseExpr() ast.Expression { return p.parseOr() }

func (p *Parser) parseOr() ast.Expression {
	left := p.parseAnd()
	for p.cur().Type == token.OR {
		tok := p.advance()
		right := p.parseAnd()
		left = &ast.BinaryExpr{Token: tok, Left: left, Operator: "OR", Right: right}
	}
	return left
}

func (p *Parser) parseAnd() ast.Expression {
	left := p.parseNot()
	for p.cur().Type == token.AND {
		tok := p.advance()
		right := p.parseNot()
		left = &ast.BinaryExpr{Token: tok, Left: left, Operator: "AND", Right: right}
	}
	return left
}

func (p *Parser) parseNot() ast.Expression {
	if p.cur().Type == token.NOT {
		tok := p.advance()
		return &ast.UnaryExpr{Token: tok, Operator: "NOT", Right: p.parseNot()}
	}
	return p.parseRel()
}

var relOps = map[token.Type]string{
	token.EQ: "=", token.NEQ: "<>", token.LT: "<",
	token.LE: "<=", token.GT: ">", token.GE: ">=",
}

func (p *Parser) parseRel() ast.Expression {
	left := p.parseAdd()
	if op, ok := relOps[p.cur().Type]; ok {
		tok := p.advance()
		right := p.parseAdd()
		return &ast.BinaryExpr{Token: tok, Left: left, Operator: op, Right: right}
	}
	return left
}

func (p *Parser) parseAdd() ast.Expression {
	left := p.parseMul()
	for p.cur().Type == token.PLUS || p.cur().Type == token.MINUS {
		tok := p.advance()
		op := "+"
		if tok.Type == token.MINUS {
			op = "-"
		}
		right := p.parseMul()
		left = &ast.BinaryExpr{Token: tok, Left: left, Operator: op, Right: right}
	}
	return left
}

func (p *Parser) parseMul() ast.Expression {
	left := p.parsePow()
	for p.cur().Type == token.STAR || p.cur().Type == token.SLASH {
		tok := p.advance()
		op := "*"
		if tok.Type == token.SLASH {
			op = "/"
		}
		right := p.parsePow()
		left = &ast.BinaryExpr{Token: tok, Left: left, Operator: op, Right: right}
	}
	return left
}

// parsePow is right-associative, per spec.md §4.2.
func (p *Parser) parsePow() ast.Expression {
	left := p.parseUnary()
	if p.cur().Type == token.CARET {
		tok := p.advance()
		right := p.parsePow()
		return &ast.BinaryExpr{Token: tok, Left: left, Operator: "^", Right: right}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expression {
	if p.cur().Type == token.MINUS {
		tok := p.advance()
		return &ast.UnaryExpr{Token: tok, Operator: "-", Right: p.parseUnary()}
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Expression {
	t := p.cur()

	switch t.Type {
	case token.NUMBER:
		p.advance()
		return &ast.NumberLiteral{Token: t, Value: t.Number}

	case token.STRING:
		p.advance()
		return &ast.StringLiteral{Token: t, Value: t.Literal}

	case token.LPAREN:
		p.advance()
		inner := p.parseExpr()
		p.expectType(token.RPAREN)
		return &ast.GroupedExpr{Token: t, Inner: inner}

	case token.IDENT:
		p.advance()
		if p.cur().Type == token.LPAREN {
			p.advance()
			args := p.parseExprList()
			p.expectType(token.RPAREN)
			return &ast.CallExpr{Token: t, Name: t.Literal, Args: args}
		}
		return &ast.ScalarRef{Token: t, Name: t.Literal}

	case token.KEYWORD:
		// FN-prefixed calls to user-defined functions: FN F(x).
		if p.d.Equal(t.Literal, "FN") {
			p.advance()
			nameTok, ok := p.expectType(token.IDENT)
			if !ok {
				return nil
			}
			var args []ast.Expression
			if p.cur().Type == token.LPAREN {
				p.advance()
				args = p.parseExprList()
				p.expectType(token.RPAREN)
			}
			return &ast.CallExpr{Token: t, Name: "FN" + nameTok.Literal, Args: args}
		}
	}

	p.errorf(t.Pos, "unexpected token in expression: %s %q", t.Type, t.Literal)
	p.advance()
	return &ast.NumberLiteral{Token: t, Value: 0}
}
