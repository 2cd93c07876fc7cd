// Package ast defines the Abstract Syntax Tree node types for gobasic.
// Modeled on internal/ast/ast.go in the teacher codebase: every node
// implements TokenLiteral/String/Pos, expressions and statements are
// distinguished by a marker method, and the tree is kept free of any
// interpreter-only annotation (spec.md §9 "Separation of interpreter and
// LLVM backend") so a future backend can consume it unchanged.
package ast

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/cocode/gobasic/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action.
type Statement interface {
	Node
	statementNode()
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

// NumberLiteral is a numeric constant (spec.md §3 "numeric constants").
type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (n *NumberLiteral) expressionNode()      {}
func (n *NumberLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NumberLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *NumberLiteral) String() string       { return strconv.FormatFloat(n.Value, 'g', -1, 64) }

// StringLiteral is a string constant.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (s *StringLiteral) expressionNode()      {}
func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StringLiteral) Pos() token.Position  { return s.Token.Pos }
func (s *StringLiteral) String() string       { return "\"" + s.Value + "\"" }

// ScalarRef references a scalar variable by name (spec.md §3 "scalar
// variable references"). Name carries the dialect-significant '$' suffix
// verbatim; the symbol table decides typing from it.
type ScalarRef struct {
	Token token.Token
	Name  string
}

func (v *ScalarRef) expressionNode()      {}
func (v *ScalarRef) TokenLiteral() string { return v.Token.Literal }
func (v *ScalarRef) Pos() token.Position  { return v.Token.Pos }
func (v *ScalarRef) String() string       { return v.Name }

// ArrayRef references an element of an array variable (spec.md §3 "array
// element references").
type ArrayRef struct {
	Token     token.Token
	Name      string
	Subscript []Expression
}

func (a *ArrayRef) expressionNode()      {}
func (a *ArrayRef) TokenLiteral() string { return a.Token.Literal }
func (a *ArrayRef) Pos() token.Position  { return a.Token.Pos }
func (a *ArrayRef) String() string {
	var out bytes.Buffer
	out.WriteString(a.Name)
	out.WriteString("(")
	for i, s := range a.Subscript {
		if i > 0 {
			out.WriteString(",")
		}
		out.WriteString(s.String())
	}
	out.WriteString(")")
	return out.String()
}

// CallExpr is a call-shaped expression: a built-in, a user DEF FN
// function, or (syntactically indistinguishable until the symbol table is
// consulted at execution time) an array reference — spec.md §4.2 grammar
// rule `call`. The parser always produces CallExpr for `IDENT '(' ... ')'`
// and lets the evaluator decide what IDENT actually names.
type CallExpr struct {
	Token token.Token
	Name  string
	Args  []Expression
}

func (c *CallExpr) expressionNode()      {}
func (c *CallExpr) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpr) Pos() token.Position  { return c.Token.Pos }
func (c *CallExpr) String() string {
	var out bytes.Buffer
	out.WriteString(c.Name)
	out.WriteString("(")
	for i, a := range c.Args {
		if i > 0 {
			out.WriteString(",")
		}
		out.WriteString(a.String())
	}
	out.WriteString(")")
	return out.String()
}

// UnaryExpr is a unary prefix operator (`-`, `NOT`).
type UnaryExpr struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (u *UnaryExpr) expressionNode()      {}
func (u *UnaryExpr) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryExpr) Pos() token.Position  { return u.Token.Pos }
func (u *UnaryExpr) String() string {
	if u.Operator == "NOT" {
		return "NOT " + u.Right.String()
	}
	return u.Operator + u.Right.String()
}

// BinaryExpr is a binary operator node.
type BinaryExpr struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (b *BinaryExpr) expressionNode()      {}
func (b *BinaryExpr) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryExpr) Pos() token.Position  { return b.Token.Pos }
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", b.Left.String(), b.Operator, b.Right.String())
}

// GroupedExpr is a parenthesized expression, kept as its own node (rather
// than collapsed away) so String() round-trips the source exactly —
// spec.md §8 invariant 5, AST round-trip.
type GroupedExpr struct {
	Token token.Token
	Inner Expression
}

func (g *GroupedExpr) expressionNode()      {}
func (g *GroupedExpr) TokenLiteral() string { return g.Token.Literal }
func (g *GroupedExpr) Pos() token.Position  { return g.Token.Pos }
func (g *GroupedExpr) String() string       { return "(" + g.Inner.String() + ")" }
