package ast

import "testing"

func TestProgramIndexOf(t *testing.T) {
	prog := NewProgram([]Line{
		{Number: 10, Statements: []Statement{&EndStmt{}}},
		{Number: 20, Statements: []Statement{&EndStmt{}}},
		{Number: 30, Statements: []Statement{&EndStmt{}}},
	})

	idx, ok := prog.IndexOf(20)
	if !ok || idx != 1 {
		t.Fatalf("IndexOf(20) = (%d, %v), want (1, true)", idx, ok)
	}
	if _, ok := prog.IndexOf(999); ok {
		t.Fatal("IndexOf(999) should report false for a nonexistent line")
	}
}

func TestBinaryExprString(t *testing.T) {
	expr := &BinaryExpr{
		Left:     &NumberLiteral{Value: 2},
		Operator: "+",
		Right:    &NumberLiteral{Value: 3},
	}
	if got, want := expr.String(), "2 + 3"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestGroupedExprRoundTripsParens(t *testing.T) {
	expr := &GroupedExpr{Inner: &NumberLiteral{Value: 5}}
	if got, want := expr.String(), "(5)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestCallExprString(t *testing.T) {
	expr := &CallExpr{Name: "ABS", Args: []Expression{&NumberLiteral{Value: -1}}}
	if got, want := expr.String(), "ABS(-1)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestIfStmtStringWithThenLine(t *testing.T) {
	line := 100
	stmt := &IfStmt{Cond: &NumberLiteral{Value: 1}, ThenLine: &line}
	if got, want := stmt.String(), "IF 1 THEN 100"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestDimStmtString(t *testing.T) {
	stmt := &DimStmt{Decls: []ArrayDecl{{Name: "A", Shape: []Expression{&NumberLiteral{Value: 10}}}}}
	if got, want := stmt.String(), "DIM A(10)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
