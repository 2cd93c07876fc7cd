package parser

import (
	"testing"

	"github.com/cocode/gobasic/internal/ast"
	"github.com/cocode/gobasic/internal/dialect"
	"github.com/cocode/gobasic/internal/lexer"
)

func parseSource(t *testing.T, src string) *ast.Program {
	t.Helper()
	d := dialect.Default()
	toks, lexErrs := lexer.Tokenize(src, d)
	if len(lexErrs) > 0 {
		t.Fatalf("lex errors: %v", lexErrs)
	}
	p := New(toks, d)
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	return prog
}

func TestParseLetWithoutExplicitKeyword(t *testing.T) {
	prog := parseSource(t, "10 X=5\n")
	stmt := prog.Lines[0].Statements[0]
	let, ok := stmt.(*ast.LetStmt)
	if !ok {
		t.Fatalf("statement type = %T, want *ast.LetStmt", stmt)
	}
	if _, ok := let.Target.(*ast.ScalarRef); !ok {
		t.Fatalf("LetStmt.Target = %T, want *ast.ScalarRef", let.Target)
	}
}

func TestParseColonSeparatedStatements(t *testing.T) {
	prog := parseSource(t, "10 X=1:Y=2:PRINT X\n")
	if len(prog.Lines[0].Statements) != 3 {
		t.Fatalf("got %d statements, want 3", len(prog.Lines[0].Statements))
	}
}

func TestParseIfWithLineNumberSugar(t *testing.T) {
	prog := parseSource(t, "10 IF X=1 THEN 100\n")
	ifs := prog.Lines[0].Statements[0].(*ast.IfStmt)
	if len(ifs.ThenStmts) != 1 {
		t.Fatalf("got %d ThenStmts, want 1", len(ifs.ThenStmts))
	}
	g, ok := ifs.ThenStmts[0].(*ast.GotoStmt)
	if !ok || g.Line != 100 {
		t.Fatalf("ThenStmts[0] = %v, want a synthesized GOTO 100", ifs.ThenStmts[0])
	}
}

func TestParseIfWithLineNumberSugarAndTrailingStatements(t *testing.T) {
	prog := parseSource(t, "10 IF X=1 THEN 100 : PRINT \"Y\"\n")
	ifs := prog.Lines[0].Statements[0].(*ast.IfStmt)
	if len(ifs.ThenStmts) != 2 {
		t.Fatalf("got %d ThenStmts, want 2 (the synthesized GOTO plus the trailing PRINT)", len(ifs.ThenStmts))
	}
	if _, ok := ifs.ThenStmts[0].(*ast.GotoStmt); !ok {
		t.Fatalf("ThenStmts[0] = %T, want *ast.GotoStmt", ifs.ThenStmts[0])
	}
	if _, ok := ifs.ThenStmts[1].(*ast.PrintStmt); !ok {
		t.Fatalf("ThenStmts[1] = %T, want *ast.PrintStmt", ifs.ThenStmts[1])
	}
}

func TestParseIfWithNestedColonStatements(t *testing.T) {
	prog := parseSource(t, "10 IF X=1 THEN PRINT \"A\":PRINT \"B\"\n")
	ifs := prog.Lines[0].Statements[0].(*ast.IfStmt)
	if ifs.ThenLine != nil {
		t.Fatal("expected ThenLine to be nil for a nested-statement THEN clause")
	}
	if len(ifs.ThenStmts) != 2 {
		t.Fatalf("got %d ThenStmts, want 2", len(ifs.ThenStmts))
	}
}

func TestParseForWithDefaultStep(t *testing.T) {
	prog := parseSource(t, "10 FOR I=1 TO 10\n20 NEXT I\n")
	forStmt := prog.Lines[0].Statements[0].(*ast.ForStmt)
	if forStmt.Step != nil {
		t.Fatal("expected a nil Step for FOR without STEP")
	}
}

func TestParseForWithExplicitStep(t *testing.T) {
	prog := parseSource(t, "10 FOR I=10 TO 1 STEP -1\n20 NEXT I\n")
	forStmt := prog.Lines[0].Statements[0].(*ast.ForStmt)
	if forStmt.Step == nil {
		t.Fatal("expected a non-nil Step for FOR...STEP")
	}
}

func TestParseDimMultipleDeclarations(t *testing.T) {
	prog := parseSource(t, "10 DIM A(10), B(5,5)\n")
	dim := prog.Lines[0].Statements[0].(*ast.DimStmt)
	if len(dim.Decls) != 2 {
		t.Fatalf("got %d declarations, want 2", len(dim.Decls))
	}
	if len(dim.Decls[1].Shape) != 2 {
		t.Fatalf("second DIM decl has %d dimensions, want 2", len(dim.Decls[1].Shape))
	}
}

func TestParseDefFn(t *testing.T) {
	prog := parseSource(t, "10 DEF FNSQUARE(X)=X*X\n")
	def := prog.Lines[0].Statements[0].(*ast.DefStmt)
	if def.Name != "SQUARE" {
		t.Fatalf("DefStmt.Name = %q, want %q", def.Name, "SQUARE")
	}
	if len(def.Params) != 1 || def.Params[0] != "X" {
		t.Fatalf("DefStmt.Params = %v, want [X]", def.Params)
	}
}

func TestParseOnGoto(t *testing.T) {
	prog := parseSource(t, "10 ON X GOTO 100,200,300\n")
	on := prog.Lines[0].Statements[0].(*ast.OnStmt)
	if on.Kind != ast.OnGoto {
		t.Fatalf("OnStmt.Kind = %v, want OnGoto", on.Kind)
	}
	if len(on.Lines) != 3 {
		t.Fatalf("got %d ON targets, want 3", len(on.Lines))
	}
}

func TestParsePrintSeparators(t *testing.T) {
	prog := parseSource(t, "10 PRINT \"A\",\"B\";\"C\";\n")
	pr := prog.Lines[0].Statements[0].(*ast.PrintStmt)
	if len(pr.Items) != 3 {
		t.Fatalf("got %d PRINT items, want 3", len(pr.Items))
	}
	if pr.Items[1].Sep != ast.SepComma {
		t.Fatalf("second item separator = %v, want SepComma", pr.Items[1].Sep)
	}
	if pr.Items[2].Sep != ast.SepSemi {
		t.Fatalf("third item separator = %v, want SepSemi", pr.Items[2].Sep)
	}
	if !pr.HasTrailing || pr.TrailingSep != ast.SepSemi {
		t.Fatal("expected a trailing semicolon to suppress the newline")
	}
}

func TestParseExpressionPrecedence(t *testing.T) {
	// 2+3*4 should parse as 2+(3*4), i.e. the top node is the '+'.
	prog := parseSource(t, "10 X=2+3*4\n")
	let := prog.Lines[0].Statements[0].(*ast.LetStmt)
	bin, ok := let.Value.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("Value = %T, want *ast.BinaryExpr", let.Value)
	}
	if bin.Operator != "+" {
		t.Fatalf("top-level operator = %q, want %q", bin.Operator, "+")
	}
	if _, ok := bin.Right.(*ast.BinaryExpr); !ok {
		t.Fatalf("right operand = %T, want *ast.BinaryExpr (3*4)", bin.Right)
	}
}

func TestParseArrayRefVsCallDisambiguatesAtRuntimeNotParseTime(t *testing.T) {
	// The grammar produces a CallExpr for any IDENT(...) whether IDENT
	// names a built-in, a DEF FN function, or an array -- the parser
	// itself does not decide which.
	prog := parseSource(t, "10 X=A(1)\n")
	let := prog.Lines[0].Statements[0].(*ast.LetStmt)
	if _, ok := let.Value.(*ast.CallExpr); !ok {
		t.Fatalf("Value = %T, want *ast.CallExpr", let.Value)
	}
}

func TestParseUnknownLineNumberTargetStillParses(t *testing.T) {
	// GOTO to a nonexistent line is a runtime concern (engine.execGoto),
	// not a parse error.
	prog := parseSource(t, "10 GOTO 999\n")
	g := prog.Lines[0].Statements[0].(*ast.GotoStmt)
	if g.Line != 999 {
		t.Fatalf("GotoStmt.Line = %d, want 999", g.Line)
	}
}

func TestParserReportsSyntaxError(t *testing.T) {
	d := dialect.Default()
	toks, lexErrs := lexer.Tokenize("10 PRINT +\n", d)
	if len(lexErrs) > 0 {
		t.Fatalf("lex errors: %v", lexErrs)
	}
	p := New(toks, d)
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatal("expected a syntax error for a malformed PRINT expression")
	}
}
