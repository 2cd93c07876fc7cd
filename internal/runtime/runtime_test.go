package runtime

import (
	"testing"

	"github.com/cocode/gobasic/internal/ast"
	"github.com/cocode/gobasic/internal/dialect"
)

func TestValueTruthy(t *testing.T) {
	if Number(0).Truthy() {
		t.Fatal("0 should be falsy")
	}
	if !Number(-1).Truthy() {
		t.Fatal("-1 should be truthy")
	}
	if !Number(1).Truthy() {
		t.Fatal("1 should be truthy")
	}
}

func TestZeroForFollowsSuffixConvention(t *testing.T) {
	if v := ZeroFor("A$"); !v.IsString() || v.Str != "" {
		t.Fatalf("ZeroFor(A$) = %v, want an empty string", v)
	}
	if v := ZeroFor("A"); !v.IsNumber() || v.Num != 0 {
		t.Fatalf("ZeroFor(A) = %v, want 0", v)
	}
}

func TestPCTerminal(t *testing.T) {
	if !(PC{LineIndex: 3}).Terminal(3) {
		t.Fatal("PC{LineIndex: 3} should be terminal for a 3-line program")
	}
	if (PC{LineIndex: 2}).Terminal(3) {
		t.Fatal("PC{LineIndex: 2} should not be terminal for a 3-line program")
	}
}

func TestArrayGetSetRowMajor(t *testing.T) {
	a := NewArray([]int{2, 3}, false)
	if err := a.Set([]int{1, 2}, Number(42)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := a.Get([]int{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Num != 42 {
		t.Fatalf("Get after Set = %v, want 42", v.Num)
	}
	if v, _ := a.Get([]int{0, 0}); v.Num != 0 {
		t.Fatalf("unwritten cell = %v, want 0", v.Num)
	}
}

func TestArrayOutOfRangeIsError(t *testing.T) {
	a := NewArray([]int{3}, false)
	if _, err := a.Get([]int{3}); err == nil {
		t.Fatal("expected an out-of-range error")
	}
	if _, err := a.Get([]int{-1}); err == nil {
		t.Fatal("expected an out-of-range error for a negative index")
	}
}

func TestArrayWrongSubscriptCountIsError(t *testing.T) {
	a := NewArray([]int{3, 3}, false)
	if _, err := a.Get([]int{0}); err == nil {
		t.Fatal("expected an error for a missing subscript dimension")
	}
}

func TestDefaultArrayIsElevenWide(t *testing.T) {
	a := DefaultArray(true)
	if _, err := a.Get([]int{10}); err != nil {
		t.Fatalf("index 10 should be in range of a default array: %v", err)
	}
	if _, err := a.Get([]int{11}); err == nil {
		t.Fatal("index 11 should be out of range of a default array")
	}
}

func TestControlStackGosubRoundTrip(t *testing.T) {
	s := NewControlStack()
	s.PushGosub(PC{LineIndex: 5, StmtIndex: 1})
	pc, err := s.PopGosub()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pc.LineIndex != 5 || pc.StmtIndex != 1 {
		t.Fatalf("PopGosub = %+v, want {5 1}", pc)
	}
}

func TestControlStackReturnWithoutGosubIsError(t *testing.T) {
	s := NewControlStack()
	if _, err := s.PopGosub(); err == nil {
		t.Fatal("expected an error popping an empty stack")
	}
}

func TestControlStackReturnThroughAForFrameIsError(t *testing.T) {
	s := NewControlStack()
	s.PushFor("i", Number(10), Number(1), PC{})
	if _, err := s.PopGosub(); err == nil {
		t.Fatal("expected an error: RETURN should not pop a FOR frame")
	}
}

func TestControlStackFindForInnermostFirst(t *testing.T) {
	s := NewControlStack()
	s.PushFor("i", Number(10), Number(1), PC{LineIndex: 1})
	s.PushFor("j", Number(20), Number(1), PC{LineIndex: 2})

	idx, err := s.FindFor("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Frame(idx).Var != "j" {
		t.Fatalf("bare NEXT should find the innermost FOR, got %q", s.Frame(idx).Var)
	}

	idx, err = s.FindFor("i")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Frame(idx).Var != "i" {
		t.Fatalf("FindFor(i) = %q, want i", s.Frame(idx).Var)
	}
}

func TestControlStackFindForNoMatchIsError(t *testing.T) {
	s := NewControlStack()
	if _, err := s.FindFor("i"); err == nil {
		t.Fatal("expected an error: no FOR frame exists")
	}
}

func TestControlStackPopThroughDiscardsNestedFrames(t *testing.T) {
	s := NewControlStack()
	s.PushFor("i", Number(10), Number(1), PC{})
	idx, _ := s.FindFor("i")
	s.PushGosub(PC{}) // a GOSUB called from inside the loop body, never returned from
	s.PopThrough(idx)
	if s.Depth() != 0 {
		t.Fatalf("Depth() = %d, want 0", s.Depth())
	}
}

func TestDataPoolReadInOrder(t *testing.T) {
	prog := ast.NewProgram([]ast.Line{
		{Number: 10, Statements: []ast.Statement{&ast.DataStmt{Values: []ast.DataLiteral{
			{Text: "1"}, {Text: "HELLO", IsString: true},
		}}}},
		{Number: 20, Statements: []ast.Statement{&ast.DataStmt{Values: []ast.DataLiteral{
			{Text: "3"},
		}}}},
	})
	pool := HarvestDataPool(prog)

	v, err := pool.Read()
	if err != nil || v.Num != 1 {
		t.Fatalf("first Read = %v, %v; want 1, nil", v, err)
	}
	v, err = pool.Read()
	if err != nil || v.Str != "HELLO" {
		t.Fatalf("second Read = %v, %v; want HELLO, nil", v, err)
	}
	v, err = pool.Read()
	if err != nil || v.Num != 3 {
		t.Fatalf("third Read = %v, %v; want 3, nil", v, err)
	}
	if _, err := pool.Read(); err == nil {
		t.Fatal("expected an out-of-DATA error")
	}
}

func TestDataPoolRestore(t *testing.T) {
	prog := ast.NewProgram([]ast.Line{
		{Number: 10, Statements: []ast.Statement{&ast.DataStmt{Values: []ast.DataLiteral{{Text: "1"}, {Text: "2"}}}}},
	})
	pool := HarvestDataPool(prog)
	pool.Read()
	pool.Read()
	pool.Restore()
	v, err := pool.Read()
	if err != nil || v.Num != 1 {
		t.Fatalf("Read after Restore = %v, %v; want 1, nil", v, err)
	}
}

func TestDataPoolRestoreFrom(t *testing.T) {
	prog := ast.NewProgram([]ast.Line{
		{Number: 10, Statements: []ast.Statement{&ast.DataStmt{Values: []ast.DataLiteral{{Text: "1"}}}}},
		{Number: 20, Statements: []ast.Statement{&ast.DataStmt{Values: []ast.DataLiteral{{Text: "2"}}}}},
		{Number: 30, Statements: []ast.Statement{&ast.DataStmt{Values: []ast.DataLiteral{{Text: "3"}}}}},
	})
	pool := HarvestDataPool(prog)
	pool.RestoreFrom(20)
	v, err := pool.Read()
	if err != nil || v.Num != 2 {
		t.Fatalf("Read after RestoreFrom(20) = %v, %v; want 2, nil", v, err)
	}
}

func TestSymbolTableScalarTypeZeroValues(t *testing.T) {
	st := NewSymbolTable(dialect.Default())
	if v := st.GetScalar("X"); v.Num != 0 {
		t.Fatalf("unset numeric scalar = %v, want 0", v.Num)
	}
	if v := st.GetScalar("X$"); v.Str != "" {
		t.Fatalf("unset string scalar = %q, want empty", v.Str)
	}
}

func TestSymbolTableCaseFolding(t *testing.T) {
	st := NewSymbolTable(dialect.Default())
	st.SetScalar("abc", Number(7))
	if v := st.GetScalar("ABC"); v.Num != 7 {
		t.Fatalf("GetScalar(ABC) = %v, want 7 (case-insensitive)", v.Num)
	}
}

func TestSymbolTableDimArrayTwiceIsError(t *testing.T) {
	st := NewSymbolTable(dialect.Default())
	if err := st.DimArray("A", []int{5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := st.DimArray("A", []int{5}); err == nil {
		t.Fatal("expected an error re-dimensioning an already-dimensioned array")
	}
}

func TestSymbolTablePushPopScope(t *testing.T) {
	st := NewSymbolTable(dialect.Default())
	st.SetScalar("X", Number(1))

	saved := st.PushScope(map[string]Value{"X": Number(99)})
	if v := st.GetScalar("X"); v.Num != 99 {
		t.Fatalf("GetScalar(X) during overlay = %v, want 99", v.Num)
	}
	st.PopScope(saved)
	if v := st.GetScalar("X"); v.Num != 1 {
		t.Fatalf("GetScalar(X) after PopScope = %v, want 1 (restored)", v.Num)
	}
}

func TestSymbolTableDefineAndLookupFunction(t *testing.T) {
	st := NewSymbolTable(dialect.Default())
	fn := &UserFunction{Params: []string{"X"}}
	st.DefineFunction("FNSQUARE", fn)

	got, ok := st.LookupFunction("fnsquare")
	if !ok || got != fn {
		t.Fatalf("LookupFunction case-insensitive lookup failed: got %v, %v", got, ok)
	}
}
