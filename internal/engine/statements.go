package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cocode/gobasic/internal/ast"
	"github.com/cocode/gobasic/internal/runtime"
)

// execStatement dispatches one statement (spec.md §4.6 step 3). It
// reports whether the statement set the PC itself — GOTO, GOSUB, RETURN,
// a taken IF, a looping NEXT, ON...GOTO/GOSUB (spec.md §4.6 step 4) — in
// which case the caller must not advance the PC on its own.
func (e *Engine) execStatement(stmt ast.Statement) (bool, error) {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		return false, e.execLet(s)
	case *ast.PrintStmt:
		return false, e.execPrint(s)
	case *ast.IfStmt:
		return e.execIf(s)
	case *ast.GotoStmt:
		return e.execGoto(s)
	case *ast.GosubStmt:
		return e.execGosub(s)
	case *ast.ReturnStmt:
		return e.execReturn()
	case *ast.ForStmt:
		return false, e.execFor(s)
	case *ast.NextStmt:
		return e.execNext(s)
	case *ast.DimStmt:
		return false, e.execDim(s)
	case *ast.DefStmt:
		return false, e.execDef(s)
	case *ast.ReadStmt:
		return false, e.execRead(s)
	case *ast.DataStmt:
		return false, nil // harvested at parse time; no runtime effect
	case *ast.RestoreStmt:
		return false, e.execRestore(s)
	case *ast.InputStmt:
		return false, e.execInput(s)
	case *ast.RemStmt:
		return false, nil
	case *ast.StopStmt:
		e.status = StatusStopped
		return true, nil
	case *ast.EndStmt:
		e.status = StatusEnded
		return true, nil
	case *ast.OnStmt:
		return e.execOn(s)
	}
	return false, fmt.Errorf("internal error: unhandled statement type %T", stmt)
}

// checkTypeMatch enforces spec.md §3's invariant: "A string value is
// never stored in a numeric cell, and vice versa."
func checkTypeMatch(name string, v runtime.Value) error {
	wantString := runtime.IsStringName(name)
	if wantString != v.IsString() {
		return fmt.Errorf("type mismatch: cannot assign a %s to %s", v.Kind, name)
	}
	return nil
}

func (e *Engine) execLet(stmt *ast.LetStmt) error {
	v, err := e.evalExpr(stmt.Value)
	if err != nil {
		return err
	}
	return e.assignTarget(stmt.Target, v)
}

func (e *Engine) execIf(stmt *ast.IfStmt) (bool, error) {
	cond, err := e.evalExpr(stmt.Cond)
	if err != nil {
		return false, err
	}
	if !cond.Truthy() {
		return false, nil
	}

	if stmt.ThenLine != nil {
		idx, ok := e.prog.IndexOf(*stmt.ThenLine)
		if !ok {
			return false, fmt.Errorf("IF THEN target line %d does not exist", *stmt.ThenLine)
		}
		e.pc = runtime.PC{LineIndex: idx, StmtIndex: 0}
		return true, nil
	}

	for _, nested := range stmt.ThenStmts {
		jumped, err := e.execStatement(nested)
		if err != nil {
			return false, err
		}
		if e.status == StatusStopped || e.status == StatusEnded {
			return true, nil
		}
		if jumped {
			return true, nil
		}
	}
	return false, nil
}

func (e *Engine) execGoto(stmt *ast.GotoStmt) (bool, error) {
	idx, ok := e.prog.IndexOf(stmt.Line)
	if !ok {
		return false, fmt.Errorf("GOTO target line %d does not exist", stmt.Line)
	}
	e.pc = runtime.PC{LineIndex: idx, StmtIndex: 0}
	return true, nil
}

func (e *Engine) execGosub(stmt *ast.GosubStmt) (bool, error) {
	idx, ok := e.prog.IndexOf(stmt.Line)
	if !ok {
		return false, fmt.Errorf("GOSUB target line %d does not exist", stmt.Line)
	}
	e.stack.PushGosub(e.nextPC())
	e.pc = runtime.PC{LineIndex: idx, StmtIndex: 0}
	return true, nil
}

func (e *Engine) execReturn() (bool, error) {
	pc, err := e.stack.PopGosub()
	if err != nil {
		return false, err
	}
	e.pc = pc
	return true, nil
}

func (e *Engine) execFor(stmt *ast.ForStmt) error {
	start, err := e.evalExpr(stmt.Start)
	if err != nil {
		return err
	}
	end, err := e.evalExpr(stmt.End)
	if err != nil {
		return err
	}
	step := runtime.Number(1)
	if stmt.Step != nil {
		step, err = e.evalExpr(stmt.Step)
		if err != nil {
			return err
		}
	}
	if start.IsString() || end.IsString() || step.IsString() {
		return fmt.Errorf("type mismatch: FOR requires numeric bounds")
	}
	if step.Num == 0 {
		// Spec.md §8 boundary behavior: a zero step never satisfies NEXT's
		// termination test, so treat it as a runtime error rather than
		// loop forever.
		return fmt.Errorf("FOR %s: STEP must not be zero", stmt.Var)
	}

	if err := checkTypeMatch(stmt.Var, start); err != nil {
		return err
	}
	e.symbols.SetScalar(stmt.Var, start)
	e.stack.PushFor(e.dialect.Fold(stmt.Var), end, step, e.nextPC())
	return nil
}

func (e *Engine) execNext(stmt *ast.NextStmt) (bool, error) {
	if len(stmt.Vars) == 0 {
		return e.doNext("")
	}
	for _, v := range stmt.Vars {
		jumped, err := e.doNext(e.dialect.Fold(v))
		if err != nil {
			return false, err
		}
		if jumped {
			return true, nil
		}
	}
	return false, nil
}

// doNext implements spec.md §4.6's NEXT semantics for a single loop
// variable (or the topmost ForFrame if name is "").
func (e *Engine) doNext(name string) (bool, error) {
	idx, err := e.stack.FindFor(name)
	if err != nil {
		return false, err
	}
	frame := e.stack.Frame(idx)

	cur := e.symbols.GetScalar(frame.Var)
	next := runtime.Number(cur.Num + frame.Step.Num)
	e.symbols.SetScalar(frame.Var, next)

	continues := (frame.Step.Num >= 0 && next.Num <= frame.Limit.Num) ||
		(frame.Step.Num < 0 && next.Num >= frame.Limit.Num)
	if continues {
		e.pc = frame.BodyPC
		return true, nil
	}
	e.stack.PopThrough(idx)
	return false, nil
}

func (e *Engine) execDim(stmt *ast.DimStmt) error {
	for _, decl := range stmt.Decls {
		shape, err := e.evalIndices(decl.Shape)
		if err != nil {
			return err
		}
		// DIM A(n) declares indices 0..n, so each dimension holds n+1 cells.
		for i := range shape {
			shape[i]++
		}
		if err := e.symbols.DimArray(decl.Name, shape); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) execDef(stmt *ast.DefStmt) error {
	e.symbols.DefineFunction("FN"+stmt.Name, &runtime.UserFunction{
		Params: stmt.Params,
		Body:   stmt.Body,
	})
	return nil
}

func (e *Engine) execRead(stmt *ast.ReadStmt) error {
	for _, target := range stmt.Targets {
		v, err := e.data.Read()
		if err != nil {
			return err
		}
		if err := e.assignTarget(target, v); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) execRestore(stmt *ast.RestoreStmt) error {
	if stmt.Line == nil {
		e.data.Restore()
		return nil
	}
	e.data.RestoreFrom(*stmt.Line)
	return nil
}

func (e *Engine) execInput(stmt *ast.InputStmt) error {
	read := func() ([]string, error) {
		if stmt.Prompt != "" {
			fmt.Fprint(e.out, stmt.Prompt)
		}
		line, err := e.readLine()
		if err != nil {
			return nil, err
		}
		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	}

	parts, err := read()
	if err == nil {
		err = e.assignInputParts(stmt.Targets, parts)
	}
	if err == nil {
		return nil
	}

	// INPUT is the one self-retrying statement (spec.md §7: "retries at
	// most once").
	parts, err = read()
	if err != nil {
		return err
	}
	return e.assignInputParts(stmt.Targets, parts)
}

func (e *Engine) assignInputParts(targets []ast.Target, parts []string) error {
	if len(parts) != len(targets) {
		return fmt.Errorf("expected %d input value(s), got %d", len(targets), len(parts))
	}
	for i, target := range targets {
		name := targetName(target)
		var v runtime.Value
		if runtime.IsStringName(name) {
			v = runtime.String(parts[i])
		} else {
			n, err := strconv.ParseFloat(parts[i], 64)
			if err != nil {
				return fmt.Errorf("malformed numeric input %q", parts[i])
			}
			v = runtime.Number(n)
		}
		if err := e.assignTarget(target, v); err != nil {
			return err
		}
	}
	return nil
}

func targetName(target ast.Target) string {
	switch t := target.(type) {
	case *ast.ScalarRef:
		return t.Name
	case *ast.ArrayRef:
		return t.Name
	}
	return ""
}

// assignTarget writes v into a scalar or array-cell target, enforcing the
// type invariant the same way LET does.
func (e *Engine) assignTarget(target ast.Target, v runtime.Value) error {
	switch t := target.(type) {
	case *ast.ScalarRef:
		if err := checkTypeMatch(t.Name, v); err != nil {
			return err
		}
		e.symbols.SetScalar(t.Name, v)
		return nil
	case *ast.ArrayRef:
		if err := checkTypeMatch(t.Name, v); err != nil {
			return err
		}
		indices, err := e.evalIndices(t.Subscript)
		if err != nil {
			return err
		}
		return e.symbols.SetArrayCell(t.Name, indices, v)
	}
	return fmt.Errorf("internal error: invalid assignment target %T", target)
}

func (e *Engine) execOn(stmt *ast.OnStmt) (bool, error) {
	v, err := e.evalExpr(stmt.Expr)
	if err != nil {
		return false, err
	}
	if v.IsString() {
		return false, fmt.Errorf("type mismatch: ON requires a numeric selector")
	}
	k := int(v.Num)
	if k < 1 || k > len(stmt.Lines) {
		return false, nil // fall through, spec.md §4.6
	}
	target := stmt.Lines[k-1]
	idx, ok := e.prog.IndexOf(target)
	if !ok {
		return false, fmt.Errorf("ON target line %d does not exist", target)
	}
	if stmt.Kind == ast.OnGosub {
		e.stack.PushGosub(e.nextPC())
	}
	e.pc = runtime.PC{LineIndex: idx, StmtIndex: 0}
	return true, nil
}
