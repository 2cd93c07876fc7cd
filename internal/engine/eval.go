package engine

import (
	"fmt"

	"github.com/cocode/gobasic/internal/ast"
	"github.com/cocode/gobasic/internal/operator"
	"github.com/cocode/gobasic/internal/runtime"
)

// evalExpr evaluates an AST expression against the engine's current
// state. Grounded on internal/interp/evaluator/visitor_expressions.go's
// type-switch-over-Expression shape in the teacher codebase, narrowed to
// gobasic's handful of expression node types.
func (e *Engine) evalExpr(expr ast.Expression) (runtime.Value, error) {
	switch x := expr.(type) {
	case *ast.NumberLiteral:
		return runtime.Number(x.Value), nil

	case *ast.StringLiteral:
		return runtime.String(x.Value), nil

	case *ast.ScalarRef:
		return e.symbols.GetScalar(x.Name), nil

	case *ast.ArrayRef:
		indices, err := e.evalIndices(x.Subscript)
		if err != nil {
			return runtime.Value{}, err
		}
		return e.symbols.GetArrayCell(x.Name, indices)

	case *ast.GroupedExpr:
		return e.evalExpr(x.Inner)

	case *ast.UnaryExpr:
		v, err := e.evalExpr(x.Right)
		if err != nil {
			return runtime.Value{}, err
		}
		return operator.Unary(x.Operator, v)

	case *ast.BinaryExpr:
		left, err := e.evalExpr(x.Left)
		if err != nil {
			return runtime.Value{}, err
		}
		right, err := e.evalExpr(x.Right)
		if err != nil {
			return runtime.Value{}, err
		}
		return operator.Binary(x.Operator, left, right)

	case *ast.CallExpr:
		return e.evalCall(x)
	}
	return runtime.Value{}, fmt.Errorf("internal error: unhandled expression type %T", expr)
}

// evalCall resolves `IDENT(args)` the way spec.md §3/§4.2 describes it:
// the grammar produces one CallExpr node for built-ins, user functions,
// and array references alike, and the symbol table (not the parser)
// decides which one IDENT names (ast.CallExpr's own doc comment).
// Built-ins take precedence (they're reserved words), then a DEF FN
// function registered under this name, and finally an array reference —
// auto-dimensioned on first use, per spec.md §3/§9.
func (e *Engine) evalCall(c *ast.CallExpr) (runtime.Value, error) {
	if _, _, ok := e.builtins.Lookup(c.Name); ok {
		args, err := e.evalArgs(c.Args)
		if err != nil {
			return runtime.Value{}, err
		}
		return e.builtins.Call(e, c.Name, args)
	}

	if fn, ok := e.symbols.LookupFunction(c.Name); ok {
		return e.callUserFunction(fn, c.Args)
	}

	indices, err := e.evalIndices(c.Args)
	if err != nil {
		return runtime.Value{}, err
	}
	return e.symbols.GetArrayCell(c.Name, indices)
}

// callUserFunction evaluates a DEF FN call by binding its parameters as a
// shallow scalar overlay (spec.md §9: "push/pop a shallow overlay map
// around evaluation") and evaluating its body expression.
func (e *Engine) callUserFunction(fn *runtime.UserFunction, argExprs []ast.Expression) (runtime.Value, error) {
	if len(argExprs) != len(fn.Params) {
		return runtime.Value{}, fmt.Errorf("function call expects %d argument(s), got %d", len(fn.Params), len(argExprs))
	}
	overlay := make(map[string]runtime.Value, len(fn.Params))
	for i, param := range fn.Params {
		v, err := e.evalExpr(argExprs[i])
		if err != nil {
			return runtime.Value{}, err
		}
		overlay[param] = v
	}
	saved := e.symbols.PushScope(overlay)
	defer e.symbols.PopScope(saved)
	return e.evalExpr(fn.Body)
}

func (e *Engine) evalArgs(exprs []ast.Expression) ([]runtime.Value, error) {
	args := make([]runtime.Value, len(exprs))
	for i, expr := range exprs {
		v, err := e.evalExpr(expr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// evalIndices evaluates a subscript list to integer array indices,
// truncating each numeric value.
func (e *Engine) evalIndices(exprs []ast.Expression) ([]int, error) {
	indices := make([]int, len(exprs))
	for i, expr := range exprs {
		v, err := e.evalExpr(expr)
		if err != nil {
			return nil, err
		}
		if v.IsString() {
			return nil, fmt.Errorf("array subscript must be numeric, got a string")
		}
		indices[i] = int(v.Num)
	}
	return indices, nil
}
