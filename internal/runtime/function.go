package runtime

import "github.com/cocode/gobasic/internal/ast"

// UserFunction is spec.md §3's SymbolValue variant for DEF FN: a
// parameter name list and the body expression, which is structurally
// shared with the program AST (spec.md §5 "Memory": "The user-function
// body references are structurally shared with the program AST").
type UserFunction struct {
	Params []string
	Body   ast.Expression
}
