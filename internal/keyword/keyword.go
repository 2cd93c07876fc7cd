// Package keyword holds the static registry of reserved words and
// built-in function names with their arities (spec.md component 2),
// consulted by both the lexer (keyword-first, longest-match tokenizing)
// and the parser. Shaped after internal/interp/builtins/registry.go's
// Registry/FunctionInfo pair in the teacher codebase.
package keyword

import (
	"sort"
	"strings"

	"github.com/cocode/gobasic/internal/token"
)

// entry pairs a reserved word with the token type it lexes to.
type entry struct {
	word string
	typ  token.Type
}

// keywords is intentionally a slice, not a map, because lookup needs
// longest-match-first semantics (spec.md §4.1: "LETX=5" must find "LET"
// before falling back to treating "LETX" as an identifier) — sorted by
// descending length once at package init.
var keywords []entry

func init() {
	words := map[string]token.Type{
		"LET": token.KEYWORD, "PRINT": token.KEYWORD, "IF": token.KEYWORD,
		"THEN": token.KEYWORD, "ELSE": token.KEYWORD, "GOTO": token.KEYWORD,
		"GOSUB": token.KEYWORD, "RETURN": token.KEYWORD, "FOR": token.KEYWORD,
		"TO": token.KEYWORD, "STEP": token.KEYWORD, "NEXT": token.KEYWORD,
		"DIM": token.KEYWORD, "DEF": token.KEYWORD, "FN": token.KEYWORD,
		"READ": token.KEYWORD, "DATA": token.KEYWORD, "RESTORE": token.KEYWORD,
		"INPUT": token.KEYWORD, "REM": token.KEYWORD, "STOP": token.KEYWORD,
		"END": token.KEYWORD, "ON": token.KEYWORD,
		"AND": token.AND, "OR": token.OR, "NOT": token.NOT,
	}

	for w, t := range words {
		keywords = append(keywords, entry{word: w, typ: t})
	}
	sort.Slice(keywords, func(i, j int) bool {
		return len(keywords[i].word) > len(keywords[j].word)
	})
}

// Match finds the longest reserved word that is a case-folded prefix of s,
// returning its token type, the matched length in runes, and true — or
// (ILLEGAL, 0, false) if no keyword matches at this position. fold is the
// caller's case-folding function (typically dialect.Dialect.Fold).
func Match(s string, fold func(string) string) (token.Type, int, bool) {
	folded := fold(s)
	for _, kw := range keywords {
		if strings.HasPrefix(folded, fold(kw.word)) {
			return kw.typ, len([]rune(kw.word)), true
		}
	}
	return token.ILLEGAL, 0, false
}

// IsReserved reports whether word, case-folded with fold, is exactly a
// reserved word, as opposed to merely prefixing one.
func IsReserved(word string, fold func(string) string) bool {
	folded := fold(word)
	for _, kw := range keywords {
		if fold(kw.word) == folded {
			return true
		}
	}
	return false
}

// BuiltinArity is the accepted argument-count range for a built-in
// function (spec.md §4.5). Max of -1 means variadic/unbounded.
type BuiltinArity struct {
	Min, Max int
}

// Builtins is the required set from spec.md §4.5, by canonical name.
// internal/builtins.Registry is the runtime counterpart that actually
// evaluates these. The parser does not consult this table: every
// IDENT '(' ... ')' parses as an ast.CallExpr, and the engine decides at
// run time what the name refers to.
var Builtins = map[string]BuiltinArity{
	"ABS": {1, 1}, "ATN": {1, 1}, "COS": {1, 1}, "EXP": {1, 1},
	"INT": {1, 1}, "LOG": {1, 1}, "RND": {1, 1}, "SGN": {1, 1},
	"SIN": {1, 1}, "SQR": {1, 1}, "TAN": {1, 1},
	"LEFT$": {2, 2}, "RIGHT$": {2, 2}, "MID$": {2, 3}, "LEN": {1, 1},
	"STR$": {1, 1}, "VAL": {1, 1}, "CHR$": {1, 1}, "ASC": {1, 1},
	"TAB": {1, 1}, "SPC": {1, 1},
}

// IsBuiltin reports whether name, case-folded with fold, names a built-in
// function.
func IsBuiltin(name string, fold func(string) string) bool {
	folded := fold(name)
	for n := range Builtins {
		if fold(n) == folded {
			return true
		}
	}
	return false
}
