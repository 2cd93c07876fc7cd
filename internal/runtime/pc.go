package runtime

// PC is spec.md §3's ProgramCounter: a pair locating the next statement
// to execute. The terminal PC (one past the last line) signals a halted
// program.
type PC struct {
	LineIndex int
	StmtIndex int
}

// Terminal reports whether pc is one past the last line of a program with
// lineCount lines.
func (pc PC) Terminal(lineCount int) bool { return pc.LineIndex >= lineCount }
