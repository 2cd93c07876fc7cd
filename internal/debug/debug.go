// Package debug implements spec.md §4.7/§6's debug overlay: breakpoints,
// single-stepping, tracing, and the symbol/stack inspection calls exposed
// to an embedding shell. There is no debug-overlay precedent in the
// teacher codebase to ground the control-flow shape on directly (its
// interp package has no breakpoint/step concept), so the hook contract
// follows spec.md §4.7/§5 ("before_statement(pc) -> {Continue, Pause}",
// "checks a cooperative cancellation flag between statements") verbatim;
// the inspection helpers reuse the pack's pretty-printing and
// natural-sort libraries: github.com/kr/pretty (also used for the
// `parse --verbose` CLI output) and github.com/maruel/natural, so that
// the symbol listing (ListSymbols) reads "A1, A2, A10" in the order a
// person would expect rather than lexicographic "A1, A10, A2".
package debug

import (
	"fmt"
	"io"
	"sort"

	"github.com/kr/pretty"
	"github.com/maruel/natural"

	"github.com/cocode/gobasic/internal/runtime"
)

// Action is the overlay's verdict on whether the engine should pause
// before dispatching a statement.
type Action int

const (
	Continue Action = iota
	Pause
)

// Overlay holds breakpoints, the single-step flag, and the tracing flag.
// The coverage map is a separate collaborator (internal/coverage.Counter)
// rather than a field here, since a non-debugging run that only wants
// coverage shouldn't have to carry breakpoint/step state (spec.md §4.7
// describes them together, but nothing requires them to be one type).
type Overlay struct {
	breakpoints map[int]bool
	stepArmed   bool
	pauseNext   bool
	trace       bool
	cancelled   bool
	out         io.Writer
}

// NewOverlay creates an overlay that writes trace output to out.
func NewOverlay(out io.Writer) *Overlay {
	return &Overlay{breakpoints: make(map[int]bool), out: out}
}

// SetBreakpoint arms a breakpoint on line.
func (o *Overlay) SetBreakpoint(line int) { o.breakpoints[line] = true }

// ClearBreakpoint disarms a breakpoint on line.
func (o *Overlay) ClearBreakpoint(line int) { delete(o.breakpoints, line) }

// SetTrace enables or disables per-statement tracing to standard error.
func (o *Overlay) SetTrace(on bool) { o.trace = on }

// StepOne arms single-stepping: the engine pauses again after executing
// exactly one more statement (spec.md §6 "step_one()").
func (o *Overlay) StepOne() { o.stepArmed = true }

// Continue clears single-stepping (spec.md §6 "continue_()").
func (o *Overlay) Continue() { o.stepArmed = false; o.pauseNext = false }

// Cancel requests the engine halt cleanly at the next statement boundary
// (spec.md §5 "cooperative cancellation flag").
func (o *Overlay) Cancel() { o.cancelled = true }

// Cancelled reports whether Cancel has been called.
func (o *Overlay) Cancelled() bool { return o.cancelled }

// Before is the engine's main-loop hook, called before dispatching the
// statement at (line, stmtIndex) (spec.md §4.6 step 2). A breakpoint
// fires once per arrival at the line, on its first statement only --
// otherwise a line with colon-separated statements would re-pause on
// every statement after it, immediately re-triggering even right after
// Continue().
func (o *Overlay) Before(line, stmtIndex int) Action {
	if o.pauseNext {
		o.pauseNext = false
		return Pause
	}
	if stmtIndex == 0 && o.breakpoints[line] {
		return Pause
	}
	return Continue
}

// AfterStatement is called once the statement Before was invoked for has
// finished executing; it arms the next pause if single-stepping is on.
func (o *Overlay) AfterStatement() {
	if o.stepArmed {
		o.stepArmed = false
		o.pauseNext = true
	}
}

// Trace writes a one-line trace record if tracing is enabled (spec.md
// §4.6 step 2: "if tracing is on, log").
func (o *Overlay) Trace(line, stmtIndex int, stmt string) {
	if !o.trace || o.out == nil {
		return
	}
	fmt.Fprintf(o.out, "trace: line %d stmt %d: %s\n", line, stmtIndex, stmt)
}

// InspectSymbol renders a scalar's current value for the shell's
// `inspect_symbol(name)` call (spec.md §6).
func InspectSymbol(st *runtime.SymbolTable, name string) string {
	v := st.GetScalar(name)
	return fmt.Sprintf("%s = %s", name, pretty.Sprint(v))
}

// ListSymbols returns every bound scalar name, naturally sorted so that
// "A2" precedes "A10" (spec.md §6 `inspect_symbol`/`inspect_stack`
// listings are meant for a human reading a debugger session).
func ListSymbols(st *runtime.SymbolTable) []string {
	names := st.ScalarNames()
	sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })
	return names
}

// InspectStack renders the control stack's frames, bottom to top, for
// the shell's `inspect_stack()` call (spec.md §6).
func InspectStack(cs *runtime.ControlStack) string {
	return pretty.Sprint(cs.Frames())
}
