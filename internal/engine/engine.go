// Package engine implements spec.md §4.6's execution engine: the PC loop,
// control stack threading, and per-statement dispatch over a parsed
// Program. Modeled on internal/interp/evaluator/evaluator.go and
// visitor_statements.go's statement-dispatch shape in the teacher
// codebase, generalized from a tree-structured block walker to spec.md's
// explicit (line_index, statement_index) program counter (§3/§4.6), since
// GOTO/GOSUB require an addressable, mutable PC that a pure
// recursive-descent tree-walker doesn't carry. Functional options
// (New(..., opts ...Option)) follow internal/lexer's WithPreserveComments/
// WithTracing pattern in the teacher codebase.
package engine

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/cocode/gobasic/internal/ast"
	"github.com/cocode/gobasic/internal/builtins"
	"github.com/cocode/gobasic/internal/coverage"
	"github.com/cocode/gobasic/internal/debug"
	"github.com/cocode/gobasic/internal/dialect"
	"github.com/cocode/gobasic/internal/runtime"
)

// Status is the engine's halt state (spec.md §4.6: "halt with success" /
// "stopped" status / "ended" status / §5 "cancelled" status).
type Status int

const (
	StatusRunning Status = iota
	StatusNormal
	StatusStopped
	StatusEnded
	StatusError
	StatusCancelled
	StatusPaused
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusNormal:
		return "normal"
	case StatusStopped:
		return "stopped"
	case StatusEnded:
		return "ended"
	case StatusError:
		return "error"
	case StatusCancelled:
		return "cancelled"
	case StatusPaused:
		return "paused"
	}
	return "unknown"
}

// RuntimeError is spec.md §7's propagated error shape: "(line_number,
// statement_index, kind, message)".
type RuntimeError struct {
	Line      int
	StmtIndex int
	Kind      string
	Message   string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Message)
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithOutput sets the stream PRINT writes to (default os.Stdout).
func WithOutput(w io.Writer) Option { return func(e *Engine) { e.out = w } }

// WithInput sets the stream INPUT reads from (default os.Stdin).
func WithInput(r io.Reader) Option { return func(e *Engine) { e.in = bufio.NewReader(r) } }

// WithOverlay attaches a debug overlay (spec.md §4.7): breakpoints,
// tracing, single-stepping.
func WithOverlay(o *debug.Overlay) Option { return func(e *Engine) { e.overlay = o } }

// WithCoverage attaches a coverage counter (spec.md §4.7).
func WithCoverage(c *coverage.Counter) Option { return func(e *Engine) { e.coverage = c } }

// WithSeed fixes the RND generator's initial seed, for reproducible tests.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// Engine is spec.md §4.6's execution engine. It owns every piece of
// mutable interpreter state (spec.md §5: "exactly one program counter,
// one symbol table, one control stack, one data cursor").
type Engine struct {
	prog    *ast.Program
	dialect *dialect.Dialect

	symbols  *runtime.SymbolTable
	stack    *runtime.ControlStack
	data     *runtime.DataPool
	builtins *builtins.Registry

	overlay  *debug.Overlay
	coverage *coverage.Counter

	out io.Writer
	in  *bufio.Reader

	pc     runtime.PC
	column int

	rng            *rand.Rand
	lastRandom     float64
	haveLastRandom bool

	status Status
}

// New builds an Engine ready to run prog from its first line.
func New(prog *ast.Program, d *dialect.Dialect, opts ...Option) *Engine {
	if d == nil {
		d = dialect.Default()
	}
	e := &Engine{
		prog:     prog,
		dialect:  d,
		symbols:  runtime.NewSymbolTable(d),
		stack:    runtime.NewControlStack(),
		data:     runtime.HarvestDataPool(prog),
		builtins: builtins.NewRegistry(d),
		out:      os.Stdout,
		pc:       runtime.PC{LineIndex: 0, StmtIndex: 0},
		rng:      rand.New(rand.NewSource(1)),
		status:   StatusRunning,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.in == nil {
		e.in = bufio.NewReader(os.Stdin)
	}
	return e
}

// Status reports the engine's current halt state.
func (e *Engine) Status() Status { return e.status }

// Symbols exposes the symbol table read-only, for the debug overlay's
// inspect_symbol/inspect_stack calls (spec.md §5: "the debug overlay
// holds references to the symbol table (read-only, for inspection)").
func (e *Engine) Symbols() *runtime.SymbolTable { return e.symbols }

// Stack exposes the control stack read-only, for inspect_stack.
func (e *Engine) Stack() *runtime.ControlStack { return e.stack }

// Coverage exposes the attached coverage counter, or nil if none was
// configured.
func (e *Engine) Coverage() *coverage.Counter { return e.coverage }

// Column implements builtins.Context: the current PRINT output column.
func (e *Engine) Column() int { return e.column }

// NextRandom implements builtins.Context and spec.md §4.5/SPEC_FULL.md §4's
// RND(x): x>0 draws a new sample, x=0 returns the last sample drawn (or
// draws a first one if none exists yet), x<0 reseeds the generator and
// draws the first sample from the reseeded stream.
func (e *Engine) NextRandom(x float64) float64 {
	switch {
	case x < 0:
		e.rng = rand.New(rand.NewSource(int64(x)))
	case x == 0:
		if e.haveLastRandom {
			return e.lastRandom
		}
	}
	e.lastRandom = e.rng.Float64()
	e.haveLastRandom = true
	return e.lastRandom
}

// Run executes statements starting from the current PC until the program
// halts, is paused by the debug overlay, or a runtime error occurs. A
// paused engine can be resumed by calling Run again: all state (PC,
// symbols, control stack) lives on the Engine itself (spec.md §5: "the
// shell may later re-enter with the same state").
func (e *Engine) Run() error {
	// A resumed run does not ask the overlay again about the statement it
	// paused on, so a breakpoint there does not pause a second time.
	resuming := e.status == StatusPaused
	e.status = StatusRunning
	for {
		if e.pc.Terminal(len(e.prog.Lines)) {
			e.status = StatusNormal
			return nil
		}
		if e.overlay != nil && e.overlay.Cancelled() {
			e.status = StatusCancelled
			return nil
		}

		line := e.prog.Lines[e.pc.LineIndex]
		stmt := line.Statements[e.pc.StmtIndex]

		if e.overlay != nil {
			if !resuming && e.overlay.Before(line.Number, e.pc.StmtIndex) == debug.Pause {
				e.status = StatusPaused
				return nil
			}
			e.overlay.Trace(line.Number, e.pc.StmtIndex, stmt.String())
		}
		resuming = false
		if e.coverage != nil {
			e.coverage.Record(line.Number, e.pc.StmtIndex)
		}

		jumped, err := e.execStatement(stmt)

		if e.overlay != nil {
			e.overlay.AfterStatement()
		}

		if err != nil {
			e.status = StatusError
			return &RuntimeError{
				Line:      line.Number,
				StmtIndex: e.pc.StmtIndex,
				Kind:      classifyError(err),
				Message:   err.Error(),
			}
		}
		if e.status == StatusStopped || e.status == StatusEnded {
			return nil
		}
		if !jumped {
			e.pc = e.nextPC()
		}
	}
}

// nextPC returns the PC immediately following the current one, used both
// for normal fallthrough and as the return/body address GOSUB and FOR
// capture before transferring control.
func (e *Engine) nextPC() runtime.PC {
	line := e.prog.Lines[e.pc.LineIndex]
	if e.pc.StmtIndex+1 < len(line.Statements) {
		return runtime.PC{LineIndex: e.pc.LineIndex, StmtIndex: e.pc.StmtIndex + 1}
	}
	return runtime.PC{LineIndex: e.pc.LineIndex + 1, StmtIndex: 0}
}

// classifyError breaks runtime errors into spec.md §7's "type error"
// subcategory versus the general "runtime error" kind.
func classifyError(err error) string {
	if strings.Contains(err.Error(), "type mismatch") {
		return "type"
	}
	return "runtime"
}
