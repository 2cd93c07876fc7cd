package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cocode/gobasic/internal/coverage"
	"github.com/cocode/gobasic/internal/debug"
	"github.com/cocode/gobasic/internal/dialect"
	"github.com/cocode/gobasic/internal/engine"
	"github.com/cocode/gobasic/internal/lexer"
	"github.com/cocode/gobasic/internal/parser"
)

var (
	runCoverageFile  string
	runResetCoverage bool
	runTrace         bool
	runDialectFile   string
	runDumpAST       bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a BASIC program",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

func init() {
	runCmd.Flags().StringVar(&runCoverageFile, "coverage-file", "", "accumulate per-statement coverage into this JSON file")
	runCmd.Flags().BoolVar(&runResetCoverage, "reset-coverage", false, "discard any existing coverage-file contents instead of merging into them")
	runCmd.Flags().BoolVar(&runTrace, "trace", false, "print a line/statement trace to stderr as the program runs")
	runCmd.Flags().StringVar(&runDialectFile, "dialect-file", "", "load a YAML dialect profile instead of the built-in default")
	runCmd.Flags().BoolVar(&runDumpAST, "dump-ast", false, "print the parsed program before running it")
	rootCmd.AddCommand(runCmd)
}

// runScript implements spec.md §6's exit code contract: 0 on a normal
// end-of-program halt, 1 on a runtime error, 2 on a syntax/parse error, 3
// on an I/O error reading the source or coverage file, and 4 on an
// explicit STOP. Cobra's own RunE-error exit path only ever produces a
// single undifferentiated nonzero status, so the distinct codes are
// signaled with direct os.Exit calls instead of returned errors.
func runScript(cmd *cobra.Command, args []string) error {
	path := args[0]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(3)
	}

	d := dialect.Default()
	if runDialectFile != "" {
		d, err = dialect.LoadProfile(runDialectFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(3)
		}
	}

	toks, lexErrs := lexer.Tokenize(string(source), d)
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		os.Exit(2)
	}

	p := parser.New(toks, d)
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		os.Exit(2)
	}

	if runDumpAST {
		fmt.Println(prog.String())
	}

	var cov *coverage.Counter
	if runCoverageFile != "" {
		if runResetCoverage {
			cov = coverage.NewCounter(path)
		} else {
			cov, err = coverage.Load(runCoverageFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(3)
			}
		}
	}

	var overlay *debug.Overlay
	if runTrace {
		overlay = debug.NewOverlay(os.Stderr)
		overlay.SetTrace(true)
	}

	opts := []engine.Option{engine.WithOutput(os.Stdout)}
	if overlay != nil {
		opts = append(opts, engine.WithOverlay(overlay))
	}
	if cov != nil {
		opts = append(opts, engine.WithCoverage(cov))
	}

	e := engine.New(prog, d, opts...)
	runErr := e.Run()

	if cov != nil {
		if err := cov.Save(runCoverageFile, path, time.Now().UTC().Format(time.RFC3339)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}

	if e.Status() == engine.StatusStopped {
		os.Exit(4)
	}
	return nil
}
