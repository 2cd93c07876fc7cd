package cmd

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/cocode/gobasic/internal/dialect"
	"github.com/cocode/gobasic/internal/lexer"
	"github.com/cocode/gobasic/internal/parser"
)

var parseVerbose bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a BASIC source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  parseScript,
}

func init() {
	parseCmd.Flags().BoolVar(&parseVerbose, "verbose", false, "print the full AST node tree (via kr/pretty) instead of reconstructed source text")
	rootCmd.AddCommand(parseCmd)
}

func parseScript(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(3)
	}

	d := dialect.Default()
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

	if parseVerbose {
		pretty.Println(prog)
		return nil
	}
	fmt.Println(prog.String())
	return nil
}
