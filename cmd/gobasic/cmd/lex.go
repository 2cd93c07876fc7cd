package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cocode/gobasic/internal/dialect"
	"github.com/cocode/gobasic/internal/lexer"
	"github.com/cocode/gobasic/internal/token"
)

var (
	lexShowPos  bool
	lexOnlyErrs bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a BASIC source file and print its tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  lexScript,
}

func init() {
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "include the line:column of each token")
	lexCmd.Flags().BoolVar(&lexOnlyErrs, "only-errors", false, "print only lexical errors, not the token stream")
	rootCmd.AddCommand(lexCmd)
}

func lexScript(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(3)
	}

	toks, errs := lexer.Tokenize(string(source), dialect.Default())

	if !lexOnlyErrs {
		for _, t := range toks {
			printToken(t)
		}
	}
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	if len(errs) > 0 {
		os.Exit(2)
	}
	return nil
}

func printToken(t token.Token) {
	if lexShowPos {
		fmt.Printf("%s(%q)@%s\n", t.Type, t.Literal, t.Pos)
		return
	}
	fmt.Printf("%s(%q)\n", t.Type, t.Literal)
}
