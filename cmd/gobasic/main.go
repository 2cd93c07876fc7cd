// Command gobasic lexes, parses, and executes line-numbered BASIC
// programs (spec.md §6).
package main

import (
	"os"

	"github.com/cocode/gobasic/cmd/gobasic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
