// Package cmd implements gobasic's command-line surface (spec.md §6):
// a cobra command tree mirroring cmd/dwscript/cmd's shape in the teacher
// codebase (persistent flags, a version template fed by ldflags, and an
// exitWithError helper for a clean top-level failure message).
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version, GitCommit, and BuildDate are overwritten at build time via
// -ldflags "-X github.com/cocode/gobasic/cmd/gobasic/cmd.Version=...".
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:     "gobasic",
	Short:   "A line-numbered BASIC interpreter",
	Long:    "gobasic lexes, parses, and executes classic line-numbered BASIC programs.",
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(
		"gobasic {{.Version}}\ncommit: " + GitCommit + "\nbuilt: " + BuildDate + "\n",
	)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "accepted by every subcommand but read by none (parse has its own --verbose)")
}

// Execute runs the root command, dispatching to whichever subcommand the
// arguments select.
func Execute() error {
	return rootCmd.Execute()
}

// exitWithError prints a formatted message to stderr and exits with
// status 1. No subcommand calls it: `run` exits with its own spec.md §6
// exit codes.
func exitWithError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
