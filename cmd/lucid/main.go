// ==============================================================================================
// FILE: cmd/lucid/main.go
// ==============================================================================================
// PACKAGE: main
// PURPOSE: Command-line entry point. No arguments starts the REPL; one
//          argument runs that file; more than one is a usage error. Exit
//          codes follow the sysexits.h convention spec.md §6 calls for:
//          64 (usage), 65 (compile error), 70 (runtime error), 0 (success).
//          Flag/subcommand wiring grounded on
//          aledsdavies-opal/cmd/devcmd/main.go's cobra.Command pattern; the
//          run-file-vs-REPL dispatch is grounded on
//          amoghasbhardwaj-Eloquence/main.go's os.Args branch.
// ==============================================================================================

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lucid"
	"lucid/report"
	"lucid/repl"
)

const (
	exitOK          = 0
	exitUsage       = 64
	exitCompileErr  = 65
	exitRuntimeErr  = 70
)

var (
	noColor bool
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "lucid [script]",
	Short: "Lucid — a small dynamically-typed scripting language",
	Long: `Lucid interprets programs written in the Lucid language.
Run with no arguments to start an interactive REPL, or pass a single
script path to execute it directly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized diagnostic output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print tokens and the parsed AST before evaluating (REPL only)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitUsage)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return repl.Run(os.Stdout, repl.Options{NoColor: noColor, Debug: debug})
	}
	os.Exit(runFile(args[0]))
	return nil
}

func runFile(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lucid: %s\n", err)
		return exitUsage
	}

	rep := report.NewConsole(os.Stderr, noColor)
	hadCompileErr, hadRuntimeErr := lucid.Run(string(data), rep)

	switch {
	case hadCompileErr:
		return exitCompileErr
	case hadRuntimeErr:
		return exitRuntimeErr
	default:
		return exitOK
	}
}
