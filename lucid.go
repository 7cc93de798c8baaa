// ==============================================================================================
// FILE: lucid.go
// ==============================================================================================
// PACKAGE: lucid
// PURPOSE: Root facade tying lexer -> parser -> resolver -> evaluator
//          together into the single entry point cmd/lucid and repl both
//          call. Replaces amoghasbhardwaj-Eloquence's tests/ (system_test.go
//          drove the pipeline ad hoc from main) and wasm/ (wasm_main.go
//          wired the same pipeline for a browser host) with one reusable,
//          host-agnostic Go API — see DESIGN.md for why those two teacher
//          directories could not be adapted directly instead.
// ==============================================================================================

package lucid

import (
	"lucid/evaluator"
	"lucid/lexer"
	"lucid/parser"
	"lucid/report"
	"lucid/resolver"
)

// Interpreter bundles a Reporter with the persistent evaluator state
// (globals + natives) that must survive across multiple Run calls in a
// REPL session.
type Interpreter struct {
	Reporter report.Reporter
	eval     *evaluator.Evaluator
}

// New builds an Interpreter reporting through rep. A fresh Interpreter is
// appropriate for a one-shot file run; a REPL keeps a single Interpreter
// alive across every line so that top-level var/fun declarations persist.
func New(rep report.Reporter) *Interpreter {
	return &Interpreter{Reporter: rep, eval: evaluator.New(rep)}
}

// Run lexes, parses, resolves, and evaluates source in order, short-
// circuiting after any stage that leaves the Reporter's compile-error flag
// set. Callers inspect Reporter.HadCompileError()/HadRuntimeError() after
// Run returns to decide an exit code (see cmd/lucid's mapping).
func (in *Interpreter) Run(source string) {
	tokens := lexer.ScanTokens(source, in.Reporter)
	if in.Reporter.HadCompileError() {
		return
	}

	statements := parser.Parse(tokens, in.Reporter)
	if in.Reporter.HadCompileError() {
		return
	}

	resolver.Resolve(statements, in.Reporter)
	if in.Reporter.HadCompileError() {
		return
	}

	in.eval.Interpret(statements)
}

// Run is a convenience for a single one-shot interpretation: it builds a
// throwaway Interpreter, runs source through it, and returns whether a
// compile error and/or a runtime error occurred.
func Run(source string, rep report.Reporter) (hadCompileError, hadRuntimeError bool) {
	in := New(rep)
	in.Run(source)
	return rep.HadCompileError(), rep.HadRuntimeError()
}
