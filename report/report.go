// ==============================================================================================
// FILE: report/report.go
// ==============================================================================================
// PACKAGE: report
// PURPOSE: The stable diagnostic surface the core (lexer/parser/resolver/
//          evaluator) reports through. Hosts (CLI, REPL, tests) decide how
//          a diagnostic is rendered; the core reports diagnostics only
//          through this interface and never calls os.Exit. (The evaluator's
//          `print` statement writes program output to stdout itself.)
// ==============================================================================================

package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"lucid/token"
)

// Reporter is the host collaborator the core notifies on compile-time and
// runtime errors. Implementations are per-run values, never package-global
// singletons, so one source unit's error flags never leak into the next.
type Reporter interface {
	CompileError(line int, where, message string)
	RuntimeError(tok token.Token, message string)
	HadCompileError() bool
	HadRuntimeError() bool
	Reset()
}

// Console reports diagnostics to an io.Writer, colorized by severity
// (errors in red, location in a dimmer gray), grounded on
// akashmaji946-go-mix/repl's color-by-severity REPL output.
type Console struct {
	Out            io.Writer
	NoColor        bool
	hadCompile     bool
	hadRuntime     bool
	errorColor     *color.Color
	locationColor  *color.Color
}

// NewConsole builds a Console reporter writing to out.
func NewConsole(out io.Writer, noColor bool) *Console {
	c := &Console{
		Out:           out,
		NoColor:       noColor,
		errorColor:    color.New(color.FgRed, color.Bold),
		locationColor: color.New(color.FgHiBlack),
	}
	if noColor {
		c.errorColor.DisableColor()
		c.locationColor.DisableColor()
	}
	return c
}

func (c *Console) CompileError(line int, where, message string) {
	c.hadCompile = true
	loc := fmt.Sprintf("[line %d]", line)
	if where != "" {
		loc = fmt.Sprintf("[line %d] Error%s", line, where)
		c.locationColor.Fprint(c.Out, loc)
		c.errorColor.Fprintf(c.Out, ": %s\n", message)
		return
	}
	c.locationColor.Fprint(c.Out, loc)
	c.errorColor.Fprintf(c.Out, " Error: %s\n", message)
}

func (c *Console) RuntimeError(tok token.Token, message string) {
	c.hadRuntime = true
	c.errorColor.Fprintf(c.Out, "%s\n", message)
	c.locationColor.Fprintf(c.Out, "[line %d]\n", tok.Line)
}

func (c *Console) HadCompileError() bool { return c.hadCompile }
func (c *Console) HadRuntimeError() bool { return c.hadRuntime }

func (c *Console) Reset() {
	c.hadCompile = false
	c.hadRuntime = false
}

// Collecting records diagnostics in memory instead of rendering them,
// grounded on amoghasbhardwaj-Eloquence/parser's p.errors []string — used
// by package-level tests so assertions don't depend on terminal coloring.
type Collecting struct {
	CompileErrors []string
	RuntimeErrors []string
}

// NewCollecting builds an empty Collecting reporter.
func NewCollecting() *Collecting {
	return &Collecting{}
}

func (c *Collecting) CompileError(line int, where, message string) {
	c.CompileErrors = append(c.CompileErrors, fmt.Sprintf("[line %d] Error%s: %s", line, where, message))
}

func (c *Collecting) RuntimeError(tok token.Token, message string) {
	c.RuntimeErrors = append(c.RuntimeErrors, fmt.Sprintf("%s\n[line %d]", message, tok.Line))
}

func (c *Collecting) HadCompileError() bool { return len(c.CompileErrors) > 0 }
func (c *Collecting) HadRuntimeError() bool { return len(c.RuntimeErrors) > 0 }

func (c *Collecting) Reset() {
	c.CompileErrors = nil
	c.RuntimeErrors = nil
}
