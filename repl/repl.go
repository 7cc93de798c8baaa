// ==============================================================================================
// FILE: repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: Interactive Read-Eval-Print Loop. Line editing and history via
//          chzyer/readline, colorized output via fatih/color — grounded on
//          akashmaji946-go-mix/repl/repl.go's Start/executeWithRecovery
//          shape. The ".debug"/".clear"/".help" command set and the
//          token/AST dump panels are grounded on
//          amoghasbhardwaj-Eloquence/repl/repl.go's printTokens/printAST.
// ==============================================================================================

package repl

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"lucid"
	"lucid/ast"
	"lucid/lexer"
	"lucid/parser"
	"lucid/report"
	"lucid/token"
)

const prompt = "lucid> "

var (
	promptColor = color.New(color.FgCyan, color.Bold)
	infoColor   = color.New(color.FgHiBlack)
	errColor    = color.New(color.FgRed, color.Bold)
	okColor     = color.New(color.FgGreen)
)

// Options configures a REPL session.
type Options struct {
	NoColor bool
	Debug   bool
}

// Run starts the loop, reading from stdin via readline and writing to out.
// A single lucid.Interpreter persists across every line so that top-level
// var/fun declarations from one line are visible on the next.
func Run(out io.Writer, opts Options) error {
	if opts.NoColor {
		promptColor.DisableColor()
		infoColor.DisableColor()
		errColor.DisableColor()
		okColor.DisableColor()
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      promptColor.Sprint(prompt),
		HistoryFile: "",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	rep := report.NewConsole(out, opts.NoColor)
	in := lucid.New(rep)
	debug := opts.Debug

	infoColor.Fprintln(out, "Lucid REPL — .exit to quit, .help for commands")

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF (Ctrl+D) or readline.ErrInterrupt (Ctrl+C)
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		switch line {
		case "":
			continue
		case ".exit":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		case ".help":
			printHelp(out)
			continue
		case ".clear":
			in = lucid.New(rep)
			okColor.Fprintln(out, "Environment reset.")
			continue
		case ".debug":
			debug = !debug
			infoColor.Fprintf(out, "Debug mode: %t\n", debug)
			continue
		}

		rl.SaveHistory(line)

		if debug {
			printTokens(out, line, rep)
			printAST(out, line, rep)
		}

		rep.Reset()
		in.Run(line)
		if rep.HadCompileError() || rep.HadRuntimeError() {
			rep.Reset()
		}
	}
}

func printHelp(out io.Writer) {
	infoColor.Fprintln(out, "Commands:")
	infoColor.Fprintln(out, "  .exit   quit the REPL")
	infoColor.Fprintln(out, "  .clear  reset the interpreter's global environment")
	infoColor.Fprintln(out, "  .debug  toggle token/AST dump before evaluation")
	infoColor.Fprintln(out, "  .help   show this message")
}

func printTokens(out io.Writer, line string, rep report.Reporter) {
	scratch := report.NewCollecting()
	infoColor.Fprintln(out, "-- tokens --")
	for _, tok := range lexer.ScanTokens(line, scratch) {
		if tok.Type == token.EOF {
			break
		}
		fmt.Fprintf(out, "  %-14s %q\n", tok.Type, tok.Lexeme)
	}
}

func printAST(out io.Writer, line string, rep report.Reporter) {
	scratch := report.NewCollecting()
	tokens := lexer.ScanTokens(line, scratch)
	if scratch.HadCompileError() {
		return
	}
	statements := parser.Parse(tokens, scratch)
	if scratch.HadCompileError() {
		return
	}
	infoColor.Fprintln(out, "-- ast --")
	for _, stmt := range statements {
		fmt.Fprintf(out, "  %s\n", ast.Render(stmt))
	}
}
