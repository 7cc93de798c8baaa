// ==============================================================================================
// FILE: ast/printer.go
// ==============================================================================================
// PACKAGE: ast
// PURPOSE: Fully-parenthesized Lisp-like rendering of any Expr/Stmt, used
//          for --debug output and by the ast/parser tests. The rendered form
//          is not Lucid source syntax: the parser does not read it back, so
//          there is no print-then-reparse round trip.
//          Grounded on original_source's ast_printer.py.
// ==============================================================================================

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func parenthesize(name string, parts ...fmt.Stringer) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, p := range parts {
		b.WriteByte(' ')
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (e *Literal) String() string {
	switch v := e.Value.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (e *Grouping) String() string { return parenthesize("group", e.Expression) }
func (e *Unary) String() string    { return parenthesize(e.Operator.Lexeme, e.Right) }
func (e *Binary) String() string   { return parenthesize(e.Operator.Lexeme, e.Left, e.Right) }
func (e *Logical) String() string  { return parenthesize(e.Operator.Lexeme, e.Left, e.Right) }
func (e *Variable) String() string { return e.Name.Lexeme }

func (e *Assign) String() string {
	return parenthesize("= "+e.Name.Lexeme, e.Value)
}

func (e *Call) String() string {
	var b strings.Builder
	b.WriteString("(call ")
	b.WriteString(e.Callee.String())
	for _, a := range e.Arguments {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (s *Expression) String() string { return s.Expr.String() }
func (s *Print) String() string      { return parenthesize("print", s.Expr) }

func (s *Var) String() string {
	if s.Initializer == nil {
		return parenthesize("var " + s.Name.Lexeme)
	}
	return parenthesize("var "+s.Name.Lexeme, s.Initializer)
}

func (s *Block) String() string {
	var b strings.Builder
	b.WriteString("(block")
	for _, stmt := range s.Statements {
		b.WriteByte(' ')
		b.WriteString(stmt.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (s *If) String() string {
	if s.Else == nil {
		return parenthesize("if", stringerSlice{s.Condition, s.Then}...)
	}
	return parenthesize("if-else", stringerSlice{s.Condition, s.Then, s.Else}...)
}

func (s *While) String() string {
	return parenthesize("while", stringerSlice{s.Condition, s.Body}...)
}

func (s *Function) String() string {
	var b strings.Builder
	b.WriteString("(fun ")
	b.WriteString(s.Name.Lexeme)
	b.WriteString(" (")
	for i, p := range s.Params {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.Lexeme)
	}
	b.WriteString(")")
	for _, stmt := range s.Body {
		b.WriteByte(' ')
		b.WriteString(stmt.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (s *Return) String() string {
	if s.Value == nil {
		return "(return)"
	}
	return parenthesize("return", s.Value)
}

// stringerSlice adapts a mixed slice of Expr/Stmt (both fmt.Stringer) to the
// variadic parenthesize helper.
type stringerSlice []fmt.Stringer

// Render renders stmt the way Eloquence's ast tests exercise .String(); kept
// as a free function (rather than a method on Stmt) so callers that only
// have an Expr can use the same entry point. It is named Render because
// Print is already the print-statement node type.
func Render(node fmt.Stringer) string {
	if node == nil {
		return "nil"
	}
	return node.String()
}
