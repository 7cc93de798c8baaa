// ==============================================================================================
// FILE: resolver/resolver.go
// ==============================================================================================
// PACKAGE: resolver
// PURPOSE: Static pass over the AST that annotates every local Variable and
//          Assign node with its lexical hop distance, closing over Lucid's
//          scoping rules before the evaluator ever runs.
//          Algorithm grounded on original_source/src/resolver/resolver.py;
//          the Go field-annotation encoding is this package's own choice
//          (spec.md §9, option b) over an identity-keyed side-table.
// ==============================================================================================

package resolver

import (
	"lucid/ast"
	"lucid/report"
	"lucid/token"
)

type functionType int

const (
	noFunction functionType = iota
	inFunction
)

// scope maps a name to whether its initializer has finished resolving.
// false means "declared but not yet ready" — referencing it in this state
// is the "read local variable in its own initializer" error.
type scope map[string]bool

// Resolver walks a parsed program once, before evaluation, recording each
// local variable reference's hop distance directly on the AST node.
type Resolver struct {
	rep             report.Reporter
	scopes          []scope
	currentFunction functionType
}

// New creates a Resolver that reports errors through rep.
func New(rep report.Reporter) *Resolver {
	return &Resolver{rep: rep}
}

// Resolve runs the pass over a top-level statement list.
func Resolve(statements []ast.Stmt, rep report.Reporter) {
	r := New(rep)
	r.resolveStmts(statements)
}

func (r *Resolver) resolveStmts(statements []ast.Stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	current := r.scopes[len(r.scopes)-1]
	if _, exists := current[name.Lexeme]; exists {
		r.rep.CompileError(name.Line, " at '"+name.Lexeme+"'", "Variable with this name already declared in this scope.")
	}
	current[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks scopes innermost-out; on first hit it records the hop
// distance into depth. A miss leaves depth nil — the name is a global.
func (r *Resolver) resolveLocal(name token.Token, depth **int) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			d := len(r.scopes) - 1 - i
			*depth = &d
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, ft functionType) {
	enclosing := r.currentFunction
	r.currentFunction = ft
	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
	r.currentFunction = enclosing
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.Expression:
		r.resolveExpr(s.Expr)
	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, inFunction)
	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.Print:
		r.resolveExpr(s.Expr)
	case *ast.Return:
		if r.currentFunction == noFunction {
			r.rep.CompileError(s.Keyword.Line, "", "Cannot return from top-level code.")
		}
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	}
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.Name, &e.Depth)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Arguments {
			r.resolveExpr(a)
		}
	case *ast.Grouping:
		r.resolveExpr(e.Expression)
	case *ast.Literal:
		// nothing to resolve
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if ready, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !ready {
				r.rep.CompileError(e.Name.Line, " at '"+e.Name.Lexeme+"'", "Cannot read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e.Name, &e.Depth)
	}
}
