// ==============================================================================================
// FILE: evaluator/evaluator.go
// ==============================================================================================
// PACKAGE: evaluator
// PURPOSE: Tree-walking evaluator. Statement execution and expression
//          evaluation over the resolved AST, dispatching resolved locals
//          through object.Environment's GetAt/AssignAt and falling back to
//          dynamic global lookup for everything else.
//          Operator dispatch and truthiness/equality rules grounded on
//          amoghasbhardwaj-Eloquence/evaluator/evaluator.go, re-pointed at
//          spec.md's operator set; control flow uses a dedicated signal sum
//          type instead of that file's sentinel-object convention, and
//          instead of the panic/recover style shown in
//          other_examples' tejas0709-loxinterpreter interpreter.go, per
//          spec.md §9's explicit preference.
// ==============================================================================================

package evaluator

import (
	"fmt"

	"lucid/ast"
	"lucid/object"
	"lucid/report"
	"lucid/token"
)

// signalKind distinguishes the two ways control can leave the normal
// statement-execution path.
type signalKind int

const (
	signalReturn signalKind = iota
	signalError
)

// signal is the closed sum type execute/executeBlock/eval thread upward instead of
// relying on panic/recover or a reused error interface: a `return` inside a
// function and a runtime error both need to unwind through an arbitrary
// number of enclosing blocks/loops, but must be told apart at the call
// boundary (a Return stops at the call; a runtimeError propagates past it
// out to the top level).
type signal struct {
	kind  signalKind
	value object.Value     // set when kind == signalReturn
	err   *RuntimeError     // set when kind == signalError
}

// RuntimeError is a Lucid runtime fault: an operator applied to the wrong
// type, a call to a non-callable, an undefined variable, or an arity
// mismatch. Token pins the offending operator/name for line reporting.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func newReturn(v object.Value) *signal   { return &signal{kind: signalReturn, value: v} }
func newError(tok token.Token, msg string, args ...interface{}) *signal {
	return &signal{kind: signalError, err: &RuntimeError{Token: tok, Message: fmt.Sprintf(msg, args...)}}
}

// Evaluator walks a resolved program, holding the globals frame and the
// native functions registered onto it.
type Evaluator struct {
	Globals *object.Environment
	rep     report.Reporter
	env     *object.Environment
}

// New builds an Evaluator with clock() and any other native functions
// already defined in Globals.
func New(rep report.Reporter) *Evaluator {
	globals := object.NewEnvironment()
	e := &Evaluator{Globals: globals, rep: rep, env: globals}
	registerNatives(globals)
	return e
}

// Interpret executes a top-level statement list, reporting the first
// runtime error it hits (if any) through the configured Reporter.
func (e *Evaluator) Interpret(statements []ast.Stmt) {
	for _, stmt := range statements {
		if sig := e.execute(stmt); sig != nil && sig.kind == signalError {
			e.rep.RuntimeError(sig.err.Token, sig.err.Message)
			return
		}
	}
}

// --- statement execution ---

func (e *Evaluator) executeBlock(statements []ast.Stmt, env *object.Environment) *signal {
	previous := e.env
	e.env = env
	defer func() { e.env = previous }()

	for _, stmt := range statements {
		if sig := e.execute(stmt); sig != nil {
			return sig
		}
	}
	return nil
}

func (e *Evaluator) execute(stmt ast.Stmt) *signal {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, sig := e.eval(s.Expr)
		return sig

	case *ast.Print:
		val, sig := e.eval(s.Expr)
		if sig != nil {
			return sig
		}
		fmt.Println(stringify(val))
		return nil

	case *ast.Var:
		var val object.Value = object.NilValue
		if s.Initializer != nil {
			var sig *signal
			val, sig = e.eval(s.Initializer)
			if sig != nil {
				return sig
			}
		}
		e.env.Define(s.Name.Lexeme, val)
		return nil

	case *ast.Block:
		return e.executeBlock(s.Statements, object.NewEnclosed(e.env))

	case *ast.If:
		cond, sig := e.eval(s.Condition)
		if sig != nil {
			return sig
		}
		if isTruthy(cond) {
			return e.execute(s.Then)
		} else if s.Else != nil {
			return e.execute(s.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, sig := e.eval(s.Condition)
			if sig != nil {
				return sig
			}
			if !isTruthy(cond) {
				return nil
			}
			if sig := e.execute(s.Body); sig != nil {
				return sig
			}
		}

	case *ast.Function:
		fn := &object.Function{Declaration: s, Closure: e.env}
		e.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.Return:
		var val object.Value = object.NilValue
		if s.Value != nil {
			var sig *signal
			val, sig = e.eval(s.Value)
			if sig != nil {
				return sig
			}
		}
		return newReturn(val)
	}

	return nil
}

// --- expression evaluation ---

func (e *Evaluator) eval(expr ast.Expr) (object.Value, *signal) {
	switch ex := expr.(type) {
	case *ast.Literal:
		return literalValue(ex.Value), nil

	case *ast.Grouping:
		return e.eval(ex.Expression)

	case *ast.Variable:
		return e.lookupVariable(ex.Name, ex.Depth)

	case *ast.Assign:
		val, sig := e.eval(ex.Value)
		if sig != nil {
			return nil, sig
		}
		if ex.Depth != nil {
			e.env.AssignAt(*ex.Depth, ex.Name.Lexeme, val)
		} else if !e.Globals.Assign(ex.Name.Lexeme, val) {
			return nil, newError(ex.Name, "Undefined variable '%s'.", ex.Name.Lexeme)
		}
		return val, nil

	case *ast.Logical:
		left, sig := e.eval(ex.Left)
		if sig != nil {
			return nil, sig
		}
		if ex.Operator.Type == token.OR {
			if isTruthy(left) {
				return left, nil
			}
		} else {
			if !isTruthy(left) {
				return left, nil
			}
		}
		return e.eval(ex.Right)

	case *ast.Unary:
		right, sig := e.eval(ex.Right)
		if sig != nil {
			return nil, sig
		}
		return e.evalUnary(ex.Operator, right)

	case *ast.Binary:
		left, sig := e.eval(ex.Left)
		if sig != nil {
			return nil, sig
		}
		right, sig := e.eval(ex.Right)
		if sig != nil {
			return nil, sig
		}
		return e.evalBinary(ex.Operator, left, right)

	case *ast.Call:
		return e.evalCall(ex)
	}

	return object.NilValue, nil
}

func (e *Evaluator) lookupVariable(name token.Token, depth *int) (object.Value, *signal) {
	if depth != nil {
		return e.env.GetAt(*depth, name.Lexeme), nil
	}
	if val, ok := e.Globals.Get(name.Lexeme); ok {
		return val, nil
	}
	return nil, newError(name, "Undefined variable '%s'.", name.Lexeme)
}

func literalValue(v interface{}) object.Value {
	switch val := v.(type) {
	case nil:
		return object.NilValue
	case bool:
		return object.NativeBool(val)
	case float64:
		return &object.Number{Value: val}
	case string:
		return &object.String{Value: val}
	default:
		return object.NilValue
	}
}

func (e *Evaluator) evalUnary(op token.Token, right object.Value) (object.Value, *signal) {
	switch op.Type {
	case token.MINUS:
		n, ok := right.(*object.Number)
		if !ok {
			return nil, newError(op, "Operand must be a number.")
		}
		return &object.Number{Value: -n.Value}, nil
	case token.BANG:
		return object.NativeBool(!isTruthy(right)), nil
	}
	return nil, newError(op, "Unknown unary operator '%s'.", op.Lexeme)
}

func (e *Evaluator) evalBinary(op token.Token, left, right object.Value) (object.Value, *signal) {
	switch op.Type {
	case token.PLUS:
		if ln, ok := left.(*object.Number); ok {
			if rn, ok := right.(*object.Number); ok {
				return &object.Number{Value: ln.Value + rn.Value}, nil
			}
		}
		if ls, ok := left.(*object.String); ok {
			if rs, ok := right.(*object.String); ok {
				return &object.String{Value: ls.Value + rs.Value}, nil
			}
		}
		return nil, newError(op, "Operands must be two numbers or two strings.")

	case token.MINUS:
		ln, rn, sig := numberOperands(op, left, right)
		if sig != nil {
			return nil, sig
		}
		return &object.Number{Value: ln - rn}, nil

	case token.STAR:
		ln, rn, sig := numberOperands(op, left, right)
		if sig != nil {
			return nil, sig
		}
		return &object.Number{Value: ln * rn}, nil

	case token.SLASH:
		ln, rn, sig := numberOperands(op, left, right)
		if sig != nil {
			return nil, sig
		}
		return &object.Number{Value: ln / rn}, nil

	case token.GREATER:
		ln, rn, sig := numberOperands(op, left, right)
		if sig != nil {
			return nil, sig
		}
		return object.NativeBool(ln > rn), nil

	case token.GREATER_EQUAL:
		ln, rn, sig := numberOperands(op, left, right)
		if sig != nil {
			return nil, sig
		}
		return object.NativeBool(ln >= rn), nil

	case token.LESS:
		ln, rn, sig := numberOperands(op, left, right)
		if sig != nil {
			return nil, sig
		}
		return object.NativeBool(ln < rn), nil

	case token.LESS_EQUAL:
		ln, rn, sig := numberOperands(op, left, right)
		if sig != nil {
			return nil, sig
		}
		return object.NativeBool(ln <= rn), nil

	case token.EQUAL_EQUAL:
		return object.NativeBool(isEqual(left, right)), nil

	case token.BANG_EQUAL:
		return object.NativeBool(!isEqual(left, right)), nil
	}

	return nil, newError(op, "Unknown binary operator '%s'.", op.Lexeme)
}

func numberOperands(op token.Token, left, right object.Value) (float64, float64, *signal) {
	ln, ok := left.(*object.Number)
	if !ok {
		return 0, 0, newError(op, "Operands must be numbers.")
	}
	rn, ok := right.(*object.Number)
	if !ok {
		return 0, 0, newError(op, "Operands must be numbers.")
	}
	return ln.Value, rn.Value, nil
}

func (e *Evaluator) evalCall(ex *ast.Call) (object.Value, *signal) {
	callee, sig := e.eval(ex.Callee)
	if sig != nil {
		return nil, sig
	}

	args := make([]object.Value, 0, len(ex.Arguments))
	for _, a := range ex.Arguments {
		val, sig := e.eval(a)
		if sig != nil {
			return nil, sig
		}
		args = append(args, val)
	}

	callable, ok := callee.(object.Callable)
	if !ok {
		return nil, newError(ex.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, newError(ex.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}

	switch fn := callable.(type) {
	case *object.NativeFunction:
		return fn.Fn(args), nil
	case *object.Function:
		return e.callFunction(fn, args)
	}

	return nil, newError(ex.Paren, "Can only call functions and classes.")
}

func (e *Evaluator) callFunction(fn *object.Function, args []object.Value) (object.Value, *signal) {
	callEnv := object.NewEnclosed(fn.Closure)
	for i, param := range fn.Declaration.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	sig := e.executeBlock(fn.Declaration.Body, callEnv)
	if sig == nil {
		return object.NilValue, nil
	}
	if sig.kind == signalReturn {
		return sig.value, nil
	}
	return nil, sig
}

// isTruthy treats nil and false as falsy; everything else, including 0 and
// the empty string, is truthy — matching spec.md §4.5's explicit rule.
func isTruthy(v object.Value) bool {
	switch val := v.(type) {
	case *object.Nil:
		return false
	case *object.Boolean:
		return val.Value
	default:
		return true
	}
}

// isEqual is strict: values of different runtime types are never equal,
// even nil compared against anything other than nil.
func isEqual(a, b object.Value) bool {
	switch av := a.(type) {
	case *object.Nil:
		_, ok := b.(*object.Nil)
		return ok
	case *object.Boolean:
		bv, ok := b.(*object.Boolean)
		return ok && av.Value == bv.Value
	case *object.Number:
		bv, ok := b.(*object.Number)
		return ok && av.Value == bv.Value
	case *object.String:
		bv, ok := b.(*object.String)
		return ok && av.Value == bv.Value
	default:
		return a == b
	}
}

func stringify(v object.Value) string {
	if v == nil {
		return "nil"
	}
	return v.Inspect()
}
