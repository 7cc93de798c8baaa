// ==============================================================================================
// FILE: evaluator/evaluator_test.go
// ==============================================================================================
// PURPOSE: Exercises Evaluator.Interpret on small programs run through the
//          sibling lexer/parser/resolver packages (runSource), plus direct
//          checks of isTruthy, isEqual and eval on hand-built values and
//          AST fragments.
// ==============================================================================================

package evaluator

import (
	"testing"

	"lucid/ast"
	"lucid/lexer"
	"lucid/object"
	"lucid/parser"
	"lucid/report"
	"lucid/resolver"
	"lucid/token"
)

// runSource pushes source through the full pipeline (this package's own
// lexer/parser/resolver siblings) so Evaluator tests read like small
// programs instead of hand-assembled ASTs.
func runSource(t *testing.T, source string) *report.Collecting {
	t.Helper()
	rep := report.NewCollecting()
	tokens := lexer.ScanTokens(source, rep)
	if rep.HadCompileError() {
		return rep
	}
	stmts := parser.Parse(tokens, rep)
	if rep.HadCompileError() {
		return rep
	}
	resolver.Resolve(stmts, rep)
	if rep.HadCompileError() {
		return rep
	}
	New(rep).Interpret(stmts)
	return rep
}

func TestInterpretUndefinedVariableReportsRuntimeError(t *testing.T) {
	rep := runSource(t, `print missing;`)
	if !rep.HadRuntimeError() {
		t.Fatal("expected a runtime error for an undefined variable")
	}
}

func TestInterpretDivisionByZeroFollowsIEEESemantics(t *testing.T) {
	// spec: no special error, just host float64 Inf/NaN.
	rep := runSource(t, `print 1 / 0;`)
	if rep.HadRuntimeError() {
		t.Fatal("division by zero should not raise a runtime error")
	}
}

func TestInterpretCallingNonCallableReportsRuntimeError(t *testing.T) {
	rep := runSource(t, `
		var x = 1;
		x();
	`)
	if !rep.HadRuntimeError() {
		t.Fatal("expected a runtime error for calling a non-callable")
	}
}

func TestIsTruthyRules(t *testing.T) {
	cases := []struct {
		value object.Value
		want  bool
	}{
		{object.NilValue, false},
		{object.False, false},
		{object.True, true},
		{&object.Number{Value: 0}, true},
		{&object.String{Value: ""}, true},
	}
	for _, c := range cases {
		if got := isTruthy(c.value); got != c.want {
			t.Errorf("isTruthy(%v) = %t, want %t", c.value, got, c.want)
		}
	}
}

func TestIsEqualDifferentTypesAreNeverEqual(t *testing.T) {
	if isEqual(&object.Number{Value: 0}, object.False) {
		t.Error("0 and false must not compare equal")
	}
	if isEqual(object.NilValue, object.False) {
		t.Error("nil and false must not compare equal")
	}
}

func TestEvalUnaryNegationRequiresNumber(t *testing.T) {
	rep := report.NewCollecting()
	e := New(rep)
	_, sig := e.eval(&ast.Unary{
		Operator: token.Token{Type: token.MINUS, Lexeme: "-"},
		Right:    &ast.Literal{Value: "not a number"},
	})
	if sig == nil || sig.kind != signalError {
		t.Fatal("expected a runtime error signal negating a non-number")
	}
}
