// ==============================================================================================
// FILE: lucid_test.go
// ==============================================================================================
// PACKAGE: lucid_test
// PURPOSE: End-to-end tests over the whole lexer->parser->resolver->
//          evaluator pipeline, driven through the public Interpreter API.
//          Style (external _test package, testify assert/require) grounded
//          on Tangerg-lynx/ai/model/chat's test files; the fixtures
//          themselves are grounded on spec.md §8's invariants and
//          end-to-end scenarios.
// ==============================================================================================

package lucid_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucid"
	"lucid/report"
)

// run executes source against a fresh Interpreter and returns everything
// printed plus the diagnostics collected along the way.
func run(t *testing.T, source string) (stdout string, rep *report.Collecting) {
	t.Helper()
	rep = report.NewCollecting()
	var buf bytes.Buffer
	withCapturedStdout(t, &buf, func() {
		lucid.Run(source, rep)
	})
	return buf.String(), rep
}

func TestArithmeticPrecedence(t *testing.T) {
	out, rep := run(t, `print 1 + 2 * 3;`)
	require.False(t, rep.HadCompileError())
	require.False(t, rep.HadRuntimeError())
	assert.Equal(t, "7\n", out)
}

func TestStringConcatenation(t *testing.T) {
	out, rep := run(t, `print "foo" + "bar";`)
	require.False(t, rep.HadRuntimeError())
	assert.Equal(t, "foobar\n", out)
}

func TestGlobalVariableMutation(t *testing.T) {
	out, rep := run(t, `
		var x = 1;
		x = x + 1;
		print x;
	`)
	require.False(t, rep.HadRuntimeError())
	assert.Equal(t, "2\n", out)
}

func TestBlockScopingShadowsOuter(t *testing.T) {
	out, _ := run(t, `
		var a = "outer";
		{
			var a = "inner";
			print a;
		}
		print a;
	`)
	assert.Equal(t, "inner\nouter\n", out)
}

func TestWhileLoop(t *testing.T) {
	out, _ := run(t, `
		var i = 0;
		var sum = 0;
		while (i < 5) {
			sum = sum + i;
			i = i + 1;
		}
		print sum;
	`)
	assert.Equal(t, "10\n", out)
}

func TestForLoopDesugaring(t *testing.T) {
	out, _ := run(t, `
		var total = 0;
		for (var i = 0; i < 4; i = i + 1) {
			total = total + i;
		}
		print total;
	`)
	assert.Equal(t, "6\n", out)
}

func TestFunctionClosureCapturesDefiningScope(t *testing.T) {
	out, rep := run(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				print count;
			}
			return increment;
		}
		var counter = makeCounter();
		counter();
		counter();
		counter();
	`)
	require.False(t, rep.HadRuntimeError())
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestRecursiveFunction(t *testing.T) {
	out, rep := run(t, `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
		print fib(10);
	`)
	require.False(t, rep.HadRuntimeError())
	assert.Equal(t, "55\n", out)
}

func TestLogicalShortCircuitReturnsOperandNotBool(t *testing.T) {
	out, _ := run(t, `print "hi" or "bye";`)
	assert.Equal(t, "hi\n", out)

	out2, _ := run(t, `print nil and "unreached";`)
	assert.Equal(t, "nil\n", out2)
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, rep := run(t, `print undefinedThing;`)
	assert.True(t, rep.HadRuntimeError())
}

func TestTypeMismatchOperatorIsRuntimeError(t *testing.T) {
	_, rep := run(t, `print "a" - 1;`)
	assert.True(t, rep.HadRuntimeError())
}

func TestReturnOutsideFunctionIsCompileError(t *testing.T) {
	_, rep := run(t, `return 1;`)
	assert.True(t, rep.HadCompileError())
}

func TestSelfReferenceInInitializerIsCompileError(t *testing.T) {
	_, rep := run(t, `
		var a = "outer";
		{
			var a = a;
		}
	`)
	assert.True(t, rep.HadCompileError())
}

func TestRedeclarationInSameScopeIsCompileError(t *testing.T) {
	_, rep := run(t, `
		{
			var a = 1;
			var a = 2;
		}
	`)
	assert.True(t, rep.HadCompileError())
}

func TestClockNativeFunctionReturnsNumber(t *testing.T) {
	_, rep := run(t, `print clock() >= 0;`)
	require.False(t, rep.HadRuntimeError())
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, rep := run(t, `
		fun add(a, b) { return a + b; }
		print add(1);
	`)
	assert.True(t, rep.HadRuntimeError())
}

func TestPersistentInterpreterAcrossMultipleRuns(t *testing.T) {
	rep := report.NewCollecting()
	in := lucid.New(rep)

	var buf bytes.Buffer
	withCapturedStdout(t, &buf, func() {
		in.Run(`var x = 10;`)
		in.Run(`print x;`)
	})

	require.False(t, rep.HadRuntimeError())
	assert.Equal(t, "10\n", buf.String())
}
