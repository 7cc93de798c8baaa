package object

import "testing"

func TestNumberInspectTrimsTrailingZero(t *testing.T) {
	n := &Number{Value: 4}
	if got := n.Inspect(); got != "4" {
		t.Fatalf("expected 4, got %s", got)
	}
}

func TestNumberInspectKeepsFraction(t *testing.T) {
	n := &Number{Value: 3.5}
	if got := n.Inspect(); got != "3.5" {
		t.Fatalf("expected 3.5, got %s", got)
	}
}

func TestNativeBoolReturnsSingletons(t *testing.T) {
	if NativeBool(true) != True {
		t.Error("expected NativeBool(true) to be the True singleton")
	}
	if NativeBool(false) != False {
		t.Error("expected NativeBool(false) to be the False singleton")
	}
}

func TestNativeFunctionImplementsCallable(t *testing.T) {
	var c Callable = &NativeFunction{NativeName: "clock", NativeArity: 0}
	if c.Arity() != 0 {
		t.Fatalf("expected arity 0, got %d", c.Arity())
	}
	if c.Type() != NATIVE_VALUE {
		t.Fatalf("expected NATIVE_VALUE, got %s", c.Type())
	}
}
