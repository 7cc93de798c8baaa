package object

import "testing"

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", &Number{Value: 10})

	val, ok := env.Get("x")
	if !ok {
		t.Fatal("expected x to be defined")
	}
	if val.(*Number).Value != 10 {
		t.Fatalf("expected 10, got %v", val)
	}
}

func TestEnvironmentGetFallsBackToOuter(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", &Number{Value: 1})
	inner := NewEnclosed(outer)

	val, ok := inner.Get("x")
	if !ok || val.(*Number).Value != 1 {
		t.Fatalf("expected inner.Get to find outer's x, got %v, %v", val, ok)
	}
}

func TestEnvironmentAssignUndefinedFails(t *testing.T) {
	env := NewEnvironment()
	if env.Assign("never defined", &Number{Value: 1}) {
		t.Fatal("expected Assign to fail for an undefined name")
	}
}

func TestEnvironmentAssignMutatesDefiningFrame(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", &Number{Value: 1})
	inner := NewEnclosed(outer)

	if !inner.Assign("x", &Number{Value: 2}) {
		t.Fatal("expected Assign to succeed")
	}
	val, _ := outer.Get("x")
	if val.(*Number).Value != 2 {
		t.Fatalf("expected outer's x to be mutated to 2, got %v", val)
	}
}

func TestEnvironmentGetAtAndAssignAt(t *testing.T) {
	global := NewEnvironment()
	global.Define("x", &Number{Value: 1})
	middle := NewEnclosed(global)
	inner := NewEnclosed(middle)

	if got := inner.GetAt(2, "x"); got.(*Number).Value != 1 {
		t.Fatalf("expected GetAt(2) to reach global x=1, got %v", got)
	}

	inner.AssignAt(2, "x", &Number{Value: 99})
	val, _ := global.Get("x")
	if val.(*Number).Value != 99 {
		t.Fatalf("expected AssignAt(2) to mutate global x, got %v", val)
	}
}

func TestAncestorWalksOuterChain(t *testing.T) {
	global := NewEnvironment()
	middle := NewEnclosed(global)
	inner := NewEnclosed(middle)

	if inner.Ancestor(0) != inner {
		t.Error("Ancestor(0) should be the frame itself")
	}
	if inner.Ancestor(1) != middle {
		t.Error("Ancestor(1) should be the enclosing frame")
	}
	if inner.Ancestor(2) != global {
		t.Error("Ancestor(2) should be the global frame")
	}
}
