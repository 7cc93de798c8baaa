// ==============================================================================================
// FILE: evaluator/builtins.go
// ==============================================================================================
// PACKAGE: evaluator
// PURPOSE: Native functions installed into the globals frame before any
//          user code runs. Grounded on
//          amoghasbhardwaj-Eloquence/object/builtins.go's clock()
//          registration, re-pointed at spec.md §4.5's single native,
//          clock() -> wall-clock time in milliseconds as a Number.
// ==============================================================================================

package evaluator

import (
	"time"

	"lucid/object"
)

func registerNatives(globals *object.Environment) {
	globals.Define("clock", &object.NativeFunction{
		NativeName:  "clock",
		NativeArity: 0,
		Fn: func(args []object.Value) object.Value {
			return &object.Number{Value: float64(time.Now().UnixNano()) / float64(time.Millisecond)}
		},
	})
}
