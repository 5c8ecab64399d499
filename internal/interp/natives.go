package interp

import (
	"time"

	"github.com/funvibe/loxvm/internal/value"
)

// registerNatives populates env with the single native binding spec.md §6
// allows: a 0-arity `clock` returning wall-clock seconds as a float64, the
// only standard-library surface this language has (spec.md §1's Non-goals).
// Modeled on archevan/glox's GlobalFunctionClock, generalized to the
// NativeFunction shape the rest of this package's Callable interface uses.
func registerNatives(env *Environment) {
	env.Define("clock", &NativeFunction{
		NameStr: "clock",
		ArityN:  0,
		Fn: func(args []value.Value) (value.Value, error) {
			return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
}
