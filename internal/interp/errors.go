package interp

import (
	"fmt"

	"github.com/funvibe/loxvm/internal/value"
)

// RuntimeError is a true runtime failure (spec.md §4.5): it propagates to
// the top-level driver, which reports it and exits 70. It carries the
// source line of the operator/reference token responsible, per spec.md §7's
// taxonomy.
type RuntimeError struct {
	Message string
	Line    int
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s [line %d]", e.Message, e.Line)
}

// returnSignal is the structured non-local outcome used exclusively by
// Call to unwind out of a function body (spec.md §4.5, §9). It is modeled
// as its own error type — caught only where a call evaluates its callee's
// body — rather than as a second kind of successful result, so that every
// other statement executor can propagate it with a plain `return nil, err`
// without special-casing it. Any catcher other than Call seeing this value
// is an implementation bug (spec.md §4.5).
type returnSignal struct {
	Value value.Value
}

func (r *returnSignal) Error() string { return "return signal escaped its call (internal bug)" }
