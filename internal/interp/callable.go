package interp

import (
	"fmt"

	"github.com/funvibe/loxvm/internal/ast"
	"github.com/funvibe/loxvm/internal/token"
	"github.com/funvibe/loxvm/internal/value"
)

// Callable is implemented by every value that `Call` expressions accept:
// Function (a closure) and NativeFunction (a host builtin). Callability is
// an invariant of these two variants, not a subtyping relationship — the
// set is closed (spec.md §9, "Dynamic dispatch").
type Callable interface {
	value.Value
	Arity() int
}

// Function is a closure: a name, parameter list, body, and the environment
// that was active at its declaration (spec.md §3/§5).
type Function struct {
	Name   string
	Params []token.Token
	Body   []ast.Statement
	Env    *Environment
}

func (f *Function) Type() value.Type { return value.TypeFunc }
func (f *Function) Arity() int       { return len(f.Params) }

// Display renders the way spec.md §4.4 specifies: "<fn NAME>". An anonymous
// function (none exist in this grammar, but Name can be empty defensively)
// falls back to "<fn>".
func (f *Function) Display() string {
	if f.Name == "" {
		return "<fn>"
	}
	return fmt.Sprintf("<fn %s>", f.Name)
}

// NativeFunction is a host-provided callable exposed in the global frame
// (spec.md §3/§6). Fn receives already-evaluated arguments and returns a
// Value or an error (only *RuntimeError is meaningful here).
type NativeFunction struct {
	NameStr string
	ArityN  int
	Fn      func(args []value.Value) (value.Value, error)
}

func (n *NativeFunction) Type() value.Type { return value.TypeNative }
func (n *NativeFunction) Arity() int       { return n.ArityN }
func (n *NativeFunction) Display() string  { return "<native fn>" }
