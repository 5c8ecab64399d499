// Package value defines the tagged runtime value union described in
// spec.md §3/§4.1: Number, String, Boolean, Nil, plus the two callable
// variants (NativeFunction, Function) defined alongside the evaluator in
// internal/interp, whose Callable interface embeds Value.
//
// The Type()/Display() pairing mirrors the teacher's evaluator.Object
// interface (internal/evaluator/object.go in funvibe/funxy), narrowed from
// its ~20-variant runtime down to the handful spec.md's data model names.
package value

import (
	"math"
	"strconv"
)

type Type string

const (
	TypeNumber Type = "NUMBER"
	TypeString Type = "STRING"
	TypeBool   Type = "BOOLEAN"
	TypeNil    Type = "NIL"
	TypeFunc   Type = "FUNCTION"
	TypeNative Type = "NATIVE_FUNCTION"
)

// Value is any runtime Lox value.
type Value interface {
	Type() Type
	// Display is the canonical textual form written by `print` (spec.md
	// §4.4) and used for string concatenation of non-string operands is
	// NOT implied by Display — `+` requires matching types, see §4.1.
	Display() string
}

// Number is an IEEE-754 double.
type Number float64

func (Number) Type() Type { return TypeNumber }

// Display formats the number the way the reference jlox does: an
// integer-valued double prints without a trailing ".0"; anything else uses
// Go's shortest round-trippable decimal form. This is the chosen policy for
// the open question in spec.md §9 ("Number display formatting").
func (n Number) Display() string {
	f := float64(n)
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if math.Trunc(f) == f && !math.IsNaN(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 1, 64)[:len(strconv.FormatFloat(f, 'f', 1, 64))-2]
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String is an immutable UTF-8 text value.
type String string

func (String) Type() Type        { return TypeString }
func (s String) Display() string { return string(s) }

// Boolean is true/false.
type Boolean bool

func (Boolean) Type() Type { return TypeBool }
func (b Boolean) Display() string {
	if b {
		return "true"
	}
	return "false"
}

// Nil is the single absent value.
type Nil struct{}

func (Nil) Type() Type      { return TypeNil }
func (Nil) Display() string { return "nil" }

// Epsilon is the tolerance used for Number equality (spec.md §3: "numbers
// compared with an epsilon tolerance").
const Epsilon = 2.220446049250313e-16 // machine epsilon for float64

// Equal implements spec.md §3's equality rule: same-variant structural
// equality, Nil==Nil is true, numbers compared within Epsilon, cross-variant
// is always false.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		if !ok {
			return false
		}
		return math.Abs(float64(av)-float64(bv)) < Epsilon
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Nil:
		_, ok := b.(Nil)
		return ok
	default:
		// Function/NativeFunction identity equality: same underlying Go value.
		return a == b
	}
}

// Truthy implements spec.md §3's truthiness rule: false and Nil are
// falsey; every other value (including 0 and "") is truthy.
func Truthy(v Value) bool {
	switch vv := v.(type) {
	case Nil:
		return false
	case Boolean:
		return bool(vv)
	default:
		return true
	}
}
