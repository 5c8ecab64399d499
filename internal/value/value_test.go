package value_test

import (
	"testing"

	"github.com/funvibe/loxvm/internal/value"
)

func TestTruthy(t *testing.T) {
	cases := []struct {
		name string
		v    value.Value
		want bool
	}{
		{"false is falsey", value.Boolean(false), false},
		{"nil is falsey", value.Nil{}, false},
		{"true is truthy", value.Boolean(true), true},
		{"zero is truthy", value.Number(0), true},
		{"empty string is truthy", value.String(""), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := value.Truthy(c.v); got != c.want {
				t.Errorf("Truthy(%v) = %v, want %v", c.v, got, c.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b value.Value
		want bool
	}{
		{"nil == nil", value.Nil{}, value.Nil{}, true},
		{"numbers equal", value.Number(1), value.Number(1), true},
		{"numbers within epsilon", value.Number(1), value.Number(1 + 1e-17), true},
		{"numbers differ", value.Number(1), value.Number(2), false},
		{"strings equal", value.String("a"), value.String("a"), true},
		{"cross-variant never equal", value.Number(0), value.String(""), false},
		{"cross-variant nil/bool never equal", value.Nil{}, value.Boolean(false), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := value.Equal(c.a, c.b); got != c.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestNumberDisplay(t *testing.T) {
	cases := []struct {
		n    value.Number
		want string
	}{
		{3, "3"},
		{3.5, "3.5"},
		{-2, "-2"},
		{0, "0"},
	}
	for _, c := range cases {
		if got := c.n.Display(); got != c.want {
			t.Errorf("Number(%v).Display() = %q, want %q", float64(c.n), got, c.want)
		}
	}
}
