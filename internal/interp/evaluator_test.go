package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/funvibe/loxvm/internal/interp"
	"github.com/funvibe/loxvm/internal/lexer"
	"github.com/funvibe/loxvm/internal/parser"
	"github.com/funvibe/loxvm/internal/resolver"
)

// run lexes, parses, resolves, and interprets source as the `run` CLI
// subcommand does, capturing stdout. It fails the test on any lex, parse,
// or resolve error since those scenarios are covered separately.
func run(t *testing.T, source string) (string, error) {
	t.Helper()
	tokens, lexErrs := lexer.New(source).ScanTokens()
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected lex errors: %v", lexErrs)
	}
	stmts, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	res := resolver.New()
	if errs := res.Resolve(stmts); len(errs) != 0 {
		t.Fatalf("unexpected resolve errors: %v", errs)
	}
	eval := interp.New(res.Depths)
	var buf bytes.Buffer
	eval.Out = &buf
	err := eval.Interpret(stmts, false)
	return buf.String(), err
}

func TestArithmeticAndPrint(t *testing.T) {
	out, err := run(t, `print 1 + 2;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "3\n" {
		t.Errorf("output = %q, want %q", out, "3\n")
	}
}

func TestStringConcatenation(t *testing.T) {
	out, err := run(t, `print "foo" + "bar";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "foobar\n" {
		t.Errorf("output = %q, want %q", out, "foobar\n")
	}
}

func TestBlockScopingShadowsOuter(t *testing.T) {
	out, err := run(t, `
		var a = "outer";
		{
			var a = "inner";
			print a;
		}
		print a;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "inner\nouter\n" {
		t.Errorf("output = %q, want %q", out, "inner\nouter\n")
	}
}

func TestIfElseBranching(t *testing.T) {
	out, err := run(t, `
		if (1 < 2) { print "yes"; } else { print "no"; }
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "yes\n" {
		t.Errorf("output = %q, want %q", out, "yes\n")
	}
}

func TestWhileLoop(t *testing.T) {
	out, err := run(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0\n1\n2\n" {
		t.Errorf("output = %q, want %q", out, "0\n1\n2\n")
	}
}

func TestClosureCounter(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() {
			var i = 0;
			fun count() {
				i = i + 1;
				print i;
			}
			return count;
		}
		var counter = makeCounter();
		counter();
		counter();
		counter();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n2\n3\n" {
		t.Errorf("output = %q, want %q", out, "1\n2\n3\n")
	}
}

func TestRecursiveFunction(t *testing.T) {
	out, err := run(t, `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
		print fib(8);
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "21\n" {
		t.Errorf("output = %q, want %q", out, "21\n")
	}
}

func TestMismatchedOperandsIsRuntimeError(t *testing.T) {
	_, err := run(t, `print 1 + "two";`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	rerr, ok := err.(*interp.RuntimeError)
	if !ok {
		t.Fatalf("error is %T, want *interp.RuntimeError", err)
	}
	if !strings.Contains(rerr.Message, "Operands must be two numbers or two strings.") {
		t.Errorf("message = %q", rerr.Message)
	}
	if rerr.Line != 1 {
		t.Errorf("line = %d, want 1", rerr.Line)
	}
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, `print 1 / 0;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	rerr, ok := err.(*interp.RuntimeError)
	if !ok {
		t.Fatalf("error is %T, want *interp.RuntimeError", err)
	}
	if rerr.Message != "Division by zero." {
		t.Errorf("message = %q, want %q", rerr.Message, "Division by zero.")
	}
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print undefined;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	rerr, ok := err.(*interp.RuntimeError)
	if !ok {
		t.Fatalf("error is %T, want *interp.RuntimeError", err)
	}
	if !strings.Contains(rerr.Message, "Undefined variable") {
		t.Errorf("message = %q", rerr.Message)
	}
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		var notAFunction = 1;
		notAFunction();
	`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	rerr, ok := err.(*interp.RuntimeError)
	if !ok {
		t.Fatalf("error is %T, want *interp.RuntimeError", err)
	}
	if rerr.Message != "Can only call functions." {
		t.Errorf("message = %q, want %q", rerr.Message, "Can only call functions.")
	}
}

func TestWrongArityIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		fun f(a, b) { return a + b; }
		f(1);
	`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	rerr, ok := err.(*interp.RuntimeError)
	if !ok {
		t.Fatalf("error is %T, want *interp.RuntimeError", err)
	}
	if rerr.Message != "Expected 2 arguments but got 1." {
		t.Errorf("message = %q, want %q", rerr.Message, "Expected 2 arguments but got 1.")
	}
}

func TestOrShortCircuitPreservesValue(t *testing.T) {
	out, err := run(t, `print "hi" or 2;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hi\n" {
		t.Errorf("output = %q, want %q", out, "hi\n")
	}
}

func TestAndShortCircuitPreservesValue(t *testing.T) {
	out, err := run(t, `print false and "unreached";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "false\n" {
		t.Errorf("output = %q, want %q", out, "false\n")
	}
}

func TestClockNativeIsCallable(t *testing.T) {
	out, err := run(t, `print clock() > 0;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "true\n" {
		t.Errorf("output = %q, want %q", out, "true\n")
	}
}
