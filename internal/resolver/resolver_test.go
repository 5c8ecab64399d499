package resolver_test

import (
	"testing"

	"github.com/funvibe/loxvm/internal/ast"
	"github.com/funvibe/loxvm/internal/lexer"
	"github.com/funvibe/loxvm/internal/parser"
	"github.com/funvibe/loxvm/internal/resolver"
)

func resolveSource(t *testing.T, source string) ([]ast.Statement, *resolver.Resolver, []*resolver.Error) {
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
	errs := res.Resolve(stmts)
	return stmts, res, errs
}

func TestResolveLocalDepth(t *testing.T) {
	stmts, res, errs := resolveSource(t, `
		var a = 1;
		{
			var b = 2;
			print a + b;
		}
	`)
	if len(errs) != 0 {
		t.Fatalf("unexpected resolve errors: %v", errs)
	}
	block := stmts[1].(*ast.BlockStmt)
	printStmt := block.Statements[1].(*ast.PrintStmt)
	bin := printStmt.Expression.(*ast.BinaryExpr)

	aRef := bin.Left.(*ast.VariableExpr)
	if _, ok := res.Depths[aRef.ID()]; ok {
		t.Errorf("global 'a' should have no depth entry, got one")
	}
	bRef := bin.Right.(*ast.VariableExpr)
	if depth, ok := res.Depths[bRef.ID()]; !ok || depth != 0 {
		t.Errorf("local 'b' depth = %v (ok=%v), want 0", depth, ok)
	}
}

func TestResolveClosureDepth(t *testing.T) {
	stmts, res, errs := resolveSource(t, `
		fun outer() {
			var x = 1;
			fun inner() {
				print x;
			}
		}
	`)
	if len(errs) != 0 {
		t.Fatalf("unexpected resolve errors: %v", errs)
	}
	outer := stmts[0].(*ast.FunctionStmt)
	inner := outer.Body[1].(*ast.FunctionStmt)
	printStmt := inner.Body[0].(*ast.PrintStmt)
	xRef := printStmt.Expression.(*ast.VariableExpr)
	if depth, ok := res.Depths[xRef.ID()]; !ok || depth != 1 {
		t.Errorf("depth of x from inner() = %v (ok=%v), want 1", depth, ok)
	}
}

func TestSelfReferentialInitializerIsError(t *testing.T) {
	_, _, errs := resolveSource(t, `
		{
			var a = a;
		}
	`)
	if len(errs) == 0 {
		t.Fatal("expected 'Can't read local variable in its own initializer.' error")
	}
}

func TestDuplicateLocalDeclarationIsError(t *testing.T) {
	_, _, errs := resolveSource(t, `
		{
			var a = 1;
			var a = 2;
		}
	`)
	if len(errs) == 0 {
		t.Fatal("expected 'Already a variable with this name in this scope.' error")
	}
}

func TestTopLevelReturnIsError(t *testing.T) {
	_, _, errs := resolveSource(t, `return 1;`)
	if len(errs) == 0 {
		t.Fatal("expected 'Can't return from top-level code.' error")
	}
}
