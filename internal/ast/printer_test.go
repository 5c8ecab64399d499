package ast_test

import (
	"testing"

	"github.com/funvibe/loxvm/internal/ast"
	"github.com/funvibe/loxvm/internal/token"
)

func TestPrintNestedExpression(t *testing.T) {
	expr := ast.NewBinaryExpr(
		ast.NewUnaryExpr(token.Token{Type: token.Minus, Lexeme: "-"}, ast.NewLiteralExpr(123.0)),
		token.Token{Type: token.Star, Lexeme: "*"},
		ast.NewGroupingExpr(ast.NewLiteralExpr(45.67)),
	)
	p := &ast.Printer{}
	got := p.Print(expr)
	want := "(* (- 123) (group 45.67))"
	if got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrintCallExpression(t *testing.T) {
	expr := ast.NewCallExpr(
		ast.NewVariableExpr(token.Token{Type: token.Identifier, Lexeme: "f"}),
		token.Token{Type: token.RightParen, Lexeme: ")"},
		[]ast.Expression{ast.NewLiteralExpr(1.0), ast.NewLiteralExpr(2.0)},
	)
	p := &ast.Printer{}
	got := p.Print(expr)
	want := "(call f 1 2)"
	if got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}
