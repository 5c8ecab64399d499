package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Printer renders an expression tree as a fully-parenthesized Lisp-like
// string, e.g. "(* (- 123) (group 45.67))". It exists only to back the CLI's
// `parse` subcommand (spec.md treats AST pretty-printing as an external
// diagnostic, not part of the evaluation core) and is never consulted by the
// resolver or evaluator.
type Printer struct{}

func (p *Printer) Print(e Expression) string {
	return e.Accept(p).(string)
}

func (p *Printer) VisitLiteralExpr(e *LiteralExpr) interface{} {
	if e.Value == nil {
		return "nil"
	}
	switch v := e.Value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (p *Printer) VisitGroupingExpr(e *GroupingExpr) interface{} {
	return p.parenthesize("group", e.Expression)
}

func (p *Printer) VisitUnaryExpr(e *UnaryExpr) interface{} {
	return p.parenthesize(e.Operator.Lexeme, e.Right)
}

func (p *Printer) VisitBinaryExpr(e *BinaryExpr) interface{} {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

func (p *Printer) VisitLogicalExpr(e *LogicalExpr) interface{} {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

func (p *Printer) VisitVariableExpr(e *VariableExpr) interface{} {
	return e.Name.Lexeme
}

func (p *Printer) VisitAssignExpr(e *AssignExpr) interface{} {
	return p.parenthesize("= "+e.Name.Lexeme, e.Value)
}

func (p *Printer) VisitCallExpr(e *CallExpr) interface{} {
	return p.parenthesize("call", append([]Expression{e.Callee}, e.Args...)...)
}

// Statement visits are unused by `parse` (which only prints the first
// statement's expression per spec.md §6) but are required to satisfy
// Visitor; they fall back to an empty rendering.
func (p *Printer) VisitExpressionStmt(s *ExpressionStmt) interface{} { return "" }
func (p *Printer) VisitPrintStmt(s *PrintStmt) interface{}           { return "" }
func (p *Printer) VisitVarStmt(s *VarStmt) interface{}               { return "" }
func (p *Printer) VisitBlockStmt(s *BlockStmt) interface{}           { return "" }
func (p *Printer) VisitIfStmt(s *IfStmt) interface{}                 { return "" }
func (p *Printer) VisitWhileStmt(s *WhileStmt) interface{}           { return "" }
func (p *Printer) VisitFunctionStmt(s *FunctionStmt) interface{}     { return "" }
func (p *Printer) VisitReturnStmt(s *ReturnStmt) interface{}         { return "" }

func (p *Printer) parenthesize(name string, exprs ...Expression) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(e.Accept(p).(string))
	}
	b.WriteByte(')')
	return b.String()
}
