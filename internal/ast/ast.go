// Package ast defines the expression and statement node types produced by
// the parser and consumed by the resolver and evaluator.
//
// Every Expression carries a unique ID (a uuid.UUID assigned at construction
// time) so the resolver's expression->depth side-table can key on node
// identity rather than on structural equality: two textually identical
// expressions at different call sites must never collide in that table.
package ast

import (
	"github.com/funvibe/loxvm/internal/token"
	"github.com/google/uuid"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	Accept(v Visitor) interface{}
}

// Expression is a Node that yields a Value when evaluated. ID is a stable
// identity used by the resolver side-table.
type Expression interface {
	Node
	ID() uuid.UUID
}

// Statement is a Node executed for effect.
type Statement interface {
	Node
}

type exprID struct {
	id uuid.UUID
}

func newExprID() exprID { return exprID{id: uuid.New()} }

func (e exprID) ID() uuid.UUID { return e.id }

// ---- Expressions ----

type LiteralExpr struct {
	exprID
	Value interface{} // float64, string, bool, or nil
}

func NewLiteralExpr(value interface{}) *LiteralExpr {
	return &LiteralExpr{exprID: newExprID(), Value: value}
}
func (e *LiteralExpr) Accept(v Visitor) interface{} { return v.VisitLiteralExpr(e) }

type GroupingExpr struct {
	exprID
	Expression Expression
}

func NewGroupingExpr(expr Expression) *GroupingExpr {
	return &GroupingExpr{exprID: newExprID(), Expression: expr}
}
func (e *GroupingExpr) Accept(v Visitor) interface{} { return v.VisitGroupingExpr(e) }

type UnaryExpr struct {
	exprID
	Operator token.Token
	Right    Expression
}

func NewUnaryExpr(op token.Token, right Expression) *UnaryExpr {
	return &UnaryExpr{exprID: newExprID(), Operator: op, Right: right}
}
func (e *UnaryExpr) Accept(v Visitor) interface{} { return v.VisitUnaryExpr(e) }

type BinaryExpr struct {
	exprID
	Left     Expression
	Operator token.Token
	Right    Expression
}

func NewBinaryExpr(left Expression, op token.Token, right Expression) *BinaryExpr {
	return &BinaryExpr{exprID: newExprID(), Left: left, Operator: op, Right: right}
}
func (e *BinaryExpr) Accept(v Visitor) interface{} { return v.VisitBinaryExpr(e) }

type LogicalExpr struct {
	exprID
	Left     Expression
	Operator token.Token
	Right    Expression
}

func NewLogicalExpr(left Expression, op token.Token, right Expression) *LogicalExpr {
	return &LogicalExpr{exprID: newExprID(), Left: left, Operator: op, Right: right}
}
func (e *LogicalExpr) Accept(v Visitor) interface{} { return v.VisitLogicalExpr(e) }

type VariableExpr struct {
	exprID
	Name token.Token
}

func NewVariableExpr(name token.Token) *VariableExpr {
	return &VariableExpr{exprID: newExprID(), Name: name}
}
func (e *VariableExpr) Accept(v Visitor) interface{} { return v.VisitVariableExpr(e) }

type AssignExpr struct {
	exprID
	Name  token.Token
	Value Expression
}

func NewAssignExpr(name token.Token, value Expression) *AssignExpr {
	return &AssignExpr{exprID: newExprID(), Name: name, Value: value}
}
func (e *AssignExpr) Accept(v Visitor) interface{} { return v.VisitAssignExpr(e) }

type CallExpr struct {
	exprID
	Callee Expression
	Paren  token.Token // closing ')' token, used for arity error lines
	Args   []Expression
}

func NewCallExpr(callee Expression, paren token.Token, args []Expression) *CallExpr {
	return &CallExpr{exprID: newExprID(), Callee: callee, Paren: paren, Args: args}
}
func (e *CallExpr) Accept(v Visitor) interface{} { return v.VisitCallExpr(e) }

// ---- Statements ----

type ExpressionStmt struct {
	Expression Expression
}

func (s *ExpressionStmt) Accept(v Visitor) interface{} { return v.VisitExpressionStmt(s) }

type PrintStmt struct {
	Expression Expression
}

func (s *PrintStmt) Accept(v Visitor) interface{} { return v.VisitPrintStmt(s) }

type VarStmt struct {
	Name        token.Token
	Initializer Expression // nil if absent
}

func (s *VarStmt) Accept(v Visitor) interface{} { return v.VisitVarStmt(s) }

type BlockStmt struct {
	Statements []Statement
}

func (s *BlockStmt) Accept(v Visitor) interface{} { return v.VisitBlockStmt(s) }

type IfStmt struct {
	Condition  Expression
	ThenBranch Statement
	ElseBranch Statement // nil if absent
}

func (s *IfStmt) Accept(v Visitor) interface{} { return v.VisitIfStmt(s) }

type WhileStmt struct {
	Condition Expression
	Body      Statement
}

func (s *WhileStmt) Accept(v Visitor) interface{} { return v.VisitWhileStmt(s) }

type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Statement
}

func (s *FunctionStmt) Accept(v Visitor) interface{} { return v.VisitFunctionStmt(s) }

type ReturnStmt struct {
	Keyword token.Token
	Value   Expression // nil if bare `return;`
}

func (s *ReturnStmt) Accept(v Visitor) interface{} { return v.VisitReturnStmt(s) }

// Visitor is implemented by the resolver and the printer. The evaluator
// walks the AST with a type switch instead.
type Visitor interface {
	VisitLiteralExpr(e *LiteralExpr) interface{}
	VisitGroupingExpr(e *GroupingExpr) interface{}
	VisitUnaryExpr(e *UnaryExpr) interface{}
	VisitBinaryExpr(e *BinaryExpr) interface{}
	VisitLogicalExpr(e *LogicalExpr) interface{}
	VisitVariableExpr(e *VariableExpr) interface{}
	VisitAssignExpr(e *AssignExpr) interface{}
	VisitCallExpr(e *CallExpr) interface{}

	VisitExpressionStmt(s *ExpressionStmt) interface{}
	VisitPrintStmt(s *PrintStmt) interface{}
	VisitVarStmt(s *VarStmt) interface{}
	VisitBlockStmt(s *BlockStmt) interface{}
	VisitIfStmt(s *IfStmt) interface{}
	VisitWhileStmt(s *WhileStmt) interface{}
	VisitFunctionStmt(s *FunctionStmt) interface{}
	VisitReturnStmt(s *ReturnStmt) interface{}
}
