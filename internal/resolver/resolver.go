// Package resolver implements the static pass described in spec.md §4.3: it
// walks the AST once, before evaluation, and produces a side-table mapping
// every resolved Expression to the number of enclosing-scope hops the
// evaluator must walk at runtime to find its binding. The scope-stack
// push/pop discipline here is adapted from the block-resolution walk in
// mna/nenuphar's lang/resolver package (itself derived from the Starlark
// resolver), narrowed to Lox's much smaller binding-form surface: only
// blocks, function declarations+parameters, and var declarations ever open
// or populate a scope.
package resolver

import (
	"fmt"

	"github.com/funvibe/loxvm/internal/ast"
	"github.com/funvibe/loxvm/internal/token"
	"github.com/google/uuid"
)

// Error is a static resolution error (spec.md §7): "Can't read local
// variable in its own initializer.", "Already a variable with this name in
// this scope.", "Can't return from top-level code."
type Error struct {
	Token   token.Token
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Token.Line, e.Message)
}

type functionType int

const (
	functionTypeNone functionType = iota
	functionTypeFunction
)

// Resolver walks a statement list exactly once and fills Depths.
type Resolver struct {
	// Depths maps a resolved expression's identity to its scope depth.
	// Absence of an entry means "global" (spec.md §3's side-table contract).
	Depths map[uuid.UUID]int

	scopes    []map[string]bool // name -> "fully defined" flag
	currentFn functionType
	errors    []*Error
}

func New() *Resolver {
	return &Resolver{Depths: make(map[uuid.UUID]int)}
}

// Resolve runs the pass over a top-level statement list.
func (r *Resolver) Resolve(stmts []ast.Statement) []*Error {
	r.resolveStmts(stmts)
	return r.errors
}

func (r *Resolver) resolveStmts(stmts []ast.Statement) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Statement) {
	s.Accept(r)
}

func (r *Resolver) resolveExpr(e ast.Expression) {
	e.Accept(r)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return // globals are not tracked by the resolver (spec.md §4.3, §9)
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name.Lexeme]; exists {
		r.errors = append(r.errors, &Error{Token: name, Message: "Already a variable with this name in this scope."})
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) resolveLocal(expr ast.Expression, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.Depths[expr.ID()] = len(r.scopes) - 1 - i
			return
		}
	}
	// not found in any local scope: leave unresolved, evaluator falls back
	// to a global lookup by name (spec.md §4.3, §9).
}

func (r *Resolver) resolveFunction(params []token.Token, body []ast.Statement, fnType functionType) {
	enclosingFn := r.currentFn
	r.currentFn = fnType

	r.beginScope()
	for _, p := range params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(body)
	r.endScope()

	r.currentFn = enclosingFn
}

// ---- Visitor: expressions ----

func (r *Resolver) VisitLiteralExpr(e *ast.LiteralExpr) interface{} { return nil }

func (r *Resolver) VisitGroupingExpr(e *ast.GroupingExpr) interface{} {
	r.resolveExpr(e.Expression)
	return nil
}

func (r *Resolver) VisitUnaryExpr(e *ast.UnaryExpr) interface{} {
	r.resolveExpr(e.Right)
	return nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.BinaryExpr) interface{} {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.LogicalExpr) interface{} {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil
}

func (r *Resolver) VisitVariableExpr(e *ast.VariableExpr) interface{} {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
			r.errors = append(r.errors, &Error{Token: e.Name, Message: "Can't read local variable in its own initializer."})
		}
	}
	r.resolveLocal(e, e.Name)
	return nil
}

func (r *Resolver) VisitAssignExpr(e *ast.AssignExpr) interface{} {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name)
	return nil
}

func (r *Resolver) VisitCallExpr(e *ast.CallExpr) interface{} {
	r.resolveExpr(e.Callee)
	for _, a := range e.Args {
		r.resolveExpr(a)
	}
	return nil
}

// ---- Visitor: statements ----

func (r *Resolver) VisitExpressionStmt(s *ast.ExpressionStmt) interface{} {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitPrintStmt(s *ast.PrintStmt) interface{} {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitVarStmt(s *ast.VarStmt) interface{} {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
	return nil
}

func (r *Resolver) VisitBlockStmt(s *ast.BlockStmt) interface{} {
	r.beginScope()
	r.resolveStmts(s.Statements)
	r.endScope()
	return nil
}

func (r *Resolver) VisitIfStmt(s *ast.IfStmt) interface{} {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.ThenBranch)
	if s.ElseBranch != nil {
		r.resolveStmt(s.ElseBranch)
	}
	return nil
}

func (r *Resolver) VisitWhileStmt(s *ast.WhileStmt) interface{} {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
	return nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.FunctionStmt) interface{} {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s.Params, s.Body, functionTypeFunction)
	return nil
}

func (r *Resolver) VisitReturnStmt(s *ast.ReturnStmt) interface{} {
	if r.currentFn == functionTypeNone {
		r.errors = append(r.errors, &Error{Token: s.Keyword, Message: "Can't return from top-level code."})
	}
	if s.Value != nil {
		r.resolveExpr(s.Value)
	}
	return nil
}
