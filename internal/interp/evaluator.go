// Package interp is the evaluation core: the Environment chain (spec.md
// §4.2), the Evaluator's recursive expression/statement dispatch (§4.4), and
// the error model tying them together (§4.5). Its top-level dispatch is
// modeled on funvibe/funxy's Evaluator.evalCore (internal/evaluator/
// evaluator.go): a single type switch over concrete AST node types, rather
// than the ast.Visitor double-dispatch internal/resolver uses — the same
// choice the teacher makes (evalCore is a switch even though its own ast
// package also defines a Visitor interface, used elsewhere for printing).
// Unlike the teacher, whose Object-sentinel isError(...) convention
// precedes any of its own goroutine-unsafe global state, every exported
// method here returns (value.Value, error) / error directly: idiomatic Go
// error handling for a package with no Go-interop boundary to smooth over.
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/funvibe/loxvm/internal/ast"
	"github.com/funvibe/loxvm/internal/resolver"
	"github.com/funvibe/loxvm/internal/value"
	"github.com/google/uuid"
)

// Evaluator walks a resolved statement list against a root Environment.
type Evaluator struct {
	Globals *Environment
	Out     io.Writer

	// depths is the resolver's expression_id -> depth side-table (spec.md
	// §3). Absence of an entry means "global".
	depths map[uuid.UUID]int
}

// New returns an Evaluator with a fresh global environment pre-populated
// with the native bindings spec.md §6 specifies.
func New(depths map[uuid.UUID]int) *Evaluator {
	globals := NewEnvironment(nil)
	registerNatives(globals)
	return &Evaluator{Globals: globals, Out: os.Stdout, depths: depths}
}

// Interpret is the top-level driver (spec.md §4.4): it runs statements
// sequentially against the global environment. When printExprResults is
// true (the `evaluate` CLI subcommand), a bare top-level expression
// statement prints its value the way a REPL would; nested blocks never do
// this regardless of the flag's value at the call site, since the flag is
// only consulted here, not threaded into executeBlock.
func (e *Evaluator) Interpret(stmts []ast.Statement, printExprResults bool) error {
	for _, stmt := range stmts {
		if printExprResults {
			if es, ok := stmt.(*ast.ExpressionStmt); ok {
				v, err := e.evaluate(es.Expression, e.Globals)
				if err != nil {
					return asRuntimeError(err)
				}
				fmt.Fprintln(e.Out, v.Display())
				continue
			}
		}
		if err := e.execute(stmt, e.Globals); err != nil {
			return asRuntimeError(err)
		}
	}
	return nil
}

// asRuntimeError converts any error escaping the top level to a
// *RuntimeError. A *returnSignal reaching here means Call failed to catch
// it: spec.md §4.5 calls this an implementation bug, but we still surface
// it as a runtime failure rather than panicking the whole driver.
func asRuntimeError(err error) error {
	if _, ok := err.(*returnSignal); ok {
		return &RuntimeError{Message: "return outside of a function call (internal bug)", Line: 0}
	}
	return err
}

// ---- statement execution ----

func (e *Evaluator) execute(stmt ast.Statement, env *Environment) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := e.evaluate(s.Expression, env)
		return err

	case *ast.PrintStmt:
		v, err := e.evaluate(s.Expression, env)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.Out, v.Display())
		return nil

	case *ast.VarStmt:
		var v value.Value = value.Nil{}
		if s.Initializer != nil {
			var err error
			v, err = e.evaluate(s.Initializer, env)
			if err != nil {
				return err
			}
		}
		env.Define(s.Name.Lexeme, v)
		return nil

	case *ast.BlockStmt:
		return e.executeBlock(s.Statements, NewEnvironment(env))

	case *ast.IfStmt:
		cond, err := e.evaluate(s.Condition, env)
		if err != nil {
			return err
		}
		if value.Truthy(cond) {
			return e.execute(s.ThenBranch, env)
		} else if s.ElseBranch != nil {
			return e.execute(s.ElseBranch, env)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := e.evaluate(s.Condition, env)
			if err != nil {
				return err
			}
			if !value.Truthy(cond) {
				return nil
			}
			if err := e.execute(s.Body, env); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := &Function{Name: s.Name.Lexeme, Params: s.Params, Body: s.Body, Env: env}
		env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var v value.Value = value.Nil{}
		if s.Value != nil {
			var err error
			v, err = e.evaluate(s.Value, env)
			if err != nil {
				return err
			}
		}
		return &returnSignal{Value: v}

	default:
		return &RuntimeError{Message: fmt.Sprintf("unhandled statement type %T", stmt), Line: 0}
	}
}

// executeBlock runs stmts against env (a child frame the caller already
// created) in order, stopping at the first error or return signal.
func (e *Evaluator) executeBlock(stmts []ast.Statement, env *Environment) error {
	for _, stmt := range stmts {
		if err := e.execute(stmt, env); err != nil {
			return err
		}
	}
	return nil
}

// ---- expression evaluation ----

func (e *Evaluator) evaluate(expr ast.Expression, env *Environment) (value.Value, error) {
	switch ex := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(ex.Value), nil

	case *ast.GroupingExpr:
		return e.evaluate(ex.Expression, env)

	case *ast.UnaryExpr:
		return e.evalUnary(ex, env)

	case *ast.BinaryExpr:
		return e.evalBinary(ex, env)

	case *ast.LogicalExpr:
		return e.evalLogical(ex, env)

	case *ast.VariableExpr:
		return e.lookupVariable(ex.Name.Lexeme, ex, env)

	case *ast.AssignExpr:
		v, err := e.evaluate(ex.Value, env)
		if err != nil {
			return nil, err
		}
		if depth, ok := e.depths[ex.ID()]; ok {
			env.AssignAt(depth, ex.Name.Lexeme, v)
		} else if err := e.Globals.Assign(ex.Name.Lexeme, v, ex.Name.Line); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.CallExpr:
		return e.evalCall(ex, env)

	default:
		return nil, &RuntimeError{Message: fmt.Sprintf("unhandled expression type %T", expr), Line: 0}
	}
}

func literalValue(v interface{}) value.Value {
	switch lit := v.(type) {
	case float64:
		return value.Number(lit)
	case string:
		return value.String(lit)
	case bool:
		return value.Boolean(lit)
	case nil:
		return value.Nil{}
	default:
		return value.Nil{}
	}
}

// lookupVariable implements spec.md §4.4's Variable rule: use the
// resolver's recorded depth via GetAt when present, else fall back to a
// dynamic global lookup by name.
func (e *Evaluator) lookupVariable(name string, expr ast.Expression, env *Environment) (value.Value, error) {
	if depth, ok := e.depths[expr.ID()]; ok {
		return env.GetAt(depth, name), nil
	}
	return e.Globals.Get(name, exprLine(expr))
}

// exprLine recovers a line number for error reporting from whichever
// expression variant carries a token; VariableExpr is the only caller today.
func exprLine(expr ast.Expression) int {
	if v, ok := expr.(*ast.VariableExpr); ok {
		return v.Name.Line
	}
	return 0
}

func (e *Evaluator) evalLogical(ex *ast.LogicalExpr, env *Environment) (value.Value, error) {
	left, err := e.evaluate(ex.Left, env)
	if err != nil {
		return nil, err
	}
	// Short-circuit, value-preserving: never coerce `left` to Boolean
	// (spec.md §4.4, testable property 4).
	if ex.Operator.Lexeme == "or" {
		if value.Truthy(left) {
			return left, nil
		}
	} else { // "and"
		if !value.Truthy(left) {
			return left, nil
		}
	}
	return e.evaluate(ex.Right, env)
}

func (e *Evaluator) evalCall(ex *ast.CallExpr, env *Environment) (value.Value, error) {
	callee, err := e.evaluate(ex.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(ex.Args))
	for i, a := range ex.Args {
		v, err := e.evaluate(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, &RuntimeError{Message: "Can only call functions.", Line: ex.Paren.Line}
	}
	if len(args) != callable.Arity() {
		return nil, &RuntimeError{
			Message: fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(args)),
			Line:    ex.Paren.Line,
		}
	}

	switch fn := callable.(type) {
	case *NativeFunction:
		return fn.Fn(args)
	case *Function:
		return e.callFunction(fn, args)
	default:
		return nil, &RuntimeError{Message: "Can only call functions.", Line: ex.Paren.Line}
	}
}

// callFunction implements spec.md §4.4's Call rule for Function values: a
// new frame parented by the closure's captured environment, parameters
// bound in order, body executed as a block. A returnSignal is the only
// error variant Call ever absorbs instead of propagating — every other
// error keeps unwinding (spec.md §4.5).
func (e *Evaluator) callFunction(fn *Function, args []value.Value) (value.Value, error) {
	callEnv := NewEnvironment(fn.Env)
	for i, p := range fn.Params {
		callEnv.Define(p.Lexeme, args[i])
	}

	err := e.executeBlock(fn.Body, callEnv)
	if err == nil {
		return value.Nil{}, nil
	}
	if ret, ok := err.(*returnSignal); ok {
		return ret.Value, nil
	}
	return nil, err
}
