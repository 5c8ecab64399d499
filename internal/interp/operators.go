package interp

import (
	"github.com/funvibe/loxvm/internal/ast"
	"github.com/funvibe/loxvm/internal/token"
	"github.com/funvibe/loxvm/internal/value"
)

// evalUnary implements spec.md §4.1's unary `-`/`!` rows.
func (e *Evaluator) evalUnary(ex *ast.UnaryExpr, env *Environment) (value.Value, error) {
	right, err := e.evaluate(ex.Right, env)
	if err != nil {
		return nil, err
	}
	switch ex.Operator.Type {
	case token.Minus:
		n, ok := right.(value.Number)
		if !ok {
			return nil, &RuntimeError{Message: "Operand must be a number.", Line: ex.Operator.Line}
		}
		return -n, nil
	case token.Bang:
		return value.Boolean(!value.Truthy(right)), nil
	default:
		return nil, &RuntimeError{Message: "Unknown unary operator.", Line: ex.Operator.Line}
	}
}

// evalBinary implements spec.md §4.1's binary operator table. Left is fully
// evaluated before right, and both before the operator is applied
// (spec.md §4.4: "left-to-right, fully evaluated before dispatch").
func (e *Evaluator) evalBinary(ex *ast.BinaryExpr, env *Environment) (value.Value, error) {
	left, err := e.evaluate(ex.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(ex.Right, env)
	if err != nil {
		return nil, err
	}
	line := ex.Operator.Line

	switch ex.Operator.Type {
	case token.Plus:
		if ln, lok := left.(value.Number); lok {
			if rn, rok := right.(value.Number); rok {
				return ln + rn, nil
			}
		}
		if ls, lok := left.(value.String); lok {
			if rs, rok := right.(value.String); rok {
				return ls + rs, nil
			}
		}
		return nil, &RuntimeError{Message: "Operands must be two numbers or two strings.", Line: line}

	case token.Minus:
		ln, rn, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil

	case token.Star:
		ln, rn, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil

	case token.Slash:
		ln, rn, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		if rn == 0 {
			return nil, &RuntimeError{Message: "Division by zero.", Line: line}
		}
		return ln / rn, nil

	case token.Greater:
		ln, rn, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return value.Boolean(ln > rn), nil

	case token.GreaterEqual:
		ln, rn, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return value.Boolean(ln >= rn), nil

	case token.Less:
		ln, rn, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return value.Boolean(ln < rn), nil

	case token.LessEqual:
		ln, rn, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return value.Boolean(ln <= rn), nil

	case token.EqualEqual:
		return value.Boolean(value.Equal(left, right)), nil

	case token.BangEqual:
		return value.Boolean(!value.Equal(left, right)), nil

	default:
		return nil, &RuntimeError{Message: "Unknown binary operator.", Line: line}
	}
}

func numberOperands(left, right value.Value, line int) (value.Number, value.Number, error) {
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok || !rok {
		return 0, 0, &RuntimeError{Message: "Operands must be numbers.", Line: line}
	}
	return ln, rn, nil
}
