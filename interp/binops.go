package interp

import (
	"github.com/cwbudde/go-tlox/errors"
	"github.com/cwbudde/go-tlox/token"
)

// evalBinaryOp implements the fresh (non-assigning) binary operator table in
// spec §4.6. Results are always weak: strength only pins storage, not
// transient expression values.
func evalBinaryOp(op token.Token, left, right Value) (Value, *errors.RuntimeError) {
	switch op.Type {
	case token.EQUAL_EQUAL:
		return Equal(left, right), nil
	case token.BANG_EQUAL:
		return NotEqual(left, right), nil
	case token.PLUS:
		return evalPlus(op, left, right)
	case token.MINUS:
		return numericBinary(op, left, right, func(a, b float64) float64 { return a - b })
	case token.STAR:
		return numericBinary(op, left, right, func(a, b float64) float64 { return a * b })
	case token.SLASH:
		return numericBinary(op, left, right, func(a, b float64) float64 { return a / b })
	case token.MOD:
		return numericBinary(op, left, right, euclideanMod)
	case token.GREATER:
		return comparisonBinary(op, left, right, func(a, b float64) bool { return a > b })
	case token.GREATER_EQUAL:
		return comparisonBinary(op, left, right, func(a, b float64) bool { return a >= b })
	case token.LESS:
		return comparisonBinary(op, left, right, func(a, b float64) bool { return a < b })
	case token.LESS_EQUAL:
		return comparisonBinary(op, left, right, func(a, b float64) bool { return a <= b })
	default:
		return nil, errors.NewControl(op, "Expected function ...")
	}
}

func evalPlus(op token.Token, left, right Value) (Value, *errors.RuntimeError) {
	if lf, ok := asFloat(left); ok {
		if rf, ok := asFloat(right); ok {
			return Number(lf + rf), nil
		}
	}
	_, lIsString := asString(left)
	_, rIsString := asString(right)
	if lIsString || rIsString {
		ls, ok := asString(left)
		if !ok {
			ls = Render(left)
		}
		rs, ok := asString(right)
		if !ok {
			rs = Render(right)
		}
		return String(ls + rs), nil
	}
	return nil, errors.NewType(op, "Operands must be Numbers Or Strings.")
}

func numericBinary(op token.Token, left, right Value, fn func(a, b float64) float64) (Value, *errors.RuntimeError) {
	lf, ok := asFloat(left)
	if !ok {
		return nil, errors.NewType(op, "Operands must be Numbers.")
	}
	rf, ok := asFloat(right)
	if !ok {
		return nil, errors.NewType(op, "Operands must be Numbers.")
	}
	return Number(fn(lf, rf)), nil
}

func comparisonBinary(op token.Token, left, right Value, fn func(a, b float64) bool) (Value, *errors.RuntimeError) {
	lf, ok := asFloat(left)
	if !ok {
		return nil, errors.NewType(op, "Operands must be Numbers.")
	}
	rf, ok := asFloat(right)
	if !ok {
		return nil, errors.NewType(op, "Operands must be Numbers.")
	}
	return Boolean(fn(lf, rf)), nil
}

// evalUnaryOp implements `-`, `#`, and `!` (spec §4.6). `!` applies a
// general truthiness flip to any non-Collection value and reverses a
// Collection instead (spec §4.1, testable properties 2-3).
func evalUnaryOp(op token.Token, operand Value) (Value, *errors.RuntimeError) {
	switch op.Type {
	case token.MINUS:
		f, ok := asFloat(operand)
		if !ok {
			return nil, errors.NewType(op, "Operand must be a Number.")
		}
		return Number(-f), nil
	case token.HASH:
		c, ok := operand.(*Collection)
		if !ok {
			return nil, errors.NewType(op, "Operand must be a List.")
		}
		return Number(len(c.Elements)), nil
	case token.BANG:
		if c, ok := operand.(*Collection); ok {
			return c.Reverse(), nil
		}
		return Boolean(!IsTruthy(operand)), nil
	default:
		return nil, errors.NewControl(op, "Expected function ...")
	}
}
