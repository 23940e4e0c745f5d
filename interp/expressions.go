package interp

import (
	"fmt"

	"github.com/cwbudde/go-tlox/ast"
	"github.com/cwbudde/go-tlox/errors"
	"github.com/cwbudde/go-tlox/token"
)

// evalExpr dispatches on the expression's dynamic type, mirroring
// execStmt's type-switch shape: one case per AST node, delegating to a
// dedicated evalX method.
func (i *Interpreter) evalExpr(expr ast.Expr, env *Environment) (Value, *errors.RuntimeError) {
	switch e := expr.(type) {
	case *ast.Literal:
		return i.evalLiteral(e), nil
	case *ast.ListLiteral:
		return i.evalListLiteral(e, env)
	case *ast.VarExpr:
		return env.Get(e.Name)
	case *ast.This:
		return i.evalThis(e, env)
	case *ast.Super:
		return i.evalSuper(e, env)
	case *ast.Grouping:
		return i.evalExpr(e.Expression, env)
	case *ast.Unary:
		return i.evalUnary(e, env)
	case *ast.IncDec:
		return i.evalIncDec(e, env)
	case *ast.Binary:
		return i.evalBinary(e, env)
	case *ast.Logical:
		return i.evalLogical(e, env)
	case *ast.Ternary:
		return i.evalTernary(e, env)
	case *ast.Assign:
		return i.evalAssign(e, env)
	case *ast.Get:
		return i.evalGet(e, env)
	case *ast.Set:
		return i.evalSet(e, env)
	case *ast.IndexGet:
		return (&IndexPlace{Object: e.Object, Bracket: e.Bracket, Index: e.Index, Env: env}).Read(i)
	case *ast.IndexSet:
		return i.evalIndexSet(e, env)
	case *ast.Call:
		return i.evalCall(e, env)
	case *ast.AnonFunction:
		return i.evalAnonFunction(e, env), nil
	default:
		return nil, errors.NewControl(expr.Tok(), fmt.Sprintf("Expected expression, got %T.", expr))
	}
}

func (i *Interpreter) evalLiteral(e *ast.Literal) Value {
	switch e.Kind {
	case ast.LitNil:
		return Nil{}
	case ast.LitNumber:
		return Number(e.Num)
	case ast.LitString:
		return String(e.Str)
	case ast.LitBoolean:
		return Boolean(e.Bool)
	case ast.LitStrongNumber:
		return StrongNumber(e.Num)
	case ast.LitStrongString:
		return StrongString(e.Str)
	case ast.LitStrongBoolean:
		return StrongBoolean(e.Bool)
	default:
		return Nil{}
	}
}

func (i *Interpreter) evalListLiteral(e *ast.ListLiteral, env *Environment) (Value, *errors.RuntimeError) {
	elems := make([]Value, len(e.Elements))
	for idx, el := range e.Elements {
		v, err := i.evalExpr(el, env)
		if err != nil {
			return nil, err
		}
		elems[idx] = v
	}
	return &Collection{Elements: elems}, nil
}

func (i *Interpreter) evalThis(e *ast.This, env *Environment) (Value, *errors.RuntimeError) {
	v, ok := env.GetRaw("this")
	if !ok {
		return nil, errors.NewInherit(e.Keyword, "Could not find current this.")
	}
	return v, nil
}

// evalSuper locates the current `this`, takes its dynamic class's
// superclass, and binds the named method against the existing instance.
func (i *Interpreter) evalSuper(e *ast.Super, env *Environment) (Value, *errors.RuntimeError) {
	thisVal, ok := env.GetRaw("this")
	if !ok {
		return nil, errors.NewInherit(e.Keyword, "Could not find current this.")
	}
	instance := thisVal.(*Instance)
	if instance.Class.Superclass == nil {
		return nil, errors.NewUndefinedProperty(e.Method)
	}
	method, owner := instance.Class.Superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, errors.NewUndefinedProperty(e.Method)
	}
	return method.Bind(instance, owner), nil
}

func (i *Interpreter) evalUnary(e *ast.Unary, env *Environment) (Value, *errors.RuntimeError) {
	operand, err := i.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}
	return evalUnaryOp(e.Operator, operand)
}

// evalIncDec implements prefix ++/--: the write-back target can be any
// Place; the *original* value is returned even though the operator is
// written in prefix position.
func (i *Interpreter) evalIncDec(e *ast.IncDec, env *Environment) (Value, *errors.RuntimeError) {
	place := placeFor(e.Target, env)
	current, err := place.Read(i)
	if err != nil {
		return nil, err
	}
	f, ok := asFloat(current)
	if !ok {
		return nil, errors.NewType(e.Operator, "Operand must be a Number.")
	}
	delta := 1.0
	if e.Operator.Type == token.DECR {
		delta = -1.0
	}
	updated := numberValue(f+delta, current.Strong())
	if err := place.Write(i, updated); err != nil {
		return nil, err
	}
	return current, nil
}

func (i *Interpreter) evalBinary(e *ast.Binary, env *Environment) (Value, *errors.RuntimeError) {
	left, err := i.evalExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}
	return evalBinaryOp(e.Operator, left, right)
}

// evalLogical short-circuits on the left operand's truthiness and returns
// whichever operand's *value* determined the outcome.
func (i *Interpreter) evalLogical(e *ast.Logical, env *Environment) (Value, *errors.RuntimeError) {
	left, err := i.evalExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == token.OR {
		if IsTruthy(left) {
			return left, nil
		}
	} else {
		if !IsTruthy(left) {
			return left, nil
		}
	}
	return i.evalExpr(e.Right, env)
}

func (i *Interpreter) evalTernary(e *ast.Ternary, env *Environment) (Value, *errors.RuntimeError) {
	cond, err := i.evalExpr(e.Condition, env)
	if err != nil {
		return nil, err
	}
	b, ok := asBool(cond)
	if !ok {
		return nil, errors.NewControl(e.Question, "Invalid condition for Ternary")
	}
	if b {
		return i.evalExpr(e.Then, env)
	}
	return i.evalExpr(e.Else, env)
}

func (i *Interpreter) evalAssign(e *ast.Assign, env *Environment) (Value, *errors.RuntimeError) {
	rhs, err := i.evalExpr(e.Value, env)
	if err != nil {
		return nil, err
	}
	current, err := env.Get(e.Name)
	if err != nil {
		return nil, err
	}
	result, cerr := combineAssign(&current, e.AssignOp, rhs, e.Name)
	if cerr != nil {
		return nil, cerr
	}
	if aerr := env.Assign(e.Name, result); aerr != nil {
		return nil, aerr
	}
	return result, nil
}

func (i *Interpreter) evalGet(e *ast.Get, env *Environment) (Value, *errors.RuntimeError) {
	obj, err := i.evalExpr(e.Object, env)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, errors.NewType(e.Name, "Only instances have properties/fields.")
	}
	return inst.Get(e.Name)
}

// evalSet implements field write / compound field write: plain `=` creates
// the field if absent, while a compound operator requires it to already
// exist.
func (i *Interpreter) evalSet(e *ast.Set, env *Environment) (Value, *errors.RuntimeError) {
	obj, err := i.evalExpr(e.Object, env)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, errors.NewType(e.Name, "Only instances have properties/fields.")
	}
	rhs, err := i.evalExpr(e.Value, env)
	if err != nil {
		return nil, err
	}

	cur, exists := inst.Fields[e.Name.Lexeme]
	if e.AssignOp != token.EQUAL && !exists {
		return nil, errors.NewUndefinedProperty(e.Name)
	}
	var curPtr *Value
	if exists {
		curPtr = &cur
	}
	result, cerr := combineAssign(curPtr, e.AssignOp, rhs, e.Name)
	if cerr != nil {
		return nil, cerr
	}
	inst.Set(e.Name.Lexeme, result)
	return result, nil
}

func (i *Interpreter) evalIndexSet(e *ast.IndexSet, env *Environment) (Value, *errors.RuntimeError) {
	place := &IndexPlace{Object: e.Object, Bracket: e.Bracket, Index: e.Index, Env: env}
	current, err := place.Read(i)
	if err != nil {
		return nil, err
	}
	rhs, err := i.evalExpr(e.Value, env)
	if err != nil {
		return nil, err
	}
	result, cerr := combineAssign(&current, e.AssignOp, rhs, e.Bracket)
	if cerr != nil {
		return nil, cerr
	}
	if werr := place.Write(i, result); werr != nil {
		return nil, werr
	}
	return result, nil
}

// evalCall dispatches call expressions uniformly across the four Callable
// kinds. Because Instance carries reference semantics here (Clone returns
// the same pointer), a method mutating `this` is automatically visible to
// the caller's own binding afterward — no explicit mutation re-projection
// is needed, unlike a by-value Instance representation.
func (i *Interpreter) evalCall(e *ast.Call, env *Environment) (Value, *errors.RuntimeError) {
	callee, err := i.evalExpr(e.Callee, env)
	if err != nil {
		return nil, err
	}
	callable, ok := callee.(Callable)
	if !ok {
		return nil, errors.NewControl(e.Paren, "Expected function ...")
	}

	args := make([]Value, len(e.Arguments))
	for idx, argExpr := range e.Arguments {
		v, err := i.evalExpr(argExpr, env)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	return callable.Call(i, e.Paren, args)
}

// evalAnonFunction re-snapshots the current environment on every evaluation
// of the literal, unlike a named function statement, which snapshots once
// at the point it is declared.
func (i *Interpreter) evalAnonFunction(e *ast.AnonFunction, env *Environment) Value {
	return &UserFunction{
		FnName:  "",
		Params:  e.Params,
		Body:    e.Body,
		Closure: env.Snapshot(),
	}
}
