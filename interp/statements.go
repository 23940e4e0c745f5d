package interp

import (
	"fmt"

	"github.com/cwbudde/go-tlox/ast"
	"github.com/cwbudde/go-tlox/errors"
)

// execStmt dispatches on the statement's dynamic type: one case per AST
// shape, delegating to a dedicated execX method.
func (i *Interpreter) execStmt(stmt ast.Stmt, env *Environment) (Outcome, *errors.RuntimeError) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		return i.execExpressionStmt(s, env)
	case *ast.Var:
		return i.execVar(s, env)
	case *ast.Print:
		return i.execPrint(s, env)
	case *ast.Block:
		return i.execBlock(s.Statements, NewEnvironment(env))
	case *ast.If:
		return i.execIf(s, env)
	case *ast.While:
		return i.execWhile(s, env)
	case *ast.Function:
		return i.execFunction(s, env)
	case *ast.Class:
		return i.execClass(s, env)
	case *ast.Return:
		return i.execReturn(s, env)
	case *ast.Break:
		return breaking(), nil
	case *ast.Continue:
		return continuing(), nil
	default:
		return normal(), errors.NewControl(stmt.Tok(), fmt.Sprintf("Expected statement, got %T.", stmt))
	}
}

func (i *Interpreter) execExpressionStmt(s *ast.ExpressionStmt, env *Environment) (Outcome, *errors.RuntimeError) {
	if _, err := i.evalExpr(s.Expression, env); err != nil {
		return normal(), err
	}
	return normal(), nil
}

func (i *Interpreter) execVar(s *ast.Var, env *Environment) (Outcome, *errors.RuntimeError) {
	value := Value(Nil{})
	if s.Initializer != nil {
		v, err := i.evalExpr(s.Initializer, env)
		if err != nil {
			return normal(), err
		}
		value = v
	}
	env.Define(s.Name.Lexeme, value)
	return normal(), nil
}

func (i *Interpreter) execPrint(s *ast.Print, env *Environment) (Outcome, *errors.RuntimeError) {
	v, err := i.evalExpr(s.Expression, env)
	if err != nil {
		return normal(), err
	}
	fmt.Fprintln(i.config.Stdout, RenderTopLevel(v))
	return normal(), nil
}

// execBlock runs stmts in blockEnv until one yields a non-normal outcome or
// an error, restoring nothing itself: the caller owns blockEnv's lifetime,
// so the prior scope is restored on exit, even on error, via Go's ordinary
// scope-exit (blockEnv simply goes out of scope).
func (i *Interpreter) execBlock(stmts []ast.Stmt, blockEnv *Environment) (Outcome, *errors.RuntimeError) {
	for _, stmt := range stmts {
		outcome, err := i.execStmt(stmt, blockEnv)
		if err != nil {
			return normal(), err
		}
		if !outcome.isNormal() {
			return outcome, nil
		}
	}
	return normal(), nil
}

func (i *Interpreter) execIf(s *ast.If, env *Environment) (Outcome, *errors.RuntimeError) {
	cond, err := i.evalExpr(s.Condition, env)
	if err != nil {
		return normal(), err
	}
	if IsTruthy(cond) {
		return i.execStmt(s.ThenBranch, env)
	}
	if s.ElseBranch != nil {
		return i.execStmt(s.ElseBranch, env)
	}
	return normal(), nil
}

// execWhile is the unified loop primitive. Body has already been flattened
// by the parser; on Continue, LoopFor re-executes the final statement (the
// post-step) and LoopForEach re-executes the final two (advance +
// element-binding) before re-testing the condition.
func (i *Interpreter) execWhile(s *ast.While, env *Environment) (Outcome, *errors.RuntimeError) {
	for {
		cond, err := i.evalExpr(s.Condition, env)
		if err != nil {
			return normal(), err
		}
		if !IsTruthy(cond) {
			return normal(), nil
		}

		loopEnv := NewEnvironment(env)
		outcome, err := i.execBlock(s.Body, loopEnv)
		if err != nil {
			return normal(), err
		}

		switch outcome.Kind {
		case OutcomeBreak:
			return normal(), nil
		case OutcomeReturn:
			return outcome, nil
		case OutcomeContinue:
			if rerr := i.rerunPostStep(s, loopEnv); rerr != nil {
				return normal(), rerr
			}
		}
	}
}

// rerunPostStep re-executes the trailing post-step statement(s) a Continue
// must honor: none for plain While, the last statement for For, the last
// two for ForEach.
func (i *Interpreter) rerunPostStep(s *ast.While, env *Environment) *errors.RuntimeError {
	var tail []ast.Stmt
	switch s.Kind {
	case ast.LoopFor:
		if len(s.Body) >= 1 {
			tail = s.Body[len(s.Body)-1:]
		}
	case ast.LoopForEach:
		if len(s.Body) >= 2 {
			tail = s.Body[len(s.Body)-2:]
		}
	default:
		return nil
	}
	for _, stmt := range tail {
		if _, err := i.execStmt(stmt, env); err != nil {
			return err
		}
	}
	return nil
}

// execFunction builds a closure snapshot at definition time, then patches
// the snapshot's own top frame with a self-reference so the function can
// call itself by name even though the outer scope's later mutations remain
// invisible to it (see Environment.Snapshot).
func (i *Interpreter) execFunction(s *ast.Function, env *Environment) (Outcome, *errors.RuntimeError) {
	fn := &UserFunction{
		FnName:  s.Name.Lexeme,
		Params:  s.Params,
		Body:    s.Body,
		Closure: env.Snapshot(),
	}
	fn.Closure.Define(s.Name.Lexeme, fn)
	env.Define(s.Name.Lexeme, fn)
	return normal(), nil
}

// execClass resolves the optional superclass, defines the class name as Nil
// while building methods, then assigns the finished Class.
func (i *Interpreter) execClass(s *ast.Class, env *Environment) (Outcome, *errors.RuntimeError) {
	var superclass *Class
	if s.Superclass != nil {
		v, err := i.evalExpr(s.Superclass, env)
		if err != nil {
			return normal(), err
		}
		sc, ok := v.(*Class)
		if !ok {
			return normal(), errors.NewInherit(s.Superclass.Tok(), "Super-class must be a class.")
		}
		superclass = sc
	}

	env.Define(s.Name.Lexeme, Nil{})

	classEnv := env
	if superclass != nil {
		classEnv = NewEnvironment(env)
		classEnv.Define(s.Name.Lexeme+"-super", superclass)
	}

	methods := make(map[string]*UserFunction, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &UserFunction{
			FnName:        m.Name.Lexeme,
			Params:        m.Params,
			Body:          m.Body,
			Closure:       classEnv.Snapshot(),
			IsInitializer: m.Name.Lexeme == s.Name.Lexeme,
		}
	}

	class := &Class{Name: s.Name.Lexeme, Methods: methods, Superclass: superclass}
	env.Assign(s.Name, class)
	return normal(), nil
}

func (i *Interpreter) execReturn(s *ast.Return, env *Environment) (Outcome, *errors.RuntimeError) {
	if s.Value == nil {
		return returning(Nil{}), nil
	}
	v, err := i.evalExpr(s.Value, env)
	if err != nil {
		return normal(), err
	}
	return returning(v), nil
}
