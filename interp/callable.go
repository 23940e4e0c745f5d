package interp

import (
	"github.com/cwbudde/go-tlox/ast"
	"github.com/cwbudde/go-tlox/errors"
	"github.com/cwbudde/go-tlox/token"
)

// Callable is the uniform contract spec §4.3 describes: a name, an arity,
// and a call operation. UserFunction, *Class, and *Builtin all implement it.
type Callable interface {
	Value
	CallableName() string
	Arity() int
	Call(i *Interpreter, tok token.Token, args []Value) (Value, *errors.RuntimeError)
}

// UserFunction is a user-defined function, method, anonymous function, or a
// method already bound to an instance (BoundThis != nil). Binding produces a
// fresh UserFunction rather than a distinct type, matching spec §4.3's
// "Binding produces a fresh callable" wording directly.
type UserFunction struct {
	FnName        string
	Params        []token.Token
	Body          []ast.Stmt
	Closure       *Environment
	IsInitializer bool
	BoundThis     *Instance
}

func (*UserFunction) Kind() Kind       { return KindFunction }
func (*UserFunction) Strong() bool     { return false }
func (f *UserFunction) Clone() Value   { return f }
func (f *UserFunction) CallableName() string { return f.FnName }
func (f *UserFunction) Arity() int     { return len(f.Params) }

// Bind produces a method callable whose captured environment is this
// function's closure extended by a scope defining `this` (and, when owner
// has a superclass, the synthetic "<class>-super" key), per spec §4.3.2.
func (f *UserFunction) Bind(instance *Instance, owner *Class) *UserFunction {
	env := NewEnvironment(f.Closure)
	env.Define("this", instance)
	if owner.Superclass != nil {
		env.Define(owner.Name+"-super", owner.Superclass)
	}
	return &UserFunction{
		FnName:        f.FnName,
		Params:        f.Params,
		Body:          f.Body,
		Closure:       env,
		IsInitializer: f.IsInitializer,
		BoundThis:     instance,
	}
}

func (f *UserFunction) Call(i *Interpreter, tok token.Token, args []Value) (Value, *errors.RuntimeError) {
	if len(args) != f.Arity() {
		return nil, errors.NewArity(tok, f.Arity(), len(args))
	}
	if err := i.pushCall(tok); err != nil {
		return nil, err
	}
	defer i.popCall()

	callEnv := NewEnvironment(f.Closure)
	for idx, param := range f.Params {
		callEnv.Define(param.Lexeme, args[idx])
	}

	outcome, err := i.execBlock(f.Body, callEnv)
	if err != nil {
		return nil, err
	}

	if f.IsInitializer {
		return f.BoundThis, nil
	}
	if outcome.isReturn() {
		return outcome.Value, nil
	}
	return Nil{}, nil
}

// Builtin is an opaque host function exposed to programs via the global
// environment (spec §4.3.4).
type Builtin struct {
	BuiltinName string
	BuiltinArity int
	Fn          func(i *Interpreter, tok token.Token, args []Value) (Value, *errors.RuntimeError)
}

func (*Builtin) Kind() Kind       { return KindFunction }
func (*Builtin) Strong() bool     { return false }
func (b *Builtin) Clone() Value   { return b }
func (b *Builtin) CallableName() string { return b.BuiltinName }
func (b *Builtin) Arity() int     { return b.BuiltinArity }

func (b *Builtin) Call(i *Interpreter, tok token.Token, args []Value) (Value, *errors.RuntimeError) {
	if len(args) != b.BuiltinArity {
		return nil, errors.NewArity(tok, b.BuiltinArity, len(args))
	}
	return b.Fn(i, tok, args)
}
