package interp

import (
	"fmt"

	"github.com/cwbudde/go-tlox/errors"
	"github.com/cwbudde/go-tlox/token"
)

// registerBuiltins defines the built-in functions directly in the global
// environment, ahead of running any user code.
func registerBuiltins(i *Interpreter, globals *Environment) {
	globals.Define("clock", &Builtin{
		BuiltinName:  "clock",
		BuiltinArity: 0,
		Fn: func(i *Interpreter, tok token.Token, args []Value) (Value, *errors.RuntimeError) {
			return Number(i.now()), nil
		},
	})

	globals.Define("len", &Builtin{
		BuiltinName:  "len",
		BuiltinArity: 1,
		Fn: func(i *Interpreter, tok token.Token, args []Value) (Value, *errors.RuntimeError) {
			switch x := args[0].(type) {
			case *Collection:
				return Number(len(x.Elements)), nil
			case String:
				return Number(len([]rune(string(x)))), nil
			case StrongString:
				return Number(len([]rune(string(x)))), nil
			default:
				return nil, errors.NewType(tok, "Operand must be a List.")
			}
		},
	})

	globals.Define("debug", &Builtin{
		BuiltinName:  "debug",
		BuiltinArity: 1,
		Fn: func(i *Interpreter, tok token.Token, args []Value) (Value, *errors.RuntimeError) {
			fmt.Fprintln(i.config.Stdout, DebugString(args[0]))
			return Nil{}, nil
		},
	})
}
