package interp

import (
	"time"

	"github.com/cwbudde/go-tlox/ast"
	"github.com/cwbudde/go-tlox/errors"
	"github.com/cwbudde/go-tlox/token"
)

// Interpreter walks a parsed program, one statement at a time, mutating a
// chain of Environments and emitting output through Config.Stdout. It holds
// no other mutable host state beyond the call-depth guard and the clock
// reference used by the `clock()` builtin.
type Interpreter struct {
	Globals *Environment
	env     *Environment
	config  Config
	start   time.Time
	depth   int
}

func New(config Config) *Interpreter {
	globals := NewEnvironment(nil)
	i := &Interpreter{Globals: globals, env: globals, config: config, start: time.Now()}
	registerBuiltins(i, globals)
	return i
}

// Interpret executes a full program's statements against the global
// environment, returning the first runtime error encountered, if any. A
// Return/Break/Continue outcome escaping to the top level is a driver-level
// bug, not a user-facing error (spec §3 invariant 6); it is treated here as
// a no-op rather than panicking.
func (i *Interpreter) Interpret(stmts []ast.Stmt) *errors.RuntimeError {
	for _, stmt := range stmts {
		if _, err := i.execStmt(stmt, i.env); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) pushCall(tok token.Token) *errors.RuntimeError {
	i.depth++
	if i.depth > i.config.MaxRecursionDepth {
		i.depth--
		return errors.NewControl(tok, "Stack overflow.")
	}
	return nil
}

func (i *Interpreter) popCall() {
	i.depth--
}

func (i *Interpreter) now() float64 {
	return time.Since(i.start).Seconds()
}
