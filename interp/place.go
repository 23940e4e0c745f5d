package interp

import (
	"github.com/cwbudde/go-tlox/ast"
	"github.com/cwbudde/go-tlox/errors"
	"github.com/cwbudde/go-tlox/token"
)

// Place is an addressable storage location: a variable, an instance field,
// or an indexed collection/string element. It replaces the downcast-based
// write-back dispatch the design notes call out, unifying assignment,
// compound assignment, and increment/decrement behind two operations.
type Place interface {
	Read(i *Interpreter) (Value, *errors.RuntimeError)
	Write(i *Interpreter, v Value) *errors.RuntimeError
}

// placeFor resolves an expression to the Place it addresses, if any.
// Expressions that are not one of the three addressable shapes (a function
// call result, a literal, ...) resolve to a TransientPlace whose writes are
// silently discarded: there is no lvalue to propagate a mutation into.
func placeFor(expr ast.Expr, env *Environment) Place {
	switch e := expr.(type) {
	case *ast.VarExpr:
		return &VarPlace{Name: e.Name, Env: env}
	case *ast.Get:
		return &FieldPlace{Object: e.Object, Name: e.Name, Env: env}
	case *ast.IndexGet:
		return &IndexPlace{Object: e.Object, Bracket: e.Bracket, Index: e.Index, Env: env}
	default:
		return &TransientPlace{Expr: expr, Env: env}
	}
}

type VarPlace struct {
	Name token.Token
	Env  *Environment
}

func (p *VarPlace) Read(i *Interpreter) (Value, *errors.RuntimeError) {
	return p.Env.Get(p.Name)
}

func (p *VarPlace) Write(i *Interpreter, v Value) *errors.RuntimeError {
	return p.Env.Assign(p.Name, v)
}

type FieldPlace struct {
	Object ast.Expr
	Name   token.Token
	Env    *Environment
}

func (p *FieldPlace) resolveInstance(i *Interpreter) (*Instance, *errors.RuntimeError) {
	obj, err := i.evalExpr(p.Object, p.Env)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, errors.NewType(p.Name, "Only instances have properties/fields.")
	}
	return inst, nil
}

func (p *FieldPlace) Read(i *Interpreter) (Value, *errors.RuntimeError) {
	inst, err := p.resolveInstance(i)
	if err != nil {
		return nil, err
	}
	return inst.Get(p.Name)
}

func (p *FieldPlace) Write(i *Interpreter, v Value) *errors.RuntimeError {
	inst, err := p.resolveInstance(i)
	if err != nil {
		return err
	}
	inst.Set(p.Name.Lexeme, v)
	return nil
}

type IndexPlace struct {
	Object  ast.Expr
	Bracket token.Token
	Index   ast.Expr
	Env     *Environment
}

func (p *IndexPlace) indexNumber(i *Interpreter) (int, *errors.RuntimeError) {
	idxVal, err := i.evalExpr(p.Index, p.Env)
	if err != nil {
		return 0, err
	}
	f, ok := asFloat(idxVal)
	if !ok {
		return 0, errors.NewType(p.Bracket, "Index must be a number type.")
	}
	return int(f), nil
}

func (p *IndexPlace) Read(i *Interpreter) (Value, *errors.RuntimeError) {
	container, err := i.evalExpr(p.Object, p.Env)
	if err != nil {
		return nil, err
	}
	idx, err := p.indexNumber(i)
	if err != nil {
		return nil, err
	}
	switch c := container.(type) {
	case *Collection:
		if len(c.Elements) == 0 {
			return nil, errors.NewType(p.Bracket, "Only list types can be indexed.")
		}
		return c.At(idx).Clone(), nil
	case String:
		return readStringIndex(string(c), idx), nil
	case StrongString:
		return readStringIndex(string(c), idx), nil
	default:
		return nil, errors.NewType(p.Bracket, "Only list types can be indexed.")
	}
}

func readStringIndex(s string, idx int) Value {
	runes := []rune(s)
	if len(runes) == 0 {
		return String("")
	}
	return String(string(runes[wrapIndex(idx, len(runes))]))
}

// Write performs the deepest-level mutation then propagates the updated
// root container outward through the chain of enclosing Places (spec §4.6:
// "the update is performed at the deepest level and propagated outward
// through the collection chain").
func (p *IndexPlace) Write(i *Interpreter, v Value) *errors.RuntimeError {
	objPlace := placeFor(p.Object, p.Env)
	container, err := objPlace.Read(i)
	if err != nil {
		return err
	}
	idx, err := p.indexNumber(i)
	if err != nil {
		return err
	}
	switch c := container.(type) {
	case *Collection:
		if len(c.Elements) == 0 {
			return errors.NewType(p.Bracket, "Only list types can be indexed.")
		}
		c.SetAt(idx, v)
		return objPlace.Write(i, c)
	case String:
		updated, werr := writeStringIndex(string(c), idx, v, p.Bracket)
		if werr != nil {
			return werr
		}
		return objPlace.Write(i, String(updated))
	case StrongString:
		updated, werr := writeStringIndex(string(c), idx, v, p.Bracket)
		if werr != nil {
			return werr
		}
		return objPlace.Write(i, StrongString(updated))
	default:
		return errors.NewType(p.Bracket, "Only list types can be indexed.")
	}
}

func writeStringIndex(s string, idx int, v Value, tok token.Token) (string, *errors.RuntimeError) {
	runes := []rune(s)
	if len(runes) == 0 {
		return "", errors.NewType(tok, "Only list types can be indexed.")
	}
	replacement, ok := asString(v)
	if !ok {
		replacement = Render(v)
	}
	replacementRunes := []rune(replacement)
	i := wrapIndex(idx, len(runes))
	out := make([]rune, 0, len(runes)+len(replacementRunes)-1)
	out = append(out, runes[:i]...)
	out = append(out, replacementRunes...)
	out = append(out, runes[i+1:]...)
	return string(out), nil
}

// TransientPlace wraps a non-addressable expression: reads evaluate it
// normally, writes are discarded since there is no storage to update.
type TransientPlace struct {
	Expr ast.Expr
	Env  *Environment
}

func (p *TransientPlace) Read(i *Interpreter) (Value, *errors.RuntimeError) {
	return i.evalExpr(p.Expr, p.Env)
}

func (p *TransientPlace) Write(i *Interpreter, v Value) *errors.RuntimeError {
	return nil
}
