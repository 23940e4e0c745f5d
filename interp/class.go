package interp

import (
	"github.com/cwbudde/go-tlox/errors"
	"github.com/cwbudde/go-tlox/token"
)

// Class holds method dispatch tables and an optional superclass link. It is
// itself a Callable: invoking it constructs an Instance (spec §4.3.3).
type Class struct {
	Name       string
	Methods    map[string]*UserFunction
	Superclass *Class
}

func (*Class) Kind() Kind   { return KindClass }
func (*Class) Strong() bool { return false }
func (c *Class) Clone() Value { return c }
func (c *Class) CallableName() string { return c.Name }

// FindMethod searches this class then its superclass chain, returning the
// unbound method and the class that declared it.
func (c *Class) FindMethod(name string) (*UserFunction, *Class) {
	for cls := c; cls != nil; cls = cls.Superclass {
		if m, ok := cls.Methods[name]; ok {
			return m, cls
		}
	}
	return nil, nil
}

// Arity is the arity of the initializer (a method named identically to the
// class) if one exists, else 0.
func (c *Class) Arity() int {
	if init, _ := c.FindMethod(c.Name); init != nil {
		return init.Arity()
	}
	return 0
}

func (c *Class) Call(i *Interpreter, tok token.Token, args []Value) (Value, *errors.RuntimeError) {
	instance := &Instance{Class: c, Fields: make(map[string]Value)}
	if init, owner := c.FindMethod(c.Name); init != nil {
		bound := init.Bind(instance, owner)
		if _, err := bound.Call(i, tok, args); err != nil {
			return nil, err
		}
	} else if len(args) != 0 {
		return nil, errors.NewArity(tok, 0, len(args))
	}
	return instance, nil
}

// Instance is a class plus a per-instance, insertion-ordered field map
// (spec §3, §4.4).
type Instance struct {
	Class      *Class
	Fields     map[string]Value
	FieldOrder []string
}

func (*Instance) Kind() Kind     { return KindInstance }
func (*Instance) Strong() bool   { return false }
func (i *Instance) Clone() Value { return i }

// Get implements field/method read: fields first, then a method bound to
// this instance, else an undefined-property error (spec §4.4).
func (i *Instance) Get(name token.Token) (Value, *errors.RuntimeError) {
	if v, ok := i.Fields[name.Lexeme]; ok {
		return v.Clone(), nil
	}
	if m, owner := i.Class.FindMethod(name.Lexeme); m != nil {
		return m.Bind(i, owner), nil
	}
	return nil, errors.NewUndefinedProperty(name)
}

// Set unconditionally defines or replaces a field.
func (i *Instance) Set(name string, value Value) {
	if _, exists := i.Fields[name]; !exists {
		i.FieldOrder = append(i.FieldOrder, name)
	}
	i.Fields[name] = value
}
