package interp

import (
	"testing"

	"github.com/cwbudde/go-tlox/token"
)

func TestClassFindMethodSearchesSuperclassChain(t *testing.T) {
	base := &Class{Name: "A", Methods: map[string]*UserFunction{
		"greet": {FnName: "greet"},
	}}
	derived := &Class{Name: "B", Methods: map[string]*UserFunction{}, Superclass: base}

	m, owner := derived.FindMethod("greet")
	if m == nil || owner != base {
		t.Fatalf("FindMethod did not walk to the superclass: m=%v owner=%v", m, owner)
	}
}

func TestClassFindMethodMissingReturnsNil(t *testing.T) {
	c := &Class{Name: "A", Methods: map[string]*UserFunction{}}
	m, owner := c.FindMethod("nope")
	if m != nil || owner != nil {
		t.Errorf("got %v, %v; want nil, nil", m, owner)
	}
}

func TestClassArityMatchesInitializer(t *testing.T) {
	init := &UserFunction{FnName: "A", Params: []token.Token{ident("x")}}
	c := &Class{Name: "A", Methods: map[string]*UserFunction{"A": init}}
	if c.Arity() != 1 {
		t.Errorf("Arity() = %d, want 1", c.Arity())
	}
}

func TestClassArityZeroWithoutInitializer(t *testing.T) {
	c := &Class{Name: "A", Methods: map[string]*UserFunction{}}
	if c.Arity() != 0 {
		t.Errorf("Arity() = %d, want 0", c.Arity())
	}
}

func TestClassCallConstructsInstanceWithoutInitializer(t *testing.T) {
	c := &Class{Name: "A", Methods: map[string]*UserFunction{}}
	i := New(DefaultConfig())
	v, err := c.Call(i, ident("A"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inst, ok := v.(*Instance)
	if !ok || inst.Class != c {
		t.Fatalf("got %#v, want *Instance with Class == c", v)
	}
}

func TestClassCallArityMismatchWithoutInitializer(t *testing.T) {
	c := &Class{Name: "A", Methods: map[string]*UserFunction{}}
	i := New(DefaultConfig())
	_, err := c.Call(i, ident("A"), []Value{Number(1)})
	if err == nil {
		t.Fatal("expected an arity error constructing A(1) with a zero-arg class")
	}
}

func TestUserFunctionBindExtendsClosureWithThisAndSuper(t *testing.T) {
	base := &Class{Name: "A", Methods: map[string]*UserFunction{}}
	derived := &Class{Name: "B", Methods: map[string]*UserFunction{}, Superclass: base}
	instance := &Instance{Class: derived, Fields: map[string]Value{}}

	fn := &UserFunction{FnName: "greet", Closure: NewEnvironment(nil)}
	bound := fn.Bind(instance, derived)

	this, ok := bound.Closure.GetRaw("this")
	if !ok || this.(*Instance) != instance {
		t.Fatal("bound closure does not define this")
	}
	super, ok := bound.Closure.GetRaw("B-super")
	if !ok || super.(*Class) != base {
		t.Fatal("bound closure does not define the synthetic super slot")
	}
	if bound.BoundThis != instance {
		t.Error("BoundThis not set")
	}
}

func TestUserFunctionBindOmitsSuperSlotWithoutSuperclass(t *testing.T) {
	class := &Class{Name: "A", Methods: map[string]*UserFunction{}}
	instance := &Instance{Class: class, Fields: map[string]Value{}}
	fn := &UserFunction{FnName: "greet", Closure: NewEnvironment(nil)}
	bound := fn.Bind(instance, class)
	if _, ok := bound.Closure.GetRaw("A-super"); ok {
		t.Error("expected no synthetic super slot for a class without a superclass")
	}
}

func TestInstanceGetFieldThenMethod(t *testing.T) {
	class := &Class{Name: "A", Methods: map[string]*UserFunction{
		"greet": {FnName: "greet", Closure: NewEnvironment(nil)},
	}}
	instance := &Instance{Class: class, Fields: map[string]Value{}}
	instance.Set("x", Number(1))

	v, err := instance.Get(ident("x"))
	if err != nil || v != Number(1) {
		t.Fatalf("got %v, %v", v, err)
	}

	m, err := instance.Get(ident("greet"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bound, ok := m.(*UserFunction)
	if !ok || bound.BoundThis != instance {
		t.Fatal("Get did not return a method bound to the instance")
	}
}

func TestInstanceGetUndefinedPropertyErrors(t *testing.T) {
	class := &Class{Name: "A", Methods: map[string]*UserFunction{}}
	instance := &Instance{Class: class, Fields: map[string]Value{}}
	if _, err := instance.Get(ident("nope")); err == nil {
		t.Fatal("expected an undefined-property error")
	}
}

func TestInstanceSetTracksFieldOrder(t *testing.T) {
	instance := &Instance{Class: &Class{Name: "A"}, Fields: map[string]Value{}}
	instance.Set("b", Number(2))
	instance.Set("a", Number(1))
	instance.Set("b", Number(99))
	want := []string{"b", "a"}
	if len(instance.FieldOrder) != len(want) {
		t.Fatalf("got %v, want %v", instance.FieldOrder, want)
	}
	for idx := range want {
		if instance.FieldOrder[idx] != want[idx] {
			t.Errorf("FieldOrder[%d] = %q, want %q", idx, instance.FieldOrder[idx], want[idx])
		}
	}
}

func TestInstanceCloneReturnsSamePointer(t *testing.T) {
	instance := &Instance{Class: &Class{Name: "A"}, Fields: map[string]Value{}}
	if instance.Clone() != Value(instance) {
		t.Error("Instance.Clone must return the same pointer (reference semantics)")
	}
}

