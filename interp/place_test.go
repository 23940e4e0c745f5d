package interp

import (
	"testing"

	"github.com/cwbudde/go-tlox/ast"
	"github.com/cwbudde/go-tlox/token"
)

func numLit(n float64) *ast.Literal {
	return &ast.Literal{Token: token.New(token.NUMBER, "", n, 1), Kind: ast.LitNumber, Num: n}
}

func bracket() token.Token {
	return token.New(token.LEFT_BRACKET, "[", nil, 1)
}

func TestIndexPlaceReadWrapAround(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", &Collection{Elements: []Value{Number(1), Number(2), Number(3)}})
	i := New(DefaultConfig())

	place := &IndexPlace{Object: &ast.VarExpr{Name: ident("a")}, Bracket: bracket(), Index: numLit(-1), Env: env}
	v, err := place.Read(i)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != Number(3) {
		t.Errorf("a[-1] = %v, want Number(3)", v)
	}
}

func TestIndexPlaceWriteMutatesStoredBinding(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", &Collection{Elements: []Value{Number(1), Number(2), Number(3)}})
	i := New(DefaultConfig())

	place := &IndexPlace{Object: &ast.VarExpr{Name: ident("a")}, Bracket: bracket(), Index: numLit(0), Env: env}
	if err := place.Write(i, Number(99)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := env.GetRaw("a")
	if got.(*Collection).Elements[0] != Number(99) {
		t.Errorf("a[0] after write = %v, want Number(99)", got.(*Collection).Elements[0])
	}
}

// TestIndexPlaceWriteNestedPropagatesOutward exercises a[0][1] = v: reads
// clone, so the write lands in a fresh copy of the inner Collection, which
// is then written into a fresh copy of the outer one and assigned back to a.
func TestIndexPlaceWriteNestedPropagatesOutward(t *testing.T) {
	env := NewEnvironment(nil)
	inner := &Collection{Elements: []Value{Number(10), Number(20)}}
	outer := &Collection{Elements: []Value{inner, Number(5)}}
	env.Define("a", outer)
	i := New(DefaultConfig())

	innerIndexExpr := &ast.IndexGet{Object: &ast.VarExpr{Name: ident("a")}, Bracket: bracket(), Index: numLit(0)}
	place := &IndexPlace{Object: innerIndexExpr, Bracket: bracket(), Index: numLit(1), Env: env}
	if err := place.Write(i, Number(999)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := env.GetRaw("a")
	gotOuter := got.(*Collection)
	gotInner := gotOuter.Elements[0].(*Collection)
	if gotInner.Elements[1] != Number(999) {
		t.Errorf("a[0][1] after write = %v, want Number(999)", gotInner.Elements[1])
	}
}

func TestStringIndexReadAndWrite(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("s", String("abc"))
	i := New(DefaultConfig())

	readPlace := &IndexPlace{Object: &ast.VarExpr{Name: ident("s")}, Bracket: bracket(), Index: numLit(1), Env: env}
	v, err := readPlace.Read(i)
	if err != nil || v != String("b") {
		t.Fatalf("s[1] = %v, %v; want String(b)", v, err)
	}

	if err := readPlace.Write(i, String("Z")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := env.GetRaw("s")
	if got != String("aZc") {
		t.Errorf("s after write = %v, want aZc", got)
	}
}

func TestIndexPlaceOnEmptyCollectionErrors(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", &Collection{})
	i := New(DefaultConfig())
	place := &IndexPlace{Object: &ast.VarExpr{Name: ident("a")}, Bracket: bracket(), Index: numLit(0), Env: env}
	if _, err := place.Read(i); err == nil {
		t.Fatal("expected an error indexing an empty collection")
	}
}

func TestIndexPlaceNonIndexableErrors(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", Number(5))
	i := New(DefaultConfig())
	place := &IndexPlace{Object: &ast.VarExpr{Name: ident("a")}, Bracket: bracket(), Index: numLit(0), Env: env}
	if _, err := place.Read(i); err == nil {
		t.Fatal("expected an error indexing a Number")
	}
}

func TestTransientPlaceWriteIsDiscarded(t *testing.T) {
	env := NewEnvironment(nil)
	i := New(DefaultConfig())
	place := &TransientPlace{Expr: numLit(5), Env: env}
	v, err := place.Read(i)
	if err != nil || v != Number(5) {
		t.Fatalf("got %v, %v", v, err)
	}
	if err := place.Write(i, Number(999)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
