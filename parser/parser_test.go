package parser

import (
	"testing"

	"github.com/cwbudde/go-tlox/ast"
	"github.com/cwbudde/go-tlox/lexer"
	"github.com/cwbudde/go-tlox/token"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	stmts, errs := Parse(lexer.Tokenize(src))
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	return stmts
}

func TestParseVarDeclaration(t *testing.T) {
	stmts := parse(t, `var a = 1;`)
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	v, ok := stmts[0].(*ast.Var)
	if !ok {
		t.Fatalf("got %T, want *ast.Var", stmts[0])
	}
	if v.Name.Lexeme != "a" {
		t.Errorf("name = %q", v.Name.Lexeme)
	}
	lit, ok := v.Initializer.(*ast.Literal)
	if !ok || lit.Kind != ast.LitNumber || lit.Num != 1 {
		t.Errorf("initializer = %#v", v.Initializer)
	}
}

func TestParseAssignmentTargets(t *testing.T) {
	stmts := parse(t, `a = 1; a.b = 2; a[0] = 3; a += 1; a.b -= 1; a[0] *= 2;`)
	wantTypes := []any{&ast.Assign{}, &ast.Set{}, &ast.IndexSet{}, &ast.Assign{}, &ast.Set{}, &ast.IndexSet{}}
	if len(stmts) != len(wantTypes) {
		t.Fatalf("got %d statements, want %d", len(stmts), len(wantTypes))
	}
	for i, s := range stmts {
		exprStmt := s.(*ast.ExpressionStmt)
		switch wantTypes[i].(type) {
		case *ast.Assign:
			if _, ok := exprStmt.Expression.(*ast.Assign); !ok {
				t.Errorf("stmt %d: got %T, want *ast.Assign", i, exprStmt.Expression)
			}
		case *ast.Set:
			if _, ok := exprStmt.Expression.(*ast.Set); !ok {
				t.Errorf("stmt %d: got %T, want *ast.Set", i, exprStmt.Expression)
			}
		case *ast.IndexSet:
			if _, ok := exprStmt.Expression.(*ast.IndexSet); !ok {
				t.Errorf("stmt %d: got %T, want *ast.IndexSet", i, exprStmt.Expression)
			}
		}
	}
}

func TestParseTernaryAndLogical(t *testing.T) {
	stmts := parse(t, `var a = true ? 1 : 2 or false;`)
	v := stmts[0].(*ast.Var)
	if _, ok := v.Initializer.(*ast.Ternary); !ok {
		t.Fatalf("got %T, want *ast.Ternary", v.Initializer)
	}
}

func TestParseIncDecRequiresPlace(t *testing.T) {
	_, errs := Parse(lexer.Tokenize(`++1;`))
	if len(errs) == 0 {
		t.Fatal("expected a parse error for ++1")
	}
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts := parse(t, `for (var i = 0; i < 5; i = i + 1) { print i; }`)
	block := stmts[0].(*ast.Block)
	if len(block.Statements) != 2 {
		t.Fatalf("got %d statements in desugared block, want 2", len(block.Statements))
	}
	if _, ok := block.Statements[0].(*ast.Var); !ok {
		t.Fatalf("first statement = %T, want *ast.Var", block.Statements[0])
	}
	while, ok := block.Statements[1].(*ast.While)
	if !ok {
		t.Fatalf("second statement = %T, want *ast.While", block.Statements[1])
	}
	if while.Kind != ast.LoopFor {
		t.Errorf("loop kind = %v, want LoopFor", while.Kind)
	}
	if len(while.Body) != 2 {
		t.Fatalf("got %d body statements, want 2 (print + post-step)", len(while.Body))
	}
}

func TestParseForEachDesugarsToWhile(t *testing.T) {
	stmts := parse(t, `foreach (var x in [1,2,3]) { print x; }`)
	block := stmts[0].(*ast.Block)
	var while *ast.While
	for _, s := range block.Statements {
		if w, ok := s.(*ast.While); ok {
			while = w
		}
	}
	if while == nil {
		t.Fatal("expected a desugared While statement")
	}
	if while.Kind != ast.LoopForEach {
		t.Errorf("loop kind = %v, want LoopForEach", while.Kind)
	}
	if len(while.Body) != 3 {
		t.Fatalf("got %d body statements, want 3 (print + advance + bind)", len(while.Body))
	}
}

func TestParseClassWithSuperclass(t *testing.T) {
	stmts := parse(t, `class B < A { B(x) { super.A(x); } get() { return this.x; } }`)
	class := stmts[0].(*ast.Class)
	if class.Superclass == nil || class.Superclass.Name.Lexeme != "A" {
		t.Fatalf("superclass = %#v", class.Superclass)
	}
	if len(class.Methods) != 2 {
		t.Fatalf("got %d methods, want 2", len(class.Methods))
	}
}

func TestParseAnonFunction(t *testing.T) {
	stmts := parse(t, `var f = fun(x) { return x + 1; };`)
	v := stmts[0].(*ast.Var)
	anon, ok := v.Initializer.(*ast.AnonFunction)
	if !ok {
		t.Fatalf("got %T, want *ast.AnonFunction", v.Initializer)
	}
	if len(anon.Params) != 1 || anon.Params[0].Lexeme != "x" {
		t.Errorf("params = %#v", anon.Params)
	}
}

func TestSynchronizeRecoversAfterError(t *testing.T) {
	_, errs := Parse(lexer.Tokenize(`var ; var b = 1;`))
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
}

func TestParseErrorMessageFormat(t *testing.T) {
	_, errs := Parse(lexer.Tokenize(`var a =`))
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	pe, ok := errs[0].(*ParseError)
	if !ok {
		t.Fatalf("got %T, want *ParseError", errs[0])
	}
	if pe.Token.Type != token.EOF {
		t.Errorf("error token = %v, want EOF", pe.Token.Type)
	}
}
