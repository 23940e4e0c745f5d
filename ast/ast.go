// Package ast defines the abstract syntax tree node shapes produced by the
// parser and walked by the interp package's tree-walking evaluator.
package ast

import "github.com/cwbudde/go-tlox/token"

// Expr is any node that produces a value when evaluated.
type Expr interface {
	exprNode()
	// Tok returns a representative token for error reporting.
	Tok() token.Token
}

// Stmt is any node that performs an action.
type Stmt interface {
	stmtNode()
	Tok() token.Token
}

// LiteralKind distinguishes the primitive literal variants, including the
// strong (type-pinned) ones written with a trailing `!`.
type LiteralKind int

const (
	LitNil LiteralKind = iota
	LitNumber
	LitString
	LitBoolean
	LitStrongNumber
	LitStrongString
	LitStrongBoolean
)

type Literal struct {
	Token token.Token
	Kind  LiteralKind
	Num   float64
	Str   string
	Bool  bool
}

func (*Literal) exprNode()         {}
func (l *Literal) Tok() token.Token { return l.Token }

// ListLiteral is the `[e1, e2, ...]` collection constructor.
type ListLiteral struct {
	Bracket  token.Token
	Elements []Expr
}

func (*ListLiteral) exprNode()          {}
func (l *ListLiteral) Tok() token.Token { return l.Bracket }

type VarExpr struct {
	Name token.Token
}

func (*VarExpr) exprNode()          {}
func (v *VarExpr) Tok() token.Token { return v.Name }

type This struct {
	Keyword token.Token
}

func (*This) exprNode()          {}
func (t *This) Tok() token.Token { return t.Keyword }

type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (*Super) exprNode()          {}
func (s *Super) Tok() token.Token { return s.Keyword }

type Grouping struct {
	Paren      token.Token
	Expression Expr
}

func (*Grouping) exprNode()          {}
func (g *Grouping) Tok() token.Token { return g.Paren }

// Unary covers `-x`, `#x` (length) and `!x` (truthiness flip / reverse).
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (*Unary) exprNode()          {}
func (u *Unary) Tok() token.Token { return u.Operator }

// IncDec covers the prefix `++x` / `--x` forms. Target must be a VarExpr,
// Get, or IndexGet — an addressable Place.
type IncDec struct {
	Operator token.Token
	Target   Expr
}

func (*IncDec) exprNode()          {}
func (i *IncDec) Tok() token.Token { return i.Operator }

type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (*Binary) exprNode()          {}
func (b *Binary) Tok() token.Token { return b.Operator }

type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (*Logical) exprNode()          {}
func (l *Logical) Tok() token.Token { return l.Operator }

type Ternary struct {
	Condition Expr
	Question  token.Token
	Then      Expr
	Else      Expr
}

func (*Ternary) exprNode()          {}
func (t *Ternary) Tok() token.Token { return t.Question }

// Assign is a plain-variable assignment or compound assignment
// (`x = v` / `x += v`). AssignOp is token.EQUAL for plain assignment.
type Assign struct {
	Name     token.Token
	AssignOp token.Type
	Value    Expr
}

func (*Assign) exprNode()          {}
func (a *Assign) Tok() token.Token { return a.Name }

type Get struct {
	Object Expr
	Name   token.Token
}

func (*Get) exprNode()          {}
func (g *Get) Tok() token.Token { return g.Name }

// Set is a field write or compound field write (`obj.f = v` / `obj.f += v`).
type Set struct {
	Object   Expr
	Name     token.Token
	AssignOp token.Type
	Value    Expr
}

func (*Set) exprNode()          {}
func (s *Set) Tok() token.Token { return s.Name }

type IndexGet struct {
	Object  Expr
	Bracket token.Token
	Index   Expr
}

func (*IndexGet) exprNode()          {}
func (i *IndexGet) Tok() token.Token { return i.Bracket }

// IndexSet is an indexed write or compound indexed write
// (`coll[i] = v` / `coll[i] += v`), including through a String lvalue.
type IndexSet struct {
	Object   Expr
	Bracket  token.Token
	Index    Expr
	AssignOp token.Type
	Value    Expr
}

func (*IndexSet) exprNode()          {}
func (i *IndexSet) Tok() token.Token { return i.Bracket }

type Call struct {
	Callee    Expr
	Paren     token.Token
	Arguments []Expr
}

func (*Call) exprNode()          {}
func (c *Call) Tok() token.Token { return c.Paren }

// AnonFunction is a `fun(params){ body }` expression. It re-snapshots its
// closure on every evaluation, not just once at parse time.
type AnonFunction struct {
	Keyword token.Token
	Params  []token.Token
	Body    []Stmt
}

func (*AnonFunction) exprNode()          {}
func (a *AnonFunction) Tok() token.Token { return a.Keyword }
