// Package errors defines the runtime error type the evaluator returns: a
// categorized error carrying source position and a human message, that
// implements the standard error interface so it composes with %w/errors.Is.
package errors

import (
	"fmt"

	"github.com/cwbudde/go-tlox/token"
)

// Category groups runtime errors by the kind of contract they violate.
type Category string

const (
	CategoryType      Category = "Type"
	CategoryArity     Category = "Arity"
	CategoryUndefined Category = "Undefined"
	CategoryInherit   Category = "Inheritance"
	CategoryAssign    Category = "Assignment"
	CategoryControl   Category = "Control"
)

// RuntimeError is the (token, message) pair every evaluator operation may
// return instead of a value.
type RuntimeError struct {
	Category Category
	Token    token.Token
	Message  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Runtime error: %s", e.Token.Line, e.Message)
}

func New(category Category, tok token.Token, message string) *RuntimeError {
	return &RuntimeError{Category: category, Token: tok, Message: message}
}

func Newf(category Category, tok token.Token, format string, args ...any) *RuntimeError {
	return New(category, tok, fmt.Sprintf(format, args...))
}

func NewType(tok token.Token, message string) *RuntimeError {
	return New(CategoryType, tok, message)
}

func NewArity(tok token.Token, expected, got int) *RuntimeError {
	return Newf(CategoryArity, tok, "Expected %d arguments but got %d.", expected, got)
}

func NewUndefinedVariable(tok token.Token) *RuntimeError {
	return Newf(CategoryUndefined, tok, "Undefined variable '%s'.", tok.Lexeme)
}

func NewUndefinedProperty(tok token.Token) *RuntimeError {
	return Newf(CategoryUndefined, tok, "Undefined property '%s'.", tok.Lexeme)
}

func NewInherit(tok token.Token, message string) *RuntimeError {
	return New(CategoryInherit, tok, message)
}

func NewAssign(tok token.Token, message string) *RuntimeError {
	return New(CategoryAssign, tok, message)
}

func NewControl(tok token.Token, message string) *RuntimeError {
	return New(CategoryControl, tok, message)
}
