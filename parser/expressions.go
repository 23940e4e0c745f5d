package parser

import (
	"github.com/cwbudde/go-tlox/ast"
	"github.com/cwbudde/go-tlox/token"
)

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment handles plain and compound assignment to the three Place
// shapes (variable, field, index), converting the parsed left-hand
// expression into the matching Assign/Set/IndexSet node.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.ternary()
	if err != nil {
		return nil, err
	}

	if p.matchAssignOp() {
		op := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		switch target := expr.(type) {
		case *ast.VarExpr:
			return &ast.Assign{Name: target.Name, AssignOp: op.Type, Value: value}, nil
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, AssignOp: op.Type, Value: value}, nil
		case *ast.IndexGet:
			return &ast.IndexSet{Object: target.Object, Bracket: target.Bracket, Index: target.Index, AssignOp: op.Type, Value: value}, nil
		default:
			return nil, &ParseError{Token: op, Message: "Invalid assignment target."}
		}
	}

	return expr, nil
}

func (p *Parser) matchAssignOp() bool {
	return p.match(token.EQUAL, token.PLUS_EQUAL, token.MINUS_EQUAL, token.STAR_EQUAL, token.SLASH_EQUAL, token.MOD_EQUAL)
}

func (p *Parser) ternary() (ast.Expr, error) {
	expr, err := p.logicOr()
	if err != nil {
		return nil, err
	}
	if p.match(token.QUESTION) {
		question := p.previous()
		then, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.COLON, "Expect ':' in ternary expression."); err != nil {
			return nil, err
		}
		elseExpr, err := p.ternary()
		if err != nil {
			return nil, err
		}
		return &ast.Ternary{Condition: expr, Question: question, Then: then, Else: elseExpr}, nil
	}
	return expr, nil
}

func (p *Parser) logicOr() (ast.Expr, error) {
	expr, err := p.logicAnd()
	if err != nil {
		return nil, err
	}
	for p.match(token.OR) {
		op := p.previous()
		right, err := p.logicAnd()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) logicAnd() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(token.AND) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(token.SLASH, token.STAR, token.MOD) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

// unary handles the prefix operators `!`, `-`, `#` (length) and the
// prefix-only increment/decrement forms, which require their operand to be
// an addressable Place.
func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.BANG, token.MINUS, token.HASH) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: op, Right: right}, nil
	}
	if p.match(token.INCR, token.DECR) {
		op := p.previous()
		target, err := p.unary()
		if err != nil {
			return nil, err
		}
		if !isPlace(target) {
			return nil, &ParseError{Token: op, Message: "Invalid increment/decrement target."}
		}
		return &ast.IncDec{Operator: op, Target: target}, nil
	}
	return p.call()
}

func isPlace(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.VarExpr, *ast.Get, *ast.IndexGet:
		return true
	}
	return false
}

// call parses a primary expression followed by any number of call,
// property-access, or index-access suffixes.
func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(token.DOT):
			name, err := p.consume(token.IDENTIFIER, "Expect property name after '.'.")
			if err != nil {
				return nil, err
			}
			expr = &ast.Get{Object: expr, Name: name}
		case p.match(token.LEFT_BRACKET):
			bracket := p.previous()
			index, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(token.RIGHT_BRACKET, "Expect ']' after index."); err != nil {
				return nil, err
			}
			expr = &ast.IndexGet{Object: expr, Bracket: bracket, Index: index}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren, err := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Token: p.previous(), Kind: ast.LitBoolean, Bool: false}, nil
	case p.match(token.TRUE):
		return &ast.Literal{Token: p.previous(), Kind: ast.LitBoolean, Bool: true}, nil
	case p.match(token.STRONG_FALSE):
		return &ast.Literal{Token: p.previous(), Kind: ast.LitStrongBoolean, Bool: false}, nil
	case p.match(token.STRONG_TRUE):
		return &ast.Literal{Token: p.previous(), Kind: ast.LitStrongBoolean, Bool: true}, nil
	case p.match(token.NIL):
		return &ast.Literal{Token: p.previous(), Kind: ast.LitNil}, nil
	case p.match(token.NUMBER):
		tok := p.previous()
		return &ast.Literal{Token: tok, Kind: ast.LitNumber, Num: tok.Literal.(float64)}, nil
	case p.match(token.STRONG_NUMBER):
		tok := p.previous()
		return &ast.Literal{Token: tok, Kind: ast.LitStrongNumber, Num: tok.Literal.(float64)}, nil
	case p.match(token.STRING):
		tok := p.previous()
		return &ast.Literal{Token: tok, Kind: ast.LitString, Str: tok.Literal.(string)}, nil
	case p.match(token.STRONG_STRING):
		tok := p.previous()
		return &ast.Literal{Token: tok, Kind: ast.LitStrongString, Str: tok.Literal.(string)}, nil
	case p.match(token.THIS):
		return &ast.This{Keyword: p.previous()}, nil
	case p.match(token.SUPER):
		keyword := p.previous()
		if _, err := p.consume(token.DOT, "Expect '.' after 'super'."); err != nil {
			return nil, err
		}
		method, err := p.consume(token.IDENTIFIER, "Expect superclass method name.")
		if err != nil {
			return nil, err
		}
		return &ast.Super{Keyword: keyword, Method: method}, nil
	case p.match(token.IDENTIFIER):
		return &ast.VarExpr{Name: p.previous()}, nil
	case p.match(token.LEFT_PAREN):
		paren := p.previous()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Paren: paren, Expression: expr}, nil
	case p.match(token.LEFT_BRACKET):
		bracket := p.previous()
		var elements []ast.Expr
		if !p.check(token.RIGHT_BRACKET) {
			for {
				el, err := p.expression()
				if err != nil {
					return nil, err
				}
				elements = append(elements, el)
				if !p.match(token.COMMA) {
					break
				}
			}
		}
		if _, err := p.consume(token.RIGHT_BRACKET, "Expect ']' after list elements."); err != nil {
			return nil, err
		}
		return &ast.ListLiteral{Bracket: bracket, Elements: elements}, nil
	case p.match(token.FUN):
		keyword := p.previous()
		params, body, err := p.functionTail()
		if err != nil {
			return nil, err
		}
		return &ast.AnonFunction{Keyword: keyword, Params: params, Body: body}, nil
	default:
		return nil, &ParseError{Token: p.peek(), Message: "Expect expression."}
	}
}
