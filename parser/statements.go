package parser

import (
	"github.com/cwbudde/go-tlox/ast"
	"github.com/cwbudde/go-tlox/token"
)

func (p *Parser) declaration() (ast.Stmt, error) {
	switch {
	case p.match(token.CLASS):
		return p.classDeclaration()
	case p.match(token.FUN):
		return p.function("function")
	case p.match(token.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) classDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.IDENTIFIER, "Expect class name.")
	if err != nil {
		return nil, err
	}

	var superclass *ast.VarExpr
	if p.match(token.LESS) {
		superName, err := p.consume(token.IDENTIFIER, "Expect superclass name.")
		if err != nil {
			return nil, err
		}
		superclass = &ast.VarExpr{Name: superName}
	}

	if _, err := p.consume(token.LEFT_BRACE, "Expect '{' before class body."); err != nil {
		return nil, err
	}

	var methods []*ast.Function
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		m, err := p.function("method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, m.(*ast.Function))
	}

	if _, err := p.consume(token.RIGHT_BRACE, "Expect '}' after class body."); err != nil {
		return nil, err
	}

	return &ast.Class{Name: name, Superclass: superclass, Methods: methods}, nil
}

func (p *Parser) function(kind string) (ast.Stmt, error) {
	name, err := p.consume(token.IDENTIFIER, "Expect "+kind+" name.")
	if err != nil {
		return nil, err
	}
	params, body, err := p.functionTail()
	if err != nil {
		return nil, err
	}
	return &ast.Function{Name: name, Params: params, Body: body}, nil
}

// functionTail parses "(" params? ")" "{" block-statements "}" — shared by
// named functions/methods and anonymous function expressions.
func (p *Parser) functionTail() ([]token.Token, []ast.Stmt, error) {
	if _, err := p.consume(token.LEFT_PAREN, "Expect '(' before parameters."); err != nil {
		return nil, nil, err
	}
	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			param, err := p.consume(token.IDENTIFIER, "Expect parameter name.")
			if err != nil {
				return nil, nil, err
			}
			params = append(params, param)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, nil, err
	}
	if _, err := p.consume(token.LEFT_BRACE, "Expect '{' before body."); err != nil {
		return nil, nil, err
	}
	body, err := p.blockStatements()
	if err != nil {
		return nil, nil, err
	}
	return params, body, nil
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.Var{Name: name, Initializer: initializer}, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.LEFT_BRACE):
		stmts, err := p.blockStatements()
		if err != nil {
			return nil, err
		}
		return &ast.Block{LeftBrace: p.previous(), Statements: stmts}, nil
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.FOREACH):
		return p.forEachStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.BREAK):
		kw := p.previous()
		if _, err := p.consume(token.SEMICOLON, "Expect ';' after 'break'."); err != nil {
			return nil, err
		}
		return &ast.Break{Keyword: kw}, nil
	case p.match(token.CONTINUE):
		kw := p.previous()
		if _, err := p.consume(token.SEMICOLON, "Expect ';' after 'continue'."); err != nil {
			return nil, err
		}
		return &ast.Continue{Keyword: kw}, nil
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	kw := p.previous()
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.Print{Keyword: kw, Expression: value}, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expression: expr}, nil
}

// blockStatements parses statements up to (and consuming) the closing '}'.
func (p *Parser) blockStatements() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(token.RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) ifStatement() (ast.Stmt, error) {
	kw := p.previous()
	if _, err := p.consume(token.LEFT_PAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Keyword: kw, Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}, nil
}

func (p *Parser) returnStatement() (ast.Stmt, error) {
	kw := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		var err error
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return &ast.Return{Keyword: kw, Value: value}, nil
}

// flatten inlines a *ast.Block's statements into the parent list, so that
// the unified While primitive can walk a single flat statement list and
// reach the trailing post-step statement(s) directly.
func flatten(stmt ast.Stmt) []ast.Stmt {
	if block, ok := stmt.(*ast.Block); ok {
		var out []ast.Stmt
		for _, s := range block.Statements {
			out = append(out, flatten(s)...)
		}
		return out
	}
	return []ast.Stmt{stmt}
}

func (p *Parser) whileStatement() (ast.Stmt, error) {
	kw := p.previous()
	if _, err := p.consume(token.LEFT_PAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Keyword: kw, Condition: condition, Body: flatten(body), Kind: ast.LoopWhile}, nil
}

// forStatement desugars the classic C-style for loop into an initializer
// followed by the unified While primitive, with the increment clause as the
// loop body's trailing post-step statement.
func (p *Parser) forStatement() (ast.Stmt, error) {
	kw := p.previous()
	if _, err := p.consume(token.LEFT_PAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		initializer = nil
	case p.match(token.VAR):
		v, err := p.varDeclaration()
		if err != nil {
			return nil, err
		}
		initializer = v
	default:
		s, err := p.expressionStatement()
		if err != nil {
			return nil, err
		}
		initializer = s
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		var err error
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		var err error
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	bodyStmts := flatten(body)
	postStep := ast.Stmt(&ast.ExpressionStmt{Expression: &ast.Literal{Token: kw, Kind: ast.LitNil}})
	if increment != nil {
		postStep = &ast.ExpressionStmt{Expression: increment}
	}
	bodyStmts = append(bodyStmts, postStep)

	if condition == nil {
		condition = &ast.Literal{Token: kw, Kind: ast.LitBoolean, Bool: true}
	}

	loop := ast.Stmt(&ast.While{Keyword: kw, Condition: condition, Body: bodyStmts, Kind: ast.LoopFor})

	if initializer == nil {
		return loop, nil
	}
	return &ast.Block{LeftBrace: kw, Statements: []ast.Stmt{initializer, loop}}, nil
}

// forEachStatement desugars `foreach (var x in coll) { body }` into index
// bookkeeping plus the unified While primitive, whose body's trailing two
// statements are the iterator advance and element-binding re-run on
// continue.
func (p *Parser) forEachStatement() (ast.Stmt, error) {
	kw := p.previous()
	if _, err := p.consume(token.LEFT_PAREN, "Expect '(' after 'foreach'."); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.VAR, "Expect 'var' in foreach clause."); err != nil {
		return nil, err
	}
	elemName, err := p.consume(token.IDENTIFIER, "Expect loop variable name."); if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.IN, "Expect 'in' after loop variable."); err != nil {
		return nil, err
	}
	collExpr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after foreach clause."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	collName := token.New(token.IDENTIFIER, "@foreach_coll", nil, kw.Line)
	idxName := token.New(token.IDENTIFIER, "@foreach_idx", nil, kw.Line)

	lenCall := &ast.Call{
		Callee:    &ast.VarExpr{Name: token.New(token.IDENTIFIER, "len", nil, kw.Line)},
		Paren:     kw,
		Arguments: []ast.Expr{&ast.VarExpr{Name: collName}},
	}
	condition := &ast.Binary{
		Left:     &ast.VarExpr{Name: idxName},
		Operator: token.New(token.LESS, "<", nil, kw.Line),
		Right:    lenCall,
	}
	bindElement := &ast.Ternary{
		Condition: &ast.Binary{Left: &ast.VarExpr{Name: idxName}, Operator: token.New(token.LESS, "<", nil, kw.Line), Right: lenCall},
		Question:  token.New(token.QUESTION, "?", nil, kw.Line),
		Then:      &ast.IndexGet{Object: &ast.VarExpr{Name: collName}, Bracket: kw, Index: &ast.VarExpr{Name: idxName}},
		Else:      &ast.Literal{Token: kw, Kind: ast.LitNil},
	}

	setup := []ast.Stmt{
		&ast.Var{Name: collName, Initializer: collExpr},
		&ast.Var{Name: idxName, Initializer: &ast.Literal{Token: kw, Kind: ast.LitNumber, Num: 0}},
		&ast.Var{Name: elemName, Initializer: bindElement},
	}

	advance := &ast.ExpressionStmt{Expression: &ast.Assign{
		Name:     idxName,
		AssignOp: token.PLUS_EQUAL,
		Value:    &ast.Literal{Token: kw, Kind: ast.LitNumber, Num: 1},
	}}
	bind := &ast.ExpressionStmt{Expression: &ast.Assign{
		Name:     elemName,
		AssignOp: token.EQUAL,
		Value:    bindElement,
	}}

	bodyStmts := flatten(body)
	bodyStmts = append(bodyStmts, advance, bind)

	loop := &ast.While{Keyword: kw, Condition: condition, Body: bodyStmts, Kind: ast.LoopForEach}

	return &ast.Block{LeftBrace: kw, Statements: append(setup, loop)}, nil
}
