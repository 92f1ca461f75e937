/*
File    : rloxj/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/rloxj/ast"
	"github.com/akashmaji946/rloxj/token"
)

// declaration parses one top-level or block-level declaration, recovering
// via synchronize() if it panics with a parseError. This is the resumption
// point spec section 4.2's panic-mode recovery names explicitly.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	switch {
	case p.match(token.Fun):
		return p.funDecl("function")
	case p.match(token.Var):
		return p.varDecl()
	default:
		return p.statement()
	}
}

func (p *Parser) varDecl() ast.Stmt {
	name := p.consume(token.Identifier, "expect variable name.")
	var init ast.Expr
	if p.match(token.Equal) {
		init = p.expression()
	}
	p.consume(token.Semicolon, "expect ';' after variable declaration.")
	return &ast.Var{Name: name, Initializer: init}
}

func (p *Parser) funDecl(kind string) ast.Stmt {
	name := p.consume(token.Identifier, "expect "+kind+" name.")
	p.consume(token.LeftParen, "expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= 255 {
				p.fail(p.peek(), "can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.Identifier, "expect parameter name."))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "expect ')' after parameters.")
	p.consume(token.LeftBrace, "expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.Function{Name: name, Params: params, Body: body}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.Print):
		return p.printStmt()
	case p.match(token.LeftBrace):
		line := p.previous().Line
		return &ast.Block{Statements: p.block(), LineN: line}
	case p.match(token.If):
		return p.ifStmt()
	case p.match(token.While):
		return p.whileStmt()
	case p.match(token.For):
		return p.forStmt()
	case p.match(token.Return):
		return p.returnStmt()
	default:
		return p.exprStmt()
	}
}

func (p *Parser) printStmt() ast.Stmt {
	line := p.previous().Line
	value := p.expression()
	p.consume(token.Semicolon, "expect ';' after value.")
	return &ast.Print{Expr: value, LineN: line}
}

func (p *Parser) exprStmt() ast.Stmt {
	line := p.peek().Line
	expr := p.expression()
	p.consume(token.Semicolon, "expect ';' after expression.")
	return &ast.Expression{Expr: expr, LineN: line}
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(token.RightBrace, "expect '}' after block.")
	return stmts
}

func (p *Parser) ifStmt() ast.Stmt {
	line := p.previous().Line
	p.consume(token.LeftParen, "expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RightParen, "expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return &ast.If{Cond: cond, Then: thenBranch, Else: elseBranch, LineN: line}
}

func (p *Parser) whileStmt() ast.Stmt {
	line := p.previous().Line
	p.consume(token.LeftParen, "expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RightParen, "expect ')' after condition.")
	body := p.statement()
	return &ast.While{Cond: cond, Body: body, LineN: line}
}

// forStmt desugars "for (init; cond; incr) body" into a Block wrapping a
// While, exactly as spec section 4.2 specifies, so the resolver and
// interpreter never need a distinct for-loop case.
func (p *Parser) forStmt() ast.Stmt {
	line := p.previous().Line
	p.consume(token.LeftParen, "expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.match(token.Var):
		initializer = p.varDecl()
	default:
		initializer = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.Semicolon) {
		cond = p.expression()
	}
	p.consume(token.Semicolon, "expect ';' after loop condition.")

	var incr ast.Expr
	if !p.check(token.RightParen) {
		incr = p.expression()
	}
	p.consume(token.RightParen, "expect ')' after for clauses.")

	body := p.statement()

	if incr != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.Expression{Expr: incr, LineN: line}}, LineN: line}
	}
	if cond == nil {
		cond = &ast.Literal{Val: true, LineN: line}
	}
	body = &ast.While{Cond: cond, Body: body, LineN: line}

	if initializer != nil {
		body = &ast.Block{Statements: []ast.Stmt{initializer, body}, LineN: line}
	}
	return body
}

func (p *Parser) returnStmt() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "expect ';' after return value.")
	return &ast.Return{Keyword: keyword, Value: value}
}
