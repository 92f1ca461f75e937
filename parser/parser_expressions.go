/*
File    : rloxj/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/rloxj/ast"
	"github.com/akashmaji946/rloxj/errs"
	"github.com/akashmaji946/rloxj/token"
)

// expression is the entry point for the precedence chain in spec section
// 4.2: assignment → logic_or → logic_and → equality → comparison → term →
// factor → unary → call → primary.
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment parses "target = value", validating afterward that target was
// a bare Variable (the only assignable form this grammar supports).
// Anything else is reported at the '=' token but parsing continues, per
// spec section 4.2's "Assignment validity" rule.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}
		}
		p.errors.Add(errs.Parse, errs.Position{Line: equals.Line, Column: equals.Column}, "invalid assignment target.")
		return expr
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.Or) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Minus, token.Plus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Slash, token.Star) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		operand := p.unary()
		return &ast.Unary{Op: op, Operand: operand}
	}
	return p.call()
}

func (p *Parser) primary() ast.Expr {
	tok := p.peek()
	switch {
	case p.match(token.False):
		return &ast.Literal{Val: false, LineN: tok.Line}
	case p.match(token.True):
		return &ast.Literal{Val: true, LineN: tok.Line}
	case p.match(token.Nil):
		return &ast.Literal{Val: nil, LineN: tok.Line}
	case p.match(token.Number, token.String):
		return &ast.Literal{Val: p.previous().Literal, LineN: tok.Line}
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "expect ')' after expression.")
		return &ast.Grouping{Inner: expr, LineN: tok.Line}
	}
	p.fail(tok, "expect expression.")
	panic("unreachable")
}
