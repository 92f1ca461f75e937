/*
File    : rloxj/parser/parser_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/rloxj/ast"
	"github.com/akashmaji946/rloxj/token"
)

// call parses "primary ( args? ) ( args? ) ..." — chained calls like
// "mk()()" fall out naturally from the loop, matching spec section 4.2's
// grammar.
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		if p.match(token.LeftParen) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= 255 {
				p.fail(p.peek(), "can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	closingParen := p.consume(token.RightParen, "expect ')' after arguments.")
	return &ast.Call{Callee: callee, ClosingParen: closingParen, Args: args}
}
