/*
File    : rloxj/ast/printer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"fmt"
	"strings"
)

// Sprint renders a parenthesized Lisp-style dump of an expression tree, used
// by tests to assert parse shape without comparing node pointers. Adapted
// from the teacher's PrintingVisitor (main/print_visitor.go), which walked
// GoMix's NodeVisitor interface the same way; this version switches on the
// narrower Expr sum directly rather than implementing every NodeVisitor
// method, since Go's type switch plays that role without a visitor
// interface for a closed, small node set.
func Sprint(e Expr) string {
	var b strings.Builder
	printExpr(&b, e)
	return b.String()
}

func printExpr(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Literal:
		fmt.Fprintf(b, "%v", n.Val)
	case *Grouping:
		parenthesize(b, "group", n.Inner)
	case *Unary:
		parenthesize(b, n.Op.Lexeme, n.Operand)
	case *Binary:
		parenthesize(b, n.Op.Lexeme, n.Left, n.Right)
	case *Logical:
		parenthesize(b, n.Op.Lexeme, n.Left, n.Right)
	case *Variable:
		b.WriteString(n.Name.Lexeme)
	case *Assign:
		parenthesize(b, "= "+n.Name.Lexeme, n.Value)
	case *Call:
		args := make([]Expr, 0, len(n.Args)+1)
		args = append(args, n.Callee)
		args = append(args, n.Args...)
		parenthesize(b, "call", args...)
	default:
		b.WriteString("<?>")
	}
}

func parenthesize(b *strings.Builder, name string, exprs ...Expr) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		printExpr(b, e)
	}
	b.WriteByte(')')
}
