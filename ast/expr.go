/*
File    : rloxj/ast/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/rloxj/token"

// Literal is a constant value baked into the source: a number, string,
// boolean, or nil. Val holds the parsed Go value (float64, string, bool, or
// nil) exactly as spec section 3 describes the Value sum's constructors.
type Literal struct {
	Val   any
	LineN int
}

func (l *Literal) exprNode()   {}
func (l *Literal) Line() int   { return l.LineN }

// Unary is a prefix operator applied to a single operand: "-x" or "!x".
type Unary struct {
	Op      token.Token
	Operand Expr
}

func (u *Unary) exprNode() {}
func (u *Unary) Line() int { return u.Op.Line }

// Binary is an infix operator applied to two operands.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (b *Binary) exprNode() {}
func (b *Binary) Line() int { return b.Op.Line }

// Grouping is a parenthesized expression, kept as its own node (rather than
// collapsed away) so diagnostics and the printer can show the source
// grouping the author wrote.
type Grouping struct {
	Inner Expr
	LineN int
}

func (g *Grouping) exprNode() {}
func (g *Grouping) Line() int { return g.LineN }

// Variable is a reference to a named binding. Name carries the identifier
// token so runtime errors ("Undefined variable 'x'.") can report its
// position. This pointer is also the resolver's side-table key for this
// particular syntactic occurrence.
type Variable struct {
	Name token.Token
}

func (v *Variable) exprNode() {}
func (v *Variable) Line() int { return v.Name.Line }

// Assign is "name = value". Like Variable, this pointer's identity is what
// the resolver records a depth against.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (a *Assign) exprNode() {}
func (a *Assign) Line() int { return a.Name.Line }

// Logical is "left and right" / "left or right"; unlike Binary it
// short-circuits and so is evaluated specially by the interpreter (spec
// section 4.6).
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (l *Logical) exprNode() {}
func (l *Logical) Line() int { return l.Op.Line }

// Call is a function invocation. ClosingParen is retained for diagnostics:
// arity mismatches and "not callable" errors report its position.
type Call struct {
	Callee       Expr
	ClosingParen token.Token
	Args         []Expr
}

func (c *Call) exprNode() {}
func (c *Call) Line() int { return c.ClosingParen.Line }
