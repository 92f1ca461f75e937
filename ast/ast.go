/*
File    : rloxj/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the tagged-sum tree produced by the parser: Expr and
// Stmt node families, each a closed set of pointer types. A node's pointer
// value is its identity — the resolver's side table and the interpreter's
// variable lookup both key on the *Variable or *Assign pointer, never on a
// copy, so callers must always pass the node around by the pointer the
// parser allocated.
package ast

// Node is implemented by every Expr and Stmt so generic tree walkers (the
// printer, error reporting) can ask for a node's source line without a type
// switch.
type Node interface {
	Line() int
}

// Expr is the sum type of every expression node: Literal, Unary, Binary,
// Grouping, Variable, Assign, Logical, Call.
type Expr interface {
	Node
	exprNode()
}

// Stmt is the sum type of every statement node: Expression, Print, Var,
// Block, If, While, Function, Return.
type Stmt interface {
	Node
	stmtNode()
}
