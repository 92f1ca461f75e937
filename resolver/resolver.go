/*
File    : rloxj/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver implements the static pass that binds each variable use
// to a lexical scope depth, so the interpreter can look up bindings in
// O(1) instead of walking the environment chain name-by-name at runtime
// (spec section 4.3).
//
// The teacher (go-mix) has no counterpart to this pass — its Scope chain is
// walked dynamically at every lookup. This module is grounded instead on
// mna-nenuphar/lang/resolver's scope-stack push/pop and declare/define
// shape, and on original_source/src/resolver.rs for the literal Lox
// semantics this spec calls for (begin_scope/end_scope/declare/define/
// resolve_local).
package resolver

import (
	"github.com/akashmaji946/rloxj/ast"
	"github.com/akashmaji946/rloxj/errs"
	"github.com/akashmaji946/rloxj/token"
)

// Depths is the resolver's side table: for each Variable or Assign node
// (keyed by its own pointer identity, per spec section 3), the number of
// environment hops from the scope active at that node to the scope
// defining the name. A node absent from this map is a global lookup.
type Depths map[ast.Expr]int

// funcType tracks whether the resolver is currently inside a function body,
// used to reject "return" at the top level (see the Open Question decision
// recorded in DESIGN.md).
type funcType int

const (
	noFunction funcType = iota
	inFunction
)

type scopeEntry struct {
	ready bool
}

type resolver struct {
	scopes      []map[string]*scopeEntry
	depths      Depths
	errors      errs.List
	currentFunc funcType
}

// Resolve runs the resolver over a full program's statements and returns
// the depth side table, or a non-nil error (wrapping an errs.List) if any
// static misuse was found. Per spec section 4.3, the front end halts
// before execution when this returns an error.
func Resolve(stmts []ast.Stmt) (Depths, error) {
	r := &resolver{depths: make(Depths)}
	r.resolveStmts(stmts)
	if err := r.errors.Err(); err != nil {
		return nil, err
	}
	return r.depths, nil
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]*scopeEntry))
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) declare(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = &scopeEntry{ready: false}
}

func (r *resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = &scopeEntry{ready: true}
}

func (r *resolver) errorf(tok token.Token, msg string) {
	r.errors.Add(errs.Resolver, errs.Position{Line: tok.Line, Column: tok.Column}, msg)
}

// resolveLocal searches the scope stack innermost-out for name, recording a
// depth on node if found. An unresolved name is assumed global (spec
// section 4.3) and simply left out of the side table.
func (r *resolver) resolveLocal(node ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.depths[node] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(stmt ast.Stmt) {
	switch n := stmt.(type) {
	case *ast.Expression:
		r.resolveExpr(n.Expr)
	case *ast.Print:
		r.resolveExpr(n.Expr)
	case *ast.Var:
		r.declare(n.Name.Lexeme)
		if n.Initializer != nil {
			r.resolveExpr(n.Initializer)
		}
		r.define(n.Name.Lexeme)
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(n.Statements)
		r.endScope()
	case *ast.If:
		r.resolveExpr(n.Cond)
		r.resolveStmt(n.Then)
		if n.Else != nil {
			r.resolveStmt(n.Else)
		}
	case *ast.While:
		r.resolveExpr(n.Cond)
		r.resolveStmt(n.Body)
	case *ast.Function:
		r.declare(n.Name.Lexeme)
		r.define(n.Name.Lexeme)
		r.resolveFunction(n)
	case *ast.Return:
		if r.currentFunc == noFunction {
			r.errorf(n.Keyword, "Can't return from top-level code.")
		}
		if n.Value != nil {
			r.resolveExpr(n.Value)
		}
	}
}

func (r *resolver) resolveFunction(fn *ast.Function) {
	enclosing := r.currentFunc
	r.currentFunc = inFunction

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param.Lexeme)
		r.define(param.Lexeme)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunc = enclosing
}

func (r *resolver) resolveExpr(expr ast.Expr) {
	switch n := expr.(type) {
	case *ast.Literal:
		// no scope effect
	case *ast.Grouping:
		r.resolveExpr(n.Inner)
	case *ast.Unary:
		r.resolveExpr(n.Operand)
	case *ast.Binary:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)
	case *ast.Logical:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if entry, ok := r.scopes[len(r.scopes)-1][n.Name.Lexeme]; ok && !entry.ready {
				r.errorf(n.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(n, n.Name.Lexeme)
	case *ast.Assign:
		r.resolveExpr(n.Value)
		r.resolveLocal(n, n.Name.Lexeme)
	case *ast.Call:
		r.resolveExpr(n.Callee)
		for _, arg := range n.Args {
			r.resolveExpr(arg)
		}
	}
}
