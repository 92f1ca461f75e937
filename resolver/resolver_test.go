/*
File    : rloxj/resolver/resolver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import (
	"testing"

	"github.com/akashmaji946/rloxj/ast"
	"github.com/akashmaji946/rloxj/lexer"
	"github.com/akashmaji946/rloxj/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	toks, err := lexer.ScanTokens(src)
	require.NoError(t, err)
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)
	return stmts
}

func TestResolveLocalShadowing(t *testing.T) {
	stmts := mustParse(t, `
		var a = "global";
		{
			var a = "local";
			print a;
		}
	`)
	depths, err := Resolve(stmts)
	require.NoError(t, err)

	block := stmts[1].(*ast.Block)
	printStmt := block.Statements[1].(*ast.Print)
	v := printStmt.Expr.(*ast.Variable)
	assert.Equal(t, 0, depths[v])
}

func TestResolveClosureDepth(t *testing.T) {
	stmts := mustParse(t, `
		fun outer() {
			var x = 1;
			fun inner() {
				print x;
			}
			return inner;
		}
	`)
	depths, err := Resolve(stmts)
	require.NoError(t, err)

	outer := stmts[0].(*ast.Function)
	inner := outer.Body[1].(*ast.Function)
	printStmt := inner.Body[0].(*ast.Print)
	v := printStmt.Expr.(*ast.Variable)
	assert.Equal(t, 1, depths[v])
}

func TestResolveGlobalLeftUnresolved(t *testing.T) {
	stmts := mustParse(t, `
		var g = 1;
		print g;
	`)
	depths, err := Resolve(stmts)
	require.NoError(t, err)

	printStmt := stmts[1].(*ast.Print)
	v := printStmt.Expr.(*ast.Variable)
	_, ok := depths[v]
	assert.False(t, ok)
}

func TestResolveSelfReferentialInitializerIsError(t *testing.T) {
	stmts := mustParse(t, `
		{
			var a = a;
		}
	`)
	_, err := Resolve(stmts)
	require.Error(t, err)
}

func TestResolveReturnOutsideFunctionIsError(t *testing.T) {
	stmts := mustParse(t, `return 1;`)
	_, err := Resolve(stmts)
	require.Error(t, err)
}

func TestResolveReturnInsideFunctionIsFine(t *testing.T) {
	stmts := mustParse(t, `
		fun f() {
			return 1;
		}
	`)
	_, err := Resolve(stmts)
	require.NoError(t, err)
}
