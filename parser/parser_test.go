/*
File    : rloxj/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/rloxj/ast"
	"github.com/akashmaji946/rloxj/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	toks, err := lexer.ScanTokens(src)
	require.NoError(t, err)
	stmts, err := Parse(toks)
	require.NoError(t, err)
	return stmts
}

func TestParsePrintExpression(t *testing.T) {
	stmts := mustParse(t, `print 1 + 2 * 3;`)
	require.Len(t, stmts, 1)
	p, ok := stmts[0].(*ast.Print)
	require.True(t, ok)
	assert.Equal(t, "(+ 1 (* 2 3))", ast.Sprint(p.Expr))
}

func TestParseVarDeclAndAssignment(t *testing.T) {
	stmts := mustParse(t, `var a = 1; a = 2;`)
	require.Len(t, stmts, 2)
	v, ok := stmts[0].(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "a", v.Name.Lexeme)

	exprStmt, ok := stmts[1].(*ast.Expression)
	require.True(t, ok)
	assign, ok := exprStmt.Expr.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "a", assign.Name.Lexeme)
}

func TestParseIfElse(t *testing.T) {
	stmts := mustParse(t, `if (0) print "t"; else print "f";`)
	require.Len(t, stmts, 1)
	ifStmt, ok := stmts[0].(*ast.If)
	require.True(t, ok)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts := mustParse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.Len(t, stmts, 1)
	block, ok := stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)
	_, isVar := block.Statements[0].(*ast.Var)
	assert.True(t, isVar)
	_, isWhile := block.Statements[1].(*ast.While)
	assert.True(t, isWhile)
}

func TestParseFunctionDecl(t *testing.T) {
	stmts := mustParse(t, `fun add(a, b) { return a + b; }`)
	require.Len(t, stmts, 1)
	fn, ok := stmts[0].(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	require.Len(t, fn.Body, 1)
}

func TestParseInvalidAssignmentTargetRecordsError(t *testing.T) {
	toks, err := lexer.ScanTokens(`1 + 2 = 3;`)
	require.NoError(t, err)
	_, err = Parse(toks)
	require.Error(t, err)
}

func TestParseMissingSemicolonSynchronizes(t *testing.T) {
	toks, err := lexer.ScanTokens(`var a = 1 var b = 2;`)
	require.NoError(t, err)
	_, err = Parse(toks)
	require.Error(t, err)
}

func TestParseCallArityCap(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"
	toks, err := lexer.ScanTokens(src)
	require.NoError(t, err)
	_, err = Parse(toks)
	require.Error(t, err)
}
