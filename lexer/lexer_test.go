/*
File    : rloxj/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/akashmaji946/rloxj/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanTokensBasic(t *testing.T) {
	toks, err := ScanTokens(`var a = 1 + 2.5;`)
	require.NoError(t, err)

	kinds := make([]token.Type, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Type
	}
	assert.Equal(t, []token.Type{
		token.Var, token.Identifier, token.Equal, token.Number,
		token.Plus, token.Number, token.Semicolon, token.EOF,
	}, kinds)
	assert.Equal(t, 1.0, toks[3].Literal)
	assert.Equal(t, 2.5, toks[5].Literal)
}

func TestScanTokensKeywordsAndIdentifiers(t *testing.T) {
	toks, err := ScanTokens(`fun foo() { return nil; }`)
	require.NoError(t, err)
	assert.Equal(t, token.Fun, toks[0].Type)
	assert.Equal(t, token.Identifier, toks[1].Type)
	assert.Equal(t, "foo", toks[1].Lexeme)
	assert.Equal(t, token.Return, toks[5].Type)
	assert.Equal(t, token.Nil, toks[6].Type)
}

func TestScanTokensString(t *testing.T) {
	toks, err := ScanTokens(`"hello world"`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.String, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestScanTokensUnterminatedStringAccumulatesError(t *testing.T) {
	_, err := ScanTokens(`"unterminated`)
	require.Error(t, err)
}

func TestScanTokensLineComment(t *testing.T) {
	toks, err := ScanTokens("var a = 1; // comment\nvar b = 2;")
	require.NoError(t, err)
	// the comment must not appear as tokens; both var decls should be present
	count := 0
	for _, tok := range toks {
		if tok.Type == token.Var {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestScanTokensAccumulatesMultipleErrors(t *testing.T) {
	_, err := ScanTokens("var a = @; var b = #;")
	require.Error(t, err)
	list, ok := err.(interface{ Len() int })
	require.True(t, ok)
	assert.Equal(t, 2, list.Len())
}

func TestScanTokensMultiCharOperators(t *testing.T) {
	toks, err := ScanTokens(`!= == <= >=`)
	require.NoError(t, err)
	assert.Equal(t, []token.Type{token.BangEqual, token.EqualEqual, token.LessEqual, token.GreaterEqual, token.EOF},
		[]token.Type{toks[0].Type, toks[1].Type, toks[2].Type, toks[3].Type, toks[4].Type})
}

func TestScanTokensTracksLineNumbers(t *testing.T) {
	toks, err := ScanTokens("var a = 1;\nvar b = 2;")
	require.NoError(t, err)
	assert.Equal(t, 1, toks[0].Line)
	var foundSecondLine bool
	for _, tok := range toks {
		if tok.Type == token.Var && tok.Line == 2 {
			foundSecondLine = true
		}
	}
	assert.True(t, foundSecondLine)
}
