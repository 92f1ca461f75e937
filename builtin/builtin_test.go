/*
File    : rloxj/builtin/builtin_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/rloxj/interpreter"
	"github.com/akashmaji946/rloxj/lexer"
	"github.com/akashmaji946/rloxj/parser"
	"github.com/akashmaji946/rloxj/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) string {
	t.Helper()
	toks, err := lexer.ScanTokens(src)
	require.NoError(t, err)
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)
	depths, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	in := interpreter.New()
	Register(in)
	var buf bytes.Buffer
	in.SetWriter(&buf)
	in.SetDepths(depths)
	require.NoError(t, in.Interpret(stmts))
	return buf.String()
}

func TestLenOnString(t *testing.T) {
	assert.Equal(t, "5\n", run(t, `print len("hello");`))
}

func TestTypeOnValues(t *testing.T) {
	assert.Equal(t, "number\n", run(t, `print type(1);`))
	assert.Equal(t, "string\n", run(t, `print type("x");`))
	assert.Equal(t, "bool\n", run(t, `print type(true);`))
	assert.Equal(t, "nil\n", run(t, `print type(nil);`))
}

func TestStrAndNumRoundtrip(t *testing.T) {
	assert.Equal(t, "42\n", run(t, `print str(42);`))
	assert.Equal(t, "42\n", run(t, `print num("42");`))
}

func TestUpperLowerTrim(t *testing.T) {
	assert.Equal(t, "HELLO\n", run(t, `print upper("hello");`))
	assert.Equal(t, "hello\n", run(t, `print lower("HELLO");`))
	assert.Equal(t, "hi\n", run(t, `print trim("  hi  ");`))
}

func TestJoinSplitRoundtrip(t *testing.T) {
	assert.Equal(t, "a-b-c\n", run(t, `print join(split("a,b,c", ","), "-");`))
}

func TestMathFunctions(t *testing.T) {
	assert.Equal(t, "4\n", run(t, `print sqrt(16);`))
	assert.Equal(t, "8\n", run(t, `print pow(2, 3);`))
	assert.Equal(t, "5\n", run(t, `print abs(-5);`))
	assert.Equal(t, "2\n", run(t, `print floor(2.9);`))
	assert.Equal(t, "3\n", run(t, `print ceil(2.1);`))
	assert.Equal(t, "1\n", run(t, `print min(1, 2);`))
	assert.Equal(t, "2\n", run(t, `print max(1, 2);`))
}

func TestMatchBuiltin(t *testing.T) {
	assert.Equal(t, "true\n", run(t, `print match("hello123", "[0-9]+");`))
	assert.Equal(t, "false\n", run(t, `print match("hello", "[0-9]+");`))
}

func TestHashBuiltins(t *testing.T) {
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592\n", run(t, `print md5("hello");`))
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824\n", run(t, `print sha256("hello");`))
}

func TestJsonEncodeScalars(t *testing.T) {
	assert.Equal(t, "42\n", run(t, `print jsonEncode(42);`))
	assert.Equal(t, "\"hi\"\n", run(t, `print jsonEncode("hi");`))
	assert.Equal(t, "true\n", run(t, `print jsonEncode(true);`))
	assert.Equal(t, "null\n", run(t, `print jsonEncode(nil);`))
}

func TestClockReturnsNumber(t *testing.T) {
	assert.NotPanics(t, func() {
		run(t, `print clock() > 0;`)
	})
}
