/*
File    : rloxj/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/rloxj/lox"
	"github.com/stretchr/testify/assert"
)

func TestEvalLinePrintsResultViaSession(t *testing.T) {
	var out bytes.Buffer
	sess := lox.NewSession(&out)
	r := New("banner", "v0", "author", "----", "MIT", "rloxj >>> ")

	r.evalLine(&out, sess, `print 1 + 1;`)
	assert.Equal(t, "2\n", out.String())
}

func TestEvalLinePersistsStateAcrossCalls(t *testing.T) {
	var out bytes.Buffer
	sess := lox.NewSession(&out)
	r := New("banner", "v0", "author", "----", "MIT", "rloxj >>> ")

	r.evalLine(&out, sess, `var a = 10;`)
	r.evalLine(&out, sess, `print a;`)
	assert.Equal(t, "10\n", out.String())
}

func TestEvalLineReportsErrorWithoutPanicking(t *testing.T) {
	var out bytes.Buffer
	sess := lox.NewSession(&out)
	r := New("banner", "v0", "author", "----", "MIT", "rloxj >>> ")

	assert.NotPanics(t, func() {
		r.evalLine(&out, sess, `print undeclared;`)
	})
	assert.True(t, strings.Contains(out.String(), "Undefined variable"))
}

func TestPrintBannerInfoIncludesVersionAndAuthor(t *testing.T) {
	var out bytes.Buffer
	r := New("MY-BANNER", "v1.2.3", "me", "----", "MIT", "rloxj >>> ")
	r.PrintBannerInfo(&out)
	assert.True(t, strings.Contains(out.String(), "v1.2.3"))
	assert.True(t, strings.Contains(out.String(), "me"))
}
