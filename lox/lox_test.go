/*
File    : rloxj/lox/lox_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPrintsAndSucceeds(t *testing.T) {
	var buf bytes.Buffer
	sess := NewSession(&buf)
	status, err := sess.Run(`print 1 + 2;`)
	require.NoError(t, err)
	assert.Equal(t, StatusOK, status)
	assert.Equal(t, "3\n", buf.String())
}

func TestRunPersistsGlobalsAcrossCalls(t *testing.T) {
	var buf bytes.Buffer
	sess := NewSession(&buf)
	_, err := sess.Run(`var a = 1;`)
	require.NoError(t, err)
	_, err = sess.Run(`print a + 1;`)
	require.NoError(t, err)
	assert.Equal(t, "2\n", buf.String())
}

func TestRunReportsFrontendErrorOnBadSyntax(t *testing.T) {
	var buf bytes.Buffer
	sess := NewSession(&buf)
	status, err := sess.Run(`var 1 = 2;`)
	assert.Error(t, err)
	assert.Equal(t, StatusFrontendError, status)
}

func TestRunReportsRuntimeErrorOnUndefinedVariable(t *testing.T) {
	var buf bytes.Buffer
	sess := NewSession(&buf)
	status, err := sess.Run(`print undeclared;`)
	assert.Error(t, err)
	assert.Equal(t, StatusRuntimeError, status)
}

func TestRunExposesBuiltins(t *testing.T) {
	var buf bytes.Buffer
	sess := NewSession(&buf)
	status, err := sess.Run(`print len("hello");`)
	require.NoError(t, err)
	assert.Equal(t, StatusOK, status)
	assert.Equal(t, "5\n", buf.String())
}
