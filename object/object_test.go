/*
File    : rloxj/object/object_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToStringDropsTrailingZero(t *testing.T) {
	assert.Equal(t, "3", Number{Value: 3}.ToString())
	assert.Equal(t, "3.25", Number{Value: 3.25}.ToString())
	assert.Equal(t, "-2", Number{Value: -2}.ToString())
}

func TestIsTruthy(t *testing.T) {
	assert.False(t, IsTruthy(Nil{}))
	assert.False(t, IsTruthy(Bool{Value: false}))
	assert.True(t, IsTruthy(Bool{Value: true}))
	assert.True(t, IsTruthy(Number{Value: 0}))
	assert.True(t, IsTruthy(String{Value: ""}))
}

func TestEqualCrossTypeIsFalse(t *testing.T) {
	assert.False(t, Equal(Number{Value: 1}, String{Value: "1"}))
	assert.True(t, Equal(Nil{}, Nil{}))
	assert.True(t, Equal(Number{Value: 2}, Number{Value: 2}))
	assert.False(t, Equal(Number{Value: 2}, Number{Value: 3}))
}

func TestTypeNameForPrimitives(t *testing.T) {
	assert.Equal(t, "number", TypeName(Number{Value: 1}))
	assert.Equal(t, "string", TypeName(String{Value: "x"}))
	assert.Equal(t, "bool", TypeName(Bool{Value: true}))
	assert.Equal(t, "nil", TypeName(Nil{}))
}
