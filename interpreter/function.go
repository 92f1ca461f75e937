/*
File    : rloxj/interpreter/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"fmt"

	"github.com/akashmaji946/rloxj/ast"
	"github.com/akashmaji946/rloxj/environment"
	"github.com/akashmaji946/rloxj/object"
)

// Function is a user-defined Lox function: its declaration, the
// environment it closed over at definition time, and the interpreter that
// will execute its body. Grounded on the teacher's Function
// (function/function.go) — Name/Params/Body/Scp — generalized with an
// interpreter back-reference so Call can run the body itself instead of
// requiring a caller-supplied evaluation callback, which keeps
// object.Callable free of any dependency on this package.
type Function struct {
	declaration *ast.Function
	closure     *environment.Environment
	interp      *Interpreter
}

// NewFunction builds a Function value from a function declaration,
// capturing env as its closure (spec section 4.5: "functions are closures
// over the environment active at definition time").
func NewFunction(decl *ast.Function, env *environment.Environment, interp *Interpreter) *Function {
	return &Function{declaration: decl, closure: env, interp: interp}
}

func (f *Function) GetType() object.Type { return object.CallableType }

func (f *Function) ToString() string {
	return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme)
}

func (f *Function) ToObject() string {
	names := make([]string, len(f.declaration.Params))
	for i, p := range f.declaration.Params {
		names[i] = p.Lexeme
	}
	args := ""
	for i, n := range names {
		if i > 0 {
			args += ", "
		}
		args += n
	}
	return fmt.Sprintf("<func[%s(%s)]>", f.declaration.Name.Lexeme, args)
}

func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

// Call binds args to the function's parameters in a fresh environment
// nested inside the closure, then runs the body. A function with no
// explicit return falls off the end and yields nil (spec section 4.5).
func (f *Function) Call(args []object.Value) (object.Value, error) {
	callEnv := environment.New(f.closure)
	for i, param := range f.declaration.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	result, err := f.interp.executeBlock(f.declaration.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if result.sig == signalReturn {
		return result.value, nil
	}
	return object.NilValue, nil
}
