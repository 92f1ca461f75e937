/*
File    : rloxj/interpreter/interpreter_statements.go
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

// Interpret runs a full program's top-level statements in the global
// environment, stopping at the first runtime error (spec section 4.6's
// "runtime errors are fatal" rule — unlike lexical/parse/resolver errors,
// which accumulate).
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		result, err := in.executeStmt(stmt)
		if err != nil {
			return err
		}
		if result.sig == signalReturn {
			return runtimeErrorf(stmt.Line(), 0, "Can't return from top-level code.")
		}
	}
	return nil
}

// executeStmts runs a list of statements in the current environment,
// stopping at the first error or the first signalReturn — the same
// early-exit loop as the teacher's evalStatements, narrowed to the one
// control signal Lox has (no break/continue).
func (in *Interpreter) executeStmts(stmts []ast.Stmt) (execResult, error) {
	result := normalResult
	for _, stmt := range stmts {
		var err error
		result, err = in.executeStmt(stmt)
		if err != nil {
			return result, err
		}
		if result.sig == signalReturn {
			return result, nil
		}
	}
	return result, nil
}

func (in *Interpreter) executeStmt(stmt ast.Stmt) (execResult, error) {
	switch n := stmt.(type) {
	case *ast.Expression:
		_, err := in.evaluate(n.Expr)
		return normalResult, err
	case *ast.Print:
		v, err := in.evaluate(n.Expr)
		if err != nil {
			return normalResult, err
		}
		fmt.Fprintln(in.Writer, v.ToString())
		return normalResult, nil
	case *ast.Var:
		var value object.Value = object.NilValue
		if n.Initializer != nil {
			v, err := in.evaluate(n.Initializer)
			if err != nil {
				return normalResult, err
			}
			value = v
		}
		in.env.Define(n.Name.Lexeme, value)
		return normalResult, nil
	case *ast.Block:
		return in.executeBlock(n.Statements, environment.New(in.env))
	case *ast.If:
		cond, err := in.evaluate(n.Cond)
		if err != nil {
			return normalResult, err
		}
		if object.IsTruthy(cond) {
			return in.executeStmt(n.Then)
		} else if n.Else != nil {
			return in.executeStmt(n.Else)
		}
		return normalResult, nil
	case *ast.While:
		for {
			cond, err := in.evaluate(n.Cond)
			if err != nil {
				return normalResult, err
			}
			if !object.IsTruthy(cond) {
				return normalResult, nil
			}
			result, err := in.executeStmt(n.Body)
			if err != nil {
				return result, err
			}
			if result.sig == signalReturn {
				return result, nil
			}
		}
	case *ast.Function:
		fn := NewFunction(n, in.env, in)
		in.env.Define(n.Name.Lexeme, fn)
		return normalResult, nil
	case *ast.Return:
		var value object.Value = object.NilValue
		if n.Value != nil {
			v, err := in.evaluate(n.Value)
			if err != nil {
				return normalResult, err
			}
			value = v
		}
		return returningResult(value), nil
	default:
		return normalResult, runtimeErrorf(stmt.Line(), 0, "unknown statement type %T", stmt)
	}
}

// executeBlock runs stmts inside env, restoring the interpreter's
// previous environment before returning — including on error, so a
// runtime failure partway through a block never leaves the interpreter
// pointed at a scope that is about to go out of existence.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *environment.Environment) (execResult, error) {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()
	return in.executeStmts(stmts)
}
