/*
File    : rloxj/interpreter/interpreter_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"github.com/akashmaji946/rloxj/ast"
	"github.com/akashmaji946/rloxj/object"
	"github.com/akashmaji946/rloxj/token"
)

// evaluate is the expression dispatcher, the narrower counterpart to the
// teacher's single Eval method (eval/eval_expressions.go) split out from
// statement execution since Lox's AST already separates Expr from Stmt at
// the type level.
func (in *Interpreter) evaluate(expr ast.Expr) (object.Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return literalValue(n.Val), nil
	case *ast.Grouping:
		return in.evaluate(n.Inner)
	case *ast.Variable:
		return in.lookupVariable(n.Name, n)
	case *ast.Assign:
		return in.evalAssign(n)
	case *ast.Unary:
		return in.evalUnary(n)
	case *ast.Binary:
		return in.evalBinary(n)
	case *ast.Logical:
		return in.evalLogical(n)
	case *ast.Call:
		return in.evalCall(n)
	default:
		return nil, runtimeErrorf(expr.Line(), 0, "unknown expression type %T", expr)
	}
}

func literalValue(v any) object.Value {
	switch t := v.(type) {
	case nil:
		return object.NilValue
	case bool:
		return object.Bool{Value: t}
	case float64:
		return object.Number{Value: t}
	case string:
		return object.String{Value: t}
	default:
		return object.NilValue
	}
}

// lookupVariable consults the resolver's depth table first, walking
// straight to the matching environment frame with GetAt; a name absent
// from the table (spec section 4.3) is assumed global and looked up by
// name instead. Using node identity as the map key relies on the parser
// never sharing a single *ast.Variable across two source positions.
func (in *Interpreter) lookupVariable(name token.Token, node ast.Expr) (object.Value, error) {
	if depth, ok := in.depths[node]; ok {
		return in.env.GetAt(depth, name.Lexeme), nil
	}
	v, err := in.Globals.Get(name)
	if err != nil {
		return nil, runtimeErrorf(name.Line, name.Column, "%s", err.Error())
	}
	return v, nil
}

func (in *Interpreter) evalAssign(n *ast.Assign) (object.Value, error) {
	value, err := in.evaluate(n.Value)
	if err != nil {
		return nil, err
	}
	if depth, ok := in.depths[n]; ok {
		in.env.AssignAt(depth, n.Name.Lexeme, value)
		return value, nil
	}
	if err := in.Globals.Assign(n.Name, value); err != nil {
		return nil, runtimeErrorf(n.Name.Line, n.Name.Column, "%s", err.Error())
	}
	return value, nil
}

func (in *Interpreter) evalLogical(n *ast.Logical) (object.Value, error) {
	left, err := in.evaluate(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Op.Type == token.Or {
		if object.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !object.IsTruthy(left) {
			return left, nil
		}
	}
	return in.evaluate(n.Right)
}

func (in *Interpreter) evalUnary(n *ast.Unary) (object.Value, error) {
	operand, err := in.evaluate(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Op.Type {
	case token.Minus:
		num, ok := operand.(object.Number)
		if !ok {
			return nil, runtimeErrorf(n.Op.Line, n.Op.Column, "Operand must be a number.")
		}
		return object.Number{Value: -num.Value}, nil
	case token.Bang:
		return object.Bool{Value: !object.IsTruthy(operand)}, nil
	default:
		return nil, runtimeErrorf(n.Op.Line, n.Op.Column, "unknown unary operator %q", n.Op.Lexeme)
	}
}

func (in *Interpreter) evalBinary(n *ast.Binary) (object.Value, error) {
	left, err := in.evaluate(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op.Type {
	case token.Plus:
		if ln, ok := left.(object.Number); ok {
			if rn, ok := right.(object.Number); ok {
				return object.Number{Value: ln.Value + rn.Value}, nil
			}
		}
		if ls, ok := left.(object.String); ok {
			if rs, ok := right.(object.String); ok {
				return object.String{Value: ls.Value + rs.Value}, nil
			}
		}
		return nil, runtimeErrorf(n.Op.Line, n.Op.Column, "Operands must both be numbers or both strings.")
	case token.Minus:
		ln, rn, err := numberOperands(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return object.Number{Value: ln - rn}, nil
	case token.Star:
		ln, rn, err := numberOperands(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return object.Number{Value: ln * rn}, nil
	case token.Slash:
		ln, rn, err := numberOperands(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return object.Number{Value: ln / rn}, nil
	case token.Greater:
		ln, rn, err := numberOperands(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return object.Bool{Value: ln > rn}, nil
	case token.GreaterEqual:
		ln, rn, err := numberOperands(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return object.Bool{Value: ln >= rn}, nil
	case token.Less:
		ln, rn, err := numberOperands(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return object.Bool{Value: ln < rn}, nil
	case token.LessEqual:
		ln, rn, err := numberOperands(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return object.Bool{Value: ln <= rn}, nil
	case token.EqualEqual:
		return object.Bool{Value: object.Equal(left, right)}, nil
	case token.BangEqual:
		return object.Bool{Value: !object.Equal(left, right)}, nil
	default:
		return nil, runtimeErrorf(n.Op.Line, n.Op.Column, "unknown binary operator %q", n.Op.Lexeme)
	}
}

// numberOperands requires both operands to be Number, per spec section 4.5's
// "Operands must be numbers." rule for -, *, /, <, <=, >, >=. Division by a
// Number zero is not checked here: Number is plain 64-bit IEEE-754, so 1/0
// and 0/0 simply produce +Inf/NaN like any other float division.
func numberOperands(op token.Token, left, right object.Value) (float64, float64, error) {
	ln, ok := left.(object.Number)
	if !ok {
		return 0, 0, runtimeErrorf(op.Line, op.Column, "Operands must be numbers.")
	}
	rn, ok := right.(object.Number)
	if !ok {
		return 0, 0, runtimeErrorf(op.Line, op.Column, "Operands must be numbers.")
	}
	return ln.Value, rn.Value, nil
}

func (in *Interpreter) evalCall(n *ast.Call) (object.Value, error) {
	callee, err := in.evaluate(n.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]object.Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	callable, ok := callee.(object.Callable)
	if !ok {
		return nil, runtimeErrorf(n.ClosingParen.Line, n.ClosingParen.Column, "can only call functions.")
	}
	if len(args) != callable.Arity() {
		return nil, runtimeErrorf(n.ClosingParen.Line, n.ClosingParen.Column, "expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	result, err := callable.Call(args)
	if err != nil {
		if _, ok := err.(*RuntimeError); !ok {
			return nil, runtimeErrorf(n.ClosingParen.Line, n.ClosingParen.Column, "%s", err.Error())
		}
		return nil, err
	}
	return result, nil
}
