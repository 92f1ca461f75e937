/*
File    : rloxj/builtin/builtin.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package builtin registers Lox's native global functions: the domain
// dependency surface a Lox program can exercise without a class or FFI
// system. Grounded on the teacher's std package — one *Builtin{Name,
// Callback} entry per function, collected into init-time method tables
// (std/common.go, std/math.go, std/strings.go, std/crypto.go,
// std/regex.go, std/json.go, std/http.go, std/io.go) and registered into
// the evaluator's Builtins map. rloxj narrows the surface to what
// SPEC_FULL.md's DOMAIN STACK table names, and drops the teacher's
// variadic GoMixObject signature for a fixed Arity plus typed Fn, since
// Lox's call sites already arity-check before Call runs.
package builtin

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/akashmaji946/rloxj/interpreter"
	"github.com/akashmaji946/rloxj/object"
)

// Native is a builtin function value: a fixed arity and a Go closure that
// implements it. It satisfies object.Callable the same way
// interpreter.Function does, so the interpreter's call site never needs to
// distinguish native from user-defined callables.
type Native struct {
	name  string
	arity int
	fn    func(in *interpreter.Interpreter, args []object.Value) (object.Value, error)
	in    *interpreter.Interpreter
}

func (n *Native) GetType() object.Type { return object.CallableType }
func (n *Native) ToString() string     { return fmt.Sprintf("<native fn %s>", n.name) }
func (n *Native) ToObject() string     { return fmt.Sprintf("<builtin[%s]>", n.name) }
func (n *Native) Arity() int           { return n.arity }
func (n *Native) Call(args []object.Value) (object.Value, error) {
	return n.fn(n.in, args)
}

type entry struct {
	name  string
	arity int
	fn    func(in *interpreter.Interpreter, args []object.Value) (object.Value, error)
}

// Register installs every native global function into in's global
// environment, the rloxj counterpart to the teacher's
// "for _, builtin := range std.Builtins { ev.Builtins[...] = builtin }"
// registration loop in NewEvaluator.
func Register(in *interpreter.Interpreter) {
	for _, e := range table {
		in.Define(e.name, &Native{name: e.name, arity: e.arity, fn: e.fn, in: in})
	}
}

var table = []entry{
	{"clock", 0, clockFn},
	{"len", 1, lenFn},
	{"type", 1, typeFn},
	{"str", 1, strFn},
	{"num", 1, numFn},
	{"upper", 1, upperFn},
	{"lower", 1, lowerFn},
	{"trim", 1, trimFn},
	{"split", 2, splitFn},
	{"join", 2, joinFn},
	{"sqrt", 1, sqrtFn},
	{"pow", 2, powFn},
	{"abs", 1, absFn},
	{"floor", 1, floorFn},
	{"ceil", 1, ceilFn},
	{"min", 2, minFn},
	{"max", 2, maxFn},
	{"match", 2, matchFn},
	{"md5", 1, md5Fn},
	{"sha256", 1, sha256Fn},
	{"b64encode", 1, b64encodeFn},
	{"jsonEncode", 1, jsonEncodeFn},
	{"readLine", 0, readLineFn},
	{"httpGet", 1, httpGetFn},
}

func wrongArgType(name string) error {
	return fmt.Errorf("%s: argument has the wrong type.", name)
}

func clockFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	return object.Number{Value: float64(time.Now().UnixNano()) / 1e9}, nil
}

// lenFn returns the rune length of a string, matching the teacher's
// length builtin (std/common.go) narrowed to Lox's only indexable type.
func lenFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	s, ok := args[0].(object.String)
	if !ok {
		return nil, wrongArgType("len")
	}
	return object.Number{Value: float64(utf8.RuneCountInString(s.Value))}, nil
}

func typeFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	return object.String{Value: object.TypeName(args[0])}, nil
}

func strFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	return object.String{Value: args[0].ToString()}, nil
}

func numFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	s, ok := args[0].(object.String)
	if !ok {
		return nil, wrongArgType("num")
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s.Value), 64)
	if err != nil {
		return nil, fmt.Errorf("num: %q is not a valid number.", s.Value)
	}
	return object.Number{Value: f}, nil
}

func upperFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	s, ok := args[0].(object.String)
	if !ok {
		return nil, wrongArgType("upper")
	}
	return object.String{Value: strings.ToUpper(s.Value)}, nil
}

func lowerFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	s, ok := args[0].(object.String)
	if !ok {
		return nil, wrongArgType("lower")
	}
	return object.String{Value: strings.ToLower(s.Value)}, nil
}

func trimFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	s, ok := args[0].(object.String)
	if !ok {
		return nil, wrongArgType("trim")
	}
	return object.String{Value: strings.TrimSpace(s.Value)}, nil
}

func splitFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	s, ok1 := args[0].(object.String)
	d, ok2 := args[1].(object.String)
	if !ok1 || !ok2 {
		return nil, wrongArgType("split")
	}
	parts := strings.Split(s.Value, d.Value)
	return object.String{Value: strings.Join(parts, "\n")}, nil
}

func joinFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	s, ok1 := args[0].(object.String)
	d, ok2 := args[1].(object.String)
	if !ok1 || !ok2 {
		return nil, wrongArgType("join")
	}
	parts := strings.Split(s.Value, "\n")
	return object.String{Value: strings.Join(parts, d.Value)}, nil
}

func numArg(name string, v object.Value) (float64, error) {
	n, ok := v.(object.Number)
	if !ok {
		return 0, wrongArgType(name)
	}
	return n.Value, nil
}

func sqrtFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	n, err := numArg("sqrt", args[0])
	if err != nil {
		return nil, err
	}
	return object.Number{Value: math.Sqrt(n)}, nil
}

func powFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	base, err := numArg("pow", args[0])
	if err != nil {
		return nil, err
	}
	exp, err := numArg("pow", args[1])
	if err != nil {
		return nil, err
	}
	return object.Number{Value: math.Pow(base, exp)}, nil
}

func absFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	n, err := numArg("abs", args[0])
	if err != nil {
		return nil, err
	}
	return object.Number{Value: math.Abs(n)}, nil
}

func floorFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	n, err := numArg("floor", args[0])
	if err != nil {
		return nil, err
	}
	return object.Number{Value: math.Floor(n)}, nil
}

func ceilFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	n, err := numArg("ceil", args[0])
	if err != nil {
		return nil, err
	}
	return object.Number{Value: math.Ceil(n)}, nil
}

func minFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	a, err := numArg("min", args[0])
	if err != nil {
		return nil, err
	}
	b, err := numArg("min", args[1])
	if err != nil {
		return nil, err
	}
	return object.Number{Value: math.Min(a, b)}, nil
}

func maxFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	a, err := numArg("max", args[0])
	if err != nil {
		return nil, err
	}
	b, err := numArg("max", args[1])
	if err != nil {
		return nil, err
	}
	return object.Number{Value: math.Max(a, b)}, nil
}

func matchFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	s, ok1 := args[0].(object.String)
	pattern, ok2 := args[1].(object.String)
	if !ok1 || !ok2 {
		return nil, wrongArgType("match")
	}
	matched, err := regexp.MatchString(pattern.Value, s.Value)
	if err != nil {
		return nil, fmt.Errorf("match: invalid pattern: %v", err)
	}
	return object.Bool{Value: matched}, nil
}

func md5Fn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	s, ok := args[0].(object.String)
	if !ok {
		return nil, wrongArgType("md5")
	}
	sum := md5.Sum([]byte(s.Value))
	return object.String{Value: fmt.Sprintf("%x", sum)}, nil
}

func sha256Fn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	s, ok := args[0].(object.String)
	if !ok {
		return nil, wrongArgType("sha256")
	}
	sum := sha256.Sum256([]byte(s.Value))
	return object.String{Value: fmt.Sprintf("%x", sum)}, nil
}

func b64encodeFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	s, ok := args[0].(object.String)
	if !ok {
		return nil, wrongArgType("b64encode")
	}
	return object.String{Value: base64.StdEncoding.EncodeToString([]byte(s.Value))}, nil
}

// jsonEncodeFn renders a Lox value as a JSON literal. Composite Lox values
// don't exist in this grammar, so only the four scalar kinds the teacher's
// convertFromGoMix handles for primitives (std/json.go) apply here.
func jsonEncodeFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	var native any
	switch v := args[0].(type) {
	case object.Nil:
		native = nil
	case object.Bool:
		native = v.Value
	case object.Number:
		native = v.Value
	case object.String:
		native = v.Value
	default:
		return nil, wrongArgType("jsonEncode")
	}
	data, err := json.Marshal(native)
	if err != nil {
		return nil, fmt.Errorf("jsonEncode: %v", err)
	}
	return object.String{Value: string(data)}, nil
}

func readLineFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	line, err := in.Reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("readLine: %v", err)
	}
	return object.String{Value: strings.TrimRight(line, "\r\n")}, nil
}

func httpGetFn(in *interpreter.Interpreter, args []object.Value) (object.Value, error) {
	u, ok := args[0].(object.String)
	if !ok {
		return nil, wrongArgType("httpGet")
	}
	resp, err := http.Get(u.Value)
	if err != nil {
		return nil, fmt.Errorf("httpGet: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpGet: %v", err)
	}
	return object.String{Value: string(body)}, nil
}
