/*
File    : rloxj/lox/lox.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lox wires the scanner, parser, resolver, and interpreter into
// the single pipeline both the CLI and REPL drive, adapted from the
// teacher's executeFileWithRecovery/executeWithRecovery (main/main.go,
// repl/repl.go), which each glued parser.NewParser → par.Parse →
// evaluator.Eval inline. rloxj splits that glue out into its own package
// so cmd/rloxj and repl can share one code path instead of duplicating it.
package lox

import (
	"io"

	"github.com/akashmaji946/rloxj/builtin"
	"github.com/akashmaji946/rloxj/interpreter"
	"github.com/akashmaji946/rloxj/lexer"
	"github.com/akashmaji946/rloxj/parser"
	"github.com/akashmaji946/rloxj/resolver"
)

// Status mirrors spec section 6's exit-code taxonomy: which stage (if
// any) reported an error, so the caller can translate it into the right
// process exit code without re-inspecting the error's concrete type.
type Status int

const (
	// StatusOK means scanning, parsing, resolving, and interpreting all
	// succeeded.
	StatusOK Status = iota
	// StatusFrontendError means the lexer, parser, or resolver reported
	// one or more errors (spec section 6: exit code 65).
	StatusFrontendError
	// StatusRuntimeError means the interpreter failed while executing an
	// otherwise valid program (spec section 6: exit code 70).
	StatusRuntimeError
)

// Session is a persistent pipeline instance: one global environment, one
// interpreter, reused across multiple calls to Run. The REPL uses this to
// satisfy spec section 5's "a single persistent global environment across
// lines"; file execution constructs one Session and calls Run once.
type Session struct {
	interp *interpreter.Interpreter
}

// NewSession creates a session with its builtins registered and output
// directed to w, the counterpart to the teacher's
// "evaluator := eval.NewEvaluator(); evaluator.SetWriter(writer)" pairing.
func NewSession(w io.Writer) *Session {
	interp := interpreter.New()
	interp.SetWriter(w)
	builtin.Register(interp)
	return &Session{interp: interp}
}

// SetReader redirects the stream the readLine builtin consumes from, used
// by the TCP server mode to plumb a connection's socket through in place
// of stdin.
func (s *Session) SetReader(r io.Reader) {
	s.interp.SetReader(r)
}

// Run scans, parses, resolves, and interprets one chunk of source in this
// session's persistent environment, returning which stage (if any)
// failed. Unlike the teacher's panic/recover-wrapped executeWithRecovery,
// every stage here returns errors normally — this package never panics on
// a rejected program, only the parser's internal fail() does, and that
// panic is recovered by declaration() and never escapes the parser package.
func (s *Session) Run(source string) (Status, error) {
	toks, err := lexer.ScanTokens(source)
	if err != nil {
		return StatusFrontendError, err
	}

	stmts, err := parser.Parse(toks)
	if err != nil {
		return StatusFrontendError, err
	}

	depths, err := resolver.Resolve(stmts)
	if err != nil {
		return StatusFrontendError, err
	}
	s.interp.SetDepths(depths)

	if err := s.interp.Interpret(stmts); err != nil {
		return StatusRuntimeError, err
	}
	return StatusOK, nil
}
