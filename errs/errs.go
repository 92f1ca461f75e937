/*
File    : rloxj/errs/errs.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package errs implements the diagnostic types shared by every phase of the
// interpreter pipeline: lexical, parse, resolver, and runtime errors. All
// four share the same "[line L, position P] Error: <message>" rendering
// from spec section 6; what differs is whether a phase accumulates many of
// them (lexical, parse, resolver) or halts on the first one (runtime).
package errs

import (
	"fmt"
	"sort"
	"strings"
)

// Kind distinguishes which phase produced an Error, used only for
// programmatic inspection (e.g. deciding whether a failure should suppress
// downstream phases); the rendered message is identical across kinds.
type Kind int

const (
	Lexical Kind = iota
	Parse
	Resolver
	Runtime
)

// Position is a 1-based line/column pair identifying where a diagnostic
// applies.
type Position struct {
	Line   int
	Column int
}

// Error is a single diagnostic: a phase, a source position, and a message.
type Error struct {
	Kind Kind
	Pos  Position
	Msg  string
}

// Error implements the error interface using the format mandated by
// spec section 6.
func (e *Error) Error() string {
	return fmt.Sprintf("[line %d, position %d] Error: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// List accumulates Errors across a phase that does not halt on the first
// failure (scanning and parsing keep going in panic-mode recovery; the
// resolver keeps visiting after reporting a static misuse). Grounded on the
// teacher's Parser.errors accumulate-then-report pattern, generalized to the
// sortable, composable shape of mna-nenuphar's use of go/scanner.ErrorList
// for the same purpose.
type List struct {
	errors []*Error
}

// Add appends a new diagnostic to the list.
func (l *List) Add(kind Kind, pos Position, msg string) {
	l.errors = append(l.errors, &Error{Kind: kind, Pos: pos, Msg: msg})
}

// Len reports how many diagnostics have been accumulated.
func (l *List) Len() int { return len(l.errors) }

// All returns the accumulated diagnostics in the order they were added;
// call Sort first to get them ordered by position.
func (l *List) All() []*Error { return l.errors }

// Sort orders diagnostics by line then column, so multi-error reports read
// top-to-bottom regardless of the order productions discovered them in.
func (l *List) Sort() {
	sort.SliceStable(l.errors, func(i, j int) bool {
		a, b := l.errors[i].Pos, l.errors[j].Pos
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

// Err returns nil if no diagnostics were accumulated, or the list itself
// (as an error) otherwise — the idiom used by callers to decide whether a
// phase failed and should suppress the next one.
func (l *List) Err() error {
	if len(l.errors) == 0 {
		return nil
	}
	return l
}

// Error implements the error interface for a non-empty List, joining every
// diagnostic's rendering on its own line.
func (l *List) Error() string {
	lines := make([]string, len(l.errors))
	for i, e := range l.errors {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}
