/*
File    : rloxj/interpreter/control.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import "github.com/akashmaji946/rloxj/object"

// signal reports why statement execution stopped early, the structured
// substitute for the teacher's convention of checking result.GetType()
// against BreakType/ContinueType/ReturnValue after every Eval call
// (eval/eval_statements.go). Lox has no break/continue, so only a return
// needs to unwind a block; signalNormal covers straight-line execution.
type signal int

const (
	signalNormal signal = iota
	signalReturn
)

// execResult is what every statement-executing method returns in place of
// GoMix's single GoMixObject-or-error result: a signal telling the caller
// whether to keep running the rest of the block, and — for signalReturn —
// the value to propagate up to the enclosing function call.
type execResult struct {
	sig   signal
	value object.Value
}

var normalResult = execResult{sig: signalNormal}

func returningResult(v object.Value) execResult {
	return execResult{sig: signalReturn, value: v}
}
