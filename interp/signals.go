// ==============================================================================================
// FILE: interp/signals.go
// ==============================================================================================
// PACKAGE: interp
// PURPOSE: The five distinct non-local control-flow kinds (spec §4.8/§4.11/§9): break,
//          continue, return, a user throw, and an execution error are never conflated. The
//          first three are represented as dedicated signal types satisfying `error` purely so
//          they can travel up through Go's normal error-return plumbing; callers (loops,
//          switch, call sites, try/finally) type-assert for the specific signal they handle and
//          let everything else propagate.
// ==============================================================================================

package interp

import (
	"github.com/sawickiap/MinScriptLang-sub001/langerr"
	"github.com/sawickiap/MinScriptLang-sub001/value"
)

// breakSignal unwinds to the innermost loop or switch.
type breakSignal struct{}

func (breakSignal) Error() string { return "break outside loop or switch" }

// continueSignal unwinds to the innermost loop.
type continueSignal struct{}

func (continueSignal) Error() string { return "continue outside loop" }

// returnSignal unwinds to the innermost call activation.
type returnSignal struct {
	Value value.Value
}

func (returnSignal) Error() string { return "return outside function" }

// isCatchable reports whether err is a user throw or an execution error — the
// two kinds try/catch can observe (spec §4.11), as opposed to break/
// continue/return, which a catch clause never sees.
func isCatchable(err error) bool {
	switch err.(type) {
	case *langerr.ThrownValue, *langerr.ExecutionError:
		return true
	default:
		return false
	}
}
