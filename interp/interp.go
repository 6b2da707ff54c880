// ==============================================================================================
// FILE: interp/interp.go
// ==============================================================================================
// PACKAGE: interp
// PURPOSE: The tree-walking evaluator: global scope plus a stack of local scopes and a parallel
//          this-stack (spec §3/§5), built-ins, and the l-value/this-propagation discipline that
//          ties expression evaluation to assignment and calls. Grounded on the dispatch-by-
//          node-type Eval shape of amoghasbhardwaj-Eloquence/evaluator/evaluator.go; diverges
//          from it deliberately on closures — see DESIGN.md.
// ==============================================================================================

package interp

import (
	"github.com/sawickiap/MinScriptLang-sub001/ast"
	"github.com/sawickiap/MinScriptLang-sub001/value"
)

// Printer is the one capability the evaluator needs from its host: an
// appendable output sink for `print`. The concrete OutputBuffer lives in
// package interpreter, one layer up, keeping interp free of any host-facing
// concern.
type Printer interface {
	Print(s string)
}

// Interp is one interpreter instance: its global scope, local/this stacks,
// and output sink. Not safe for concurrent use (spec §5).
type Interp struct {
	Scopes *value.Scopes
	Out    Printer
}

// New creates an Interp with a fresh global scope and the given output
// sink and max call depth (0 means "use the spec default of 100").
func New(out Printer, maxDepth int) *Interp {
	scopes := value.NewScopes()
	if maxDepth > 0 {
		scopes.MaxDepth = maxDepth
	}
	return &Interp{Scopes: scopes, Out: out}
}

// Run executes a parsed program and returns the value of its outermost
// `return`, or Null on normal completion (spec §6). Break/continue/return
// signals that escape the whole program are execution errors (spec §7).
func (in *Interp) Run(prog *ast.Program) (value.Value, error) {
	for _, stmt := range prog.Statements {
		if err := in.execStatement(stmt); err != nil {
			if rs, ok := err.(returnSignal); ok {
				return rs.Value, nil
			}
			return value.Value{}, escapeSignalToError(stmt, err)
		}
	}
	return value.Null, nil
}

// escapeSignalToError converts a break/continue signal that reached the
// top of the program, or the top of a function body (callFunction), into
// the ExecutionError spec §7 requires; everything
// else (throws, execution errors) passes through unchanged.
func escapeSignalToError(at ast.Node, err error) error {
	switch err.(type) {
	case breakSignal:
		return execErrorAt(at.Place(), "break outside loop or switch")
	case continueSignal:
		return execErrorAt(at.Place(), "continue outside loop")
	default:
		return err
	}
}
