// ==============================================================================================
// FILE: interpreter/interpreter.go
// ==============================================================================================
// PACKAGE: interpreter
// PURPOSE: The embeddable host façade (spec §1/§10): wires lexer → parser → interp behind one
//          Execute call, the way amoghasbhardwaj-Eloquence's main.go/repl.go glue the pipeline
//          together, but packaged as a reusable type instead of inline script-mode code so both
//          cmd/minscript and wasm/ can embed it without duplicating the wiring.
// ==============================================================================================

package interpreter

import (
	"strings"

	"github.com/sawickiap/MinScriptLang-sub001/interp"
	"github.com/sawickiap/MinScriptLang-sub001/parser"
	"github.com/sawickiap/MinScriptLang-sub001/value"
)

// OutputBuffer accumulates everything a script prints, implementing
// interp.Printer. Its zero value is ready to use.
type OutputBuffer struct {
	b strings.Builder
}

func (o *OutputBuffer) Print(s string) { o.b.WriteString(s) }
func (o *OutputBuffer) String() string { return o.b.String() }
func (o *OutputBuffer) Reset()         { o.b.Reset() }

// Interpreter is one embeddable script engine instance. Each call to
// Execute re-parses its input against a fresh AST but keeps the same
// global scope and output buffer across calls, so a host can run a script
// in pieces (as the REPL does) and see earlier top-level variables.
type Interpreter struct {
	eval     *interp.Interp
	out      *OutputBuffer
	maxDepth int
}

// New creates an Interpreter with an empty global scope. maxDepth <= 0
// uses the spec default of 100 call activations.
func New(maxDepth int) *Interpreter {
	out := &OutputBuffer{}
	return &Interpreter{
		eval:     interp.New(out, maxDepth),
		out:      out,
		maxDepth: maxDepth,
	}
}

// Execute parses and runs source against the interpreter's persistent
// global scope, returning the value of the outermost `return` (or null on
// normal completion) and any parse/execution error.
func (in *Interpreter) Execute(source string) (value.Value, error) {
	p, err := parser.New(source)
	if err != nil {
		return value.Value{}, err
	}
	prog, err := p.ParseProgram()
	if err != nil {
		return value.Value{}, err
	}
	return in.eval.Run(prog)
}

// Output returns everything printed so far across every Execute call.
func (in *Interpreter) Output() string { return in.out.String() }

// ResetOutput clears the accumulated output without touching the global
// scope. The REPL calls it after echoing each line's output (its `.clear`
// command resets both output and scope by constructing a fresh Interpreter
// instead); the wasm bridge builds a fresh Interpreter per call.
func (in *Interpreter) ResetOutput() { in.out.Reset() }
