// ==============================================================================================
// FILE: repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: Interactive Read-Eval-Print Loop over the embeddable interpreter façade (spec §1/§10
//          "embeddable ... in an application"). Line editing and history are provided by
//          chzyer/readline, colored output by fatih/color — the same pairing
//          akashmaji946-go-mix's repl.Start uses, adapted to a persistent global scope instead
//          of a fresh evaluator per line and to this language's dot-commands.
// ==============================================================================================

package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/sawickiap/MinScriptLang-sub001/interpreter"
	"github.com/sawickiap/MinScriptLang-sub001/value"
)

const banner = `MinScriptLang REPL
Type a statement or expression and press Enter.
  .help   list dot-commands
  .clear  reset the global scope
  .exit   quit
`

var (
	promptColor = color.New(color.FgCyan)
	resultColor = color.New(color.FgYellow)
	errorColor  = color.New(color.FgRed, color.Bold)
	infoColor   = color.New(color.FgHiBlack)
)

var prompt = promptColor.Sprint("mnsl> ")

// Start runs the REPL with the language's default call-stack depth. See
// StartWithDepth.
func Start(reader io.Reader, writer io.Writer) {
	StartWithDepth(reader, writer, 0)
}

// StartWithDepth runs the REPL until EOF (Ctrl+D) or `.exit`. Output goes to
// writer; reader is accepted for interface symmetry with a plain io.Reader
// host but line editing always goes through the terminal readline attaches
// to. maxDepth <= 0 uses the language's default call-stack depth limit.
func StartWithDepth(reader io.Reader, writer io.Writer, maxDepth int) {
	infoColor.Fprint(writer, banner)

	rl, err := readline.New(prompt)
	if err != nil {
		errorColor.Fprintf(writer, "readline init failed: %v\n", err)
		return
	}
	defer rl.Close()

	in := interpreter.New(maxDepth)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			io.WriteString(writer, "\n")
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if handleDotCommand(line, writer, &in, maxDepth) {
				return
			}
			continue
		}

		rl.SaveHistory(line)
		runLine(in, line, writer)
	}
}

// handleDotCommand processes a `.`-prefixed REPL command, returning true
// when the REPL should exit.
func handleDotCommand(line string, writer io.Writer, in **interpreter.Interpreter, maxDepth int) bool {
	switch line {
	case ".exit":
		infoColor.Fprintln(writer, "bye")
		return true
	case ".clear":
		*in = interpreter.New(maxDepth)
		infoColor.Fprintln(writer, "global scope reset")
	case ".help":
		infoColor.Fprint(writer, banner)
	default:
		errorColor.Fprintf(writer, "unknown command %q (try .help)\n", line)
	}
	return false
}

func runLine(in *interpreter.Interpreter, line string, writer io.Writer) {
	result, err := in.Execute(line)
	if out := in.Output(); out != "" {
		io.WriteString(writer, out)
		in.ResetOutput()
	}
	if err != nil {
		errorColor.Fprintf(writer, "%s\n", err.Error())
		return
	}
	if result.IsNull() {
		return
	}
	resultColor.Fprintf(writer, "%s\n", resultDisplay(result))
}

// resultDisplay renders a top-level REPL result the way a script's own
// print() would, quoting strings so "hi" is visually distinct from bare hi.
func resultDisplay(v value.Value) string {
	if v.Kind == value.KindString {
		return "\"" + v.Inspect() + "\""
	}
	return v.Inspect()
}
