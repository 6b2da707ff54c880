// ==============================================================================================
// FILE: wasm/wasm_main.go
// BUILD: GOOS=js GOARCH=wasm go build -o main.wasm wasm/wasm_main.go
// ==============================================================================================
// PACKAGE: main (wasm entry point)
// PURPOSE: Browser embedding demo (spec §1's "embeddable in an application/game"), grounded on
//          amoghasbhardwaj-Eloquence/wasm/wasm_main.go's js.Global().Set bridge shape: exposes
//          one `runMinScript(source)` function to JavaScript that runs a script against a fresh
//          Interpreter and returns its captured output plus its result/error as a plain object.
// ==============================================================================================

package main

import (
	"fmt"
	"syscall/js"

	"github.com/sawickiap/MinScriptLang-sub001/interpreter"
)

func main() {
	c := make(chan struct{})

	js.Global().Set("runMinScript", js.FuncOf(runCode))

	fmt.Println("MinScriptLang WASM engine loaded.")
	<-c
}

// runCode is the JS-callable bridge: runMinScript(source) -> {logs, result, error}.
func runCode(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return map[string]interface{}{"error": "runMinScript expects exactly one string argument"}
	}
	source := args[0].String()

	in := interpreter.New(0)
	result, err := in.Execute(source)

	out := map[string]interface{}{
		"logs": in.Output(),
	}
	if err != nil {
		out["error"] = err.Error()
		return out
	}
	if !result.IsNull() {
		out["result"] = result.Inspect()
	}
	return out
}
