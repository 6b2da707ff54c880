// ==============================================================================================
// FILE: cmd/minscript/main.go
// ==============================================================================================
package main

import (
	"fmt"
	"os"

	"github.com/sawickiap/MinScriptLang-sub001/cmd/minscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
