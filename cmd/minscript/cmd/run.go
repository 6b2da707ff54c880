// ==============================================================================================
// FILE: cmd/minscript/cmd/run.go
// ==============================================================================================
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sawickiap/MinScriptLang-sub001/interpreter"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a MinScriptLang file or inline expression",
	Long: `Execute a MinScriptLang program from a file or from -e/--eval.

Examples:
  minscript run script.mnsl
  minscript run -e "print(1 + 2);"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading a file")
}

func runScript(_ *cobra.Command, args []string) error {
	var source string
	switch {
	case evalExpr != "":
		source = evalExpr
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		source = string(data)
	default:
		return fmt.Errorf("provide a file path or use -e/--eval")
	}

	in := interpreter.New(maxCallDepth)
	_, err := in.Execute(source)
	if out := in.Output(); out != "" {
		fmt.Fprint(os.Stdout, out)
	}
	if err != nil {
		return fmt.Errorf("%s", err.Error())
	}
	return nil
}
