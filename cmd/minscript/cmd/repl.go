// ==============================================================================================
// FILE: cmd/minscript/cmd/repl.go
// ==============================================================================================
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sawickiap/MinScriptLang-sub001/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	RunE: func(_ *cobra.Command, _ []string) error {
		repl.StartWithDepth(os.Stdin, os.Stdout, maxCallDepth)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	rootCmd.RunE = replCmd.RunE
}
