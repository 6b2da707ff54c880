// ==============================================================================================
// FILE: cmd/minscript/cmd/root.go
// ==============================================================================================
// PACKAGE: cmd
// PURPOSE: The cobra command tree, grounded on CWBudde-go-dws's cmd/dwscript/cmd/root.go
//          structure (a persistent rootCmd with version info, subcommands registering
//          themselves from init()).
// ==============================================================================================

package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version is overridable via -ldflags at build time.
var Version = "0.1.0-dev"

var (
	maxCallDepth int
	noColor      bool
)

var rootCmd = &cobra.Command{
	Use:     "minscript",
	Short:   "MinScriptLang interpreter",
	Long:    "minscript runs MinScriptLang source files and provides an interactive REPL.",
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntVar(&maxCallDepth, "max-call-depth", 0, "override the call-stack depth limit (0 = language default)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized REPL output")
	cobra.OnInitialize(func() {
		color.NoColor = color.NoColor || noColor
	})
}
