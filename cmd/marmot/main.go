package main

import (
	"os"

	"github.com/spf13/cobra"

	_ "github.com/marmotlang/marmot/internal/logger"
)

// Version is injected by the build.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "marmot",
	Short: "Tagged values with generic-function dispatch",
	Long: `Marmot is a small runtime for dynamically tagged values and generic
functions: a value carries a mutable class tag, a generic owns a
tag-to-method table plus an optional default, and calls resolve by
exact tag match, then default, then failure.`,
	Version: Version,
}

func init() {
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
