package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootLogger is installed by Execute and shared by the subcommands.
var rootLogger *zap.Logger

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "contextra",
	Short: "Contextra bundles source files into token-bounded text chunks",
	Long: `Contextra assembles a filtered, ordered set of text files into one or
more token-bounded bundles suitable for feeding into an LLM, preserving
directory locality and never silently truncating a file.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute(logger *zap.Logger) error {
	rootLogger = logger
	return RootCmd.Execute()
}
