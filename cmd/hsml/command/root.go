// Package command implements the hsml CLI subcommands.
package command

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version is the semantic version reported by the version subcommand and
// the language server.
const Version = "0.1.0"

// Execute runs the root command
func Execute() {
	rootCmd := &cobra.Command{
		Use:   "hsml",
		Short: "HSML compiler - converts HSML templates to HTML",
		Long: `hsml compiles the indentation-sensitive HSML template syntax to HTML.

Available Commands:
  compile    Compile HSML to HTML
  parse      Parse HSML and print the AST as JSON
  fmt        Reprint HSML in canonical form
  check      Parse HSML and report the first error
  lsp        Run the HSML language server over stdio
  version    Show version information`,
	}

	rootCmd.AddCommand(NewCompileCommand())
	rootCmd.AddCommand(NewParseCommand())
	rootCmd.AddCommand(NewFmtCommand())
	rootCmd.AddCommand(NewCheckCommand())
	rootCmd.AddCommand(NewLspCommand())
	rootCmd.AddCommand(NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("hsml %s\n", Version)
		},
	}
}

// readInput reads an input file, or stdin when the argument is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
