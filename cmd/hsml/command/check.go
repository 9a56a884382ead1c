package command

import (
	"fmt"
	"os"

	"github.com/hsml-lab/hsml/parser"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [input...]",
		Short: "Parse HSML files and report the first error in each",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			failed := false
			for _, path := range args {
				source, err := readInput(path)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
					failed = true
					continue
				}
				if _, _, err := parser.Parse(string(source)); err != nil {
					reportParseError(path, string(source), err)
					failed = true
				}
			}
			if failed {
				os.Exit(1)
			}
		},
	}
	return cmd
}
