package command

import (
	"fmt"
	"os"

	"github.com/hsml-lab/hsml/format"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

// NewFmtCommand creates the fmt command
func NewFmtCommand() *cobra.Command {
	var (
		write bool
		check bool
	)

	cmd := &cobra.Command{
		Use:   "fmt [input]",
		Short: "Reprint HSML in canonical form",
		Long: `Reprint an HSML file in canonical form.

Examples:
  hsml fmt input.hsml            # print the formatted source to stdout
  hsml fmt -w input.hsml         # rewrite the file in place
  hsml fmt --check input.hsml    # exit 1 and show a diff when not formatted`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			source, err := readInput(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
				os.Exit(1)
			}

			formatted, err := format.Format(string(source))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error formatting HSML: %v\n", err)
				os.Exit(1)
			}

			switch {
			case check:
				if formatted != string(source) {
					dmp := diffmatchpatch.New()
					diffs := dmp.DiffMain(string(source), formatted, false)
					fmt.Fprintf(os.Stderr, "%s is not formatted:\n%s\n", args[0], dmp.DiffPrettyText(diffs))
					os.Exit(1)
				}
			case write:
				if args[0] == "-" {
					fmt.Fprintln(os.Stderr, "Error: cannot write in place when reading stdin")
					os.Exit(1)
				}
				if err := os.WriteFile(args[0], []byte(formatted), 0o644); err != nil {
					fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
					os.Exit(1)
				}
			default:
				fmt.Print(formatted)
			}
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the input file")
	cmd.Flags().BoolVar(&check, "check", false, "exit non-zero when the input is not formatted")

	return cmd
}
