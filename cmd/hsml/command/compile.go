package command

import (
	"fmt"
	"os"
	"time"

	"github.com/hsml-lab/hsml/hsml"
	"github.com/spf13/cobra"
)

// NewCompileCommand creates the compile command
func NewCompileCommand() *cobra.Command {
	var (
		outputFile    string
		cache         bool
		cacheTTL      time.Duration
		cacheInterval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "compile [input]",
		Short: "Compile HSML to HTML",
		Long: `Compile an HSML template to HTML.

Examples:
  hsml compile input.hsml -o output.html
  hsml compile input.hsml
  cat input.hsml | hsml compile -`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			source, err := readInput(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
				os.Exit(1)
			}

			// the interval goes first: setting the TTL fixes the interval at
			// half the TTL unless one was already set
			if cacheInterval > 0 {
				hsml.SetASTCacheCleanupIntervalOnce(cacheInterval)
			}
			if cacheTTL > 0 {
				hsml.SetASTCacheTTLOnce(cacheTTL)
			}

			opts := []hsml.CompileOption{}
			if cache {
				opts = append(opts, hsml.WithCache())
			}
			html, err := hsml.CompileContent(string(source), opts...)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error compiling HSML: %v\n", err)
				os.Exit(1)
			}

			if outputFile != "" {
				if err := os.WriteFile(outputFile, []byte(html), 0o644); err != nil {
					fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
					os.Exit(1)
				}
			} else {
				fmt.Print(html)
			}
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file path")
	cmd.Flags().BoolVar(&cache, "cache", false, "enable the AST cache")
	cmd.Flags().DurationVar(&cacheTTL, "cache-ttl", 0, "AST cache TTL (e.g. 10m)")
	cmd.Flags().DurationVar(&cacheInterval, "cache-cleanup-interval", 0, "AST cache cleanup interval")

	return cmd
}
