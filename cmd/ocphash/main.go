// Package main is the entry point for the ocphash CLI tool.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var version = "2.1.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ocphash",
		Short: "Canonicalize JSON documents and compute semantic content hashes",
		Long: `ocphash turns arbitrary JSON into its unique canonical form
(sorted object members, normalized numbers, ASCII-escaped strings)
and computes the SHA-256 content hash of the canonical bytes, so that
semantically identical documents always hash identically.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newCanonCmd())
	root.AddCommand(newHashCmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newVectorsCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ocphash version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ocphash %s\n", version)
		},
	}
}

// readInput returns the document bytes from the file argument, or from
// stdin when no argument (or "-") is given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", args[0], err)
	}
	return data, nil
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
