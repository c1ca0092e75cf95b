package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ai-constitution/canonical-go/canonicaljson"
)

func newCanonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "canon [file]",
		Short: "Print the canonical form of a JSON document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			canonical, err := canonicaljson.CanonicalizeRaw(data)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, string(canonical))
			return nil
		},
	}
}
