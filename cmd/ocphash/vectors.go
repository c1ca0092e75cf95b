package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ai-constitution/canonical-go/vectors"
)

func newVectorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vectors [suite.json]",
		Short: "Run the conformance vector suite (embedded suite by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				vs  []vectors.Vector
				err error
			)
			if len(args) == 1 {
				f, openErr := os.Open(args[0])
				if openErr != nil {
					return fmt.Errorf("cannot read %s: %w", args[0], openErr)
				}
				defer f.Close()
				vs, err = vectors.Load(f)
			} else {
				vs, err = vectors.Default()
			}
			if err != nil {
				return err
			}

			failed := 0
			for _, v := range vs {
				if checkErr := vectors.Check(v); checkErr != nil {
					failed++
					fmt.Fprintln(os.Stderr, checkErr)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d vectors failed", failed, len(vs))
			}
			fmt.Printf("%d vectors passed\n", len(vs))
			return nil
		},
	}
}
