package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ai-constitution/canonical-go/digest"
)

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash [file]",
		Short: "Print the SHA-256 content hash of a JSON document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			sum, err := digest.HashRaw(data)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, sum)
			return nil
		},
	}
}

func newVerifyCmd() *cobra.Command {
	var expected string

	cmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Verify a JSON document against an expected content hash",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if expected == "" {
				return fmt.Errorf("--digest is required")
			}
			data, err := readInput(args)
			if err != nil {
				return err
			}
			ok, err := digest.VerifyRaw(data, expected)
			if err != nil {
				return err
			}
			if !ok {
				sum, _ := digest.HashRaw(data)
				fmt.Fprintf(os.Stderr, "mismatch: document hashes to %s\n", sum)
				os.Exit(1)
			}
			fmt.Fprintln(os.Stdout, "ok")
			return nil
		},
	}

	cmd.Flags().StringVar(&expected, "digest", "", "Expected hex SHA-256 digest")

	return cmd
}
