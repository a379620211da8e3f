package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/goparse/golang/parser"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the grammar rules accepted by 'parse --rule'",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range parser.Rules() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
