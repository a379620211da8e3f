package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dhamidi/goparse/golang/lexer"
	"github.com/dhamidi/goparse/golang/token"
)

func newTokensCmd(g *globals) *cobra.Command {
	var includeComments bool

	cmd := &cobra.Command{
		Use:   "tokens <file|->",
		Short: "Dump the token stream of a Go source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			l := lexer.NewLexer(data, args[0])
			for {
				tok := l.NextToken()
				if tok.Kind == token.Comment && !includeComments {
					continue
				}
				fmt.Fprintf(out, "%d:%d\t%s\t%s\n", tok.Span.Start.Line, tok.Span.Start.Column, tok.Kind, strconv.Quote(tok.Literal))
				if tok.Kind == token.EOF {
					return nil
				}
			}
		},
	}

	cmd.Flags().BoolVar(&includeComments, "comments", false, "include comments")

	return cmd
}
