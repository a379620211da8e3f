package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/goparse/format"
	"github.com/dhamidi/goparse/golang/lexer"
	"github.com/dhamidi/goparse/golang/parser"
)

func newParseCmd(g *globals) *cobra.Command {
	var outputFormat string
	var ruleName string
	var includePositions bool
	var color bool
	var showStats bool

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a Go source file or fragment and dump the syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("format") {
				outputFormat = g.cfg.Format
			}
			if !flags.Changed("rule") {
				ruleName = g.cfg.Rule
			}
			if !flags.Changed("positions") {
				includePositions = g.cfg.Positions
			}
			if !flags.Changed("color") {
				color = g.cfg.Color
			}

			rule, ok := parser.LookupRule(ruleName)
			if !ok {
				return fmt.Errorf("unknown rule %q (see 'goparse rules')", ruleName)
			}

			filename := args[0]
			data, err := readSource(cmd, filename)
			if err != nil {
				return err
			}

			var stats parser.Stats
			tokens, _ := lexer.Tokenize(data, filename)
			root, errs := parser.Parse(rule, tokens,
				parser.WithStats(&stats),
				parser.WithLogger(commonlog.GetLogger("goparse.parser")),
			)

			out := cmd.OutOrStdout()
			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewCSTJSONEncoder(out)
			case "tree":
				encoder = format.NewTreeEncoder(out).
					WithPositions(includePositions).
					WithStyles(format.NewStyles(out, color))
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			if err := encoder.Encode(root); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			errOut := cmd.ErrOrStderr()
			if err := format.NewDiagnosticsEncoder(errOut).WithStyles(format.NewStyles(errOut, color)).Encode(errs); err != nil {
				return fmt.Errorf("encode diagnostics: %w", err)
			}
			if showStats {
				fmt.Fprintf(errOut, "tokens=%d invocations=%d max-depth=%d guard-trips=%d recoveries=%d\n",
					len(tokens), stats.Invocations, stats.MaxDepth, stats.GuardTrips, stats.Recoveries)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json)")
	cmd.Flags().StringVarP(&ruleName, "rule", "r", "SourceFile", "grammar rule to parse the input as")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include node spans in tree output")
	cmd.Flags().BoolVar(&color, "color", false, "colorize tree output")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print parser statistics to stderr")

	return cmd
}
