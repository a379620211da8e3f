package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/goparse/format"
	"github.com/dhamidi/goparse/golang/parser"
)

func newCheckCmd(g *globals) *cobra.Command {
	var color bool

	cmd := &cobra.Command{
		Use:   "check <files...>",
		Short: "Report syntax errors in Go source files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("color") {
				color = g.cfg.Color
			}
			log := commonlog.GetLogger("goparse.check")
			out := cmd.OutOrStdout()
			enc := format.NewDiagnosticsEncoder(out).WithStyles(format.NewStyles(out, color))

			total := 0
			for _, filename := range args {
				data, err := readSource(cmd, filename)
				if err != nil {
					return err
				}
				_, errs := parser.ParseSource(data, filename, parser.WithLogger(commonlog.GetLogger("goparse.parser")))
				log.Infof("%s: %d errors", filename, len(errs))
				if err := enc.Encode(errs); err != nil {
					return fmt.Errorf("encode diagnostics: %w", err)
				}
				total += len(errs)
			}
			if total > 0 {
				return fmt.Errorf("%d syntax errors", total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&color, "color", false, "colorize diagnostics")

	return cmd
}
