package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/goparse/lsp"
)

func newLSPCmd(g *globals) *cobra.Command {
	var transport string
	var address string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := g.cfg.LSP
			if cmd.Flags().Changed("transport") {
				cfg.Transport = transport
			}
			if cmd.Flags().Changed("address") {
				cfg.Address = address
			}
			return lsp.NewServer(version, cfg).Run()
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "stdio", "transport (stdio, tcp, websocket)")
	cmd.Flags().StringVar(&address, "address", "", "listen address for tcp and websocket")

	return cmd
}
