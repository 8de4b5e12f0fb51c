package main

import (
	"github.com/spf13/cobra"

	"github.com/parsegrove/parsegrove/config"
	"github.com/parsegrove/parsegrove/lspserver"
)

const version = "0.1.0"

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp <grammar.yaml>",
		Short: "Start the Language Server Protocol server over stdio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.LoadFile(args[0])
			if err != nil {
				return err
			}

			server := lspserver.New(p, version)
			return server.RunStdio()
		},
	}
}
