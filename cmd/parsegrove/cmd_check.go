package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parsegrove/parsegrove/config"
	"github.com/parsegrove/parsegrove/internal/logging"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <grammar.yaml>",
		Short: "Validate a grammar configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.LoadFile(args[0]); err != nil {
				logging.Get().Errorf("%s: %s", args[0], err)
				return err
			}
			logging.Get().Infof("%s: grammar is valid", args[0])
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
