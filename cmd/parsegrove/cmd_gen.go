package main

import (
	"github.com/spf13/cobra"

	"github.com/parsegrove/parsegrove/codegen"
	"github.com/parsegrove/parsegrove/grammardef"
)

func newGenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen <grammar.yaml> <package-name>",
		Short: "Generate named-group accessor constants for a grammar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readGrammarDoc(args[0])
			if err != nil {
				return err
			}

			_, _, root, err := grammardef.Build(doc)
			if err != nil {
				return err
			}

			accessors := codegen.AccessorNames(root)
			return codegen.WriteGo(cmd.OutOrStdout(), args[1], accessors)
		},
	}
}
