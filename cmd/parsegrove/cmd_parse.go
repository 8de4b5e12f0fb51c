package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/parsegrove/parsegrove/ast"
	"github.com/parsegrove/parsegrove/config"
	"github.com/parsegrove/parsegrove/internal/logging"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <grammar.yaml> <input-file>",
		Short: "Parse each line of a file against a grammar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.LoadFile(args[0])
			if err != nil {
				return err
			}

			f, err := os.Open(args[1])
			if err != nil {
				logging.Get().Errorf("%s: %s", args[1], err)
				return fmt.Errorf("open %s: %w", args[1], err)
			}
			defer f.Close()

			logging.Get().Infof("parsing %s against %s", args[1], args[0])
			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(f)
			var lineNumber uint
			for scanner.Scan() {
				lineNumber++
				line := scanner.Text()

				results, err := p.Parse(line, lineNumber)
				if err != nil {
					fmt.Fprintf(out, "%d: %s\n", lineNumber, err)
					continue
				}

				for _, r := range results {
					if r.Success {
						fmt.Fprintf(out, "%d: %s\n", lineNumber, ast.Sprint(r.AST))
					} else {
						fmt.Fprintf(out, "%d: expected %s, got %s\n", lineNumber, r.Err.Expected, r.Err.Actual.ID())
					}
				}
			}
			return scanner.Err()
		},
	}
}
