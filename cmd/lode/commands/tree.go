package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Resolve dependencies and print the dependency tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, opts, err := options(cmd)
			if err != nil {
				return err
			}
			opts.Trace = true
			basis, err := c.app.CalcBasis(cmd.Context(), dir, opts)
			if err != nil {
				return err
			}
			for _, entry := range basis.Trace.Entries {
				indent := strings.Repeat("  ", len(entry.Path))
				summary := c.app.CoordSummary(entry.Lib, entry.UseCoord)
				if entry.Include {
					fmt.Fprintf(cmd.OutOrStdout(), "%s%s %s\n", indent, entry.Lib, summary)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%sX %s %s (%s)\n", indent, entry.Lib, summary, entry.Reason)
			}
			return nil
		},
	}
}
