package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newClasspathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classpath",
		Short: "Resolve dependencies and print the classpath",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, opts, err := options(cmd)
			if err != nil {
				return err
			}
			cp, err := c.app.MakeClasspath(cmd.Context(), dir, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cp)
			return nil
		},
	}
}
