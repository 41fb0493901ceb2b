// Package commands implements the CLI commands for the lode tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/lode/internal/app"
	"go.trai.ch/lode/internal/build"
)

// CLI represents the command line interface for lode.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "lode",
		Short:         "Dependency resolver and classpath builder for JVM projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().StringP("dir", "C", ".", "Project directory containing lode.yaml")
	rootCmd.PersistentFlags().StringSliceP("alias", "A", nil, "Aliases to combine, in order")
	rootCmd.PersistentFlags().Int("threads", 0, "Worker pool size (default: available processors)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newClasspathCmd())
	rootCmd.AddCommand(c.newTreeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut sets the output writer for the root command. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

// options reads the persistent flags into app options.
func options(cmd *cobra.Command) (string, app.Options, error) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return "", app.Options{}, err
	}
	aliases, err := cmd.Flags().GetStringSlice("alias")
	if err != nil {
		return "", app.Options{}, err
	}
	threads, err := cmd.Flags().GetInt("threads")
	if err != nil {
		return "", app.Options{}, err
	}
	return dir, app.Options{
		Aliases: aliases,
		Threads: threads,
	}, nil
}
