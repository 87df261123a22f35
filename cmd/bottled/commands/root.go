// Package commands implements the CLI commands for bottled.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/bottled/internal/build"
	"go.trai.ch/bottled/internal/core/domain"
)

// CLI represents the command line interface for bottled.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	getwd   func() (string, error)
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, cwd string, overrides domain.Overrides) error
	Clean(ctx context.Context, cwd string, overrides domain.Overrides, all bool) error
	Config(cwd string, overrides domain.Overrides, w io.Writer) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:   "bottled [command]",
		Short: "Run ember tooling from a cached, disposable app",
		Long: "bottled generates an ember app once per version and cache name, links your\n" +
			"files into it and runs the given ember command (default: serve) inside it.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		getwd:   os.Getwd,
	}

	addOptionFlags(rootCmd)
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		overrides, err := c.overrides(cmd)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			overrides.Command = args[0]
		}
		cwd, err := c.getwd()
		if err != nil {
			return err
		}
		return c.app.Run(cmd.Context(), cwd, overrides)
	}

	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newConfigCmd())

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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetWorkingDir pins the invoker directory instead of the process working directory. Used for testing.
func (c *CLI) SetWorkingDir(dir string) {
	c.getwd = func() (string, error) { return dir, nil }
}
