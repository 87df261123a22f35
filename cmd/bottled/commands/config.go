package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides, err := c.overrides(cmd)
			if err != nil {
				return err
			}
			cwd, err := c.getwd()
			if err != nil {
				return err
			}
			return c.app.Config(cwd, overrides, cmd.OutOrStdout())
		},
	}
}
