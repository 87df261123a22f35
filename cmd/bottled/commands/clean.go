package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the bottled app for the current options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")

			overrides, err := c.overrides(cmd)
			if err != nil {
				return err
			}
			cwd, err := c.getwd()
			if err != nil {
				return err
			}
			return c.app.Clean(cmd.Context(), cwd, overrides, all)
		},
	}

	cmd.Flags().BoolP("all", "a", false, "Remove every bottled app in the cache root")

	return cmd
}
