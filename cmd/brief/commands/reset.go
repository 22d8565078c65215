package commands

import "github.com/spf13/cobra"

func (c *CLI) newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset [dir]",
		Short: "Forget the persisted session of a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Reset(cmd.Context(), projectDir(args))
		},
	}
}
