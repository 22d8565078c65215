package commands

import "github.com/spf13/cobra"

func (c *CLI) newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [dir]",
		Short: "Detect the framework template of a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return c.app.Classify(cmd.Context(), projectDir(args), format)
		},
	}
	addFormatFlag(cmd)
	return cmd
}
