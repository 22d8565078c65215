package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/brief/internal/app"
)

func (c *CLI) newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph [dir]",
		Short: "Show the import dependency graph of a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			depth, _ := cmd.Flags().GetInt("depth")
			format, _ := cmd.Flags().GetString("format")

			return c.app.Graph(cmd.Context(), projectDir(args), app.GraphOptions{
				File:   file,
				Depth:  depth,
				Format: format,
			})
		},
	}
	cmd.Flags().String("file", "", "Only show the node of this project-relative file")
	cmd.Flags().IntP("depth", "d", 0, "Radius of the related files (0 uses the configured value)")
	addFormatFlag(cmd)
	return cmd
}
