package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/brief/internal/app"
)

func (c *CLI) newPrepareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prepare [dir]",
		Short: "Select and render the context for a task",
		Long: "Select the files of the project most relevant to the task and render them.\n" +
			"Files already shown in the current session are skipped while the task stays the same.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, _ := cmd.Flags().GetString("task")
			topK, _ := cmd.Flags().GetInt("top-k")
			budget, _ := cmd.Flags().GetInt("budget")
			full, _ := cmd.Flags().GetBool("full")
			format, _ := cmd.Flags().GetString("format")
			includes, _ := cmd.Flags().GetStringArray("include")
			noSession, _ := cmd.Flags().GetBool("no-session")

			return c.app.Prepare(cmd.Context(), projectDir(args), app.PrepareOptions{
				Task:      task,
				TopK:      topK,
				Budget:    budget,
				Full:      full,
				Format:    format,
				Includes:  includes,
				NoSession: noSession,
			})
		},
	}
	cmd.Flags().StringP("task", "t", "", "Description of the task the context is prepared for")
	cmd.Flags().IntP("top-k", "k", 0, "Number of files to select (0 uses the configured value)")
	cmd.Flags().IntP("budget", "b", 0, "Token budget of the rendered context (0 uses the configured value)")
	cmd.Flags().BoolP("full", "f", false, "Resend the full context even when the session has seen it")
	cmd.Flags().StringArrayP("include", "i", nil, "Only consider files matching the glob (repeatable)")
	cmd.Flags().Bool("no-session", false, "Neither read nor write the persisted session")
	addFormatFlag(cmd)
	_ = cmd.MarkFlagRequired("task")
	return cmd
}
