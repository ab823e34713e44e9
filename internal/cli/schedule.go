package cli

import (
	"github.com/spf13/cobra"
)

func newScheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Show upcoming and past sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Schedule

			if err := client.Get("/api/v1/schedule", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
