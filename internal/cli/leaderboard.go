package cli

import (
	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	var sortKey string

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the season leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []LeaderboardEntry

			if err := client.Get("/api/v1/leaderboard?sort="+sortKey, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&sortKey, "sort", "wins", "Sort key: wins, earnings")

	return cmd
}
