package cli

import (
	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Roster management commands",
	}

	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerUpdateCmd())
	cmd.AddCommand(newPlayerRemoveCmd())

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	var sortKey, order string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the player roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/players?sort=" + sortKey
			if order != "" {
				path += "&order=" + order
			}

			var result []Player
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&sortKey, "sort", "earnings", "Sort key: earnings, name")
	cmd.Flags().StringVar(&order, "order", "", "Sort order: asc, desc")

	return cmd
}

func newPlayerAddCmd() *cobra.Command {
	var name, earnings string
	var wins int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a player to the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"name": name, "wins": wins}
			if earnings != "" {
				req["earnings"] = earnings
			}

			var result Player
			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().IntVar(&wins, "wins", 0, "Seed win count")
	cmd.Flags().StringVar(&earnings, "earnings", "", "Seed earnings")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <player-id>",
		Short: "Show a single player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player
			if err := client.Get("/api/v1/players/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerUpdateCmd() *cobra.Command {
	var name, earnings string
	var wins int

	cmd := &cobra.Command{
		Use:   "update <player-id>",
		Short: "Overwrite a player's name, wins and earnings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":     name,
				"wins":     wins,
				"earnings": earnings,
			}

			var result Player
			if err := client.Put("/api/v1/players/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().IntVar(&wins, "wins", 0, "Win count")
	cmd.Flags().StringVar(&earnings, "earnings", "0", "Earnings")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlayerRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <player-id>",
		Short: "Remove a player from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/players/" + args[0]); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Player removed")
			return nil
		},
	}
}
