package cli

import (
	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session scheduling and ledger commands",
	}

	cmd.AddCommand(newSessionListCmd())
	cmd.AddCommand(newSessionCreateCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionUpdateCmd())
	cmd.AddCommand(newSessionDeleteCmd())
	cmd.AddCommand(newSessionJoinCmd())
	cmd.AddCommand(newSessionMembersCmd())
	cmd.AddCommand(newSessionEligibleCmd())
	cmd.AddCommand(newSessionRebuyCmd())
	cmd.AddCommand(newSessionCashOutCmd())

	return cmd
}

func newSessionListCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/sessions"
			if from != "" {
				path += "?from=" + from
			}

			var result []Session
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Only sessions on or after this date (YYYY-MM-DD)")

	return cmd
}

func newSessionCreateCmd() *cobra.Command {
	var name, description, location, gameType, buyIn, date, timeOfDay string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Schedule a new session",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":        name,
				"description": description,
				"location":    location,
				"game_type":   gameType,
				"buy_in":      buyIn,
				"date":        date,
				"time":        timeOfDay,
			}

			var result Session
			if err := client.Post("/api/v1/sessions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Session name (required)")
	cmd.Flags().StringVar(&description, "description", "", "Free-form notes")
	cmd.Flags().StringVar(&location, "location", "", "Where the game is played")
	cmd.Flags().StringVar(&gameType, "game", "Texas Hold'em", "Game type")
	cmd.Flags().StringVar(&buyIn, "buy-in", "0", "Standard buy-in")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Start time (HH:MM)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <session-id>",
		Short: "Show a single session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session
			if err := client.Get("/api/v1/sessions/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionUpdateCmd() *cobra.Command {
	var name, description, location, gameType, buyIn, date, timeOfDay string

	cmd := &cobra.Command{
		Use:   "update <session-id>",
		Short: "Edit a session; only the flags you pass are changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("name") {
				req["name"] = name
			}
			if cmd.Flags().Changed("description") {
				req["description"] = description
			}
			if cmd.Flags().Changed("location") {
				req["location"] = location
			}
			if cmd.Flags().Changed("game") {
				req["game_type"] = gameType
			}
			if cmd.Flags().Changed("buy-in") {
				req["buy_in"] = buyIn
			}
			if cmd.Flags().Changed("date") {
				req["date"] = date
			}
			if cmd.Flags().Changed("time") {
				req["time"] = timeOfDay
			}

			var result Session
			if err := client.Patch("/api/v1/sessions/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Session name")
	cmd.Flags().StringVar(&description, "description", "", "Free-form notes")
	cmd.Flags().StringVar(&location, "location", "", "Where the game is played")
	cmd.Flags().StringVar(&gameType, "game", "", "Game type")
	cmd.Flags().StringVar(&buyIn, "buy-in", "", "Standard buy-in")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Start time (HH:MM)")

	return cmd
}

func newSessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete a session and its ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/sessions/" + args[0]); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Session deleted")
			return nil
		},
	}
}

func newSessionJoinCmd() *cobra.Command {
	var playerID, buyIn string

	cmd := &cobra.Command{
		Use:   "join <session-id>",
		Short: "Add a player to a session with an opening buy-in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"player_id": playerID,
				"buy_in":    buyIn,
			}

			var result SessionPlayer
			if err := client.Post("/api/v1/sessions/"+args[0]+"/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player ID (required)")
	cmd.Flags().StringVar(&buyIn, "buy-in", "0", "Opening buy-in")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newSessionMembersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "members <session-id>",
		Short: "List a session's ledger in join order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []SessionPlayer
			if err := client.Get("/api/v1/sessions/"+args[0]+"/players", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionEligibleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eligible <session-id>",
		Short: "List roster players not yet in the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player
			if err := client.Get("/api/v1/sessions/"+args[0]+"/eligible-players", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionRebuyCmd() *cobra.Command {
	var playerID, amount string

	cmd := &cobra.Command{
		Use:   "rebuy <session-id>",
		Short: "Record a rebuy for a playing member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"amount": amount}

			var result SessionPlayer
			if err := client.Post("/api/v1/sessions/"+args[0]+"/players/"+playerID+"/rebuy", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player ID (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "Rebuy amount (required)")
	_ = cmd.MarkFlagRequired("player")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newSessionCashOutCmd() *cobra.Command {
	var playerID, amount string

	cmd := &cobra.Command{
		Use:   "cashout <session-id>",
		Short: "Settle a playing member with a final cash-out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"amount": amount}

			var result SessionPlayer
			if err := client.Post("/api/v1/sessions/"+args[0]+"/players/"+playerID+"/cash-out", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player ID (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "Cash-out amount (required)")
	_ = cmd.MarkFlagRequired("player")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
