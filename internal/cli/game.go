package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGamePlaceCmd())
	cmd.AddCommand(newGameBlankCmd())
	cmd.AddCommand(newGameRetrieveCmd())
	cmd.AddCommand(newGameShuffleCmd())
	cmd.AddCommand(newGameSubmitCmd())
	cmd.AddCommand(newGameChallengeCmd())

	return cmd
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <room-code>",
		Short: "Start a game in a room (host only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.ToUpper(args[0])
			var result GameView

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/game", code), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <game-id>",
		Short: "Show the game from your point of view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameView

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGamePlaceCmd() *cobra.Command {
	var row, col int
	var tileID string

	cmd := &cobra.Command{
		Use:   "place <game-id>",
		Short: "Stage a rack tile onto the board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"row":     row,
				"col":     col,
				"tile_id": tileID,
			}
			var result GameView

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/place", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&row, "row", 0, "Board row (0-14)")
	cmd.Flags().IntVar(&col, "col", 0, "Board column (0-14)")
	cmd.Flags().StringVar(&tileID, "tile", "", "Tile ID from your rack (required)")
	_ = cmd.MarkFlagRequired("tile")

	return cmd
}

func newGameBlankCmd() *cobra.Command {
	var tileID, letter string

	cmd := &cobra.Command{
		Use:   "blank <game-id>",
		Short: "Assign a letter to a blank tile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"tile_id": tileID,
				"letter":  letter,
			}
			var result GameView

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/blank", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&tileID, "tile", "", "Blank tile ID (required)")
	cmd.Flags().StringVar(&letter, "letter", "", "Letter A-Z to assign (required)")
	_ = cmd.MarkFlagRequired("tile")
	_ = cmd.MarkFlagRequired("letter")

	return cmd
}

func newGameRetrieveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retrieve <game-id>",
		Short: "Pull all your staged tiles back to your rack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameView

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/retrieve", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameShuffleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle <game-id>",
		Short: "Shuffle your rack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameView

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/shuffle", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <game-id>",
		Short: "Submit your staged tiles as a move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MoveResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/submit", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameChallengeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "challenge <game-id>",
		Short: "Challenge the pending move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ChallengeResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/challenge", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
