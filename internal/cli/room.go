package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRoomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Room management commands",
	}

	cmd.AddCommand(newRoomCreateCmd())
	cmd.AddCommand(newRoomShowCmd())
	cmd.AddCommand(newRoomJoinCmd())
	cmd.AddCommand(newRoomLeaveCmd())

	return cmd
}

func newRoomCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new room",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Room

			if err := client.Post("/api/v1/rooms", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <code>",
		Short: "Show room details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.ToUpper(args[0])
			var result Room

			if err := client.Get(fmt.Sprintf("/api/v1/rooms/%s", code), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <code>",
		Short: "Join a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.ToUpper(args[0])
			var result Room

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/join", code), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomLeaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leave <code>",
		Short: "Leave a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.ToUpper(args[0])

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/leave", code), nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Left room %s", code))
			return nil
		},
	}
}
