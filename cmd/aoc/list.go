package main

import (
	"github.com/spf13/cobra"
)

func listCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the solved days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context(), flags, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return s.encoder.Puzzles(s.client.Puzzles())
		},
	}
}
