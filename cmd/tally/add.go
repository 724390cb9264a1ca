package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
)

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <line...>",
		Short: "Add transactions from a plain-text line",
		Long: `Send a natural-language line to the backend for parsing. One line can
come back as zero, one, or several transactions:

  tally add "coffee 4.50 and a taxi home for 18"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore()
			if err != nil {
				return err
			}

			created, err := s.Create(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if len(created) == 0 {
				return nil
			}
			return cli.RenderTransactions(cmd.OutOrStdout(), created)
		},
	}
}
