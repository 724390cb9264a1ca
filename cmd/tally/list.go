package main

import (
	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/common"
)

func listCmd() *cobra.Command {
	var (
		confirmed   bool
		unconfirmed bool
		from        string
		to          string
		retries     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long: `List transactions, optionally filtered by confirmation state and an
inclusive date range. Without flags, everything is listed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := buildFilter(confirmed, unconfirmed, from, to)
			if err != nil {
				return err
			}

			s, err := newStore()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			load := func() error { return s.Load(ctx, filter) }
			if retries > 1 {
				err = common.WithRetry(ctx, load, common.RetryOptions{MaxAttempts: retries})
			} else {
				err = load()
			}
			if err != nil {
				return err
			}

			return cli.RenderTransactions(cmd.OutOrStdout(), s.Transactions())
		},
	}

	cmd.Flags().BoolVar(&confirmed, "confirmed", false, "only reviewed transactions")
	cmd.Flags().BoolVar(&unconfirmed, "unconfirmed", false, "only transactions pending review")
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD, inclusive)")
	cmd.Flags().IntVar(&retries, "retries", 1, "retry transient failures up to N attempts")

	return cmd
}
