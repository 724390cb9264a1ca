package main

import (
	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/api"
	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/views"
)

func dashboardCmd() *cobra.Command {
	var (
		local    bool
		currency string
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show aggregate spending statistics",
		Long: `Show total expenses, transaction count, and category count. By default
the backend computes the numbers; --local aggregates over a fresh fetch
of the full collection instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if local {
				s, err := newStore()
				if err != nil {
					return err
				}
				if err := s.Load(cmd.Context(), api.Filter{}); err != nil {
					return err
				}
				cli.RenderStats(out, views.Aggregate(s.Transactions()), currency)
				return nil
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}
			stats, err := client.DashboardStats(cmd.Context())
			if err != nil {
				return err
			}
			cli.RenderStats(out, *stats, currency)
			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "aggregate client-side instead of asking the backend")
	cmd.Flags().StringVar(&currency, "currency", "USD", "currency code for formatting totals")

	return cmd
}
