package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/model"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Spending reports from the backend",
	}
	cmd.AddCommand(topCategoriesCmd())
	cmd.AddCommand(dailySpendingCmd())
	return cmd
}

func topCategoriesCmd() *cobra.Command {
	var (
		from     string
		to       string
		currency string
	)

	cmd := &cobra.Command{
		Use:   "top-categories",
		Short: "Top expense categories",
		Long: `Show the categories with the highest spending. Without dates, the
backend defaults to the current month.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var start, end *model.Date
			if from != "" {
				date, err := model.ParseDate(from)
				if err != nil {
					return fmt.Errorf("invalid --from: %w", err)
				}
				start = &date
			}
			if to != "" {
				date, err := model.ParseDate(to)
				if err != nil {
					return fmt.Errorf("invalid --to: %w", err)
				}
				end = &date
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}
			summaries, err := client.TopExpenseCategories(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			return cli.RenderCategorySummaries(cmd.OutOrStdout(), summaries, currency)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&currency, "currency", "USD", "currency code for formatting totals")

	return cmd
}

func dailySpendingCmd() *cobra.Command {
	var (
		from     string
		to       string
		currency string
	)

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Daily spending totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if from == "" || to == "" {
				return fmt.Errorf("--from and --to are required")
			}
			start, err := model.ParseDate(from)
			if err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			end, err := model.ParseDate(to)
			if err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}
			summaries, err := client.DailySpending(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			return cli.RenderDailySpending(cmd.OutOrStdout(), summaries, currency)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&currency, "currency", "USD", "currency code for formatting totals")

	return cmd
}
