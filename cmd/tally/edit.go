package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/model"
)

func editCmd() *cobra.Command {
	var (
		description string
		category    string
		currency    string
		amount      string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit fields of a transaction",
		Long: `Send a partial update for a transaction. Only the flags you pass are
changed; everything else is left as it was.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			// Only flags the user actually set go into the patch;
			// an empty string is a legal value, not an absent one.
			var patch model.TransactionPatch
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("category") {
				patch.Category = &category
			}
			if cmd.Flags().Changed("currency") {
				patch.Currency = &currency
			}
			if cmd.Flags().Changed("amount") {
				parsed, err := decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("invalid --amount: %w", err)
				}
				patch.Amount = &parsed
			}
			if cmd.Flags().Changed("date") {
				parsed, err := model.ParseDate(date)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				patch.Date = &parsed
			}

			if patch.IsZero() {
				return fmt.Errorf("nothing to change: pass at least one field flag")
			}

			s, err := newStore()
			if err != nil {
				return err
			}
			return s.Update(cmd.Context(), id, patch)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&currency, "currency", "", "new currency code")
	cmd.Flags().StringVar(&amount, "amount", "", "new amount")
	cmd.Flags().StringVar(&date, "date", "", "new transaction date (YYYY-MM-DD)")

	return cmd
}

func confirmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confirm <id>",
		Short: "Mark a transaction as reviewed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			s, err := newStore()
			if err != nil {
				return err
			}
			return s.Confirm(cmd.Context(), id)
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			s, err := newStore()
			if err != nil {
				return err
			}
			return s.Delete(cmd.Context(), id)
		},
	}
}
