package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View or change backend settings",
	}
	cmd.AddCommand(settingsGetCmd())
	cmd.AddCommand(settingsSetCmd())
	return cmd
}

func settingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			settings, err := client.GetSettings(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Currency: %s\n", settings.Currency)
			fmt.Fprintf(out, "Timezone: %s\n", settings.Timezone)
			return nil
		},
	}
}

func settingsSetCmd() *cobra.Command {
	var (
		currency string
		timezone string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if currency == "" && timezone == "" {
				return fmt.Errorf("pass --currency and/or --timezone")
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			// The settings endpoint replaces the whole document, so
			// start from the current values when only one flag is set.
			current, err := client.GetSettings(ctx)
			if err != nil {
				return err
			}
			updated := *current
			if currency != "" {
				updated.Currency = currency
			}
			if timezone != "" {
				updated.Timezone = timezone
			}

			if err := client.UpdateSettings(ctx, updated); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Settings updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "preferred currency code")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone name")

	return cmd
}
