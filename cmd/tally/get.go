package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/api"
	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			txn, err := client.GetTransaction(cmd.Context(), id)
			if api.IsNotFound(err) {
				return common.NewUserError(fmt.Sprintf("no transaction with id %d", id), err)
			}
			if err != nil {
				return err
			}

			return cli.RenderTransactions(cmd.OutOrStdout(), []model.Transaction{*txn})
		},
	}
}
