package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/config"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/views"
)

func exportCmd() *cobra.Command {
	var (
		confirmed   bool
		unconfirmed bool
		from        string
		to          string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions to CSV",
		Long: `Fetch transactions (with the same filters as list) and write them as
CSV. The default filename is transactions_<today>.csv.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := buildFilter(confirmed, unconfirmed, from, to)
			if err != nil {
				return err
			}

			s, err := newStore()
			if err != nil {
				return err
			}
			if err := s.Load(cmd.Context(), filter); err != nil {
				return err
			}

			if output == "" {
				output = views.ExportFilename(model.Today())
			}
			output = config.ExpandPath(output)

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create export file: %w", err)
			}
			defer func() {
				_ = file.Close()
			}()

			if err := views.WriteCSV(file, s.Transactions()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transactions to %s\n", s.Len(), output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "confirmed", false, "only reviewed transactions")
	cmd.Flags().BoolVar(&unconfirmed, "unconfirmed", false, "only transactions pending review")
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")

	return cmd
}
