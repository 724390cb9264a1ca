package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/views"
)

// RenderTransactions writes a readable table of transactions.
func RenderTransactions(w io.Writer, transactions []model.Transaction) error {
	if len(transactions) == 0 {
		_, err := fmt.Fprintln(w, SubtleStyle.Render("No transactions."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tDESCRIPTION\tCATEGORY\tAMOUNT\tSTATUS")
	for _, txn := range transactions {
		status := SuccessStyle.Render("confirmed")
		if !txn.Confirm {
			status = PendingStyle.Render("pending")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			txn.ID,
			txn.Date,
			txn.Description,
			views.CategoryStyle(txn.Category).Render(txn.Category),
			views.FormatAmount(txn.Amount, txn.Currency),
			status,
		)
	}
	return tw.Flush()
}

// RenderCategorySummaries writes the top-expense-categories report.
func RenderCategorySummaries(w io.Writer, summaries []model.CategorySummary, currencyCode string) error {
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(w, SubtleStyle.Render("No spending in this period."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tTOTAL SPENT")
	for _, summary := range summaries {
		fmt.Fprintf(tw, "%s\t%s\n",
			views.CategoryStyle(summary.Category).Render(summary.Category),
			views.FormatAmount(summary.TotalSpent, currencyCode),
		)
	}
	return tw.Flush()
}

// RenderDailySpending writes the daily-spending report.
func RenderDailySpending(w io.Writer, summaries []model.DailySpendingSummary, currencyCode string) error {
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(w, SubtleStyle.Render("No spending in this period."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTOTAL SPENT")
	for _, summary := range summaries {
		fmt.Fprintf(tw, "%s\t%s\n", summary.Date, views.FormatAmount(summary.TotalSpent, currencyCode))
	}
	return tw.Flush()
}

// RenderStats writes dashboard statistics.
func RenderStats(w io.Writer, stats model.DashboardStats, currencyCode string) {
	fmt.Fprintln(w, TitleStyle.Render("Dashboard"))
	fmt.Fprintf(w, "Total expenses:  %s\n", views.FormatAmount(stats.TotalExpenses, currencyCode))
	fmt.Fprintf(w, "Transactions:    %s\n", views.FormatCount(stats.TransactionCount))
	fmt.Fprintf(w, "Categories:      %s\n", views.FormatCount(stats.CategoryCount))
}
