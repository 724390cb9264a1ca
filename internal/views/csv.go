package views

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tallyhq/tally/internal/model"
)

// csvHeaders is the fixed column order for exports.
var csvHeaders = []string{"ID", "Description", "Amount", "Currency", "Category", "Date", "Status"}

// CSVRows projects transactions into export rows, one per transaction, in
// the fixed column order: id, description, amount, currency, category,
// date, confirmation label.
func CSVRows(transactions []model.Transaction) [][]string {
	rows := make([][]string, 0, len(transactions))
	for _, txn := range transactions {
		status := "Pending"
		if txn.Confirm {
			status = "Confirmed"
		}
		rows = append(rows, []string{
			strconv.FormatInt(txn.ID, 10),
			txn.Description,
			txn.Amount.String(),
			txn.Currency,
			txn.Category,
			txn.Date.String(),
			status,
		})
	}
	return rows
}

// WriteCSV writes the header row followed by one row per transaction.
func WriteCSV(w io.Writer, transactions []model.Transaction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeaders); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range CSVRows(transactions) {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// ExportFilename returns the default export filename for the given date,
// e.g. "transactions_2024-03-10.csv".
func ExportFilename(date model.Date) string {
	return fmt.Sprintf("transactions_%s.csv", date)
}
