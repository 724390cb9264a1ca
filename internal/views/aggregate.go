package views

import (
	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/model"
)

// Aggregate computes dashboard statistics from a local snapshot. It is the
// client-side mirror of the backend's /dashboard/stats endpoint, for views
// that already hold the collection.
func Aggregate(transactions []model.Transaction) model.DashboardStats {
	total := decimal.Zero
	categories := make(map[string]struct{})
	for _, txn := range transactions {
		total = total.Add(txn.Amount)
		categories[txn.Category] = struct{}{}
	}
	return model.DashboardStats{
		TotalExpenses:    total,
		TransactionCount: len(transactions),
		CategoryCount:    len(categories),
	}
}
