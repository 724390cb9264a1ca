package api

import (
	"context"

	"github.com/tallyhq/tally/internal/model"
)

// Service defines the contract the transaction store and the CLI use to
// reach the backend. This interface allows for easy mocking in tests.
type Service interface {
	ListTransactions(ctx context.Context, filter Filter) ([]model.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (*model.Transaction, error)
	CreateTransactions(ctx context.Context, line string) ([]model.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, patch model.TransactionPatch) error
	DeleteTransaction(ctx context.Context, id int64) error

	TopExpenseCategories(ctx context.Context, start, end *model.Date) ([]model.CategorySummary, error)
	DailySpending(ctx context.Context, start, end model.Date) ([]model.DailySpendingSummary, error)
	DashboardStats(ctx context.Context) (*model.DashboardStats, error)

	GetSettings(ctx context.Context) (*model.Settings, error)
	UpdateSettings(ctx context.Context, settings model.Settings) error
}
