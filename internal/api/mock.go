package api

import (
	"context"

	"github.com/tallyhq/tally/internal/model"
)

// MockService is a mock implementation of Service for testing.
type MockService struct {
	// Functions that can be set by tests to control behavior
	ListTransactionsFn     func(ctx context.Context, filter Filter) ([]model.Transaction, error)
	GetTransactionFn       func(ctx context.Context, id int64) (*model.Transaction, error)
	CreateTransactionsFn   func(ctx context.Context, line string) ([]model.Transaction, error)
	UpdateTransactionFn    func(ctx context.Context, id int64, patch model.TransactionPatch) error
	DeleteTransactionFn    func(ctx context.Context, id int64) error
	TopExpenseCategoriesFn func(ctx context.Context, start, end *model.Date) ([]model.CategorySummary, error)
	DailySpendingFn        func(ctx context.Context, start, end model.Date) ([]model.DailySpendingSummary, error)
	DashboardStatsFn       func(ctx context.Context) (*model.DashboardStats, error)
	GetSettingsFn          func(ctx context.Context) (*model.Settings, error)
	UpdateSettingsFn       func(ctx context.Context, settings model.Settings) error

	// Call tracking
	ListCalls   []Filter
	CreateCalls []string
	UpdateCalls []UpdateCall
	DeleteCalls []int64
}

// UpdateCall records the parameters of an UpdateTransaction call.
type UpdateCall struct {
	Patch model.TransactionPatch
	ID    int64
}

// NewMockService creates a new mock API service.
func NewMockService() *MockService {
	return &MockService{}
}

// ListTransactions implements Service.ListTransactions.
func (m *MockService) ListTransactions(ctx context.Context, filter Filter) ([]model.Transaction, error) {
	m.ListCalls = append(m.ListCalls, filter)
	if m.ListTransactionsFn != nil {
		return m.ListTransactionsFn(ctx, filter)
	}
	return []model.Transaction{}, nil
}

// GetTransaction implements Service.GetTransaction.
func (m *MockService) GetTransaction(ctx context.Context, id int64) (*model.Transaction, error) {
	if m.GetTransactionFn != nil {
		return m.GetTransactionFn(ctx, id)
	}
	return &model.Transaction{ID: id}, nil
}

// CreateTransactions implements Service.CreateTransactions.
func (m *MockService) CreateTransactions(ctx context.Context, line string) ([]model.Transaction, error) {
	m.CreateCalls = append(m.CreateCalls, line)
	if m.CreateTransactionsFn != nil {
		return m.CreateTransactionsFn(ctx, line)
	}
	return []model.Transaction{}, nil
}

// UpdateTransaction implements Service.UpdateTransaction.
func (m *MockService) UpdateTransaction(ctx context.Context, id int64, patch model.TransactionPatch) error {
	m.UpdateCalls = append(m.UpdateCalls, UpdateCall{ID: id, Patch: patch})
	if m.UpdateTransactionFn != nil {
		return m.UpdateTransactionFn(ctx, id, patch)
	}
	return nil
}

// DeleteTransaction implements Service.DeleteTransaction.
func (m *MockService) DeleteTransaction(ctx context.Context, id int64) error {
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteTransactionFn != nil {
		return m.DeleteTransactionFn(ctx, id)
	}
	return nil
}

// TopExpenseCategories implements Service.TopExpenseCategories.
func (m *MockService) TopExpenseCategories(ctx context.Context, start, end *model.Date) ([]model.CategorySummary, error) {
	if m.TopExpenseCategoriesFn != nil {
		return m.TopExpenseCategoriesFn(ctx, start, end)
	}
	return []model.CategorySummary{}, nil
}

// DailySpending implements Service.DailySpending.
func (m *MockService) DailySpending(ctx context.Context, start, end model.Date) ([]model.DailySpendingSummary, error) {
	if m.DailySpendingFn != nil {
		return m.DailySpendingFn(ctx, start, end)
	}
	return []model.DailySpendingSummary{}, nil
}

// DashboardStats implements Service.DashboardStats.
func (m *MockService) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	if m.DashboardStatsFn != nil {
		return m.DashboardStatsFn(ctx)
	}
	return &model.DashboardStats{}, nil
}

// GetSettings implements Service.GetSettings.
func (m *MockService) GetSettings(ctx context.Context) (*model.Settings, error) {
	if m.GetSettingsFn != nil {
		return m.GetSettingsFn(ctx)
	}
	return &model.Settings{}, nil
}

// UpdateSettings implements Service.UpdateSettings.
func (m *MockService) UpdateSettings(ctx context.Context, settings model.Settings) error {
	if m.UpdateSettingsFn != nil {
		return m.UpdateSettingsFn(ctx, settings)
	}
	return nil
}

// Reset clears all call tracking.
func (m *MockService) Reset() {
	m.ListCalls = nil
	m.CreateCalls = nil
	m.UpdateCalls = nil
	m.DeleteCalls = nil
}

// Ensure MockService implements the Service interface.
var _ Service = (*MockService)(nil)
