package model

import "github.com/shopspring/decimal"

// CategorySummary is one row of the top-expense-categories report.
type CategorySummary struct {
	Category   string          `json:"category"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// DailySpendingSummary is one row of the daily-spending report.
type DailySpendingSummary struct {
	Date       Date            `json:"transaction_date"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// DashboardStats holds the backend's aggregate counters.
type DashboardStats struct {
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	TransactionCount int             `json:"transaction_count"`
	CategoryCount    int             `json:"category_count"`
}

// Settings holds the user preferences stored server-side.
type Settings struct {
	Currency string `json:"currency"`
	Timezone string `json:"timezone"`
}
