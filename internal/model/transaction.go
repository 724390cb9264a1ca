// Package model defines the domain types shared across the application.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single expense parsed by the backend from a
// natural-language line. The ID is server-assigned and immutable; the
// amount's sign convention is fixed by the backend and never re-derived
// client-side.
type Transaction struct {
	CreatedAt   time.Time       `json:"created_at"`
	Date        Date            `json:"transaction_date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Currency    string          `json:"currency"`
	Amount      decimal.Decimal `json:"amount"`
	ID          int64           `json:"id"`
	Confirm     bool            `json:"confirm"`
}

// TransactionPatch is a partial update for a transaction. A nil field is
// absent from the patch: it is omitted from the request body and left
// untouched on merge. This is how an explicit false is distinguished from
// "not being changed".
type TransactionPatch struct {
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Currency    *string          `json:"currency,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *Date            `json:"transaction_date,omitempty"`
	Confirm     *bool            `json:"confirm,omitempty"`
}

// IsZero reports whether the patch changes nothing.
func (p TransactionPatch) IsZero() bool {
	return p.Description == nil &&
		p.Category == nil &&
		p.Currency == nil &&
		p.Amount == nil &&
		p.Date == nil &&
		p.Confirm == nil
}

// Apply merges the patch into t field by field, leaving absent fields
// untouched.
func (p TransactionPatch) Apply(t *Transaction) {
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Currency != nil {
		t.Currency = *p.Currency
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Confirm != nil {
		t.Confirm = *p.Confirm
	}
}

// ConfirmPatch returns the patch that marks a transaction as reviewed.
func ConfirmPatch() TransactionPatch {
	confirmed := true
	return TransactionPatch{Confirm: &confirmed}
}
