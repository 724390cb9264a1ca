package store

import (
	"sort"

	"github.com/tallyhq/tally/internal/model"
)

// Snapshot is a point-in-time copy of the store's observable state.
type Snapshot struct {
	Err          string
	Transactions []model.Transaction
	Loading      bool
}

// Snapshot returns a copy of the current state. Mutating the returned
// slice does not affect the store.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Transactions: append([]model.Transaction(nil), s.transactions...),
		Loading:      s.inflight > 0,
		Err:          s.lastErr,
	}
}

// Transactions returns a copy of the current collection in server order,
// with created entries at the front.
func (s *Store) Transactions() []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Transaction(nil), s.transactions...)
}

// Loading reports whether at least one operation is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

// Err returns the last operation's failure message, or "" if the most
// recently started operation did not fail.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Len returns the number of transactions currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transactions)
}

// Get returns the transaction with the given id, if present.
func (s *Store) Get(id int64) (model.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, txn := range s.transactions {
		if txn.ID == id {
			return txn, true
		}
	}
	return model.Transaction{}, false
}

// Categories returns the distinct category labels currently present,
// sorted for stable output.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{})
	var categories []string
	for _, txn := range s.transactions {
		if _, dup := seen[txn.Category]; dup {
			continue
		}
		seen[txn.Category] = struct{}{}
		categories = append(categories, txn.Category)
	}
	sort.Strings(categories)
	return categories
}

// HasUnconfirmed reports whether any transaction is still pending review.
func (s *Store) HasUnconfirmed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, txn := range s.transactions {
		if !txn.Confirm {
			return true
		}
	}
	return false
}

// Unconfirmed returns the transactions pending review, in collection order.
func (s *Store) Unconfirmed() []model.Transaction {
	return s.partition(false)
}

// Confirmed returns the reviewed transactions, in collection order.
func (s *Store) Confirmed() []model.Transaction {
	return s.partition(true)
}

func (s *Store) partition(confirmed bool) []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []model.Transaction
	for _, txn := range s.transactions {
		if txn.Confirm == confirmed {
			matched = append(matched, txn)
		}
	}
	return matched
}
