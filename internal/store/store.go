// Package store owns the local transaction collection and mediates every
// create, update, delete, and fetch against the backend API.
//
// The store is pessimistic: a local mutation is applied only after its own
// response arrives, never speculatively. Responses that lose a race to a
// newer operation are discarded via per-id sequence numbers (updates,
// deletes) and a generation token (loads).
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/tallyhq/tally/internal/api"
	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/notify"
)

// ErrEmptyLine indicates a creation line with no content. It is rejected
// before any request is sent.
var ErrEmptyLine = errors.New("transaction line is empty")

// Store is the canonical local collection of transactions. All methods
// are safe for concurrent use.
type Store struct {
	svc      api.Service
	notifier notify.Notifier

	mu           sync.Mutex
	transactions []model.Transaction
	inflight     int
	lastErr      string

	loadGen uint64
	seq     map[int64]uint64 // per-id dispatch sequence
	applied map[int64]uint64 // per-id highest applied response
}

// New creates a store backed by the given API service. A nil notifier
// discards notifications.
func New(svc api.Service, notifier notify.Notifier) *Store {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Store{
		svc:      svc,
		notifier: notifier,
		seq:      make(map[int64]uint64),
		applied:  make(map[int64]uint64),
	}
}

// begin marks an operation in flight and clears the last error.
func (s *Store) begin() {
	s.mu.Lock()
	s.inflight++
	s.lastErr = ""
	s.mu.Unlock()
}

// finish releases the in-flight slot and records the failure, if any.
// Operations defer it so the loading flag drops on every exit path.
func (s *Store) finish(err *error) {
	s.mu.Lock()
	s.inflight--
	if *err != nil {
		s.lastErr = (*err).Error()
	}
	s.mu.Unlock()
}

// Load fetches transactions matching the filter and replaces the local
// collection wholesale. On failure the previous collection is untouched.
// If several loads race, only the newest one's response is applied.
func (s *Store) Load(ctx context.Context, filter api.Filter) (err error) {
	s.mu.Lock()
	s.loadGen++
	gen := s.loadGen
	s.inflight++
	s.lastErr = ""
	s.mu.Unlock()
	defer s.finish(&err)

	fetched, listErr := s.svc.ListTransactions(ctx, filter)
	if listErr != nil {
		err = fmt.Errorf("failed to load transactions: %w", listErr)
		common.LogError(listErr, "load failed", common.Fields{"filter": filter.Query()})
		s.notifier.Notify(notify.Error, err.Error())
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.loadGen {
		common.LogDebug("discarding stale load response", common.Fields{"generation": gen, "latest": s.loadGen})
		return nil
	}
	s.transactions = dedupeByID(fetched)
	return nil
}

// Create submits a natural-language line to the backend. The parser may
// yield zero, one, or several transactions; all of them are prepended to
// the local collection. The returned slice is the created transactions in
// server order.
func (s *Store) Create(ctx context.Context, line string) (created []model.Transaction, err error) {
	if strings.TrimSpace(line) == "" {
		s.notifier.Notify(notify.Error, ErrEmptyLine.Error())
		return nil, ErrEmptyLine
	}

	s.begin()
	defer s.finish(&err)

	created, createErr := s.svc.CreateTransactions(ctx, line)
	if createErr != nil {
		err = fmt.Errorf("failed to create transaction: %w", createErr)
		s.notifier.Notify(notify.Error, err.Error())
		return nil, err
	}

	s.mu.Lock()
	s.transactions = dedupeByID(append(append([]model.Transaction{}, created...), s.transactions...))
	s.mu.Unlock()

	s.notifier.Notify(notify.Success, addedMessage(len(created)))
	return created, nil
}

// Update sends a partial patch for the transaction with the given id and,
// once the server confirms it, merges the patch into the matching local
// entry. An id absent from the collection makes the merge a no-op, not an
// error. Out-of-order responses for the same id are discarded and emit
// no success notification.
func (s *Store) Update(ctx context.Context, id int64, patch model.TransactionPatch) error {
	return s.update(ctx, id, patch, "Transaction updated")
}

// Confirm marks the transaction as reviewed.
func (s *Store) Confirm(ctx context.Context, id int64) error {
	return s.update(ctx, id, model.ConfirmPatch(), "Transaction confirmed")
}

func (s *Store) update(ctx context.Context, id int64, patch model.TransactionPatch, successMsg string) (err error) {
	s.mu.Lock()
	s.seq[id]++
	seq := s.seq[id]
	s.inflight++
	s.lastErr = ""
	s.mu.Unlock()
	defer s.finish(&err)

	if updateErr := s.svc.UpdateTransaction(ctx, id, patch); updateErr != nil {
		err = fmt.Errorf("failed to update transaction: %w", updateErr)
		common.LogError(updateErr, "update failed", common.Fields{"id": id})
		s.notifier.Notify(notify.Error, err.Error())
		return err
	}

	s.mu.Lock()
	stale := seq <= s.applied[id]
	if !stale {
		s.applied[id] = seq
		for i := range s.transactions {
			if s.transactions[i].ID == id {
				patch.Apply(&s.transactions[i])
				break
			}
		}
	}
	s.mu.Unlock()

	if stale {
		common.LogDebug("discarding stale update response", common.Fields{"id": id, "seq": seq})
		return nil
	}
	s.notifier.Notify(notify.Success, successMsg)
	return nil
}

// Delete removes the transaction with the given id. Removal is never
// optimistic: the local entry goes away only after the server confirms,
// so a failed delete leaves the collection exactly as it was. Deleting an
// id that is already absent is a no-op.
func (s *Store) Delete(ctx context.Context, id int64) (err error) {
	s.mu.Lock()
	s.seq[id]++
	seq := s.seq[id]
	s.inflight++
	s.lastErr = ""
	s.mu.Unlock()
	defer s.finish(&err)

	if deleteErr := s.svc.DeleteTransaction(ctx, id); deleteErr != nil {
		err = fmt.Errorf("failed to delete transaction: %w", deleteErr)
		common.LogError(deleteErr, "delete failed", common.Fields{"id": id})
		s.notifier.Notify(notify.Error, err.Error())
		return err
	}

	s.mu.Lock()
	stale := seq <= s.applied[id]
	if !stale {
		s.applied[id] = seq
		kept := s.transactions[:0]
		for _, txn := range s.transactions {
			if txn.ID != id {
				kept = append(kept, txn)
			}
		}
		s.transactions = kept
	}
	s.mu.Unlock()

	if stale {
		common.LogDebug("discarding stale delete response", common.Fields{"id": id, "seq": seq})
		return nil
	}
	s.notifier.Notify(notify.Success, "Transaction deleted")
	return nil
}

// addedMessage pluralizes the create notification by count.
func addedMessage(count int) string {
	if count == 1 {
		return "Added 1 transaction"
	}
	return fmt.Sprintf("Added %d transactions", count)
}

// dedupeByID drops entries whose id was already seen, keeping the first
// occurrence. The collection never holds two entries with the same id.
func dedupeByID(transactions []model.Transaction) []model.Transaction {
	seen := make(map[int64]struct{}, len(transactions))
	deduped := transactions[:0]
	for _, txn := range transactions {
		if _, dup := seen[txn.ID]; dup {
			continue
		}
		seen[txn.ID] = struct{}{}
		deduped = append(deduped, txn)
	}
	return deduped
}
