// Package common provides shared utilities used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tallyhq/tally/internal/api"
)

// Common application errors.
var (
	// ErrMissingConfig indicates required configuration is absent.
	ErrMissingConfig = errors.New("missing configuration")
	// ErrInvalidConfig indicates configuration that cannot be used.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRetryable determines if an error should trigger a retry. Transport
// failures and server-side statuses are worth retrying; client errors and
// canceled contexts are not.
func IsRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return true
	}

	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status >= http.StatusInternalServerError ||
			httpErr.Status == http.StatusTooManyRequests
	}

	return false
}
