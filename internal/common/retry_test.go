package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallyhq/tally/internal/api"
)

func TestWithRetry(t *testing.T) {
	ctx := context.Background()
	fastOpts := RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
	}

	t.Run("succeeds without retrying", func(t *testing.T) {
		calls := 0
		err := WithRetry(ctx, func() error {
			calls++
			return nil
		}, fastOpts)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries transient failures until success", func(t *testing.T) {
		calls := 0
		err := WithRetry(ctx, func() error {
			calls++
			if calls < 3 {
				return &api.NetworkError{Err: errors.New("connection reset")}
			}
			return nil
		}, fastOpts)
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		err := WithRetry(ctx, func() error {
			calls++
			return &api.HTTPError{Status: 503, Message: "HTTP 503"}
		}, fastOpts)
		require.ErrorIs(t, err, ErrMaxRetries)
		assert.Equal(t, 3, calls)
	})

	t.Run("client errors fail immediately", func(t *testing.T) {
		calls := 0
		wrapped := &api.HTTPError{Status: 400, Message: "bad line"}
		err := WithRetry(ctx, func() error {
			calls++
			return wrapped
		}, fastOpts)
		require.Error(t, err)
		assert.Equal(t, 1, calls)
		var httpErr *api.HTTPError
		assert.ErrorAs(t, err, &httpErr)
	})
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&api.NetworkError{Err: errors.New("timeout")}))
	assert.True(t, IsRetryable(&api.HTTPError{Status: 500}))
	assert.True(t, IsRetryable(&api.HTTPError{Status: 429}))
	assert.False(t, IsRetryable(&api.HTTPError{Status: 404}))
	assert.False(t, IsRetryable(&api.HTTPError{Status: 400}))
	assert.False(t, IsRetryable(context.Canceled))
	assert.False(t, IsRetryable(errors.New("something else")))
}
