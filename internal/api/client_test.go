package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallyhq/tally/internal/model"
)

func TestClient_ListTransactions(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/transactions", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("confirm"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [
			{"id": 1, "description": "coffee", "amount": 4.5, "currency": "USD", "category": "Dining", "transaction_date": "2024-03-10", "confirm": false},
			{"id": 2, "description": "taxi", "amount": 18, "currency": "USD", "category": "Transport", "transaction_date": "2024-03-11", "confirm": false}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api", nil)

	transactions, err := client.ListTransactions(ctx, UnconfirmedOnly())
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, int64(1), transactions[0].ID)
	assert.Equal(t, "coffee", transactions[0].Description)
	assert.True(t, decimal.NewFromFloat(4.5).Equal(transactions[0].Amount))
	assert.Equal(t, "2024-03-11", transactions[1].Date.String())
}

func TestClient_ListTransactions_NoFilterSendsNoQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery, "unfiltered list must not send filter params")
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api", nil)
	_, err := client.ListTransactions(context.Background(), Filter{})
	require.NoError(t, err)
}

func TestClient_ListTransactions_InvalidFilterNeverSent(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requested = true
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api", nil)
	start := model.NewDate(2024, time.March, 31)
	end := model.NewDate(2024, time.March, 1)
	_, err := client.ListTransactions(context.Background(), Filter{StartDate: &start, EndDate: &end})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.False(t, requested, "invalid filters must be rejected before the request")
}

func TestClient_GetTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/transactions/7", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":
			{"id": 7, "description": "lunch", "amount": 12, "currency": "USD", "category": "Dining", "transaction_date": "2024-03-12", "confirm": true}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api", nil)

	txn, err := client.GetTransaction(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), txn.ID)
	assert.Equal(t, "lunch", txn.Description)
	assert.True(t, txn.Confirm)
	assert.Equal(t, "2024-03-12", txn.Date.String())
}

func TestClient_GetTransaction_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "transaction not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api", nil)

	txn, err := client.GetTransaction(context.Background(), 999)
	require.Error(t, err)
	assert.Nil(t, txn)
	assert.True(t, IsNotFound(err))

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "transaction not found", httpErr.Message)
}

func TestClient_CreateTransactions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/transactions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message": "created", "data": [
			{"id": 10, "description": "groceries", "amount": 52.30, "currency": "USD", "category": "Groceries", "transaction_date": "2024-03-12", "confirm": false}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api", nil)

	created, err := client.CreateTransactions(context.Background(), "spent $52.30 on groceries")
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, int64(10), created[0].ID)
}

func TestClient_UpdateTransaction_VoidResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/transactions/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api", nil)
	err := client.UpdateTransaction(context.Background(), 7, model.ConfirmPatch())
	assert.NoError(t, err)
}

func TestClient_DeleteTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/transactions/3", r.URL.Path)
		_, _ = w.Write([]byte(`{"data": null, "message": "deleted"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api", nil)
	assert.NoError(t, client.DeleteTransaction(context.Background(), 3))
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		check  func(t *testing.T, err error)
		name   string
		body   string
		status int
	}{
		{
			name:   "envelope error message is surfaced",
			status: http.StatusBadRequest,
			body:   `{"error": "could not parse transaction line"}`,
			check: func(t *testing.T, err error) {
				var httpErr *HTTPError
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, http.StatusBadRequest, httpErr.Status)
				assert.Equal(t, "could not parse transaction line", httpErr.Message)
			},
		},
		{
			name:   "unparsable error body falls back to generic message",
			status: http.StatusInternalServerError,
			body:   `<html>Internal Server Error</html>`,
			check: func(t *testing.T, err error) {
				var httpErr *HTTPError
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, "HTTP 500", httpErr.Error())
			},
		},
		{
			name:   "envelope without error field falls back to generic message",
			status: http.StatusNotFound,
			body:   `{"data": null}`,
			check: func(t *testing.T, err error) {
				assert.True(t, IsNotFound(err))
				assert.EqualError(t, err, "HTTP 404")
			},
		},
		{
			name:   "2xx with garbage body is a decode error",
			status: http.StatusOK,
			body:   `not json at all`,
			check: func(t *testing.T, err error) {
				var decodeErr *DecodeError
				assert.ErrorAs(t, err, &decodeErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL+"/api", nil)
			_, err := client.ListTransactions(context.Background(), Filter{})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(server.URL+"/api", nil)
	_, err := client.ListTransactions(context.Background(), Filter{})

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.NotNil(t, errors.Unwrap(netErr))
}

func TestClient_Reports(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/reports/top-expense-categories":
			assert.Equal(t, "2024-03-01", r.URL.Query().Get("start_date"))
			_, _ = w.Write([]byte(`{"data": [{"category": "Dining", "total_spent": 120.50}]}`))
		case "/api/reports/daily-spending":
			_, _ = w.Write([]byte(`{"data": [{"transaction_date": "2024-03-01", "total_spent": 42}]}`))
		case "/api/dashboard/stats":
			_, _ = w.Write([]byte(`{"data": {"total_expenses": 310.75, "transaction_count": 12, "category_count": 4}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	ctx := context.Background()
	client := NewClient(server.URL+"/api", nil)

	start := model.NewDate(2024, time.March, 1)
	end := model.NewDate(2024, time.March, 31)

	categories, err := client.TopExpenseCategories(ctx, &start, &end)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Dining", categories[0].Category)

	daily, err := client.DailySpending(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, "2024-03-01", daily[0].Date.String())

	stats, err := client.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, stats.TransactionCount)
	assert.True(t, decimal.NewFromFloat(310.75).Equal(stats.TotalExpenses))
}

func TestClient_Settings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/settings", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"data": {"currency": "EUR", "timezone": "Europe/Berlin"}}`))
		case http.MethodPut:
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer server.Close()

	ctx := context.Background()
	client := NewClient(server.URL+"/api", nil)

	settings, err := client.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "EUR", settings.Currency)

	err = client.UpdateSettings(ctx, model.Settings{Currency: "USD", Timezone: "America/New_York"})
	assert.NoError(t, err)
}
