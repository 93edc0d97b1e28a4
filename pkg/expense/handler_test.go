package expense

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	expenses []Expense
}

func (s *stubService) Expenses() []Expense {
	return append([]Expense{}, s.expenses...)
}

func (s *stubService) AddExpense(ctx context.Context, expense Expense) Expense {
	expense.ID = len(s.expenses) + 1
	s.expenses = append(s.expenses, expense)
	return expense
}

func TestHandler_Create(t *testing.T) {
	t.Run("should record expense", func(t *testing.T) {
		// given
		service := &stubService{}
		handler := NewHandler(service, time.UTC)
		body := `{"title":"Water Bill","amount":85.50,"date":"2024-03-01","category":"Utilities"}`
		w := httptest.NewRecorder()

		// when
		handler.Create(w, httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(body)))

		// then
		assert.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, service.expenses, 1)
		assert.True(t, decimal.RequireFromString("85.5").Equal(service.expenses[0].Amount))
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), service.expenses[0].Date)
	})

	t.Run("should reject expense without amount", func(t *testing.T) {
		service := &stubService{}
		handler := NewHandler(service, time.UTC)
		w := httptest.NewRecorder()

		handler.Create(w, httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(`{"title":"Water Bill","date":"2024-03-01","category":"Utilities"}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, service.expenses)
	})
}

func TestHandler_List(t *testing.T) {
	service := &stubService{}
	service.AddExpense(context.Background(), Expense{Title: "Electricity", Amount: decimal.RequireFromString("145.75"), Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Category: "Utilities"})
	handler := NewHandler(service, time.UTC)
	w := httptest.NewRecorder()

	handler.List(w, httptest.NewRequest(http.MethodGet, "/expenses", nil))

	var expenses []ExpenseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&expenses))
	require.Len(t, expenses, 1)
	assert.Equal(t, "Electricity", expenses[0].Title)
	assert.Equal(t, "2024-03-05", expenses[0].Date)
}
