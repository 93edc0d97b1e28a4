package expense

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/homedash/homedash/internal/rest"
	"github.com/homedash/homedash/internal/utils"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Expenses() []Expense
	AddExpense(ctx context.Context, expense Expense) Expense
}

type ExpenseDTO struct {
	ID       int              `json:"id"`
	Title    string           `json:"title" validate:"required"`
	Amount   *decimal.Decimal `json:"amount" validate:"required"`
	Date     string           `json:"date" validate:"required"`
	Category string           `json:"category" validate:"required"`
}

type Handler struct {
	service  Service
	location *time.Location
}

func NewHandler(service Service, location *time.Location) *Handler {
	return &Handler{service: service, location: location}
}

func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	expenses := handler.service.Expenses()
	expensesDTO := make([]ExpenseDTO, 0, len(expenses))
	for _, expense := range expenses {
		expensesDTO = append(expensesDTO, ExpenseToDTO(expense))
	}
	rest.WriteJSON(w, http.StatusOK, expensesDTO)
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Recording new expense")
	var expenseDTO ExpenseDTO
	if err := rest.DecodeBody(r, &expenseDTO); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid expense", err.Error())
		return
	}
	date, err := utils.ParseDate(expenseDTO.Date, handler.location)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid expense", fmt.Sprintf("date: %v", err))
		return
	}

	created := handler.service.AddExpense(r.Context(), Expense{
		Title:    expenseDTO.Title,
		Amount:   *expenseDTO.Amount,
		Date:     date,
		Category: expenseDTO.Category,
	})
	rest.WriteJSON(w, http.StatusCreated, ExpenseToDTO(created))
}

func ExpenseToDTO(expense Expense) ExpenseDTO {
	amount := expense.Amount
	return ExpenseDTO{
		ID:       expense.ID,
		Title:    expense.Title,
		Amount:   &amount,
		Date:     utils.FormatDate(expense.Date),
		Category: expense.Category,
	}
}
