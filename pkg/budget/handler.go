package budget

import (
	"context"
	"fmt"
	"net/http"

	"github.com/homedash/homedash/internal/rest"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Budgets() []Budget
	AddBudget(ctx context.Context, budget Budget) Budget
	UpdateBudget(ctx context.Context, id int, patch Patch) (Budget, bool)
}

type BudgetDTO struct {
	ID        int              `json:"id"`
	Category  string           `json:"category" validate:"required"`
	Planned   *decimal.Decimal `json:"planned" validate:"required"`
	Actual    *decimal.Decimal `json:"actual" validate:"required"`
	Month     string           `json:"month" validate:"required,len=2"`
	Year      int              `json:"year" validate:"required"`
	Remaining *decimal.Decimal `json:"remaining,omitempty"`
}

type PatchDTO struct {
	Category *string          `json:"category,omitempty"`
	Planned  *decimal.Decimal `json:"planned,omitempty"`
	Actual   *decimal.Decimal `json:"actual,omitempty"`
	Month    *string          `json:"month,omitempty" validate:"omitempty,len=2"`
	Year     *int             `json:"year,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	budgets := handler.service.Budgets()
	budgetsDTO := make([]BudgetDTO, 0, len(budgets))
	for _, budget := range budgets {
		budgetsDTO = append(budgetsDTO, BudgetToDTO(budget))
	}
	rest.WriteJSON(w, http.StatusOK, budgetsDTO)
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new budget")
	var budgetDTO BudgetDTO
	if err := rest.DecodeBody(r, &budgetDTO); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid budget", err.Error())
		return
	}

	created := handler.service.AddBudget(r.Context(), DTOToBudget(budgetDTO))
	rest.WriteJSON(w, http.StatusCreated, BudgetToDTO(created))
}

func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid budget id", err.Error())
		return
	}
	var patchDTO PatchDTO
	if err := rest.DecodeBody(r, &patchDTO); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid budget patch", err.Error())
		return
	}

	updated, ok := handler.service.UpdateBudget(r.Context(), id, Patch{
		Category: patchDTO.Category,
		Planned:  patchDTO.Planned,
		Actual:   patchDTO.Actual,
		Month:    patchDTO.Month,
		Year:     patchDTO.Year,
	})
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Budget not found", fmt.Sprintf("no budget with id %d", id))
		return
	}
	rest.WriteJSON(w, http.StatusOK, BudgetToDTO(updated))
}

func BudgetToDTO(budget Budget) BudgetDTO {
	planned, actual, remaining := budget.Planned, budget.Actual, budget.Remaining()
	return BudgetDTO{
		ID:        budget.ID,
		Category:  budget.Category,
		Planned:   &planned,
		Actual:    &actual,
		Month:     budget.Month,
		Year:      budget.Year,
		Remaining: &remaining,
	}
}

func DTOToBudget(budgetDTO BudgetDTO) Budget {
	budget := Budget{
		Category: budgetDTO.Category,
		Month:    budgetDTO.Month,
		Year:     budgetDTO.Year,
	}
	if budgetDTO.Planned != nil {
		budget.Planned = *budgetDTO.Planned
	}
	if budgetDTO.Actual != nil {
		budget.Actual = *budgetDTO.Actual
	}
	return budget
}
