package bill

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
	Bills() []Bill
	AddBill(ctx context.Context, bill Bill) Bill
	UpdateBill(ctx context.Context, id int, patch Patch) (Bill, bool)
	DeleteBill(ctx context.Context, id int) bool
}

type BillDTO struct {
	ID        int              `json:"id"`
	Name      string           `json:"name" validate:"required"`
	Amount    *decimal.Decimal `json:"amount" validate:"required"`
	DueDate   string           `json:"dueDate" validate:"required"`
	Category  string           `json:"category" validate:"required"`
	IsAutoPay bool             `json:"isAutoPay"`
	Status    Status           `json:"status" validate:"required,oneof=paid pending overdue"`
}

type PatchDTO struct {
	Name      *string          `json:"name,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	DueDate   *string          `json:"dueDate,omitempty"`
	Category  *string          `json:"category,omitempty"`
	IsAutoPay *bool            `json:"isAutoPay,omitempty"`
	Status    *Status          `json:"status,omitempty" validate:"omitempty,oneof=paid pending overdue"`
}

type Handler struct {
	service  Service
	location *time.Location
}

func NewHandler(service Service, location *time.Location) *Handler {
	return &Handler{service: service, location: location}
}

func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	bills := handler.service.Bills()
	billsDTO := make([]BillDTO, 0, len(bills))
	for _, bill := range bills {
		billsDTO = append(billsDTO, BillToDTO(bill))
	}
	rest.WriteJSON(w, http.StatusOK, billsDTO)
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new bill")
	var billDTO BillDTO
	if err := rest.DecodeBody(r, &billDTO); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid bill", err.Error())
		return
	}
	bill, err := DTOToBill(billDTO, handler.location)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid bill", err.Error())
		return
	}

	created := handler.service.AddBill(r.Context(), bill)
	rest.WriteJSON(w, http.StatusCreated, BillToDTO(created))
}

func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid bill id", err.Error())
		return
	}
	var patchDTO PatchDTO
	if err := rest.DecodeBody(r, &patchDTO); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid bill patch", err.Error())
		return
	}
	patch, err := DTOToPatch(patchDTO, handler.location)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid bill patch", err.Error())
		return
	}

	updated, ok := handler.service.UpdateBill(r.Context(), id, patch)
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Bill not found", fmt.Sprintf("no bill with id %d", id))
		return
	}
	rest.WriteJSON(w, http.StatusOK, BillToDTO(updated))
}

func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid bill id", err.Error())
		return
	}
	if !handler.service.DeleteBill(r.Context(), id) {
		rest.WriteError(w, http.StatusNotFound, "Bill not found", fmt.Sprintf("no bill with id %d", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, Categories)
}

func BillToDTO(bill Bill) BillDTO {
	amount := bill.Amount
	return BillDTO{
		ID:        bill.ID,
		Name:      bill.Name,
		Amount:    &amount,
		DueDate:   utils.FormatDate(bill.DueDate),
		Category:  bill.Category,
		IsAutoPay: bill.IsAutoPay,
		Status:    bill.Status,
	}
}

func DTOToBill(billDTO BillDTO, location *time.Location) (Bill, error) {
	dueDate, err := utils.ParseDate(billDTO.DueDate, location)
	if err != nil {
		return Bill{}, fmt.Errorf("dueDate: %w", err)
	}
	var amount decimal.Decimal
	if billDTO.Amount != nil {
		amount = *billDTO.Amount
	}
	return Bill{
		Name:      billDTO.Name,
		Amount:    amount,
		DueDate:   dueDate,
		Category:  billDTO.Category,
		IsAutoPay: billDTO.IsAutoPay,
		Status:    billDTO.Status,
	}, nil
}

func DTOToPatch(patchDTO PatchDTO, location *time.Location) (Patch, error) {
	patch := Patch{
		Name:      patchDTO.Name,
		Amount:    patchDTO.Amount,
		Category:  patchDTO.Category,
		IsAutoPay: patchDTO.IsAutoPay,
		Status:    patchDTO.Status,
	}
	if patchDTO.DueDate != nil {
		dueDate, err := utils.ParseDate(*patchDTO.DueDate, location)
		if err != nil {
			return Patch{}, fmt.Errorf("dueDate: %w", err)
		}
		patch.DueDate = &dueDate
	}
	return patch, nil
}
