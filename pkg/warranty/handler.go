package warranty

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/homedash/homedash/internal/rest"
	"github.com/homedash/homedash/internal/utils"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Warranties() []Warranty
	AddWarranty(ctx context.Context, warranty Warranty) Warranty
	UpdateWarranty(ctx context.Context, id int, patch Patch) (Warranty, bool)
	DeleteWarranty(ctx context.Context, id int) bool
}

type WarrantyDTO struct {
	ID           int      `json:"id"`
	Item         string   `json:"item" validate:"required"`
	Manufacturer string   `json:"manufacturer" validate:"required"`
	PurchaseDate string   `json:"purchaseDate" validate:"required"`
	ExpiryDate   string   `json:"expiryDate" validate:"required"`
	Coverage     string   `json:"coverage" validate:"required"`
	Documents    []string `json:"documents"`
	Status       Status   `json:"status" validate:"required,oneof=active expired"`
}

type PatchDTO struct {
	Item         *string   `json:"item,omitempty"`
	Manufacturer *string   `json:"manufacturer,omitempty"`
	PurchaseDate *string   `json:"purchaseDate,omitempty"`
	ExpiryDate   *string   `json:"expiryDate,omitempty"`
	Coverage     *string   `json:"coverage,omitempty"`
	Documents    *[]string `json:"documents,omitempty"`
	Status       *Status   `json:"status,omitempty" validate:"omitempty,oneof=active expired"`
}

type Handler struct {
	service  Service
	location *time.Location
}

func NewHandler(service Service, location *time.Location) *Handler {
	return &Handler{service: service, location: location}
}

func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	warranties := handler.service.Warranties()
	warrantiesDTO := make([]WarrantyDTO, 0, len(warranties))
	for _, warranty := range warranties {
		warrantiesDTO = append(warrantiesDTO, WarrantyToDTO(warranty))
	}
	rest.WriteJSON(w, http.StatusOK, warrantiesDTO)
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new warranty")
	var warrantyDTO WarrantyDTO
	if err := rest.DecodeBody(r, &warrantyDTO); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid warranty", err.Error())
		return
	}
	warranty, err := DTOToWarranty(warrantyDTO, handler.location)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid warranty", err.Error())
		return
	}

	created := handler.service.AddWarranty(r.Context(), warranty)
	rest.WriteJSON(w, http.StatusCreated, WarrantyToDTO(created))
}

func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid warranty id", err.Error())
		return
	}
	var patchDTO PatchDTO
	if err := rest.DecodeBody(r, &patchDTO); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid warranty patch", err.Error())
		return
	}
	patch, err := DTOToPatch(patchDTO, handler.location)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid warranty patch", err.Error())
		return
	}

	updated, ok := handler.service.UpdateWarranty(r.Context(), id, patch)
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Warranty not found", fmt.Sprintf("no warranty with id %d", id))
		return
	}
	rest.WriteJSON(w, http.StatusOK, WarrantyToDTO(updated))
}

func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid warranty id", err.Error())
		return
	}
	if !handler.service.DeleteWarranty(r.Context(), id) {
		rest.WriteError(w, http.StatusNotFound, "Warranty not found", fmt.Sprintf("no warranty with id %d", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func WarrantyToDTO(warranty Warranty) WarrantyDTO {
	return WarrantyDTO{
		ID:           warranty.ID,
		Item:         warranty.Item,
		Manufacturer: warranty.Manufacturer,
		PurchaseDate: utils.FormatDate(warranty.PurchaseDate),
		ExpiryDate:   utils.FormatDate(warranty.ExpiryDate),
		Coverage:     warranty.Coverage,
		Documents:    cloneStrings(warranty.Documents),
		Status:       warranty.Status,
	}
}

func DTOToWarranty(warrantyDTO WarrantyDTO, location *time.Location) (Warranty, error) {
	purchaseDate, err := utils.ParseDate(warrantyDTO.PurchaseDate, location)
	if err != nil {
		return Warranty{}, fmt.Errorf("purchaseDate: %w", err)
	}
	expiryDate, err := utils.ParseDate(warrantyDTO.ExpiryDate, location)
	if err != nil {
		return Warranty{}, fmt.Errorf("expiryDate: %w", err)
	}
	return Warranty{
		Item:         warrantyDTO.Item,
		Manufacturer: warrantyDTO.Manufacturer,
		PurchaseDate: purchaseDate,
		ExpiryDate:   expiryDate,
		Coverage:     warrantyDTO.Coverage,
		Documents:    cloneStrings(warrantyDTO.Documents),
		Status:       warrantyDTO.Status,
	}, nil
}

func DTOToPatch(patchDTO PatchDTO, location *time.Location) (Patch, error) {
	patch := Patch{
		Item:         patchDTO.Item,
		Manufacturer: patchDTO.Manufacturer,
		Coverage:     patchDTO.Coverage,
		Documents:    patchDTO.Documents,
		Status:       patchDTO.Status,
	}
	if patchDTO.PurchaseDate != nil {
		purchaseDate, err := utils.ParseDate(*patchDTO.PurchaseDate, location)
		if err != nil {
			return Patch{}, fmt.Errorf("purchaseDate: %w", err)
		}
		patch.PurchaseDate = &purchaseDate
	}
	if patchDTO.ExpiryDate != nil {
		expiryDate, err := utils.ParseDate(*patchDTO.ExpiryDate, location)
		if err != nil {
			return Patch{}, fmt.Errorf("expiryDate: %w", err)
		}
		patch.ExpiryDate = &expiryDate
	}
	return patch, nil
}

// cloneStrings copies values for the wire, where a missing list is an empty one.
func cloneStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return slices.Clone(values)
}
