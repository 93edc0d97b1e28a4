package document

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
	Documents() []Document
	AddDocument(ctx context.Context, document Document) Document
	UpdateDocument(ctx context.Context, id int, patch Patch) (Document, bool)
	DeleteDocument(ctx context.Context, id int) bool
}

type DocumentDTO struct {
	ID         int      `json:"id"`
	Title      string   `json:"title" validate:"required"`
	Category   string   `json:"category" validate:"required"`
	UploadDate string   `json:"uploadDate" validate:"required"`
	URL        string   `json:"url" validate:"required"`
	Tags       []string `json:"tags"`
}

type PatchDTO struct {
	Title      *string   `json:"title,omitempty"`
	Category   *string   `json:"category,omitempty"`
	UploadDate *string   `json:"uploadDate,omitempty"`
	URL        *string   `json:"url,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
}

type Handler struct {
	service  Service
	location *time.Location
}

func NewHandler(service Service, location *time.Location) *Handler {
	return &Handler{service: service, location: location}
}

func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	documents := handler.service.Documents()
	documentsDTO := make([]DocumentDTO, 0, len(documents))
	for _, document := range documents {
		documentsDTO = append(documentsDTO, DocumentToDTO(document))
	}
	rest.WriteJSON(w, http.StatusOK, documentsDTO)
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new document")
	var documentDTO DocumentDTO
	if err := rest.DecodeBody(r, &documentDTO); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid document", err.Error())
		return
	}
	uploadDate, err := utils.ParseDate(documentDTO.UploadDate, handler.location)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid document", fmt.Sprintf("uploadDate: %v", err))
		return
	}

	created := handler.service.AddDocument(r.Context(), Document{
		Title:      documentDTO.Title,
		Category:   documentDTO.Category,
		UploadDate: uploadDate,
		URL:        documentDTO.URL,
		Tags:       normalizeTags(documentDTO.Tags),
	})
	rest.WriteJSON(w, http.StatusCreated, DocumentToDTO(created))
}

func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid document id", err.Error())
		return
	}
	var patchDTO PatchDTO
	if err := rest.DecodeBody(r, &patchDTO); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid document patch", err.Error())
		return
	}
	patch := Patch{
		Title:    patchDTO.Title,
		Category: patchDTO.Category,
		URL:      patchDTO.URL,
	}
	if patchDTO.Tags != nil {
		tags := normalizeTags(*patchDTO.Tags)
		patch.Tags = &tags
	}
	if patchDTO.UploadDate != nil {
		uploadDate, err := utils.ParseDate(*patchDTO.UploadDate, handler.location)
		if err != nil {
			rest.WriteError(w, http.StatusBadRequest, "Invalid document patch", fmt.Sprintf("uploadDate: %v", err))
			return
		}
		patch.UploadDate = &uploadDate
	}

	updated, ok := handler.service.UpdateDocument(r.Context(), id, patch)
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Document not found", fmt.Sprintf("no document with id %d", id))
		return
	}
	rest.WriteJSON(w, http.StatusOK, DocumentToDTO(updated))
}

func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid document id", err.Error())
		return
	}
	if !handler.service.DeleteDocument(r.Context(), id) {
		rest.WriteError(w, http.StatusNotFound, "Document not found", fmt.Sprintf("no document with id %d", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func DocumentToDTO(document Document) DocumentDTO {
	return DocumentDTO{
		ID:         document.ID,
		Title:      document.Title,
		Category:   document.Category,
		UploadDate: utils.FormatDate(document.UploadDate),
		URL:        document.URL,
		Tags:       normalizeTags(document.Tags),
	}
}

// normalizeTags copies tags, dropping repeated values while keeping first-seen order.
// The result is never nil.
func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if !slices.Contains(normalized, tag) {
			normalized = append(normalized, tag)
		}
	}
	return normalized
}
