package task

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T) (*stubService, *mux.Router) {
	t.Helper()
	service := &stubService{}
	service.AddTask(context.Background(), Task{Title: "HVAC Maintenance", Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), Type: TypeMaintenance, Status: StatusPending})
	service.AddTask(context.Background(), Task{Title: "Property Tax Due", Date: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), Type: TypeBill, Status: StatusPending})
	handler := NewHandler(service, time.UTC)

	r := mux.NewRouter()
	r.HandleFunc("/tasks", handler.List).Methods("GET")
	r.HandleFunc("/tasks", handler.Create).Methods("POST")
	r.HandleFunc("/tasks/{id}", handler.Update).Methods("PATCH")
	r.HandleFunc("/tasks/{id}", handler.Delete).Methods("DELETE")
	r.HandleFunc("/tasks/{id}/toggle", handler.ToggleStatus).Methods("PUT")
	return service, r
}

func TestHandler_Create(t *testing.T) {
	t.Run("should schedule a task", func(t *testing.T) {
		// given
		service, r := setupHandlerTest(t)
		body := `{"title":"Clean gutters","date":"2024-04-10","type":"maintenance","status":"pending"}`
		w := httptest.NewRecorder()

		// when
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(body)))

		// then
		assert.Equal(t, http.StatusCreated, w.Code)
		var created TaskDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
		assert.Equal(t, 3, created.ID)
		assert.Equal(t, "2024-04-10", created.Date)
		assert.Len(t, service.Tasks(), 3)
	})

	t.Run("should reject unknown task type", func(t *testing.T) {
		_, r := setupHandlerTest(t)
		body := `{"title":"Clean gutters","date":"2024-04-10","type":"chore","status":"pending"}`
		w := httptest.NewRecorder()

		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "type failed oneof")
	})
}

func TestHandler_ToggleStatus(t *testing.T) {
	t.Run("should complete and reopen a task", func(t *testing.T) {
		// given
		service, r := setupHandlerTest(t)

		// when
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/tasks/1/toggle", nil))

		// then
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, StatusCompleted, service.Tasks()[0].Status)

		// when
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/tasks/1/toggle", nil))

		// then
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, StatusPending, service.Tasks()[0].Status)
	})

	t.Run("should return 404 for unknown task", func(t *testing.T) {
		_, r := setupHandlerTest(t)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/tasks/9/toggle", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_UpdateAndDelete(t *testing.T) {
	t.Run("should rename task", func(t *testing.T) {
		service, r := setupHandlerTest(t)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/tasks/2", strings.NewReader(`{"title":"Pay property tax"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Pay property tax", service.Tasks()[1].Title)
		assert.Equal(t, TypeBill, service.Tasks()[1].Type)
	})

	t.Run("should delete task once", func(t *testing.T) {
		service, r := setupHandlerTest(t)

		first := httptest.NewRecorder()
		r.ServeHTTP(first, httptest.NewRequest(http.MethodDelete, "/tasks/1", nil))
		second := httptest.NewRecorder()
		r.ServeHTTP(second, httptest.NewRequest(http.MethodDelete, "/tasks/1", nil))

		assert.Equal(t, http.StatusNoContent, first.Code)
		assert.Equal(t, http.StatusNotFound, second.Code)
		assert.Len(t, service.Tasks(), 1)
	})
}
