package task

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/homedash/homedash/internal/rest"
	"github.com/homedash/homedash/internal/utils"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Tasks() []Task
	AddTask(ctx context.Context, task Task) Task
	UpdateTask(ctx context.Context, id int, patch Patch) (Task, bool)
	// ToggleTask flips the status of a task in a single step, so concurrent toggles never
	// read the same status.
	ToggleTask(ctx context.Context, id int) (Task, bool)
	DeleteTask(ctx context.Context, id int) bool
}

type TaskDTO struct {
	ID     int    `json:"id"`
	Title  string `json:"title" validate:"required"`
	Date   string `json:"date" validate:"required"`
	Type   Type   `json:"type" validate:"required,oneof=maintenance bill"`
	Status Status `json:"status" validate:"required,oneof=pending completed"`
}

type PatchDTO struct {
	Title  *string `json:"title,omitempty"`
	Date   *string `json:"date,omitempty"`
	Type   *Type   `json:"type,omitempty" validate:"omitempty,oneof=maintenance bill"`
	Status *Status `json:"status,omitempty" validate:"omitempty,oneof=pending completed"`
}

type Handler struct {
	service  Service
	location *time.Location
}

func NewHandler(service Service, location *time.Location) *Handler {
	return &Handler{service: service, location: location}
}

func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	tasks := handler.service.Tasks()
	tasksDTO := make([]TaskDTO, 0, len(tasks))
	for _, task := range tasks {
		tasksDTO = append(tasksDTO, TaskToDTO(task))
	}
	rest.WriteJSON(w, http.StatusOK, tasksDTO)
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Scheduling new task")
	var taskDTO TaskDTO
	if err := rest.DecodeBody(r, &taskDTO); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid task", err.Error())
		return
	}
	date, err := utils.ParseDate(taskDTO.Date, handler.location)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid task", fmt.Sprintf("date: %v", err))
		return
	}

	created := handler.service.AddTask(r.Context(), Task{
		Title:  taskDTO.Title,
		Date:   date,
		Type:   taskDTO.Type,
		Status: taskDTO.Status,
	})
	rest.WriteJSON(w, http.StatusCreated, TaskToDTO(created))
}

func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid task id", err.Error())
		return
	}
	var patchDTO PatchDTO
	if err := rest.DecodeBody(r, &patchDTO); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid task patch", err.Error())
		return
	}
	patch := Patch{Title: patchDTO.Title, Type: patchDTO.Type, Status: patchDTO.Status}
	if patchDTO.Date != nil {
		date, err := utils.ParseDate(*patchDTO.Date, handler.location)
		if err != nil {
			rest.WriteError(w, http.StatusBadRequest, "Invalid task patch", fmt.Sprintf("date: %v", err))
			return
		}
		patch.Date = &date
	}

	updated, ok := handler.service.UpdateTask(r.Context(), id, patch)
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Task not found", fmt.Sprintf("no task with id %d", id))
		return
	}
	rest.WriteJSON(w, http.StatusOK, TaskToDTO(updated))
}

// ToggleStatus flips the task between pending and completed.
func (handler *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid task id", err.Error())
		return
	}
	updated, found := handler.service.ToggleTask(r.Context(), id)
	if !found {
		rest.WriteError(w, http.StatusNotFound, "Task not found", fmt.Sprintf("no task with id %d", id))
		return
	}
	log.Debugf("Task %d is now %s", id, updated.Status)
	rest.WriteJSON(w, http.StatusOK, TaskToDTO(updated))
}

func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid task id", err.Error())
		return
	}
	if !handler.service.DeleteTask(r.Context(), id) {
		rest.WriteError(w, http.StatusNotFound, "Task not found", fmt.Sprintf("no task with id %d", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func TaskToDTO(task Task) TaskDTO {
	return TaskDTO{
		ID:     task.ID,
		Title:  task.Title,
		Date:   utils.FormatDate(task.Date),
		Type:   task.Type,
		Status: task.Status,
	}
}
