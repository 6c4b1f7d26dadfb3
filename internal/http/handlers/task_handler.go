package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"todo-list/internal/domain"
	"todo-list/internal/http/dto"
	"todo-list/internal/service"
	"todo-list/internal/store"
)

type TaskService interface {
	AddTask(title string, priority any, added string) (service.TaskView, int, error)
	RemoveTask(title string) (bool, error)
	ListTasks(filter string) ([]store.Entry, error)
	GetTask(title string) (service.TaskView, error)
	SetPriority(title string, priority any) (service.TaskView, error)
	Priorities() []domain.Priority
}

type TaskHandler struct {
	taskService TaskService
	log         zerolog.Logger
}

func New(taskService TaskService, log zerolog.Logger) *TaskHandler {
	return &TaskHandler{taskService: taskService, log: log}
}

// POST /tasks
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())

		return
	}

	task, count, err := h.taskService.AddTask(req.Title, req.Priority, req.Added)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.CreateTaskResponse{
		Task:  toResponse(task),
		Count: count,
	})
}

// GET /tasks?priority=N
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.taskService.ListTasks(r.URL.Query().Get("priority"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	response := make([]dto.TaskEntry, 0, len(entries))
	for _, e := range entries {
		response = append(response, dto.TaskEntry{e.Added, e.Title, int(e.Priority)})
	}

	writeJSON(w, http.StatusOK, response)
}

// GET /tasks/{title}
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	task, err := h.taskService.GetTask(r.PathValue("title"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(task))
}

// DELETE /tasks/{title}
func (h *TaskHandler) Remove(w http.ResponseWriter, r *http.Request) {
	removed, err := h.taskService.RemoveTask(r.PathValue("title"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.RemoveTaskResponse{Removed: removed})
}

// PUT /tasks/{title}/priority
func (h *TaskHandler) SetPriority(w http.ResponseWriter, r *http.Request) {
	var req dto.SetPriorityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())

		return
	}

	task, err := h.taskService.SetPriority(r.PathValue("title"), req.Priority)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(task))
}

// GET /priorities
func (h *TaskHandler) Priorities(w http.ResponseWriter, r *http.Request) {
	levels := h.taskService.Priorities()

	response := make([]dto.PriorityResponse, 0, len(levels))
	for _, p := range levels {
		response = append(response, dto.PriorityResponse{Name: p.String(), Value: int(p)})
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *TaskHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toResponse(task service.TaskView) dto.TaskResponse {
	return dto.TaskResponse{
		Title:    task.Title,
		Priority: int(task.Priority),
		Added:    task.Added,
	}
}
