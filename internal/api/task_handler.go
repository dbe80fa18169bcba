package api

import (
	"net/http"

	"github.com/workshop-app/workshop-api/internal/api/shared"
	"github.com/workshop-app/workshop-api/internal/service"
)

// TaskHandler serves the owner-scoped task endpoints.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTask handles POST /api/v1/tasks/.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req TaskCreateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), user.ID, service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
		DueDate:     req.DueDate.Ptr(),
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// ListTasks handles GET /api/v1/tasks/.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListTasks(r.Context(), user.ID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTask handles GET /api/v1/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, err := getPathTaskID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	task, err := h.taskService.GetTask(r.Context(), user.ID, id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PUT /api/v1/tasks/{id}. Only fields present in the body
// are changed.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, err := getPathTaskID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req TaskUpdateRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), user.ID, id, patch)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /api/v1/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, err := getPathTaskID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), user.ID, id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondNoContent(w)
}
