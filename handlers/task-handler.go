package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dipankar049/task-tracker-lite/middleware"
	"github.com/dipankar049/task-tracker-lite/models"
	"github.com/dipankar049/task-tracker-lite/services"

	"github.com/gorilla/mux"
)

type TaskHandler struct {
	TaskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{TaskService: taskService}
}

type CreateTaskRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	ProjectID   string            `json:"projectId"`
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	task, err := h.TaskService.CreateTask(r.Context(), userID, req.ProjectID, req.Title, req.Description, req.Status)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) GetTasksByProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	projectID := mux.Vars(r)["projectId"]
	tasks, err := h.TaskService.GetTasksByProject(r.Context(), userID, projectID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var upd models.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	taskID := mux.Vars(r)["id"]
	task, err := h.TaskService.UpdateTask(r.Context(), userID, taskID, upd)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	taskID := mux.Vars(r)["id"]
	if err := h.TaskService.DeleteTask(r.Context(), userID, taskID); err != nil {
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, "Task deleted successfully")
}
