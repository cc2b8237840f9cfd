package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dipankar049/task-tracker-lite/logging"
	"github.com/dipankar049/task-tracker-lite/middleware"
	"github.com/dipankar049/task-tracker-lite/services"

	"github.com/gorilla/mux"
)

type ProjectHandler struct {
	ProjectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{ProjectService: projectService}
}

type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	project, err := h.ProjectService.CreateProject(r.Context(), userID, req.Title, req.Description)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	projects, err := h.ProjectService.GetProjectsByOwner(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) GetProjectByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	projectID := mux.Vars(r)["id"]
	project, err := h.ProjectService.GetProjectByID(r.Context(), projectID, userID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	projectID := mux.Vars(r)["id"]
	if err := h.ProjectService.DeleteProject(r.Context(), projectID, userID); err != nil {
		respondError(w, err)
		return
	}

	logging.Logger.Infof("Event ID: PROJECT_DELETED, Description: Project %s deleted by user %s", projectID, userID)
	respondMessage(w, http.StatusOK, "Project and tasks deleted successfully")
}
