package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dipankar049/task-tracker-lite/logging"
	"github.com/dipankar049/task-tracker-lite/models"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// statusForError maps service errors to HTTP status codes. Anything outside
// the known taxonomy is a server error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrMissingFields),
		errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, models.ErrProjectLimit),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrProjectNotFound),
		errors.Is(err, models.ErrTaskNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError reports a service error to the client. Unexpected failures
// are logged and reported generically so internal detail never leaks.
func respondError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logging.Logger.Errorf("Event ID: REQUEST_FAILED, Description: Unexpected error handling request: %v", err)
		respondMessage(w, status, "Server error")
		return
	}
	respondMessage(w, status, err.Error())
}
