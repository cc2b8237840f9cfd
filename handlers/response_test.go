package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dipankar049/task-tracker-lite/models"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{models.ErrMissingFields, http.StatusBadRequest},
		{models.ErrEmailTaken, http.StatusBadRequest},
		{models.ErrProjectLimit, http.StatusBadRequest},
		{models.ErrInvalidStatus, http.StatusBadRequest},
		{models.ErrInvalidID, http.StatusBadRequest},
		{models.ErrInvalidCredentials, http.StatusUnauthorized},
		{models.ErrForbidden, http.StatusForbidden},
		{models.ErrUserNotFound, http.StatusNotFound},
		{models.ErrProjectNotFound, http.StatusNotFound},
		{models.ErrTaskNotFound, http.StatusNotFound},
		{errors.New("mongo: connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := statusForError(tc.err); got != tc.want {
			t.Errorf("statusForError(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestRespondError_WrappedSentinel(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, errors.Join(errors.New("context"), models.ErrForbidden))

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for wrapped sentinel, got %d", rec.Code)
	}
}

func TestRespondError_UnexpectedErrorIsGeneric(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, errors.New("dial tcp 10.0.0.5:27017: i/o timeout"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["message"] != "Server error" {
		t.Errorf("internal detail leaked to client: %q", body["message"])
	}
}
