package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dipankar049/task-tracker-lite/models"

	"github.com/sony/gobreaker"
)

func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"_id":     "6571f1c8b2a4e9d0c3f7a001",
			"name":    req["name"],
			"email":   req["email"],
			"country": req["country"],
			"token":   "issued-token",
		})
	})

	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid email or password"})
	})

	mux.HandleFunc("/api/projects", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer issued-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid token"})
			return
		}
		switch r.Method {
		case http.MethodPost:
			var req map[string]string
			json.NewDecoder(r.Body).Decode(&req)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{"title": req["title"], "description": req["description"]})
		case http.MethodGet:
			json.NewEncoder(w).Encode([]models.Project{})
		}
	})

	return httptest.NewServer(mux)
}

func TestClient_SignupStoresTokenForLaterCalls(t *testing.T) {
	srv := fakeServer(t)
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Signup(context.Background(), "Ana", "ana@example.com", "hunter22!", "RS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token != "issued-token" {
		t.Fatalf("expected issued token, got %q", resp.Token)
	}
	if c.Token() != "issued-token" {
		t.Error("signup should remember the bearer token")
	}

	// The stored token must be attached to subsequent requests.
	project, err := c.CreateProject(context.Background(), "P1", "first project")
	if err != nil {
		t.Fatalf("authenticated call failed: %v", err)
	}
	if project.Title != "P1" {
		t.Errorf("expected created project back, got %+v", project)
	}
}

func TestClient_APIErrorCarriesServerMessage(t *testing.T) {
	srv := fakeServer(t)
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Login(context.Background(), "ana@example.com", "wrong", false)
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", apiErr.Status)
	}
	if apiErr.Message != "invalid email or password" {
		t.Errorf("expected server message, got %q", apiErr.Message)
	}
}

func TestClient_UnauthenticatedCallRejected(t *testing.T) {
	srv := fakeServer(t)
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListProjects(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 APIError, got %v", err)
	}
}

func TestClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // every request now fails at the transport

	c := New(url)
	for i := 0; i < 4; i++ {
		if _, err := c.ListProjects(context.Background()); err == nil {
			t.Fatal("expected transport error against a closed server")
		}
	}

	_, err := c.ListProjects(context.Background())
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected circuit breaker to be open, got %v", err)
	}
}
