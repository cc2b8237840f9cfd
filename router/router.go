package router

import (
	"net/http"

	"github.com/dipankar049/task-tracker-lite/handlers"
	"github.com/dipankar049/task-tracker-lite/middleware"

	"github.com/gorilla/mux"
)

// New wires the REST surface. Everything except signup and login sits behind
// the bearer-token middleware.
func New(authHandler *handlers.AuthHandler, projectHandler *handlers.ProjectHandler, taskHandler *handlers.TaskHandler) http.Handler {
	r := mux.NewRouter()

	auth := r.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/signup", authHandler.Signup).Methods(http.MethodPost)
	auth.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	auth.Handle("/me", middleware.JWTAuthMiddleware(http.HandlerFunc(authHandler.Me))).Methods(http.MethodGet)

	projects := r.PathPrefix("/api/projects").Subrouter()
	projects.Use(middleware.JWTAuthMiddleware)
	projects.HandleFunc("", projectHandler.CreateProject).Methods(http.MethodPost)
	projects.HandleFunc("", projectHandler.GetProjects).Methods(http.MethodGet)
	projects.HandleFunc("/{id}", projectHandler.GetProjectByID).Methods(http.MethodGet)
	projects.HandleFunc("/{id}", projectHandler.DeleteProject).Methods(http.MethodDelete)

	tasks := r.PathPrefix("/api/tasks").Subrouter()
	tasks.Use(middleware.JWTAuthMiddleware)
	tasks.HandleFunc("", taskHandler.CreateTask).Methods(http.MethodPost)
	tasks.HandleFunc("/{projectId}", taskHandler.GetTasksByProject).Methods(http.MethodGet)
	tasks.HandleFunc("/{id}", taskHandler.UpdateTask).Methods(http.MethodPut)
	tasks.HandleFunc("/{id}", taskHandler.DeleteTask).Methods(http.MethodDelete)

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
