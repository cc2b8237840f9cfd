package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dipankar049/task-tracker-lite/logging"
	"github.com/dipankar049/task-tracker-lite/middleware"
	"github.com/dipankar049/task-tracker-lite/models"
	"github.com/dipankar049/task-tracker-lite/services"
	"github.com/dipankar049/task-tracker-lite/utils"
)

type AuthHandler struct {
	UserService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{UserService: userService}
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Country  string `json:"country"`
}

type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// AuthResponse is the flat user-plus-token shape the client expects.
type AuthResponse struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Country string `json:"country"`
	Token   string `json:"token"`
}

func authResponse(user *models.User, token string) AuthResponse {
	return AuthResponse{
		ID:      user.ID.Hex(),
		Name:    user.Name,
		Email:   user.Email,
		Country: user.Country,
		Token:   token,
	}
}

// Signup registers a new user and signs them in immediately.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Name, req.Email, req.Password, req.Country)
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex(), false)
	if err != nil {
		respondError(w, err)
		return
	}

	logging.Logger.Infof("Event ID: USER_REGISTERED, Description: New user registered: %s", user.Email)
	respondJSON(w, http.StatusCreated, authResponse(user, token))
}

// Login authenticates the user and issues a bearer token, long-lived when
// rememberMe is set.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	user, err := h.UserService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex(), req.RememberMe)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, authResponse(user, token))
}

// Me returns the authenticated user's profile, without the password hash.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	user, err := h.UserService.GetByID(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]*models.User{"user": user})
}
