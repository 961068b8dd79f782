package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/estatehub/api/internal/auth"
)

// AuthService verifies owner credentials and issues tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler serves the owner login endpoint.
type AuthHandler struct {
	svc AuthService
	log *slog.Logger
}

// NewAuthHandler creates the login endpoint handler.
func NewAuthHandler(svc AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, map[string]string{"token": token})
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid credentials.")
	case errors.Is(err, auth.ErrNotConfigured):
		respondError(w, http.StatusInternalServerError, "Owner account is not configured.")
	default:
		h.log.ErrorContext(r.Context(), "login failed", slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
