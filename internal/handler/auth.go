package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/notedown/notedown/internal/auth"
	"github.com/notedown/notedown/internal/handler/dto"
	"github.com/notedown/notedown/internal/model"
	"github.com/notedown/notedown/internal/service"
)

// Sessions is the session store surface the auth handler needs.
// *cache.Cache satisfies it.
type Sessions interface {
	SetSession(ctx context.Context, sessionID string, ident *model.Identity) error
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthHandler handles registration, login, and logout.
type AuthHandler struct {
	svc           *service.AuthService
	sessions      Sessions
	logger        *slog.Logger
	validate      *validator.Validate
	secureCookies bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, sessions Sessions, logger *slog.Logger, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		svc:           svc,
		sessions:      sessions,
		logger:        logger,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		secureCookies: secureCookies,
	}
}

// Register handles POST /api/auth/register.
// A successful registration also signs the caller in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body"})
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.RegisterFailureResponse{
			Success: false,
			Errors:  validationMessages(err),
		})
		return
	}

	result, err := h.svc.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	if !result.Success {
		writeJSON(w, http.StatusBadRequest, dto.RegisterFailureResponse{
			Success: false,
			Errors:  result.Errors,
		})
		return
	}

	if err := h.startSession(w, r, result.Identity); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Registered and logged in successfully"})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body"})
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusUnauthorized, dto.MessageResponse{Message: "Invalid credentials"})
		return
	}

	result, err := h.svc.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	if !result.Success {
		writeJSON(w, http.StatusUnauthorized, dto.MessageResponse{Message: result.Message})
		return
	}

	if err := h.startSession(w, r, result.Identity); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Logged in successfully"})
}

// Logout handles POST /api/auth/logout. It is safe to call without an
// active session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionID := auth.SessionIDFromRequest(r); sessionID != "" {
		if err := h.sessions.DeleteSession(r.Context(), sessionID); err != nil {
			h.logger.Warn("session_delete_failed", "error", err)
		}
	}

	auth.ClearSessionCookie(w, h.secureCookies)
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}

// startSession issues a new session ID, stores the identity, and sets
// the session cookie.
func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, ident *model.Identity) error {
	sessionID, err := auth.NewSessionID()
	if err != nil {
		return fmt.Errorf("new session id: %w", err)
	}

	if err := h.sessions.SetSession(r.Context(), sessionID, ident); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	auth.SetSessionCookie(w, sessionID, h.secureCookies)
	return nil
}

// validationMessages flattens validator errors into readable strings.
func validationMessages(err error) []string {
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return []string{"Invalid request"}
	}

	messages := make([]string, 0, len(invalid))
	for _, fieldErr := range invalid {
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required.", fieldErr.Field()))
		case "email":
			messages = append(messages, fmt.Sprintf("%s is not a valid email address.", fieldErr.Field()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s is too long.", fieldErr.Field()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid.", fieldErr.Field()))
		}
	}
	return messages
}
