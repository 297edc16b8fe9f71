package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/notedown/notedown/internal/auth"
	"github.com/notedown/notedown/internal/handler/dto"
	"github.com/notedown/notedown/internal/service"
)

// CategoryHandler handles HTTP requests for category operations.
type CategoryHandler struct {
	svc    *service.CategoryService
	logger *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(svc *service.CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body"})
		return
	}

	category, err := h.svc.Create(r.Context(), req.Name, auth.UserIDFromContext(r.Context()))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/categories/%s", category.ID))
	writeJSON(w, http.StatusCreated, dto.ToCategoryResponse(category))
}

// Get handles GET /api/categories/{id}. The category's notes are
// inlined in the response.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	category, notes, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCategoryWithNotesResponse(category, notes))
}

// List handles GET /api/categories. An empty store responds 404.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.GetAll(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	if len(categories) == 0 {
		writeJSON(w, http.StatusNotFound, dto.MessageResponse{Message: "No categories found."})
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCategoryListResponse(categories))
}

// Update handles PUT /api/categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body"})
		return
	}

	category, err := h.svc.Update(r.Context(), id, req.Name, auth.UserIDFromContext(r.Context()))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCategoryResponse(category))
}

// Delete handles DELETE /api/categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.svc.Delete(r.Context(), id, auth.UserIDFromContext(r.Context()))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	if !deleted {
		writeJSON(w, http.StatusNotFound, dto.MessageResponse{
			Message: fmt.Sprintf("Category with ID %s not found.", id),
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
