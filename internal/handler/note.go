package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/notedown/notedown/internal/auth"
	"github.com/notedown/notedown/internal/handler/dto"
	"github.com/notedown/notedown/internal/render"
	"github.com/notedown/notedown/internal/service"
)

// NoteHandler handles HTTP requests for note operations.
type NoteHandler struct {
	svc      *service.NoteService
	renderer *render.Renderer
	logger   *slog.Logger
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(svc *service.NoteService, renderer *render.Renderer, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		svc:      svc,
		renderer: renderer,
		logger:   logger,
	}
}

// Create handles POST /api/notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body"})
		return
	}

	note, err := h.svc.Create(r.Context(), service.CreateNoteInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		CallerID:   auth.UserIDFromContext(r.Context()),
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/notes/%s", note.ID))
	writeJSON(w, http.StatusCreated, dto.ToNoteResponse(note))
}

// Get handles GET /api/notes/{id}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	note, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToNoteResponse(note))
}

// GetHTML handles GET /api/notes/{id}/html. It renders the note's
// markdown content to sanitized HTML.
func (h *NoteHandler) GetHTML(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	note, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.renderer.ToHTML(note.ContentMarkdown)); err != nil {
		h.logger.Warn("write_html_failed", "error", err)
	}
}

// List handles GET /api/notes.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.GetAll(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToNoteListResponse(notes))
}

// Update handles PUT /api/notes/{id}.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body"})
		return
	}

	note, err := h.svc.Update(r.Context(), service.UpdateNoteInput{
		ID:         id,
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		CallerID:   auth.UserIDFromContext(r.Context()),
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToNoteResponse(note))
}

// Delete handles DELETE /api/notes/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.svc.Delete(r.Context(), id, auth.UserIDFromContext(r.Context()))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	if !deleted {
		writeJSON(w, http.StatusNotFound, dto.MessageResponse{
			Message: fmt.Sprintf("Note with ID %s not found.", id),
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
