package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/notedown/notedown/internal/metrics"
	"github.com/notedown/notedown/internal/model"
	"github.com/notedown/notedown/internal/repository"
)

// NoteService handles note business logic. Every mutating operation takes
// the caller's user ID and enforces ownership explicitly.
type NoteService struct {
	notes      NoteStore
	categories CategoryStore
	logger     *slog.Logger
	metrics    metrics.Recorder
}

// NewNoteService creates a new NoteService.
func NewNoteService(notes NoteStore, categories CategoryStore, logger *slog.Logger, recorder metrics.Recorder) *NoteService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &NoteService{
		notes:      notes,
		categories: categories,
		logger:     logger,
		metrics:    recorder,
	}
}

// CreateNoteInput defines input for creating a note. An empty CategoryID
// creates an uncategorized note.
type CreateNoteInput struct {
	Title      string
	Content    string
	CategoryID string
	CallerID   string
}

// Create adds a new note owned by the caller. If a category is given it
// must exist.
func (s *NoteService) Create(ctx context.Context, input CreateNoteInput) (*model.Note, error) {
	if input.CallerID == "" {
		return nil, unauthorizedError("User is not authenticated.")
	}
	if input.Title == "" {
		return nil, noteOperationError("Note title cannot be empty.")
	}
	if utf8.RuneCountInString(input.Title) > model.MaxNoteTitleLength {
		return nil, noteOperationError("Note title cannot exceed %d characters.", model.MaxNoteTitleLength)
	}

	note := &model.Note{
		ID:              uuid.NewString(),
		Title:           input.Title,
		ContentMarkdown: input.Content,
		UserID:          input.CallerID,
	}

	if input.CategoryID != "" {
		category, err := s.categories.GetCategoryByID(ctx, input.CategoryID)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, notFoundError("Invalid CategoryId.")
			}
			return nil, fmt.Errorf("get category: %w", err)
		}
		note.CategoryID = &category.ID
		note.CategoryName = category.Name
	}

	now := time.Now().UTC()
	note.CreatedAt = now
	note.LastModified = now

	if err := s.notes.CreateNote(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.metrics.IncNoteCreated()
	s.logger.Info("note_created", "note_id", note.ID, "user_id", input.CallerID)

	return note, nil
}

// GetByID returns a note by its ID.
func (s *NoteService) GetByID(ctx context.Context, id string) (*model.Note, error) {
	note, err := s.notes.GetNoteByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, notFoundError("Note with ID %s not found.", id)
		}
		return nil, fmt.Errorf("get note: %w", err)
	}
	return note, nil
}

// GetAll returns every note in the store.
func (s *NoteService) GetAll(ctx context.Context) ([]*model.Note, error) {
	notes, err := s.notes.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// UpdateNoteInput defines input for updating a note. Empty Title and
// Content leave the stored values unchanged. CategoryID is tri-state:
// nil leaves the assignment unchanged, a pointer to "" clears it, and
// any other value reassigns the note to that category.
type UpdateNoteInput struct {
	ID         string
	Title      string
	Content    string
	CategoryID *string
	CallerID   string
}

// Update modifies a note's title, content, or category assignment.
// Only the owner may update it.
func (s *NoteService) Update(ctx context.Context, input UpdateNoteInput) (*model.Note, error) {
	note, err := s.notes.GetNoteByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, notFoundError("Note with ID %s not found.", input.ID)
		}
		return nil, fmt.Errorf("get note: %w", err)
	}

	if note.UserID != input.CallerID {
		return nil, unauthorizedError("You do not have permission to update this note.")
	}

	if input.Title != "" {
		if utf8.RuneCountInString(input.Title) > model.MaxNoteTitleLength {
			return nil, noteOperationError("Note title cannot exceed %d characters.", model.MaxNoteTitleLength)
		}
		note.Title = input.Title
	}
	if input.Content != "" {
		note.ContentMarkdown = input.Content
	}

	if input.CategoryID != nil {
		if *input.CategoryID == "" {
			note.CategoryID = nil
			note.CategoryName = ""
		} else {
			category, err := s.categories.GetCategoryByID(ctx, *input.CategoryID)
			if err != nil {
				if errors.Is(err, repository.ErrCategoryNotFound) {
					return nil, notFoundError("Invalid CategoryId.")
				}
				return nil, fmt.Errorf("get category: %w", err)
			}
			note.CategoryID = &category.ID
			note.CategoryName = category.Name
		}
	}

	updated, err := s.notes.UpdateNote(ctx, note)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, noteOperationError("Failed to update the note with ID %s.", input.ID)
		}
		return nil, fmt.Errorf("update note: %w", err)
	}

	s.metrics.IncNoteUpdated()
	s.logger.Info("note_updated", "note_id", input.ID, "user_id", input.CallerID)

	return updated, nil
}

// Delete removes a note owned by the caller. Returns false when no note
// matches the ID.
func (s *NoteService) Delete(ctx context.Context, id, callerID string) (bool, error) {
	note, err := s.notes.GetNoteByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get note: %w", err)
	}

	if note.UserID != callerID {
		return false, unauthorizedError("You do not have permission to delete this note.")
	}

	deleted, err := s.notes.DeleteNote(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete note: %w", err)
	}

	if deleted {
		s.metrics.IncNoteDeleted()
		s.logger.Info("note_deleted", "note_id", id, "user_id", callerID)
	}

	return deleted, nil
}
