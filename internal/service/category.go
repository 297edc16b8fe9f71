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

// CategoryService handles category business logic. Every operation takes
// the caller's user ID and enforces ownership explicitly.
type CategoryService struct {
	categories CategoryStore
	notes      NoteStore
	logger     *slog.Logger
	metrics    metrics.Recorder
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories CategoryStore, notes NoteStore, logger *slog.Logger, recorder metrics.Recorder) *CategoryService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &CategoryService{
		categories: categories,
		notes:      notes,
		logger:     logger,
		metrics:    recorder,
	}
}

// Create adds a new category owned by the caller.
func (s *CategoryService) Create(ctx context.Context, name, callerID string) (*model.Category, error) {
	if callerID == "" {
		return nil, unauthorizedError("User is not authenticated.")
	}
	if name == "" {
		return nil, categoryOperationError("Category name cannot be empty.")
	}
	if utf8.RuneCountInString(name) > model.MaxCategoryNameLength {
		return nil, categoryOperationError("Category name cannot exceed %d characters.", model.MaxCategoryNameLength)
	}

	now := time.Now().UTC()
	category := &model.Category{
		ID:           uuid.NewString(),
		Name:         name,
		UserID:       callerID,
		CreatedAt:    now,
		LastModified: now,
	}

	if err := s.categories.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.metrics.IncCategoryCreated()
	s.logger.Info("category_created", "category_id", category.ID, "user_id", callerID)

	return category, nil
}

// GetByID returns a category along with the notes assigned to it.
func (s *CategoryService) GetByID(ctx context.Context, id string) (*model.Category, []*model.Note, error) {
	category, err := s.categories.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, nil, notFoundError("Category with ID %s not found.", id)
		}
		return nil, nil, fmt.Errorf("get category: %w", err)
	}

	notes, err := s.notes.ListNotesByCategoryID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list category notes: %w", err)
	}

	return category, notes, nil
}

// GetAll returns every category in the store.
func (s *CategoryService) GetAll(ctx context.Context) ([]*model.Category, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Update renames a category. Only the owner may update it; an empty name
// leaves the current name in place but still refreshes last_modified.
func (s *CategoryService) Update(ctx context.Context, id, name, callerID string) (*model.Category, error) {
	category, err := s.categories.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, notFoundError("Category with ID %s not found.", id)
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	if category.UserID != callerID {
		return nil, unauthorizedError("You do not have permission to update this category.")
	}

	if name != "" {
		if utf8.RuneCountInString(name) > model.MaxCategoryNameLength {
			return nil, categoryOperationError("Category name cannot exceed %d characters.", model.MaxCategoryNameLength)
		}
		category.Name = name
	}

	updated, err := s.categories.UpdateCategory(ctx, category)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, categoryOperationError("Failed to update category with ID %s.", id)
		}
		return nil, fmt.Errorf("update category: %w", err)
	}

	s.metrics.IncCategoryUpdated()
	s.logger.Info("category_updated", "category_id", id, "user_id", callerID)

	return updated, nil
}

// Delete removes a category owned by the caller. A category with notes
// still assigned to it cannot be deleted. Returns false when no category
// matches the ID.
func (s *CategoryService) Delete(ctx context.Context, id, callerID string) (bool, error) {
	category, err := s.categories.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get category: %w", err)
	}

	if category.UserID != callerID {
		return false, unauthorizedError("You do not have permission to delete this category.")
	}

	notes, err := s.notes.ListNotesByCategoryID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("list category notes: %w", err)
	}
	if len(notes) > 0 {
		return false, invalidOperationError("Cannot delete a category that has associated notes.")
	}

	deleted, err := s.categories.DeleteCategory(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}

	if deleted {
		s.metrics.IncCategoryDeleted()
		s.logger.Info("category_deleted", "category_id", id, "user_id", callerID)
	}

	return deleted, nil
}
