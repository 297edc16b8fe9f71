package dto

import (
	"time"

	"github.com/notedown/notedown/internal/model"
)

// CreateCategoryRequest represents the request body for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// UpdateCategoryRequest represents the request body for renaming a category.
// An empty name keeps the current one.
type UpdateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Created      time.Time `json:"created"`
	LastModified time.Time `json:"lastModified"`
}

// CategoryWithNotesResponse represents a category with its notes inlined.
type CategoryWithNotesResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Created      time.Time      `json:"created"`
	LastModified time.Time      `json:"lastModified"`
	Notes        []NoteResponse `json:"notes"`
}

// ToCategoryResponse converts a Category model to CategoryResponse.
func ToCategoryResponse(category *model.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:           category.ID,
		Name:         category.Name,
		Created:      category.CreatedAt,
		LastModified: category.LastModified,
	}
}

// ToCategoryWithNotesResponse converts a Category and its notes to a response.
func ToCategoryWithNotesResponse(category *model.Category, notes []*model.Note) *CategoryWithNotesResponse {
	noteResponses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		noteResponses[i] = *ToNoteResponse(note)
	}
	return &CategoryWithNotesResponse{
		ID:           category.ID,
		Name:         category.Name,
		Created:      category.CreatedAt,
		LastModified: category.LastModified,
		Notes:        noteResponses,
	}
}

// ToCategoryListResponse converts a slice of Category models to responses.
func ToCategoryListResponse(categories []*model.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *ToCategoryResponse(category)
	}
	return responses
}
