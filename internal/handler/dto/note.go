package dto

import (
	"time"

	"github.com/notedown/notedown/internal/model"
)

// CreateNoteRequest represents the request body for creating a note.
// An empty categoryId creates an uncategorized note.
type CreateNoteRequest struct {
	Title      string `json:"title"`
	Content    string `json:"contentMarkdown"`
	CategoryID string `json:"categoryId"`
}

// UpdateNoteRequest represents the request body for updating a note.
// Empty title and content keep the stored values. CategoryID is
// tri-state: an absent key keeps the current assignment, an explicit
// "" clears it, and any other value reassigns the note.
type UpdateNoteRequest struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	CategoryID *string `json:"categoryId"`
}

// NoteResponse represents a note in API responses.
type NoteResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	CategoryID   string    `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	Created      time.Time `json:"created"`
	LastModified time.Time `json:"lastModified"`
}

// ToNoteResponse converts a Note model to NoteResponse.
func ToNoteResponse(note *model.Note) *NoteResponse {
	response := &NoteResponse{
		ID:           note.ID,
		Title:        note.Title,
		Content:      note.ContentMarkdown,
		CategoryName: note.CategoryName,
		Created:      note.CreatedAt,
		LastModified: note.LastModified,
	}
	if note.CategoryID != nil {
		response.CategoryID = *note.CategoryID
	}
	return response
}

// ToNoteListResponse converts a slice of Note models to responses.
func ToNoteListResponse(notes []*model.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = *ToNoteResponse(note)
	}
	return responses
}
