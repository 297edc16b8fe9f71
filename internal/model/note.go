package model

import "time"

// MaxNoteTitleLength is the maximum length of a note title.
const MaxNoteTitleLength = 200

// Note is a markdown document owned by exactly one user,
// optionally placed in one category.
type Note struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	ContentMarkdown string  `json:"content_markdown"`
	UserID          string  `json:"user_id"`
	CategoryID      *string `json:"category_id,omitempty"`

	// CategoryName is denormalized by read queries that join the
	// categories table. It is never written back to the store.
	CategoryName string `json:"category_name,omitempty"`

	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

// InCategory reports whether the note is assigned to a category.
func (n *Note) InCategory() bool {
	return n.CategoryID != nil && *n.CategoryID != ""
}
