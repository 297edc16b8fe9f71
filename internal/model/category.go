package model

import "time"

// MaxCategoryNameLength is the maximum length of a category name.
const MaxCategoryNameLength = 100

// Category is a named grouping of notes owned by exactly one user.
type Category struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	UserID       string    `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}
