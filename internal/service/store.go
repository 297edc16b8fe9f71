package service

import (
	"context"

	"github.com/notedown/notedown/internal/model"
)

// Store interfaces decouple services from the database layer.
// *repository.Repository satisfies all of them.

// UserStore provides user persistence.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// CategoryStore provides category persistence.
type CategoryStore interface {
	CreateCategory(ctx context.Context, category *model.Category) error
	GetCategoryByID(ctx context.Context, id string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]*model.Category, error)
	UpdateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) (bool, error)
}

// NoteStore provides note persistence.
type NoteStore interface {
	CreateNote(ctx context.Context, note *model.Note) error
	GetNoteByID(ctx context.Context, id string) (*model.Note, error)
	ListNotes(ctx context.Context) ([]*model.Note, error)
	ListNotesByCategoryID(ctx context.Context, categoryID string) ([]*model.Note, error)
	UpdateNote(ctx context.Context, note *model.Note) (*model.Note, error)
	DeleteNote(ctx context.Context, id string) (bool, error)
}
