package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/notedown/notedown/internal/model"
)

// ErrNoteNotFound is returned when no note matches the given ID.
var ErrNoteNotFound = errors.New("note not found")

// noteColumns selects note fields plus the denormalized category name.
const noteColumns = `
	n.id, n.title, n.content_markdown, n.user_id, n.category_id,
	COALESCE(c.name, ''), n.created_at, n.last_modified
`

// CreateNote inserts a new note into the database.
func (r *Repository) CreateNote(ctx context.Context, note *model.Note) error {
	query := `
		INSERT INTO notes (id, title, content_markdown, user_id, category_id, created_at, last_modified)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		note.ID,
		note.Title,
		note.ContentMarkdown,
		note.UserID,
		note.CategoryID,
		note.CreatedAt,
		note.LastModified,
	)

	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	return nil
}

// GetNoteByID retrieves a note by its ID, with its category name joined in.
func (r *Repository) GetNoteByID(ctx context.Context, id string) (*model.Note, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes n
		LEFT JOIN categories c ON n.category_id = c.id
		WHERE n.id = $1
	`

	note, err := scanNote(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note by ID: %w", err)
	}

	return note, nil
}

// ListNotes retrieves every note in the store, with category names joined in.
func (r *Repository) ListNotes(ctx context.Context) ([]*model.Note, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes n
		LEFT JOIN categories c ON n.category_id = c.id
		ORDER BY n.created_at DESC, n.id DESC
	`

	return r.queryNotes(ctx, query)
}

// ListNotesByCategoryID retrieves all notes assigned to a category.
func (r *Repository) ListNotesByCategoryID(ctx context.Context, categoryID string) ([]*model.Note, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes n
		LEFT JOIN categories c ON n.category_id = c.id
		WHERE n.category_id = $1
		ORDER BY n.created_at DESC, n.id DESC
	`

	return r.queryNotes(ctx, query, categoryID)
}

// UpdateNote updates a note's mutable fields and refreshes last_modified.
// The stored row, including the refreshed timestamp and the denormalized
// category name, is returned.
func (r *Repository) UpdateNote(ctx context.Context, note *model.Note) (*model.Note, error) {
	query := `
		UPDATE notes
		SET title = $2, content_markdown = $3, category_id = $4, last_modified = now()
		WHERE id = $1
		RETURNING id, title, content_markdown, user_id, category_id, created_at, last_modified
	`

	var updated model.Note
	err := r.pool.QueryRow(ctx, query,
		note.ID,
		note.Title,
		note.ContentMarkdown,
		note.CategoryID,
	).Scan(
		&updated.ID,
		&updated.Title,
		&updated.ContentMarkdown,
		&updated.UserID,
		&updated.CategoryID,
		&updated.CreatedAt,
		&updated.LastModified,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	if updated.InCategory() {
		category, err := r.GetCategoryByID(ctx, *updated.CategoryID)
		if err == nil {
			updated.CategoryName = category.Name
		}
	}

	return &updated, nil
}

// DeleteNote removes a note. Returns false if no row matched.
func (r *Repository) DeleteNote(ctx context.Context, id string) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete note: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// queryNotes runs a note list query and scans all rows.
func (r *Repository) queryNotes(ctx context.Context, query string, args ...any) ([]*model.Note, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []*model.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}

	return notes, nil
}

// scanNote scans a single joined row into a Note model.
func scanNote(row pgx.Row) (*model.Note, error) {
	var note model.Note
	err := row.Scan(
		&note.ID,
		&note.Title,
		&note.ContentMarkdown,
		&note.UserID,
		&note.CategoryID,
		&note.CategoryName,
		&note.CreatedAt,
		&note.LastModified,
	)
	if err != nil {
		return nil, err
	}
	return &note, nil
}
