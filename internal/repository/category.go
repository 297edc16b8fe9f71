package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/notedown/notedown/internal/model"
)

// ErrCategoryNotFound is returned when no category matches the given ID.
var ErrCategoryNotFound = errors.New("category not found")

// CreateCategory inserts a new category into the database.
func (r *Repository) CreateCategory(ctx context.Context, category *model.Category) error {
	query := `
		INSERT INTO categories (id, name, user_id, created_at, last_modified)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		category.ID,
		category.Name,
		category.UserID,
		category.CreatedAt,
		category.LastModified,
	)

	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// GetCategoryByID retrieves a category by its ID.
func (r *Repository) GetCategoryByID(ctx context.Context, id string) (*model.Category, error) {
	query := `
		SELECT id, name, user_id, created_at, last_modified
		FROM categories
		WHERE id = $1
	`

	category, err := scanCategory(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}

	return category, nil
}

// ListCategories retrieves every category in the store.
func (r *Repository) ListCategories(ctx context.Context) ([]*model.Category, error) {
	query := `
		SELECT id, name, user_id, created_at, last_modified
		FROM categories
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*model.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// UpdateCategory updates a category's name and refreshes last_modified.
// The stored last_modified value is returned on the category.
func (r *Repository) UpdateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	query := `
		UPDATE categories
		SET name = $2, last_modified = now()
		WHERE id = $1
		RETURNING id, name, user_id, created_at, last_modified
	`

	updated, err := scanCategory(r.pool.QueryRow(ctx, query, category.ID, category.Name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return updated, nil
}

// DeleteCategory removes a category. Returns false if no row matched.
func (r *Repository) DeleteCategory(ctx context.Context, id string) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// scanCategory scans a single row into a Category model.
func scanCategory(row pgx.Row) (*model.Category, error) {
	var category model.Category
	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.UserID,
		&category.CreatedAt,
		&category.LastModified,
	)
	if err != nil {
		return nil, err
	}
	return &category, nil
}
