//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/notedown/notedown/internal/model"
	"github.com/notedown/notedown/internal/testutil"
)

// createTestUser inserts a user to satisfy foreign keys.
func createTestUser(t *testing.T, ctx context.Context, repo *Repository, email string) *model.User {
	t.Helper()
	user := testutil.NewTestUser(t, email)
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func TestIntegrationCategoryRepository_CreateCategory(t *testing.T) {
	ctx, repo := newTestEnv(t)
	user := createTestUser(t, ctx, repo, "owner@example.com")

	category := testutil.NewTestCategory(t, user.ID, "Work")

	if err := repo.CreateCategory(ctx, category); err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}

	retrieved, err := repo.GetCategoryByID(ctx, category.ID)
	if err != nil {
		t.Fatalf("GetCategoryByID failed: %v", err)
	}

	if retrieved.Name != "Work" {
		t.Errorf("Name mismatch: got %q", retrieved.Name)
	}
	if retrieved.UserID != user.ID {
		t.Errorf("UserID mismatch: got %q, want %q", retrieved.UserID, user.ID)
	}
}

func TestIntegrationCategoryRepository_GetCategoryByID_NotFound(t *testing.T) {
	ctx, repo := newTestEnv(t)

	_, err := repo.GetCategoryByID(ctx, "nonexistent-id")
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("Expected ErrCategoryNotFound, got: %v", err)
	}
}

func TestIntegrationCategoryRepository_ListCategories(t *testing.T) {
	ctx, repo := newTestEnv(t)
	user := createTestUser(t, ctx, repo, "owner@example.com")

	for _, name := range []string{"Work", "Home", "Ideas"} {
		category := testutil.NewTestCategory(t, user.ID, name)
		if err := repo.CreateCategory(ctx, category); err != nil {
			t.Fatalf("CreateCategory failed: %v", err)
		}
		time.Sleep(1 * time.Millisecond) // distinct created_at for ordering
	}

	categories, err := repo.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}

	if len(categories) != 3 {
		t.Fatalf("Expected 3 categories, got %d", len(categories))
	}
	// Newest first
	if categories[0].Name != "Ideas" {
		t.Errorf("Expected newest category first, got %q", categories[0].Name)
	}
}

func TestIntegrationCategoryRepository_UpdateCategory(t *testing.T) {
	ctx, repo := newTestEnv(t)
	user := createTestUser(t, ctx, repo, "owner@example.com")

	category := testutil.NewTestCategory(t, user.ID, "Work")
	if err := repo.CreateCategory(ctx, category); err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}

	category.Name = "Projects"
	updated, err := repo.UpdateCategory(ctx, category)
	if err != nil {
		t.Fatalf("UpdateCategory failed: %v", err)
	}

	if updated.Name != "Projects" {
		t.Errorf("Name not updated: got %q", updated.Name)
	}
	if !updated.LastModified.After(category.CreatedAt) {
		t.Error("LastModified should be refreshed on update")
	}
}

func TestIntegrationCategoryRepository_UpdateCategory_NotFound(t *testing.T) {
	ctx, repo := newTestEnv(t)

	missing := &model.Category{ID: "nonexistent-id", Name: "x"}
	if _, err := repo.UpdateCategory(ctx, missing); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("Expected ErrCategoryNotFound, got: %v", err)
	}
}

func TestIntegrationCategoryRepository_DeleteCategory(t *testing.T) {
	ctx, repo := newTestEnv(t)
	user := createTestUser(t, ctx, repo, "owner@example.com")

	category := testutil.NewTestCategory(t, user.ID, "Work")
	if err := repo.CreateCategory(ctx, category); err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}

	deleted, err := repo.DeleteCategory(ctx, category.ID)
	if err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
	}
	if !deleted {
		t.Error("Expected deleted=true")
	}

	if _, err := repo.GetCategoryByID(ctx, category.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("Expected ErrCategoryNotFound after delete, got: %v", err)
	}

	deleted, err = repo.DeleteCategory(ctx, category.ID)
	if err != nil {
		t.Fatalf("DeleteCategory (second) failed: %v", err)
	}
	if deleted {
		t.Error("Expected deleted=false for missing category")
	}
}
