//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/notedown/notedown/internal/testutil"
)

// newTestEnv connects to the test database, serializes access with an
// advisory lock, and resets the schema. Skips when DATABASE_URL is unset.
func newTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	ctx := context.Background()

	databaseURL := testutil.RequireEnv(t, "DATABASE_URL")

	repo, err := New(ctx, databaseURL)
	if err != nil {
		t.Fatalf("connect to database: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		if err := unlock(); err != nil {
			t.Errorf("release db lock: %v", err)
		}
	})

	if err := testutil.ResetSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset schema: %v", err)
	}

	return ctx, repo
}
