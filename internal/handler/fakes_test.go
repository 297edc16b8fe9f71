package handler

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/notedown/notedown/internal/model"
	"github.com/notedown/notedown/internal/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeStore backs the handler tests with an in-memory implementation of
// the service store interfaces.
type fakeStore struct {
	mu         sync.Mutex
	users      map[string]*model.User
	categories map[string]*model.Category
	notes      map[string]*model.Note
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      make(map[string]*model.User),
		categories: make(map[string]*model.Category),
		notes:      make(map[string]*model.Note),
	}
}

func (f *fakeStore) CreateUser(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrEmailExists
		}
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeStore) CreateCategory(_ context.Context, category *model.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *category
	f.categories[category.ID] = &cp
	return nil
}

func (f *fakeStore) GetCategoryByID(_ context.Context, id string) (*model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeStore) ListCategories(_ context.Context) ([]*model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Category
	for _, c := range f.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeStore) UpdateCategory(_ context.Context, category *model.Category) (*model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.categories[category.ID]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	stored.Name = category.Name
	stored.LastModified = stored.LastModified.Add(1)
	cp := *stored
	return &cp, nil
}

func (f *fakeStore) DeleteCategory(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.categories[id]; !ok {
		return false, nil
	}
	delete(f.categories, id)
	return true, nil
}

func (f *fakeStore) CreateNote(_ context.Context, note *model.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *note
	f.notes[note.ID] = &cp
	return nil
}

func (f *fakeStore) GetNoteByID(_ context.Context, id string) (*model.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notes[id]
	if !ok {
		return nil, repository.ErrNoteNotFound
	}
	cp := *n
	f.fillCategoryName(&cp)
	return &cp, nil
}

func (f *fakeStore) ListNotes(_ context.Context) ([]*model.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Note
	for _, n := range f.notes {
		cp := *n
		f.fillCategoryName(&cp)
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeStore) ListNotesByCategoryID(_ context.Context, categoryID string) ([]*model.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Note
	for _, n := range f.notes {
		if n.CategoryID != nil && *n.CategoryID == categoryID {
			cp := *n
			f.fillCategoryName(&cp)
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateNote(_ context.Context, note *model.Note) (*model.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.notes[note.ID]
	if !ok {
		return nil, repository.ErrNoteNotFound
	}
	stored.Title = note.Title
	stored.ContentMarkdown = note.ContentMarkdown
	stored.CategoryID = note.CategoryID
	stored.LastModified = stored.LastModified.Add(1)
	cp := *stored
	f.fillCategoryName(&cp)
	return &cp, nil
}

func (f *fakeStore) DeleteNote(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.notes[id]; !ok {
		return false, nil
	}
	delete(f.notes, id)
	return true, nil
}

func (f *fakeStore) fillCategoryName(note *model.Note) {
	note.CategoryName = ""
	if note.CategoryID != nil {
		if c, ok := f.categories[*note.CategoryID]; ok {
			note.CategoryName = c.Name
		}
	}
}

// fakeSessions is an in-memory Sessions implementation.
type fakeSessions struct {
	mu       sync.Mutex
	sessions map[string]*model.Identity
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: make(map[string]*model.Identity)}
}

func (f *fakeSessions) SetSession(_ context.Context, sessionID string, ident *model.Identity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *ident
	f.sessions[sessionID] = &cp
	return nil
}

func (f *fakeSessions) DeleteSession(_ context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, sessionID)
	return nil
}

func (f *fakeSessions) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sessions)
}
