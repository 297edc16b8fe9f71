package service

import (
	"context"
	"sync"

	"github.com/notedown/notedown/internal/model"
	"github.com/notedown/notedown/internal/repository"
)

// memStore is an in-memory implementation of the store interfaces used
// by the service tests. It mirrors the repository's semantics, including
// the sentinel errors and the denormalized category name on note reads.
type memStore struct {
	mu         sync.Mutex
	users      map[string]*model.User
	categories map[string]*model.Category
	notes      map[string]*model.Note
}

func newMemStore() *memStore {
	return &memStore{
		users:      make(map[string]*model.User),
		categories: make(map[string]*model.Category),
		notes:      make(map[string]*model.Note),
	}
}

func (m *memStore) CreateUser(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrEmailExists
		}
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memStore) CreateCategory(_ context.Context, category *model.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *category
	m.categories[category.ID] = &cp
	return nil
}

func (m *memStore) GetCategoryByID(_ context.Context, id string) (*model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memStore) ListCategories(_ context.Context) ([]*model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*model.Category
	for _, c := range m.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memStore) UpdateCategory(_ context.Context, category *model.Category) (*model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.categories[category.ID]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	stored.Name = category.Name
	stored.LastModified = stored.LastModified.Add(1)
	cp := *stored
	return &cp, nil
}

func (m *memStore) DeleteCategory(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.categories[id]; !ok {
		return false, nil
	}
	delete(m.categories, id)
	return true, nil
}

func (m *memStore) CreateNote(_ context.Context, note *model.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *note
	m.notes[note.ID] = &cp
	return nil
}

func (m *memStore) GetNoteByID(_ context.Context, id string) (*model.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.notes[id]
	if !ok {
		return nil, repository.ErrNoteNotFound
	}
	cp := *n
	m.joinCategoryName(&cp)
	return &cp, nil
}

func (m *memStore) ListNotes(_ context.Context) ([]*model.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*model.Note
	for _, n := range m.notes {
		cp := *n
		m.joinCategoryName(&cp)
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memStore) ListNotesByCategoryID(_ context.Context, categoryID string) ([]*model.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*model.Note
	for _, n := range m.notes {
		if n.CategoryID != nil && *n.CategoryID == categoryID {
			cp := *n
			m.joinCategoryName(&cp)
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memStore) UpdateNote(_ context.Context, note *model.Note) (*model.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.notes[note.ID]
	if !ok {
		return nil, repository.ErrNoteNotFound
	}
	stored.Title = note.Title
	stored.ContentMarkdown = note.ContentMarkdown
	stored.CategoryID = note.CategoryID
	stored.LastModified = stored.LastModified.Add(1)
	cp := *stored
	m.joinCategoryName(&cp)
	return &cp, nil
}

func (m *memStore) DeleteNote(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.notes[id]; !ok {
		return false, nil
	}
	delete(m.notes, id)
	return true, nil
}

func (m *memStore) joinCategoryName(note *model.Note) {
	note.CategoryName = ""
	if note.CategoryID != nil {
		if c, ok := m.categories[*note.CategoryID]; ok {
			note.CategoryName = c.Name
		}
	}
}
