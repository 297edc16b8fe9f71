package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersRegistered   uint64
	LoginsSucceeded   uint64
	LoginsFailed      uint64
	NotesCreated      uint64
	NotesUpdated      uint64
	NotesDeleted      uint64
	CategoriesCreated uint64
	CategoriesUpdated uint64
	CategoriesDeleted uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	usersRegistered   uint64
	loginsSucceeded   uint64
	loginsFailed      uint64
	notesCreated      uint64
	notesUpdated      uint64
	notesDeleted      uint64
	categoriesCreated uint64
	categoriesUpdated uint64
	categoriesDeleted uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersRegistered:   atomic.LoadUint64(&m.usersRegistered),
		LoginsSucceeded:   atomic.LoadUint64(&m.loginsSucceeded),
		LoginsFailed:      atomic.LoadUint64(&m.loginsFailed),
		NotesCreated:      atomic.LoadUint64(&m.notesCreated),
		NotesUpdated:      atomic.LoadUint64(&m.notesUpdated),
		NotesDeleted:      atomic.LoadUint64(&m.notesDeleted),
		CategoriesCreated: atomic.LoadUint64(&m.categoriesCreated),
		CategoriesUpdated: atomic.LoadUint64(&m.categoriesUpdated),
		CategoriesDeleted: atomic.LoadUint64(&m.categoriesDeleted),
	}
}

// IncUserRegistered increments the registration counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	atomic.AddUint64(&m.usersRegistered, 1)
}

// IncLoginSucceeded increments the successful login counter.
func (m *InMemoryRecorder) IncLoginSucceeded() {
	atomic.AddUint64(&m.loginsSucceeded, 1)
}

// IncLoginFailed increments the failed login counter.
func (m *InMemoryRecorder) IncLoginFailed() {
	atomic.AddUint64(&m.loginsFailed, 1)
}

// IncNoteCreated increments the note created counter.
func (m *InMemoryRecorder) IncNoteCreated() {
	atomic.AddUint64(&m.notesCreated, 1)
}

// IncNoteUpdated increments the note updated counter.
func (m *InMemoryRecorder) IncNoteUpdated() {
	atomic.AddUint64(&m.notesUpdated, 1)
}

// IncNoteDeleted increments the note deleted counter.
func (m *InMemoryRecorder) IncNoteDeleted() {
	atomic.AddUint64(&m.notesDeleted, 1)
}

// IncCategoryCreated increments the category created counter.
func (m *InMemoryRecorder) IncCategoryCreated() {
	atomic.AddUint64(&m.categoriesCreated, 1)
}

// IncCategoryUpdated increments the category updated counter.
func (m *InMemoryRecorder) IncCategoryUpdated() {
	atomic.AddUint64(&m.categoriesUpdated, 1)
}

// IncCategoryDeleted increments the category deleted counter.
func (m *InMemoryRecorder) IncCategoryDeleted() {
	atomic.AddUint64(&m.categoriesDeleted, 1)
}
