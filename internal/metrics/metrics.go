// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Account metrics
	IncUserRegistered()
	IncLoginSucceeded()
	IncLoginFailed()

	// Note management metrics
	IncNoteCreated()
	IncNoteUpdated()
	IncNoteDeleted()

	// Category management metrics
	IncCategoryCreated()
	IncCategoryUpdated()
	IncCategoryDeleted()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
