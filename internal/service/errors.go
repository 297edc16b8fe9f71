// Package service provides business logic for the application.
package service

import "fmt"

// errorKind classifies service failures for HTTP status mapping.
type errorKind int

const (
	kindNotFound errorKind = iota + 1
	kindUnauthorized
	kindInvalidOperation
	kindNoteOperation
	kindCategoryOperation
)

// OpError is a service-level failure carrying a caller-facing message.
// Handlers match on kind with errors.Is against the exported sentinels.
type OpError struct {
	kind errorKind
	msg  string
}

// Error returns the caller-facing message.
func (e *OpError) Error() string { return e.msg }

// Is matches any OpError of the same kind, so wrapped detail messages
// still satisfy errors.Is(err, ErrNotFound) etc.
func (e *OpError) Is(target error) bool {
	t, ok := target.(*OpError)
	return ok && t.kind == e.kind
}

// Sentinel errors for errors.Is matching at the HTTP boundary.
var (
	ErrNotFound          = &OpError{kind: kindNotFound, msg: "resource not found"}
	ErrUnauthorized      = &OpError{kind: kindUnauthorized, msg: "unauthorized"}
	ErrInvalidOperation  = &OpError{kind: kindInvalidOperation, msg: "invalid operation"}
	ErrNoteOperation     = &OpError{kind: kindNoteOperation, msg: "note operation failed"}
	ErrCategoryOperation = &OpError{kind: kindCategoryOperation, msg: "category operation failed"}
)

func notFoundError(format string, args ...any) error {
	return &OpError{kind: kindNotFound, msg: fmt.Sprintf(format, args...)}
}

func unauthorizedError(format string, args ...any) error {
	return &OpError{kind: kindUnauthorized, msg: fmt.Sprintf(format, args...)}
}

func invalidOperationError(format string, args ...any) error {
	return &OpError{kind: kindInvalidOperation, msg: fmt.Sprintf(format, args...)}
}

func noteOperationError(format string, args ...any) error {
	return &OpError{kind: kindNoteOperation, msg: fmt.Sprintf(format, args...)}
}

func categoryOperationError(format string, args ...any) error {
	return &OpError{kind: kindCategoryOperation, msg: fmt.Sprintf(format, args...)}
}
