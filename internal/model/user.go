// Package model defines domain entities for the application.
package model

import "time"

// User is an account that owns notes and categories.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the authenticated caller bound to a session.
// It is resolved once by the session middleware and carried through
// the request context; handlers copy the UserID into command inputs.
type Identity struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}
