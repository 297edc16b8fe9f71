package auth

import (
	"crypto/rand"
	"fmt"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"
)

// Session cookie configuration. Sessions slide: both the cookie and the
// server-side entry are re-armed to the full duration on each
// authenticated request.
const (
	SessionCookieName = "notedown_session"
	SessionDuration   = 7 * 24 * time.Hour
)

// NewSessionID generates a session identifier: a ULID with
// cryptographically secure entropy, sortable by issue time.
func NewSessionID() (string, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return id.String(), nil
}

// SetSessionCookie sets the session cookie on the response.
// The secure flag is disabled only for local development over plain HTTP.
func SetSessionCookie(w http.ResponseWriter, sessionID string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(SessionDuration.Seconds()),
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}

// SessionIDFromRequest retrieves the session ID from the request cookie.
// Returns empty string if the cookie is absent.
func SessionIDFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
