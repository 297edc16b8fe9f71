package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/notedown/notedown/internal/auth"
	"github.com/notedown/notedown/internal/cache"
	"github.com/notedown/notedown/internal/model"
)

// SessionStore is the session lookup surface the middleware needs.
// *cache.Cache satisfies it.
type SessionStore interface {
	GetSession(ctx context.Context, sessionID string) (*model.Identity, error)
	TouchSession(ctx context.Context, sessionID string) error
}

// SessionConfig holds dependencies for the session middleware.
type SessionConfig struct {
	Logger        *slog.Logger
	Store         SessionStore
	SecureCookies bool
}

// Session returns a middleware that authenticates requests via the
// session cookie. A valid session puts the caller identity on the
// request context and slides the expiration window: the server-side
// entry and the cookie are both re-armed to the full duration.
// Requests without a valid session get a 401.
func Session(cfg SessionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := auth.SessionIDFromRequest(r)
			if sessionID == "" {
				unauthorized(w)
				return
			}

			ident, err := cfg.Store.GetSession(r.Context(), sessionID)
			if err != nil {
				if !errors.Is(err, cache.ErrSessionNotFound) {
					cfg.Logger.Error("session_lookup_failed",
						slog.String("request_id", GetRequestID(r.Context())),
						slog.Any("error", err),
					)
				}
				unauthorized(w)
				return
			}

			if err := cfg.Store.TouchSession(r.Context(), sessionID); err != nil {
				// The request still proceeds; the session just won't slide.
				cfg.Logger.Warn("session_touch_failed",
					slog.String("request_id", GetRequestID(r.Context())),
					slog.Any("error", err),
				)
			} else {
				auth.SetSessionCookie(w, sessionID, cfg.SecureCookies)
			}

			ctx := auth.ContextWithIdentity(r.Context(), ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Authentication required",
	})
}
