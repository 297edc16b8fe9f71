package auth

import (
	"context"

	"github.com/notedown/notedown/internal/model"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// identityContextKey is the context key for storing the caller Identity.
const identityContextKey contextKey = "identity"

// ContextWithIdentity adds the authenticated Identity to the context.
func ContextWithIdentity(ctx context.Context, ident *model.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, ident)
}

// IdentityFromContext retrieves the authenticated Identity from the context.
// Returns nil if not present.
func IdentityFromContext(ctx context.Context) *model.Identity {
	ident, ok := ctx.Value(identityContextKey).(*model.Identity)
	if !ok {
		return nil
	}
	return ident
}

// UserIDFromContext is a convenience function to get the caller's user ID.
// Returns empty string if not authenticated.
func UserIDFromContext(ctx context.Context) string {
	ident := IdentityFromContext(ctx)
	if ident == nil {
		return ""
	}
	return ident.UserID
}
