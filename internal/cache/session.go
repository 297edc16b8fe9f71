package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/notedown/notedown/internal/model"
)

const (
	// sessionKeyPrefix is the Redis key prefix for session entries.
	sessionKeyPrefix = "session:"
	// SessionTTL is the server-side session lifetime. It is re-armed on
	// every authenticated request (sliding expiration).
	SessionTTL = 7 * 24 * time.Hour
)

// ErrSessionNotFound is returned when a session is absent or expired.
var ErrSessionNotFound = errors.New("session not found")

// cachedIdentity is the session payload stored in Redis.
type cachedIdentity struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// SetSession stores the caller identity under a session ID with the full TTL.
func (c *Cache) SetSession(ctx context.Context, sessionID string, ident *model.Identity) error {
	cached := cachedIdentity{
		UserID:   ident.UserID,
		Email:    ident.Email,
		Username: ident.Username,
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	return c.client.Set(ctx, sessionKeyPrefix+sessionID, data, SessionTTL).Err()
}

// GetSession retrieves the identity bound to a session ID.
// Returns ErrSessionNotFound if the session is absent or expired.
func (c *Cache) GetSession(ctx context.Context, sessionID string) (*model.Identity, error) {
	data, err := c.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var cached cachedIdentity
	if err := json.Unmarshal(data, &cached); err != nil {
		// Corrupted entry - treat as missing
		return nil, ErrSessionNotFound
	}

	return &model.Identity{
		UserID:   cached.UserID,
		Email:    cached.Email,
		Username: cached.Username,
	}, nil
}

// TouchSession re-arms a session's TTL to the full duration.
func (c *Cache) TouchSession(ctx context.Context, sessionID string) error {
	return c.client.Expire(ctx, sessionKeyPrefix+sessionID, SessionTTL).Err()
}

// DeleteSession removes a session (logout).
func (c *Cache) DeleteSession(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
