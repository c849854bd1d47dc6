package ports

import (
	"context"
	"time"
)

// TokenStore records which session tokens the backend currently honours.
// Deleting a token invalidates the session server-side; the next
// authenticated request from the holder fails and forces a client logout.
type TokenStore interface {
	Put(ctx context.Context, tokenID, userID string, ttl time.Duration) error
	// UserID resolves a token to its account, returning
	// domain.ErrSessionRejected for unknown or expired tokens.
	UserID(ctx context.Context, tokenID string) (string, error)
	Revoke(ctx context.Context, tokenID string) error
}
