package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/neobank/neobank/internal/core/domain"
)

// TokenStore keeps live session tokens in Redis.
// Key format: session:<token_id>, value: the owning account id.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a TokenStore wrapping the given Redis client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func (s *TokenStore) Put(ctx context.Context, tokenID, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(tokenID), userID, ttl).Err()
}

// UserID resolves a token to its account. Unknown and expired tokens both
// come back as domain.ErrSessionRejected, which is what ends up in the
// client's forced-logout path.
func (s *TokenStore) UserID(ctx context.Context, tokenID string) (string, error) {
	val, err := s.client.Get(ctx, s.key(tokenID)).Result()
	if err == redis.Nil {
		return "", domain.ErrSessionRejected
	}
	if err != nil {
		return "", fmt.Errorf("token lookup: %w", err)
	}
	return val, nil
}

func (s *TokenStore) Revoke(ctx context.Context, tokenID string) error {
	return s.client.Del(ctx, s.key(tokenID)).Err()
}

func (s *TokenStore) key(tokenID string) string {
	return "session:" + tokenID
}
