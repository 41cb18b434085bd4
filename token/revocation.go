package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore records, per user, the instant at which all refresh
// tokens issued so far were invalidated.
type RevocationStore interface {
	// Revoke marks every token issued at or before t as invalid. The mark
	// may be discarded after ttl, once no affected token can still be alive.
	Revoke(ctx context.Context, userID string, t time.Time, ttl time.Duration) error

	// RevokedAt returns the recorded revocation instant for the user, or
	// the zero time when nothing has been revoked.
	RevokedAt(ctx context.Context, userID string) (time.Time, error)
}

// RedisRevocationStore keeps revocation marks in Redis under
// "<prefix>revoked:<userID>".
type RedisRevocationStore struct {
	client *redis.Client
	prefix string
}

func NewRedisRevocationStore(client *redis.Client, prefix string) *RedisRevocationStore {
	return &RedisRevocationStore{client: client, prefix: prefix}
}

func (s *RedisRevocationStore) key(userID string) string {
	return s.prefix + "revoked:" + userID
}

func (s *RedisRevocationStore) Revoke(ctx context.Context, userID string, t time.Time, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(userID), t.UnixNano(), ttl).Err(); err != nil {
		return fmt.Errorf("redis: storing revocation: %w", err)
	}
	return nil
}

func (s *RedisRevocationStore) RevokedAt(ctx context.Context, userID string) (time.Time, error) {
	nanos, err := s.client.Get(ctx, s.key(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("redis: reading revocation: %w", err)
	}
	return time.Unix(0, nanos), nil
}
