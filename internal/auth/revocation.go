package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationList records revoked token IDs until their natural expiry, so a
// logout or account deactivation takes effect before the JWT runs out.
type RevocationList interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

const revocationKeyPrefix = "auth:revoked:"

type redisRevocationList struct {
	client *redis.Client
}

// NewRedisRevocationList builds a Redis-backed revocation list. Without a
// client it degrades to the no-op list.
func NewRedisRevocationList(client *redis.Client) RevocationList {
	if client == nil {
		return NoopRevocationList{}
	}
	return &redisRevocationList{client: client}
}

func (l *redisRevocationList) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		// already past expiry, nothing to record
		return nil
	}
	return l.client.Set(ctx, revocationKeyPrefix+tokenID, "1", ttl).Err()
}

func (l *redisRevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := l.client.Exists(ctx, revocationKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// NoopRevocationList never reports a token revoked. Used when Redis is not
// configured.
type NoopRevocationList struct{}

func (NoopRevocationList) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	return nil
}

func (NoopRevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return false, nil
}
