package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"prosports-server/internal/interfaces"
)

// Compile-time check to ensure redisDenylistRepository implements TokenDenylist
var _ interfaces.TokenDenylist = (*redisDenylistRepository)(nil)

type redisDenylistRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisDenylistRepository creates a Redis-backed token denylist. Each
// revoked JTI is stored as revoked_jti:{jti} with a TTL matching the
// token's remaining lifetime, so entries vanish together with the tokens.
func NewRedisDenylistRepository(client *redis.Client, logger *zap.Logger) interfaces.TokenDenylist {
	return &redisDenylistRepository{
		client: client,
		logger: logger.Named("RedisDenylistRepo"),
	}
}

func denylistKey(jti string) string {
	return fmt.Sprintf("revoked_jti:%s", jti)
}

// Revoke marks a token identifier as revoked for the given TTL.
func (r *redisDenylistRepository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := r.client.Set(ctx, denylistKey(jti), "1", ttl).Err(); err != nil {
		r.logger.Error("Failed to store revoked jti in redis", zap.Error(err), zap.String("jti", jti))
		return fmt.Errorf("failed to store revoked jti in redis: %w", err)
	}
	r.logger.Debug("Token jti revoked", zap.String("jti", jti), zap.Duration("ttl", ttl))
	return nil
}

// IsRevoked reports whether a token identifier is on the denylist.
func (r *redisDenylistRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := r.client.Get(ctx, denylistKey(jti)).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	r.logger.Error("Failed to check revoked jti in redis", zap.Error(err), zap.String("jti", jti))
	return false, fmt.Errorf("failed to check revoked jti in redis: %w", err)
}
