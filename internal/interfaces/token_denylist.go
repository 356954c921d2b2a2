package interfaces

import (
	"context"
	"time"
)

// TokenDenylist records revoked session tokens by their JTI claim.
// Entries carry a TTL equal to the token's remaining lifetime, so the list
// expires itself together with the tokens it covers.
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
