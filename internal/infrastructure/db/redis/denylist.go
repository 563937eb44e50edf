package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Denylist blocks tokens of deactivated staff before they expire. Entries
// live at auth:revoked:<username> and outlast the longest token lifetime.
type Denylist struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDenylist creates a Denylist. ttl should be at least the token lifetime.
func NewDenylist(client *redis.Client, ttl time.Duration) *Denylist {
	return &Denylist{client: client, ttl: ttl}
}

// Revoke invalidates all outstanding tokens for a username.
func (d *Denylist) Revoke(ctx context.Context, username string) error {
	return d.client.Set(ctx, d.key(username), "1", d.ttl).Err()
}

// Restore lifts a revocation after an account is reactivated.
func (d *Denylist) Restore(ctx context.Context, username string) error {
	return d.client.Del(ctx, d.key(username)).Err()
}

// IsRevoked reports whether the username's tokens have been invalidated.
func (d *Denylist) IsRevoked(ctx context.Context, username string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(username)).Result()
	if err != nil {
		return false, fmt.Errorf("denylist check: %w", err)
	}
	return n > 0, nil
}

func (d *Denylist) key(username string) string {
	return "auth:revoked:" + username
}
