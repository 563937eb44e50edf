package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// PostingDedup provides idempotency checks for ledger postings backed by
// Redis. Key format: ledger:dedup:<doc_number>
type PostingDedup struct {
	client *redis.Client
}

// NewPostingDedup creates a PostingDedup wrapping the given Redis client.
func NewPostingDedup(client *redis.Client) *PostingDedup {
	return &PostingDedup{client: client}
}

// IsDuplicate reports whether a posting for this document has already been
// applied.
func (d *PostingDedup) IsDuplicate(ctx context.Context, docNum string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(docNum)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this posting has been applied (expires after dedupTTL).
func (d *PostingDedup) Mark(ctx context.Context, docNum string) error {
	return d.client.Set(ctx, d.key(docNum), "1", dedupTTL).Err()
}

func (d *PostingDedup) key(docNum string) string {
	return "ledger:dedup:" + docNum
}
