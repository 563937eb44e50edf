package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NumberSource allocates document numbers from per-type, per-year Redis
// counters. Numbers look like CTR-2026-000042 and never repeat within a year.
type NumberSource struct {
	client *redis.Client
	now    func() time.Time
}

// NewNumberSource creates a NumberSource wrapping the given Redis client.
func NewNumberSource(client *redis.Client) *NumberSource {
	return &NumberSource{client: client, now: time.Now}
}

// Next allocates the next number for a document type ("CTR", "INV", "RCP").
func (s *NumberSource) Next(ctx context.Context, docType string) (string, error) {
	year := s.now().UTC().Year()
	seq, err := s.client.Incr(ctx, fmt.Sprintf("docnum:%s:%d", docType, year)).Result()
	if err != nil {
		return "", fmt.Errorf("docnum incr: %w", err)
	}
	return fmt.Sprintf("%s-%d-%06d", docType, year, seq), nil
}
