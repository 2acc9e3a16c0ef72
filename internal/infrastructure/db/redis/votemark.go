package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ankit1439/mess-portal/internal/core/domain"
)

// markTTL keeps vote marks around long past the weekly menu cycle; the unique
// index in the vote store remains the source of truth after expiry.
const markTTL = 8 * 24 * time.Hour

// VoteMarker provides fast advisory duplicate-vote checks backed by Redis.
// Key format: vote:<day>:<meal>:<identity>
type VoteMarker struct {
	client *redis.Client
}

// NewVoteMarker creates a VoteMarker wrapping the given Redis client.
func NewVoteMarker(client *redis.Client) *VoteMarker {
	return &VoteMarker{client: client}
}

// IsMarked reports whether this identity has already voted for the slot.
func (m *VoteMarker) IsMarked(ctx context.Context, day domain.Day, meal domain.Meal, identity string) (bool, error) {
	n, err := m.client.Exists(ctx, m.key(day, meal, identity)).Result()
	if err != nil {
		return false, fmt.Errorf("vote mark check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this identity has voted for the slot (expires after markTTL).
func (m *VoteMarker) Mark(ctx context.Context, day domain.Day, meal domain.Meal, identity string) error {
	return m.client.Set(ctx, m.key(day, meal, identity), "1", markTTL).Err()
}

func (m *VoteMarker) key(day domain.Day, meal domain.Meal, identity string) string {
	return fmt.Sprintf("vote:%s:%s:%s", day, meal, identity)
}
