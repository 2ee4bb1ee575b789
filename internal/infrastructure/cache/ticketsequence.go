package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	"github.com/sitedesk/sitedesk/internal/shared/constants"
)

// sequenceKeyTTL keeps a day's counter around long enough for requests that
// straddle midnight UTC.
const sequenceKeyTTL = 48 * time.Hour

// RedisSequenceAllocator allocates ticket sequences with INCR on one key per
// UTC day. Allocation is not rolled back with the database transaction, so a
// failed submission leaves a gap in the day's numbers.
type RedisSequenceAllocator struct {
	client *redis.Client
}

// NewRedisSequenceAllocator creates a new RedisSequenceAllocator instance
func NewRedisSequenceAllocator(client *redis.Client) complaint.SequenceAllocator {
	return &RedisSequenceAllocator{client: client}
}

// buildKey builds the Redis key for a day counter
// Format: sitedesk:ticket_seq:{YYYYMMDD}
func (a *RedisSequenceAllocator) buildKey(dayKey string) string {
	return constants.RedisKeyTicketSequence + dayKey
}

func (a *RedisSequenceAllocator) Next(ctx context.Context, dayKey string) (int64, error) {
	key := a.buildKey(dayKey)

	seq, err := a.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment ticket sequence: %w", err)
	}

	if seq == 1 {
		if err := a.client.Expire(ctx, key, sequenceKeyTTL).Err(); err != nil {
			return 0, fmt.Errorf("failed to set ticket sequence expiry: %w", err)
		}
	}

	return seq, nil
}
