package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/capi-relay/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "capi-relay:ratelimit:"

// RedisStore keeps each key's window as a sorted set scored by request time
// in milliseconds. All commands for one decision run in a MULTI/EXEC
// transaction.
type RedisStore struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

// NewRedisStore returns a RedisStore using rdb.
func NewRedisStore(rdb *redis.Client, limit int, window time.Duration) (*RedisStore, error) {
	if limit <= 0 || window <= 0 {
		return nil, ErrInvalidLimits
	}
	return &RedisStore{rdb: rdb, limit: limit, window: window}, nil
}

// NewRedisClient parses url (redis://[:password@]host:port/db) and verifies
// the server answers PING.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// Allow implements [Store].
func (s *RedisStore) Allow(ctx context.Context, key string, now time.Time) (models.RateLimitDecision, error) {
	redisKey := redisKeyPrefix + key
	nowMs := now.UnixMilli()
	cutoff := nowMs - s.window.Milliseconds()
	member := strconv.FormatInt(nowMs, 10) + ":" + uuid.NewString()

	var card *redis.IntCmd
	var oldest *redis.ZSliceCmd

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, redisKey, "-inf", strconv.FormatInt(cutoff, 10))
		pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(nowMs), Member: member})
		card = pipe.ZCard(ctx, redisKey)
		oldest = pipe.ZRangeWithScores(ctx, redisKey, 0, 0)
		pipe.PExpire(ctx, redisKey, s.window)
		return nil
	})
	if err != nil {
		return models.RateLimitDecision{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	count := int(card.Val())
	decision := models.RateLimitDecision{Limit: s.limit, ResetAt: now.Add(s.window)}
	if z := oldest.Val(); len(z) > 0 {
		decision.ResetAt = time.UnixMilli(int64(z[0].Score)).Add(s.window)
	}

	if count > s.limit {
		if err := s.rdb.ZRem(ctx, redisKey, member).Err(); err != nil {
			return models.RateLimitDecision{}, fmt.Errorf("%w: %v", ErrStore, err)
		}
		return decision, nil
	}

	decision.Allowed = true
	decision.Remaining = s.limit - count
	return decision, nil
}
