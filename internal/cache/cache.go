package cache

//go:generate mockgen -source=cache.go -destination=mocks/mock_rubric_cache.go -package=mocks RubricCache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/supermanager/interview-eval/internal/dto"
)

const (
	rubricKey     = "interview-eval:rubric"
	generationKey = "interview-eval:rubric:generation"
)

// Snapshot is the result of a cache read. Rubric is nil on a miss. Generation
// is the invalidation count the read observed; hand it back to Set.
type Snapshot struct {
	Rubric     *dto.RubricResponse
	Generation int64
}

// RubricCache holds the assembled rubric tree between mutations.
//
// A reader that misses loads the tree from the database and then calls Set
// with the generation from its Get. Invalidate bumps the generation, so a Set
// racing with a mutation committed after the load is dropped instead of
// caching a stale tree until the TTL expires. Errors are reserved for backend
// failures.
type RubricCache interface {
	Get(ctx context.Context) (Snapshot, error)
	Set(ctx context.Context, generation int64, rubric *dto.RubricResponse) (bool, error)
	Invalidate(ctx context.Context) error
}

// RedisRubricCache stores the rubric as one JSON value with a TTL, next to a
// generation counter.
type RedisRubricCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRubricCache(client *redis.Client, ttl time.Duration) *RedisRubricCache {
	return &RedisRubricCache{client: client, ttl: ttl}
}

func (c *RedisRubricCache) Get(ctx context.Context) (Snapshot, error) {
	vals, err := c.client.MGet(ctx, rubricKey, generationKey).Result()
	if err != nil {
		return Snapshot{}, err
	}
	var snap Snapshot
	if raw, ok := vals[1].(string); ok {
		if snap.Generation, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return Snapshot{}, fmt.Errorf("decode rubric generation: %w", err)
		}
	}
	raw, ok := vals[0].(string)
	if !ok {
		return snap, nil
	}
	var rubric dto.RubricResponse
	if err := json.Unmarshal([]byte(raw), &rubric); err != nil {
		return Snapshot{}, fmt.Errorf("decode cached rubric: %w", err)
	}
	snap.Rubric = &rubric
	return snap, nil
}

// Set stores rubric only if no invalidation happened since the Get that
// returned generation. It reports whether the value was stored.
func (c *RedisRubricCache) Set(ctx context.Context, generation int64, rubric *dto.RubricResponse) (bool, error) {
	raw, err := json.Marshal(rubric)
	if err != nil {
		return false, fmt.Errorf("encode rubric: %w", err)
	}

	stored := false
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, generationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, rubricKey, raw, c.ttl)
			return nil
		})
		if err == nil {
			stored = true
		}
		return err
	}, generationKey)
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	return stored, err
}

// Invalidate drops the cached rubric and bumps the generation in one
// transaction.
func (c *RedisRubricCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey)
		pipe.Del(ctx, rubricKey)
		return nil
	})
	return err
}

// NopRubricCache never hits. It is used when no Redis address is configured.
type NopRubricCache struct{}

func (NopRubricCache) Get(context.Context) (Snapshot, error) { return Snapshot{}, nil }
func (NopRubricCache) Set(context.Context, int64, *dto.RubricResponse) (bool, error) {
	return false, nil
}
func (NopRubricCache) Invalidate(context.Context) error { return nil }
