package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"indexprice/internal/domain/model"
)

const DefaultHistory = 50

// RedisRunStore keeps ingestion run results in one sorted set per ticker,
// scored by finish time in milliseconds.
type RedisRunStore struct {
	client  *redis.Client
	ttl     time.Duration
	history int64
}

func NewRedisRunStore(ctx context.Context, url string, ttl time.Duration, history int) (*RedisRunStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	if history <= 0 {
		history = DefaultHistory
	}
	return &RedisRunStore{
		client:  client,
		ttl:     ttl,
		history: int64(history),
	}, nil
}

func runsKey(ticker string) string {
	return fmt.Sprintf("ingest:runs:%s", ticker)
}

func (a *RedisRunStore) Ping(ctx context.Context) error {
	return a.client.Ping(ctx).Err()
}

func (a *RedisRunStore) SaveRun(ctx context.Context, result model.RunResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal run result: %w", err)
	}

	key := runsKey(result.Ticker)
	finished := result.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}

	_, err = a.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(finished.UnixMilli()), Member: data})
		if a.ttl > 0 {
			cutoff := time.Now().Add(-a.ttl).UnixMilli()
			pipe.ZRemRangeByScore(ctx, key, "-inf", "("+strconv.FormatInt(cutoff, 10))
			pipe.Expire(ctx, key, a.ttl)
		}
		pipe.ZRemRangeByRank(ctx, key, 0, -(a.history + 1))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save run result: %w", err)
	}
	return nil
}

func (a *RedisRunStore) RecentRuns(ctx context.Context, ticker string, limit int) ([]model.RunResult, error) {
	if limit <= 0 {
		return []model.RunResult{}, nil
	}

	items, err := a.client.ZRevRange(ctx, runsKey(ticker), 0, int64(limit-1)).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to read run results: %w", err)
	}

	out := make([]model.RunResult, 0, len(items))
	for _, item := range items {
		var r model.RunResult
		if err := json.Unmarshal([]byte(item), &r); err != nil {
			return nil, fmt.Errorf("failed to unmarshal run result: %w", err)
		}
		out = append(out, r)
	}
	return out, nil
}

func (a *RedisRunStore) Close() error {
	return a.client.Close()
}
