package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"TradePulse/internal/domain/models"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "price:"

// RedisCache keeps snapshots in Redis so several instances can share one
// freshness window. TTL expiry is delegated to Redis itself.
type RedisCache struct {
	cli *redis.Client
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisCache(cfg RedisConfig) *RedisCache {
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	return &RedisCache{cli: rdb}
}

func (r *RedisCache) Get(ctx context.Context, symbol string) (models.PriceSnapshot, bool, error) {
	b, err := r.cli.Get(ctx, redisKeyPrefix+symbol).Bytes()
	if err != nil {
		if err == redis.Nil {
			return models.PriceSnapshot{}, false, nil
		}
		return models.PriceSnapshot{}, false, fmt.Errorf("redis get: %w", err)
	}
	var snap models.PriceSnapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return models.PriceSnapshot{}, false, fmt.Errorf("redis decode: %w", err)
	}
	return snap, true, nil
}

func (r *RedisCache) Set(ctx context.Context, symbol string, snap models.PriceSnapshot, ttl time.Duration) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("redis encode: %w", err)
	}
	if err := r.cli.Set(ctx, redisKeyPrefix+symbol, b, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *RedisCache) Clear(ctx context.Context) error {
	keys, err := r.keys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.cli.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (r *RedisCache) Stats(ctx context.Context) (models.CacheStats, error) {
	keys, err := r.keys(ctx)
	if err != nil {
		return models.CacheStats{}, err
	}
	symbols := make([]string, 0, len(keys))
	for _, k := range keys {
		symbols = append(symbols, strings.TrimPrefix(k, redisKeyPrefix))
	}
	sort.Strings(symbols)
	return models.CacheStats{Entries: len(symbols), Symbols: symbols}, nil
}

func (r *RedisCache) keys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := r.cli.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	return keys, nil
}
