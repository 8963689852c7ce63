package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ecobrands/internal/config"
	"ecobrands/internal/model"
)

// Redis implements BrandCache by storing the list as JSON with a TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

var _ BrandCache = (*Redis)(nil)

// NewRedisClient creates a Redis client from cfg and verifies the connection.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// NewRedis creates a Redis-backed brand cache.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context) ([]model.Brand, error) {
	data, err := r.client.Get(ctx, BrandsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("redis get brands: %w", err)
	}

	var brands []model.Brand
	if err := json.Unmarshal(data, &brands); err != nil {
		return nil, fmt.Errorf("unmarshal brands: %w", err)
	}
	return brands, nil
}

func (r *Redis) Set(ctx context.Context, brands []model.Brand) error {
	data, err := json.Marshal(brands)
	if err != nil {
		return fmt.Errorf("marshal brands: %w", err)
	}
	if err := r.client.Set(ctx, BrandsKey, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set brands: %w", err)
	}
	return nil
}

func (r *Redis) Invalidate(ctx context.Context) error {
	if err := r.client.Del(ctx, BrandsKey).Err(); err != nil {
		return fmt.Errorf("redis del brands: %w", err)
	}
	return nil
}
