package repository

import (
	"context"
	"errors"
	"fmt"

	repo "storefront/internal/repository"

	"github.com/redis/go-redis/v9"
)

const redisSlotPrefix = "storefront:slot:"

// redis に保存するスロット（期限なし）
type RedisSlotRepository struct {
	client *redis.Client
}

var _ repo.SlotRepository = (*RedisSlotRepository)(nil)

// DI
func NewRedisSlotRepository(client *redis.Client) *RedisSlotRepository {
	return &RedisSlotRepository{client: client}
}

func (r *RedisSlotRepository) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, slotKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", repo.ErrSlotNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return v, nil
}

func (r *RedisSlotRepository) Set(ctx context.Context, key string, value string) error {
	if err := r.client.Set(ctx, slotKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisSlotRepository) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, slotKey(key)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func slotKey(key string) string {
	return redisSlotPrefix + key
}
