package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	apperrors "climate-repair/pkg/errors"
)

// CacheRepositoryInterface — кэш справочников поверх Redis.
// Справочники меняются только сидером, поэтому TTL щедрый.
type CacheRepositoryInterface interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

const (
	CacheKeyEquipmentTypes = "dict:equipment_types"
	CacheKeyStatuses       = "dict:statuses"

	DictionaryCacheTTL = 12 * time.Hour
)

type cacheRepository struct {
	client *redis.Client
}

func NewCacheRepository(client *redis.Client) CacheRepositoryInterface {
	return &cacheRepository{client: client}
}

func (r *cacheRepository) Get(ctx context.Context, key string, dest interface{}) error {
	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("чтение из кэша %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("декодирование кэша %q: %w", key, err)
	}
	return nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("кодирование кэша %q: %w", key, err)
	}
	if err := r.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("запись в кэш %q: %w", key, err)
	}
	return nil
}

func (r *cacheRepository) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("сброс кэша: %w", err)
	}
	return nil
}
