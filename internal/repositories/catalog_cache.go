package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-bookmarker/internal/logger"
)

const catalogKeyPrefix = "catalog:"

// CatalogCacheRepository caches catalog gateway responses in Redis as JSON.
type CatalogCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of cached entries
}

// NewCatalogCacheRepository creates a cache whose entries expire after expiration.
func NewCatalogCacheRepository(client *redis.Client, expiration time.Duration) *CatalogCacheRepository {
	return &CatalogCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get decodes the cached value for key into dst. It reports false on a miss.
func (r *CatalogCacheRepository) Get(ctx context.Context, key string, dst any) (bool, error) {
	key = catalogKeyPrefix + key

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("catalog cache miss", "key", key)
		return false, nil
	}
	if err != nil {
		logger.Log.Infow("catalog cache get", "key", key, "error", err)
		return false, err
	}

	if err := json.Unmarshal(val, dst); err != nil {
		logger.Log.Infow("catalog cache decode", "key", key, "size", len(val), "error", err)
		return false, err
	}

	logger.Log.Debugw("catalog cache hit", "key", key, "size", len(val))
	return true, nil
}

// Set stores v under key with the configured expiration.
func (r *CatalogCacheRepository) Set(ctx context.Context, key string, v any) error {
	key = catalogKeyPrefix + key

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Infow("catalog cache set", "key", key, "size", len(data), "ttl", r.exp, "error", err)

	return err
}
