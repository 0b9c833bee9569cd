// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"yoga_storefront/internal/feature/catalog/domain/entity"
	"yoga_storefront/internal/feature/catalog/usecase"
)

// CachingCatalogRepository decorates a CatalogRepository with Redis read-through caching.
// A nil client bypasses the cache entirely; cache errors never fail a read.
type CachingCatalogRepository struct {
	inner     usecase.CatalogRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var (
	_ usecase.CatalogRepository = (*CachingCatalogRepository)(nil)
	_ usecase.CacheInvalidator  = (*CachingCatalogRepository)(nil)
)

// NewCachingCatalogRepository decorates a CatalogRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "catalog".
func NewCachingCatalogRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CatalogRepository, namespace string) *CachingCatalogRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "catalog"
	}
	return &CachingCatalogRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListClasses returns the class list, checking the cache first.
func (c *CachingCatalogRepository) ListClasses(ctx context.Context) ([]entity.YogaClass, error) {
	return readThrough(ctx, c, c.classesKey(), func() ([]entity.YogaClass, error) {
		return c.inner.ListClasses(ctx)
	})
}

// ListInstances returns the instances of a class, checking the cache first.
func (c *CachingCatalogRepository) ListInstances(ctx context.Context, classID int64) ([]entity.ClassInstance, error) {
	return readThrough(ctx, c, c.instancesKey(classID), func() ([]entity.ClassInstance, error) {
		return c.inner.ListInstances(ctx, classID)
	})
}

// Invalidate drops every cached catalog entry under the namespace.
func (c *CachingCatalogRepository) Invalidate(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.deleteByPattern(ctx, c.namespace+":*")
}

func readThrough[T any](ctx context.Context, c *CachingCatalogRepository, key string, load func() ([]T, error)) ([]T, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load()
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []T
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// 破損したキャッシュは削除
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the store
	out, err := load()
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

func (c *CachingCatalogRepository) classesKey() string {
	return c.namespace + ":classes"
}

func (c *CachingCatalogRepository) instancesKey(classID int64) string {
	return fmt.Sprintf("%s:instances:%d", c.namespace, classID)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingCatalogRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
