package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogadapters "yoga_storefront/internal/feature/catalog/adapters"
	"yoga_storefront/internal/feature/catalog/usecase"
	"yoga_storefront/internal/platform/cache"
)

// NewCatalogRepository creates the catalog repository wrapped with the Redis cache.
// A nil client disables caching.
func NewCatalogRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration) usecase.CatalogRepository {
	return cache.NewCachingCatalogRepository(rdb, ttl, catalogadapters.NewCatalogRepository(db), "catalog")
}
