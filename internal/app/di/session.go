// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "yoga_storefront/internal/feature/auth/adapters"
	"yoga_storefront/internal/feature/auth/usecase"
	"yoga_storefront/internal/platform/session"
)

// NewLocalStorage creates the device storage used to persist the session.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the local SQLite file.
func NewLocalStorage(rdb *redis.Client, localDB *gorm.DB) usecase.LocalStorage {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "device")
	}
	return authadapters.NewLocalKVSQLite(localDB)
}
