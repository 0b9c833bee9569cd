package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yoga_storefront/internal/feature/auth/usecase"
)

// LocalKVModel is the GORM model for the device-local key/value table.
type LocalKVModel struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (LocalKVModel) TableName() string {
	return "local_kv"
}

// localKVSQLite is a LocalStorage backed by a SQLite file on the device.
type localKVSQLite struct {
	db *gorm.DB
}

var _ usecase.LocalStorage = (*localKVSQLite)(nil)

// NewLocalKVSQLite creates a LocalStorage over db. The local_kv table must already exist.
func NewLocalKVSQLite(db *gorm.DB) *localKVSQLite {
	return &localKVSQLite{db: db}
}

// Get returns the value stored under key. ok is false when the key is absent.
func (r *localKVSQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var m LocalKVModel
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return m.Value, true, nil
}

// Set inserts or replaces the value for key.
func (r *localKVSQLite) Set(ctx context.Context, key, value string) error {
	m := LocalKVModel{Key: key, Value: value, UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&m).Error
}

// Delete removes key. Deleting an absent key is not an error.
func (r *localKVSQLite) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("key = ?", key).Delete(&LocalKVModel{}).Error
}
