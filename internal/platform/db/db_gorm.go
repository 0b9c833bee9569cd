// Package db はリモートストア（PostgreSQL）と端末ローカルストア（SQLite）の接続を提供します。
package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authadapters "yoga_storefront/internal/feature/auth/adapters"
	bookingadapters "yoga_storefront/internal/feature/booking/adapters"
	catalogadapters "yoga_storefront/internal/feature/catalog/adapters"
)

// retryInterval は接続リトライの間隔です。
var retryInterval = 3 * time.Second

// Config はリモートストアの接続設定です。
type Config struct {
	User          string
	Password      string
	Name          string
	Host          string
	Port          string
	SSLMode       string
	RunMigrations bool
}

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	return Config{
		User:          os.Getenv("DB_USER"),
		Password:      os.Getenv("DB_PASSWORD"),
		Name:          os.Getenv("DB_NAME"),
		Host:          getEnv("DB_HOST", "localhost"),
		Port:          getEnv("DB_PORT", "5432"),
		SSLMode:       getEnv("DB_SSLMODE", "disable"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}
}

// BuildDSN はPostgreSQL用のDSN文字列を生成します。
func BuildDSN(cfg Config) string {
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, sslmode)
}

// Opener はDSNからgorm.DBを開く関数です。テストで差し替えられます。
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry はtimeoutに達するまでretryInterval間隔で接続を試みます。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}

func openPostgres(dsn string) (*gorm.DB, error) {
	// 一意制約違反を gorm.ErrDuplicatedKey に変換する
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// OpenDB はリモートストアに接続し、RunMigrationsが有効ならスキーマを移行します。
func OpenDB(ctx context.Context, cfg Config) (*gorm.DB, error) {
	db, err := ConnectWithRetry(BuildDSN(cfg), 60*time.Second, openPostgres)
	if err != nil {
		return nil, err
	}
	if cfg.RunMigrations {
		if err := Migrate(ctx, db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate はリモートストアのテーブルを作成・更新し、旧形式の予約を変換します。
func Migrate(ctx context.Context, db *gorm.DB) error {
	// マイグレーション（User, Class, Instance, Booking）
	if err := db.WithContext(ctx).AutoMigrate(
		&authadapters.UserModel{},
		&catalogadapters.ClassModel{},
		&catalogadapters.ClassInstanceModel{},
		&bookingadapters.BookingModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	n, err := MigrateBookings(ctx, db)
	if err != nil {
		return err
	}
	if n > 0 {
		slog.Info("legacy bookings migrated", "rows", n)
	}
	return nil
}

// OpenLocalDB は端末ローカルのSQLiteファイルを開き、キー・バリューテーブルを用意します。
// pathに":memory:"を渡すとメモリ上に作成されます。
func OpenLocalDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open local db %q: %w", path, err)
	}
	if err := db.AutoMigrate(&authadapters.LocalKVModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate local db: %w", err)
	}
	return db, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
