package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	authadapters "yoga_storefront/internal/feature/auth/adapters"
)

// TestBuildDSN はPostgreSQL用のDSN文字列が正しく生成されることを検証します。
func TestBuildDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      Config
		expected string
	}{
		{
			name: "explicit sslmode",
			cfg: Config{
				User: "testuser", Password: "testpass", Name: "testdb",
				Host: "localhost", Port: "5432", SSLMode: "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require TimeZone=UTC",
		},
		{
			name: "empty sslmode defaults to disable",
			cfg: Config{
				User: "testuser", Password: "testpass", Name: "testdb",
				Host: "db", Port: "6543",
			},
			expected: "host=db port=6543 user=testuser password=testpass dbname=testdb sslmode=disable TimeZone=UTC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if dsn := BuildDSN(tt.cfg); dsn != tt.expected {
				t.Errorf("expected DSN %q, got %q", tt.expected, dsn)
			}
		})
	}
}

// TestConnectWithRetry_SuccessOnFirstTry は初回接続成功時にリトライせずDBを返すことを検証します。
func TestConnectWithRetry_SuccessOnFirstTry(t *testing.T) {
	t.Parallel()

	mockDB := &gorm.DB{}
	opener := func(dsn string) (*gorm.DB, error) {
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", 5*time.Second, opener)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db != mockDB {
		t.Error("expected mock DB to be returned")
	}
}

// TestConnectWithRetry_RetriesOnFailure は接続失敗時にリトライして最終的に成功することを検証します。
func TestConnectWithRetry_RetriesOnFailure(t *testing.T) {
	// retryInterval を書き換えるため並列実行しない
	orig := retryInterval
	retryInterval = 10 * time.Millisecond
	t.Cleanup(func() { retryInterval = orig })

	mockDB := &gorm.DB{}
	attemptCount := 0

	opener := func(dsn string) (*gorm.DB, error) {
		attemptCount++
		if attemptCount < 3 {
			return nil, errors.New("connection refused")
		}
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", 5*time.Second, opener)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db != mockDB {
		t.Error("expected mock DB to be returned")
	}
	if attemptCount != 3 {
		t.Errorf("expected 3 attempts, got %d", attemptCount)
	}
}

// TestConnectWithRetry_TimeoutAfterRetries はタイムアウト後にエラーが返されることを検証します。
func TestConnectWithRetry_TimeoutAfterRetries(t *testing.T) {
	orig := retryInterval
	retryInterval = 10 * time.Millisecond
	t.Cleanup(func() { retryInterval = orig })

	attemptCount := 0
	cause := errors.New("connection refused")
	opener := func(dsn string) (*gorm.DB, error) {
		attemptCount++
		return nil, cause
	}

	_, err := ConnectWithRetry("test-dsn", 50*time.Millisecond, opener)

	if err == nil {
		t.Fatal("expected error after timeout, got nil")
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
	if attemptCount < 2 {
		t.Errorf("expected retries before giving up, got %d attempts", attemptCount)
	}
}

// TestLoadConfigFromEnv は環境変数からデータベース設定が正しく読み込まれることを検証します。
func TestLoadConfigFromEnv(t *testing.T) {
	// Note: Not running in parallel since we're modifying environment variables
	t.Setenv("DB_USER", "envuser")
	t.Setenv("DB_PASSWORD", "envpass")
	t.Setenv("DB_NAME", "envdb")
	t.Setenv("DB_HOST", "envhost")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_SSLMODE", "verify-full")
	t.Setenv("RUN_MIGRATIONS", "true")

	cfg := LoadConfigFromEnv()

	if cfg.User != "envuser" {
		t.Errorf("expected User 'envuser', got %q", cfg.User)
	}
	if cfg.Password != "envpass" {
		t.Errorf("expected Password 'envpass', got %q", cfg.Password)
	}
	if cfg.Name != "envdb" {
		t.Errorf("expected Name 'envdb', got %q", cfg.Name)
	}
	if cfg.Host != "envhost" {
		t.Errorf("expected Host 'envhost', got %q", cfg.Host)
	}
	if cfg.Port != "5433" {
		t.Errorf("expected Port '5433', got %q", cfg.Port)
	}
	if cfg.SSLMode != "verify-full" {
		t.Errorf("expected SSLMode 'verify-full', got %q", cfg.SSLMode)
	}
	if !cfg.RunMigrations {
		t.Error("expected RunMigrations to be true")
	}
}

// TestLoadConfigFromEnv_Defaults は未設定時のデフォルト値を検証します。
func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_SSLMODE", "")
	t.Setenv("RUN_MIGRATIONS", "")

	cfg := LoadConfigFromEnv()

	if cfg.Host != "localhost" || cfg.Port != "5432" || cfg.SSLMode != "disable" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.RunMigrations {
		t.Error("expected RunMigrations to be false")
	}
}

// TestOpenLocalDB はローカルDBがキー・バリューテーブル付きで開けることを検証します。
func TestOpenLocalDB(t *testing.T) {
	db, err := OpenLocalDB(":memory:")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !db.Migrator().HasTable(&authadapters.LocalKVModel{}) {
		t.Error("expected local_kv table to exist")
	}

	kv := authadapters.NewLocalKVSQLite(db)
	if err := kv.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
}
