// Package config はアプリケーション全体の設定を環境変数から読み込みます。
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config はHTTPサーバーとユースケースの設定です。
// 接続先（DB、Redis）の設定はそれぞれのplatformパッケージが持ちます。
type Config struct {
	Port                  string
	CORSAllowedOrigins    []string
	SessionRestoreTimeout time.Duration
	LoginMaxAttempts      int
	LoginWindow           time.Duration
	LocalDBPath           string
	CatalogCacheTTL       time.Duration
	BcryptCost            int
}

// LoadConfig は環境変数から設定を読み込みます。未設定・不正な値はデフォルト値になります。
func LoadConfig() Config {
	return Config{
		Port:                  getEnv("PORT", "8080"),
		CORSAllowedOrigins:    splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		SessionRestoreTimeout: getSeconds("SESSION_RESTORE_TIMEOUT_SECONDS", 5*time.Second),
		LoginMaxAttempts:      getInt("LOGIN_MAX_ATTEMPTS", 5),
		LoginWindow:           getSeconds("LOGIN_WINDOW_SECONDS", 15*time.Minute),
		LocalDBPath:           getEnv("LOCAL_DB_PATH", "./device.db"),
		CatalogCacheTTL:       getSeconds("CATALOG_CACHE_TTL_SECONDS", 5*time.Minute),
		BcryptCost:            getInt("BCRYPT_COST", 0),
	}
}

// Addr returns the listen address for gin.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment; using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func getSeconds(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid duration in environment; using default", "key", key, "value", v, "default", def)
		return def
	}
	return time.Duration(n) * time.Second
}

// splitList はカンマ区切りの値を空要素を除いて分割します。
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
