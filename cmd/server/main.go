package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"yoga_storefront/internal/app/config"
	"yoga_storefront/internal/app/di"
	"yoga_storefront/internal/app/router"
	authadapters "yoga_storefront/internal/feature/auth/adapters"
	authhandler "yoga_storefront/internal/feature/auth/transport/handler"
	authusecase "yoga_storefront/internal/feature/auth/usecase"
	bookingadapters "yoga_storefront/internal/feature/booking/adapters"
	bookinghandler "yoga_storefront/internal/feature/booking/transport/handler"
	bookingusecase "yoga_storefront/internal/feature/booking/usecase"
	carthandler "yoga_storefront/internal/feature/cart/transport/handler"
	cartusecase "yoga_storefront/internal/feature/cart/usecase"
	cataloghandler "yoga_storefront/internal/feature/catalog/transport/handler"
	catalogusecase "yoga_storefront/internal/feature/catalog/usecase"
	infradb "yoga_storefront/internal/platform/db"
	platformhandler "yoga_storefront/internal/platform/http/handler"
	infraredis "yoga_storefront/internal/platform/redis"
	"yoga_storefront/internal/shared/ratelimiter"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}
	cfg := config.LoadConfig()
	ctx := context.Background()

	// リモートストア
	db, err := infradb.OpenDB(ctx, infradb.LoadConfigFromEnv())
	if err != nil {
		log.Fatalf("failed to open remote store: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}
	defer func() { _ = sqlDB.Close() }()

	// 端末ローカルストア
	localDB, err := infradb.OpenLocalDB(cfg.LocalDBPath)
	if err != nil {
		log.Fatalf("failed to open local store: %v", err)
	}

	// Redis（任意）
	var rdb *redisv9.Client
	if rcfg := infraredis.LoadConfig(); rcfg.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, rcfg); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	credentials := authadapters.NewCredentialStore(db)
	storage := di.NewLocalStorage(rdb, localDB)
	catalogRepo := di.NewCatalogRepository(db, rdb, cfg.CatalogCacheTTL)
	bookingRepo := bookingadapters.NewBookingRepository(db)

	// Usecase
	sessions := authusecase.NewSessionManager(
		credentials,
		storage,
		authusecase.NewBcryptHasher(cfg.BcryptCost),
		ratelimiter.NewRateLimiter(cfg.LoginMaxAttempts, cfg.LoginWindow),
	)
	cart := cartusecase.NewCartManager()
	browser := catalogusecase.NewCatalogBrowser(catalogRepo, cart)
	checkout := bookingusecase.NewCheckout(sessions, cart, bookingRepo)

	// 永続化されたセッションの復元
	restoreCtx, cancel := context.WithTimeout(ctx, cfg.SessionRestoreTimeout)
	if u := sessions.RestoreSession(restoreCtx); u != nil {
		slog.Info("signed in from previous session", "email", u.Email)
	}
	cancel()

	// Handler
	checks := map[string]platformhandler.Checker{"redis": nil}
	checks["db"] = func(ctx context.Context) error { return sqlDB.PingContext(ctx) }
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	handlers := router.Handlers{
		Health:  platformhandler.NewHealthHandler(checks),
		Auth:    authhandler.NewAuthHandler(sessions),
		Catalog: cataloghandler.NewCatalogHandler(browser),
		Cart:    carthandler.NewCartHandler(cart),
		Booking: bookinghandler.NewBookingHandler(checkout),
	}

	// ルータ生成
	r := router.NewRouter(handlers, sessions, cfg.CORSAllowedOrigins)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
