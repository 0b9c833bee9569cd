// Package router はHTTPルーティングを構築します。
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "yoga_storefront/internal/feature/auth/transport/handler"
	bookinghandler "yoga_storefront/internal/feature/booking/transport/handler"
	carthandler "yoga_storefront/internal/feature/cart/transport/handler"
	cataloghandler "yoga_storefront/internal/feature/catalog/transport/handler"
	platformhandler "yoga_storefront/internal/platform/http/handler"
	"yoga_storefront/internal/platform/http/middleware"
)

// Handlers はルーターに登録するハンドラーの集合です。
type Handlers struct {
	Health  *platformhandler.HealthHandler
	Auth    *authhandler.AuthHandler
	Catalog *cataloghandler.CatalogHandler
	Cart    *carthandler.CartHandler
	Booking *bookinghandler.BookingHandler
}

// NewRouter はGinエンジンを生成し、すべてのルートを登録します。
// allowedOriginsが空の場合はCORSミドルウェアを追加しません。
func NewRouter(h Handlers, sessions middleware.SessionReader, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	if len(allowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// 認証不要
	// 導通確認用
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	// セッション状態（起動時の復元中かどうかを含む）
	r.GET("/session", h.Auth.Session)
	r.POST("/login", h.Auth.Login)
	r.POST("/register", h.Auth.Register)
	r.POST("/logout", h.Auth.Logout)

	// ログイン必須のルート
	auth := r.Group("/")
	auth.Use(middleware.SessionRequired(sessions))
	{
		auth.GET("/classes", h.Catalog.ListClasses)
		auth.POST("/classes/refresh", h.Catalog.Refresh)
		auth.POST("/classes/:id/toggle", h.Catalog.Toggle)

		auth.GET("/cart", h.Cart.Get)
		auth.DELETE("/cart", h.Cart.Clear)
		auth.DELETE("/cart/:classId", h.Cart.Remove)

		auth.POST("/checkout", h.Booking.Checkout)
		auth.GET("/bookings", h.Booking.List)
	}

	return r
}
