// Package handler はbookingフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"yoga_storefront/internal/feature/booking/domain/entity"
	"yoga_storefront/internal/feature/booking/transport/http/dto"
	"yoga_storefront/internal/feature/booking/usecase"
	"yoga_storefront/internal/platform/http/middleware"
	"yoga_storefront/internal/shared/notice"
)

// CheckoutUsecase はチェックアウトと予約一覧のユースケースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CheckoutUsecase interface {
	Submit(ctx context.Context) (*usecase.Result, error)
	ListBookings(ctx context.Context, email string) ([]entity.Booking, error)
}

// BookingHandler はチェックアウトと予約一覧のHTTPリクエストを処理します。
type BookingHandler struct {
	uc CheckoutUsecase
}

// NewBookingHandler はBookingHandlerの新しいインスタンスを生成します。
func NewBookingHandler(uc CheckoutUsecase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// Checkout はカートの内容を予約として送信します。
// - 未ログイン時は401
// - カートが空の場合は400
// - 途中で失敗した場合は502（書き込み済みの件数を含む）
// - 成功時は201
//
// POST /checkout
func (h *BookingHandler) Checkout(c *gin.Context) {
	res, err := h.uc.Submit(c.Request.Context())
	if err != nil {
		var coErr *usecase.CheckoutError
		switch {
		case errors.Is(err, usecase.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, notice.Failed(notice.Fail("User not authenticated")))
		case errors.Is(err, usecase.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, notice.Failed(notice.Info("Your cart is empty")))
		case errors.As(err, &coErr):
			c.JSON(http.StatusBadGateway, dto.CheckoutFailedRes{
				Written: coErr.Written,
				Total:   coErr.Total,
				Notice:  notice.Fail("Failed to submit booking"),
			})
		default:
			slog.Error("checkout failed", "error", err)
			c.JSON(http.StatusInternalServerError, notice.Failed(notice.Fail("Failed to submit booking")))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CheckoutRes{
		Email:    res.Email,
		Bookings: dto.NewBookingResList(res.Bookings),
		Notice:   notice.Success("Booking completed!"),
	})
}

// List はログイン中ユーザーの予約を新しい順に返します。
//
// GET /bookings
func (h *BookingHandler) List(c *gin.Context) {
	email := middleware.UserEmail(c)
	bookings, err := h.uc.ListBookings(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, usecase.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, notice.Failed(notice.Fail("User not authenticated")))
			return
		}
		c.JSON(http.StatusBadGateway, notice.Failed(notice.Fail("Failed to fetch bookings")))
		return
	}
	c.JSON(http.StatusOK, dto.BookingListRes{Email: email, Bookings: dto.NewBookingResList(bookings)})
}
