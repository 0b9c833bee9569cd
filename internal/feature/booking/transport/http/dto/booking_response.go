// Package dto はbookingフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"yoga_storefront/internal/feature/booking/domain/entity"
	"yoga_storefront/internal/shared/notice"
)

// BookingRes は予約1件分のレスポンスDTOです。
type BookingRes struct {
	ID              string  `json:"id"`
	Email           string  `json:"email"`
	ClassID         int64   `json:"classId"`
	ClassInstanceID *int64  `json:"classInstanceId,omitempty"`
	Type            string  `json:"type"`
	Day             string  `json:"day"`
	Price           float64 `json:"price"`
	Teacher         string  `json:"teacher,omitempty"`
	Date            string  `json:"date,omitempty"`
	BookingDate     string  `json:"bookingDate"` // RFC3339 (UTC)
}

// BookingListRes は GET /bookings のレスポンスです。
type BookingListRes struct {
	Email    string       `json:"email"`
	Bookings []BookingRes `json:"bookings"`
}

// CheckoutRes は POST /checkout 成功時のレスポンスです。
// Emailは続けて表示する予約一覧の対象ユーザーです。
type CheckoutRes struct {
	Email    string        `json:"email"`
	Bookings []BookingRes  `json:"bookings"`
	Notice   notice.Notice `json:"notice"`
}

// CheckoutFailedRes は途中で失敗したチェックアウトのレスポンスです。
type CheckoutFailedRes struct {
	Success bool          `json:"success"`
	Written int           `json:"written"`
	Total   int           `json:"total"`
	Notice  notice.Notice `json:"notice"`
}

// NewBookingRes converts a booking to its response form.
func NewBookingRes(b entity.Booking) BookingRes {
	return BookingRes{
		ID:              b.ID,
		Email:           b.Email,
		ClassID:         b.ClassID,
		ClassInstanceID: b.ClassInstanceID,
		Type:            b.Type,
		Day:             b.Day,
		Price:           b.Price,
		Teacher:         b.Teacher,
		Date:            b.Date,
		BookingDate:     b.BookingDate.UTC().Format(time.RFC3339),
	}
}

// NewBookingResList converts bookings preserving order.
func NewBookingResList(bookings []entity.Booking) []BookingRes {
	out := make([]BookingRes, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, NewBookingRes(b))
	}
	return out
}
