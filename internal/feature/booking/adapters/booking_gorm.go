// Package adapters provides the GORM implementation of the booking repository.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yoga_storefront/internal/feature/booking/domain/entity"
	"yoga_storefront/internal/feature/booking/usecase"
)

type bookingGorm struct {
	db *gorm.DB
}

// bookingGormがBookingRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.BookingRepository = (*bookingGorm)(nil)

// NewBookingRepository creates a booking repository backed by gorm.
func NewBookingRepository(db *gorm.DB) *bookingGorm {
	return &bookingGorm{db: db}
}

// Add inserts a booking. An empty ID is replaced by a new UUID.
// booking_date comes from the database clock; any value in b is ignored.
// The ID and the stored booking date are written back to b.
func (r *bookingGorm) Add(ctx context.Context, b *entity.Booking) error {
	if b == nil {
		return errors.New("booking is nil")
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.SchemaVersion == 0 {
		b.SchemaVersion = entity.SchemaVersion
	}

	db := r.db.WithContext(ctx)
	if err := db.Omit("BookingDate").Create(BookingModelFromEntity(b)).Error; err != nil {
		return err
	}

	// サーバ側で採番された予約日時を読み戻す
	var stored BookingModel
	if err := db.Select("booking_date").Where("id = ?", b.ID).Take(&stored).Error; err != nil {
		return fmt.Errorf("failed to read booking date: %w", err)
	}
	b.BookingDate = stored.BookingDate.UTC()
	return nil
}

// ListByEmail returns the bookings of email, newest first.
func (r *bookingGorm) ListByEmail(ctx context.Context, email string) ([]entity.Booking, error) {
	var rows []BookingModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("booking_date DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Booking, len(rows))
	for i := range rows {
		out[i] = rows[i].ToEntity()
	}
	return out, nil
}
