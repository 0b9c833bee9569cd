package adapters

import (
	"time"

	"yoga_storefront/internal/feature/booking/domain/entity"
)

// BookingModel is the GORM model for the `bookings` collection.
// ClassID is nullable because version 1 rows only carried class_instance_id.
// BookingDate is assigned by the database on insert.
type BookingModel struct {
	ID              string    `gorm:"primaryKey;size:36"`
	Email           string    `gorm:"size:255;not null;index:idx_bookings_email"`
	ClassID         *int64    `gorm:"index:idx_bookings_class_id"`
	ClassInstanceID *int64
	Type            string    `gorm:"size:50"`
	Day             string    `gorm:"size:20"`
	Price           float64   `gorm:"not null"`
	Teacher         string    `gorm:"size:100"`
	Date            string    `gorm:"size:20"`
	BookingDate     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_bookings_booking_date"`
	SchemaVersion   int       `gorm:"not null;default:1"`
}

// TableName returns the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}

// ToEntity converts the GORM model to a domain booking.
func (m *BookingModel) ToEntity() entity.Booking {
	b := entity.Booking{
		ID:            m.ID,
		Email:         m.Email,
		Type:          m.Type,
		Day:           m.Day,
		Price:         m.Price,
		Teacher:       m.Teacher,
		Date:          m.Date,
		BookingDate:   m.BookingDate,
		SchemaVersion: m.SchemaVersion,
	}
	if m.ClassID != nil {
		b.ClassID = *m.ClassID
	}
	if m.ClassInstanceID != nil {
		id := *m.ClassInstanceID
		b.ClassInstanceID = &id
	}
	return b
}

// BookingModelFromEntity converts a domain booking to a GORM model.
func BookingModelFromEntity(b *entity.Booking) *BookingModel {
	classID := b.ClassID
	m := &BookingModel{
		ID:            b.ID,
		Email:         b.Email,
		ClassID:       &classID,
		Type:          b.Type,
		Day:           b.Day,
		Price:         b.Price,
		Teacher:       b.Teacher,
		Date:          b.Date,
		BookingDate:   b.BookingDate,
		SchemaVersion: b.SchemaVersion,
	}
	if b.ClassInstanceID != nil {
		id := *b.ClassInstanceID
		m.ClassInstanceID = &id
	}
	return m
}
