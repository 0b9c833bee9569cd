// Package entity defines the domain models for the booking feature.
package entity

import "time"

// SchemaVersion is the version stamped on every booking written by this service.
// Version 1 rows carry only class_instance_id and are upgraded by db.MigrateBookings.
const SchemaVersion = 2

// Booking is one booked class for one user. Class fields are a snapshot taken from
// the cart at checkout time; Teacher and Date come from the class's first instance.
type Booking struct {
	ID              string
	Email           string
	ClassID         int64
	ClassInstanceID *int64
	Type            string
	Day             string
	Price           float64
	Teacher         string
	Date            string
	BookingDate     time.Time
	SchemaVersion   int
}
