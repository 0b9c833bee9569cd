// Package usecase implements checkout and the bookings view.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	authentity "yoga_storefront/internal/feature/auth/domain/entity"
	"yoga_storefront/internal/feature/booking/domain/entity"
	cartentity "yoga_storefront/internal/feature/cart/domain/entity"
	"yoga_storefront/internal/shared/apperr"
)

// SessionReader exposes the signed-in user.
type SessionReader interface {
	CurrentUser() *authentity.User
}

// CartStore is the subset of the cart manager checkout needs.
type CartStore interface {
	Items() []cartentity.CartItem
	Remove(classID int64) bool
}

// BookingRepository abstracts the remote `bookings` collection.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type BookingRepository interface {
	// Add writes one booking. The repository assigns the ID and the booking date
	// and stores them back into b.
	Add(ctx context.Context, b *entity.Booking) error
	// ListByEmail returns the bookings made by email.
	ListByEmail(ctx context.Context, email string) ([]entity.Booking, error)
}

// CheckoutError reports a checkout that failed part-way.
// Written bookings stay in the store; the cart is left untouched.
type CheckoutError struct {
	Written int
	Total   int
	Err     error
}

func (e *CheckoutError) Error() string {
	return fmt.Sprintf("checkout failed after %d of %d bookings: %v", e.Written, e.Total, e.Err)
}

func (e *CheckoutError) Unwrap() error { return e.Err }

// Result is returned by a successful checkout. Email identifies whose bookings to show next.
type Result struct {
	Email    string
	Bookings []entity.Booking
}

// Checkout turns the cart into bookings for the signed-in user.
type Checkout struct {
	session SessionReader
	cart    CartStore
	repo    BookingRepository
}

// NewCheckout creates a Checkout.
func NewCheckout(session SessionReader, cart CartStore, repo BookingRepository) *Checkout {
	return &Checkout{session: session, cart: cart, repo: repo}
}

// Submit writes one booking per cart item, in cart order, one at a time.
// On success the booked classes are removed from the cart; items added while
// the checkout was running stay in the cart. On failure at item N the first N-1 bookings remain
// written, the cart keeps every item, and a *CheckoutError is returned; submitting
// again writes every item again.
//
// Once started, a checkout is not cancelled by ctx.
func (c *Checkout) Submit(ctx context.Context) (*Result, error) {
	user := c.session.CurrentUser()
	if user == nil || user.Email == "" {
		return nil, ErrUnauthenticated
	}
	items := c.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	ctx = context.WithoutCancel(ctx)
	written := make([]entity.Booking, 0, len(items))
	for i, item := range items {
		b := newBooking(user.Email, item)
		if err := c.repo.Add(ctx, &b); err != nil {
			slog.Error("booking write failed",
				"error", err, "email", user.Email, "class_id", item.ClassID, "written", i, "total", len(items))
			return nil, &CheckoutError{Written: i, Total: len(items), Err: apperr.Remote("add booking", err)}
		}
		written = append(written, b)
	}

	for _, item := range items {
		c.cart.Remove(item.ClassID)
	}
	slog.Info("checkout completed", "email", user.Email, "bookings", len(written))
	return &Result{Email: user.Email, Bookings: written}, nil
}

// ListBookings returns the bookings of email, newest first.
func (c *Checkout) ListBookings(ctx context.Context, email string) ([]entity.Booking, error) {
	if email == "" {
		return nil, ErrUnauthenticated
	}
	out, err := c.repo.ListByEmail(ctx, email)
	if err != nil {
		slog.Error("failed to fetch bookings", "error", err, "email", email)
		return nil, apperr.Remote("list bookings", err)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].BookingDate.After(out[j].BookingDate)
	})
	return out, nil
}

func newBooking(email string, item cartentity.CartItem) entity.Booking {
	b := entity.Booking{
		Email:         email,
		ClassID:       item.ClassID,
		Type:          item.ClassData.Type,
		Day:           item.ClassData.Day,
		Price:         item.ClassData.Price,
		SchemaVersion: entity.SchemaVersion,
	}
	if inst, ok := item.ClassData.FirstInstance(); ok {
		id := inst.ID
		b.ClassInstanceID = &id
		b.Teacher = inst.Teacher
		b.Date = inst.Date
	}
	return b
}
