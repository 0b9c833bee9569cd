package usecase

import "errors"

var (
	// ErrUnauthenticated is returned when checkout is attempted without a session email.
	ErrUnauthenticated = errors.New("user not authenticated")

	// ErrEmptyCart is returned when checkout is attempted with an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)
