package usecase

import "errors"

var (
	// ErrNoInstances is returned when toggling a class that has no scheduled instances.
	// It is informational rather than a failure.
	ErrNoInstances = errors.New("class has no available instances")

	// ErrClassNotFound is returned when a class ID is not in the last fetched catalog.
	ErrClassNotFound = errors.New("class not found")
)
