// Package apperr defines errors shared across features.
package apperr

import (
	"errors"
	"fmt"
)

// ErrRemoteUnavailable is returned when a remote store (catalog, credential,
// booking) or local session storage cannot be reached or rejects an operation.
var ErrRemoteUnavailable = errors.New("remote store unavailable")

// RemoteError wraps a store-layer failure with the operation that caused it.
// errors.Is(err, ErrRemoteUnavailable) reports true for every RemoteError.
type RemoteError struct {
	Op  string
	Err error
}

// Remote wraps err as a RemoteError. A nil err returns nil.
func Remote(op string, err error) error {
	if err == nil {
		return nil
	}
	return &RemoteError{Op: op, Err: err}
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrRemoteUnavailable, e.Err)
}

// Is makes RemoteError match ErrRemoteUnavailable.
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteUnavailable
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
