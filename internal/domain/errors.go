package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers any referenced entity that does not exist in the
	// catalog or the store: city, booking, user, parcel tracking code.
	ErrNotFound = errors.New("not found")

	// ErrValidation covers malformed or out-of-range input. Unknown service
	// classes are rejected, never substituted with a default.
	ErrValidation = errors.New("validation failed")

	// ErrStorageUnavailable wraps persistence failures. There is no retry or
	// compensation logic, the request is aborted.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func StorageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
}
