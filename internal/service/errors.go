package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every NotFoundError
	ErrNotFound = errors.New("not found")

	// ErrNotConfirmed is returned by delete operations that were not confirmed by the user
	ErrNotConfirmed = errors.New("deletion not confirmed")

	// ErrNothingToExport is returned when there are no transactions to export
	ErrNothingToExport = errors.New("No transactions to export")
)

// NotFoundError is returned when an entity is not part of the loaded collection
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFound builds a NotFoundError
func NewNotFound(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
