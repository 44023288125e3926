// Package errors provides custom error types for product-related operations.
package errors

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNilProduct is returned when a nil product is handed to the store.
var ErrNilProduct = fmt.Errorf("%w: product must not be nil", ErrInvalidArgument)

// ErrNilID is returned when a product is addressed by the zero UUID, which marks an unsaved product.
var ErrNilID = fmt.Errorf("%w: product id must not be the nil UUID", ErrInvalidArgument)

// NotFoundError reports a lookup for an identifier that is not stored.
// It matches ErrProductNotFound with errors.Is.
type NotFoundError struct {
	ID uuid.UUID
}

// NewNotFoundError creates a NotFoundError for the given identifier.
func NewNotFoundError(id uuid.UUID) *NotFoundError {
	return &NotFoundError{ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product with id %s not found", e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrProductNotFound
}
