// Package store provides an interface for product storage operations.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a product entity in the store.
// A uuid.Nil ID means the product has not been saved yet.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Created     time.Time
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations.
type ProductStore interface {
	// FindByID retrieves a single product by its unique identifier.
	// The boolean is false if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Product, bool)

	// FindAll returns all stored products in no particular order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) []Product

	// Save inserts or overwrites the product keyed by its ID.
	// A product without ID gets a freshly generated one before it is stored.
	// Returns ErrNilProduct if product is nil.
	Save(ctx context.Context, product *Product) (*Product, error)

	// Upsert stores the product returned by build under id as one atomic step.
	// build receives the currently stored product, or nil when id is absent.
	// Returns ErrNilID if id is uuid.Nil.
	Upsert(ctx context.Context, id uuid.UUID, build func(existing *Product) Product) (*Product, error)

	// DeleteByID removes a product by its ID. Deleting an absent ID is a no-op.
	DeleteByID(ctx context.Context, id uuid.UUID)
}
