// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"time"

	perrors "github.com/abgdnv/productstore/internal/product/errors"
	"github.com/abgdnv/productstore/internal/product/store"
	"github.com/google/uuid"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// Get retrieves a single product by its unique identifier.
	// Returns a *NotFoundError (matching ErrProductNotFound) if no product exists with the given ID.
	Get(ctx context.Context, id uuid.UUID) (*InfoProductDto, error)

	// GetAll returns all available products in no particular order.
	// Returns an empty slice if no products exist.
	GetAll(ctx context.Context) []InfoProductDto

	// Create adds a new product and returns its generated ID.
	Create(ctx context.Context, product ProductDto) (uuid.UUID, error)

	// Update stores the product under the given ID, creating it if it does not exist yet.
	// Returns ErrNilID (matching ErrInvalidArgument) for the zero UUID.
	Update(ctx context.Context, id uuid.UUID, product ProductDto) error

	// Delete removes a product by its ID. Deleting an absent product is not an error.
	Delete(ctx context.Context, id uuid.UUID)
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
	mapper     ProductMapper
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithMapper replaces the default Mapper.
func WithMapper(mapper ProductMapper) Option {
	return func(s *Service) {
		s.mapper = mapper
	}
}

// WithClock makes the service set Created on products it inserts.
// Without it Created is left as supplied by the mapper.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore, opts ...Option) *Service {
	s := &Service{
		repository: repo,
		mapper:     NewMapper(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get retrieves a product by its ID and returns it as an InfoProductDto.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*InfoProductDto, error) {
	product, ok := s.repository.FindByID(ctx, id)
	if !ok {
		return nil, perrors.NewNotFoundError(id)
	}

	info := s.mapper.ToInfoProductDto(*product)
	return &info, nil
}

// GetAll retrieves all products and returns them as InfoProductDtos.
func (s *Service) GetAll(ctx context.Context) []InfoProductDto {
	products := s.repository.FindAll(ctx)
	infos := make([]InfoProductDto, len(products))

	for i, item := range products {
		infos[i] = s.mapper.ToInfoProductDto(item)
	}

	return infos
}

// Create maps the DTO to a new product, saves it and returns the assigned ID.
func (s *Service) Create(ctx context.Context, product ProductDto) (uuid.UUID, error) {
	toCreate := s.mapper.ToProduct(product)
	s.stamp(&toCreate)

	created, err := s.repository.Save(ctx, &toCreate)
	if err != nil {
		return uuid.Nil, err
	}
	return created.ID, nil
}

// Update saves the DTO under the given ID.
// An existing product is merged so that its Created survives; otherwise a new product is inserted.
// The zero UUID is rejected with ErrNilID because it marks an unsaved product.
func (s *Service) Update(ctx context.Context, id uuid.UUID, product ProductDto) error {
	if id == uuid.Nil {
		return perrors.ErrNilID
	}

	_, err := s.repository.Upsert(ctx, id, func(existing *store.Product) store.Product {
		if existing != nil {
			return s.mapper.Merge(*existing, product)
		}
		toInsert := s.mapper.ToProduct(product)
		s.stamp(&toInsert)
		return toInsert
	})
	return err
}

// Delete deletes a product by its ID.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) {
	s.repository.DeleteByID(ctx, id)
}

// stamp sets Created on a product about to be inserted when a clock is configured.
func (s *Service) stamp(product *store.Product) {
	if s.now != nil {
		product.Created = s.now()
	}
}
