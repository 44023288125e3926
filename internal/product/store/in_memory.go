package store

import (
	"context"
	"sync"

	perrors "github.com/abgdnv/productstore/internal/product/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InMemory implements ProductStore using an in-memory map.
type InMemory struct {
	mu       sync.RWMutex
	products map[uuid.UUID]Product
	ids      IDGenerator
}

type options struct {
	ids  IDGenerator
	seed []Product
}

// Option configures an InMemory store.
type Option func(*options)

// WithIDGenerator sets the generator used for products saved without an ID.
func WithIDGenerator(gen IDGenerator) Option {
	return func(o *options) {
		o.ids = gen
	}
}

// WithProducts replaces the sample seed with the given products.
// Calling it with no products leaves the store empty.
func WithProducts(products ...Product) Option {
	return func(o *options) {
		o.seed = append([]Product{}, products...)
	}
}

// NewInMemoryStore creates a new store, pre-seeded with SampleProducts unless WithProducts says otherwise.
func NewInMemoryStore(opts ...Option) *InMemory {
	o := options{
		ids:  RandomIDGenerator{},
		seed: SampleProducts(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &InMemory{
		products: make(map[uuid.UUID]Product, len(o.seed)),
		ids:      o.ids,
	}
	for _, p := range o.seed {
		if p.ID == uuid.Nil {
			p.ID = s.ids.NewID()
		}
		s.products[p.ID] = p
	}
	return s
}

// SampleProducts returns the fixed demo products the store is seeded with.
func SampleProducts() []Product {
	return []Product{
		{
			ID:          uuid.MustParse("c973a91e-39a5-46d7-8635-7184934afc20"),
			Name:        "Product_1",
			Description: "Description_1",
			Price:       decimal.NewFromInt(100),
		},
		{
			ID:          uuid.MustParse("98080396-d0e6-44ab-ba71-89b30c2b6632"),
			Name:        "Product_2",
			Description: "Description_2",
			Price:       decimal.NewFromInt(200),
		},
		{
			ID:          uuid.MustParse("bdab99fd-be47-4bf5-8172-504d6193baa8"),
			Name:        "Product_3",
			Description: "Description_3",
			Price:       decimal.NewFromInt(300),
		},
	}
}

// FindByID retrieves a product by its ID.
func (s *InMemory) FindByID(_ context.Context, id uuid.UUID) (*Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, false
	}
	return &p, true
}

// FindAll retrieves all products.
func (s *InMemory) FindAll(_ context.Context) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p)
	}
	return list
}

// Save stores the product, assigning a new ID to it when it has none.
func (s *InMemory) Save(_ context.Context, product *Product) (*Product, error) {
	if product == nil {
		return nil, perrors.ErrNilProduct
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if product.ID == uuid.Nil {
		product.ID = s.ids.NewID()
	}
	stored := *product
	s.products[stored.ID] = stored

	return &stored, nil
}

// Upsert builds and stores the product for id under a single write lock.
func (s *InMemory) Upsert(_ context.Context, id uuid.UUID, build func(existing *Product) Product) (*Product, error) {
	if id == uuid.Nil {
		return nil, perrors.ErrNilID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var existing *Product
	if found, ok := s.products[id]; ok {
		existing = &found
	}
	stored := build(existing)
	stored.ID = id
	s.products[id] = stored

	return &stored, nil
}

// DeleteByID deletes a product by its ID.
func (s *InMemory) DeleteByID(_ context.Context, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.products, id)
}
