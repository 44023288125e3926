package service

import (
	"github.com/abgdnv/productstore/internal/product/store"
)

// ProductMapper converts between DTOs and store entities.
type ProductMapper interface {
	// ToProduct builds an entity from the DTO. ID and Created are left unset.
	ToProduct(dto ProductDto) store.Product

	// ToInfoProductDto projects the entity onto the output DTO, dropping Created.
	ToInfoProductDto(product store.Product) InfoProductDto

	// Merge overlays the DTO fields onto existing, keeping its ID and Created.
	Merge(existing store.Product, dto ProductDto) store.Product
}

// Mapper is the stateless ProductMapper implementation.
type Mapper struct{}

// NewMapper creates a new Mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// ToProduct copies the DTO fields into a new unsaved product.
func (Mapper) ToProduct(dto ProductDto) store.Product {
	return store.Product{
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price,
	}
}

// ToInfoProductDto projects the product onto the output DTO.
func (Mapper) ToInfoProductDto(product store.Product) InfoProductDto {
	return InfoProductDto{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
	}
}

// Merge returns existing with the DTO fields applied.
func (Mapper) Merge(existing store.Product, dto ProductDto) store.Product {
	return store.Product{
		ID:          existing.ID,
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price,
		Created:     existing.Created,
	}
}
