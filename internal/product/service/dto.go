package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDto represents the data transfer object for creating or updating a product.
type ProductDto struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// InfoProductDto represents the data transfer object returned to callers.
type InfoProductDto struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}
