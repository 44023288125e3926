package service

import (
	"testing"
	"time"

	"github.com/abgdnv/productstore/internal/product/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var (
	testID      = uuid.MustParse("c973a91e-39a5-46d7-8635-7184934afc20")
	testCreated = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
)

func testProduct() store.Product {
	return store.Product{
		ID:          testID,
		Name:        "Product_1",
		Description: "Description_1",
		Price:       decimal.NewFromInt(100),
		Created:     testCreated,
	}
}

func testProductDto() ProductDto {
	return ProductDto{
		Name:        "Product_1",
		Description: "Description_1",
		Price:       decimal.NewFromInt(100),
	}
}

func Test_Mapper_ToProduct(t *testing.T) {
	// given
	dto := testProductDto()
	// when
	actual := NewMapper().ToProduct(dto)
	// then
	assert.Equal(t, uuid.Nil, actual.ID)
	assert.True(t, actual.Created.IsZero())
	assert.Equal(t, dto.Name, actual.Name)
	assert.Equal(t, dto.Description, actual.Description)
	assert.True(t, dto.Price.Equal(actual.Price))
}

func Test_Mapper_ToInfoProductDto(t *testing.T) {
	// given
	product := testProduct()
	expected := InfoProductDto{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
	}
	// when
	actual := NewMapper().ToInfoProductDto(product)
	// then
	assert.Equal(t, expected, actual)
}

func Test_Mapper_Merge(t *testing.T) {
	testCases := []struct {
		name     string
		existing store.Product
		dto      ProductDto
		expected store.Product
	}{
		{
			name:     "Success - identity only entity filled from dto",
			existing: store.Product{ID: testID, Created: testCreated},
			dto:      testProductDto(),
			expected: testProduct(),
		},
		{
			name:     "Success - content fields overwritten",
			existing: testProduct(),
			dto: ProductDto{
				Name:        "Updated name",
				Description: "Updated description",
				Price:       decimal.RequireFromString("1000.55"),
			},
			expected: store.Product{
				ID:          testID,
				Name:        "Updated name",
				Description: "Updated description",
				Price:       decimal.RequireFromString("1000.55"),
				Created:     testCreated,
			},
		},
		{
			name:     "Success - empty dto clears content fields",
			existing: testProduct(),
			dto:      ProductDto{},
			expected: store.Product{ID: testID, Created: testCreated},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			existing := tc.existing
			// when
			actual := NewMapper().Merge(existing, tc.dto)
			// then
			assert.Equal(t, tc.expected, actual)
			assert.Equal(t, tc.existing, existing, "existing entity must not change")
		})
	}
}
