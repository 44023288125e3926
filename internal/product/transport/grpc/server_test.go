package grpc

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	perrors "github.com/abgdnv/productstore/internal/product/errors"
	"github.com/abgdnv/productstore/internal/product/service"
	pb "github.com/abgdnv/productstore/pkg/api/product/v1"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Get(ctx context.Context, id uuid.UUID) (*service.InfoProductDto, error) {
	args := m.Called(ctx, id)
	var product *service.InfoProductDto
	if args.Get(0) != nil {
		product = args.Get(0).(*service.InfoProductDto)
	}
	return product, args.Error(1)
}

func (m *MockProductService) GetAll(ctx context.Context) []service.InfoProductDto {
	args := m.Called(ctx)
	return args.Get(0).([]service.InfoProductDto)
}

func (m *MockProductService) Create(ctx context.Context, product service.ProductDto) (uuid.UUID, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id uuid.UUID, product service.ProductDto) error {
	args := m.Called(ctx, id, product)
	return args.Error(0)
}

func (m *MockProductService) Delete(ctx context.Context, id uuid.UUID) {
	m.Called(ctx, id)
}

func newTestServer(svc service.ProductService) *Server {
	return NewServer(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func requireCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	if code == codes.OK {
		require.NoError(t, err)
		return
	}
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, code, st.Code())
}

func TestServer_GetProduct(t *testing.T) {
	ctx := context.Background()
	productID := uuid.MustParse("98080396-d0e6-44ab-ba71-89b30c2b6632")

	testCases := []struct {
		name         string
		mockProduct  *service.InfoProductDto
		mockError    error
		expectedCode codes.Code
	}{
		{
			name: "success",
			mockProduct: &service.InfoProductDto{
				ID:          productID,
				Name:        "Product_2",
				Description: "Description_2",
				Price:       decimal.RequireFromString("200.50"),
			},
			expectedCode: codes.OK,
		},
		{
			name:         "not found",
			mockError:    perrors.NewNotFoundError(productID),
			expectedCode: codes.NotFound,
		},
		{
			name:         "internal error",
			mockError:    errors.New("internal error"),
			expectedCode: codes.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			mockSvc := new(MockProductService)
			server := newTestServer(mockSvc)
			mockSvc.On("Get", mock.Anything, productID).Return(tc.mockProduct, tc.mockError)

			// when
			res, err := server.GetProduct(ctx, &pb.GetProductRequest{Id: productID.String()})

			// then
			requireCode(t, err, tc.expectedCode)
			if tc.expectedCode == codes.OK {
				require.Equal(t, &pb.Product{
					Id:          productID.String(),
					Name:        "Product_2",
					Description: "Description_2",
					Price:       "200.5",
				}, res.GetProduct())
			} else {
				require.Nil(t, res)
			}
			mockSvc.AssertExpectations(t)
		})
	}

	t.Run("invalid id format", func(t *testing.T) {
		// given
		mockSvc := new(MockProductService)
		server := newTestServer(mockSvc)

		// when
		_, err := server.GetProduct(ctx, &pb.GetProductRequest{Id: "this-is-not-a-uuid"})

		// then
		requireCode(t, err, codes.InvalidArgument)
		mockSvc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestServer_ListProducts(t *testing.T) {
	// given
	mockSvc := new(MockProductService)
	server := newTestServer(mockSvc)
	id := uuid.MustParse("c973a91e-39a5-46d7-8635-7184934afc20")
	mockSvc.On("GetAll", mock.Anything).Return([]service.InfoProductDto{
		{ID: id, Name: "Product_1", Description: "Description_1", Price: decimal.NewFromInt(100)},
	})

	// when
	res, err := server.ListProducts(context.Background(), &pb.ListProductsRequest{})

	// then
	require.NoError(t, err)
	require.Equal(t, []*pb.Product{
		{Id: id.String(), Name: "Product_1", Description: "Description_1", Price: "100"},
	}, res.GetProducts())
	mockSvc.AssertExpectations(t)
}

func TestServer_CreateProduct(t *testing.T) {
	newID := uuid.MustParse("ae64ba98-d244-469f-9901-9b9166921423")

	testCases := []struct {
		name         string
		req          *pb.CreateProductRequest
		expectCall   bool
		mockError    error
		expectedCode codes.Code
	}{
		{
			name:         "success",
			req:          &pb.CreateProductRequest{Name: "Product_xx", Description: "Description_xx", Price: "9.99"},
			expectCall:   true,
			expectedCode: codes.OK,
		},
		{
			name:         "malformed price",
			req:          &pb.CreateProductRequest{Name: "Product_xx", Price: "nine"},
			expectCall:   false,
			expectedCode: codes.InvalidArgument,
		},
		{
			name:         "invalid argument from service",
			req:          &pb.CreateProductRequest{Name: "Product_xx", Description: "Description_xx", Price: "9.99"},
			expectCall:   true,
			mockError:    perrors.ErrNilProduct,
			expectedCode: codes.InvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			mockSvc := new(MockProductService)
			server := newTestServer(mockSvc)
			if tc.expectCall {
				mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(dto service.ProductDto) bool {
					return dto.Name == "Product_xx" && dto.Price.Equal(decimal.RequireFromString("9.99"))
				})).Return(newID, tc.mockError)
			}

			// when
			res, err := server.CreateProduct(context.Background(), tc.req)

			// then
			requireCode(t, err, tc.expectedCode)
			if tc.expectedCode == codes.OK {
				require.Equal(t, newID.String(), res.GetId())
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestServer_UpdateProduct(t *testing.T) {
	id := uuid.MustParse("bdab99fd-be47-4bf5-8172-504d6193baa8")

	testCases := []struct {
		name         string
		req          *pb.UpdateProductRequest
		expectCall   bool
		mockError    error
		expectedCode codes.Code
	}{
		{
			name:         "success",
			req:          &pb.UpdateProductRequest{Id: id.String(), Name: "Updated", Price: "1"},
			expectCall:   true,
			expectedCode: codes.OK,
		},
		{
			name:         "empty price means zero",
			req:          &pb.UpdateProductRequest{Id: id.String(), Name: "Updated"},
			expectCall:   true,
			expectedCode: codes.OK,
		},
		{
			name:         "invalid id",
			req:          &pb.UpdateProductRequest{Id: "bad", Name: "Updated", Price: "1"},
			expectedCode: codes.InvalidArgument,
		},
		{
			name:         "urn id not canonical",
			req:          &pb.UpdateProductRequest{Id: "urn:uuid:" + id.String(), Name: "Updated", Price: "1"},
			expectedCode: codes.InvalidArgument,
		},
		{
			name:         "unhyphenated id not canonical",
			req:          &pb.UpdateProductRequest{Id: strings.ReplaceAll(id.String(), "-", ""), Name: "Updated", Price: "1"},
			expectedCode: codes.InvalidArgument,
		},
		{
			name:         "internal error",
			req:          &pb.UpdateProductRequest{Id: id.String(), Name: "Updated", Price: "1"},
			expectCall:   true,
			mockError:    errors.New("boom"),
			expectedCode: codes.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			mockSvc := new(MockProductService)
			server := newTestServer(mockSvc)
			if tc.expectCall {
				mockSvc.On("Update", mock.Anything, id, mock.MatchedBy(func(dto service.ProductDto) bool {
					return dto.Name == "Updated"
				})).Return(tc.mockError)
			}

			// when
			_, err := server.UpdateProduct(context.Background(), tc.req)

			// then
			requireCode(t, err, tc.expectedCode)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestServer_DeleteProduct(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		// given
		id := uuid.MustParse("bdab99fd-be47-4bf5-8172-504d6193baa8")
		mockSvc := new(MockProductService)
		server := newTestServer(mockSvc)
		mockSvc.On("Delete", mock.Anything, id).Return()

		// when
		_, err := server.DeleteProduct(context.Background(), &pb.DeleteProductRequest{Id: id.String()})

		// then
		require.NoError(t, err)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		// given
		mockSvc := new(MockProductService)
		server := newTestServer(mockSvc)

		// when
		_, err := server.DeleteProduct(context.Background(), &pb.DeleteProductRequest{Id: ""})

		// then
		requireCode(t, err, codes.InvalidArgument)
		mockSvc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
