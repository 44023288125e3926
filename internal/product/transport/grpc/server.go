// Package grpc provides a gRPC server for the product service.
package grpc

import (
	"context"
	"errors"
	"log/slog"

	perrors "github.com/abgdnv/productstore/internal/product/errors"
	"github.com/abgdnv/productstore/internal/product/service"
	pb "github.com/abgdnv/productstore/pkg/api/product/v1"
	"github.com/abgdnv/productstore/pkg/web"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	pb.UnimplementedProductServiceServer
	service service.ProductService
	logger  *slog.Logger
}

func NewServer(service service.ProductService, logger *slog.Logger) *Server {
	return &Server{
		service: service,
		logger:  logger.With("component", "grpc"),
	}
}

func (s *Server) GetProduct(ctx context.Context, req *pb.GetProductRequest) (*pb.GetProductResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}

	found, err := s.service.Get(ctx, id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetProductResponse{Product: toProto(*found)}, nil
}

func (s *Server) ListProducts(ctx context.Context, _ *pb.ListProductsRequest) (*pb.ListProductsResponse, error) {
	list := s.service.GetAll(ctx)
	products := make([]*pb.Product, 0, len(list))
	for _, item := range list {
		products = append(products, toProto(item))
	}
	return &pb.ListProductsResponse{Products: products}, nil
}

func (s *Server) CreateProduct(ctx context.Context, req *pb.CreateProductRequest) (*pb.CreateProductResponse, error) {
	dto, err := toDto(req.GetName(), req.GetDescription(), req.GetPrice())
	if err != nil {
		return nil, err
	}

	id, err := s.service.Create(ctx, dto)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.InfoContext(ctx, "Product created", "ID", id)
	return &pb.CreateProductResponse{Id: id.String()}, nil
}

func (s *Server) UpdateProduct(ctx context.Context, req *pb.UpdateProductRequest) (*pb.UpdateProductResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	dto, err := toDto(req.GetName(), req.GetDescription(), req.GetPrice())
	if err != nil {
		return nil, err
	}

	if err := s.service.Update(ctx, id, dto); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.InfoContext(ctx, "Product updated", "ID", id)
	return &pb.UpdateProductResponse{}, nil
}

func (s *Server) DeleteProduct(ctx context.Context, req *pb.DeleteProductRequest) (*pb.DeleteProductResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}

	s.service.Delete(ctx, id)
	s.logger.InfoContext(ctx, "Product deleted", "ID", id)
	return &pb.DeleteProductResponse{}, nil
}

func (s *Server) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, perrors.ErrProductNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, perrors.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		s.logger.ErrorContext(ctx, "Product service call failed", "error", err)
		return status.Error(codes.Internal, "internal server error")
	}
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := web.ParseCanonicalUUID(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid product ID %q: %v", raw, err)
	}
	return id, nil
}

// toDto builds a ProductDto; an empty price means zero.
func toDto(name, description, price string) (service.ProductDto, error) {
	dto := service.ProductDto{Name: name, Description: description}
	if price == "" {
		return dto, nil
	}
	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return service.ProductDto{}, status.Errorf(codes.InvalidArgument, "invalid price %q: %v", price, err)
	}
	dto.Price = parsed
	return dto, nil
}

func toProto(dto service.InfoProductDto) *pb.Product {
	return &pb.Product{
		Id:          dto.ID.String(),
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price.String(),
	}
}
