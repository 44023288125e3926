package cli

import (
	"fmt"

	pb "github.com/abgdnv/productstore/pkg/api/product/v1"
	"github.com/abgdnv/productstore/pkg/client/grpc/interceptors"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Dial connects to the product service with per-call timeout, retry and circuit breaker interceptors.
// The caller closes the returned connection.
func Dial(cfg *Config, extra ...grpc.DialOption) (pb.ProductServiceClient, *grpc.ClientConn, error) {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithChainUnaryInterceptor(
			interceptors.NewRetryInterceptor(cfg.Resilience.Retry),
			interceptors.NewCircuitBreaker("productctl", cfg.Resilience.CircuitBreaker),
			interceptors.UnaryClientTimeoutInterceptor(cfg.Client.Timeout),
		),
	}, extra...)

	conn, err := grpc.NewClient(cfg.Client.Addr, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create gRPC client for %s: %w", cfg.Client.Addr, err)
	}
	return pb.NewProductServiceClient(conn), conn, nil
}
