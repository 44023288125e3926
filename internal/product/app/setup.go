// Package app contains the application setup for the product service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/abgdnv/productstore/internal/product/config"
	"github.com/abgdnv/productstore/internal/product/service"
	"github.com/abgdnv/productstore/internal/product/store"
	grpcImpl "github.com/abgdnv/productstore/internal/product/transport/grpc"
	"github.com/abgdnv/productstore/internal/product/transport/rest"
	pb "github.com/abgdnv/productstore/pkg/api/product/v1"
	"github.com/abgdnv/productstore/pkg/server"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/grpc"
)

type Dependencies struct {
	ProductService service.ProductService
	Logger         *slog.Logger
}

// SetupDependencies builds the in-memory store and the product service according to cfg.
func SetupDependencies(cfg config.StoreConfig, logger *slog.Logger) *Dependencies {
	var storeOpts []store.Option
	if !cfg.Seed {
		storeOpts = append(storeOpts, store.WithProducts())
	}

	var serviceOpts []service.Option
	if cfg.StampCreated {
		serviceOpts = append(serviceOpts, service.WithClock(config.UTCNow))
	}

	return &Dependencies{
		ProductService: service.NewService(store.NewInMemoryStore(storeOpts...), serviceOpts...),
		Logger:         logger,
	}
}

// SetupHttpHandler builds the chi router with all product routes.
// Used by E2E tests to exercise the HTTP API without a listening server.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	rest.NewHandler(deps.ProductService, deps.Logger).RegisterRoutes(mux)
	return mux
}

// SetupHttpServer creates the HTTP server, with the handler instrumented for tracing.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	handler := otelhttp.NewHandler(SetupHttpHandler(deps), "product-http")
	return server.NewHTTPServer(cfg.HTTPServer, handler)
}

// SetupGrpcServer initializes the gRPC server for the product service.
func SetupGrpcServer(deps *Dependencies, reflectionEnabled bool) *grpc.Server {
	productRegisterFunc := func(s *grpc.Server) {
		pb.RegisterProductServiceServer(s, grpcImpl.NewServer(deps.ProductService, deps.Logger))
	}
	return server.NewGRPCServer(deps.Logger, reflectionEnabled, productRegisterFunc)
}
