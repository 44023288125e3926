package interceptors

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	pb "github.com/abgdnv/productstore/pkg/api/product/v1"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// scriptedService answers GetProduct with a queue of pre-configured codes, then OK.
type scriptedService struct {
	pb.UnimplementedProductServiceServer

	mu        sync.Mutex
	callCount int32
	responses []codes.Code
	delay     time.Duration
}

func (s *scriptedService) GetProduct(ctx context.Context, req *pb.GetProductRequest) (*pb.GetProductResponse, error) {
	s.mu.Lock()
	s.callCount++
	code := codes.OK
	if len(s.responses) > 0 {
		code = s.responses[0]
		s.responses = s.responses[1:]
	}
	delay := s.delay
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, status.FromContextError(ctx.Err()).Err()
		}
	}
	if code != codes.OK {
		return nil, status.Error(code, "scripted error")
	}
	return &pb.GetProductResponse{Product: &pb.Product{Id: req.GetId()}}, nil
}

func (s *scriptedService) setResponses(responses ...codes.Code) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = responses
	s.callCount = 0
}

func (s *scriptedService) getCallCount() int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// newTestClient starts service on a bufconn listener and dials it through the given interceptors.
func newTestClient(t *testing.T, service *scriptedService, interceptors ...grpc.UnaryClientInterceptor) pb.ProductServiceClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	grpcServer := grpc.NewServer()
	pb.RegisterProductServiceServer(grpcServer, service)
	go func() {
		_ = grpcServer.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough://bufnet",
		grpc.WithContextDialer(func(ctx context.Context, s string) (net.Conn, error) {
			return lis.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(interceptors...),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		grpcServer.Stop()
		_ = lis.Close()
	})
	return pb.NewProductServiceClient(conn)
}
