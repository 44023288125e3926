package interceptors

import (
	"context"
	"testing"
	"time"

	pb "github.com/abgdnv/productstore/pkg/api/product/v1"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func Test_GRPCClient_TimeoutInterceptor(t *testing.T) {
	testCases := []struct {
		name         string
		serviceDelay time.Duration
		timeout      time.Duration
		expectedCode codes.Code
	}{
		{
			name:         "Slow service exceeds deadline",
			serviceDelay: 200 * time.Millisecond,
			timeout:      50 * time.Millisecond,
			expectedCode: codes.DeadlineExceeded,
		},
		{
			name:         "Fast service within deadline",
			serviceDelay: 0,
			timeout:      time.Second,
			expectedCode: codes.OK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := &scriptedService{delay: tc.serviceDelay}
			client := newTestClient(t, service, UnaryClientTimeoutInterceptor(tc.timeout))

			// when
			_, err := client.GetProduct(context.Background(), &pb.GetProductRequest{Id: "c973a91e-39a5-46d7-8635-7184934afc20"})

			// then
			if tc.expectedCode == codes.OK {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Equal(t, tc.expectedCode, statusCode(t, err))
		})
	}
}
