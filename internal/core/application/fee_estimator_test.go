package application_test

import (
	"context"
	"testing"

	"github.com/kwallet-network/kwallet/internal/core/application"
	"github.com/kwallet-network/kwallet/pkg/rpc"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEstimateTransferCost(t *testing.T) {
	tests := []struct {
		name            string
		costs           *rpc.ResourceCosts
		expectedRc      uint64
		expectedKoinFee string
	}{
		{
			name:            "zero costs",
			costs:           &rpc.ResourceCosts{},
			expectedRc:      0,
			expectedKoinFee: "0.00000000",
		},
		{
			name: "rounds up",
			costs: &rpc.ResourceCosts{
				DiskStorageCost:      1,
				NetworkBandwidthCost: 1,
				ComputeBandwidthCost: 1,
			},
			// (112 + 313 + 565000) * 1.2 = 678510
			expectedRc:      678510,
			expectedKoinFee: "0.00678510",
		},
		{
			name: "compute dominated",
			costs: &rpc.ResourceCosts{
				DiskStorageCost:      0,
				NetworkBandwidthCost: 3,
				ComputeBandwidthCost: 7,
			},
			// (939 + 3955000) * 1.2 = 4747126.8
			expectedRc:      4747127,
			expectedKoinFee: "0.04747127",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rpcSvc := &mockRpcService{}
			rpcSvc.On("GetResourceCosts", mock.Anything).Return(tt.costs, nil)

			estimate, err := application.NewFeeEstimator(rpcSvc).
				EstimateTransferCost(context.Background())
			require.NoError(t, err)
			require.Equal(t, tt.expectedRc, estimate.RcUnits)
			require.Equal(t, tt.expectedKoinFee, estimate.FeeTokenEquivalent)
		})
	}
}

func TestFailingEstimateTransferCost(t *testing.T) {
	rpcSvc := &mockRpcService{}
	rpcSvc.On("GetResourceCosts", mock.Anything).
		Return(nil, &rpc.Error{Method: "chain.get_resource_limits", Message: "unavailable"})

	_, err := application.NewFeeEstimator(rpcSvc).EstimateTransferCost(context.Background())
	require.ErrorIs(t, err, rpc.ErrRPC)
}
