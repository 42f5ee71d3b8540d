package application

import (
	"context"

	"github.com/kwallet-network/kwallet/pkg/mathutil"
	"github.com/kwallet-network/kwallet/pkg/rpc"
	"github.com/shopspring/decimal"
)

// Resources consumed by a token transfer, measured on mainnet.
const (
	transferDiskStorage      = 112
	transferNetworkBandwidth = 313
	transferComputeBandwidth = 565000
)

var estimateSafetyMargin = decimal.NewFromFloat(1.2)

// Estimate is the expected cost of a token transfer.
type Estimate struct {
	RcUnits uint64
	// FeeTokenEquivalent is RcUnits expressed in KOIN, with 8 decimals.
	FeeTokenEquivalent string
}

// FeeEstimator prices a transfer with the current resource costs.
type FeeEstimator interface {
	EstimateTransferCost(ctx context.Context) (Estimate, error)
}

type feeEstimator struct {
	rpc rpc.Service
}

func NewFeeEstimator(rpcSvc rpc.Service) FeeEstimator {
	return &feeEstimator{rpcSvc}
}

func (f *feeEstimator) EstimateTransferCost(ctx context.Context) (Estimate, error) {
	return estimateTransferCost(ctx, f.rpc)
}

func estimateTransferCost(ctx context.Context, svc rpc.Service) (Estimate, error) {
	costs, err := svc.GetResourceCosts(ctx)
	if err != nil {
		return Estimate{}, err
	}

	total := mathutil.Mul(transferDiskStorage, costs.DiskStorageCost).
		Add(mathutil.Mul(transferNetworkBandwidth, costs.NetworkBandwidthCost)).
		Add(mathutil.Mul(transferComputeBandwidth, costs.ComputeBandwidthCost))
	rcUnits := mathutil.CeilUnits(total.Mul(estimateSafetyMargin))

	return Estimate{
		RcUnits:            rcUnits,
		FeeTokenEquivalent: mathutil.FormatUnits(rcUnits),
	}, nil
}
