package application_test

import (
	"context"
	"testing"

	"github.com/kwallet-network/kwallet/internal/core/application"
	"github.com/kwallet-network/kwallet/internal/core/domain"
	"github.com/kwallet-network/kwallet/pkg/rpc"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testChain = application.ChainConfig{
	KoinContract:         "koin",
	VhpContract:          "vhp",
	SponsorAddress:       "sponsor",
	ProbeAddress:         "probe",
	SponsorManaThreshold: oneKoin,
}

var testCosts = &rpc.ResourceCosts{
	DiskStorageCost:      10,
	NetworkBandwidthCost: 10,
	ComputeBandwidthCost: 10,
}

func TestAccountOverview(t *testing.T) {
	rpcSvc := &mockRpcService{}
	rpcSvc.On("GetTokenBalance", mock.Anything, "koin", address0).Return(10*oneKoin, nil)
	rpcSvc.On("GetTokenBalance", mock.Anything, "vhp", address0).Return(3*oneKoin, nil)
	rpcSvc.On("GetAccountRc", mock.Anything, address0).Return(12*oneKoin, nil)
	rpcSvc.On("GetAccountRc", mock.Anything, "sponsor").Return(50*oneKoin, nil)
	rpcSvc.On("GetResourceCosts", mock.Anything).Return(testCosts, nil)

	svc := application.NewAccountService(rpcSvc, testChain)
	overview := svc.Overview(context.Background(), address0)

	require.Equal(t, 10*oneKoin, overview.KoinBalance)
	require.Equal(t, 3*oneKoin, overview.VhpBalance)
	// mana is capped by the koin balance
	require.Equal(t, domain.Mana{Current: 10 * oneKoin, Max: 10 * oneKoin}, overview.Mana)
	require.Equal(t, uint64(6785100), overview.Estimate.RcUnits)
	require.Equal(t, "0.06785100", overview.Estimate.FeeTokenEquivalent)
	require.Equal(t, 50*oneKoin, overview.SponsorMana)
}

func TestAccountOverviewDegradesToZero(t *testing.T) {
	rpcErr := &rpc.Error{Method: "chain.read_contract", Message: "unavailable"}

	rpcSvc := &mockRpcService{}
	rpcSvc.On("GetTokenBalance", mock.Anything, "koin", address0).Return(nil, rpcErr)
	rpcSvc.On("GetTokenBalance", mock.Anything, "vhp", address0).Return(3*oneKoin, nil)
	rpcSvc.On("GetAccountRc", mock.Anything, address0).Return(nil, rpcErr)
	rpcSvc.On("GetAccountRc", mock.Anything, "sponsor").Return(nil, rpcErr)
	rpcSvc.On("GetResourceCosts", mock.Anything).Return(nil, rpcErr)

	svc := application.NewAccountService(rpcSvc, testChain)
	overview := svc.Overview(context.Background(), address0)

	require.Zero(t, overview.KoinBalance)
	require.Equal(t, 3*oneKoin, overview.VhpBalance)
	require.Equal(t, domain.Mana{}, overview.Mana)
	require.Equal(t, application.Estimate{}, overview.Estimate)
	require.Zero(t, overview.SponsorMana)
}

func TestAccountOverviewWithoutSponsor(t *testing.T) {
	rpcSvc := &mockRpcService{}
	rpcSvc.On("GetTokenBalance", mock.Anything, mock.Anything, address0).Return(oneKoin, nil)
	rpcSvc.On("GetAccountRc", mock.Anything, address0).Return(oneKoin, nil)
	rpcSvc.On("GetResourceCosts", mock.Anything).Return(testCosts, nil)

	chain := testChain
	chain.SponsorAddress = ""
	svc := application.NewAccountService(rpcSvc, chain)
	overview := svc.Overview(context.Background(), address0)

	require.Zero(t, overview.SponsorMana)
	rpcSvc.AssertNumberOfCalls(t, "GetAccountRc", 1)
}

func TestAccountNonce(t *testing.T) {
	rpcSvc := &mockRpcService{}
	rpcSvc.On("GetAccountNonce", mock.Anything, address0).Return(uint64(7), nil)

	rpcSvc.On("GetAccountNonce", mock.Anything, address1).
		Return(nil, &rpc.Error{Method: "chain.get_account_nonce", Message: "unavailable"})

	svc := application.NewAccountService(rpcSvc, testChain)
	require.Equal(t, uint64(8), svc.Nonce(context.Background(), address0))
	require.Zero(t, svc.Nonce(context.Background(), address1))
}

func TestAccountMaxAmountCycle(t *testing.T) {
	fee := uint64(6785100)

	tests := []struct {
		name           string
		token          domain.Token
		feeMode        domain.FeeMode
		expectedFirst  uint64
		expectedSecond uint64
		warning        bool
	}{
		{"koin self pay", domain.TokenKOIN, domain.FeeModeSelfPay, 4*oneKoin - fee*3/2, 10 * oneKoin, true},
		{"koin sponsored", domain.TokenKOIN, domain.FeeModeSponsored, 4 * oneKoin, 10 * oneKoin, true},
		// the whole balance exceeds the mana, auto proposes sponsorship
		{"koin auto", domain.TokenKOIN, domain.FeeModeAuto, 4 * oneKoin, 10 * oneKoin, true},
		{"vhp", domain.TokenVHP, domain.FeeModeSelfPay, 3 * oneKoin, 3 * oneKoin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rpcSvc := &mockRpcService{}
			rpcSvc.On("GetTokenBalance", mock.Anything, "koin", address0).Return(10*oneKoin, nil)
			rpcSvc.On("GetTokenBalance", mock.Anything, "vhp", address0).Return(3*oneKoin, nil)
			rpcSvc.On("GetAccountRc", mock.Anything, address0).Return(4*oneKoin, nil)
			rpcSvc.On("GetAccountRc", mock.Anything, "sponsor").Return(50*oneKoin, nil)
			rpcSvc.On("GetResourceCosts", mock.Anything).Return(testCosts, nil)

			svc := application.NewAccountService(rpcSvc, testChain)
			cycle := svc.MaxAmountCycle(context.Background(), address0, tt.token, tt.feeMode)

			first := cycle.Press()
			require.Equal(t, tt.expectedFirst, first.Amount)
			require.False(t, first.Warning)

			second := cycle.Press()
			require.Equal(t, tt.expectedSecond, second.Amount)
			require.Equal(t, tt.warning, second.Warning)

			require.Equal(t, first, cycle.Press())
		})
	}
}
