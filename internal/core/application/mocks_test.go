package application_test

import (
	"context"

	"github.com/kwallet-network/kwallet/pkg/koinos"
	"github.com/kwallet-network/kwallet/pkg/rpc"
	"github.com/stretchr/testify/mock"
)

// **** Rpc ****

type mockRpcService struct {
	mock.Mock
}

func (m *mockRpcService) GetHeadInfo(ctx context.Context) (*rpc.HeadInfo, error) {
	args := m.Called(ctx)

	var res *rpc.HeadInfo
	if a := args.Get(0); a != nil {
		res = a.(*rpc.HeadInfo)
	}
	return res, args.Error(1)
}

func (m *mockRpcService) GetChainID(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)

	var res []byte
	if a := args.Get(0); a != nil {
		res = a.([]byte)
	}
	return res, args.Error(1)
}

func (m *mockRpcService) GetAccountRc(ctx context.Context, address string) (uint64, error) {
	args := m.Called(ctx, address)

	var res uint64
	if a := args.Get(0); a != nil {
		res = a.(uint64)
	}
	return res, args.Error(1)
}

func (m *mockRpcService) GetAccountNonce(ctx context.Context, address string) (uint64, error) {
	args := m.Called(ctx, address)

	var res uint64
	if a := args.Get(0); a != nil {
		res = a.(uint64)
	}
	return res, args.Error(1)
}

func (m *mockRpcService) GetTokenBalance(
	ctx context.Context, contract, address string,
) (uint64, error) {
	args := m.Called(ctx, contract, address)

	var res uint64
	if a := args.Get(0); a != nil {
		res = a.(uint64)
	}
	return res, args.Error(1)
}

func (m *mockRpcService) GetResourceCosts(ctx context.Context) (*rpc.ResourceCosts, error) {
	args := m.Called(ctx)

	var res *rpc.ResourceCosts
	if a := args.Get(0); a != nil {
		res = a.(*rpc.ResourceCosts)
	}
	return res, args.Error(1)
}

func (m *mockRpcService) ReadContract(
	ctx context.Context, contract string, entryPoint uint32, argBytes []byte,
) ([]byte, error) {
	args := m.Called(ctx, contract, entryPoint, argBytes)

	var res []byte
	if a := args.Get(0); a != nil {
		res = a.([]byte)
	}
	return res, args.Error(1)
}

func (m *mockRpcService) SubmitTransaction(
	ctx context.Context, tx koinos.Transaction, broadcast bool,
) (*rpc.Receipt, error) {
	args := m.Called(ctx, tx, broadcast)

	var res *rpc.Receipt
	if a := args.Get(0); a != nil {
		res = a.(*rpc.Receipt)
	}
	return res, args.Error(1)
}

func (m *mockRpcService) WaitForInclusion(ctx context.Context, txID string) (string, error) {
	args := m.Called(ctx, txID)
	return args.String(0), args.Error(1)
}

func (m *mockRpcService) Endpoint() string {
	args := m.Called()
	return args.String(0)
}

func (m *mockRpcService) SetEndpoint(url string) error {
	args := m.Called(url)
	return args.Error(0)
}

// Snapshot returns the mock itself so that expectations hold for the
// pinned service too.
func (m *mockRpcService) Snapshot() rpc.Service {
	return m
}

// **** Settings ****

type mockSettingsRepository struct {
	mock.Mock
}

func (m *mockSettingsRepository) GetSetting(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockSettingsRepository) SetSetting(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}
