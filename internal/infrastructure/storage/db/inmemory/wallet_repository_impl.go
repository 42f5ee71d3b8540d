package inmemory

import (
	"context"

	"github.com/kwallet-network/kwallet/internal/core/domain"
)

// WalletRepositoryImpl represents an in memory storage
type WalletRepositoryImpl struct {
	store *walletInmemoryStore
}

// NewWalletRepositoryImpl returns a new empty WalletRepositoryImpl
func NewWalletRepositoryImpl(store *walletInmemoryStore) domain.WalletRepository {
	return &WalletRepositoryImpl{store}
}

func (r *WalletRepositoryImpl) GetSecret(_ context.Context) (string, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	if r.store.secret == nil {
		return "", domain.ErrWalletNotFound
	}
	return *r.store.secret, nil
}

func (r *WalletRepositoryImpl) SetSecret(_ context.Context, secret string) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	r.store.secret = &secret
	return nil
}

func (r *WalletRepositoryImpl) GetAddress(_ context.Context) (string, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	return r.store.address, nil
}

func (r *WalletRepositoryImpl) SetAddress(_ context.Context, address string) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	r.store.address = address
	return nil
}

func (r *WalletRepositoryImpl) Delete(_ context.Context) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	r.store.secret = nil
	r.store.address = ""
	return nil
}
