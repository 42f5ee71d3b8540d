package dbbadger

import (
	"context"

	"github.com/kwallet-network/kwallet/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

const (
	walletKey  = "koinos_wallet"
	addressKey = "koinos_address"
)

type record struct {
	Value string
}

type walletRepositoryImpl struct {
	store *badgerhold.Store
}

func newWalletRepositoryImpl(store *badgerhold.Store) domain.WalletRepository {
	return &walletRepositoryImpl{store}
}

func (r *walletRepositoryImpl) GetSecret(_ context.Context) (string, error) {
	var rec record
	if err := r.store.Get(walletKey, &rec); err != nil {
		if err == badgerhold.ErrNotFound {
			return "", domain.ErrWalletNotFound
		}
		return "", err
	}
	return rec.Value, nil
}

func (r *walletRepositoryImpl) SetSecret(_ context.Context, secret string) error {
	return r.store.Upsert(walletKey, &record{secret})
}

func (r *walletRepositoryImpl) GetAddress(_ context.Context) (string, error) {
	var rec record
	if err := r.store.Get(addressKey, &rec); err != nil {
		if err == badgerhold.ErrNotFound {
			return "", nil
		}
		return "", err
	}
	return rec.Value, nil
}

func (r *walletRepositoryImpl) SetAddress(_ context.Context, address string) error {
	return r.store.Upsert(addressKey, &record{address})
}

func (r *walletRepositoryImpl) Delete(_ context.Context) error {
	for _, key := range []string{walletKey, addressKey} {
		if err := r.store.Delete(key, record{}); err != nil &&
			err != badgerhold.ErrNotFound {
			return err
		}
	}
	return nil
}
