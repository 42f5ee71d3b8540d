package inmemory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/kwallet-network/kwallet/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletRepository(t *testing.T) {
	repo := NewRepoManager().WalletRepository()
	ctx := context.Background()

	_, err := repo.GetSecret(ctx)
	require.Equal(t, domain.ErrWalletNotFound, err)

	// an empty secret is still a stored secret
	require.NoError(t, repo.SetSecret(ctx, ""))
	secret, err := repo.GetSecret(ctx)
	require.NoError(t, err)
	assert.Empty(t, secret)

	require.NoError(t, repo.SetSecret(ctx, "wif:key"))
	require.NoError(t, repo.SetAddress(ctx, "1DFF1akeStY8SfomzFsSYsZPesQcbnF1vR"))

	secret, err = repo.GetSecret(ctx)
	require.NoError(t, err)
	assert.Equal(t, "wif:key", secret)
	address, err := repo.GetAddress(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1DFF1akeStY8SfomzFsSYsZPesQcbnF1vR", address)

	require.NoError(t, repo.Delete(ctx))
	_, err = repo.GetSecret(ctx)
	require.Equal(t, domain.ErrWalletNotFound, err)
	address, err = repo.GetAddress(ctx)
	require.NoError(t, err)
	assert.Empty(t, address)
}

func TestSettingsRepositoryConcurrentAccess(t *testing.T) {
	repo := NewRepoManager().SettingsRepository()
	ctx := context.Background()

	wg := &sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key_%d", i)
			assert.NoError(t, repo.SetSetting(ctx, key, key))
			value, err := repo.GetSetting(ctx, key)
			assert.NoError(t, err)
			assert.Equal(t, key, value)
		}(i)
	}
	wg.Wait()

	_, err := repo.GetSetting(ctx, "koinos_rpc_url")
	assert.Equal(t, domain.ErrSettingNotFound, err)
}
