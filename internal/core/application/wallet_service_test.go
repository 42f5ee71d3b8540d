package application_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kwallet-network/kwallet/internal/core/application"
	"github.com/kwallet-network/kwallet/internal/core/domain"
	"github.com/kwallet-network/kwallet/internal/infrastructure/storage/db/inmemory"
	"github.com/kwallet-network/kwallet/pkg/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	address0 = "1DFF1akeStY8SfomzFsSYsZPesQcbnF1vR"
	address1 = "15n9ZbL3xmLBCUFtVQUzXKox5WhFnyAba3"
)

func TestGenerateWallet(t *testing.T) {
	repo := inmemory.NewRepoManager().WalletRepository()
	svc := application.NewWalletService(repo)
	ctx := context.Background()

	mnemonic, address, err := svc.GenerateWallet(ctx)
	require.NoError(t, err)
	require.Len(t, strings.Split(mnemonic, " "), 12)
	require.NoError(t, wallet.ValidateMnemonic(mnemonic))
	require.True(t, wallet.IsValidAddress(address))
	require.Equal(t, address, svc.Address())

	seed, ok, err := svc.SeedPhrase(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, mnemonic, seed)

	// a fresh service reads back the same wallet
	reloaded := application.NewWalletService(repo)
	require.Empty(t, reloaded.Address())
	require.Nil(t, reloaded.Signer())
	info, err := reloaded.LoadWallet(ctx)
	require.NoError(t, err)
	require.True(t, info.HasWallet)
	require.Equal(t, address, info.Address)
}

func TestImportFromMnemonic(t *testing.T) {
	tests := []struct {
		name            string
		mnemonic        string
		accountIndex    uint32
		expectedAddress string
		expectedPath    string
	}{
		{"account 0", testMnemonic, 0, address0, "m/44'/659'/0'/0/0"},
		{"account 1", testMnemonic, 1, address1, "m/44'/659'/1'/0/0"},
		{"normalized words", "  ABANDON " + strings.TrimPrefix(testMnemonic, "abandon"), 0, address0, "m/44'/659'/0'/0/0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := inmemory.NewRepoManager().WalletRepository()
			svc := application.NewWalletService(repo)
			ctx := context.Background()

			address, err := svc.ImportFromMnemonic(ctx, tt.mnemonic, tt.accountIndex)
			require.NoError(t, err)
			require.Equal(t, tt.expectedAddress, address)

			// the account index survives a reload
			info, err := application.NewWalletService(repo).LoadWallet(ctx)
			require.NoError(t, err)
			require.Equal(t, tt.expectedAddress, info.Address)
			require.Equal(t, tt.expectedPath, info.DerivationPath)

			ok, err := svc.HasSeedPhrase(ctx)
			require.NoError(t, err)
			require.True(t, ok)
		})
	}
}

func TestFailingImportFromMnemonic(t *testing.T) {
	repo := inmemory.NewRepoManager().WalletRepository()
	svc := application.NewWalletService(repo)
	ctx := context.Background()

	for _, mnemonic := range []string{"abandon abandon abandon", "", "  \t "} {
		_, err := svc.ImportFromMnemonic(ctx, mnemonic, 0)
		require.ErrorIs(t, err, wallet.ErrInvalidMnemonic, mnemonic)
	}

	_, err := repo.GetSecret(ctx)
	require.ErrorIs(t, err, domain.ErrWalletNotFound)
	require.Empty(t, svc.Address())
}

func TestImportFromWIF(t *testing.T) {
	signer, err := wallet.NewSignerFromMnemonic(wallet.NewSignerFromMnemonicOpts{
		Mnemonic: testMnemonic,
	})
	require.NoError(t, err)
	wif := signer.PrivateKeyWIF()

	repo := inmemory.NewRepoManager().WalletRepository()
	svc := application.NewWalletService(repo)
	ctx := context.Background()

	address, err := svc.ImportFromWIF(ctx, wif)
	require.NoError(t, err)
	require.Equal(t, address0, address)
	require.Equal(t, wif, svc.PrivateKey())

	seed, ok, err := svc.SeedPhrase(ctx)
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, seed)

	ok, err = svc.HasSeedPhrase(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	stored, err := repo.GetSecret(ctx)
	require.NoError(t, err)
	require.Equal(t, "wif:"+wif, stored)

	info, err := application.NewWalletService(repo).LoadWallet(ctx)
	require.NoError(t, err)
	require.Equal(t, address0, info.Address)
	require.Empty(t, info.DerivationPath)

	for _, key := range []string{"not a key", "", "   "} {
		_, err = svc.ImportFromWIF(ctx, key)
		require.ErrorIs(t, err, wallet.ErrInvalidPrivateKey, key)
	}
	// a failed import leaves the current wallet untouched
	require.Equal(t, address0, svc.Address())
}

func TestLoadWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("no wallet", func(t *testing.T) {
		svc := application.NewWalletService(inmemory.NewRepoManager().WalletRepository())
		info, err := svc.LoadWallet(ctx)
		require.NoError(t, err)
		require.False(t, info.HasWallet)

		ok, err := svc.HasWallet(ctx)
		require.NoError(t, err)
		require.False(t, ok)

		_, _, err = svc.SeedPhrase(ctx)
		require.ErrorIs(t, err, application.ErrWalletNotLoaded)
		require.Empty(t, svc.PrivateKey())
	})

	t.Run("legacy untagged secret", func(t *testing.T) {
		repo := inmemory.NewRepoManager().WalletRepository()
		require.NoError(t, repo.SetSecret(ctx, testMnemonic))

		info, err := application.NewWalletService(repo).LoadWallet(ctx)
		require.NoError(t, err)
		require.True(t, info.HasWallet)
		require.Equal(t, address0, info.Address)
	})

	t.Run("corrects mismatching address", func(t *testing.T) {
		repo := inmemory.NewRepoManager().WalletRepository()
		require.NoError(t, repo.SetSecret(ctx, "mnemonic:1:"+testMnemonic))
		require.NoError(t, repo.SetAddress(ctx, address0))

		info, err := application.NewWalletService(repo).LoadWallet(ctx)
		require.NoError(t, err)
		require.Equal(t, address1, info.Address)

		stored, err := repo.GetAddress(ctx)
		require.NoError(t, err)
		require.Equal(t, address1, stored)
	})

	t.Run("undecodable secret", func(t *testing.T) {
		repo := inmemory.NewRepoManager().WalletRepository()
		require.NoError(t, repo.SetSecret(ctx, "wif:garbage"))

		info, err := application.NewWalletService(repo).LoadWallet(ctx)
		require.NoError(t, err)
		require.False(t, info.HasWallet)
	})

	t.Run("canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		svc := application.NewWalletService(inmemory.NewRepoManager().WalletRepository())
		_, err := svc.LoadWallet(cctx)
		require.True(t, errors.Is(err, context.Canceled))
	})
}

func TestDeleteWallet(t *testing.T) {
	repo := inmemory.NewRepoManager().WalletRepository()
	svc := application.NewWalletService(repo)
	ctx := context.Background()

	_, err := svc.ImportFromMnemonic(ctx, testMnemonic, 0)
	require.NoError(t, err)
	require.NotNil(t, svc.Signer())

	require.NoError(t, svc.DeleteWallet(ctx))
	assert.Nil(t, svc.Signer())
	assert.Empty(t, svc.Address())

	ok, err := svc.HasWallet(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	address, err := repo.GetAddress(ctx)
	require.NoError(t, err)
	assert.Empty(t, address)
}
