package application_test

import (
	"testing"

	"github.com/kwallet-network/kwallet/internal/core/application"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *application.Config
	}{
		{"inmemory", &application.Config{DBType: application.DBInMemory}},
		{"badger", &application.Config{DBType: application.DBBadger, Datadir: t.TempDir()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.cfg.Validate())
			defer tt.cfg.Close()

			require.NotNil(t, tt.cfg.RepoManager())
			require.NotNil(t, tt.cfg.WalletService())
			require.NotNil(t, tt.cfg.FeeEstimator())
			require.NotNil(t, tt.cfg.AccountService())
			require.NotNil(t, tt.cfg.TransferService())
			require.NotNil(t, tt.cfg.SettingsService())

			// services are built once
			require.Equal(t, tt.cfg.WalletService(), tt.cfg.WalletService())
			require.Equal(t, tt.cfg.RpcClient(), tt.cfg.RpcClient())
		})
	}
}

func TestFailingConfig(t *testing.T) {
	tests := []struct {
		name        string
		cfg         *application.Config
		expectedErr error
	}{
		{"unknown db", &application.Config{DBType: "postgres"}, application.ErrUnknownDBType},
		{"missing db", &application.Config{}, application.ErrUnknownDBType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.cfg.Validate(), tt.expectedErr)
		})
	}

	cfg := &application.Config{DBType: application.DBInMemory, RpcURL: "ftp://node"}
	require.Error(t, cfg.Validate())
}
