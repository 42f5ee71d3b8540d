package domain

import (
	"context"
)

// WalletRepository persists the single wallet secret and the address it was
// last derived to.
type WalletRepository interface {
	// GetSecret returns ErrWalletNotFound if no secret is stored.
	GetSecret(ctx context.Context) (string, error)
	SetSecret(ctx context.Context, secret string) error
	// GetAddress returns an empty string if no address is stored.
	GetAddress(ctx context.Context) (string, error)
	SetAddress(ctx context.Context, address string) error
	// Delete removes both the secret and the address.
	Delete(ctx context.Context) error
}

// SettingsRepository persists user preferences.
type SettingsRepository interface {
	// GetSetting returns ErrSettingNotFound if key was never set.
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}
