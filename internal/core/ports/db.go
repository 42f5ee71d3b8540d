package ports

import (
	"github.com/kwallet-network/kwallet/internal/core/domain"
)

// RepoManager gives access to every repository of the wallet.
type RepoManager interface {
	WalletRepository() domain.WalletRepository
	SettingsRepository() domain.SettingsRepository
	Close()
}
