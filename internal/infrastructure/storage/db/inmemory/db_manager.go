package inmemory

import (
	"sync"

	"github.com/kwallet-network/kwallet/internal/core/domain"
	"github.com/kwallet-network/kwallet/internal/core/ports"
)

type walletInmemoryStore struct {
	secret  *string
	address string
	locker  *sync.RWMutex
}

type settingsInmemoryStore struct {
	settings map[string]string
	locker   *sync.RWMutex
}

// RepoManager keeps every repository in process memory. Nothing survives a
// restart.
type RepoManager struct {
	walletRepository   domain.WalletRepository
	settingsRepository domain.SettingsRepository
}

func NewRepoManager() ports.RepoManager {
	walletStore := &walletInmemoryStore{locker: &sync.RWMutex{}}
	settingsStore := &settingsInmemoryStore{
		settings: map[string]string{},
		locker:   &sync.RWMutex{},
	}

	return &RepoManager{
		walletRepository:   NewWalletRepositoryImpl(walletStore),
		settingsRepository: NewSettingsRepositoryImpl(settingsStore),
	}
}

func (d *RepoManager) WalletRepository() domain.WalletRepository {
	return d.walletRepository
}

func (d *RepoManager) SettingsRepository() domain.SettingsRepository {
	return d.settingsRepository
}

func (d *RepoManager) Close() {}
