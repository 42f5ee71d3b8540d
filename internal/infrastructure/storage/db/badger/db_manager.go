package dbbadger

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	"github.com/kwallet-network/kwallet/internal/core/domain"
	"github.com/kwallet-network/kwallet/internal/core/ports"
	log "github.com/sirupsen/logrus"
	"github.com/timshannon/badgerhold/v4"
)

const (
	walletDir   = "wallet"
	settingsDir = "settings"

	indexCacheSize = 10 << 20
	gcInterval     = 30 * time.Minute
)

type repoManager struct {
	walletStore   *badgerhold.Store
	settingsStore *badgerhold.Store

	walletRepository   domain.WalletRepository
	settingsRepository domain.SettingsRepository

	stopGC chan struct{}
}

// NewRepoManager opens (or creates if not exists) the badger stores under
// baseDbDir. The wallet store is encrypted with encryptionKey, a 32 byte
// AES key, while settings are stored in clear. An empty baseDbDir makes
// both stores in-memory.
func NewRepoManager(
	baseDbDir string, encryptionKey []byte, logger badger.Logger,
) (ports.RepoManager, error) {
	var walletDbDir, settingsDbDir string
	if len(baseDbDir) > 0 {
		walletDbDir = filepath.Join(baseDbDir, walletDir)
		settingsDbDir = filepath.Join(baseDbDir, settingsDir)
	}

	stopGC := make(chan struct{})
	walletStore, err := createDb(walletDbDir, encryptionKey, logger, stopGC)
	if err != nil {
		close(stopGC)
		if errors.Is(err, badger.ErrEncryptionKeyMismatch) {
			return nil, ErrInvalidPassword
		}
		return nil, fmt.Errorf("opening wallet db: %w", err)
	}
	settingsStore, err := createDb(settingsDbDir, nil, logger, stopGC)
	if err != nil {
		close(stopGC)
		walletStore.Close()
		return nil, fmt.Errorf("opening settings db: %w", err)
	}

	return &repoManager{
		walletStore:        walletStore,
		settingsStore:      settingsStore,
		walletRepository:   newWalletRepositoryImpl(walletStore),
		settingsRepository: newSettingsRepositoryImpl(settingsStore),
		stopGC:             stopGC,
	}, nil
}

func (r *repoManager) WalletRepository() domain.WalletRepository {
	return r.walletRepository
}

func (r *repoManager) SettingsRepository() domain.SettingsRepository {
	return r.settingsRepository
}

func (r *repoManager) Close() {
	close(r.stopGC)
	if err := r.walletStore.Close(); err != nil {
		log.WithError(err).Warn("failed to close wallet db")
	}
	if err := r.settingsStore.Close(); err != nil {
		log.WithError(err).Warn("failed to close settings db")
	}
}

func createDb(
	dbDir string, encryptionKey []byte, logger badger.Logger, stop <-chan struct{},
) (*badgerhold.Store, error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
		if len(encryptionKey) > 0 {
			opts = opts.WithEncryptionKey(encryptionKey).
				WithIndexCacheSize(indexCacheSize)
		}
	}

	db, err := badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		return nil, err
	}

	if !isInMemory {
		ticker := time.NewTicker(gcInterval)

		go func() {
			defer ticker.Stop()
			for {
				select {
				case <-stop:
					return
				case <-ticker.C:
					if err := db.Badger().RunValueLogGC(0.5); err != nil &&
						err != badger.ErrNoRewrite {
						log.Error(err)
					}
				}
			}
		}()
	}

	return db, nil
}
