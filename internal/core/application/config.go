package application

import (
	"time"

	"github.com/kwallet-network/kwallet/internal/core/domain"
	"github.com/kwallet-network/kwallet/internal/core/ports"
	dbbadger "github.com/kwallet-network/kwallet/internal/infrastructure/storage/db/badger"
	"github.com/kwallet-network/kwallet/internal/infrastructure/storage/db/inmemory"
	"github.com/kwallet-network/kwallet/pkg/rpc"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const (
	DBBadger   = "badger"
	DBInMemory = "inmemory"

	// DefaultRcBump is added to the sponsor rc limit after every dry-run
	// failing for lack of resources, 1 KOIN.
	DefaultRcBump uint64 = 100000000
	// DefaultMaxSponsorAttempts is the max number of sponsor dry-runs.
	DefaultMaxSponsorAttempts = 5
	// DefaultConfirmationTimeout ...
	DefaultConfirmationTimeout = time.Minute
)

var (
	SupportedDBType = map[string]struct{}{
		DBBadger:   {},
		DBInMemory: {},
	}
)

// ChainConfig holds the well-known accounts the wallet talks to.
type ChainConfig struct {
	KoinContract string
	VhpContract  string
	// SponsorAddress pays the fees of sponsored transfers, ProbeAddress is
	// the payer of the estimation dry-run. Both are needed to sponsor.
	SponsorAddress string
	ProbeAddress   string
	// SponsorManaThreshold is the sponsor mana, in base units, above which
	// sponsorship is proposed.
	SponsorManaThreshold uint64
	ManaRegenWindow      time.Duration
}

// TokenContract returns the address of the contract of the given token.
func (c ChainConfig) TokenContract(token domain.Token) (string, error) {
	switch token {
	case domain.TokenKOIN:
		return c.KoinContract, nil
	case domain.TokenVHP:
		return c.VhpContract, nil
	default:
		return "", domain.ErrUnknownToken
	}
}

// CanSponsor ...
func (c ChainConfig) CanSponsor() bool {
	return c.SponsorAddress != "" && c.ProbeAddress != ""
}

// TransferConfig tunes the sponsorship protocol.
type TransferConfig struct {
	RcBump              uint64
	MaxSponsorAttempts  int
	WaitForConfirmation bool
	ConfirmationTimeout time.Duration
}

// Config is the container of every application service. Services are built
// lazily on first access and shared afterwards.
type Config struct {
	DBType string
	// Datadir is where the badger stores live, unused by the inmemory db.
	Datadir string
	// EncryptionKey is the AES key of the wallet store.
	EncryptionKey []byte

	RpcURL               string
	RpcRequestsPerSecond int
	// RpcService, if not nil, is used in place of a client to RpcURL.
	RpcService rpc.Service
	// Registerer, if not nil, is where the rpc client metrics are registered.
	Registerer prometheus.Registerer

	Chain    ChainConfig
	Transfer TransferConfig

	repo      ports.RepoManager
	wallet    WalletService
	estimator FeeEstimator
	account   AccountService
	transfer  TransferService
	settings  SettingsService
}

func (c *Config) Validate() error {
	if _, ok := SupportedDBType[c.DBType]; !ok {
		return ErrUnknownDBType
	}
	if _, err := c.repoManager(); err != nil {
		return err
	}
	if _, err := c.rpcService(); err != nil {
		return err
	}
	return nil
}

func (c *Config) RepoManager() ports.RepoManager {
	svc, _ := c.repoManager()
	return svc
}

func (c *Config) RpcClient() rpc.Service {
	svc, _ := c.rpcService()
	return svc
}

func (c *Config) WalletService() WalletService {
	svc, _ := c.walletService()
	return svc
}

func (c *Config) FeeEstimator() FeeEstimator {
	svc, _ := c.feeEstimator()
	return svc
}

func (c *Config) AccountService() AccountService {
	svc, _ := c.accountService()
	return svc
}

func (c *Config) TransferService() TransferService {
	svc, _ := c.transferService()
	return svc
}

func (c *Config) SettingsService() SettingsService {
	svc, _ := c.settingsService()
	return svc
}

// Close releases the stores.
func (c *Config) Close() {
	if c.repo != nil {
		c.repo.Close()
		c.repo = nil
	}
}

func (c *Config) repoManager() (ports.RepoManager, error) {
	if c.repo == nil {
		switch c.DBType {
		case DBBadger:
			repoManager, err := dbbadger.NewRepoManager(
				c.Datadir, c.EncryptionKey, log.New(),
			)
			if err != nil {
				return nil, err
			}
			c.repo = repoManager
		case DBInMemory:
			c.repo = inmemory.NewRepoManager()
		default:
			return nil, ErrUnknownDBType
		}
	}
	return c.repo, nil
}

func (c *Config) rpcService() (rpc.Service, error) {
	if c.RpcService == nil {
		svc, err := rpc.NewService(rpc.ServiceOpts{
			URL:               c.RpcURL,
			RequestsPerSecond: c.RpcRequestsPerSecond,
			Registerer:        c.Registerer,
		})
		if err != nil {
			return nil, err
		}
		c.RpcService = svc
	}
	return c.RpcService, nil
}

func (c *Config) walletService() (WalletService, error) {
	if c.wallet == nil {
		repo, err := c.repoManager()
		if err != nil {
			return nil, err
		}
		c.wallet = NewWalletService(repo.WalletRepository())
	}
	return c.wallet, nil
}

func (c *Config) feeEstimator() (FeeEstimator, error) {
	if c.estimator == nil {
		svc, err := c.rpcService()
		if err != nil {
			return nil, err
		}
		c.estimator = NewFeeEstimator(svc)
	}
	return c.estimator, nil
}

func (c *Config) accountService() (AccountService, error) {
	if c.account == nil {
		svc, err := c.rpcService()
		if err != nil {
			return nil, err
		}
		c.account = NewAccountService(svc, c.Chain)
	}
	return c.account, nil
}

func (c *Config) transferService() (TransferService, error) {
	if c.transfer == nil {
		svc, err := c.rpcService()
		if err != nil {
			return nil, err
		}
		wallet, err := c.walletService()
		if err != nil {
			return nil, err
		}
		c.transfer = NewTransferService(svc, wallet, c.Chain, c.Transfer)
	}
	return c.transfer, nil
}

func (c *Config) settingsService() (SettingsService, error) {
	if c.settings == nil {
		repo, err := c.repoManager()
		if err != nil {
			return nil, err
		}
		svc, err := c.rpcService()
		if err != nil {
			return nil, err
		}
		c.settings = NewSettingsService(repo.SettingsRepository(), svc)
	}
	return c.settings, nil
}
