package application

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/kwallet-network/kwallet/internal/core/domain"
	"github.com/kwallet-network/kwallet/pkg/wallet"
	log "github.com/sirupsen/logrus"
)

// WalletInfo is the result of loading the wallet from storage.
type WalletInfo struct {
	Address   string
	HasWallet bool
	// DerivationPath is empty for wallets imported from a private key.
	DerivationPath string
}

func newWalletInfo(signer *wallet.Signer) WalletInfo {
	return WalletInfo{
		Address:        signer.Address(),
		HasWallet:      true,
		DerivationPath: signer.DerivationPath().String(),
	}
}

// WalletService manages the single account of the wallet: its creation,
// import, persistence and the signer derived from it.
type WalletService interface {
	GenerateWallet(ctx context.Context) (mnemonic, address string, err error)
	ImportFromMnemonic(
		ctx context.Context, mnemonic string, accountIndex uint32,
	) (string, error)
	ImportFromWIF(ctx context.Context, wif string) (string, error)
	// LoadWallet reads the stored secret and derives the signer. It's
	// idempotent, storage and derivation failures are logged and reported
	// as HasWallet=false.
	LoadWallet(ctx context.Context) (WalletInfo, error)
	// Signer and Address are nil and "" until a wallet is loaded.
	Signer() *wallet.Signer
	Address() string
	// SeedPhrase returns false for wallets imported from a private key.
	SeedPhrase(ctx context.Context) (string, bool, error)
	PrivateKey() string
	HasWallet(ctx context.Context) (bool, error)
	HasSeedPhrase(ctx context.Context) (bool, error)
	DeleteWallet(ctx context.Context) error
}

type walletService struct {
	repo domain.WalletRepository

	lock   *sync.RWMutex
	signer *wallet.Signer
	secret *domain.Secret
}

func NewWalletService(repo domain.WalletRepository) WalletService {
	return &walletService{
		repo: repo,
		lock: &sync.RWMutex{},
	}
}

func (w *walletService) GenerateWallet(ctx context.Context) (string, string, error) {
	mnemonic, err := wallet.NewMnemonic(wallet.NewMnemonicOpts{})
	if err != nil {
		return "", "", err
	}
	address, err := w.storeSecret(ctx, domain.NewMnemonicSecret(mnemonic, 0))
	if err != nil {
		return "", "", err
	}
	return mnemonic, address, nil
}

func (w *walletService) ImportFromMnemonic(
	ctx context.Context, mnemonic string, accountIndex uint32,
) (string, error) {
	mnemonic = wallet.NormalizeMnemonic(mnemonic)
	if err := wallet.ValidateMnemonic(mnemonic); err != nil {
		return "", err
	}
	return w.storeSecret(ctx, domain.NewMnemonicSecret(mnemonic, accountIndex))
}

func (w *walletService) ImportFromWIF(ctx context.Context, wif string) (string, error) {
	return w.storeSecret(ctx, domain.NewWIFSecret(strings.TrimSpace(wif)))
}

func (w *walletService) LoadWallet(ctx context.Context) (WalletInfo, error) {
	if err := ctx.Err(); err != nil {
		return WalletInfo{}, err
	}
	if signer := w.Signer(); signer != nil {
		return newWalletInfo(signer), nil
	}

	w.lock.Lock()
	defer w.lock.Unlock()

	// loaded concurrently while waiting for the lock
	if w.signer != nil {
		return newWalletInfo(w.signer), nil
	}

	stored, err := w.repo.GetSecret(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrWalletNotFound) {
			log.WithError(err).Warn("failed to read wallet secret")
		}
		return WalletInfo{}, nil
	}
	secret, err := domain.ParseSecret(stored)
	if err != nil {
		log.WithError(err).Warn("failed to parse wallet secret")
		return WalletInfo{}, nil
	}
	signer, err := signerFromSecret(secret)
	if err != nil {
		log.WithError(err).Warn("failed to derive wallet key")
		return WalletInfo{}, nil
	}

	address := signer.Address()
	storedAddress, err := w.repo.GetAddress(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to read wallet address")
	}
	if storedAddress != address {
		if storedAddress != "" {
			log.WithFields(log.Fields{
				"stored":  storedAddress,
				"derived": address,
			}).Warn("stored address does not match the wallet key, correcting")
		}
		if err := w.repo.SetAddress(ctx, address); err != nil {
			log.WithError(err).Warn("failed to store wallet address")
		}
	}

	w.signer = signer
	w.secret = &secret
	return newWalletInfo(signer), nil
}

func (w *walletService) Signer() *wallet.Signer {
	w.lock.RLock()
	defer w.lock.RUnlock()
	return w.signer
}

func (w *walletService) Address() string {
	w.lock.RLock()
	defer w.lock.RUnlock()

	if w.signer == nil {
		return ""
	}
	return w.signer.Address()
}

func (w *walletService) SeedPhrase(ctx context.Context) (string, bool, error) {
	info, err := w.LoadWallet(ctx)
	if err != nil {
		return "", false, err
	}
	if !info.HasWallet {
		return "", false, ErrWalletNotLoaded
	}

	w.lock.RLock()
	defer w.lock.RUnlock()

	if w.secret.Kind != domain.SecretMnemonic {
		return "", false, nil
	}
	return w.secret.Mnemonic, true, nil
}

func (w *walletService) PrivateKey() string {
	signer := w.Signer()
	if signer == nil {
		return ""
	}
	return signer.PrivateKeyWIF()
}

func (w *walletService) HasWallet(ctx context.Context) (bool, error) {
	info, err := w.LoadWallet(ctx)
	if err != nil {
		return false, err
	}
	return info.HasWallet, nil
}

func (w *walletService) HasSeedPhrase(ctx context.Context) (bool, error) {
	_, ok, err := w.SeedPhrase(ctx)
	if err != nil {
		if errors.Is(err, ErrWalletNotLoaded) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

func (w *walletService) DeleteWallet(ctx context.Context) error {
	w.lock.Lock()
	defer w.lock.Unlock()

	if err := w.repo.Delete(ctx); err != nil {
		return err
	}
	w.signer = nil
	w.secret = nil
	return nil
}

// storeSecret derives the signer of secret, persists both the secret and
// the address and replaces the cached wallet.
func (w *walletService) storeSecret(
	ctx context.Context, secret domain.Secret,
) (string, error) {
	signer, err := signerFromSecret(secret)
	if err != nil {
		return "", err
	}
	address := signer.Address()

	w.lock.Lock()
	defer w.lock.Unlock()

	if err := w.repo.SetSecret(ctx, secret.String()); err != nil {
		return "", err
	}
	if err := w.repo.SetAddress(ctx, address); err != nil {
		return "", err
	}

	w.signer = signer
	w.secret = &secret
	log.WithField("address", address).Debug("wallet stored")
	return address, nil
}

func signerFromSecret(secret domain.Secret) (*wallet.Signer, error) {
	if secret.Kind == domain.SecretWIF {
		return wallet.NewSignerFromWIF(secret.WIF)
	}
	return wallet.NewSignerFromMnemonic(wallet.NewSignerFromMnemonicOpts{
		Mnemonic:     secret.Mnemonic,
		AccountIndex: secret.AccountIndex,
	})
}
