package dbbadger

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/kwallet-network/kwallet/pkg/wallet"
)

const saltFile = "wallet.salt"

// EncryptionKeyOpts is the struct given to EncryptionKey method
type EncryptionKeyOpts struct {
	Datadir  string
	Password string
	// CostParam is the scrypt cost, see wallet.DeriveKeyOpts.
	CostParam int
}

// EncryptionKey derives the wallet db key from the store password. The salt
// is generated the first time and kept in clear next to the db.
func EncryptionKey(opts EncryptionKeyOpts) ([]byte, error) {
	if len(opts.Password) <= 0 {
		return nil, ErrNullPassword
	}

	saltPath := filepath.Join(opts.Datadir, saltFile)
	salt, err := os.ReadFile(saltPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if len(salt) != wallet.SaltLength {
		salt = nil
	}

	key, newSalt, err := wallet.DeriveKey(wallet.DeriveKeyOpts{
		Passphrase: opts.Password,
		Salt:       salt,
		CostParam:  opts.CostParam,
	})
	if err != nil {
		return nil, err
	}

	if salt == nil {
		if err := os.MkdirAll(opts.Datadir, 0700); err != nil {
			return nil, err
		}
		if err := os.WriteFile(saltPath, newSalt, 0600); err != nil {
			return nil, err
		}
	}
	return key, nil
}
