package wallet

import (
	"crypto/rand"

	"golang.org/x/crypto/scrypt"
)

const (
	// StoreKeyLength is the length of the key derived by DeriveKey, suitable
	// for AES-256.
	StoreKeyLength = 32
	// SaltLength ...
	SaltLength = 32
)

// DeriveKeyOpts is the struct given to DeriveKey method
type DeriveKeyOpts struct {
	Passphrase string
	Salt       []byte
	// CostParam is the scrypt N parameter, defaults to 2^20.
	CostParam int
}

func (o DeriveKeyOpts) validate() error {
	if len(o.Passphrase) <= 0 {
		return ErrNullPassphrase
	}
	return nil
}

// DeriveKey derives a 32 byte array key from a custom passhprase. A random
// salt is generated if none is given, and returned along with the key so
// that the caller can persist it.
func DeriveKey(opts DeriveKeyOpts) ([]byte, []byte, error) {
	if err := opts.validate(); err != nil {
		return nil, nil, err
	}

	salt := opts.Salt
	if salt == nil {
		salt = make([]byte, SaltLength)
		if _, err := rand.Read(salt); err != nil {
			return nil, nil, err
		}
	}
	n := opts.CostParam
	if n <= 0 {
		// 2^20 = 1048576 recommended length for key-stretching
		// check the doc for other recommended values:
		// https://godoc.org/golang.org/x/crypto/scrypt
		n = 1 << 20
	}
	key, err := scrypt.Key([]byte(opts.Passphrase), salt, n, 8, 1, StoreKeyLength)
	if err != nil {
		return nil, nil, err
	}
	return key, salt, nil
}
