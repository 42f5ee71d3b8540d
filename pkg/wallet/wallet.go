package wallet

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
)

var (
	// ErrNullMnemonic is an ErrInvalidMnemonic.
	ErrNullMnemonic = fmt.Errorf("%w: must not be null", ErrInvalidMnemonic)
	// ErrNullPrivateKey is an ErrInvalidPrivateKey.
	ErrNullPrivateKey = fmt.Errorf("%w: must not be null", ErrInvalidPrivateKey)
	// ErrNullPassphrase ...
	ErrNullPassphrase = errors.New("passphrase must not be null")
	// ErrNullHash ...
	ErrNullHash = errors.New("hash to sign must not be null")

	// ErrInvalidMnemonic is returned when a mnemonic has a word count other
	// than 12 or 24, contains unknown words or fails the BIP-39 checksum.
	ErrInvalidMnemonic = errors.New("invalid mnemonic phrase")
	// ErrInvalidPrivateKey is returned when a WIF encoded key can't be parsed.
	ErrInvalidPrivateKey = errors.New("invalid WIF private key")
	// ErrInvalidEntropySize ...
	ErrInvalidEntropySize = errors.New(
		"entropy size must be either 128 (12 words) or 256 (24 words)",
	)
	// ErrInvalidDerivationPath ...
	ErrInvalidDerivationPath = errors.New("invalid derivation path")
	// ErrInvalidHashLength ...
	ErrInvalidHashLength = errors.New("hash to sign must be 32 bytes long")
	// ErrInvalidAddress ...
	ErrInvalidAddress = errors.New("invalid address")
	// ErrOutOfRangeAccountIndex ...
	ErrOutOfRangeAccountIndex = fmt.Errorf(
		"account index must be in range [0, %d]", MaxHardenedValue,
	)
)

// Signer holds the secp256k1 key of a single Koinos account and knows how to
// serialize it (address, WIF) and sign digests with it.
type Signer struct {
	privateKey *btcec.PrivateKey
	compressed bool
	// derivationPath is empty for keys imported from WIF.
	derivationPath DerivationPath
}

// Address returns the base58check address of the signer.
func (s *Signer) Address() string {
	return AddressFromPublicKey(s.privateKey.PubKey(), s.compressed)
}

// PublicKey returns the serialized public key, compressed or not according
// to how the signer was created.
func (s *Signer) PublicKey() []byte {
	if s.compressed {
		return s.privateKey.PubKey().SerializeCompressed()
	}
	return s.privateKey.PubKey().SerializeUncompressed()
}

// IsCompressed returns whether the address is derived from the compressed
// form of the public key.
func (s *Signer) IsCompressed() bool {
	return s.compressed
}

// DerivationPath returns the HD path the key was derived at, if any.
func (s *Signer) DerivationPath() DerivationPath {
	return s.derivationPath
}
