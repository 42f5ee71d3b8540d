package wallet

import (
	"bytes"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

const (
	// SignatureLength is the size of a compact recoverable signature:
	// header byte (31 + recovery id for compressed keys) || r || s.
	SignatureLength = 65
	hashLength      = 32
)

// SignHash signs a 32-byte digest and returns a compact recoverable
// signature.
func (s *Signer) SignHash(hash []byte) ([]byte, error) {
	if len(hash) <= 0 {
		return nil, ErrNullHash
	}
	if len(hash) != hashLength {
		return nil, ErrInvalidHashLength
	}
	return ecdsa.SignCompact(s.privateKey, hash, s.compressed)
}

// RecoverAddress returns the address of the key that produced sig over hash.
func RecoverAddress(hash, sig []byte) (string, error) {
	if len(hash) != hashLength {
		return "", ErrInvalidHashLength
	}
	pubkey, compressed, err := ecdsa.RecoverCompact(sig, hash)
	if err != nil {
		return "", err
	}
	return AddressFromPublicKey(pubkey, compressed), nil
}

// VerifyHash returns whether sig is a valid signature of hash made by the
// signer.
func (s *Signer) VerifyHash(hash, sig []byte) bool {
	pubkey, _, err := ecdsa.RecoverCompact(sig, hash)
	if err != nil {
		return false
	}
	return bytes.Equal(
		pubkey.SerializeCompressed(), s.privateKey.PubKey().SerializeCompressed(),
	)
}
