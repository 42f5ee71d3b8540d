package wallet

import (
	"regexp"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	// addressVersion is the version byte prepended to the pubkey hash.
	addressVersion = 0x00

	minAddressLength = 26
	maxAddressLength = 35
)

// base58 alphabet, without 0, O, I and l.
var base58Regexp = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]+$`)

// AddressFromPublicKey returns the base58check encoding of
// 0x00 || RIPEMD160(SHA256(pubkey)).
func AddressFromPublicKey(pubkey *btcec.PublicKey, compressed bool) string {
	serialized := pubkey.SerializeUncompressed()
	if compressed {
		serialized = pubkey.SerializeCompressed()
	}
	return base58.CheckEncode(btcutil.Hash160(serialized), addressVersion)
}

// IsValidAddress performs the cheap syntactic check used before sending:
// the string must only use the base58 alphabet and be 26 to 35 chars long.
func IsValidAddress(address string) bool {
	if len(address) < minAddressLength || len(address) > maxAddressLength {
		return false
	}
	return base58Regexp.MatchString(address)
}

// DecodeAddress returns the raw 25 bytes (version, hash, checksum) of an
// address, as they are serialized into transactions and contract arguments.
// The checksum is verified.
func DecodeAddress(address string) ([]byte, error) {
	if !IsValidAddress(address) {
		return nil, ErrInvalidAddress
	}
	if _, _, err := base58.CheckDecode(address); err != nil {
		return nil, ErrInvalidAddress
	}
	return base58.Decode(address), nil
}

// EncodeAddress is the inverse of DecodeAddress.
func EncodeAddress(raw []byte) string {
	return base58.Encode(raw)
}
