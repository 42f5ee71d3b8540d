// Package koinos implements the subset of the Koinos protocol a wallet needs
// to move tokens: protobuf wire encoding of transaction headers, contract
// call operations and token arguments, transaction ids and signatures.
package koinos

import (
	"errors"
)

const (
	// TokenDecimals is the precision of both KOIN and VHP.
	TokenDecimals = 8

	// TransferEntryPoint is the token contract `transfer` entry point.
	TransferEntryPoint uint32 = 0x27f576ca
	// BalanceOfEntryPoint is the token contract `balance_of` entry point.
	BalanceOfEntryPoint uint32 = 0x5c721497
)

var (
	// ErrNullChainID ...
	ErrNullChainID = errors.New("chain id must not be null")
	// ErrNullPayer ...
	ErrNullPayer = errors.New("payer must not be null")
	// ErrNullOperations ...
	ErrNullOperations = errors.New("transaction must contain at least one operation")
	// ErrZeroRcLimit ...
	ErrZeroRcLimit = errors.New("rc limit must be greater than zero")
	// ErrZeroAmount ...
	ErrZeroAmount = errors.New("amount must be greater than zero")
	// ErrNullSigner ...
	ErrNullSigner = errors.New("signer must not be null")
	// ErrMalformedMessage is returned when decoding a protobuf message fails.
	ErrMalformedMessage = errors.New("malformed protobuf message")
)

// Signer is anything able to produce a compact recoverable signature of a
// 32-byte digest.
type Signer interface {
	SignHash(hash []byte) ([]byte, error)
}
