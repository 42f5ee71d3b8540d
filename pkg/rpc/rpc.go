// Package rpc is a typed client of the Koinos JSON-RPC 2.0 API.
package rpc

import (
	"context"
	"time"

	"github.com/kwallet-network/kwallet/pkg/koinos"
)

// DefaultURL is the public mainnet endpoint.
const DefaultURL = "https://api.koinos.io"

// Service is the set of chain queries and commands the wallet relies on.
// Every method returns an *Error on failure.
type Service interface {
	GetHeadInfo(ctx context.Context) (*HeadInfo, error)
	GetChainID(ctx context.Context) ([]byte, error)
	// GetAccountRc returns the account's current resource credits (mana)
	// in raw units.
	GetAccountRc(ctx context.Context, address string) (uint64, error)
	// GetAccountNonce returns the last nonce used by the account, the next
	// transaction must use this value plus one.
	GetAccountNonce(ctx context.Context, address string) (uint64, error)
	GetTokenBalance(ctx context.Context, contract, address string) (uint64, error)
	GetResourceCosts(ctx context.Context) (*ResourceCosts, error)
	ReadContract(ctx context.Context, contract string, entryPoint uint32, args []byte) ([]byte, error)
	// SubmitTransaction sends tx to the node. With broadcast false the node
	// only applies it to its pending state (dry-run) and returns the receipt.
	SubmitTransaction(ctx context.Context, tx koinos.Transaction, broadcast bool) (*Receipt, error)
	// WaitForInclusion blocks until the transaction is found in a block and
	// returns the block id.
	WaitForInclusion(ctx context.Context, txID string) (string, error)

	// Endpoint returns the URL requests are currently sent to.
	Endpoint() string
	// SetEndpoint changes the URL used by every following request.
	SetEndpoint(url string) error
	// Snapshot returns a Service bound to the current endpoint, unaffected
	// by later SetEndpoint calls on the receiver.
	Snapshot() Service
}

// HeadInfo ...
type HeadInfo struct {
	HeadBlockID           string
	Height                uint64
	PreviousBlockID       string
	LastIrreversibleBlock uint64
	HeadBlockTime         time.Time
}

// ResourceCosts are the current market prices of the three chain resources,
// in rc units per resource unit.
type ResourceCosts struct {
	DiskStorageLimit      uint64
	DiskStorageCost       uint64
	NetworkBandwidthLimit uint64
	NetworkBandwidthCost  uint64
	ComputeBandwidthLimit uint64
	ComputeBandwidthCost  uint64
}

// Receipt is the outcome of applying a transaction.
type Receipt struct {
	ID                   string
	Payer                string
	MaxPayerRc           uint64
	RcLimit              uint64
	RcUsed               uint64
	DiskStorageUsed      uint64
	NetworkBandwidthUsed uint64
	ComputeBandwidthUsed uint64
	Reverted             bool
	Logs                 []string
	Events               []Event
}

// Event is a contract event emitted while applying a transaction.
type Event struct {
	Source   string
	Name     string
	Data     []byte
	Impacted []string
	Sequence uint32
}
