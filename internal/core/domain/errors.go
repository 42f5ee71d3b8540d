package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kwallet-network/kwallet/pkg/mathutil"
)

var (
	// ErrWalletNotFound is returned by the repository when no secret is stored.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrSettingNotFound ...
	ErrSettingNotFound = errors.New("setting not found")
	// ErrUnknownToken ...
	ErrUnknownToken = errors.New("unknown token, must be either KOIN or VHP")
	// ErrUnknownFeeMode ...
	ErrUnknownFeeMode = errors.New("unknown fee mode, must be one of self, sponsored, auto")
	// ErrInvalidRecipient ...
	ErrInvalidRecipient = errors.New("recipient is not a valid address")
	// ErrInvalidSender ...
	ErrInvalidSender = errors.New("sender is not a valid address")
	// ErrZeroAmount ...
	ErrZeroAmount = errors.New("amount must be greater than zero")
	// ErrMalformedSecret is returned when a persisted secret can't be parsed.
	ErrMalformedSecret = errors.New("malformed wallet secret")

	// ErrEstimationFailed is returned when the probe dry-run receipt does not
	// report the resources used.
	ErrEstimationFailed = errors.New("could not estimate the transaction resource usage")
	// ErrInsufficientSponsorResources is returned when the sponsor dry-run
	// keeps failing for lack of resource credits after every allowed bump.
	ErrInsufficientSponsorResources = errors.New(
		"the sponsor does not have enough mana to cover this transaction, try paying the fee yourself",
	)
	// ErrSponsorNotConfigured ...
	ErrSponsorNotConfigured = errors.New("sponsor and probe addresses must be configured to sponsor fees")
)

// InsufficientManaError is returned before building a KOIN transfer whose
// amount exceeds the sender's current mana.
type InsufficientManaError struct {
	Amount    uint64
	Available uint64
	// WaitTime is the estimated time for mana to regenerate up to Amount.
	// It is meaningful only if CanRegenerate is true.
	WaitTime      time.Duration
	CanRegenerate bool
}

func (e *InsufficientManaError) Error() string {
	msg := fmt.Sprintf(
		"insufficient mana: sending %s KOIN requires as much mana, only %s available",
		mathutil.FormatUnits(e.Amount), mathutil.FormatUnits(e.Available),
	)
	if !e.CanRegenerate {
		return msg + ", the amount exceeds the account balance"
	}
	return fmt.Sprintf("%s, wait about %s", msg, FormatDuration(e.WaitTime))
}

// OnChainRejectionError is returned when the chain applies a transaction but
// reverts it.
type OnChainRejectionError struct {
	TxID string
	Logs []string
}

func (e *OnChainRejectionError) Error() string {
	if len(e.Logs) <= 0 {
		return fmt.Sprintf("transaction %s reverted", e.TxID)
	}
	return fmt.Sprintf("transaction %s reverted: %s", e.TxID, strings.Join(e.Logs, "; "))
}
