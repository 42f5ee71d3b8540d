package application

import (
	"errors"
	"fmt"
)

var (
	// ErrWalletNotLoaded is returned by operations that need a signer before
	// a wallet has been loaded, generated or imported.
	ErrWalletNotLoaded = errors.New("no wallet loaded")
	// ErrUnknownDBType ...
	ErrUnknownDBType = errors.New("unknown db type")
	// ErrSenderMismatch is returned when the transfer sender is not the
	// loaded wallet.
	ErrSenderMismatch = errors.New("sender is not the address of the loaded wallet")
	// ErrEmptyReceipt ...
	ErrEmptyReceipt = errors.New("node returned no receipt")
)

// TransferError is the error returned by TransferService. Message tells the
// step of the flow that failed, Err the cause.
type TransferError struct {
	Message string
	Err     error
}

func (e *TransferError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}
