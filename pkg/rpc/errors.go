package rpc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRPC matches, via errors.Is, every error returned by the client.
var ErrRPC = errors.New("rpc error")

var (
	// ErrInvalidURL ...
	ErrInvalidURL = errors.New("rpc url must be an absolute http(s) url")
	// ErrTransactionNotFound ...
	ErrTransactionNotFound = errors.New("transaction not found")
)

// InsufficientRcCodes are the chain error codes that denote a transaction
// exceeding its payer's resource credits or its rc limit.
var InsufficientRcCodes = map[int]struct{}{
	3: {},
}

const insufficientRcMessage = "insufficient rc"

// Error describes a failed RPC call: a transport failure, an undecodable
// response or an error object returned by the node.
type Error struct {
	Method string
	// Code is the JSON-RPC error code, or the http status if the body could
	// not be decoded.
	Code    int
	Message string
	// ChainCode and Logs are extracted from the error data, if any.
	ChainCode int
	Logs      []string
	Err       error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Code != 0 {
		return fmt.Sprintf("%s: %s (code %d)", e.Method, msg, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Method, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes every *Error match ErrRPC.
func (e *Error) Is(target error) bool {
	return target == ErrRPC
}

// IsInsufficientRc returns whether err is the retryable condition of a
// transaction whose rc limit or payer balance is too low. Structured chain
// codes are checked first, then the message and the logs.
func IsInsufficientRc(err error) bool {
	var rpcErr *Error
	if !errors.As(err, &rpcErr) {
		return false
	}
	if _, ok := InsufficientRcCodes[rpcErr.ChainCode]; ok {
		return true
	}
	return containsInsufficientRc(append([]string{rpcErr.Message}, rpcErr.Logs...))
}

// InsufficientRc returns whether a reverted receipt failed for lack of
// resource credits.
func (r Receipt) InsufficientRc() bool {
	return r.Reverted && containsInsufficientRc(r.Logs)
}

func containsInsufficientRc(msgs []string) bool {
	for _, msg := range msgs {
		if strings.Contains(strings.ToLower(msg), insufficientRcMessage) {
			return true
		}
	}
	return false
}
