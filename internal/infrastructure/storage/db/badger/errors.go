package dbbadger

import "errors"

var (
	// ErrInvalidPassword is returned when the wallet db can't be decrypted
	// with the derived key.
	ErrInvalidPassword = errors.New("invalid store password")
	// ErrNullPassword ...
	ErrNullPassword = errors.New("store password must not be null")
)
