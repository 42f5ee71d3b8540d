package bufferutil

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

const (
	// sha2-256 multihash prefix: function code 0x12, digest length 0x20.
	multihashSHA256Code = 0x12
	multihashSHA256Len  = 0x20

	txIDPrefix = "0x1220"
)

var (
	// ErrInvalidBase64 ...
	ErrInvalidBase64 = errors.New("invalid base64 string")
	// ErrInvalidMultihash ...
	ErrInvalidMultihash = errors.New("invalid sha256 multihash")
	// ErrInvalidTxID ...
	ErrInvalidTxID = errors.New("invalid transaction id")
)

// BytesToBase64 encodes bytes with the url-safe alphabet and padding, the
// format nodes expect for every bytes field of a JSON request.
func BytesToBase64(buffer []byte) string {
	return base64.URLEncoding.EncodeToString(buffer)
}

// BytesFromBase64 decodes bytes fields returned by nodes. Both the url-safe
// and standard alphabets are accepted, padded or not.
func BytesFromBase64(str string) ([]byte, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return []byte{}, nil
	}
	encodings := []*base64.Encoding{
		base64.URLEncoding, base64.RawURLEncoding,
		base64.StdEncoding, base64.RawStdEncoding,
	}
	for _, enc := range encodings {
		if buf, err := enc.DecodeString(str); err == nil {
			return buf, nil
		}
	}
	return nil, ErrInvalidBase64
}

// MultihashSHA256 returns sha256(buffer) prefixed with the multihash header.
func MultihashSHA256(buffer []byte) []byte {
	digest := sha256.Sum256(buffer)
	return MultihashFromDigest(digest[:])
}

// MultihashFromDigest prefixes an already computed sha256 digest.
func MultihashFromDigest(digest []byte) []byte {
	return append([]byte{multihashSHA256Code, multihashSHA256Len}, digest...)
}

// DigestFromMultihash strips and checks the multihash header.
func DigestFromMultihash(buffer []byte) ([]byte, error) {
	if len(buffer) != 2+multihashSHA256Len ||
		buffer[0] != multihashSHA256Code || buffer[1] != multihashSHA256Len {
		return nil, ErrInvalidMultihash
	}
	return buffer[2:], nil
}

// TxIDFromDigest returns the hex id of a transaction given the sha256 digest
// of its serialized header.
func TxIDFromDigest(digest []byte) string {
	return txIDPrefix + hex.EncodeToString(digest)
}

// TxIDToDigest is the inverse of TxIDFromDigest.
func TxIDToDigest(str string) ([]byte, error) {
	if !strings.HasPrefix(str, txIDPrefix) {
		return nil, ErrInvalidTxID
	}
	digest, err := hex.DecodeString(strings.TrimPrefix(str, txIDPrefix))
	if err != nil || len(digest) != multihashSHA256Len {
		return nil, ErrInvalidTxID
	}
	return digest, nil
}
