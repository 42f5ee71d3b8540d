package wallet

import (
	"strings"
)

const (
	// EntropySize12Words is the entropy (in bits) of a 12-word mnemonic.
	EntropySize12Words = 128
	// EntropySize24Words is the entropy (in bits) of a 24-word mnemonic.
	EntropySize24Words = 256
)

type NewMnemonicOpts struct {
	EntropySize int
}

func (o NewMnemonicOpts) validate() error {
	if o.EntropySize == 0 {
		return nil
	}
	if o.EntropySize != EntropySize12Words && o.EntropySize != EntropySize24Words {
		return ErrInvalidEntropySize
	}
	return nil
}

// NewMnemonic returns a new mnemonic as a space separated list of words.
// Defaults to 12 words.
func NewMnemonic(opts NewMnemonicOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	if opts.EntropySize == 0 {
		opts.EntropySize = EntropySize12Words
	}

	return generateMnemonic(opts.EntropySize)
}

// ValidateMnemonic returns ErrInvalidMnemonic unless the given phrase is made
// of exactly 12 or 24 words of the BIP-39 english list with a valid checksum.
func ValidateMnemonic(mnemonic string) error {
	if len(strings.TrimSpace(mnemonic)) <= 0 {
		return ErrNullMnemonic
	}
	words := strings.Fields(mnemonic)
	if len(words) != 12 && len(words) != 24 {
		return ErrInvalidMnemonic
	}
	if !isMnemonicValid(words) {
		return ErrInvalidMnemonic
	}
	return nil
}

// NormalizeMnemonic lowercases the phrase and collapses any whitespace run
// into a single space.
func NormalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(strings.ToLower(mnemonic)), " ")
}
