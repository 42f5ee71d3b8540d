package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	secretMnemonicTag = "mnemonic"
	secretWIFTag      = "wif"
)

// SecretKind tells how a wallet was created.
type SecretKind int

const (
	// SecretMnemonic is a wallet derived from a seed phrase.
	SecretMnemonic SecretKind = iota
	// SecretWIF is a wallet imported from a raw private key.
	SecretWIF
)

// Secret is the persisted material a wallet is derived from.
type Secret struct {
	Kind         SecretKind
	Mnemonic     string
	AccountIndex uint32
	WIF          string
}

// NewMnemonicSecret ...
func NewMnemonicSecret(mnemonic string, accountIndex uint32) Secret {
	return Secret{Kind: SecretMnemonic, Mnemonic: mnemonic, AccountIndex: accountIndex}
}

// NewWIFSecret ...
func NewWIFSecret(wif string) Secret {
	return Secret{Kind: SecretWIF, WIF: wif}
}

// String serializes the secret as `mnemonic:<index>:<words>` or `wif:<key>`.
func (s Secret) String() string {
	if s.Kind == SecretWIF {
		return fmt.Sprintf("%s:%s", secretWIFTag, s.WIF)
	}
	return fmt.Sprintf("%s:%d:%s", secretMnemonicTag, s.AccountIndex, s.Mnemonic)
}

// ParseSecret is the inverse of Secret.String. Untagged records, written by
// older versions, are mnemonics of account 0.
func ParseSecret(str string) (Secret, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return Secret{}, ErrMalformedSecret
	}

	switch {
	case strings.HasPrefix(str, secretWIFTag+":"):
		wif := strings.TrimPrefix(str, secretWIFTag+":")
		if wif == "" {
			return Secret{}, ErrMalformedSecret
		}
		return NewWIFSecret(wif), nil
	case strings.HasPrefix(str, secretMnemonicTag+":"):
		parts := strings.SplitN(strings.TrimPrefix(str, secretMnemonicTag+":"), ":", 2)
		if len(parts) != 2 || parts[1] == "" {
			return Secret{}, ErrMalformedSecret
		}
		index, err := strconv.ParseUint(parts[0], 10, 32)
		if err != nil {
			return Secret{}, ErrMalformedSecret
		}
		return NewMnemonicSecret(parts[1], uint32(index)), nil
	default:
		return NewMnemonicSecret(str, 0), nil
	}
}
