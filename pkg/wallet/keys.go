package wallet

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// NewSignerFromMnemonicOpts is the struct given to NewSignerFromMnemonic
type NewSignerFromMnemonicOpts struct {
	Mnemonic     string
	AccountIndex uint32
}

func (o NewSignerFromMnemonicOpts) validate() error {
	if err := ValidateMnemonic(o.Mnemonic); err != nil {
		return err
	}
	if o.AccountIndex > MaxHardenedValue {
		return ErrOutOfRangeAccountIndex
	}
	return nil
}

// NewSignerFromMnemonic derives the key at m/44'/659'/<account>'/0/0 from the
// given mnemonic. The resulting signer always uses the compressed public key,
// the uncompressed form would yield a different address.
func NewSignerFromMnemonic(opts NewSignerFromMnemonicOpts) (*Signer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	path, err := AccountDerivationPath(opts.AccountIndex)
	if err != nil {
		return nil, err
	}

	seed := generateSeedFromMnemonic(strings.Fields(NormalizeMnemonic(opts.Mnemonic)))
	hdNode, err := deriveKey(seed, path)
	if err != nil {
		return nil, err
	}
	privateKey, err := hdNode.ECPrivKey()
	if err != nil {
		return nil, err
	}

	return &Signer{
		privateKey:     privateKey,
		compressed:     true,
		derivationPath: path,
	}, nil
}

// NewSignerFromWIF parses a mainnet WIF encoded private key. Whether the
// address is derived from the compressed public key depends on the WIF
// compression flag (keys starting with '5' are uncompressed).
func NewSignerFromWIF(wif string) (*Signer, error) {
	wif = strings.TrimSpace(wif)
	if len(wif) <= 0 {
		return nil, ErrNullPrivateKey
	}

	decoded, err := btcutil.DecodeWIF(wif)
	if err != nil {
		return nil, ErrInvalidPrivateKey
	}
	// PrivateKeyWIF re-encodes with the mainnet version byte
	if !decoded.IsForNet(&chaincfg.MainNetParams) {
		return nil, ErrInvalidPrivateKey
	}

	return &Signer{
		privateKey: decoded.PrivKey,
		compressed: decoded.CompressPubKey,
	}, nil
}

// PrivateKeyWIF returns the private key in WIF format, with the same
// compression flag the signer was created with.
func (s *Signer) PrivateKeyWIF() string {
	wif, err := btcutil.NewWIF(s.privateKey, &chaincfg.MainNetParams, s.compressed)
	if err != nil {
		// only fails for a nil network
		return ""
	}
	return wif.String()
}
