package wallet

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

const (
	// KoinosCoinType is the SLIP-44 coin type registered for Koinos.
	KoinosCoinType = 659

	bip44Purpose = 44
)

// DerivationPath is the internal representation of a hierarchical
// deterministic wallet account
type DerivationPath []uint32

// AccountDerivationPath returns the path m/44'/659'/<account>'/0/0, the
// one used by Kondor compatible wallets.
func AccountDerivationPath(account uint32) (DerivationPath, error) {
	if account > MaxHardenedValue {
		return nil, ErrOutOfRangeAccountIndex
	}
	return DerivationPath{
		hdkeychain.HardenedKeyStart + bip44Purpose,
		hdkeychain.HardenedKeyStart + KoinosCoinType,
		hdkeychain.HardenedKeyStart + account,
		0,
		0,
	}, nil
}

// Account returns the (unhardened) account index of a BIP-44 path.
func (path DerivationPath) Account() (uint32, error) {
	if len(path) != 5 || path[2] < hdkeychain.HardenedKeyStart {
		return 0, ErrInvalidDerivationPath
	}
	return path[2] - hdkeychain.HardenedKeyStart, nil
}

// String converts a binary derivation path to its canonical representation
func (path DerivationPath) String() string {
	if len(path) <= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("m")
	for _, component := range path {
		if component >= hdkeychain.HardenedKeyStart {
			fmt.Fprintf(&b, "/%d'", component-hdkeychain.HardenedKeyStart)
			continue
		}
		fmt.Fprintf(&b, "/%d", component)
	}
	return b.String()
}
