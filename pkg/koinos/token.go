package koinos

import (
	"github.com/kwallet-network/kwallet/pkg/wallet"
)

// NewTransferOperation returns the call_contract operation that moves value
// units of the token at contract from one account to another.
func NewTransferOperation(contract, from, to string, value uint64) (Operation, error) {
	if value == 0 {
		return Operation{}, ErrZeroAmount
	}
	contractID, err := wallet.DecodeAddress(contract)
	if err != nil {
		return Operation{}, err
	}
	fromBytes, err := wallet.DecodeAddress(from)
	if err != nil {
		return Operation{}, err
	}
	toBytes, err := wallet.DecodeAddress(to)
	if err != nil {
		return Operation{}, err
	}

	return Operation{
		ContractID: contractID,
		EntryPoint: TransferEntryPoint,
		Args:       EncodeTransferArgs(fromBytes, toBytes, value),
	}, nil
}
