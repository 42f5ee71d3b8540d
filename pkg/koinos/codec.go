package koinos

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the koinos protocol messages. Default values (zero,
// empty) are never written, as a proto3 encoder would do.
const (
	headerChainIDField             protowire.Number = 1
	headerRcLimitField             protowire.Number = 2
	headerNonceField               protowire.Number = 3
	headerOperationMerkleRootField protowire.Number = 4
	headerPayerField               protowire.Number = 5
	headerPayeeField               protowire.Number = 6

	operationCallContractField protowire.Number = 2

	callContractIDField         protowire.Number = 1
	callContractEntryPointField protowire.Number = 2
	callContractArgsField       protowire.Number = 3

	transferFromField  protowire.Number = 1
	transferToField    protowire.Number = 2
	transferValueField protowire.Number = 3

	balanceOfOwnerField  protowire.Number = 1
	uint64ResultField    protowire.Number = 1
	valueTypeUint64Field protowire.Number = 5
)

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) <= 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// serializeHeader returns the canonical encoding of the header, the
// preimage of the transaction id.
func serializeHeader(h Header) []byte {
	var b []byte
	b = appendBytes(b, headerChainIDField, h.ChainID)
	b = appendVarint(b, headerRcLimitField, h.RcLimit)
	b = appendBytes(b, headerNonceField, h.Nonce)
	b = appendBytes(b, headerOperationMerkleRootField, h.OperationMerkleRoot)
	b = appendBytes(b, headerPayerField, h.Payer)
	b = appendBytes(b, headerPayeeField, h.Payee)
	return b
}

func serializeOperation(op Operation) []byte {
	var call []byte
	call = appendBytes(call, callContractIDField, op.ContractID)
	call = appendVarint(call, callContractEntryPointField, uint64(op.EntryPoint))
	call = appendBytes(call, callContractArgsField, op.Args)

	b := protowire.AppendTag(nil, operationCallContractField, protowire.BytesType)
	return protowire.AppendBytes(b, call)
}

// EncodeTransferArgs serializes koinos.contracts.token.transfer_arguments.
func EncodeTransferArgs(from, to []byte, value uint64) []byte {
	var b []byte
	b = appendBytes(b, transferFromField, from)
	b = appendBytes(b, transferToField, to)
	b = appendVarint(b, transferValueField, value)
	return b
}

// EncodeBalanceOfArgs serializes koinos.contracts.token.balance_of_arguments.
func EncodeBalanceOfArgs(owner []byte) []byte {
	return appendBytes(nil, balanceOfOwnerField, owner)
}

// DecodeUint64Result parses a message whose only field is `uint64 value = 1`
// like balance_of_result. An empty message is a zero value.
func DecodeUint64Result(b []byte) (uint64, error) {
	return decodeUint64Field(b, uint64ResultField)
}

// EncodeNonce serializes a nonce as a koinos.chain.value_type carrying
// uint64_value.
func EncodeNonce(nonce uint64) []byte {
	b := protowire.AppendTag(nil, valueTypeUint64Field, protowire.VarintType)
	return protowire.AppendVarint(b, nonce)
}

// DecodeNonce is the inverse of EncodeNonce.
func DecodeNonce(b []byte) (uint64, error) {
	return decodeUint64Field(b, valueTypeUint64Field)
}

func decodeUint64Field(b []byte, target protowire.Number) (uint64, error) {
	var value uint64
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return 0, ErrMalformedMessage
		}
		b = b[n:]

		if num == target && typ == protowire.VarintType {
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return 0, ErrMalformedMessage
			}
			value = v
			b = b[n:]
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return 0, ErrMalformedMessage
		}
		b = b[n:]
	}
	return value, nil
}
