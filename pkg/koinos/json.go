package koinos

import (
	"encoding/json"
	"strconv"

	"github.com/kwallet-network/kwallet/pkg/bufferutil"
	"github.com/kwallet-network/kwallet/pkg/wallet"
)

type jsonHeader struct {
	ChainID             string `json:"chain_id,omitempty"`
	RcLimit             string `json:"rc_limit,omitempty"`
	Nonce               string `json:"nonce,omitempty"`
	OperationMerkleRoot string `json:"operation_merkle_root,omitempty"`
	Payer               string `json:"payer,omitempty"`
	Payee               string `json:"payee,omitempty"`
}

type jsonCallContract struct {
	ContractID string `json:"contract_id"`
	EntryPoint uint32 `json:"entry_point"`
	Args       string `json:"args,omitempty"`
}

type jsonOperation struct {
	CallContract jsonCallContract `json:"call_contract"`
}

type jsonTransaction struct {
	ID         string          `json:"id"`
	Header     jsonHeader      `json:"header"`
	Operations []jsonOperation `json:"operations"`
	Signatures []string        `json:"signatures,omitempty"`
}

// MarshalJSON encodes the transaction the way nodes expect it: bytes as
// padded base64url, addresses as base58, uint64 values as strings.
func (tx Transaction) MarshalJSON() ([]byte, error) {
	h := tx.Header
	out := jsonTransaction{
		ID: tx.ID,
		Header: jsonHeader{
			ChainID:             encodeBytes(h.ChainID),
			Nonce:               encodeBytes(h.Nonce),
			OperationMerkleRoot: encodeBytes(h.OperationMerkleRoot),
			Payer:               encodeAddress(h.Payer),
			Payee:               encodeAddress(h.Payee),
		},
		Operations: make([]jsonOperation, 0, len(tx.Operations)),
	}
	if h.RcLimit > 0 {
		out.Header.RcLimit = strconv.FormatUint(h.RcLimit, 10)
	}
	for _, op := range tx.Operations {
		out.Operations = append(out.Operations, jsonOperation{
			CallContract: jsonCallContract{
				ContractID: encodeAddress(op.ContractID),
				EntryPoint: op.EntryPoint,
				Args:       encodeBytes(op.Args),
			},
		})
	}
	for _, sig := range tx.Signatures {
		out.Signatures = append(out.Signatures, bufferutil.BytesToBase64(sig))
	}
	return json.Marshal(out)
}

func encodeBytes(b []byte) string {
	if len(b) <= 0 {
		return ""
	}
	return bufferutil.BytesToBase64(b)
}

func encodeAddress(b []byte) string {
	if len(b) <= 0 {
		return ""
	}
	return wallet.EncodeAddress(b)
}
