package koinos

import (
	"crypto/sha256"

	"github.com/kwallet-network/kwallet/pkg/bufferutil"
)

// Header is the signed part of a transaction. Payer and Payee are raw
// 25-byte addresses, Nonce is a serialized value_type.
type Header struct {
	ChainID             []byte
	RcLimit             uint64
	Nonce               []byte
	OperationMerkleRoot []byte
	Payer               []byte
	Payee               []byte
}

func (h Header) copy() Header {
	return Header{
		ChainID:             cloneBytes(h.ChainID),
		RcLimit:             h.RcLimit,
		Nonce:               cloneBytes(h.Nonce),
		OperationMerkleRoot: cloneBytes(h.OperationMerkleRoot),
		Payer:               cloneBytes(h.Payer),
		Payee:               cloneBytes(h.Payee),
	}
}

// Operation is a call_contract operation. ContractID is the raw address of
// the called contract.
type Operation struct {
	ContractID []byte
	EntryPoint uint32
	Args       []byte
}

// Transaction is an immutable value: every transform returns a new
// transaction whose id is recomputed and whose signatures are cleared.
type Transaction struct {
	ID         string
	Header     Header
	Operations []Operation
	Signatures [][]byte
}

// NewTransactionOpts is the struct given to NewTransaction method
type NewTransactionOpts struct {
	ChainID    []byte
	Nonce      uint64
	RcLimit    uint64
	Payer      []byte
	Payee      []byte
	Operations []Operation
}

func (o NewTransactionOpts) validate() error {
	if len(o.ChainID) <= 0 {
		return ErrNullChainID
	}
	if len(o.Payer) <= 0 {
		return ErrNullPayer
	}
	if len(o.Operations) <= 0 {
		return ErrNullOperations
	}
	return nil
}

// NewTransaction builds an unsigned transaction, computing the operation
// merkle root and the id.
func NewTransaction(opts NewTransactionOpts) (Transaction, error) {
	if err := opts.validate(); err != nil {
		return Transaction{}, err
	}

	ops := make([]Operation, 0, len(opts.Operations))
	for _, op := range opts.Operations {
		ops = append(ops, Operation{
			ContractID: cloneBytes(op.ContractID),
			EntryPoint: op.EntryPoint,
			Args:       cloneBytes(op.Args),
		})
	}

	header := Header{
		ChainID:             cloneBytes(opts.ChainID),
		RcLimit:             opts.RcLimit,
		Nonce:               EncodeNonce(opts.Nonce),
		OperationMerkleRoot: OperationMerkleRoot(ops),
		Payer:               cloneBytes(opts.Payer),
		Payee:               cloneBytes(opts.Payee),
	}

	return Transaction{
		ID:         bufferutil.TxIDFromDigest(headerDigest(header)),
		Header:     header,
		Operations: ops,
	}, nil
}

// Digest returns sha256 of the serialized header, the message signers sign.
func (tx Transaction) Digest() []byte {
	return headerDigest(tx.Header)
}

// WithPayer returns a copy of tx whose resources are paid by payer.
func (tx Transaction) WithPayer(payer []byte) Transaction {
	header := tx.Header.copy()
	header.Payer = cloneBytes(payer)
	return tx.withHeader(header)
}

// WithPayee returns a copy of tx with the given payee. The payee is the
// account whose nonce is consumed when it differs from the payer.
func (tx Transaction) WithPayee(payee []byte) Transaction {
	header := tx.Header.copy()
	header.Payee = cloneBytes(payee)
	return tx.withHeader(header)
}

// WithRcLimit returns a copy of tx with the given resource credit limit.
func (tx Transaction) WithRcLimit(rcLimit uint64) Transaction {
	header := tx.Header.copy()
	header.RcLimit = rcLimit
	return tx.withHeader(header)
}

// Sign returns a copy of tx with the signer's signature appended.
func (tx Transaction) Sign(signer Signer) (Transaction, error) {
	if signer == nil {
		return Transaction{}, ErrNullSigner
	}
	if tx.Header.RcLimit == 0 {
		return Transaction{}, ErrZeroRcLimit
	}
	sig, err := signer.SignHash(tx.Digest())
	if err != nil {
		return Transaction{}, err
	}

	signed := tx.clone()
	signed.Signatures = append(signed.Signatures, sig)
	return signed, nil
}

// Refresh recomputes the id, drops any signature and signs again with the
// given signers, in order.
func (tx Transaction) Refresh(signers ...Signer) (Transaction, error) {
	refreshed := tx.withHeader(tx.Header.copy())
	for _, signer := range signers {
		var err error
		if refreshed, err = refreshed.Sign(signer); err != nil {
			return Transaction{}, err
		}
	}
	return refreshed, nil
}

func (tx Transaction) withHeader(header Header) Transaction {
	next := tx.clone()
	next.Header = header
	next.ID = bufferutil.TxIDFromDigest(headerDigest(header))
	next.Signatures = nil
	return next
}

func (tx Transaction) clone() Transaction {
	ops := make([]Operation, 0, len(tx.Operations))
	for _, op := range tx.Operations {
		ops = append(ops, Operation{
			ContractID: cloneBytes(op.ContractID),
			EntryPoint: op.EntryPoint,
			Args:       cloneBytes(op.Args),
		})
	}
	var sigs [][]byte
	for _, sig := range tx.Signatures {
		sigs = append(sigs, cloneBytes(sig))
	}
	return Transaction{
		ID:         tx.ID,
		Header:     tx.Header.copy(),
		Operations: ops,
		Signatures: sigs,
	}
}

// OperationMerkleRoot hashes every serialized operation and folds the
// leaves pairwise with sha256(left || right), an odd node being carried
// up unchanged. The root is returned as a sha256 multihash.
func OperationMerkleRoot(ops []Operation) []byte {
	hashes := make([][]byte, 0, len(ops))
	for _, op := range ops {
		h := sha256.Sum256(serializeOperation(op))
		hashes = append(hashes, h[:])
	}
	if len(hashes) <= 0 {
		empty := sha256.Sum256(nil)
		return bufferutil.MultihashFromDigest(empty[:])
	}

	for len(hashes) > 1 {
		next := make([][]byte, 0, (len(hashes)+1)/2)
		for i := 0; i < len(hashes); i += 2 {
			if i+1 >= len(hashes) {
				next = append(next, hashes[i])
				continue
			}
			h := sha256.Sum256(append(cloneBytes(hashes[i]), hashes[i+1]...))
			next = append(next, h[:])
		}
		hashes = next
	}
	return bufferutil.MultihashFromDigest(hashes[0])
}

func headerDigest(h Header) []byte {
	digest := sha256.Sum256(serializeHeader(h))
	return digest[:]
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte{}, b...)
}
