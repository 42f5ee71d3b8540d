package rpc

import (
	"context"
	"time"

	"github.com/kwallet-network/kwallet/pkg/bufferutil"
	"github.com/kwallet-network/kwallet/pkg/koinos"
	"github.com/kwallet-network/kwallet/pkg/wallet"
	log "github.com/sirupsen/logrus"
)

const (
	methodGetHeadInfo         = "chain.get_head_info"
	methodGetChainID          = "chain.get_chain_id"
	methodGetAccountRc        = "chain.get_account_rc"
	methodGetAccountNonce     = "chain.get_account_nonce"
	methodGetResourceLimits   = "chain.get_resource_limits"
	methodReadContract        = "chain.read_contract"
	methodSubmitTransaction   = "chain.submit_transaction"
	methodGetTransactionsByID = "transaction_store.get_transactions_by_id"
)

func (c *client) GetHeadInfo(ctx context.Context) (*HeadInfo, error) {
	resp := &headInfoResponse{}
	if err := c.call(ctx, methodGetHeadInfo, struct{}{}, resp); err != nil {
		return nil, err
	}
	return &HeadInfo{
		HeadBlockID:           resp.HeadTopology.ID,
		Height:                uint64(resp.HeadTopology.Height),
		PreviousBlockID:       resp.HeadTopology.Previous,
		LastIrreversibleBlock: uint64(resp.LastIrreversibleBlock),
		HeadBlockTime:         time.UnixMilli(int64(resp.HeadBlockTime)).UTC(),
	}, nil
}

func (c *client) GetChainID(ctx context.Context) ([]byte, error) {
	resp := &chainIDResponse{}
	if err := c.call(ctx, methodGetChainID, struct{}{}, resp); err != nil {
		return nil, err
	}
	chainID, err := bufferutil.BytesFromBase64(resp.ChainID)
	if err != nil || len(chainID) <= 0 {
		return nil, &Error{
			Method: methodGetChainID, Message: "invalid chain id", Err: err,
		}
	}
	return chainID, nil
}

func (c *client) GetAccountRc(ctx context.Context, address string) (uint64, error) {
	resp := &accountRcResponse{}
	if err := c.call(ctx, methodGetAccountRc, accountParams{address}, resp); err != nil {
		return 0, err
	}
	return uint64(resp.Rc), nil
}

func (c *client) GetAccountNonce(ctx context.Context, address string) (uint64, error) {
	resp := &accountNonceResponse{}
	if err := c.call(ctx, methodGetAccountNonce, accountParams{address}, resp); err != nil {
		return 0, err
	}
	buf, err := bufferutil.BytesFromBase64(resp.Nonce)
	if err != nil {
		return 0, &Error{Method: methodGetAccountNonce, Message: "invalid nonce", Err: err}
	}
	nonce, err := koinos.DecodeNonce(buf)
	if err != nil {
		return 0, &Error{Method: methodGetAccountNonce, Message: "invalid nonce", Err: err}
	}
	return nonce, nil
}

func (c *client) GetResourceCosts(ctx context.Context) (*ResourceCosts, error) {
	resp := &resourceLimitsResponse{}
	if err := c.call(ctx, methodGetResourceLimits, struct{}{}, resp); err != nil {
		return nil, err
	}
	data := resp.ResourceLimitData
	return &ResourceCosts{
		DiskStorageLimit:      uint64(data.DiskStorageLimit),
		DiskStorageCost:       uint64(data.DiskStorageCost),
		NetworkBandwidthLimit: uint64(data.NetworkBandwidthLimit),
		NetworkBandwidthCost:  uint64(data.NetworkBandwidthCost),
		ComputeBandwidthLimit: uint64(data.ComputeBandwidthLimit),
		ComputeBandwidthCost:  uint64(data.ComputeBandwidthCost),
	}, nil
}

func (c *client) ReadContract(
	ctx context.Context, contract string, entryPoint uint32, args []byte,
) ([]byte, error) {
	params := readContractParams{
		ContractID: contract,
		EntryPoint: entryPoint,
		Args:       bufferutil.BytesToBase64(args),
	}
	resp := &readContractResponse{}
	if err := c.call(ctx, methodReadContract, params, resp); err != nil {
		return nil, err
	}
	result, err := bufferutil.BytesFromBase64(resp.Result)
	if err != nil {
		return nil, &Error{Method: methodReadContract, Message: "invalid result", Err: err}
	}
	return result, nil
}

func (c *client) GetTokenBalance(ctx context.Context, contract, address string) (uint64, error) {
	owner, err := wallet.DecodeAddress(address)
	if err != nil {
		return 0, &Error{Method: methodReadContract, Message: "invalid owner address", Err: err}
	}
	result, err := c.ReadContract(
		ctx, contract, koinos.BalanceOfEntryPoint, koinos.EncodeBalanceOfArgs(owner),
	)
	if err != nil {
		return 0, err
	}
	balance, err := koinos.DecodeUint64Result(result)
	if err != nil {
		return 0, &Error{Method: methodReadContract, Message: "invalid balance", Err: err}
	}
	return balance, nil
}

func (c *client) SubmitTransaction(
	ctx context.Context, tx koinos.Transaction, broadcast bool,
) (*Receipt, error) {
	params := submitTransactionParams{Transaction: tx, Broadcast: broadcast}
	resp := &submitTransactionResponse{}
	if err := c.call(ctx, methodSubmitTransaction, params, resp); err != nil {
		return nil, err
	}

	r := resp.Receipt
	receipt := &Receipt{
		ID:                   r.ID,
		Payer:                r.Payer,
		MaxPayerRc:           uint64(r.MaxPayerRc),
		RcLimit:              uint64(r.RcLimit),
		RcUsed:               uint64(r.RcUsed),
		DiskStorageUsed:      uint64(r.DiskStorageUsed),
		NetworkBandwidthUsed: uint64(r.NetworkBandwidthUsed),
		ComputeBandwidthUsed: uint64(r.ComputeBandwidthUsed),
		Reverted:             r.Reverted,
		Logs:                 r.Logs,
	}
	for _, e := range r.Events {
		data, _ := bufferutil.BytesFromBase64(e.Data)
		receipt.Events = append(receipt.Events, Event{
			Source:   e.Source,
			Name:     e.Name,
			Data:     data,
			Impacted: e.Impacted,
			Sequence: e.Sequence,
		})
	}
	if receipt.ID == "" {
		receipt.ID = tx.ID
	}
	return receipt, nil
}

func (c *client) WaitForInclusion(ctx context.Context, txID string) (string, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		blockID, err := c.containingBlock(ctx, txID)
		if err != nil {
			return "", err
		}
		if blockID != "" {
			return blockID, nil
		}

		log.WithField("tx_id", txID).Debug("transaction not yet included")

		select {
		case <-ctx.Done():
			return "", &Error{
				Method:  methodGetTransactionsByID,
				Message: ErrTransactionNotFound.Error(),
				Err:     ctx.Err(),
			}
		case <-ticker.C:
		}
	}
}

func (c *client) containingBlock(ctx context.Context, txID string) (string, error) {
	params := transactionsByIDParams{TransactionIDs: []string{txID}}
	resp := &transactionsByIDResponse{}
	if err := c.call(ctx, methodGetTransactionsByID, params, resp); err != nil {
		return "", err
	}
	for _, tx := range resp.Transactions {
		if tx.Transaction.ID != "" && tx.Transaction.ID != txID {
			continue
		}
		if len(tx.ContainingBlocks) > 0 {
			return tx.ContainingBlocks[0], nil
		}
	}
	return "", nil
}
