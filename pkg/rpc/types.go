package rpc

import (
	"encoding/json"
	"strconv"
	"strings"
)

// uint64String decodes uint64 values that nodes serialize as JSON strings,
// numbers are accepted too.
type uint64String uint64

func (u *uint64String) UnmarshalJSON(b []byte) error {
	str := strings.Trim(string(b), `"`)
	if str == "" || str == "null" {
		*u = 0
		return nil
	}
	v, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return err
	}
	*u = uint64String(v)
	return nil
}

type headInfoResponse struct {
	HeadTopology struct {
		ID       string       `json:"id"`
		Height   uint64String `json:"height"`
		Previous string       `json:"previous"`
	} `json:"head_topology"`
	LastIrreversibleBlock uint64String `json:"last_irreversible_block"`
	HeadBlockTime         uint64String `json:"head_block_time"`
}

type chainIDResponse struct {
	ChainID string `json:"chain_id"`
}

type accountParams struct {
	Account string `json:"account"`
}

type accountRcResponse struct {
	Rc uint64String `json:"rc"`
}

type accountNonceResponse struct {
	Nonce string `json:"nonce"`
}

type readContractParams struct {
	ContractID string `json:"contract_id"`
	EntryPoint uint32 `json:"entry_point"`
	Args       string `json:"args"`
}

type readContractResponse struct {
	Result string   `json:"result"`
	Logs   []string `json:"logs"`
}

type resourceLimitsResponse struct {
	ResourceLimitData struct {
		DiskStorageLimit      uint64String `json:"disk_storage_limit"`
		DiskStorageCost       uint64String `json:"disk_storage_cost"`
		NetworkBandwidthLimit uint64String `json:"network_bandwidth_limit"`
		NetworkBandwidthCost  uint64String `json:"network_bandwidth_cost"`
		ComputeBandwidthLimit uint64String `json:"compute_bandwidth_limit"`
		ComputeBandwidthCost  uint64String `json:"compute_bandwidth_cost"`
	} `json:"resource_limit_data"`
}

type submitTransactionParams struct {
	Transaction json.Marshaler `json:"transaction"`
	Broadcast   bool           `json:"broadcast"`
}

type jsonEvent struct {
	Sequence uint32   `json:"sequence"`
	Source   string   `json:"source"`
	Name     string   `json:"name"`
	Data     string   `json:"data"`
	Impacted []string `json:"impacted"`
}

type jsonReceipt struct {
	ID                   string       `json:"id"`
	Payer                string       `json:"payer"`
	MaxPayerRc           uint64String `json:"max_payer_rc"`
	RcLimit              uint64String `json:"rc_limit"`
	RcUsed               uint64String `json:"rc_used"`
	DiskStorageUsed      uint64String `json:"disk_storage_used"`
	NetworkBandwidthUsed uint64String `json:"network_bandwidth_used"`
	ComputeBandwidthUsed uint64String `json:"compute_bandwidth_used"`
	Reverted             bool         `json:"reverted"`
	Events               []jsonEvent  `json:"events"`
	Logs                 []string     `json:"logs"`
}

type submitTransactionResponse struct {
	Receipt jsonReceipt `json:"receipt"`
}

type transactionsByIDParams struct {
	TransactionIDs []string `json:"transaction_ids"`
}

type transactionsByIDResponse struct {
	Transactions []struct {
		Transaction struct {
			ID string `json:"id"`
		} `json:"transaction"`
		ContainingBlocks []string `json:"containing_blocks"`
	} `json:"transactions"`
}
